// Package version provides the built-in version command.
package version

import (
	"context"
	"fmt"

	"github.com/vk/gridctl/internal/command"
	"github.com/vk/gridctl/internal/registry"
)

// Version and Date are set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/vk/gridctl/modules/version.Version=1.2.3'"
var (
	Version = "dev"
	Date    = ""
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// NewModule creates the version module.
func NewModule() *Module { return &Module{} }

// Register installs the version leaf.
func (m *Module) Register(r *registry.Registry) {
	r.MustRegister([]string{"version"}, m, "Print the gridctl version")
}

// Invoke returns the version line as a textual result.
func (m *Module) Invoke(ctx context.Context, args command.Args) (any, error) {
	if Date == "" {
		return fmt.Sprintf("gridctl %s", Version), nil
	}
	return fmt.Sprintf("gridctl %s (%s)", Version, Date), nil
}
