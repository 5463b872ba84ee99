// Package help provides the built-in help command. It is also the target of
// the implicit substitution the run loop performs when the user supplies no
// command at all.
package help

import (
	"context"

	"github.com/vk/gridctl/internal/command"
	"github.com/vk/gridctl/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	reg *registry.Registry
}

// NewModule creates the help module.
func NewModule() *Module { return &Module{} }

// Register installs the help leaf and keeps a handle on the registry so the
// command can render usage for any node in the tree.
func (m *Module) Register(r *registry.Registry) {
	m.reg = r
	r.MustRegister([]string{"help"}, m, "Show usage for gridctl commands")
}

// Invoke renders the usage synopsis for the command named by the positional
// arguments, or for the whole tree when none are given.
func (m *Module) Invoke(ctx context.Context, args command.Args) (any, error) {
	node := m.reg.Root()
	attempted := make([]string, 0, len(args.Positional))
	for _, token := range args.Positional {
		attempted = append(attempted, token)
		child, ok := node.Child(token)
		if !ok {
			return nil, &command.UnknownError{Path: attempted}
		}
		node = child
	}
	return node.Usage(), nil
}
