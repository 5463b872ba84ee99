// Package configcmd provides the 'config' command namespace for showing the
// resolved configuration model.
package configcmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/gridctl/internal/command"
	"github.com/vk/gridctl/internal/config"
	"github.com/vk/gridctl/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	cfg *config.Model
}

// NewModule creates the config module over the loaded configuration model.
func NewModule(cfg *config.Model) *Module {
	return &Module{cfg: cfg}
}

// Register installs the config namespace and its leaves.
func (m *Module) Register(r *registry.Registry) {
	r.MustDescribe([]string{"config"}, "Inspect the resolved gridctl configuration")
	r.MustRegister([]string{"config", "show"}, &showCommand{cfg: m.cfg}, "Print the merged configuration model")
}

// showCommand renders the merged model: sites, event endpoint, and vars.
type showCommand struct {
	cfg *config.Model
}

func (c *showCommand) Invoke(ctx context.Context, args command.Args) (any, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "sites: %d\n", len(c.cfg.Sites))
	for _, s := range c.cfg.Sites {
		fmt.Fprintf(&b, "  %s = %s\n", s.Name, s.URL)
	}

	if c.cfg.Events != nil {
		fmt.Fprintf(&b, "events: %s", c.cfg.Events.URL)
		if c.cfg.Events.Namespace != "" {
			fmt.Fprintf(&b, " (namespace %s)", c.cfg.Events.Namespace)
		}
		b.WriteByte('\n')
	} else {
		b.WriteString("events: (not configured)\n")
	}

	// Sort keys for consistent output
	keys := make([]string, 0, len(c.cfg.Vars))
	for k := range c.cfg.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(&b, "vars: %d", len(keys))
	for _, k := range keys {
		fmt.Fprintf(&b, "\n  %s = %q", k, c.cfg.Vars[k])
	}

	return b.String(), nil
}
