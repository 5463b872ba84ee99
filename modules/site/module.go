// Package site provides the 'site' command namespace for inspecting the
// configured deployment targets.
package site

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vk/gridctl/internal/command"
	"github.com/vk/gridctl/internal/config"
	"github.com/vk/gridctl/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	cfg *config.Model
}

// NewModule creates the site module over the loaded configuration model.
func NewModule(cfg *config.Model) *Module {
	return &Module{cfg: cfg}
}

// Register installs the site namespace and its leaves.
func (m *Module) Register(r *registry.Registry) {
	r.MustDescribe([]string{"site"}, "Inspect the configured sites")
	r.MustRegister([]string{"site", "list"}, &listCommand{cfg: m.cfg}, "List the configured sites")
	r.MustRegister([]string{"site", "describe"}, &describeCommand{cfg: m.cfg}, "Show details for a single site")
}

// listCommand renders the site inventory. The --format option selects
// between the plain table and JSON.
type listCommand struct {
	cfg *config.Model
}

func (c *listCommand) Invoke(ctx context.Context, args command.Args) (any, error) {
	format := args.Named["format"]
	if format == "" {
		format = "plain"
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(c.cfg.Sites, "", "  ")
		if err != nil {
			return nil, command.NewError(1, "failed to encode sites", "error", err.Error())
		}
		return string(data), nil
	case "plain":
		if len(c.cfg.Sites) == 0 {
			return "no sites configured", nil
		}
		var b strings.Builder
		for _, s := range c.cfg.Sites {
			fmt.Fprintf(&b, "%s\t%s", s.Name, s.URL)
			if s.Environment != "" {
				fmt.Fprintf(&b, "\t%s", s.Environment)
			}
			b.WriteByte('\n')
		}
		return strings.TrimRight(b.String(), "\n"), nil
	default:
		return nil, command.NewError(2, "invalid format: must be 'plain' or 'json'", "format", format)
	}
}

// describeCommand prints one site by name.
type describeCommand struct {
	cfg *config.Model
}

func (c *describeCommand) Invoke(ctx context.Context, args command.Args) (any, error) {
	if len(args.Positional) != 1 {
		return nil, command.NewError(2, "usage: gridctl site describe <name>")
	}
	name := args.Positional[0]

	s, ok := c.cfg.Site(name)
	if !ok {
		return nil, command.NewError(1, "site is not configured", "site", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\nurl: %s", s.Name, s.URL)
	if s.Environment != "" {
		fmt.Fprintf(&b, "\nenvironment: %s", s.Environment)
	}
	return b.String(), nil
}
