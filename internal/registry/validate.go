package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/gridctl/internal/command"
	"github.com/vk/gridctl/internal/ctxlog"
)

// ValidateRegistry performs a strict integrity check of the command tree
// after all modules have registered: every leaf must carry a description,
// every composite must have at least one child, and names must be single
// words. Violations are programmer errors caught at startup.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var errs []string
	walk(r.root, func(node *command.Node) {
		if node == r.root {
			return
		}
		path := strings.Join(node.Path(), " ")
		if node.Name() == "" || strings.ContainsAny(node.Name(), " \t\n") {
			errs = append(errs, fmt.Sprintf("command %q: name must be a single word", path))
		}
		if node.IsLeaf() {
			if node.Description() == "" {
				errs = append(errs, fmt.Sprintf("command %q: missing description", path))
			}
			return
		}
		if len(node.ChildNames()) == 0 {
			errs = append(errs, fmt.Sprintf("namespace %q: has no subcommands", path))
		}
		if node.Description() == "" {
			logger.Warn("Namespace registered without a description; usage output will look bare.", "path", path)
		}
	})

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "commands", len(r.root.ChildNames()))
	return nil
}

// walk visits node and every descendant in depth-first order.
func walk(node *command.Node, fn func(*command.Node)) {
	fn(node)
	for _, name := range node.ChildNames() {
		child, _ := node.Child(name)
		walk(child, fn)
	}
}
