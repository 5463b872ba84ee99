package registry

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vk/gridctl/internal/command"
)

// rootName is the binary name shown at the front of every usage synopsis.
const rootName = "gridctl"

// Module is the interface that all command modules must implement to be
// registered. Register is called exactly once, at startup.
type Module interface {
	Register(r *Registry)
}

// Registry holds the command namespace for a single application instance.
type Registry struct {
	root *command.Node
}

// New creates a Registry with an empty composite root.
func New() *Registry {
	return &Registry{
		root: command.NewRoot(rootName, "Operations CLI for burst grid deployments"),
	}
}

// Root returns the root node of the command tree. It always exists and is
// always composite.
func (r *Registry) Root() *command.Node { return r.root }

// Register inserts an invocable leaf at path, creating intermediate
// composite nodes as needed. It returns a *command.DuplicateError when a
// command already exists at that exact path, or when the path runs through
// an existing leaf.
func (r *Registry) Register(path []string, leaf command.Leaf, desc string) error {
	if len(path) == 0 {
		return fmt.Errorf("command path must not be empty")
	}
	parent, err := r.descend(path[:len(path)-1])
	if err != nil {
		return err
	}
	name := path[len(path)-1]
	if _, err := parent.AddLeaf(name, leaf, desc); err != nil {
		return err
	}
	slog.Debug("Registered command.", "path", strings.Join(path, " "))
	return nil
}

// MustRegister is Register for compiled-in modules, where a conflict is a
// programmer error. It panics so the mistake surfaces at startup.
func (r *Registry) MustRegister(path []string, leaf command.Leaf, desc string) {
	if err := r.Register(path, leaf, desc); err != nil {
		panic(err)
	}
}

// Describe attaches a description to the composite at path, creating it (and
// any intermediate composites) if needed. Describing a leaf is an error.
func (r *Registry) Describe(path []string, desc string) error {
	node, err := r.descend(path)
	if err != nil {
		return err
	}
	if node.IsLeaf() {
		return fmt.Errorf("cannot describe %q: it is a command, not a namespace", strings.Join(path, " "))
	}
	node.SetDescription(desc)
	return nil
}

// MustDescribe is Describe with the same panic contract as MustRegister.
func (r *Registry) MustDescribe(path []string, desc string) {
	if err := r.Describe(path, desc); err != nil {
		panic(err)
	}
}

// descend walks path from the root, creating composite nodes for segments
// that do not exist yet. Hitting an existing leaf mid-path is a conflict.
func (r *Registry) descend(path []string) (*command.Node, error) {
	current := r.root
	for i, name := range path {
		child, ok := current.Child(name)
		if !ok {
			created, err := current.AddComposite(name, "")
			if err != nil {
				return nil, err
			}
			current = created
			continue
		}
		if child.IsLeaf() {
			return nil, &command.DuplicateError{Path: path[:i+1]}
		}
		current = child
	}
	return current, nil
}
