package command

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Args carries the arguments for a single command invocation. It is owned by
// the caller for the duration of one run and passed into the resolved leaf.
type Args struct {
	// Positional holds the argument words left over after the command path
	// was consumed, in their original order.
	Positional []string
	// Named holds --key=value options, already separated from the
	// positional words by the argument parser.
	Named map[string]string
}

// Leaf is implemented by every invocable command. A string result is emitted
// as informational output by the run loop; any other result is discarded and
// the command is expected to have produced its own output.
type Leaf interface {
	Invoke(ctx context.Context, args Args) (any, error)
}

// Node is a single entry in the command namespace. Ownership runs strictly
// parent to child; the parent field is a non-owning back-reference used only
// to reconstruct a node's path.
type Node struct {
	name     string
	desc     string
	parent   *Node
	children map[string]*Node
	leaf     Leaf
}

// NewRoot creates the root composite node of a command tree.
func NewRoot(name, desc string) *Node {
	return &Node{
		name:     name,
		desc:     desc,
		children: make(map[string]*Node),
	}
}

// Name returns the node's name, unique among its siblings.
func (n *Node) Name() string { return n.name }

// Description returns the one-line description shown in usage synopses.
func (n *Node) Description() string { return n.desc }

// SetDescription attaches a description after the node was created. Used for
// composites that were created implicitly while registering a deeper leaf.
func (n *Node) SetDescription(desc string) { n.desc = desc }

// IsLeaf reports whether the node is directly invocable.
func (n *Node) IsLeaf() bool { return n.leaf != nil }

// Leaf returns the invocable handler, or nil for a composite.
func (n *Node) Leaf() Leaf { return n.leaf }

// Child returns the immediate child with the given name, if any.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]
	return child, ok
}

// ChildNames returns the names of all immediate children, sorted.
func (n *Node) ChildNames() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path returns the node's full path from the root, excluding the root's own
// name. The root returns an empty path.
func (n *Node) Path() []string {
	var path []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		path = append(path, cur.name)
	}
	// The walk above collects names leaf-to-root.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// AddLeaf inserts an invocable child. It fails if a child with the same name
// already exists or if the receiver itself is a leaf.
func (n *Node) AddLeaf(name string, leaf Leaf, desc string) (*Node, error) {
	return n.addChild(name, leaf, desc)
}

// AddComposite inserts a namespace child. It fails if a child with the same
// name already exists or if the receiver itself is a leaf.
func (n *Node) AddComposite(name, desc string) (*Node, error) {
	return n.addChild(name, nil, desc)
}

func (n *Node) addChild(name string, leaf Leaf, desc string) (*Node, error) {
	if n.IsLeaf() {
		return nil, &DuplicateError{Path: n.Path()}
	}
	if _, exists := n.children[name]; exists {
		return nil, &DuplicateError{Path: append(n.Path(), name)}
	}
	child := &Node{
		name:   name,
		desc:   desc,
		parent: n,
		leaf:   leaf,
	}
	if leaf == nil {
		child.children = make(map[string]*Node)
	}
	n.children[name] = child
	return child, nil
}

// rootName walks to the root and returns its name, which is the binary name
// shown in usage synopses.
func (n *Node) rootName() string {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur.name
}

// Usage renders the node's usage synopsis. For a composite it lists the
// immediate subcommands with their descriptions; for a leaf it shows the
// invocation line only.
func (n *Node) Usage() string {
	invocation := n.rootName()
	if path := n.Path(); len(path) > 0 {
		invocation += " " + strings.Join(path, " ")
	}

	var b strings.Builder
	if n.desc != "" {
		fmt.Fprintf(&b, "%s\n\n", n.desc)
	}
	if n.IsLeaf() {
		fmt.Fprintf(&b, "Usage:\n  %s [args] [--option=value ...]", invocation)
		return b.String()
	}

	fmt.Fprintf(&b, "Usage:\n  %s <command> [args] [--option=value ...]\n\nCommands:\n", invocation)
	names := n.ChildNames()
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range names {
		child := n.children[name]
		fmt.Fprintf(&b, "  %-*s  %s\n", width, name, child.Description())
	}
	return strings.TrimRight(b.String(), "\n")
}
