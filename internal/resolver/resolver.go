package resolver

import (
	"context"

	"github.com/vk/gridctl/internal/command"
	"github.com/vk/gridctl/internal/ctxlog"
)

// Resolution is the outcome of a successful walk. Node is the deepest match;
// RemainingArgs holds the tokens that were not consumed as path components,
// in order; MatchedPath holds the tokens that were.
type Resolution struct {
	Node          *command.Node
	RemainingArgs []string
	MatchedPath   []string
}

// Leaf returns the resolved invocable command, or false when the walk ended
// on a composite. The run loop inspects this instead of relying on error
// control flow to tell the two cases apart.
func (res *Resolution) Leaf() (command.Leaf, bool) {
	if res.Node.IsLeaf() {
		return res.Node.Leaf(), true
	}
	return nil, false
}

// Resolve walks tokens from root, descending one child per token until a
// leaf is reached or the tokens run out. A token with no matching child
// fails with a *command.UnknownError whose path includes that token. An
// empty token list resolves to the root itself.
func Resolve(ctx context.Context, root *command.Node, tokens []string) (*Resolution, error) {
	logger := ctxlog.FromContext(ctx)

	current := root
	matched := make([]string, 0, len(tokens))
	consumed := 0
	for consumed < len(tokens) && !current.IsLeaf() {
		name := tokens[consumed]
		matched = append(matched, name)
		child, ok := current.Child(name)
		if !ok {
			return nil, &command.UnknownError{Path: matched}
		}
		logger.Debug("Resolver descended.", "name", name)
		current = child
		consumed++
	}

	return &Resolution{
		Node:          current,
		RemainingArgs: tokens[consumed:],
		MatchedPath:   matched,
	}, nil
}
