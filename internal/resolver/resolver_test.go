package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridctl/internal/command"
)

// nopLeaf is a minimal invocable command for building test trees.
type nopLeaf struct{}

func (nopLeaf) Invoke(ctx context.Context, args command.Args) (any, error) { return nil, nil }

// newTestTree builds: root -> site (composite) -> {list, describe} plus a
// top-level version leaf.
func newTestTree(t *testing.T) *command.Node {
	t.Helper()
	root := command.NewRoot("gridctl", "test tree")
	siteNode, err := root.AddComposite("site", "site commands")
	require.NoError(t, err)
	_, err = siteNode.AddLeaf("list", nopLeaf{}, "list sites")
	require.NoError(t, err)
	_, err = siteNode.AddLeaf("describe", nopLeaf{}, "describe a site")
	require.NoError(t, err)
	_, err = root.AddLeaf("version", nopLeaf{}, "print version")
	require.NoError(t, err)
	return root
}

func TestResolve_FullPathToLeaf(t *testing.T) {
	t.Parallel()
	root := newTestTree(t)

	res, err := Resolve(context.Background(), root, []string{"site", "list"})

	require.NoError(t, err)
	assert.True(t, res.Node.IsLeaf())
	assert.Equal(t, []string{"site", "list"}, res.MatchedPath)
	assert.Empty(t, res.RemainingArgs)

	leaf, ok := res.Leaf()
	assert.True(t, ok)
	assert.NotNil(t, leaf)
}

func TestResolve_LeftoverTokensBecomePositionalArgs(t *testing.T) {
	t.Parallel()
	root := newTestTree(t)

	res, err := Resolve(context.Background(), root, []string{"site", "describe", "eu-west", "extra"})

	require.NoError(t, err)
	assert.Equal(t, []string{"site", "describe"}, res.MatchedPath)
	assert.Equal(t, []string{"eu-west", "extra"}, res.RemainingArgs)
}

func TestResolve_UnknownTokenReportsFullAttemptedPath(t *testing.T) {
	t.Parallel()
	root := newTestTree(t)

	res, err := Resolve(context.Background(), root, []string{"site", "nope"})

	require.Error(t, err)
	assert.Nil(t, res)

	var unknown *command.UnknownError
	require.True(t, errors.As(err, &unknown))
	// The failing token must be part of the reported path, not just the
	// tokens that matched.
	assert.Equal(t, []string{"site", "nope"}, unknown.Path)
	assert.Equal(t, `unknown command "site nope"`, unknown.Error())
	assert.Equal(t, 1, unknown.ExitCode())
}

func TestResolve_UnknownFirstToken(t *testing.T) {
	t.Parallel()
	root := newTestTree(t)

	_, err := Resolve(context.Background(), root, []string{"bogus", "list"})

	var unknown *command.UnknownError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"bogus"}, unknown.Path)
}

func TestResolve_EmptyTokensReturnsRoot(t *testing.T) {
	t.Parallel()
	root := newTestTree(t)

	res, err := Resolve(context.Background(), root, nil)

	require.NoError(t, err)
	assert.Same(t, root, res.Node)
	assert.Empty(t, res.RemainingArgs)
	assert.Empty(t, res.MatchedPath)

	_, ok := res.Leaf()
	assert.False(t, ok, "the root is composite, never invocable")
}

func TestResolve_CompositePathStopsWithoutLeaf(t *testing.T) {
	t.Parallel()
	root := newTestTree(t)

	res, err := Resolve(context.Background(), root, []string{"site"})

	require.NoError(t, err)
	assert.False(t, res.Node.IsLeaf())
	assert.Equal(t, []string{"site"}, res.MatchedPath)
	assert.Empty(t, res.RemainingArgs)
}

func TestResolve_ExactMatchOnly(t *testing.T) {
	t.Parallel()
	root := newTestTree(t)

	// No prefix matching: "sit" must not match "site".
	_, err := Resolve(context.Background(), root, []string{"sit"})

	var unknown *command.UnknownError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"sit"}, unknown.Path)
}

func TestResolve_TopLevelLeafWithArgs(t *testing.T) {
	t.Parallel()
	root := newTestTree(t)

	res, err := Resolve(context.Background(), root, []string{"version", "--verbose"})

	require.NoError(t, err)
	assert.Equal(t, []string{"version"}, res.MatchedPath)
	assert.Equal(t, []string{"--verbose"}, res.RemainingArgs)
}
