package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLeaf struct{}

func (nopLeaf) Invoke(ctx context.Context, args Args) (any, error) { return nil, nil }

func TestNode_PathWalksParentReferences(t *testing.T) {
	t.Parallel()
	root := NewRoot("gridctl", "")
	siteNode, err := root.AddComposite("site", "")
	require.NoError(t, err)
	listNode, err := siteNode.AddLeaf("list", nopLeaf{}, "list sites")
	require.NoError(t, err)

	assert.Empty(t, root.Path())
	assert.Equal(t, []string{"site"}, siteNode.Path())
	assert.Equal(t, []string{"site", "list"}, listNode.Path())
}

func TestNode_SiblingNamesAreUnique(t *testing.T) {
	t.Parallel()
	root := NewRoot("gridctl", "")
	_, err := root.AddLeaf("version", nopLeaf{}, "")
	require.NoError(t, err)

	_, err = root.AddComposite("version", "")

	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, []string{"version"}, dup.Path)
}

func TestNode_LeafCannotHaveChildren(t *testing.T) {
	t.Parallel()
	root := NewRoot("gridctl", "")
	leafNode, err := root.AddLeaf("version", nopLeaf{}, "")
	require.NoError(t, err)

	_, err = leafNode.AddLeaf("sub", nopLeaf{}, "")

	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
}

func TestNode_ChildNamesAreSorted(t *testing.T) {
	t.Parallel()
	root := NewRoot("gridctl", "")
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := root.AddLeaf(name, nopLeaf{}, "")
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, root.ChildNames())
}

func TestNode_CompositeUsageListsChildren(t *testing.T) {
	t.Parallel()
	root := NewRoot("gridctl", "Operations CLI")
	siteNode, err := root.AddComposite("site", "Inspect the configured sites")
	require.NoError(t, err)
	_, err = siteNode.AddLeaf("list", nopLeaf{}, "List the configured sites")
	require.NoError(t, err)
	_, err = siteNode.AddLeaf("describe", nopLeaf{}, "Show details for a single site")
	require.NoError(t, err)

	usage := siteNode.Usage()

	assert.Contains(t, usage, "gridctl site <command>")
	assert.Contains(t, usage, "list")
	assert.Contains(t, usage, "List the configured sites")
	assert.Contains(t, usage, "describe")
	assert.Contains(t, usage, "Inspect the configured sites")
}

func TestNode_LeafUsageShowsInvocationLine(t *testing.T) {
	t.Parallel()
	root := NewRoot("gridctl", "")
	siteNode, err := root.AddComposite("site", "")
	require.NoError(t, err)
	listNode, err := siteNode.AddLeaf("list", nopLeaf{}, "List the configured sites")
	require.NoError(t, err)

	usage := listNode.Usage()

	assert.Contains(t, usage, "gridctl site list")
	assert.NotContains(t, usage, "Commands:")
}
