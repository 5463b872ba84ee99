package help

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridctl/internal/command"
	"github.com/vk/gridctl/internal/registry"
)

type nopLeaf struct{}

func (nopLeaf) Invoke(ctx context.Context, args command.Args) (any, error) { return nil, nil }

func newRegistry(t *testing.T) (*registry.Registry, *Module) {
	t.Helper()
	r := registry.New()
	m := NewModule()
	m.Register(r)
	r.MustDescribe([]string{"site"}, "Inspect the configured sites")
	r.MustRegister([]string{"site", "list"}, nopLeaf{}, "List the configured sites")
	return r, m
}

func TestHelp_NoArgsShowsRootUsage(t *testing.T) {
	t.Parallel()
	_, m := newRegistry(t)

	result, err := m.Invoke(context.Background(), command.Args{})

	require.NoError(t, err)
	text, ok := result.(string)
	require.True(t, ok)
	assert.Contains(t, text, "Commands:")
	assert.Contains(t, text, "help")
	assert.Contains(t, text, "site")
}

func TestHelp_WithPathShowsNamespaceUsage(t *testing.T) {
	t.Parallel()
	_, m := newRegistry(t)

	result, err := m.Invoke(context.Background(), command.Args{Positional: []string{"site"}})

	require.NoError(t, err)
	text := result.(string)
	assert.Contains(t, text, "gridctl site <command>")
	assert.Contains(t, text, "list")
}

func TestHelp_UnknownPathFails(t *testing.T) {
	t.Parallel()
	_, m := newRegistry(t)

	_, err := m.Invoke(context.Background(), command.Args{Positional: []string{"site", "nope"}})

	var unknown *command.UnknownError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"site", "nope"}, unknown.Path)
}
