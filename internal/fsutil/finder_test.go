package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension_ReturnsSortedMatches(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"b.hcl", "a.hcl", "ignore.txt", filepath.Join("nested", "c.hcl")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}

	files, err := FindFilesByExtension(dir, ".hcl")

	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "a.hcl"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.hcl"), files[1])
	assert.Equal(t, filepath.Join(dir, "nested", "c.hcl"), files[2])
}

func TestFindFilesByExtension_EmptyExtensionFails(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(t.TempDir(), "")

	require.Error(t, err)
}

func TestFindFilesByExtension_MissingRootFails(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".hcl")

	require.Error(t, err)
}
