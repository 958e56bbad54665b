package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ships"), 0o755))
	for _, name := range []string{"b_hulls.hcl", "a_parts.hcl", "notes.txt", "ships/core.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a_parts.hcl"),
		filepath.Join(dir, "b_hulls.hcl"),
		filepath.Join(dir, "ships", "core.hcl"),
	}, files)
}

func TestFindFilesByExtensionAcceptsSingleFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "hulls.hcl")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	files, err := FindFilesByExtension(file, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestFindFilesByExtensionMissingRoot(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "absent"), ".hcl")
	assert.Error(t, err)
}
