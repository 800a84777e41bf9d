package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterFileLifecycle(t *testing.T) {
	t.Parallel()
	a := New()
	ctx := context.Background()
	dir := t.TempDir()

	path := filepath.Join(dir, "file.txt")
	require.NoError(t, a.CreateFile(ctx, path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	renamed := filepath.Join(dir, "renamed.txt")
	require.NoError(t, a.Rename(ctx, path, renamed))

	require.NoError(t, a.Remove(ctx, renamed, false))
	_, err = os.Stat(renamed)
	assert.True(t, os.IsNotExist(err))
}

func TestAdapterCopyDirRecursive(t *testing.T) {
	t.Parallel()
	a := New()
	ctx := context.Background()
	dir := t.TempDir()

	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "top.txt"), []byte("top"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "nested", "deep.txt"), []byte("deep"), 0o644))

	dst := filepath.Join(dir, "dst")
	require.NoError(t, a.Copy(ctx, src, dst, true))

	data, err := os.ReadFile(filepath.Join(dst, "top.txt"))
	require.NoError(t, err)
	assert.Equal(t, "top", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "nested", "deep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "deep", string(data))
}

func TestAdapterCopySingleFile(t *testing.T) {
	t.Parallel()
	a := New()
	ctx := context.Background()
	dir := t.TempDir()

	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, a.Copy(ctx, src, dst, false))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestAdapterMove(t *testing.T) {
	t.Parallel()
	a := New()
	ctx := context.Background()
	dir := t.TempDir()

	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	dst := filepath.Join(dir, "moved.txt")
	require.NoError(t, a.Move(ctx, src, dst))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(dst)
	assert.NoError(t, err)
}
