package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocalSourceFSAdapter_CopyDir(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalSourceFSAdapter()

	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "subject.gir"), "image")
	writeTestFile(t, filepath.Join(src, "lib", "dep.bin"), "dep")
	writeTestFile(t, filepath.Join(src, ".git", "HEAD"), "ref")
	writeTestFile(t, filepath.Join(src, ".gauntlet-results.yaml"), "stale")

	dst := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, adapter.CopyDir(ctx, m.Path(src), m.Path(dst)))

	data, err := os.ReadFile(filepath.Join(dst, "lib", "dep.bin"))
	require.NoError(t, err)
	assert.Equal(t, "dep", string(data))

	assert.FileExists(t, filepath.Join(dst, "subject.gir"))
	assert.NoDirExists(t, filepath.Join(dst, ".git"))
	assert.NoFileExists(t, filepath.Join(dst, ".gauntlet-results.yaml"))
}

func TestLocalSourceFSAdapter_CopyDir_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "a.txt"), "a")

	err := NewLocalSourceFSAdapter().CopyDir(ctx, m.Path(src), m.Path(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLocalSourceFSAdapter_CopyFile(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalSourceFSAdapter()

	src := filepath.Join(t.TempDir(), "image.gir")
	writeTestFile(t, src, "pristine")

	dst := filepath.Join(t.TempDir(), "nested", "image.gir")
	require.NoError(t, adapter.CopyFile(ctx, m.Path(src), m.Path(dst)))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "pristine", string(data))

	err = adapter.CopyFile(ctx, m.Path(filepath.Join(t.TempDir(), "missing")), m.Path(dst))
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_TempDirLifecycle(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalSourceFSAdapter()

	dir, err := adapter.CreateTempDir(ctx, "gauntlet-test-*")
	require.NoError(t, err)

	info, err := adapter.FileInfo(ctx, dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, adapter.RemoveAll(ctx, dir))

	_, err = adapter.FileInfo(ctx, dir)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "image.gir")
	writeTestFile(t, path, "content")

	got, err := adapter.HashFile(ctx, m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256([]byte("content"))), got)

	_, err = adapter.HashFile(ctx, m.Path(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_JoinPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	assert.Equal(t, m.Path(filepath.Join("a", "b", "c")), adapter.JoinPath(context.Background(), "a", "b", "c"))
}
