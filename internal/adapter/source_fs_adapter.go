// Package adapter contains the infrastructure adapters gauntlet drives:
// filesystem duplication, the program image accessor, the external test
// host and the report store.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations the domain layer
// relies on when duplicating the subject project. It hides direct `os`
// access so pool and workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// CreateTempDir creates a temporary directory for one environment.
	CreateTempDir(ctx context.Context, pattern string) (m.Path, error)

	// CopyDir recursively copies a directory tree, skipping VCS metadata and
	// gauntlet's own channel files.
	CopyDir(ctx context.Context, src, dst m.Path) error

	// CopyFile copies a single file, creating parent directories.
	CopyFile(ctx context.Context, src, dst m.Path) error

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSourceFSAdapter backs SourceFSAdapter with the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// CreateTempDir creates a temporary directory under the system temp dir.
func (a *LocalSourceFSAdapter) CreateTempDir(ctx context.Context, pattern string) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// CopyDir recursively copies a directory tree.
func (a *LocalSourceFSAdapter) CopyDir(ctx context.Context, src, dst m.Path) error {
	return filepath.Walk(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		baseName := filepath.Base(path)

		if info.IsDir() && (baseName == ".git" || baseName == ".hg") {
			return filepath.SkipDir
		}

		// Channel files from an earlier run must not leak into a fresh copy.
		if !info.IsDir() && strings.HasPrefix(baseName, ".gauntlet") {
			return nil
		}

		targetPath := filepath.Join(string(dst), relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode()|0o700)
		}

		return copyFile(path, targetPath, info.Mode())
	})
}

// CopyFile copies a single file keeping its permissions.
func (a *LocalSourceFSAdapter) CopyFile(ctx context.Context, src, dst m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(string(src))
	if err != nil {
		return err
	}

	return copyFile(string(src), string(dst), info.Mode())
}

func copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src is a path inside the subject project
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is inside an environment directory we created
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(_ context.Context, path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
