package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// ProgramAdapter reads and writes program images. The image encoding is
// owned here; the domain only sees *ir.Program.
type ProgramAdapter interface {
	Read(ctx context.Context, path m.Path) (*ir.Program, error)
	Flush(ctx context.Context, program *ir.Program, path m.Path) error
}

// LocalProgramAdapter stores gob images on the local filesystem.
type LocalProgramAdapter struct{}

// NewLocalProgramAdapter constructs a LocalProgramAdapter.
func NewLocalProgramAdapter() *LocalProgramAdapter {
	return &LocalProgramAdapter{}
}

// Read decodes the program image at path.
func (a *LocalProgramAdapter) Read(ctx context.Context, path m.Path) (*ir.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - image path comes from configuration
	f, err := os.Open(string(path))
	if err != nil {
		slog.Error("Failed to open program image", "path", path, "error", err)
		return nil, fmt.Errorf("open program image: %w", err)
	}

	defer func() { _ = f.Close() }()

	program, err := ir.Decode(f)
	if err != nil {
		slog.Error("Failed to decode program image", "path", path, "error", err)
		return nil, err
	}

	return program, nil
}

// Flush writes program to path. The image is written to a sibling temp file
// and renamed so a test host never observes a partial image.
func (a *LocalProgramAdapter) Flush(ctx context.Context, program *ir.Program, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(string(path)), ".gauntlet-image-*")
	if err != nil {
		slog.Error("Failed to create temp image", "path", path, "error", err)
		return fmt.Errorf("create temp image: %w", err)
	}

	tmpName := tmp.Name()

	if err := ir.Encode(tmp, program); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		slog.Error("Failed to encode program image", "path", path, "error", err)

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp image: %w", err)
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		_ = os.Remove(tmpName)

		slog.Error("Failed to replace program image", "path", path, "error", err)

		return fmt.Errorf("replace program image: %w", err)
	}

	return nil
}
