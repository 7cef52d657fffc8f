package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "gauntlet.dev/pkg/gauntlet/internal/model"
	"gopkg.in/yaml.v3"
)

// LatestReportName is the report file that always holds the newest session.
const LatestReportName = "latest.yaml"

// ReportStore persists session summaries.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, summary m.Summary) (m.Path, error)
	LoadReport(ctx context.Context, path m.Path) (m.Summary, error)
}

type reportStore struct{}

// NewReportStore creates a YAML backed ReportStore.
func NewReportStore() ReportStore {
	return &reportStore{}
}

// SaveReport writes <session>.yaml into dir and refreshes latest.yaml.
func (rs *reportStore) SaveReport(ctx context.Context, dir m.Path, summary m.Summary) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create reports directory", "dir", dir, "error", err)
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	name := summary.SessionID
	if name == "" {
		name = "session"
	}

	path := filepath.Join(string(dir), name+".yaml")

	for _, target := range []string{path, filepath.Join(string(dir), LatestReportName)} {
		if err := os.WriteFile(target, data, 0o600); err != nil {
			slog.Error("Failed to write report", "path", target, "error", err)
			return "", fmt.Errorf("write report: %w", err)
		}
	}

	return m.Path(path), nil
}

// LoadReport reads a report file, or latest.yaml when path is a directory.
func (rs *reportStore) LoadReport(ctx context.Context, path m.Path) (m.Summary, error) {
	if err := ctx.Err(); err != nil {
		return m.Summary{}, err
	}

	target := string(path)

	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, LatestReportName)
	}

	// #nosec G304 - report path is given on the command line
	data, err := os.ReadFile(target)
	if err != nil {
		return m.Summary{}, fmt.Errorf("read report: %w", err)
	}

	var summary m.Summary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return m.Summary{}, fmt.Errorf("parse report %s: %w", target, err)
	}

	return summary, nil
}
