package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	m "gauntlet.dev/pkg/gauntlet/internal/model"
	"gauntlet.dev/pkg/gauntlet/pkg"
)

var (
	// ErrTestHostTimeout is returned when the host exceeds its time budget.
	ErrTestHostTimeout = errors.New("test host timed out")
	// ErrTestHostCrash is returned when the host leaves no result channel.
	ErrTestHostCrash = errors.New("test host crashed")
)

// waitDelay bounds how long a killed host may keep its output pipes open
// through orphaned children.
const waitDelay = time.Second

// HostRequest describes one invocation of the test host.
type HostRequest struct {
	Command []string
	Dir     m.Path
	Tests   []string // ignored by CollectCoverage
	Timeout time.Duration
}

// TestHostAdapter drives the external test host inside an environment.
type TestHostAdapter interface {
	// RunTests runs exactly req.Tests and returns one result per requested
	// test, in request order. Tests the host did not report resolve to
	// OutcomeNone.
	RunTests(ctx context.Context, req HostRequest) ([]m.TestResult, error)

	// CollectCoverage runs the instrumented pass over every test.
	CollectCoverage(ctx context.Context, req HostRequest) (m.CoverageRecord, error)
}

// LocalTestHostAdapter runs the host command with os/exec and exchanges
// data through the channel files in the environment directory.
type LocalTestHostAdapter struct{}

// NewLocalTestHostAdapter constructs a LocalTestHostAdapter.
func NewLocalTestHostAdapter() *LocalTestHostAdapter {
	return &LocalTestHostAdapter{}
}

// RunTests implements TestHostAdapter.
func (a *LocalTestHostAdapter) RunTests(ctx context.Context, req HostRequest) ([]m.TestResult, error) {
	tests := req.Tests
	dir := req.Dir

	resultsPath := filepath.Join(string(dir), pkg.ResultsFileName)
	_ = os.Remove(resultsPath)

	env := []string{
		pkg.EnvMode + "=" + pkg.ModeTest,
		pkg.EnvTests + "=" + strings.Join(tests, "\n"),
		pkg.EnvResults + "=" + resultsPath,
	}

	runErr := a.run(ctx, req, env)
	if runErr != nil && (errors.Is(runErr, ErrTestHostTimeout) || ctx.Err() != nil) {
		return unresolved(tests), runErr
	}

	reported, err := readResults(resultsPath)
	if err != nil {
		slog.Error("Test host left no results", "dir", dir, "run_error", runErr, "error", err)
		return unresolved(tests), fmt.Errorf("%w: %w", ErrTestHostCrash, err)
	}

	if runErr != nil {
		// Failing tests usually make the host exit nonzero.
		slog.Debug("Test host exited with error", "dir", dir, "error", runErr)
	}

	outcomes := make(map[string]m.TestOutcome, len(reported))
	for _, r := range reported {
		outcomes[r.Name] = m.ParseOutcome(r.Outcome)
	}

	results := make([]m.TestResult, 0, len(tests))
	for _, test := range tests {
		results = append(results, m.TestResult{Name: test, Outcome: outcomes[test]})
	}

	return results, nil
}

// CollectCoverage implements TestHostAdapter.
func (a *LocalTestHostAdapter) CollectCoverage(ctx context.Context, req HostRequest) (m.CoverageRecord, error) {
	dir := req.Dir
	coveragePath := filepath.Join(string(dir), pkg.CoverageFileName)
	_ = os.Remove(coveragePath)

	defer func() { _ = os.Remove(coveragePath) }()

	env := []string{
		pkg.EnvMode + "=" + pkg.ModeCoverage,
		pkg.EnvCoverage + "=" + coveragePath,
	}

	runErr := a.run(ctx, req, env)
	if runErr != nil && (errors.Is(runErr, ErrTestHostTimeout) || ctx.Err() != nil) {
		return m.CoverageRecord{}, runErr
	}

	// #nosec G304 - path is inside the environment directory
	f, err := os.Open(coveragePath)
	if err != nil {
		return m.CoverageRecord{}, fmt.Errorf("%w: %w", ErrTestHostCrash, err)
	}

	defer func() { _ = f.Close() }()

	coverage, err := pkg.DecodeCoverage(f)
	if err != nil {
		return m.CoverageRecord{}, err
	}

	if runErr != nil {
		slog.Debug("Coverage pass exited with error", "dir", dir, "error", runErr)
	}

	return m.CoverageRecord(coverage), nil
}

func (a *LocalTestHostAdapter) run(ctx context.Context, req HostRequest, env []string) error {
	if len(req.Command) == 0 {
		return errors.New("test host command is empty")
	}

	runCtx := ctx

	if req.Timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	// #nosec G204 - the test host command is user configuration
	cmd := exec.CommandContext(runCtx, req.Command[0], req.Command[1:]...)
	cmd.Dir = string(req.Dir)
	cmd.Env = append(os.Environ(), env...)
	cmd.WaitDelay = waitDelay

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	start := time.Now()
	err := cmd.Run()

	slog.Debug("Test host finished", "dir", req.Dir, "duration", time.Since(start), "output", output.String())

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrTestHostTimeout, req.Timeout)
	}

	return err
}

func readResults(path string) ([]pkg.TestResult, error) {
	// #nosec G304 - path is inside the environment directory
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	return pkg.DecodeResults(f)
}

func unresolved(tests []string) []m.TestResult {
	results := make([]m.TestResult, 0, len(tests))
	for _, test := range tests {
		results = append(results, m.TestResult{Name: test, Outcome: m.OutcomeNone})
	}

	return results
}
