// Package controller provides the terminal front ends for mutation sessions.
package controller

import (
	"context"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gauntlet.dev/pkg/gauntlet/internal/domain/mutagens"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeTest
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithTestMode sets the UI to test execution mode.
func WithTestMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeTest
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	config := StartConfig{mode: ModeTest}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines how a session is presented. Implementations can use different
// output methods (simple text, TUI).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayEstimation(ctx context.Context, groups []mutagens.MutationGroup, err error) error
	DisplaySessionInfo(ctx context.Context, info m.SessionInfo)
	DisplayRoundStarted(ctx context.Context, round m.Round, attempt int)
	DisplayRoundCompleted(ctx context.Context, report m.RoundReport)
	DisplaySummary(ctx context.Context, summary m.Summary)
}

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether out is an interactive terminal.
func IsTTY(out interface{}) bool {
	f, ok := out.(fdWriter)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewUI returns a TUI for terminals and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}
