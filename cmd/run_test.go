package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gauntlet.dev/pkg/gauntlet/internal/domain"
	domainmocks "gauntlet.dev/pkg/gauntlet/internal/domain/mocks"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// captureRun expects one Run call and returns a pointer to its arguments.
func captureRun(t *testing.T, result error) *domain.RunArgs {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	captured := &domain.RunArgs{}

	mockWorkflow.EXPECT().
		Run(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, args domain.RunArgs) error {
			*captured = args
			return result
		}).
		Once()

	return captured
}

func TestRunCmd_Defaults(t *testing.T) {
	captured := captureRun(t, nil)

	cmd, _ := newTestRoot(t, newRunCmd())
	cmd.SetArgs([]string{"run", "--test-command", "sh run-tests.sh"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, domain.RunArgs{
		Subject: m.Subject{
			ProjectDir:  ".",
			Program:     "program.gir",
			TestCommand: []string{"sh", "run-tests.sh"},
		},
		Reports:           ".gauntlet-reports",
		Parallel:          2,
		Tier:              m.TierMedium,
		Seed:              1,
		MutationTimeout:   0,
		CoverageTimeout:   5 * time.Minute,
		ScheduleThreshold: 500,
		Retries:           0,
		MetricsFile:       "",
	}, *captured)
}

func TestRunCmd_FlagsOverrideDefaults(t *testing.T) {
	captured := captureRun(t, nil)

	cmd, _ := newTestRoot(t, newRunCmd())
	cmd.SetArgs([]string{
		"run", "./subject",
		"-p", "4",
		"-t", "detailed",
		"--seed", "9",
		"--program", "build/app.gir",
		"-c", "./host --quiet",
		"--mutation-timeout", "3s",
		"--coverage-timeout", "1m",
		"--schedule-threshold", "10",
		"--retries", "2",
		"--metrics-file", "gauntlet.prom",
		"-o", "out",
	})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, domain.RunArgs{
		Subject: m.Subject{
			ProjectDir:  "./subject",
			Program:     "build/app.gir",
			TestCommand: []string{"./host", "--quiet"},
		},
		Reports:           "out",
		Parallel:          4,
		Tier:              m.TierDetailed,
		Seed:              9,
		MutationTimeout:   3 * time.Second,
		CoverageTimeout:   time.Minute,
		ScheduleThreshold: 10,
		Retries:           2,
		MetricsFile:       "gauntlet.prom",
	}, *captured)
}

func TestRunCmd_EnvironmentFeedsConfig(t *testing.T) {
	t.Setenv("GAUNTLET_RUN_PARALLEL", "6")
	t.Setenv("GAUNTLET_RUN_TIER", "simple")
	t.Setenv("GAUNTLET_SUBJECT_TEST_COMMAND", "./host.sh")

	captured := captureRun(t, nil)

	cmd, _ := newTestRoot(t, newRunCmd())
	cmd.SetArgs([]string{"run"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, 6, captured.Parallel)
	assert.Equal(t, m.TierSimple, captured.Tier)
	assert.Equal(t, []string{"./host.sh"}, captured.Subject.TestCommand)
}

func TestRunCmd_PropagatesWorkflowError(t *testing.T) {
	captureRun(t, errors.New("pool failed"))

	cmd, _ := newTestRoot(t, newRunCmd())
	cmd.SetArgs([]string{"run", "-c", "./host.sh"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool failed")
}

func TestRunCmd_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing test command", []string{"run"}, "no test host command configured"},
		{"unknown tier", []string{"run", "-c", "./host.sh", "-t", "extreme"}, "unknown severity tier"},
		{"zero parallelism", []string{"run", "-c", "./host.sh", "-p", "0"}, "run.parallel"},
		{"negative retries", []string{"run", "-c", "./host.sh", "--retries", "-1"}, "run.retries"},
		{"too many arguments", []string{"run", "-c", "./host.sh", "a", "b"}, "accepts at most 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: the workflow must not be reached.
			swapWorkflow(t, domainmocks.NewMockWorkflow(t))

			cmd, _ := newTestRoot(t, newRunCmd())
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
