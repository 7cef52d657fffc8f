package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gauntlet.dev/pkg/gauntlet/internal/adapter"
	adaptermocks "gauntlet.dev/pkg/gauntlet/internal/adapter/mocks"
	controllermocks "gauntlet.dev/pkg/gauntlet/internal/controller/mocks"
	"gauntlet.dev/pkg/gauntlet/internal/domain"
	domainmocks "gauntlet.dev/pkg/gauntlet/internal/domain/mocks"
	"gauntlet.dev/pkg/gauntlet/internal/domain/mutagens"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
	"gauntlet.dev/pkg/gauntlet/internal/testutil"
)

type workflowFixture struct {
	host    *adaptermocks.MockTestHostAdapter
	reports *adaptermocks.MockReportStore
	ui      *controllermocks.MockUI
	args    domain.RunArgs
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	project := testutil.WriteProject(t, testutil.CalcProgram())

	return &workflowFixture{
		host:    adaptermocks.NewMockTestHostAdapter(t),
		reports: adaptermocks.NewMockReportStore(t),
		ui:      controllermocks.NewMockUI(t),
		args: domain.RunArgs{
			Subject: m.Subject{
				ProjectDir:  m.Path(project),
				Program:     testutil.ProgramFile,
				TestCommand: []string{"host"},
			},
			Reports:         m.Path(filepath.Join(t.TempDir(), "reports")),
			Parallel:        2,
			Tier:            m.TierSimple,
			Seed:            1,
			MutationTimeout: time.Second,
		},
	}
}

func (f *workflowFixture) workflow(orchestrator domain.Orchestrator, mutagen domain.Mutagen) domain.Workflow {
	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalProgramAdapter(),
		f.host,
		f.reports,
		f.ui,
		orchestrator,
		mutagen,
	)
}

// expectRunUI registers the calls every Run makes on the UI and returns a
// pointer that receives the displayed summary.
func (f *workflowFixture) expectRunUI(rounds int) *m.Summary {
	var summary m.Summary

	f.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	f.ui.EXPECT().Close(mock.Anything).Return().Once()
	f.ui.EXPECT().DisplaySessionInfo(mock.Anything, mock.Anything).Return().Once()

	if rounds > 0 {
		f.ui.EXPECT().DisplayRoundStarted(mock.Anything, mock.Anything, mock.Anything).Return().Times(rounds)
		f.ui.EXPECT().DisplayRoundCompleted(mock.Anything, mock.Anything).Return().Times(rounds)
	}

	f.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s m.Summary) { summary = s }).
		Return().Once()

	return &summary
}

func arithmeticOnly() domain.Mutagen {
	return domain.NewMutagen(mutagens.Arithmetic())
}

func TestWorkflow_Run(t *testing.T) {
	f := newWorkflowFixture(t)
	f.args.MetricsFile = m.Path(filepath.Join(t.TempDir(), "gauntlet.prom"))

	f.host.EXPECT().CollectCoverage(mock.Anything, mock.Anything).Return(m.CoverageRecord{
		"T1": {"Calc::Add"},
		"T2": {"Calc::Scale"},
		"T3": {},
	}, nil).Once()

	f.host.EXPECT().RunTests(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req adapter.HostRequest) ([]m.TestResult, error) {
			assert.Equal(t, time.Second, req.Timeout)

			return results(map[string]m.TestOutcome{
				"T1": m.OutcomeFailed,
				"T2": m.OutcomePassed,
			}, req.Tests), nil
		}).Times(2)

	// Calc::Add has one simple arithmetic candidate, Calc::Scale two that
	// share T2, so the schedule needs two rounds.
	summary := f.expectRunUI(2)

	f.reports.EXPECT().SaveReport(mock.Anything, f.args.Reports, mock.Anything).
		RunAndReturn(func(_ context.Context, dir m.Path, s m.Summary) (m.Path, error) {
			return m.Path(filepath.Join(string(dir), s.SessionID+".yaml")), nil
		}).Once()

	wf := f.workflow(domain.NewOrchestrator(adapter.NewLocalProgramAdapter(), f.host, arithmeticOnly()), arithmeticOnly())

	require.NoError(t, wf.Run(context.Background(), f.args))

	assert.NotEmpty(t, summary.SessionID)
	assert.Equal(t, m.StrategyOptimal, summary.Strategy)
	assert.Equal(t, "simple", summary.Tier)
	assert.Equal(t, 2, summary.Rounds)
	assert.Equal(t, 2, summary.CompletedRounds)
	assert.Equal(t, 1, summary.Killed)
	assert.Equal(t, 2, summary.Survived)
	assert.Equal(t, 0, summary.NoCoverage)
	assert.InDelta(t, 1.0/3.0, summary.Score, 1e-9)

	metrics, err := os.ReadFile(string(f.args.MetricsFile))
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "gauntlet_rounds_total")
}

func TestWorkflow_Run_WithoutCoverage(t *testing.T) {
	f := newWorkflowFixture(t)

	f.host.EXPECT().CollectCoverage(mock.Anything, mock.Anything).
		Return(m.CoverageRecord{}, adapter.ErrTestHostCrash).Once()

	summary := f.expectRunUI(0)
	f.reports.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.Anything).Return("", nil).Once()

	wf := f.workflow(domainmocks.NewMockOrchestrator(t), arithmeticOnly())

	require.NoError(t, wf.Run(context.Background(), f.args))

	assert.Equal(t, 0, summary.Rounds)
	assert.Equal(t, 3, summary.NoCoverage)
	assert.InDelta(t, 0.0, summary.Score, 1e-9)
}

func TestWorkflow_Run_Retries(t *testing.T) {
	coverage := m.CoverageRecord{"T1": {"Calc::Add"}}

	t.Run("failed round is retried", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.args.Retries = 2
		f.host.EXPECT().CollectCoverage(mock.Anything, mock.Anything).Return(coverage, nil).Once()

		orch := domainmocks.NewMockOrchestrator(t)
		orch.EXPECT().RunRound(mock.Anything, mock.Anything, mock.Anything, 0).
			Return(m.RoundReport{Round: 1, Failed: true}, domain.ErrRoundException).Once()
		orch.EXPECT().RunRound(mock.Anything, mock.Anything, mock.Anything, 1).
			RunAndReturn(func(_ context.Context, _ *domain.Session, round m.Round, attempt int) (m.RoundReport, error) {
				return m.RoundReport{
					Round:   round.Number,
					Attempt: attempt,
					Results: []m.MutationResult{{ID: round.Candidates[0].ID, Verdict: m.Killed}},
				}, nil
			}).Once()

		summary := f.expectRunUI(2)
		f.reports.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.Anything).Return("", nil).Once()

		require.NoError(t, f.workflow(orch, arithmeticOnly()).Run(context.Background(), f.args))

		assert.Equal(t, 1, summary.CompletedRounds)
		assert.Equal(t, 0, summary.FailedRounds)
		assert.Equal(t, 1, summary.Killed)
	})

	t.Run("timed out round is not retried", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.args.Retries = 2
		f.host.EXPECT().CollectCoverage(mock.Anything, mock.Anything).Return(coverage, nil).Once()

		orch := domainmocks.NewMockOrchestrator(t)
		orch.EXPECT().RunRound(mock.Anything, mock.Anything, mock.Anything, 0).
			Return(m.RoundReport{Round: 1, Failed: true}, domain.ErrRoundTimeout).Once()

		summary := f.expectRunUI(1)
		f.reports.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.Anything).Return("", nil).Once()

		require.NoError(t, f.workflow(orch, arithmeticOnly()).Run(context.Background(), f.args))

		assert.Equal(t, 1, summary.FailedRounds)
		assert.Equal(t, 0, summary.Killed+summary.Timeout)
		assert.Equal(t, 2, summary.NoCoverage)
	})

	t.Run("retries are bounded", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.args.Retries = 1
		f.host.EXPECT().CollectCoverage(mock.Anything, mock.Anything).Return(coverage, nil).Once()

		orch := domainmocks.NewMockOrchestrator(t)
		orch.EXPECT().RunRound(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(m.RoundReport{Round: 1, Failed: true}, domain.ErrApplyFailure).Times(2)

		summary := f.expectRunUI(2)
		f.reports.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.Anything).Return("", nil).Once()

		require.NoError(t, f.workflow(orch, arithmeticOnly()).Run(context.Background(), f.args))

		assert.Equal(t, 1, summary.FailedRounds)
	})
}

func TestWorkflow_Run_Failures(t *testing.T) {
	t.Run("pool failure is fatal", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.args.Subject.ProjectDir = m.Path(filepath.Join(t.TempDir(), "missing"))

		f.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		f.ui.EXPECT().Close(mock.Anything).Return().Once()

		err := f.workflow(domainmocks.NewMockOrchestrator(t), arithmeticOnly()).Run(context.Background(), f.args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "build execution pool")
	})

	t.Run("ui start failure", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(errors.New("no terminal")).Once()

		err := f.workflow(domainmocks.NewMockOrchestrator(t), arithmeticOnly()).Run(context.Background(), f.args)
		require.EqualError(t, err, "no terminal")
	})

	t.Run("report save failure is returned", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.host.EXPECT().CollectCoverage(mock.Anything, mock.Anything).Return(m.CoverageRecord{}, nil).Once()

		f.expectRunUI(0)
		f.reports.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("read-only file system")).Once()

		err := f.workflow(domainmocks.NewMockOrchestrator(t), arithmeticOnly()).Run(context.Background(), f.args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save report")
	})
}

func TestWorkflow_Estimate(t *testing.T) {
	t.Run("displays groups", func(t *testing.T) {
		f := newWorkflowFixture(t)

		f.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		f.ui.EXPECT().DisplayEstimation(mock.Anything, mock.Anything, nil).
			RunAndReturn(func(_ context.Context, groups []mutagens.MutationGroup, _ error) error {
				assert.Equal(t, 3, countCandidates(groups))
				return nil
			}).Once()
		f.ui.EXPECT().Wait(mock.Anything).Return().Once()
		f.ui.EXPECT().Close(mock.Anything).Return().Once()

		err := f.workflow(domainmocks.NewMockOrchestrator(t), arithmeticOnly()).Estimate(context.Background(), domain.EstimateArgs{
			Subject: f.args.Subject,
			Tier:    m.TierSimple,
		})
		require.NoError(t, err)
	})

	t.Run("read failure is displayed", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.args.Subject.Program = "missing.gir"

		f.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		f.ui.EXPECT().DisplayEstimation(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		f.ui.EXPECT().Close(mock.Anything).Return().Once()

		err := f.workflow(domainmocks.NewMockOrchestrator(t), arithmeticOnly()).Estimate(context.Background(), domain.EstimateArgs{
			Subject: f.args.Subject,
			Tier:    m.TierSimple,
		})
		require.Error(t, err)
	})

	t.Run("mutagen failure", func(t *testing.T) {
		f := newWorkflowFixture(t)

		mg := domainmocks.NewMockMutagen(t)
		mg.EXPECT().Generate(mock.Anything, mock.Anything, domain.Scope{Tier: m.TierMedium, Seed: 3}).
			Return(nil, errors.New("analyzer failed")).Once()

		f.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		f.ui.EXPECT().DisplayEstimation(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		f.ui.EXPECT().Close(mock.Anything).Return().Once()

		err := f.workflow(domainmocks.NewMockOrchestrator(t), mg).Estimate(context.Background(), domain.EstimateArgs{
			Subject: f.args.Subject,
			Tier:    m.TierMedium,
			Seed:    3,
		})
		require.ErrorContains(t, err, "analyzer failed")
	})
}

func TestWorkflow_View(t *testing.T) {
	t.Run("displays stored summary", func(t *testing.T) {
		f := newWorkflowFixture(t)
		stored := m.Summary{SessionID: "abc", Killed: 3, Score: 1}

		f.reports.EXPECT().LoadReport(mock.Anything, m.Path("reports")).Return(stored, nil).Once()
		f.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		f.ui.EXPECT().DisplaySummary(mock.Anything, stored).Return().Once()
		f.ui.EXPECT().Wait(mock.Anything).Return().Once()
		f.ui.EXPECT().Close(mock.Anything).Return().Once()

		err := f.workflow(domainmocks.NewMockOrchestrator(t), arithmeticOnly()).View(context.Background(), domain.ViewArgs{Report: "reports"})
		require.NoError(t, err)
	})

	t.Run("load failure", func(t *testing.T) {
		f := newWorkflowFixture(t)

		f.reports.EXPECT().LoadReport(mock.Anything, mock.Anything).Return(m.Summary{}, os.ErrNotExist).Once()

		err := f.workflow(domainmocks.NewMockOrchestrator(t), arithmeticOnly()).View(context.Background(), domain.ViewArgs{Report: "missing"})
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
