package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gauntlet.dev/pkg/gauntlet/internal/adapter"
	"gauntlet.dev/pkg/gauntlet/internal/controller"
	"gauntlet.dev/pkg/gauntlet/internal/domain/mutagens"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// MinRoundTimeout floors the derived per-round timeout.
const MinRoundTimeout = 500 * time.Millisecond

// RunArgs contains the arguments for a mutation testing session.
type RunArgs struct {
	Subject           m.Subject
	Reports           m.Path
	Parallel          int
	Tier              m.Tier
	Seed              uint64
	MutationTimeout   time.Duration // 0 derives it from the coverage pass
	CoverageTimeout   time.Duration
	ScheduleThreshold int
	Retries           int
	MetricsFile       m.Path
}

// EstimateArgs contains the arguments for listing candidates.
type EstimateArgs struct {
	Subject m.Subject
	Tier    m.Tier
	Seed    uint64
}

// ViewArgs contains the arguments for displaying a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the user-facing operations.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Estimate(ctx context.Context, args EstimateArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ProgramAdapter
	adapter.TestHostAdapter
	adapter.ReportStore
	controller.UI
	Orchestrator
	Mutagen
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	programAdapter adapter.ProgramAdapter,
	hostAdapter adapter.TestHostAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
	mutagen Mutagen,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ProgramAdapter:  programAdapter,
		TestHostAdapter: hostAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Orchestrator:    orchestrator,
		Mutagen:         mutagen,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	start := time.Now()

	if err := w.Start(ctx, controller.WithTestMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	sessionID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("session id: %w", err)
	}

	pool, err := NewPool(ctx, w.SourceFSAdapter, args.Subject.ProjectDir, max(args.Parallel, 1))
	if err != nil {
		return fmt.Errorf("build execution pool: %w", err)
	}

	defer func() {
		if err := pool.Close(context.WithoutCancel(ctx)); err != nil {
			slog.Error("Failed to clean up execution pool", "error", err)
		}
	}()

	coverage, coverageDuration := w.collectCoverage(ctx, pool, args)

	scope := Scope{Tier: args.Tier, Seed: args.Seed}

	groups, err := w.generateCandidates(ctx, args.Subject, scope)
	if err != nil {
		return err
	}

	aggregator, err := NewAggregator("")
	if err != nil {
		return err
	}

	defer func() { _ = aggregator.Close() }()

	items, uncovered := mapCoverage(groups, coverage)
	aggregator.RecordUncovered(uncovered...)

	rounds, strategy := NewScheduler(args.ScheduleThreshold).Schedule(items)

	session := &Session{
		ID:         sessionID.String(),
		Subject:    args.Subject,
		Scope:      scope,
		Timeout:    roundTimeout(args.MutationTimeout, coverageDuration),
		Pool:       pool,
		Quarantine: NewQuarantine(),
	}

	w.DisplaySessionInfo(ctx, m.SessionInfo{
		ID:         session.ID,
		Strategy:   strategy,
		Tier:       args.Tier,
		Candidates: len(items) + len(uncovered),
		Uncovered:  len(uncovered),
		Rounds:     len(rounds),
		Parallel:   pool.Size(),
		Timeout:    session.Timeout,
	})

	slog.Info("Dispatching rounds", "session", session.ID, "strategy", strategy, "rounds", len(rounds), "timeout", session.Timeout)

	var group errgroup.Group

	for _, round := range rounds {
		group.Go(func() error {
			w.runRound(ctx, session, aggregator, round, args.Retries)
			return nil
		})
	}

	_ = group.Wait()

	summary, err := aggregator.Summary()
	if err != nil {
		return err
	}

	summary.SessionID = session.ID
	summary.Strategy = strategy
	summary.Tier = args.Tier.String()
	summary.Rounds = len(rounds)
	summary.Quarantined = session.Quarantine.Len()
	summary.Duration = time.Since(start)

	w.DisplaySummary(ctx, summary)

	var errs []error

	if _, err := w.SaveReport(ctx, args.Reports, summary); err != nil {
		slog.Error("Failed to save report", "dir", args.Reports, "error", err)
		errs = append(errs, fmt.Errorf("save report: %w", err))
	}

	if args.MetricsFile != "" {
		if err := WriteMetrics(string(args.MetricsFile)); err != nil {
			slog.Error("Failed to write metrics", "path", args.MetricsFile, "error", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// runRound dispatches a round and re-dispatches failed attempts. Timed out
// rounds are not retried: their candidates are already quarantined.
func (w *workflow) runRound(ctx context.Context, session *Session, aggregator *Aggregator, round m.Round, retries int) {
	for attempt := 0; ; attempt++ {
		w.DisplayRoundStarted(ctx, round, attempt)

		report, err := w.RunRound(ctx, session, round, attempt)
		_ = aggregator.Record(report)

		w.DisplayRoundCompleted(ctx, report)

		if err == nil || attempt >= retries || errors.Is(err, ErrRoundTimeout) || ctx.Err() != nil {
			return
		}

		slog.Warn("Retrying round", "round", round.Number, "attempt", attempt+1, "error", err)
	}
}

// collectCoverage runs the instrumented pass on a reserved environment.
// Any failure degrades to an empty record.
func (w *workflow) collectCoverage(ctx context.Context, pool *Pool, args RunArgs) (m.CoverageRecord, time.Duration) {
	env, err := pool.TakeOne()
	if err != nil {
		slog.Error("Failed to reserve coverage environment", "error", err)
		return m.CoverageRecord{}, 0
	}

	defer pool.Return(env)

	start := time.Now()
	record, err := w.CollectCoverage(ctx, adapter.HostRequest{
		Command: args.Subject.TestCommand,
		Dir:     env.Dir,
		Timeout: args.CoverageTimeout,
	})
	duration := time.Since(start)

	testHostSeconds.WithLabelValues(hostModeCoverage).Observe(duration.Seconds())

	if err != nil {
		slog.Warn("Coverage collection failed, continuing without coverage", "error", err, "duration", duration)
		return m.CoverageRecord{}, duration
	}

	slog.Info("Coverage collected", "tests", len(record), "duration", duration)

	return record, duration
}

func (w *workflow) generateCandidates(ctx context.Context, subject m.Subject, scope Scope) ([]mutagens.MutationGroup, error) {
	image := m.Path(filepath.Join(string(subject.ProjectDir), string(subject.Program)))

	program, err := w.Read(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}

	groups, err := w.Generate(ctx, program, scope)
	if err != nil {
		slog.Error("Failed to generate candidates", "program", program.Name, "error", err)
		return nil, fmt.Errorf("generate candidates: %w", err)
	}

	return groups, nil
}

// mapCoverage pairs every candidate with the tests covering its member.
// Candidates without covering tests are returned as uncovered results.
func mapCoverage(groups []mutagens.MutationGroup, coverage m.CoverageRecord) ([]m.Scheduled, []m.MutationResult) {
	index := coverage.Index()

	var (
		items     []m.Scheduled
		uncovered []m.MutationResult
	)

	for _, group := range groups {
		for _, candidate := range group.Candidates {
			tests := index[candidate.ID.Member]
			if len(tests) == 0 {
				uncovered = append(uncovered, m.MutationResult{
					ID:          candidate.ID,
					Description: candidate.Description,
					Verdict:     m.NoCoverage,
				})

				continue
			}

			items = append(items, m.Scheduled{ID: candidate.ID, Tests: tests})
		}
	}

	return items, uncovered
}

// roundTimeout returns configured when set, else twice the coverage pass
// duration floored at MinRoundTimeout.
func roundTimeout(configured, coverage time.Duration) time.Duration {
	if configured > 0 {
		return configured
	}

	return max(2*coverage, MinRoundTimeout)
}

func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	if err := w.Start(ctx, controller.WithEstimateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	groups, err := w.generateCandidates(ctx, args.Subject, Scope{Tier: args.Tier, Seed: args.Seed})
	if err != nil {
		_ = w.DisplayEstimation(ctx, nil, err)
		w.Close(ctx)

		return err
	}

	if err := w.DisplayEstimation(ctx, groups, nil); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display estimation", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	// Wait for UI to be closed by user (press 'q')
	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	summary, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		slog.Error("Failed to load report", "path", args.Report, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}

	w.DisplaySummary(ctx, summary)
	w.Wait(ctx)
	w.Close(ctx)

	return nil
}
