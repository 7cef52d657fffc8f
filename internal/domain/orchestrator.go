package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"gauntlet.dev/pkg/gauntlet/internal/adapter"
	"gauntlet.dev/pkg/gauntlet/internal/domain/mutagens"
	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// Session is the state shared by every round of one run.
type Session struct {
	ID         string
	Subject    m.Subject
	Scope      Scope
	Timeout    time.Duration
	Pool       *Pool
	Quarantine *Quarantine
}

// Orchestrator runs one round: acquire an environment, apply the round's
// candidates to its program copy, run the covering tests, classify, revert
// and release.
type Orchestrator interface {
	// RunRound always returns a report. The error is non-nil exactly when
	// the report is marked failed.
	RunRound(ctx context.Context, session *Session, round m.Round, attempt int) (m.RoundReport, error)
}

type orchestrator struct {
	programs adapter.ProgramAdapter
	host     adapter.TestHostAdapter
	mutagen  Mutagen
}

// NewOrchestrator constructs an Orchestrator backed by the provided program
// accessor, test host and mutagen.
func NewOrchestrator(programs adapter.ProgramAdapter, host adapter.TestHostAdapter, mutagen Mutagen) Orchestrator {
	return &orchestrator{
		programs: programs,
		host:     host,
		mutagen:  mutagen,
	}
}

func (o *orchestrator) RunRound(ctx context.Context, session *Session, round m.Round, attempt int) (report m.RoundReport, err error) {
	start := time.Now()
	report = m.RoundReport{Round: round.Number, Attempt: attempt}

	env, err := session.Pool.Acquire(ctx)
	if err != nil {
		return o.fail(report, start, fmt.Errorf("%w: acquire environment: %w", ErrRoundException, err))
	}

	defer session.Pool.Release(env)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Round panicked", "round", round.Number, "env", env.Ordinal, "panic", r)

			_ = session.Pool.Restore(context.WithoutCancel(ctx), env, session.Subject.Program)
			report, err = o.fail(report, start, fmt.Errorf("%w: %v", ErrRoundException, r))
		}
	}()

	if err := o.execute(ctx, session, env, round, &report); err != nil {
		return o.fail(report, start, err)
	}

	report.Duration = time.Since(start)
	roundsTotal.WithLabelValues(roundStatusCompleted).Inc()

	for _, result := range report.Results {
		mutationsTotal.WithLabelValues(result.Verdict.String()).Inc()
	}

	return report, nil
}

func (o *orchestrator) fail(report m.RoundReport, start time.Time, err error) (m.RoundReport, error) {
	slog.Error("Round failed", "round", report.Round, "attempt", report.Attempt, "error", err)

	report.Failed = true
	report.Error = err.Error()
	report.Duration = time.Since(start)
	roundsTotal.WithLabelValues(roundStatusFailed).Inc()

	return report, err
}

func (o *orchestrator) execute(ctx context.Context, session *Session, env *Environment, round m.Round, report *m.RoundReport) error {
	var active []m.Scheduled

	for _, candidate := range round.Candidates {
		if session.Quarantine.Contains(candidate.ID) {
			report.Skipped++
			continue
		}

		active = append(active, candidate)
	}

	if len(active) == 0 {
		return nil
	}

	image := imagePath(env, session.Subject)

	program, err := o.programs.Read(ctx, image)
	if err != nil {
		return fmt.Errorf("%w: read program: %w", ErrApplyFailure, err)
	}

	ids := make([]m.CandidateID, 0, len(active))
	for _, candidate := range active {
		ids = append(ids, candidate.ID)
	}

	resolved, err := o.mutagen.Resolve(ctx, program, session.Scope, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrApplyFailure, err)
	}

	pristine, err := ir.Bytes(program)
	if err != nil {
		return fmt.Errorf("%w: snapshot program: %w", ErrApplyFailure, err)
	}

	var applied []mutagens.Candidate

	defer func() {
		o.revert(context.WithoutCancel(ctx), session, env, program, applied, pristine)
	}()

	for _, id := range ids {
		candidate := resolved[id]

		if err := candidate.Edit.Apply(program); err != nil {
			return fmt.Errorf("%w: apply %s: %w", ErrApplyFailure, id, err)
		}

		applied = append(applied, candidate)
	}

	if err := o.programs.Flush(ctx, program, image); err != nil {
		return fmt.Errorf("%w: flush mutated program: %w", ErrApplyFailure, err)
	}

	tests := unionTests(active)
	report.Tests = len(tests)

	hostStart := time.Now()
	results, hostErr := o.host.RunTests(ctx, adapter.HostRequest{
		Command: session.Subject.TestCommand,
		Dir:     env.Dir,
		Tests:   tests,
		Timeout: session.Timeout,
	})
	hostDuration := time.Since(hostStart)
	testHostSeconds.WithLabelValues(hostModeTest).Observe(hostDuration.Seconds())

	switch {
	case hostErr == nil:
	case errors.Is(hostErr, adapter.ErrTestHostCrash):
		// Unresolved tests come back as OutcomeNone and classify as timeouts.
		slog.Warn("Test host crashed", "round", report.Round, "env", env.Ordinal, "error", hostErr)
		report.Error = fmt.Errorf("%w: %w", ErrTestHostCrash, hostErr).Error()
	case errors.Is(hostErr, adapter.ErrTestHostTimeout):
		report.Results = o.classify(session, active, resolved, results, hostDuration)
		return fmt.Errorf("%w: %w", ErrRoundTimeout, hostErr)
	default:
		return fmt.Errorf("%w: run tests: %w", ErrRoundException, hostErr)
	}

	report.Results = o.classify(session, active, resolved, results, hostDuration)

	return nil
}

// classify turns per-test outcomes into verdicts and quarantines every
// candidate covered by a test without an outcome.
func (o *orchestrator) classify(
	session *Session,
	active []m.Scheduled,
	resolved map[m.CandidateID]mutagens.Candidate,
	results []m.TestResult,
	duration time.Duration,
) []m.MutationResult {
	outcomes := make(map[string]m.TestOutcome, len(results))
	for _, result := range results {
		outcomes[result.Name] = result.Outcome
	}

	out := make([]m.MutationResult, 0, len(active))

	for _, candidate := range active {
		verdict, unresolved := verdictFor(candidate.Tests, outcomes)
		if unresolved {
			session.Quarantine.Add(candidate.ID)
		}

		out = append(out, m.MutationResult{
			ID:          candidate.ID,
			Description: resolved[candidate.ID].Description,
			Verdict:     verdict,
			Duration:    duration,
		})
	}

	return out
}

// verdictFor applies the verdict precedence Killed, Timeout, Survived,
// NoCoverage. Missing outcomes count as OutcomeNone. unresolved reports
// whether any covering test had no outcome.
func verdictFor(tests []string, outcomes map[string]m.TestOutcome) (verdict m.Verdict, unresolved bool) {
	var failed, passed bool

	for _, test := range tests {
		switch outcomes[test] {
		case m.OutcomeFailed:
			failed = true
		case m.OutcomePassed:
			passed = true
		case m.OutcomeNone:
			unresolved = true
		case m.OutcomeSkipped:
		}
	}

	switch {
	case failed:
		return m.Killed, unresolved
	case unresolved:
		return m.Timeout, unresolved
	case passed:
		return m.Survived, unresolved
	default:
		return m.NoCoverage, unresolved
	}
}

// revert undoes applied edits in reverse order and flushes the original
// image. If the reverted program does not encode to the pristine bytes the
// image is restored from the project copy instead.
func (o *orchestrator) revert(ctx context.Context, session *Session, env *Environment, program *ir.Program, applied []mutagens.Candidate, pristine []byte) {
	if len(applied) == 0 {
		return
	}

	clean := true

	for i := len(applied) - 1; i >= 0; i-- {
		if err := applied[i].Edit.Revert(program); err != nil {
			slog.Error("Failed to revert candidate", "candidate", applied[i].ID.String(), "env", env.Ordinal, "error", err)

			clean = false
		}
	}

	if clean {
		reverted, err := ir.Bytes(program)
		clean = err == nil && bytes.Equal(reverted, pristine)
	}

	if clean {
		if err := o.programs.Flush(ctx, program, imagePath(env, session.Subject)); err == nil {
			return
		}
	}

	_ = session.Pool.Restore(ctx, env, session.Subject.Program)
}

func imagePath(env *Environment, subject m.Subject) m.Path {
	return m.Path(filepath.Join(string(env.Dir), string(subject.Program)))
}

func unionTests(candidates []m.Scheduled) []string {
	set := make(testSet)

	for _, candidate := range candidates {
		for _, test := range candidate.Tests {
			set[test] = struct{}{}
		}
	}

	return set.sorted()
}
