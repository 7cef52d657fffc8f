package domain

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	m "gauntlet.dev/pkg/gauntlet/internal/model"
	pkg "gauntlet.dev/pkg/gauntlet/pkg"
)

// Aggregator is the report sink: round tasks record concurrently, and the
// session summary is computed from the completed rounds afterwards.
type Aggregator struct {
	mu        sync.Mutex
	reports   pkg.FileSpill[m.RoundReport]
	uncovered []m.MutationResult
}

// NewAggregator creates an Aggregator spilling round reports under dir, or
// the system temp dir when dir is empty.
func NewAggregator(dir string) (*Aggregator, error) {
	reports, err := pkg.NewFileSpill[m.RoundReport](dir)
	if err != nil {
		return nil, fmt.Errorf("create report spill: %w", err)
	}

	return &Aggregator{reports: reports}, nil
}

// Record appends one round report.
func (a *Aggregator) Record(report m.RoundReport) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.reports.Append(report); err != nil {
		slog.Error("Failed to record round report", "round", report.Round, "error", err)
		return fmt.Errorf("record round %d: %w", report.Round, err)
	}

	return nil
}

// RecordUncovered records candidates that no test covers.
func (a *Aggregator) RecordUncovered(results ...m.MutationResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, result := range results {
		result.Verdict = m.NoCoverage
		a.uncovered = append(a.uncovered, result)

		mutationsTotal.WithLabelValues(m.NoCoverage.String()).Inc()
	}
}

// Summary computes session totals. A round counts as completed when its
// last recorded attempt did not fail; results of failed rounds are left
// out of the score.
func (a *Aggregator) Summary() (m.Summary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	final := make(map[int]m.RoundReport)

	err := a.reports.Range(func(_ uint64, report m.RoundReport) error {
		if prev, ok := final[report.Round]; !ok || report.Attempt >= prev.Attempt {
			final[report.Round] = report
		}

		return nil
	})
	if err != nil {
		return m.Summary{}, fmt.Errorf("read round reports: %w", err)
	}

	summary := m.Summary{}
	summary.Results = append(summary.Results, a.uncovered...)

	for _, report := range final {
		if report.Failed {
			summary.FailedRounds++
			continue
		}

		summary.CompletedRounds++
		summary.Results = append(summary.Results, report.Results...)
	}

	for _, result := range summary.Results {
		switch result.Verdict {
		case m.Killed:
			summary.Killed++
		case m.Survived:
			summary.Survived++
		case m.Timeout:
			summary.Timeout++
		case m.NoCoverage:
			summary.NoCoverage++
		}
	}

	sort.Slice(summary.Results, func(i, j int) bool {
		return lessCandidateID(summary.Results[i].ID, summary.Results[j].ID)
	})

	summary.Score = mutationScore(summary)

	return summary, nil
}

// Close removes the spill file.
func (a *Aggregator) Close() error {
	return a.reports.Remove()
}

// mutationScore counts timeouts as detected. An empty session scores 1.
func mutationScore(s m.Summary) float64 {
	total := s.Total()
	if total == 0 {
		return 1.0
	}

	return float64(s.Killed+s.Timeout) / float64(total)
}
