package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gauntlet.dev/pkg/gauntlet/internal/domain/mutagens"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer. Rounds report
// from several goroutines, so writes are serialized.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayEstimation prints the candidate counts per member or the error.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, groups []mutagens.MutationGroup, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderEstimationTable(buildEstimationStats(groups)))

	return nil
}

func renderEstimationTable(stats estimationStats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)

	header := []string{"Member"}
	alignment := []int{tablewriter.ALIGN_LEFT}

	for _, group := range stats.groups {
		header = append(header, group.Name)
		alignment = append(alignment, tablewriter.ALIGN_CENTER)
	}

	header = append(header, "Total")
	alignment = append(alignment, tablewriter.ALIGN_CENTER)

	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment(alignment)

	for _, stat := range stats.members {
		row := []string{stat.member}
		for _, group := range stats.groups {
			row = append(row, strconv.Itoa(stat.counts[group.ID]))
		}

		table.Append(append(row, strconv.Itoa(stat.total)))
	}

	footer := []string{fmt.Sprintf("Total Members %d", len(stats.members))}
	for _, group := range stats.groups {
		footer = append(footer, strconv.Itoa(stats.totals[group.ID]))
	}

	table.SetFooter(append(footer, strconv.Itoa(stats.total)))
	table.Render()

	return tableBuffer.String()
}

// DisplaySessionInfo shows the scheduling decisions of a session.
func (s *SimpleUI) DisplaySessionInfo(ctx context.Context, info m.SessionInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Session %s: %d candidates (%d without coverage), tier %s\n",
		info.ID, info.Candidates, info.Uncovered, info.Tier)
	s.printf("Running %d round(s) with %d environment(s), %s schedule, round timeout %s\n",
		info.Rounds, info.Parallel, info.Strategy, info.Timeout)
}

// DisplayRoundStarted shows info about a round being dispatched.
func (s *SimpleUI) DisplayRoundStarted(ctx context.Context, round m.Round, attempt int) {
	if err := ctx.Err(); err != nil {
		return
	}

	if attempt > 0 {
		s.printf("Retrying round %d (attempt %d, %d candidates, %d tests)\n",
			round.Number, attempt+1, len(round.Candidates), len(round.Tests))

		return
	}

	s.printf("Starting round %d (%d candidates, %d tests)\n", round.Number, len(round.Candidates), len(round.Tests))
}

// DisplayRoundCompleted shows the outcome of a round attempt.
func (s *SimpleUI) DisplayRoundCompleted(ctx context.Context, report m.RoundReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	if report.Failed {
		s.printf("Round %d failed after %s: %s\n", report.Round, report.Duration, report.Error)
		return
	}

	c := countVerdicts(report.Results)
	s.printf("Completed round %d in %s -> killed %d, survived %d, timeout %d, skipped %d\n",
		report.Round, report.Duration, c.killed, c.survived, c.timeout, report.Skipped)

	if report.Error != "" {
		s.printf("  warning: %s\n", report.Error)
	}
}

// DisplaySummary prints undetected candidates and the final mutation score.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if rows := undetected(summary); len(rows) > 0 {
		s.printf("\n%s\n", renderUndetectedTable(rows))
	}

	s.printf("Rounds: %d completed, %d failed | Quarantined: %d\n",
		summary.CompletedRounds, summary.FailedRounds, summary.Quarantined)
	s.printf("Killed: %d | Survived: %d | Timeout: %d | No coverage: %d\n",
		summary.Killed, summary.Survived, summary.Timeout, summary.NoCoverage)
	s.printf("Mutation score: %.2f%%\n", summary.Score*100)
}

func renderUndetectedTable(results []m.MutationResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Candidate", "Mutation", "Verdict"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, r := range results {
		table.Append([]string{r.ID.String(), r.Description, r.Verdict.String()})
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
