package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gauntlet.dev/pkg/gauntlet/internal/domain/mutagens"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// recentRounds is how many finished rounds the live view keeps on screen.
const recentRounds = 8

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			Padding(0, 20)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("241"))
	killedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	survivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	timeoutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// TUI implements UI using Bubble Tea. The program runs in its own goroutine
// between Start and Close; Display calls are delivered as messages.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI. Extra program options are appended to the
// defaults, which lets tests run without a terminal.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// Start launches the Bubble Tea program for the selected mode.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newStartConfig(options...)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.program != nil {
		return errors.New("tui already started")
	}

	programOptions := []tea.ProgramOption{tea.WithOutput(p.output), tea.WithContext(ctx)}
	if config.mode != ModeTest {
		programOptions = append(programOptions, tea.WithAltScreen())
	}

	program := tea.NewProgram(newSessionModel(config.mode), append(programOptions, p.options...)...)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			p.mu.Lock()
			p.err = err
			p.mu.Unlock()
		}
	}()

	p.program = program
	p.done = done

	return nil
}

// Close stops the program and waits for it to restore the terminal.
func (p *TUI) Close(ctx context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program = nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()

	select {
	case <-done:
	case <-ctx.Done():
		program.Kill()
	}
}

// Wait blocks until the user quits the program.
func (p *TUI) Wait(ctx context.Context) {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// Err returns the error the program exited with, if any.
func (p *TUI) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}

func (p *TUI) send(msg tea.Msg) {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

type estimationMsg struct {
	stats estimationStats
	err   error
}

type sessionInfoMsg m.SessionInfo

type roundStartedMsg struct {
	round   m.Round
	attempt int
}

type roundCompletedMsg m.RoundReport

type summaryMsg m.Summary

// DisplayEstimation shows the candidate listing.
func (p *TUI) DisplayEstimation(ctx context.Context, groups []mutagens.MutationGroup, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	p.send(estimationMsg{stats: buildEstimationStats(groups), err: err})

	return err
}

// DisplaySessionInfo shows the scheduling decisions of a session.
func (p *TUI) DisplaySessionInfo(ctx context.Context, info m.SessionInfo) {
	if ctx.Err() == nil {
		p.send(sessionInfoMsg(info))
	}
}

// DisplayRoundStarted marks a round as running.
func (p *TUI) DisplayRoundStarted(ctx context.Context, round m.Round, attempt int) {
	if ctx.Err() == nil {
		p.send(roundStartedMsg{round: round, attempt: attempt})
	}
}

// DisplayRoundCompleted records a finished round attempt.
func (p *TUI) DisplayRoundCompleted(ctx context.Context, report m.RoundReport) {
	if ctx.Err() == nil {
		p.send(roundCompletedMsg(report))
	}
}

// DisplaySummary shows the final session summary.
func (p *TUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if ctx.Err() == nil {
		p.send(summaryMsg(summary))
	}
}

// sessionModel is the Bubble Tea model behind every mode. Estimation and
// report views are scrollable; the test view is a live dashboard.
type sessionModel struct {
	mode     StartMode
	width    int
	height   int
	viewport viewport.Model
	spinner  spinner.Model
	progress progress.Model

	info     *m.SessionInfo
	running  map[int]int  // round number to attempt
	outcomes map[int]bool // round number to failed, last attempt wins
	verdicts verdictCounts
	recent   []string
	estimate *estimationMsg
	summary  *m.Summary
	quitting bool
}

func newSessionModel(mode StartMode) sessionModel {
	return sessionModel{
		mode:     mode,
		viewport: viewport.New(80, 20),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		running:  make(map[int]int),
		outcomes: make(map[int]bool),
	}
}

func (sm sessionModel) Init() tea.Cmd {
	if sm.mode == ModeTest {
		return sm.spinner.Tick
	}

	return nil
}

func (sm sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
		sm.viewport.Width = msg.Width
		sm.viewport.Height = max(msg.Height-footerLines, 1)
		sm.viewport.SetContent(sm.content())

		return sm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			sm.quitting = true
			return sm, tea.Quit
		}

		if sm.mode == ModeTest {
			return sm, nil
		}

		var cmd tea.Cmd
		sm.viewport, cmd = sm.viewport.Update(msg)

		return sm, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd

	case estimationMsg:
		sm.estimate = &msg
		sm.viewport.SetContent(sm.content())

	case sessionInfoMsg:
		info := m.SessionInfo(msg)
		sm.info = &info

	case roundStartedMsg:
		sm.running[msg.round.Number] = msg.attempt

	case roundCompletedMsg:
		sm = sm.recordRound(m.RoundReport(msg))

	case summaryMsg:
		summary := m.Summary(msg)
		sm.summary = &summary
		sm.viewport.SetContent(sm.content())
	}

	return sm, nil
}

func (sm sessionModel) recordRound(report m.RoundReport) sessionModel {
	delete(sm.running, report.Round)

	var line string

	sm.outcomes[report.Round] = report.Failed

	if report.Failed {
		line = errorStyle.Render(fmt.Sprintf("✗ round %d failed: %s", report.Round, report.Error))
	} else {
		c := countVerdicts(report.Results)
		sm.verdicts.killed += c.killed
		sm.verdicts.survived += c.survived
		sm.verdicts.timeout += c.timeout
		line = fmt.Sprintf("✓ round %d: %s killed, %s survived, %s timeout (%s)",
			report.Round,
			countStyle(killedStyle, c.killed),
			countStyle(survivedStyle, c.survived),
			countStyle(timeoutStyle, c.timeout),
			report.Duration.Round(time.Millisecond))
	}

	sm.recent = append(sm.recent, line)
	if len(sm.recent) > recentRounds {
		sm.recent = sm.recent[len(sm.recent)-recentRounds:]
	}

	return sm
}

// footerLines is reserved below the viewport for the help line.
const footerLines = 2

func (sm sessionModel) View() string {
	if sm.mode == ModeTest {
		return sm.dashboard()
	}

	if sm.height == 0 {
		return sm.content()
	}

	return sm.viewport.View() + "\n" + faintStyle.Render(fmt.Sprintf(
		"  %3.f%% | ↑/k: up | ↓/j: down | pgup/pgdown | q: quit", sm.viewport.ScrollPercent()*100))
}

// content is the full scrollable document of the estimate and view modes.
func (sm sessionModel) content() string {
	var b strings.Builder

	b.WriteString(renderHeader())

	switch {
	case sm.estimate != nil && sm.estimate.err != nil:
		b.WriteString(errorStyle.Render("  estimation error: "+sm.estimate.err.Error()) + "\n")
	case sm.estimate != nil:
		b.WriteString(renderEstimation(sm.estimate.stats))
	case sm.summary != nil:
		b.WriteString(renderSummary(*sm.summary))
	}

	return b.String()
}

func (sm sessionModel) dashboard() string {
	var b strings.Builder

	b.WriteString(renderHeader())

	if sm.info == nil {
		fmt.Fprintf(&b, "  %s collecting coverage and generating candidates\n", sm.spinner.View())
		return b.String()
	}

	fmt.Fprintf(&b, "  Session %s | %d candidates (%d without coverage) | tier %s\n",
		sm.info.ID, sm.info.Candidates, sm.info.Uncovered, sm.info.Tier)
	fmt.Fprintf(&b, "  %d round(s), %s schedule, %d environment(s), timeout %s\n\n",
		sm.info.Rounds, sm.info.Strategy, sm.info.Parallel, sm.info.Timeout)

	done := len(sm.outcomes)
	percent := 1.0

	if sm.info.Rounds > 0 {
		percent = float64(done) / float64(sm.info.Rounds)
	}

	fmt.Fprintf(&b, "  %s %d/%d\n", sm.progress.ViewAs(min(percent, 1)), done, sm.info.Rounds)
	fmt.Fprintf(&b, "  Killed: %s | Survived: %s | Timeout: %s\n\n",
		countStyle(killedStyle, sm.verdicts.killed),
		countStyle(survivedStyle, sm.verdicts.survived),
		countStyle(timeoutStyle, sm.verdicts.timeout))

	if len(sm.running) > 0 {
		rounds := make([]int, 0, len(sm.running))
		for number := range sm.running {
			rounds = append(rounds, number)
		}

		sort.Ints(rounds)

		labels := make([]string, 0, len(rounds))
		for _, number := range rounds {
			label := fmt.Sprintf("#%d", number)
			if attempt := sm.running[number]; attempt > 0 {
				label += fmt.Sprintf(" (retry %d)", attempt)
			}

			labels = append(labels, label)
		}

		fmt.Fprintf(&b, "  %s running %s\n\n", sm.spinner.View(), strings.Join(labels, ", "))
	}

	for _, line := range sm.recent {
		b.WriteString("  " + line + "\n")
	}

	if sm.summary != nil {
		b.WriteString("\n" + renderSummary(*sm.summary))
	}

	return b.String()
}

func renderHeader() string {
	return headerStyle.Render("Gauntlet - Mutation Testing") + "\n\n"
}

// countStyle renders zero counts faint so non-zero values stand out.
func countStyle(style lipgloss.Style, n int) string {
	if n == 0 {
		return faintStyle.Render("0")
	}

	return style.Render(fmt.Sprintf("%d", n))
}

func renderEstimation(stats estimationStats) string {
	var b strings.Builder

	if len(stats.members) == 0 {
		b.WriteString("  📭 No mutation candidates found\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render("  🔢 Mutation candidates per member:") + "\n\n")

	for _, stat := range stats.members {
		parts := make([]string, 0, len(stats.groups))
		for _, group := range stats.groups {
			if n := stat.counts[group.ID]; n > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(group.Name)))
			}
		}

		fmt.Fprintf(&b, "  %s: %s\n", stat.member, strings.Join(parts, ", "))
	}

	b.WriteString("\n")

	for _, group := range stats.groups {
		fmt.Fprintf(&b, "  %-12s %s\n", group.Name, countStyle(titleStyle, stats.totals[group.ID]))
	}

	fmt.Fprintf(&b, "\n  📊 Total: %d candidates across %d member(s)\n", stats.total, len(stats.members))

	return b.String()
}

func renderSummary(summary m.Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  🧬 Mutation Testing Results:") + "\n\n")

	for _, r := range undetected(summary) {
		style := survivedStyle
		if r.Verdict == m.NoCoverage {
			style = faintStyle
		}

		fmt.Fprintf(&b, "    ✗ %s %s - %s\n", r.ID, r.Description, style.Render(r.Verdict.String()))
	}

	fmt.Fprintf(&b, "\n  📊 Summary:\n")
	fmt.Fprintf(&b, "  Rounds: %d completed, %d failed | Quarantined: %d\n",
		summary.CompletedRounds, summary.FailedRounds, summary.Quarantined)
	fmt.Fprintf(&b, "  Total: %d | Killed: %s | Survived: %s | Timeout: %s | No coverage: %s | Score: %.1f%%\n",
		summary.Total(),
		countStyle(killedStyle, summary.Killed),
		countStyle(survivedStyle, summary.Survived),
		countStyle(timeoutStyle, summary.Timeout),
		countStyle(faintStyle, summary.NoCoverage),
		summary.Score*100)

	return b.String()
}
