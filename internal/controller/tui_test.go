package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

func update(t *testing.T, model sessionModel, msgs ...tea.Msg) sessionModel {
	t.Helper()

	for _, msg := range msgs {
		next, _ := model.Update(msg)

		var ok bool

		model, ok = next.(sessionModel)
		require.True(t, ok)
	}

	return model
}

func TestSessionModel_Dashboard(t *testing.T) {
	model := newSessionModel(ModeTest)

	assert.Contains(t, model.View(), "Gauntlet - Mutation Testing")
	assert.Contains(t, model.View(), "collecting coverage")

	model = update(t, model,
		sessionInfoMsg(m.SessionInfo{ID: "abc", Candidates: 5, Rounds: 2, Tier: m.TierSimple, Strategy: m.StrategyOptimal}),
		roundStartedMsg{round: m.Round{Number: 1}},
		roundStartedMsg{round: m.Round{Number: 2}, attempt: 1},
	)

	view := model.View()
	assert.Contains(t, view, "Session abc | 5 candidates")
	assert.Contains(t, view, "running #1, #2 (retry 1)")
	assert.Contains(t, view, "0/2")

	model = update(t, model,
		roundCompletedMsg(m.RoundReport{Round: 1, Results: []m.MutationResult{{Verdict: m.Killed}}}),
		roundCompletedMsg(m.RoundReport{Round: 2, Failed: true, Error: "round exception"}),
	)

	view = model.View()
	assert.Contains(t, view, "round 1:")
	assert.Contains(t, view, "round 2 failed: round exception")
	assert.Contains(t, view, "2/2")
	assert.NotContains(t, view, "running")

	model = update(t, model, summaryMsg(sampleSummary()))
	assert.Contains(t, model.View(), "Score: 50.0%")
}

func TestSessionModel_RetryDoesNotOvercount(t *testing.T) {
	model := update(t, newSessionModel(ModeTest),
		sessionInfoMsg(m.SessionInfo{Rounds: 1}),
		roundCompletedMsg(m.RoundReport{Round: 1, Failed: true}),
		roundCompletedMsg(m.RoundReport{Round: 1, Attempt: 1}),
	)

	assert.Contains(t, model.View(), "1/1")
}

func TestSessionModel_RecentRoundsAreBounded(t *testing.T) {
	model := update(t, newSessionModel(ModeTest), sessionInfoMsg(m.SessionInfo{Rounds: 20}))

	for i := 1; i <= 20; i++ {
		model = update(t, model, roundCompletedMsg(m.RoundReport{Round: i}))
	}

	assert.Len(t, model.recent, recentRounds)
}

func TestSessionModel_Estimation(t *testing.T) {
	model := update(t, newSessionModel(ModeEstimate), estimationMsg{stats: buildEstimationStats(sampleGroups())})

	view := model.View()
	assert.Contains(t, view, "Calc::Add: 2 arithmetic")
	assert.Contains(t, view, "Calc::Limit: 1 constant")
	assert.Contains(t, view, "Total: 4 candidates across 3 member(s)")

	failed := update(t, newSessionModel(ModeEstimate), estimationMsg{err: errors.New("bad image")})
	assert.Contains(t, failed.View(), "estimation error: bad image")

	empty := update(t, newSessionModel(ModeEstimate), estimationMsg{stats: buildEstimationStats(nil)})
	assert.Contains(t, empty.View(), "No mutation candidates found")
}

func TestSessionModel_ViewScrolls(t *testing.T) {
	model := update(t, newSessionModel(ModeView),
		tea.WindowSizeMsg{Width: 100, Height: 8},
		summaryMsg(sampleSummary()),
	)

	view := model.View()
	assert.Contains(t, view, "q: quit")
	assert.Equal(t, 0, model.viewport.YOffset)

	model = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, model.viewport.YOffset)
}

func TestSessionModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		next, cmd := newSessionModel(ModeView).Update(key)
		require.NotNil(t, cmd, key.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, next.(sessionModel).quitting)
	}
}

func TestTUI_Lifecycle(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf, tea.WithInput(nil), tea.WithoutRenderer())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, tui.Start(ctx, WithTestMode()))
	require.Error(t, tui.Start(ctx, WithTestMode()))

	tui.DisplaySessionInfo(ctx, m.SessionInfo{ID: "abc", Rounds: 1})
	tui.DisplayRoundStarted(ctx, m.Round{Number: 1}, 0)
	tui.DisplayRoundCompleted(ctx, m.RoundReport{Round: 1})
	tui.DisplaySummary(ctx, sampleSummary())
	tui.Close(ctx)

	require.NoError(t, ctx.Err(), "close did not return before the deadline")
	require.NoError(t, tui.Err())

	// Calls after Close are dropped.
	tui.DisplaySummary(ctx, sampleSummary())
	tui.Close(ctx)
}

func TestTUI_WaitHonoursContext(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf, tea.WithInput(nil), tea.WithoutRenderer())
	require.NoError(t, tui.Start(context.Background(), WithViewMode()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	tui.Wait(ctx)
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)

	tui.Close(context.Background())
}
