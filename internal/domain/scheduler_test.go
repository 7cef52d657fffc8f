package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

func scheduled(member string, index int, tests ...string) m.Scheduled {
	return m.Scheduled{
		ID:    m.CandidateID{Member: member, Group: m.GroupArithmetic, Index: index},
		Tests: tests,
	}
}

// assertPartition checks that every item lands in exactly one round and
// that candidates sharing a round share no test.
func assertPartition(t *testing.T, items []m.Scheduled, rounds []m.Round) {
	t.Helper()

	seen := make(map[m.CandidateID]int)

	for i, round := range rounds {
		assert.Equal(t, i+1, round.Number)
		require.NotEmpty(t, round.Candidates, "round %d is empty", round.Number)

		owner := make(map[string]m.CandidateID)

		for _, candidate := range round.Candidates {
			seen[candidate.ID]++

			for _, test := range candidate.Tests {
				other, clash := owner[test]
				assert.False(t, clash, "round %d: %s and %s share %s", round.Number, other, candidate.ID, test)
				owner[test] = candidate.ID
			}
		}

		assert.Equal(t, unionTests(round.Candidates), round.Tests)
	}

	require.Len(t, seen, len(items))

	for _, item := range items {
		assert.Equal(t, 1, seen[item.ID], "candidate %s", item.ID)
	}
}

func TestScheduler_OverlappingCoverage(t *testing.T) {
	mA1 := scheduled("A", 0, "T1", "T3")
	mA2 := scheduled("A", 1, "T1", "T3")
	mB1 := scheduled("B", 0, "T2", "T3")
	items := []m.Scheduled{mA1, mA2, mB1}

	rounds, strategy := NewScheduler(0).Schedule(items)

	assert.Equal(t, m.StrategyOptimal, strategy)
	require.Len(t, rounds, 3)
	assert.Equal(t, []m.CandidateID{mA1.ID}, rounds[0].IDs())
	assert.Equal(t, []m.CandidateID{mA2.ID}, rounds[1].IDs())
	assert.Equal(t, []m.CandidateID{mB1.ID}, rounds[2].IDs())
	assert.Equal(t, []string{"T1", "T3"}, rounds[0].Tests)
	assertPartition(t, items, rounds)
}

func TestScheduler_DisjointCandidatesShareRound(t *testing.T) {
	items := []m.Scheduled{
		scheduled("A", 0, "T1"),
		scheduled("B", 0, "T2"),
		scheduled("C", 0, "T3", "T4"),
		scheduled("A", 1, "T1"),
	}

	rounds, _ := NewScheduler(0).Schedule(items)

	require.Len(t, rounds, 2)
	assert.Len(t, rounds[0].Candidates, 3)
	assert.Equal(t, []string{"T1", "T2", "T3", "T4"}, rounds[0].Tests)
	assertPartition(t, items, rounds)
}

func TestScheduler_Empty(t *testing.T) {
	rounds, strategy := NewScheduler(0).Schedule(nil)

	assert.Empty(t, rounds)
	assert.Equal(t, m.StrategyOptimal, strategy)
}

// ringItems builds n candidates over 40 tests, each covering two adjacent
// tests of the ring.
func ringItems(n int) []m.Scheduled {
	items := make([]m.Scheduled, 0, n)

	for i := range n {
		member := fmt.Sprintf("Type::M%d", i%40)
		items = append(items, scheduled(member, i, fmt.Sprintf("T%d", i%40), fmt.Sprintf("T%d", (i+1)%40)))
	}

	return items
}

func TestScheduler_GreedyAboveThreshold(t *testing.T) {
	items := ringItems(600)

	rounds, strategy := NewScheduler(DefaultScheduleThreshold).Schedule(items)

	assert.Equal(t, m.StrategyGreedy, strategy)
	assertPartition(t, items, rounds)
}

func TestScheduler_OptimalOnLargeInput(t *testing.T) {
	items := ringItems(600)

	rounds, strategy := NewScheduler(1000).Schedule(items)

	assert.Equal(t, m.StrategyOptimal, strategy)
	assertPartition(t, items, rounds)
}

func TestScheduler_GreedyOrdersLargestFirst(t *testing.T) {
	items := []m.Scheduled{
		scheduled("A", 0, "T1"),
		scheduled("B", 0, "T1", "T2", "T3"),
		scheduled("C", 0, "T4"),
	}

	rounds, strategy := NewScheduler(1).Schedule(items)

	assert.Equal(t, m.StrategyGreedy, strategy)
	require.Len(t, rounds, 2)
	assert.Equal(t, []m.CandidateID{items[1].ID, items[2].ID}, rounds[0].IDs())
	assert.Equal(t, []m.CandidateID{items[0].ID}, rounds[1].IDs())
	assertPartition(t, items, rounds)
}
