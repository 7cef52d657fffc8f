package domain

import (
	"sort"

	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// DefaultScheduleThreshold is the largest candidate count scheduled with
// the optimal-by-rounds strategy.
const DefaultScheduleThreshold = 500

// Scheduler partitions candidates into rounds whose covering test sets are
// pairwise disjoint.
type Scheduler struct {
	threshold int
}

// NewScheduler creates a Scheduler. A non-positive threshold selects
// DefaultScheduleThreshold.
func NewScheduler(threshold int) *Scheduler {
	if threshold <= 0 {
		threshold = DefaultScheduleThreshold
	}

	return &Scheduler{threshold: threshold}
}

// Schedule returns the rounds for items and the strategy used. Every item
// lands in exactly one round.
func (s *Scheduler) Schedule(items []m.Scheduled) ([]m.Round, m.Strategy) {
	if len(items) <= s.threshold {
		return scheduleOptimal(items), m.StrategyOptimal
	}

	return scheduleGreedy(items), m.StrategyGreedy
}

type testSet map[string]struct{}

func newTestSet(tests []string) testSet {
	set := make(testSet, len(tests))
	for _, test := range tests {
		set[test] = struct{}{}
	}

	return set
}

func (ts testSet) containsAll(tests []string) bool {
	for _, test := range tests {
		if _, ok := ts[test]; !ok {
			return false
		}
	}

	return true
}

func (ts testSet) disjoint(tests []string) bool {
	for _, test := range tests {
		if _, ok := ts[test]; ok {
			return false
		}
	}

	return true
}

func (ts testSet) sorted() []string {
	out := make([]string, 0, len(ts))
	for test := range ts {
		out = append(out, test)
	}

	sort.Strings(out)

	return out
}

// scheduleOptimal builds one round at a time: every round starts with the
// full test universe free and admits, in input order, each candidate whose
// tests are all still free.
func scheduleOptimal(items []m.Scheduled) []m.Round {
	universe := make(testSet)
	for _, item := range items {
		for _, test := range item.Tests {
			universe[test] = struct{}{}
		}
	}

	remaining := append([]m.Scheduled(nil), items...)

	var rounds []m.Round

	for len(remaining) > 0 {
		free := make(testSet, len(universe))
		for test := range universe {
			free[test] = struct{}{}
		}

		used := make(testSet)
		round := m.Round{Number: len(rounds) + 1}
		next := remaining[:0:0]

		// The free set only shrinks, so a candidate rejected once stays
		// rejected for the rest of the round and one pass suffices.
		for _, item := range remaining {
			if !free.containsAll(item.Tests) {
				next = append(next, item)
				continue
			}

			for _, test := range item.Tests {
				delete(free, test)
				used[test] = struct{}{}
			}

			round.Candidates = append(round.Candidates, item)
		}

		round.Tests = used.sorted()
		rounds = append(rounds, round)
		remaining = next
	}

	return rounds
}

type bucket struct {
	tests      testSet
	candidates []m.Scheduled
}

// scheduleGreedy places candidates, largest covering set first, into the
// first bucket whose accumulated tests are disjoint from theirs.
func scheduleGreedy(items []m.Scheduled) []m.Round {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return len(items[order[a]].Tests) > len(items[order[b]].Tests)
	})

	var buckets []*bucket

	for _, i := range order {
		item := items[i]

		var target *bucket

		for _, b := range buckets {
			if b.tests.disjoint(item.Tests) {
				target = b
				break
			}
		}

		if target == nil {
			target = &bucket{tests: make(testSet)}
			buckets = append(buckets, target)
		}

		for _, test := range item.Tests {
			target.tests[test] = struct{}{}
		}

		target.candidates = append(target.candidates, item)
	}

	rounds := make([]m.Round, 0, len(buckets))
	for n, b := range buckets {
		rounds = append(rounds, m.Round{
			Number:     n + 1,
			Candidates: b.candidates,
			Tests:      b.tests.sorted(),
		})
	}

	return rounds
}
