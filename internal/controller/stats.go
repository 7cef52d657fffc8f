package controller

import (
	"sort"

	"gauntlet.dev/pkg/gauntlet/internal/domain/mutagens"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// memberStat holds candidate counts for one member across groups.
type memberStat struct {
	member string
	counts map[m.GroupID]int
	total  int
}

// estimationStats is the per-member view of a candidate listing.
type estimationStats struct {
	groups  []mutagens.MutationGroup // column order, candidates ignored
	members []memberStat
	totals  map[m.GroupID]int
	total   int
}

func buildEstimationStats(groups []mutagens.MutationGroup) estimationStats {
	stats := estimationStats{totals: make(map[m.GroupID]int)}
	byMember := make(map[string]*memberStat)

	for _, group := range groups {
		stats.groups = append(stats.groups, mutagens.MutationGroup{ID: group.ID, Name: group.Name})

		for _, candidate := range group.Candidates {
			stat, ok := byMember[candidate.ID.Member]
			if !ok {
				stat = &memberStat{member: candidate.ID.Member, counts: make(map[m.GroupID]int)}
				byMember[candidate.ID.Member] = stat
			}

			stat.counts[group.ID]++
			stat.total++
			stats.totals[group.ID]++
			stats.total++
		}
	}

	stats.members = make([]memberStat, 0, len(byMember))
	for _, stat := range byMember {
		stats.members = append(stats.members, *stat)
	}

	sort.Slice(stats.members, func(i, j int) bool {
		return stats.members[i].member < stats.members[j].member
	})

	return stats
}

// verdictCounts tallies results by verdict.
type verdictCounts struct {
	killed, survived, timeout, noCoverage int
}

func countVerdicts(results []m.MutationResult) verdictCounts {
	var c verdictCounts

	for _, r := range results {
		switch r.Verdict {
		case m.Killed:
			c.killed++
		case m.Survived:
			c.survived++
		case m.Timeout:
			c.timeout++
		case m.NoCoverage:
			c.noCoverage++
		}
	}

	return c
}

// undetected returns the results that no test caught, in summary order.
func undetected(summary m.Summary) []m.MutationResult {
	var out []m.MutationResult

	for _, r := range summary.Results {
		if r.Verdict == m.Survived || r.Verdict == m.NoCoverage {
			out = append(out, r)
		}
	}

	return out
}
