// Package model defines the data structures for mutation testing.
package model

import (
	"fmt"
	"strings"
)

// GroupID identifies the analyzer category that produced a candidate.
type GroupID string

const (
	// GroupArithmetic covers arithmetic operator substitutions (+, -, *, /, %).
	GroupArithmetic GroupID = "arithmetic"
	// GroupComparison covers compare and compare-and-branch inversions.
	GroupComparison GroupID = "comparison"
	// GroupBitwise covers bitwise and lowered logical operators (&, |, ^).
	GroupBitwise GroupID = "bitwise"
	// GroupBranch covers branch-if-true / branch-if-false negation.
	GroupBranch GroupID = "branch"
	// GroupConstant covers literal field constants.
	GroupConstant GroupID = "constant"
	// GroupArray covers array literal construction sites.
	GroupArray GroupID = "array"
	// GroupVariable covers boolean literal assignments to locals.
	GroupVariable GroupID = "variable"
)

// Tier is a cumulative severity level. Detailed includes Medium which
// includes Simple.
type Tier int

// Available tiers, ordered.
const (
	TierSimple Tier = iota + 1
	TierMedium
	TierDetailed
)

// Includes reports whether a session running at t should include a
// candidate generated at other.
func (t Tier) Includes(other Tier) bool {
	return other >= TierSimple && other <= t
}

func (t Tier) String() string {
	switch t {
	case TierSimple:
		return "simple"
	case TierMedium:
		return "medium"
	case TierDetailed:
		return "detailed"
	default:
		return "unknown"
	}
}

// ParseTier converts a configuration value into a Tier.
func ParseTier(value string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "simple":
		return TierSimple, nil
	case "medium", "":
		return TierMedium, nil
	case "detailed":
		return TierDetailed, nil
	}

	return 0, fmt.Errorf("unknown severity tier %q", value)
}

// CandidateID is the identifying triple shared across environments. The
// concrete edit is re-derived from each environment's own program copy.
type CandidateID struct {
	Member string  `yaml:"member"`
	Index  int     `yaml:"index"`
	Group  GroupID `yaml:"group"`
}

func (id CandidateID) String() string {
	return fmt.Sprintf("%s#%s/%d", id.Member, id.Group, id.Index)
}

// Scheduled pairs a candidate with the tests that cover it.
type Scheduled struct {
	ID    CandidateID
	Tests []string
}

// Strategy names the scheduling algorithm used for a session.
type Strategy string

const (
	// StrategyOptimal builds one round at a time from the full test universe.
	StrategyOptimal Strategy = "optimal"
	// StrategyGreedy places candidates into the first disjoint bucket.
	StrategyGreedy Strategy = "greedy"
)

// Round is a set of candidates whose covering test sets are pairwise
// disjoint, plus the union of those tests.
type Round struct {
	Number     int
	Candidates []Scheduled
	Tests      []string
}

// IDs returns the candidate ids of the round in placement order.
func (r Round) IDs() []CandidateID {
	ids := make([]CandidateID, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		ids = append(ids, c.ID)
	}

	return ids
}
