package model

import (
	"fmt"
	"strings"
	"time"
)

// TestOutcome is the result the test host reports for a single test.
type TestOutcome int

const (
	// OutcomeNone means the test crashed, hung or never reported.
	OutcomeNone TestOutcome = iota
	// OutcomePassed indicates the test passed.
	OutcomePassed
	// OutcomeFailed indicates the test failed.
	OutcomeFailed
	// OutcomeSkipped indicates the test was skipped.
	OutcomeSkipped
)

func (o TestOutcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "none"
	}
}

// ParseOutcome maps a test-result channel value to a TestOutcome. Unknown
// values resolve to OutcomeNone.
func ParseOutcome(value string) TestOutcome {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "passed", "pass":
		return OutcomePassed
	case "failed", "fail":
		return OutcomeFailed
	case "skipped", "skip":
		return OutcomeSkipped
	default:
		return OutcomeNone
	}
}

// TestResult is one entry of the test-result channel.
type TestResult struct {
	Name    string
	Outcome TestOutcome
}

// Verdict represents the classification of a mutation.
type Verdict int

const (
	// Killed indicates the mutation was detected by a covering test.
	Killed Verdict = iota
	// Survived indicates every covering test passed.
	Survived
	// Timeout indicates a covering test crashed or hung.
	Timeout
	// NoCoverage indicates no test exercises the mutated member.
	NoCoverage
)

func (v Verdict) String() string {
	switch v {
	case Killed:
		return "killed"
	case Survived:
		return "survived"
	case Timeout:
		return "timeout"
	case NoCoverage:
		return "no coverage"
	default:
		return "unknown"
	}
}

// MarshalText renders the verdict by name in reports.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a verdict name written by MarshalText.
func (v *Verdict) UnmarshalText(text []byte) error {
	for _, candidate := range []Verdict{Killed, Survived, Timeout, NoCoverage} {
		if candidate.String() == string(text) {
			*v = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown verdict %q", text)
}

// MutationResult is the report-sink tuple for one candidate.
type MutationResult struct {
	ID          CandidateID   `yaml:"id"`
	Description string        `yaml:"description"`
	Verdict     Verdict       `yaml:"verdict"`
	Duration    time.Duration `yaml:"duration"`
}

// RoundReport is emitted once per finished round, completed or failed.
type RoundReport struct {
	Round    int
	Attempt  int
	Tests    int
	Skipped  int
	Results  []MutationResult
	Duration time.Duration
	Failed   bool
	Error    string
}

// Summary holds session totals computed from completed rounds.
type Summary struct {
	SessionID       string           `yaml:"session"`
	Strategy        Strategy         `yaml:"strategy"`
	Tier            string           `yaml:"tier"`
	Rounds          int              `yaml:"rounds"`
	CompletedRounds int              `yaml:"completed_rounds"`
	FailedRounds    int              `yaml:"failed_rounds"`
	Killed          int              `yaml:"killed"`
	Survived        int              `yaml:"survived"`
	Timeout         int              `yaml:"timeout"`
	NoCoverage      int              `yaml:"no_coverage"`
	Quarantined     int              `yaml:"quarantined"`
	Score           float64          `yaml:"score"`
	Duration        time.Duration    `yaml:"duration"`
	Results         []MutationResult `yaml:"results"`
}

// Total returns the number of classified mutations.
func (s Summary) Total() int {
	return s.Killed + s.Survived + s.Timeout + s.NoCoverage
}

func (s Summary) String() string {
	return fmt.Sprintf("killed=%d survived=%d timeout=%d no-coverage=%d score=%.2f",
		s.Killed, s.Survived, s.Timeout, s.NoCoverage, s.Score)
}

// SessionInfo describes a session before its rounds are dispatched.
type SessionInfo struct {
	ID         string
	Strategy   Strategy
	Tier       Tier
	Candidates int
	Uncovered  int
	Rounds     int
	Parallel   int
	Timeout    time.Duration
}
