// Package mutagens provides the analyzers that turn IR patterns into
// reversible mutation candidates.
package mutagens

import (
	"fmt"

	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// Candidate is one potential atomic edit bound to a concrete program copy.
type Candidate struct {
	ID          m.CandidateID
	Tier        m.Tier
	Description string
	Original    string
	Replacement string
	Edit        Edit
}

// MutationGroup is the output of one analyzer over a scope.
type MutationGroup struct {
	ID         m.GroupID
	Name       string
	Candidates []Candidate
}

// Analyzer maps one category of IR pattern to candidates. Implementations
// are stateless; all randomness comes from the Generator.
type Analyzer interface {
	Group() m.GroupID
	Name() string
	AnalyzeMethod(typeName string, method *ir.Method, gen *Generator) []Candidate
	AnalyzeField(typeName string, field *ir.Field, gen *Generator) []Candidate
}

// sequence numbers candidates of one (member, group) pair in generation order.
type sequence struct {
	member     string
	group      m.GroupID
	gen        *Generator
	candidates []Candidate
}

func newSequence(member string, group m.GroupID, gen *Generator) *sequence {
	return &sequence{member: member, group: group, gen: gen}
}

// draw returns the random source for the next candidate position.
func (s *sequence) draw() *Draw {
	return s.gen.For(s.member, s.group, len(s.candidates))
}

func (s *sequence) add(tier m.Tier, edit Edit, original, replacement, description string) {
	s.candidates = append(s.candidates, Candidate{
		ID: m.CandidateID{
			Member: s.member,
			Index:  len(s.candidates),
			Group:  s.group,
		},
		Tier:        tier,
		Description: description,
		Original:    original,
		Replacement: replacement,
		Edit:        edit,
	})
}

func describe(verb string, original, replacement fmt.Stringer) string {
	return fmt.Sprintf("%s from %s to %s", verb, original, replacement)
}

// noFields is embedded by analyzers that only inspect method bodies.
type noFields struct{}

func (noFields) AnalyzeField(string, *ir.Field, *Generator) []Candidate { return nil }

// noMethods is embedded by analyzers that only inspect fields.
type noMethods struct{}

func (noMethods) AnalyzeMethod(string, *ir.Method, *Generator) []Candidate { return nil }
