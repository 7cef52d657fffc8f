// Package domain contains the mutation engine: candidate generation and
// resolution, scheduling, the execution pool, the round orchestrator and
// the session workflow.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gauntlet.dev/pkg/gauntlet/internal/domain/mutagens"
	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// Scope selects which candidates a Mutagen produces.
type Scope struct {
	Tier m.Tier
	Seed uint64
}

// Mutagen runs the analyzers over a program.
type Mutagen interface {
	// Generate returns one group per analyzer, filtered to scope.Tier.
	Generate(ctx context.Context, program *ir.Program, scope Scope) ([]mutagens.MutationGroup, error)
	// Resolve re-derives the concrete candidates for ids from program.
	Resolve(ctx context.Context, program *ir.Program, scope Scope, ids []m.CandidateID) (map[m.CandidateID]mutagens.Candidate, error)
}

type mutagen struct {
	analyzers []mutagens.Analyzer
}

// NewMutagen creates a Mutagen over analyzers, or over every registered
// analyzer when none are given.
func NewMutagen(analyzers ...mutagens.Analyzer) Mutagen {
	if len(analyzers) == 0 {
		analyzers = mutagens.All()
	}

	return &mutagen{analyzers: analyzers}
}

func (mg *mutagen) Generate(ctx context.Context, program *ir.Program, scope Scope) ([]mutagens.MutationGroup, error) {
	return mg.generate(ctx, program, scope, nil)
}

func (mg *mutagen) Resolve(ctx context.Context, program *ir.Program, scope Scope, ids []m.CandidateID) (map[m.CandidateID]mutagens.Candidate, error) {
	members := make(map[string]bool, len(ids))
	for _, id := range ids {
		members[id.Member] = true
	}

	groups, err := mg.generate(ctx, program, scope, members)
	if err != nil {
		return nil, err
	}

	index := make(map[m.CandidateID]mutagens.Candidate)

	for _, group := range groups {
		for _, candidate := range group.Candidates {
			index[candidate.ID] = candidate
		}
	}

	resolved := make(map[m.CandidateID]mutagens.Candidate, len(ids))

	for _, id := range ids {
		candidate, ok := index[id]
		if !ok {
			slog.Error("Failed to resolve candidate", "candidate", id.String(), "program", program.Name)
			return nil, fmt.Errorf("%w: %s", ErrUnknownCandidate, id)
		}

		resolved[id] = candidate
	}

	return resolved, nil
}

// generate analyzes every member, or only those in members when non-nil.
// Candidate indices are assigned before tier filtering, so ids stay stable
// across tiers.
func (mg *mutagen) generate(ctx context.Context, program *ir.Program, scope Scope, members map[string]bool) ([]mutagens.MutationGroup, error) {
	if program == nil {
		return nil, fmt.Errorf("missing program")
	}

	gen := mutagens.NewGenerator(scope.Seed)
	groups := make([]mutagens.MutationGroup, 0, len(mg.analyzers))

	wanted := func(typeName, member string) bool {
		return members == nil || members[ir.MemberID(typeName, member)]
	}

	for _, analyzer := range mg.analyzers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		group := mutagens.MutationGroup{ID: analyzer.Group(), Name: analyzer.Name()}

		for _, t := range program.Types {
			var found []mutagens.Candidate

			for _, field := range t.Fields {
				if wanted(t.Name, field.Name) {
					found = append(found, analyzer.AnalyzeField(t.Name, field, gen)...)
				}
			}

			for _, method := range t.Methods {
				if wanted(t.Name, method.Name) {
					found = append(found, analyzer.AnalyzeMethod(t.Name, method, gen)...)
				}
			}

			for _, candidate := range found {
				if scope.Tier.Includes(candidate.Tier) {
					group.Candidates = append(group.Candidates, candidate)
				}
			}
		}

		groups = append(groups, group)
	}

	return groups, nil
}
