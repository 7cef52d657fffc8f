package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gauntlet.dev/pkg/gauntlet/internal/domain"
	"gauntlet.dev/pkg/gauntlet/internal/domain/mutagens"
	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
	"gauntlet.dev/pkg/gauntlet/internal/testutil"
)

func countCandidates(groups []mutagens.MutationGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Candidates)
	}

	return total
}

func TestMutagen_Generate(t *testing.T) {
	mg := domain.NewMutagen()
	program := testutil.CalcProgram()

	tests := []struct {
		tier m.Tier
		want int
	}{
		{tier: m.TierSimple, want: 14},
		{tier: m.TierMedium, want: 22},
		{tier: m.TierDetailed, want: 28},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			groups, err := mg.Generate(context.Background(), program, domain.Scope{Tier: tt.tier, Seed: 7})
			require.NoError(t, err)
			require.Len(t, groups, len(mutagens.All()))

			assert.Equal(t, tt.want, countCandidates(groups))

			for _, g := range groups {
				for _, c := range g.Candidates {
					assert.Equal(t, g.ID, c.ID.Group)
					assert.True(t, tt.tier.Includes(c.Tier))
				}
			}
		})
	}
}

func TestMutagen_GroupOrderFollowsRegistry(t *testing.T) {
	groups, err := domain.NewMutagen().Generate(context.Background(), testutil.CalcProgram(), domain.Scope{Tier: m.TierSimple})
	require.NoError(t, err)

	var ids []m.GroupID
	for _, g := range groups {
		ids = append(ids, g.ID)
	}

	assert.Equal(t, []m.GroupID{
		m.GroupArithmetic,
		m.GroupComparison,
		m.GroupBitwise,
		m.GroupBranch,
		m.GroupConstant,
		m.GroupArray,
		m.GroupVariable,
	}, ids)
}

func TestMutagen_IndicesStableAcrossTiers(t *testing.T) {
	mg := domain.NewMutagen(mutagens.Arithmetic())
	program := testutil.CalcProgram()

	simple, err := mg.Generate(context.Background(), program, domain.Scope{Tier: m.TierSimple})
	require.NoError(t, err)
	detailed, err := mg.Generate(context.Background(), program, domain.Scope{Tier: m.TierDetailed})
	require.NoError(t, err)

	byID := make(map[m.CandidateID]string)
	for _, c := range detailed[0].Candidates {
		byID[c.ID] = c.Description
	}

	for _, c := range simple[0].Candidates {
		assert.Equal(t, byID[c.ID], c.Description, "candidate %s", c.ID)
	}
}

func TestMutagen_ResolveOnCopy(t *testing.T) {
	mg := domain.NewMutagen()
	scope := domain.Scope{Tier: m.TierDetailed, Seed: 42}
	program := testutil.CalcProgram()

	groups, err := mg.Generate(context.Background(), program, scope)
	require.NoError(t, err)

	var ids []m.CandidateID
	want := make(map[m.CandidateID]mutagens.Candidate)

	for _, g := range groups {
		for _, c := range g.Candidates {
			ids = append(ids, c.ID)
			want[c.ID] = c
		}
	}

	copied, err := ir.Clone(program)
	require.NoError(t, err)

	resolved, err := mg.Resolve(context.Background(), copied, scope, ids)
	require.NoError(t, err)
	require.Len(t, resolved, len(ids))

	for id, candidate := range resolved {
		assert.Equal(t, want[id].Description, candidate.Description)
		assert.Equal(t, want[id].Replacement, candidate.Replacement)

		before, err := ir.Bytes(copied)
		require.NoError(t, err)

		require.NoError(t, candidate.Edit.Apply(copied), "apply %s", id)
		require.NoError(t, candidate.Edit.Revert(copied), "revert %s", id)

		after, err := ir.Bytes(copied)
		require.NoError(t, err)
		assert.Equal(t, before, after, "candidate %s did not revert cleanly", id)
	}
}

func TestMutagen_ResolveErrors(t *testing.T) {
	mg := domain.NewMutagen()
	scope := domain.Scope{Tier: m.TierMedium}

	t.Run("unknown candidate", func(t *testing.T) {
		_, err := mg.Resolve(context.Background(), testutil.CalcProgram(), scope, []m.CandidateID{
			{Member: "Calc::Add", Group: m.GroupArithmetic, Index: 99},
		})
		require.ErrorIs(t, err, domain.ErrUnknownCandidate)
	})

	t.Run("candidate outside tier", func(t *testing.T) {
		// Index 2 of Calc::Add is Detailed.
		_, err := mg.Resolve(context.Background(), testutil.CalcProgram(), scope, []m.CandidateID{
			{Member: "Calc::Add", Group: m.GroupArithmetic, Index: 2},
		})
		require.ErrorIs(t, err, domain.ErrUnknownCandidate)
	})

	t.Run("missing program", func(t *testing.T) {
		_, err := mg.Generate(context.Background(), nil, scope)
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := mg.Generate(ctx, testutil.CalcProgram(), scope)
		require.ErrorIs(t, err, context.Canceled)
	})
}
