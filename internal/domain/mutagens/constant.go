package mutagens

import (
	"log/slog"

	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

type constantAnalyzer struct {
	noMethods
}

// Constant returns the analyzer for literal field constants.
func Constant() Analyzer {
	return constantAnalyzer{}
}

func (constantAnalyzer) Group() m.GroupID { return m.GroupConstant }

func (constantAnalyzer) Name() string { return "Constant" }

func (constantAnalyzer) AnalyzeField(typeName string, field *ir.Field, gen *Generator) []Candidate {
	if !field.HasConstant {
		return nil
	}

	member := ir.MemberID(typeName, field.Name)

	if !field.Constant.Type.IsScalar() {
		slog.Debug("Unsupported constant type", "member", member, "type", field.Constant.Type)
		return nil
	}

	seq := newSequence(member, m.GroupConstant, gen)

	replacement, ok := seq.draw().Change(field.Constant)
	if !ok {
		return nil
	}

	seq.add(m.TierSimple, &ConstantEdit{
		Member: member,
		From:   field.Constant,
		To:     replacement,
	}, field.Constant.String(), replacement.String(), describe("changed constant", field.Constant, replacement))

	return seq.candidates
}
