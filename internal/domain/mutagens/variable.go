package mutagens

import (
	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

type variableAnalyzer struct {
	noFields
}

// Variable returns the analyzer for boolean literal assignments to locals.
func Variable() Analyzer {
	return variableAnalyzer{}
}

func (variableAnalyzer) Group() m.GroupID { return m.GroupVariable }

func (variableAnalyzer) Name() string { return "Variable" }

func (variableAnalyzer) AnalyzeMethod(typeName string, method *ir.Method, gen *Generator) []Candidate {
	member := ir.MemberID(typeName, method.Name)
	seq := newSequence(member, m.GroupVariable, gen)

	for _, idx := range method.Order() {
		load := method.Code[idx]
		if load.Op != ir.Ldc || load.Value.Type != ir.TypeBool {
			continue
		}

		store := method.At(method.NextOf(idx))
		if store == nil || store.Op != ir.Stloc || !isBoolLocal(method, store.Index) {
			continue
		}

		flipped := ir.Bool(seq.draw().ChangeBool(load.Value.AsBool()))

		seq.add(m.TierSimple, &ValueEdit{
			Member: member,
			Instr:  idx,
			From:   load.Value,
			To:     flipped,
		}, load.Value.String(), flipped.String(), describe("changed variable assignment", load.Value, flipped))
	}

	return seq.candidates
}

func isBoolLocal(method *ir.Method, slot int) bool {
	return slot >= 0 && slot < len(method.Locals) && method.Locals[slot] == ir.TypeBool
}
