package mutagens

import (
	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// Substitution is one table entry: the replacement opcode and its tier.
type Substitution struct {
	To   ir.OpCode
	Tier m.Tier
}

// OpcodeTable maps an original opcode to its ordered substitutions.
type OpcodeTable map[ir.OpCode][]Substitution

// opcodeAnalyzer scans method bodies for opcodes present in its table.
type opcodeAnalyzer struct {
	noFields

	group m.GroupID
	name  string
	table OpcodeTable
}

func (a *opcodeAnalyzer) Group() m.GroupID { return a.group }

func (a *opcodeAnalyzer) Name() string { return a.name }

func (a *opcodeAnalyzer) AnalyzeMethod(typeName string, method *ir.Method, gen *Generator) []Candidate {
	member := ir.MemberID(typeName, method.Name)
	seq := newSequence(member, a.group, gen)

	for _, idx := range method.Order() {
		original := method.Code[idx].Op

		for _, sub := range a.table[original] {
			seq.add(sub.Tier, &OpcodeEdit{
				Member: member,
				Instr:  idx,
				From:   original,
				To:     sub.To,
			}, original.String(), sub.To.String(), describe("changed operator", original, sub.To))
		}
	}

	return seq.candidates
}

// TableOf returns the table of an opcode-driven analyzer, or nil.
func TableOf(a Analyzer) OpcodeTable {
	if oa, ok := a.(*opcodeAnalyzer); ok {
		return oa.table
	}

	return nil
}
