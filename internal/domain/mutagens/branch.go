package mutagens

import (
	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

var branchTable = OpcodeTable{
	ir.Brtrue:  inverse(ir.Brfalse),
	ir.Brfalse: inverse(ir.Brtrue),
}

// Branch returns the analyzer that negates boolean branches.
func Branch() Analyzer {
	return &opcodeAnalyzer{group: m.GroupBranch, name: "Branch", table: branchTable}
}
