package mutagens

import (
	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

func inverse(to ir.OpCode) []Substitution {
	return []Substitution{{To: to, Tier: m.TierSimple}}
}

// comparisonTable covers both the two-operand compare shape and the
// compare-and-branch shape, ordered and unsigned.
var comparisonTable = OpcodeTable{
	ir.Ceq:   inverse(ir.Cne),
	ir.Cne:   inverse(ir.Ceq),
	ir.Clt:   inverse(ir.Cgt),
	ir.Cgt:   inverse(ir.Clt),
	ir.Cle:   inverse(ir.Cgt),
	ir.Cge:   inverse(ir.Clt),
	ir.CltUn: inverse(ir.CgtUn),
	ir.CgtUn: inverse(ir.CltUn),
	ir.CleUn: inverse(ir.CgtUn),
	ir.CgeUn: inverse(ir.CltUn),

	ir.Beq:   inverse(ir.BneUn),
	ir.BneUn: inverse(ir.Beq),
	ir.Blt:   inverse(ir.Bgt),
	ir.Bgt:   inverse(ir.Blt),
	ir.Ble:   inverse(ir.Bgt),
	ir.Bge:   inverse(ir.Blt),
	ir.BltUn: inverse(ir.BgtUn),
	ir.BgtUn: inverse(ir.BltUn),
	ir.BleUn: inverse(ir.BgtUn),
	ir.BgeUn: inverse(ir.BltUn),
}

// Comparison returns the analyzer for == != < <= > >=.
func Comparison() Analyzer {
	return &opcodeAnalyzer{group: m.GroupComparison, name: "Comparison", table: comparisonTable}
}
