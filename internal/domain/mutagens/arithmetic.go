package mutagens

import (
	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// arithmeticTable: the inverse operation is Simple and the remaining operator
// of the same precedence group is Medium. + and - have no remaining
// same-precedence operator, so their Medium entry is the multiplicative
// counterpart (* for +, / for -). Everything else is Detailed.
var arithmeticTable = OpcodeTable{
	ir.Add: {
		{To: ir.Sub, Tier: m.TierSimple},
		{To: ir.Mul, Tier: m.TierMedium},
		{To: ir.Div, Tier: m.TierDetailed},
		{To: ir.Rem, Tier: m.TierDetailed},
	},
	ir.Sub: {
		{To: ir.Add, Tier: m.TierSimple},
		{To: ir.Div, Tier: m.TierMedium},
		{To: ir.Mul, Tier: m.TierDetailed},
		{To: ir.Rem, Tier: m.TierDetailed},
	},
	ir.Mul: {
		{To: ir.Div, Tier: m.TierSimple},
		{To: ir.Rem, Tier: m.TierMedium},
		{To: ir.Add, Tier: m.TierDetailed},
		{To: ir.Sub, Tier: m.TierDetailed},
	},
	ir.Div: {
		{To: ir.Mul, Tier: m.TierSimple},
		{To: ir.Rem, Tier: m.TierMedium},
		{To: ir.Add, Tier: m.TierDetailed},
		{To: ir.Sub, Tier: m.TierDetailed},
	},
	ir.Rem: {
		{To: ir.Div, Tier: m.TierSimple},
		{To: ir.Mul, Tier: m.TierMedium},
		{To: ir.Add, Tier: m.TierDetailed},
		{To: ir.Sub, Tier: m.TierDetailed},
	},
	ir.DivUn: {
		{To: ir.Mul, Tier: m.TierSimple},
		{To: ir.RemUn, Tier: m.TierMedium},
		{To: ir.Add, Tier: m.TierDetailed},
		{To: ir.Sub, Tier: m.TierDetailed},
	},
	ir.RemUn: {
		{To: ir.DivUn, Tier: m.TierSimple},
		{To: ir.Mul, Tier: m.TierMedium},
		{To: ir.Add, Tier: m.TierDetailed},
		{To: ir.Sub, Tier: m.TierDetailed},
	},
}

// Arithmetic returns the analyzer for + - * / %.
func Arithmetic() Analyzer {
	return &opcodeAnalyzer{group: m.GroupArithmetic, name: "Arithmetic", table: arithmeticTable}
}
