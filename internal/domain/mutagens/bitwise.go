package mutagens

import (
	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// bitwiseTable also serves && and || since they lower to and/or.
var bitwiseTable = OpcodeTable{
	ir.And: {{To: ir.Or, Tier: m.TierSimple}, {To: ir.Xor, Tier: m.TierMedium}},
	ir.Or:  {{To: ir.And, Tier: m.TierSimple}, {To: ir.Xor, Tier: m.TierMedium}},
	ir.Xor: {{To: ir.And, Tier: m.TierSimple}, {To: ir.Or, Tier: m.TierMedium}},
}

// Bitwise returns the analyzer for & | ^.
func Bitwise() Analyzer {
	return &opcodeAnalyzer{group: m.GroupBitwise, name: "Bitwise", table: bitwiseTable}
}
