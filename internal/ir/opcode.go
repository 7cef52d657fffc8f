package ir

import "strconv"

// OpCode is an instruction operation.
type OpCode uint16

// Instruction set. Compare ops push a bool; branch ops jump to Target.
const (
	Nop OpCode = iota
	Add
	Sub
	Mul
	Div
	DivUn
	Rem
	RemUn
	And
	Or
	Xor
	Not
	Neg
	Ceq
	Cne
	Cgt
	CgtUn
	Cge
	CgeUn
	Clt
	CltUn
	Cle
	CleUn
	Br
	Brtrue
	Brfalse
	Beq
	BneUn
	Bgt
	BgtUn
	Bge
	BgeUn
	Blt
	BltUn
	Ble
	BleUn
	Ldc
	Ldnull
	Ldloc
	Stloc
	Ldarg
	Starg
	Ldfld
	Stfld
	Newarr
	Dup
	Pop
	Stelem
	Ldelem
	InitArray
	Call
	Ret
)

var opNames = [...]string{
	Nop:       "nop",
	Add:       "add",
	Sub:       "sub",
	Mul:       "mul",
	Div:       "div",
	DivUn:     "div.un",
	Rem:       "rem",
	RemUn:     "rem.un",
	And:       "and",
	Or:        "or",
	Xor:       "xor",
	Not:       "not",
	Neg:       "neg",
	Ceq:       "ceq",
	Cne:       "cne",
	Cgt:       "cgt",
	CgtUn:     "cgt.un",
	Cge:       "cge",
	CgeUn:     "cge.un",
	Clt:       "clt",
	CltUn:     "clt.un",
	Cle:       "cle",
	CleUn:     "cle.un",
	Br:        "br",
	Brtrue:    "brtrue",
	Brfalse:   "brfalse",
	Beq:       "beq",
	BneUn:     "bne.un",
	Bgt:       "bgt",
	BgtUn:     "bgt.un",
	Bge:       "bge",
	BgeUn:     "bge.un",
	Blt:       "blt",
	BltUn:     "blt.un",
	Ble:       "ble",
	BleUn:     "ble.un",
	Ldc:       "ldc",
	Ldnull:    "ldnull",
	Ldloc:     "ldloc",
	Stloc:     "stloc",
	Ldarg:     "ldarg",
	Starg:     "starg",
	Ldfld:     "ldfld",
	Stfld:     "stfld",
	Newarr:    "newarr",
	Dup:       "dup",
	Pop:       "pop",
	Stelem:    "stelem",
	Ldelem:    "ldelem",
	InitArray: "initarray",
	Call:      "call",
	Ret:       "ret",
}

func (op OpCode) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}

	return "op(" + strconv.Itoa(int(op)) + ")"
}

// IsBranch reports whether op transfers control to Target.
func (op OpCode) IsBranch() bool {
	return op >= Br && op <= BleUn
}
