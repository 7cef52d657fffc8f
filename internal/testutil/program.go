// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gauntlet.dev/pkg/gauntlet/internal/ir"
)

// ProgramFile is the image name used by fixtures inside a project directory.
const ProgramFile = "subject.gir"

// CalcProgram builds a small program touching every analyzer category.
func CalcProgram() *ir.Program {
	i32 := func(v int64) ir.Value { return ir.Int(ir.TypeInt32, v) }

	return &ir.Program{
		Name: "calc",
		Types: []*ir.TypeDef{
			{
				Name: "Calc",
				Fields: []*ir.Field{
					{Name: "Limit", Type: ir.TypeInt32, HasConstant: true, Constant: i32(10)},
					{Name: "Greeting", Type: ir.TypeString, HasConstant: true, Constant: ir.String("hi")},
					{Name: "Enabled", Type: ir.TypeBool, HasConstant: true, Constant: ir.Bool(true)},
					{Name: "Ratio", Type: ir.TypeFloat64, HasConstant: true, Constant: ir.Float(ir.TypeFloat64, 0.5)},
					{Name: "Sep", Type: ir.TypeChar, HasConstant: true, Constant: ir.Char(',')},
					{Name: "Cache", Type: ir.TypeObject},
				},
				Methods: []*ir.Method{
					ir.NewMethod("Add", nil,
						ir.Instruction{Op: ir.Ldarg, Index: 0},
						ir.Instruction{Op: ir.Ldarg, Index: 1},
						ir.Instruction{Op: ir.Add},
						ir.Instruction{Op: ir.Ret},
					),
					ir.NewMethod("Scale", nil,
						ir.Instruction{Op: ir.Ldarg, Index: 0},
						ir.Instruction{Op: ir.Ldarg, Index: 1},
						ir.Instruction{Op: ir.Mul},
						ir.Instruction{Op: ir.Ldc, Value: i32(2)},
						ir.Instruction{Op: ir.Div},
						ir.Instruction{Op: ir.Ret},
					),
					ir.NewMethod("IsPositive", nil,
						ir.Instruction{Op: ir.Ldarg, Index: 0},
						ir.Instruction{Op: ir.Ldc, Value: i32(0)},
						ir.Instruction{Op: ir.Cgt},
						ir.Instruction{Op: ir.Ret},
					),
					ir.NewMethod("Clamp", nil,
						ir.Instruction{Op: ir.Ldarg, Index: 0},
						ir.Instruction{Op: ir.Ldc, Value: i32(10)},
						ir.Instruction{Op: ir.Ble, Target: 5},
						ir.Instruction{Op: ir.Ldc, Value: i32(10)},
						ir.Instruction{Op: ir.Ret},
						ir.Instruction{Op: ir.Ldarg, Index: 0},
						ir.Instruction{Op: ir.Ret},
					),
					ir.NewMethod("Flags", nil,
						ir.Instruction{Op: ir.Ldarg, Index: 0},
						ir.Instruction{Op: ir.Ldarg, Index: 1},
						ir.Instruction{Op: ir.And},
						ir.Instruction{Op: ir.Ldarg, Index: 0},
						ir.Instruction{Op: ir.Or},
						ir.Instruction{Op: ir.Ret},
					),
					ir.NewMethod("Check", nil,
						ir.Instruction{Op: ir.Ldarg, Index: 0},
						ir.Instruction{Op: ir.Brtrue, Target: 4},
						ir.Instruction{Op: ir.Ldc, Value: ir.Bool(false)},
						ir.Instruction{Op: ir.Ret},
						ir.Instruction{Op: ir.Ldc, Value: ir.Bool(true)},
						ir.Instruction{Op: ir.Ret},
					),
					ir.NewMethod("Toggle", []ir.ValueType{ir.TypeBool, ir.TypeInt32},
						ir.Instruction{Op: ir.Ldc, Value: ir.Bool(true)},
						ir.Instruction{Op: ir.Stloc, Index: 0},
						ir.Instruction{Op: ir.Ldc, Value: i32(1)},
						ir.Instruction{Op: ir.Stloc, Index: 1},
						ir.Instruction{Op: ir.Ldloc, Index: 0},
						ir.Instruction{Op: ir.Ret},
					),
					ir.NewMethod("Primes", nil,
						ir.Instruction{Op: ir.Ldc, Value: i32(4)},
						ir.Instruction{Op: ir.Newarr, ElemType: ir.TypeInt32},
						ir.Instruction{Op: ir.Dup},
						ir.Instruction{Op: ir.InitArray, ElemType: ir.TypeInt32, Elements: []ir.Value{i32(2), i32(3), i32(5), i32(7)}},
						ir.Instruction{Op: ir.Ret},
					),
					ir.NewMethod("Names", nil,
						ir.Instruction{Op: ir.Ldarg, Index: 0},
						ir.Instruction{Op: ir.Pop},
						ir.Instruction{Op: ir.Ldc, Value: i32(2)},
						ir.Instruction{Op: ir.Newarr, ElemType: ir.TypeString},
						ir.Instruction{Op: ir.Dup},
						ir.Instruction{Op: ir.Ldc, Value: i32(0)},
						ir.Instruction{Op: ir.Ldc, Value: ir.String("a")},
						ir.Instruction{Op: ir.Stelem, ElemType: ir.TypeString},
						ir.Instruction{Op: ir.Dup},
						ir.Instruction{Op: ir.Ldc, Value: i32(1)},
						ir.Instruction{Op: ir.Ldc, Value: ir.String("b")},
						ir.Instruction{Op: ir.Stelem, ElemType: ir.TypeString},
						ir.Instruction{Op: ir.Ret},
					),
					ir.NewMethod("Bits", nil,
						ir.Instruction{Op: ir.Ldc, Value: i32(3)},
						ir.Instruction{Op: ir.Newarr, ElemType: ir.TypeBool},
						ir.Instruction{Op: ir.Dup},
						ir.Instruction{Op: ir.Ldc, Value: i32(0)},
						ir.Instruction{Op: ir.Ldc, Value: ir.Bool(true)},
						ir.Instruction{Op: ir.Stelem, ElemType: ir.TypeBool},
						ir.Instruction{Op: ir.Dup},
						ir.Instruction{Op: ir.Ldc, Value: i32(2)},
						ir.Instruction{Op: ir.Ldc, Value: ir.Bool(true)},
						ir.Instruction{Op: ir.Stelem, ElemType: ir.TypeBool},
						ir.Instruction{Op: ir.Ret},
					),
				},
			},
			{
				Name: "Util",
				Methods: []*ir.Method{
					ir.NewMethod("Noop", nil, ir.Instruction{Op: ir.Nop}, ir.Instruction{Op: ir.Ret}),
				},
			},
		},
	}
}

// WriteProject writes p as ProgramFile into a fresh temp project directory
// and returns the directory.
func WriteProject(t *testing.T, p *ir.Program) string {
	t.Helper()

	dir := t.TempDir()

	f, err := os.Create(filepath.Join(dir, ProgramFile))
	if err != nil {
		t.Fatalf("create program image: %v", err)
	}

	defer func() { _ = f.Close() }()

	if err := ir.Encode(f, p); err != nil {
		t.Fatalf("encode program image: %v", err)
	}

	return dir
}
