package mutagens

import (
	"errors"
	"fmt"

	"gauntlet.dev/pkg/gauntlet/internal/ir"
)

// ErrStaleEdit is returned when the program no longer holds the value an
// edit expects to replace.
var ErrStaleEdit = errors.New("stale edit")

// Edit is a reversible change to a program. Revert(Apply(p)) restores p.
type Edit interface {
	Apply(p *ir.Program) error
	Revert(p *ir.Program) error
}

// OpcodeEdit swaps the operation of a single instruction.
type OpcodeEdit struct {
	Member string
	Instr  int
	From   ir.OpCode
	To     ir.OpCode
}

// Apply implements Edit.
func (e *OpcodeEdit) Apply(p *ir.Program) error { return e.swap(p, e.From, e.To) }

// Revert implements Edit.
func (e *OpcodeEdit) Revert(p *ir.Program) error { return e.swap(p, e.To, e.From) }

func (e *OpcodeEdit) swap(p *ir.Program, from, to ir.OpCode) error {
	instr, err := instruction(p, e.Member, e.Instr)
	if err != nil {
		return err
	}

	if instr.Op != from {
		return fmt.Errorf("%s[%d]: expected %s, found %s: %w", e.Member, e.Instr, from, instr.Op, ErrStaleEdit)
	}

	instr.Op = to

	return nil
}

// ValueEdit replaces the immediate of a single ldc instruction.
type ValueEdit struct {
	Member string
	Instr  int
	From   ir.Value
	To     ir.Value
}

// Apply implements Edit.
func (e *ValueEdit) Apply(p *ir.Program) error { return e.swap(p, e.From, e.To) }

// Revert implements Edit.
func (e *ValueEdit) Revert(p *ir.Program) error { return e.swap(p, e.To, e.From) }

func (e *ValueEdit) swap(p *ir.Program, from, to ir.Value) error {
	instr, err := instruction(p, e.Member, e.Instr)
	if err != nil {
		return err
	}

	if instr.Value != from {
		return fmt.Errorf("%s[%d]: expected %s, found %s: %w", e.Member, e.Instr, from, instr.Value, ErrStaleEdit)
	}

	instr.Value = to

	return nil
}

// ConstantEdit replaces a field's literal constant.
type ConstantEdit struct {
	Member string
	From   ir.Value
	To     ir.Value
}

// Apply implements Edit.
func (e *ConstantEdit) Apply(p *ir.Program) error { return e.swap(p, e.From, e.To) }

// Revert implements Edit.
func (e *ConstantEdit) Revert(p *ir.Program) error { return e.swap(p, e.To, e.From) }

func (e *ConstantEdit) swap(p *ir.Program, from, to ir.Value) error {
	field, err := p.Field(e.Member)
	if err != nil {
		return err
	}

	if !field.HasConstant || field.Constant != from {
		return fmt.Errorf("%s: expected constant %s, found %s: %w", e.Member, from, field.Constant, ErrStaleEdit)
	}

	field.Constant = to

	return nil
}

// SpliceEdit rebuilds a linked instruction range, keeping the code before
// and after it intact.
type SpliceEdit struct {
	Member      string
	First       int
	Last        int
	Replacement []ir.Instruction

	applied *ir.SpliceRecord
}

// Apply implements Edit.
func (e *SpliceEdit) Apply(p *ir.Program) error {
	if e.applied != nil {
		return fmt.Errorf("%s[%d..%d]: already applied: %w", e.Member, e.First, e.Last, ErrStaleEdit)
	}

	method, err := p.Method(e.Member)
	if err != nil {
		return err
	}

	rec, err := method.Splice(e.First, e.Last, e.Replacement)
	if err != nil {
		return fmt.Errorf("%s: %w", e.Member, err)
	}

	e.applied = &rec

	return nil
}

// Revert implements Edit.
func (e *SpliceEdit) Revert(p *ir.Program) error {
	if e.applied == nil {
		return fmt.Errorf("%s[%d..%d]: not applied: %w", e.Member, e.First, e.Last, ErrStaleEdit)
	}

	method, err := p.Method(e.Member)
	if err != nil {
		return err
	}

	if err := method.Unsplice(*e.applied); err != nil {
		return fmt.Errorf("%s: %w", e.Member, err)
	}

	e.applied = nil

	return nil
}

func instruction(p *ir.Program, member string, idx int) (*ir.Instruction, error) {
	method, err := p.Method(member)
	if err != nil {
		return nil, err
	}

	instr := method.At(idx)
	if instr == nil {
		return nil, fmt.Errorf("%s: instruction %d out of range: %w", member, idx, ErrStaleEdit)
	}

	return instr, nil
}
