package ir

import (
	"errors"
	"fmt"
)

// NoIndex marks a missing neighbour or branch target.
const NoIndex = -1

// ErrMemberNotFound is returned when a member id does not resolve.
var ErrMemberNotFound = errors.New("member not found")

// Instruction is one arena slot. Prev and Next are arena indices of the
// neighbours in program order.
type Instruction struct {
	Op       OpCode
	Value    Value     // ldc immediate
	Index    int       // local or argument slot
	Target   int       // branch target (arena index)
	Symbol   string    // field or callee name
	ElemType ValueType // newarr / stelem / initarray element type
	Elements []Value   // initarray payload
	Prev     int
	Next     int
}

// Program is a loaded program image.
type Program struct {
	Name  string
	Types []*TypeDef
}

// TypeDef groups the fields and methods of one declared type.
type TypeDef struct {
	Name    string
	Fields  []*Field
	Methods []*Method
}

// Field is a data member, optionally carrying a literal constant.
type Field struct {
	Name        string
	Type        ValueType
	HasConstant bool
	Constant    Value
}

// Method is a code member. Code is an arena; Head is the first instruction.
type Method struct {
	Name   string
	Locals []ValueType
	Code   []Instruction
	Head   int
}

// MemberID builds the qualified handle used by coverage and candidate ids.
func MemberID(typeName, member string) string {
	return typeName + "::" + member
}

// Method resolves a method by qualified id.
func (p *Program) Method(id string) (*Method, error) {
	for _, t := range p.Types {
		for _, method := range t.Methods {
			if MemberID(t.Name, method.Name) == id {
				return method, nil
			}
		}
	}

	return nil, fmt.Errorf("method %s: %w", id, ErrMemberNotFound)
}

// Field resolves a field by qualified id.
func (p *Program) Field(id string) (*Field, error) {
	for _, t := range p.Types {
		for _, field := range t.Fields {
			if MemberID(t.Name, field.Name) == id {
				return field, nil
			}
		}
	}

	return nil, fmt.Errorf("field %s: %w", id, ErrMemberNotFound)
}

// NewMethod links code in slice order and returns the method.
func NewMethod(name string, locals []ValueType, code ...Instruction) *Method {
	method := &Method{Name: name, Locals: locals, Head: NoIndex}
	method.Code = make([]Instruction, len(code))

	for i, instr := range code {
		instr.Prev = i - 1
		instr.Next = i + 1

		if i == len(code)-1 {
			instr.Next = NoIndex
		}

		method.Code[i] = instr
	}

	if len(code) > 0 {
		method.Head = 0
	}

	return method
}

// Order returns the arena indices of the method's instructions in program order.
func (m *Method) Order() []int {
	order := make([]int, 0, len(m.Code))

	for i := m.Head; i != NoIndex; i = m.Code[i].Next {
		order = append(order, i)

		if len(order) > len(m.Code) {
			// Cycle guard for corrupted links.
			break
		}
	}

	return order
}

// At returns the instruction at arena index i, or nil when out of range.
func (m *Method) At(i int) *Instruction {
	if i < 0 || i >= len(m.Code) {
		return nil
	}

	return &m.Code[i]
}

// NextOf returns the arena index following i, or NoIndex.
func (m *Method) NextOf(i int) int {
	if instr := m.At(i); instr != nil {
		return instr.Next
	}

	return NoIndex
}

// PrevOf returns the arena index preceding i, or NoIndex.
func (m *Method) PrevOf(i int) int {
	if instr := m.At(i); instr != nil {
		return instr.Prev
	}

	return NoIndex
}

// SpliceRecord captures what Splice changed so Unsplice can restore it.
type SpliceRecord struct {
	First, Last   int // replaced range, inclusive
	Before, After int // outer neighbours
	NewFirst      int
	NewLast       int
	ArenaLen      int // arena length before the splice
	Redirects     []Redirect
}

// Redirect is a branch that Splice retargeted from the replaced range to the
// first replacement instruction.
type Redirect struct {
	Branch int
	Target int // original target
}

// Splice replaces the linked range first..last (inclusive) with repl. The
// replacement instructions are appended to the arena; the replaced ones stay
// in place, unlinked, so Unsplice can relink them. Branches into the replaced
// range are retargeted to the first replacement instruction.
func (m *Method) Splice(first, last int, repl []Instruction) (SpliceRecord, error) {
	if m.At(first) == nil || m.At(last) == nil {
		return SpliceRecord{}, fmt.Errorf("splice range %d..%d out of bounds", first, last)
	}

	if len(repl) == 0 {
		return SpliceRecord{}, errors.New("splice requires at least one instruction")
	}

	rec := SpliceRecord{
		First:    first,
		Last:     last,
		Before:   m.Code[first].Prev,
		After:    m.Code[last].Next,
		ArenaLen: len(m.Code),
	}

	base := len(m.Code)
	for i, instr := range repl {
		instr.Prev = base + i - 1
		instr.Next = base + i + 1

		if i == 0 {
			instr.Prev = rec.Before
		}

		if i == len(repl)-1 {
			instr.Next = rec.After
		}

		m.Code = append(m.Code, instr)
	}

	rec.NewFirst = base
	rec.NewLast = base + len(repl) - 1

	replaced := make(map[int]bool)
	for i := first; i != NoIndex; i = m.NextOf(i) {
		replaced[i] = true

		if i == last {
			break
		}
	}

	for _, i := range m.Order() {
		if instr := &m.Code[i]; instr.Op.IsBranch() && replaced[instr.Target] && !replaced[i] {
			rec.Redirects = append(rec.Redirects, Redirect{Branch: i, Target: instr.Target})
			instr.Target = rec.NewFirst
		}
	}

	m.link(rec.Before, rec.After, rec.NewFirst, rec.NewLast)

	return rec, nil
}

// Unsplice restores the range replaced by a Splice and drops the appended
// instructions when they are still at the arena tail.
func (m *Method) Unsplice(rec SpliceRecord) error {
	if m.At(rec.First) == nil || m.At(rec.Last) == nil {
		return fmt.Errorf("unsplice range %d..%d out of bounds", rec.First, rec.Last)
	}

	m.link(rec.Before, rec.After, rec.First, rec.Last)

	for _, r := range rec.Redirects {
		if instr := m.At(r.Branch); instr != nil {
			instr.Target = r.Target
		}
	}

	if len(m.Code) == rec.NewLast+1 {
		m.Code = m.Code[:rec.ArenaLen]
	}

	return nil
}

func (m *Method) link(before, after, first, last int) {
	if before == NoIndex {
		m.Head = first
	} else {
		m.Code[before].Next = first
	}

	if after != NoIndex {
		m.Code[after].Prev = last
	}

	m.Code[first].Prev = before
	m.Code[last].Next = after
}

// Compact returns a copy of the method with instructions laid out in program
// order and branch targets remapped.
func (m *Method) Compact() *Method {
	order := m.Order()
	position := make(map[int]int, len(order))

	for pos, idx := range order {
		position[idx] = pos
	}

	code := make([]Instruction, len(order))

	for pos, idx := range order {
		instr := m.Code[idx]
		instr.Elements = append([]Value(nil), instr.Elements...)

		if instr.Op.IsBranch() {
			if target, ok := position[instr.Target]; ok {
				instr.Target = target
			} else {
				instr.Target = NoIndex
			}
		}

		instr.Prev = pos - 1
		instr.Next = pos + 1

		if pos == len(order)-1 {
			instr.Next = NoIndex
		}

		code[pos] = instr
	}

	head := NoIndex
	if len(code) > 0 {
		head = 0
	}

	return &Method{
		Name:   m.Name,
		Locals: append([]ValueType(nil), m.Locals...),
		Code:   code,
		Head:   head,
	}
}

// Compact returns a copy of the program with every method compacted.
func (p *Program) Compact() *Program {
	out := &Program{Name: p.Name, Types: make([]*TypeDef, 0, len(p.Types))}

	for _, t := range p.Types {
		td := &TypeDef{Name: t.Name}

		for _, f := range t.Fields {
			field := *f
			td.Fields = append(td.Fields, &field)
		}

		for _, method := range t.Methods {
			td.Methods = append(td.Methods, method.Compact())
		}

		out.Types = append(out.Types, td)
	}

	return out
}
