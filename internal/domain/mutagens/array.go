package mutagens

import (
	"log/slog"
	"strings"

	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// maxArrayLength bounds the literal arrays considered for rebuilding.
const maxArrayLength = 1 << 16

type arrayShape int

const (
	// shapeBlob: ldc n; newarr T; dup; initarray [values].
	shapeBlob arrayShape = iota
	// shapeStores: ldc n; newarr T; (dup; ldc i; ldc v; stelem T)*.
	shapeStores
)

type arraySite struct {
	first    int
	last     int
	shape    arrayShape
	length   ir.Instruction
	newarr   ir.Instruction
	elements []ir.Value
}

func (s arraySite) nonDefault() int {
	count := 0

	for _, v := range s.elements {
		if !v.IsDefault() {
			count++
		}
	}

	return count
}

func (s arraySite) rebuild(elements []ir.Value) []ir.Instruction {
	code := []ir.Instruction{s.length, s.newarr}
	elemType := s.newarr.ElemType

	if s.shape == shapeBlob {
		return append(code,
			ir.Instruction{Op: ir.Dup},
			ir.Instruction{Op: ir.InitArray, ElemType: elemType, Elements: elements},
		)
	}

	for i, v := range elements {
		code = append(code,
			ir.Instruction{Op: ir.Dup},
			ir.Instruction{Op: ir.Ldc, Value: ir.Int(ir.TypeInt32, int64(i))},
			ir.Instruction{Op: ir.Ldc, Value: v},
			ir.Instruction{Op: ir.Stelem, ElemType: elemType},
		)
	}

	return code
}

type arrayAnalyzer struct {
	noFields
}

// Array returns the analyzer for array literal construction sites.
func Array() Analyzer {
	return arrayAnalyzer{}
}

func (arrayAnalyzer) Group() m.GroupID { return m.GroupArray }

func (arrayAnalyzer) Name() string { return "Array" }

func (arrayAnalyzer) AnalyzeMethod(typeName string, method *ir.Method, gen *Generator) []Candidate {
	member := ir.MemberID(typeName, method.Name)
	seq := newSequence(member, m.GroupArray, gen)

	for _, idx := range method.Order() {
		if method.Code[idx].Op != ir.Newarr {
			continue
		}

		site, ok, reason := matchArray(method, idx)
		if !ok {
			if reason != "" {
				slog.Debug("Unsupported array construction", "member", member, "instruction", idx, "reason", reason)
			}

			continue
		}

		if site.nonDefault() < 2 {
			continue
		}

		draw := seq.draw()
		replaced := make([]ir.Value, len(site.elements))

		for i, v := range site.elements {
			replaced[i], _ = draw.Change(v)
		}

		seq.add(m.TierMedium, &SpliceEdit{
			Member:      member,
			First:       site.first,
			Last:        site.last,
			Replacement: site.rebuild(replaced),
		}, formatValues(site.elements), formatValues(replaced),
			"replaced array literal "+formatValues(site.elements)+" with "+formatValues(replaced))
	}

	return seq.candidates
}

// matchArray recognises a literal construction around the newarr at idx. A
// false ok with an empty reason means the site is simply not a literal.
func matchArray(method *ir.Method, idx int) (arraySite, bool, string) {
	newarr := method.Code[idx]

	lengthIdx := method.PrevOf(idx)
	length := method.At(lengthIdx)

	if length == nil || length.Op != ir.Ldc || !length.Value.Type.IsSigned() {
		return arraySite{}, false, "array length is not a constant"
	}

	n := length.Value.AsInt()
	if n < 0 || n > maxArrayLength {
		return arraySite{}, false, "array length out of range"
	}

	dupIdx := method.NextOf(idx)

	dup := method.At(dupIdx)
	if dup == nil || dup.Op != ir.Dup {
		return arraySite{}, false, ""
	}

	if !newarr.ElemType.IsScalar() {
		return arraySite{}, false, "element type " + newarr.ElemType.String() + " is not supported"
	}

	site := arraySite{
		first:    lengthIdx,
		length:   *length,
		newarr:   newarr,
		elements: make([]ir.Value, n),
	}

	for i := range site.elements {
		site.elements[i] = ir.Value{Type: newarr.ElemType}
	}

	site.length.Prev, site.length.Next = ir.NoIndex, ir.NoIndex
	site.newarr.Prev, site.newarr.Next = ir.NoIndex, ir.NoIndex

	next := method.At(method.NextOf(dupIdx))
	if next == nil {
		return arraySite{}, false, ""
	}

	switch next.Op {
	case ir.InitArray:
		if next.ElemType != newarr.ElemType || int64(len(next.Elements)) != n {
			return arraySite{}, false, "initializer does not match array declaration"
		}

		copy(site.elements, next.Elements)
		site.shape = shapeBlob
		site.last = method.NextOf(dupIdx)

		return site, true, ""
	case ir.Ldc:
		last, ok := matchStores(method, dupIdx, newarr.ElemType, site.elements)
		if !ok {
			return arraySite{}, false, "element stores do not match array declaration"
		}

		site.shape = shapeStores
		site.last = last

		return site, true, ""
	default:
		return arraySite{}, false, ""
	}
}

// matchStores consumes (dup; ldc i; ldc v; stelem T) groups starting at dupIdx
// and returns the index of the last stelem.
func matchStores(method *ir.Method, dupIdx int, elemType ir.ValueType, elements []ir.Value) (int, bool) {
	last := ir.NoIndex

	for cur := dupIdx; ; {
		dup := method.At(cur)
		if dup == nil || dup.Op != ir.Dup {
			break
		}

		indexIdx := method.NextOf(cur)
		index := method.At(indexIdx)
		if index == nil || index.Op != ir.Ldc || !index.Value.Type.IsSigned() {
			break
		}

		valueIdx := method.NextOf(indexIdx)
		value := method.At(valueIdx)
		if value == nil || value.Op != ir.Ldc || value.Value.Type != elemType {
			break
		}

		storeIdx := method.NextOf(valueIdx)
		store := method.At(storeIdx)
		if store == nil || store.Op != ir.Stelem || store.ElemType != elemType {
			break
		}

		pos := index.Value.AsInt()
		if pos < 0 || pos >= int64(len(elements)) {
			return ir.NoIndex, false
		}

		elements[pos] = value.Value
		last = storeIdx
		cur = method.NextOf(storeIdx)
	}

	return last, last != ir.NoIndex
}

func formatValues(values []ir.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
