package ir

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	p := &Program{
		Name: "subject",
		Types: []*TypeDef{{
			Name:   "Calc",
			Fields: []*Field{{Name: "Name", Type: TypeString, HasConstant: true, Constant: String("calc")}},
			Methods: []*Method{
				sampleMethod(),
				NewMethod("Table", nil,
					Instruction{Op: Ldc, Value: Int(TypeInt32, 3)},
					Instruction{Op: Newarr, ElemType: TypeInt32},
					Instruction{Op: Dup},
					Instruction{Op: InitArray, ElemType: TypeInt32, Elements: []Value{Int(TypeInt32, 1), Int(TypeInt32, 2), Int(TypeInt32, 3)}},
					Instruction{Op: Ret},
				),
			},
		}},
	}

	data, err := Bytes(p)
	require.NoError(t, err)

	decoded, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "subject", decoded.Name)

	again, err := Bytes(decoded)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, again))

	table, err := decoded.Method("Calc::Table")
	require.NoError(t, err)
	assert.Len(t, table.Code[3].Elements, 3)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
}

func TestClone_IsIndependent(t *testing.T) {
	p := &Program{Name: "p", Types: []*TypeDef{{Name: "T", Methods: []*Method{sampleMethod()}}}}

	clone, err := Clone(p)
	require.NoError(t, err)

	clone.Types[0].Methods[0].Code[2].Op = Sub
	assert.Equal(t, Add, p.Types[0].Methods[0].Code[2].Op)
}
