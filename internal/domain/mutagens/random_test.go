package mutagens

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

func TestDraw_ChangeBool(t *testing.T) {
	d := NewGenerator(1).For("T::M", m.GroupConstant, 0)

	assert.False(t, d.ChangeBool(true))
	assert.True(t, d.ChangeBool(false))
}

func TestDraw_ChangeChar(t *testing.T) {
	d := NewGenerator(7).For("T::M", m.GroupConstant, 0)

	for range 200 {
		require.NotEqual(t, 'A', d.ChangeChar('A', Alphabet))
	}

	assert.Equal(t, 'B', d.ChangeChar('A', "AB"))
	assert.Equal(t, 'A', d.ChangeChar('A', "A"), "a singleton alphabet cannot produce a different char")
}

func TestDraw_RandomString(t *testing.T) {
	d := NewGenerator(3).For("T::M", m.GroupConstant, 0)

	s := d.RandomString(StringLength, Alphabet)
	assert.Len(t, s, StringLength)

	for _, r := range s {
		assert.Contains(t, Alphabet, string(r))
	}
}

func TestDraw_ChangeNumberNeverReturnsOriginal(t *testing.T) {
	values := []ir.Value{
		ir.Int(ir.TypeInt8, 0),
		ir.Int(ir.TypeInt16, -5),
		ir.Int(ir.TypeInt32, 42),
		ir.Int(ir.TypeInt64, 1<<40),
		ir.Uint(ir.TypeUint8, 255),
		ir.Uint(ir.TypeUint16, 1),
		ir.Uint(ir.TypeUint32, 7),
		ir.Uint(ir.TypeUint64, 9),
		ir.Float(ir.TypeFloat32, 1.25),
		ir.Float(ir.TypeFloat64, 0),
	}

	d := NewGenerator(11).For("T::M", m.GroupConstant, 0)

	for _, v := range values {
		t.Run(v.Type.String(), func(t *testing.T) {
			for range 100 {
				next := d.ChangeNumber(v)
				require.NotEqual(t, v, next)
				require.Equal(t, v.Type, next.Type)
			}
		})
	}
}

func TestDraw_ChangeNumberNegativeZero(t *testing.T) {
	for _, typ := range []ir.ValueType{ir.TypeFloat32, ir.TypeFloat64} {
		t.Run(typ.String(), func(t *testing.T) {
			negZero := ir.Float(typ, math.Copysign(0, -1))
			require.True(t, math.Signbit(negZero.AsFloat()))

			d := NewGenerator(3).For("T::M", m.GroupConstant, 0)

			for range 200 {
				next := d.ChangeNumber(negZero)
				require.NotZero(t, next.AsFloat())
			}
		})
	}
}

func TestDraw_Change(t *testing.T) {
	d := NewGenerator(5).For("T::M", m.GroupConstant, 0)

	next, ok := d.Change(ir.Bool(true))
	require.True(t, ok)
	assert.Equal(t, ir.Bool(false), next)

	next, ok = d.Change(ir.String("hello"))
	require.True(t, ok)
	assert.Len(t, next.Str, StringLength)

	_, ok = d.Change(ir.Value{Type: ir.TypeObject})
	assert.False(t, ok)
}

func TestGenerator_IsDeterministicPerPosition(t *testing.T) {
	a := NewGenerator(9).For("T::M", m.GroupArray, 2)
	b := NewGenerator(9).For("T::M", m.GroupArray, 2)

	assert.Equal(t, a.RandomString(16, Alphabet), b.RandomString(16, Alphabet))
	assert.Equal(t, a.ChangeNumber(ir.Int(ir.TypeInt32, 1)), b.ChangeNumber(ir.Int(ir.TypeInt32, 1)))
}
