// Package ir models a compiled program as an arena of instructions addressed
// by index, with explicit neighbour indices instead of pointer links.
package ir

import (
	"fmt"
	"math"
	"strconv"
)

// ValueType is the scalar type of an immediate, constant or array element.
type ValueType uint8

// Supported scalar types.
const (
	TypeInvalid ValueType = iota
	TypeBool
	TypeChar
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeString
	TypeObject
)

var typeNames = map[ValueType]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeChar:    "char",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint64:  "uint64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
	TypeString:  "string",
	TypeObject:  "object",
}

func (t ValueType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "type(" + strconv.Itoa(int(t)) + ")"
}

// IsSigned reports whether t is a signed integer type.
func (t ValueType) IsSigned() bool {
	return t >= TypeInt8 && t <= TypeInt64
}

// IsUnsigned reports whether t is an unsigned integer type.
func (t ValueType) IsUnsigned() bool {
	return t >= TypeUint8 && t <= TypeUint64
}

// IsFloat reports whether t is a floating point type.
func (t ValueType) IsFloat() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// IsNumeric reports whether t is any integer or float width.
func (t ValueType) IsNumeric() bool {
	return t.IsSigned() || t.IsUnsigned() || t.IsFloat()
}

// IsScalar reports whether t can be mutated by value.
func (t ValueType) IsScalar() bool {
	return t == TypeBool || t == TypeChar || t == TypeString || t.IsNumeric()
}

// Bits returns the storage width of integer types.
func (t ValueType) Bits() int {
	switch t {
	case TypeInt8, TypeUint8:
		return 8
	case TypeInt16, TypeUint16, TypeChar:
		return 16
	case TypeInt32, TypeUint32, TypeFloat32:
		return 32
	default:
		return 64
	}
}

// Value is a comparable typed scalar. Integers, floats, bools and chars are
// stored in Bits; strings in Str.
type Value struct {
	Type ValueType
	Bits uint64
	Str  string
}

// Bool builds a bool value.
func Bool(b bool) Value {
	if b {
		return Value{Type: TypeBool, Bits: 1}
	}

	return Value{Type: TypeBool}
}

// Char builds a char value.
func Char(r rune) Value {
	return Value{Type: TypeChar, Bits: uint64(uint16(r))}
}

// String builds a string value.
func String(s string) Value {
	return Value{Type: TypeString, Str: s}
}

// Int builds a signed integer of type t, truncated to its width.
func Int(t ValueType, v int64) Value {
	return Value{Type: t, Bits: truncate(t, uint64(v))}
}

// Uint builds an unsigned integer of type t, truncated to its width.
func Uint(t ValueType, v uint64) Value {
	return Value{Type: t, Bits: truncate(t, v)}
}

// Float builds a float of type t.
func Float(t ValueType, f float64) Value {
	if t == TypeFloat32 {
		return Value{Type: t, Bits: uint64(math.Float32bits(float32(f)))}
	}

	return Value{Type: TypeFloat64, Bits: math.Float64bits(f)}
}

// FromInt64 converts a raw integer draw into a value of type t. Floats get
// the integer's numeric value, bools its parity, chars its low 16 bits.
func FromInt64(t ValueType, v int64) Value {
	switch {
	case t == TypeBool:
		return Bool(v&1 == 1)
	case t == TypeChar:
		return Char(rune(uint16(v)))
	case t.IsFloat():
		return Float(t, float64(v))
	case t.IsUnsigned():
		return Uint(t, uint64(v))
	case t == TypeString:
		return String(strconv.FormatInt(v, 10))
	default:
		return Int(t, v)
	}
}

func truncate(t ValueType, v uint64) uint64 {
	bits := t.Bits()
	if bits >= 64 {
		return v
	}

	v &= (uint64(1) << bits) - 1
	if t.IsSigned() && v&(uint64(1)<<(bits-1)) != 0 {
		v |= ^((uint64(1) << bits) - 1)
	}

	return v
}

// AsBool returns the boolean payload.
func (v Value) AsBool() bool { return v.Bits != 0 }

// AsChar returns the char payload.
func (v Value) AsChar() rune { return rune(uint16(v.Bits)) }

// AsInt returns the signed integer payload.
func (v Value) AsInt() int64 { return int64(v.Bits) }

// AsFloat returns the float payload.
func (v Value) AsFloat() float64 {
	if v.Type == TypeFloat32 {
		return float64(math.Float32frombits(uint32(v.Bits)))
	}

	return math.Float64frombits(v.Bits)
}

// IsDefault reports whether v is the zero value of its type.
func (v Value) IsDefault() bool {
	if v.Type.IsFloat() {
		return v.AsFloat() == 0
	}

	return v.Bits == 0 && v.Str == ""
}

func (v Value) String() string {
	switch {
	case v.Type == TypeBool:
		return strconv.FormatBool(v.AsBool())
	case v.Type == TypeChar:
		return strconv.QuoteRune(v.AsChar())
	case v.Type == TypeString:
		return strconv.Quote(v.Str)
	case v.Type.IsFloat():
		return strconv.FormatFloat(v.AsFloat(), 'g', -1, v.Type.Bits())
	case v.Type.IsUnsigned():
		return strconv.FormatUint(v.Bits, 10)
	case v.Type.IsSigned():
		return strconv.FormatInt(v.AsInt(), 10)
	default:
		return fmt.Sprintf("%s(%d)", v.Type, v.Bits)
	}
}
