package token

import (
	"fmt"
	"math/big"
)

// ValueKind tags which field of Value is live.
type ValueKind int

const (
	VNone ValueKind = iota
	VBool
	VInt32
	VUint32
	VInt64
	VUint64
	VFloat32
	VFloat64
	VDecimal
	VChar
	VString
	VOpBase // the base operator Kind of a compound-assignment OpAssign token
)

// Decimal is a fixed-point decimal value backed by an arbitrary-precision
// integer and a base-10 scale (Unscaled / 10^Scale), standing in for the
// source language's 128-bit decimal literal type (spec.md §3). Nothing
// in the retrieved corpus vendors a third-party decimal type; math/big
// is the standard-library tool the Go ecosystem itself reaches for here
// (see DESIGN.md).
type Decimal struct {
	Unscaled *big.Int
	Scale    int32
}

func (d Decimal) String() string {
	if d.Unscaled == nil {
		return "0"
	}
	if d.Scale == 0 {
		return d.Unscaled.String()
	}
	s := new(big.Rat).SetFrac(d.Unscaled, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale)), nil))
	return s.FloatString(int(d.Scale))
}

// Value is the discriminated union a Token carries (spec.md §3): null,
// bool, the four sized integer widths, the two float widths, decimal,
// char, string, or (for OpAssign tokens) the base operator Kind.
type Value struct {
	Kind   ValueKind
	Bool   bool
	I32    int32
	U32    uint32
	I64    int64
	U64    uint64
	F32    float32
	F64    float64
	Dec    Decimal
	Char   rune
	Str    string
	OpBase Kind
}

func NoneValue() Value           { return Value{Kind: VNone} }
func BoolValue(b bool) Value     { return Value{Kind: VBool, Bool: b} }
func Int32Value(v int32) Value   { return Value{Kind: VInt32, I32: v} }
func Uint32Value(v uint32) Value { return Value{Kind: VUint32, U32: v} }
func Int64Value(v int64) Value   { return Value{Kind: VInt64, I64: v} }
func Uint64Value(v uint64) Value { return Value{Kind: VUint64, U64: v} }
func Float32Value(v float32) Value { return Value{Kind: VFloat32, F32: v} }
func Float64Value(v float64) Value { return Value{Kind: VFloat64, F64: v} }
func DecimalValue(d Decimal) Value { return Value{Kind: VDecimal, Dec: d} }
func CharValue(r rune) Value       { return Value{Kind: VChar, Char: r} }
func StringValue(s string) Value   { return Value{Kind: VString, Str: s} }
func OpBaseValue(k Kind) Value     { return Value{Kind: VOpBase, OpBase: k} }

func (v Value) String() string {
	switch v.Kind {
	case VNone:
		return "<none>"
	case VBool:
		return fmt.Sprint(v.Bool)
	case VInt32:
		return fmt.Sprint(v.I32)
	case VUint32:
		return fmt.Sprint(v.U32)
	case VInt64:
		return fmt.Sprint(v.I64)
	case VUint64:
		return fmt.Sprint(v.U64)
	case VFloat32:
		return fmt.Sprint(v.F32)
	case VFloat64:
		return fmt.Sprint(v.F64)
	case VDecimal:
		return v.Dec.String()
	case VChar:
		return fmt.Sprintf("%q", v.Char)
	case VString:
		return fmt.Sprintf("%q", v.Str)
	case VOpBase:
		return v.OpBase.String()
	default:
		return "<?>"
	}
}
