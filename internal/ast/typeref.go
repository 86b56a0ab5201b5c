package ast

import "github.com/gmofishsauce/csfront/internal/invariant"

// TypeRef is the tagged-variant type reference spec.md §3 describes:
// unresolved (possibly nested) names, array/pointer/reference/nullable
// wrappers, and the sixteen built-in primitives. Construction invariants
// ("cannot construct ArrayType/NullableType/PointerType over a
// ReferenceType", "NullableType cannot wrap a NullableType") are
// programmer-error invariants enforced at construction time: a
// correctly-written parser never attempts either, so a violation here
// means the parser itself has a bug, not that the user's source is
// malformed (spec.md §7 draws exactly this line between invariant
// panics and diagnostic-sink errors).
type TypeRef struct {
	Data TypeRefData
}

type TypeRefData interface{ isTypeRef() }

// UnresolvedType is a bare name reference not yet bound to a declaration
// (name resolution is out of this front end's scope).
type UnresolvedType struct {
	Name *Node // Data *Identifier
}

func (*UnresolvedType) isTypeRef() {}

// UnresolvedNestedType is "Outer.Nested" written as a type, distinct
// from a dotted namespace-qualified name (spec.md §3).
type UnresolvedNestedType struct {
	Outer *TypeRef
	Name  *Node // Data *Identifier
}

func (*UnresolvedNestedType) isTypeRef() {}

// ArrayType is "T[,...]" with Rank equal to the number of dimensions
// (spec.md §3: "rank ≥ 1").
type ArrayType struct {
	Element *TypeRef
	Rank    int
}

func (*ArrayType) isTypeRef() {}

// PointerType is "T*".
type PointerType struct {
	Element *TypeRef
}

func (*PointerType) isTypeRef() {}

// ReferenceType models a by-reference type (spec.md §3); nothing may be
// constructed over it (see NewArrayType/NewPointerType/NewNullableType).
type ReferenceType struct {
	Element *TypeRef
}

func (*ReferenceType) isTypeRef() {}

// NullableType is "T?".
type NullableType struct {
	Element *TypeRef
}

func (*NullableType) isTypeRef() {}

// Primitive is one of the built-in primitive types (spec.md §3).
type Primitive int

const (
	PrimBool Primitive = iota
	PrimByte
	PrimChar
	PrimDecimal
	PrimDouble
	PrimFloat
	PrimInt
	PrimLong
	PrimObject
	PrimSbyte
	PrimShort
	PrimString
	PrimUint
	PrimUlong
	PrimUshort
	PrimVoid
)

func (p Primitive) String() string {
	switch p {
	case PrimBool:
		return "bool"
	case PrimByte:
		return "byte"
	case PrimChar:
		return "char"
	case PrimDecimal:
		return "decimal"
	case PrimDouble:
		return "double"
	case PrimFloat:
		return "float"
	case PrimInt:
		return "int"
	case PrimLong:
		return "long"
	case PrimObject:
		return "object"
	case PrimSbyte:
		return "sbyte"
	case PrimShort:
		return "short"
	case PrimString:
		return "string"
	case PrimUint:
		return "uint"
	case PrimUlong:
		return "ulong"
	case PrimUshort:
		return "ushort"
	case PrimVoid:
		return "void"
	default:
		return "?"
	}
}

type PrimitiveType struct {
	Kind Primitive
}

func (*PrimitiveType) isTypeRef() {}

func isReferenceType(t *TypeRef) bool {
	if t == nil {
		return false
	}
	_, ok := t.Data.(*ReferenceType)
	return ok
}

func isNullableType(t *TypeRef) bool {
	if t == nil {
		return false
	}
	_, ok := t.Data.(*NullableType)
	return ok
}

// NewArrayType constructs "element[]"/"element[,]" etc. Panics if
// element is a ReferenceType (spec.md §3 invariant).
func NewArrayType(element *TypeRef, rank int) *TypeRef {
	if isReferenceType(element) {
		invariant.Raise("ast: cannot construct an array type over a reference type")
	}
	if rank < 1 {
		invariant.Raise("ast: array rank must be >= 1, got %d", rank)
	}
	return &TypeRef{Data: &ArrayType{Element: element, Rank: rank}}
}

// NewPointerType constructs "element*". Panics if element is a
// ReferenceType.
func NewPointerType(element *TypeRef) *TypeRef {
	if isReferenceType(element) {
		invariant.Raise("ast: cannot construct a pointer type over a reference type")
	}
	return &TypeRef{Data: &PointerType{Element: element}}
}

// NewNullableType constructs "element?". Panics if element is a
// ReferenceType or already a NullableType (spec.md §3 invariants).
func NewNullableType(element *TypeRef) *TypeRef {
	if isReferenceType(element) {
		invariant.Raise("ast: cannot construct a nullable type over a reference type")
	}
	if isNullableType(element) {
		invariant.Raise("ast: cannot construct a nullable type over another nullable type")
	}
	return &TypeRef{Data: &NullableType{Element: element}}
}

// NewReferenceType constructs a by-reference wrapper. Unlike array,
// pointer, and nullable, reference types have no construction
// restriction of their own in spec.md §3.
func NewReferenceType(element *TypeRef) *TypeRef {
	return &TypeRef{Data: &ReferenceType{Element: element}}
}

func NewPrimitiveType(p Primitive) *TypeRef {
	return &TypeRef{Data: &PrimitiveType{Kind: p}}
}

// LookupPrimitive maps a type keyword's spelling to its Primitive, for
// the parser's Type production.
func LookupPrimitive(name string) (Primitive, bool) {
	p, ok := primitiveNames[name]
	return p, ok
}

var primitiveNames = map[string]Primitive{
	"bool": PrimBool, "byte": PrimByte, "char": PrimChar, "decimal": PrimDecimal,
	"double": PrimDouble, "float": PrimFloat, "int": PrimInt, "long": PrimLong,
	"object": PrimObject, "sbyte": PrimSbyte, "short": PrimShort, "string": PrimString,
	"uint": PrimUint, "ulong": PrimUlong, "ushort": PrimUshort, "void": PrimVoid,
}
