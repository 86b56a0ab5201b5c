package ast

import "testing"

func TestNewArrayTypeRank(t *testing.T) {
	elem := NewPrimitiveType(PrimInt)
	arr := NewArrayType(elem, 2)
	a, ok := arr.Data.(*ArrayType)
	if !ok {
		t.Fatalf("Data is %T, want *ArrayType", arr.Data)
	}
	if a.Rank != 2 || a.Element != elem {
		t.Errorf("ArrayType = %+v, want Rank=2 Element=%v", a, elem)
	}
}

func TestNewArrayTypeZeroRankPanics(t *testing.T) {
	mustPanic(t, "array rank 0", func() {
		NewArrayType(NewPrimitiveType(PrimInt), 0)
	})
}

func TestNewArrayTypeOverReferencePanics(t *testing.T) {
	ref := NewReferenceType(NewPrimitiveType(PrimInt))
	mustPanic(t, "array over reference", func() {
		NewArrayType(ref, 1)
	})
}

func TestNewPointerTypeOverReferencePanics(t *testing.T) {
	ref := NewReferenceType(NewPrimitiveType(PrimByte))
	mustPanic(t, "pointer over reference", func() {
		NewPointerType(ref)
	})
}

func TestNewNullableTypeOverReferencePanics(t *testing.T) {
	ref := NewReferenceType(NewPrimitiveType(PrimInt))
	mustPanic(t, "nullable over reference", func() {
		NewNullableType(ref)
	})
}

func TestNewNullableTypeOverNullablePanics(t *testing.T) {
	n := NewNullableType(NewPrimitiveType(PrimInt))
	mustPanic(t, "nullable over nullable", func() {
		NewNullableType(n)
	})
}

func TestNewReferenceTypeOverReferenceIsAllowed(t *testing.T) {
	// spec.md §3 only restricts what can be built OVER a reference type,
	// not whether a reference type itself can be the outer wrapper.
	inner := NewReferenceType(NewPrimitiveType(PrimInt))
	outer := NewReferenceType(inner)
	r, ok := outer.Data.(*ReferenceType)
	if !ok || r.Element != inner {
		t.Errorf("ReferenceType(ReferenceType) = %+v, want wrapping %v", outer.Data, inner)
	}
}

func TestPointerAndArrayCanWrapNullable(t *testing.T) {
	// Only ReferenceType is restricted as an operand; Nullable is a
	// valid element for Array/Pointer.
	nullable := NewNullableType(NewPrimitiveType(PrimInt))
	if _, err := panicSafe(func() { NewArrayType(nullable, 1) }); err != nil {
		t.Errorf("NewArrayType(nullable, 1) panicked unexpectedly: %v", err)
	}
	if _, err := panicSafe(func() { NewPointerType(nullable) }); err != nil {
		t.Errorf("NewPointerType(nullable) panicked unexpectedly: %v", err)
	}
}

func panicSafe(fn func()) (ok bool, err any) {
	defer func() {
		if r := recover(); r != nil {
			err = r
		}
	}()
	fn()
	return true, nil
}

func TestLookupPrimitiveKnownAndUnknown(t *testing.T) {
	if p, ok := LookupPrimitive("ulong"); !ok || p != PrimUlong {
		t.Errorf("LookupPrimitive(ulong) = (%v, %v), want (PrimUlong, true)", p, ok)
	}
	if _, ok := LookupPrimitive("notaprimitive"); ok {
		t.Error("LookupPrimitive(notaprimitive) should report false")
	}
}

func TestPrimitiveStringCoversAllNames(t *testing.T) {
	for name, p := range primitiveNames {
		if got := p.String(); got != name {
			t.Errorf("Primitive(%d).String() = %q, want %q", p, got, name)
		}
	}
}

func TestUnresolvedNestedTypeShape(t *testing.T) {
	outer := &TypeRef{Data: &UnresolvedType{Name: &Node{Data: &Identifier{Name: "Outer"}}}}
	nested := &TypeRef{Data: &UnresolvedNestedType{
		Outer: outer,
		Name:  &Node{Data: &Identifier{Name: "Inner"}},
	}}
	nt, ok := nested.Data.(*UnresolvedNestedType)
	if !ok {
		t.Fatalf("Data is %T, want *UnresolvedNestedType", nested.Data)
	}
	if nt.Outer != outer {
		t.Errorf("Outer = %v, want %v", nt.Outer, outer)
	}
}
