package token

import (
	"math/big"
	"testing"
)

func bigIntFromString(s string) *big.Int {
	n := new(big.Int)
	n.SetString(s, 10)
	return n
}

func TestKeywordRangesContiguousAndDisjointFromPunctuation(t *testing.T) {
	if !KwClass.IsKeyword() || !KwClass.IsDeclarationKeyword() {
		t.Errorf("KwClass should be a keyword and a declaration keyword")
	}
	if KwClass.IsTypeKeyword() || KwClass.IsModifierKeyword() {
		t.Errorf("KwClass should not be a type or modifier keyword")
	}
	if !KwInt.IsTypeKeyword() || KwInt.IsModifierKeyword() || KwInt.IsDeclarationKeyword() {
		t.Errorf("KwInt should be exactly a type keyword")
	}
	if !KwPublic.IsModifierKeyword() {
		t.Errorf("KwPublic should be a modifier keyword")
	}
	if Plus.IsKeyword() {
		t.Errorf("Plus (punctuation) should not be a keyword")
	}
}

func TestLookupKeyword(t *testing.T) {
	k, ok := LookupKeyword("class")
	if !ok || k != KwClass {
		t.Errorf("LookupKeyword(class) = (%v, %v), want (KwClass, true)", k, ok)
	}
	if _, ok := LookupKeyword("true"); ok {
		t.Errorf("true must not be in the keyword table (it lexes as a Literal)")
	}
	if _, ok := LookupKeyword("frobnicate"); ok {
		t.Errorf("frobnicate should not be a keyword")
	}
}

func TestKeywordTableHasNoRangeMarkers(t *testing.T) {
	for name, k := range keywords {
		switch k {
		case KeywordsBegin, KeywordsEnd, DeclKeywordsBegin, DeclKeywordsEnd,
			TypeKeywordsBegin, TypeKeywordsEnd, ModifierKeywordsBegin, ModifierKeywordsEnd:
			t.Errorf("keyword table leaked range marker %v under name %q", k, name)
		}
	}
}

func TestDecimalString(t *testing.T) {
	d := Decimal{Unscaled: bigIntFromString("12345"), Scale: 2}
	if got := d.String(); got != "123.45" {
		t.Errorf("Decimal{12345, scale 2}.String() = %q, want 123.45", got)
	}
}

func TestValueStringersCoverAllKinds(t *testing.T) {
	vals := []Value{
		NoneValue(), BoolValue(true), Int32Value(-1), Uint32Value(1),
		Int64Value(-1), Uint64Value(1), Float32Value(1.5), Float64Value(1.5),
		DecimalValue(Decimal{Unscaled: bigIntFromString("1"), Scale: 0}),
		CharValue('x'), StringValue("s"), OpBaseValue(Plus),
	}
	for _, v := range vals {
		if v.String() == "" {
			t.Errorf("Value{Kind:%v}.String() returned empty", v.Kind)
		}
	}
}
