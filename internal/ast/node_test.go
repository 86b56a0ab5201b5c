package ast

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/gmofishsauce/csfront/internal/position"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

func TestListAppendBuildsChainInOrder(t *testing.T) {
	l := NewList()
	a := &Node{Data: &Identifier{Name: "a"}}
	b := &Node{Data: &Identifier{Name: "b"}}
	c := &Node{Data: &Identifier{Name: "c"}}
	l.Append(a)
	l.Append(b)
	l.Append(c)

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if l.Head() != a {
		t.Fatalf("Head() = %v, want a", l.Head())
	}
	got := []string{}
	for n := l.Head(); n != nil; n = n.Next {
		got = append(got, n.Data.(*Identifier).Name)
	}
	want := []string{"a", "b", "c"}
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("chain order mismatch: %v", diff)
	}
	if !l.Acyclic() {
		t.Error("expected Acyclic() == true for a freshly built chain")
	}
}

func TestListSliceMatchesChainOrder(t *testing.T) {
	l := NewList()
	nodes := []*Node{
		{Data: &Identifier{Name: "x"}},
		{Data: &Identifier{Name: "y"}},
	}
	for _, n := range nodes {
		l.Append(n)
	}
	got := l.Slice()
	if diff := deep.Equal(got, nodes); diff != nil {
		t.Errorf("Slice() mismatch: %v", diff)
	}
}

func TestListAppendNilPanics(t *testing.T) {
	l := NewList()
	mustPanic(t, "append nil", func() { l.Append(nil) })
}

func TestListAppendAlreadyLinkedPanics(t *testing.T) {
	l1 := NewList()
	l2 := NewList()
	n := &Node{Data: &Identifier{Name: "shared"}}
	tail := &Node{Data: &Identifier{Name: "tail"}}
	l1.Append(n)
	l1.Append(tail) // n.Next is now non-nil

	mustPanic(t, "append already-linked node to a second list", func() {
		l2.Append(n)
	})
}

func TestListAppendSameTailTwicePanics(t *testing.T) {
	l := NewList()
	n := &Node{Data: &Identifier{Name: "only"}}
	l.Append(n)
	mustPanic(t, "append the current tail again", func() {
		l.Append(n)
	})
}

func TestListAcyclicDetectsManualCycle(t *testing.T) {
	l := NewList()
	a := &Node{Data: &Identifier{Name: "a"}}
	b := &Node{Data: &Identifier{Name: "b"}}
	l.Append(a)
	l.Append(b)
	// Force a cycle by hand, bypassing Append's invariant checks, to
	// exercise Acyclic's bounded walk directly.
	b.Next = a

	if l.Acyclic() {
		t.Error("expected Acyclic() == false once the chain cycles back")
	}
}

func TestNodeSpan(t *testing.T) {
	n := &Node{
		Start: position.Position{Line: 1, Column: 1},
		End:   position.Position{Line: 1, Column: 5},
		Data:  &Identifier{Name: "Foo"},
	}
	span := n.Span()
	if span.Start != n.Start || span.End != n.End {
		t.Errorf("Span() = %+v, want Start=%+v End=%+v", span, n.Start, n.End)
	}
}

func TestTypeDeclKindString(t *testing.T) {
	cases := map[TypeDeclKind]string{
		DeclClass:     "class",
		DeclStruct:    "struct",
		DeclInterface: "interface",
		DeclEnum:      "enum",
		DeclDelegate:  "delegate",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
