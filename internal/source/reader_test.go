package source

import (
	"strings"
	"testing"

	"github.com/gmofishsauce/csfront/internal/position"
)

func newTestReader(name, content string) *Reader {
	r := New([]Input{{Name: name, Reader: strings.NewReader(content)}}, nil)
	if !r.NextSource() {
		panic("test: NextSource returned false")
	}
	return r
}

func drain(r *Reader) []rune {
	var out []rune
	for {
		c := r.Advance()
		if c == NUL {
			return out
		}
		out = append(out, c)
	}
}

func TestAdvanceBasic(t *testing.T) {
	r := newTestReader("a.cs", "ab")
	if c := r.Advance(); c != 'a' {
		t.Fatalf("first Advance = %q, want 'a'", c)
	}
	if r.CurrentPosition() != (position.Position{Line: 1, Column: 1}) {
		t.Errorf("position after 'a' = %v, want (1,1)", r.CurrentPosition())
	}
	if c := r.Advance(); c != 'b' {
		t.Fatalf("second Advance = %q, want 'b'", c)
	}
	if r.CurrentPosition() != (position.Position{Line: 1, Column: 2}) {
		t.Errorf("position after 'b' = %v, want (1,2)", r.CurrentPosition())
	}
	if c := r.Advance(); c != NUL {
		t.Errorf("Advance at EOF = %q, want NUL", c)
	}
}

func TestNewlineFoldingCRLFAndCR(t *testing.T) {
	for _, content := range []string{"a\r\nb", "a\rb", "a\nb"} {
		r := newTestReader("a.cs", content)
		got := drain(r)
		want := []rune{'a', '\n', 'b'}
		if string(got) != string(want) {
			t.Errorf("content %q: drain = %q, want %q", content, string(got), string(want))
		}
	}
}

func TestNewlinePositionReporting(t *testing.T) {
	r := newTestReader("a.cs", "ab\ncd")
	r.Advance() // a @ (1,1)
	r.Advance() // b @ (1,2)
	nl := r.Advance()
	if nl != '\n' {
		t.Fatalf("expected newline, got %q", nl)
	}
	if r.CurrentPosition() != (position.Position{Line: 1, Column: 3}) {
		t.Errorf("newline position = %v, want (1,3) [still on line it terminates]", r.CurrentPosition())
	}
	c := r.Advance() // c @ (2,1)
	if c != 'c' {
		t.Fatalf("expected 'c', got %q", c)
	}
	if r.CurrentPosition() != (position.Position{Line: 2, Column: 1}) {
		t.Errorf("position after newline = %v, want (2,1)", r.CurrentPosition())
	}
}

func TestEmbeddedNULRewrittenToSpace(t *testing.T) {
	r := newTestReader("a.cs", "a\x00b")
	got := drain(r)
	if string(got) != "a b" {
		t.Errorf("drain = %q, want %q", string(got), "a b")
	}
}

func TestSaveRestoreState(t *testing.T) {
	r := newTestReader("a.cs", "abcd")
	r.Advance() // a
	r.Advance() // b
	r.SaveState()
	r.Advance() // c
	r.Advance() // d
	r.RestoreState()
	if c := r.Advance(); c != 'c' {
		t.Errorf("after restore, Advance = %q, want 'c'", c)
	}
	if c := r.Advance(); c != 'd' {
		t.Errorf("after restore, second Advance = %q, want 'd'", c)
	}
}

func TestSaveStateOverlapPanics(t *testing.T) {
	r := newTestReader("a.cs", "abcd")
	r.Advance()
	r.SaveState()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on overlapping SaveState")
		}
	}()
	r.SaveState()
}

func TestAdvanceBeforeNextSourcePanics(t *testing.T) {
	r := New([]Input{{Name: "a.cs", Reader: strings.NewReader("a")}}, nil)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic calling Advance before NextSource")
		}
	}()
	r.Advance()
}

func TestNextSourceMultipleBuffers(t *testing.T) {
	r := New([]Input{
		{Name: "a.cs", Reader: strings.NewReader("x")},
		{Name: "b.cs", Reader: strings.NewReader("y")},
	}, nil)

	var loaded []string
	r.SetOnSourceLoaded(func(name string) { loaded = append(loaded, name) })

	if !r.NextSource() {
		t.Fatal("expected first NextSource to succeed")
	}
	if r.CurrentSourceName() != "a.cs" {
		t.Errorf("CurrentSourceName = %q, want a.cs", r.CurrentSourceName())
	}
	if c := r.Advance(); c != 'x' {
		t.Fatalf("Advance = %q, want 'x'", c)
	}
	if c := r.Advance(); c != NUL {
		t.Fatalf("expected NUL at end of first buffer, got %q", c)
	}

	if !r.NextSource() {
		t.Fatal("expected second NextSource to succeed")
	}
	if r.CurrentSourceName() != "b.cs" {
		t.Errorf("CurrentSourceName = %q, want b.cs", r.CurrentSourceName())
	}
	if c := r.Advance(); c != 'y' {
		t.Fatalf("Advance = %q, want 'y'", c)
	}

	if r.NextSource() {
		t.Fatal("expected third NextSource to fail, no buffers left")
	}
	if len(loaded) != 2 || loaded[0] != "a.cs" || loaded[1] != "b.cs" {
		t.Errorf("onSourceLoaded calls = %v, want [a.cs b.cs]", loaded)
	}
}

func TestSkipWhitespace(t *testing.T) {
	r := newTestReader("a.cs", "  \t a\nb")
	r.Advance()
	c := r.SkipWhitespace(false)
	if c != 'a' {
		t.Errorf("SkipWhitespace(false) stopped at %q, want 'a'", c)
	}
}

func TestEnsureValidSource(t *testing.T) {
	r := New([]Input{{Name: "a.cs", Reader: strings.NewReader("x")}}, nil)
	if !r.EnsureValidSource() {
		t.Fatal("expected EnsureValidSource to load the first buffer")
	}
	if !r.EnsureValidSource() {
		t.Fatal("expected EnsureValidSource to be a no-op once loaded")
	}
}
