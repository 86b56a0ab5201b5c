package token

import (
	"fmt"

	"github.com/gmofishsauce/csfront/internal/position"
)

// Line-override sentinels (spec.md §3): DEFAULT means no #line remap is
// active, HIDDEN means #line hidden has elided the line from debug
// info. Real #line targets are >= 1, so both sentinels are non-positive.
const (
	LineOverrideDefault = 0
	LineOverrideHidden  = -1
)

// Token is a single lexical unit (spec.md §3): its kind, the buffer it
// came from, its span, an optional typed value, and the #line remap
// state in effect when it was emitted.
type Token struct {
	Kind           Kind
	SourceName     string
	Start          position.Position
	End            position.Position
	Value          Value
	LineOverride   int
	SourceOverride string // "" means no override; see HasSourceOverride
	hasSrcOverride bool
}

// SetSourceOverride records an active #line "file" remap.
func (t *Token) SetSourceOverride(name string) {
	t.SourceOverride = name
	t.hasSrcOverride = true
}

// HasSourceOverride reports whether a #line "file" remap was active
// when this token was emitted.
func (t Token) HasSourceOverride() bool {
	return t.hasSrcOverride
}

func (t Token) String() string {
	if t.Value.Kind == VNone {
		return fmt.Sprintf("%s@%s(%s,%s)", t.Kind, t.SourceName, t.Start, t.End)
	}
	return fmt.Sprintf("%s(%s)@%s(%s,%s)", t.Kind, t.Value, t.SourceName, t.Start, t.End)
}

// Span returns the token's Start/End as a position.Span.
func (t Token) Span() position.Span {
	return position.Span{Start: t.Start, End: t.End}
}
