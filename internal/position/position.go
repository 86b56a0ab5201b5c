// Package position holds the cheap, copy-by-value location records shared
// by every other package in csfront: a single character position, a
// start/end span of characters, and a span tagged with the source buffer
// it came from.
package position

import "fmt"

// Position locates a single character within a source buffer. Both Line
// and Column are 1-based, matching the convention the diagnostic format
// in SPEC_FULL.md §6 expects ("<source>(<line>,<column>): ...").
type Position struct {
	Line   int
	Column int
}

// String renders "line,column", the form used inside diagnostic messages.
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Line, p.Column)
}

// Less reports whether p sorts strictly before o, ordering first by line
// then by column.
func (p Position) Less(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Column < o.Column
}

// Span is an inclusive range of positions: Start <= End for any span
// produced by the scanner or parser (see spec.md §8 invariants).
type Span struct {
	Start Position
	End   Position
}

// Valid reports whether the span satisfies the Start <= End invariant.
func (s Span) Valid() bool {
	return !s.End.Less(s.Start)
}

// FileSpan pairs a Span with the name of the source buffer it was taken
// from.
type FileSpan struct {
	SourceName string
	Span       Span
}

func (fs FileSpan) String() string {
	return fmt.Sprintf("%s(%s)", fs.SourceName, fs.Span.Start)
}
