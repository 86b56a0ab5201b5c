// Package source implements the Source Reader of spec.md §4.1: uniform
// positional, newline-normalized input over a sequence of named text
// buffers.
package source

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/gmofishsauce/csfront/internal/invariant"
	"github.com/gmofishsauce/csfront/internal/position"
)

// NUL is the sentinel character Advance returns at end-of-buffer. A
// literal NUL byte embedded in source text is rewritten to a space so
// this sentinel value is reserved (spec.md §4.1, §6).
const NUL rune = 0

// Loader opens a named source by name, for the "names alone" input mode
// of spec.md §6 ("Names must be non-null... When only names are given,
// the loader defaults to opening a file of that name").
type Loader interface {
	Open(name string) (io.Reader, error)
}

// Input is one element of the sequence of (name, reader) pairs
// spec.md §6 describes. Reader may be nil, in which case the Reader's
// Loader is asked to open Name.
type Input struct {
	Name   string
	Reader io.Reader
}

// OnSourceLoaded is invoked by NextSource after a buffer is loaded and
// before the first Advance against it, per spec.md §4.1. The scanner
// uses this hook to push a fresh options.Scope for the new file.
type OnSourceLoaded func(name string)

type bufferState struct {
	name string
	data string
	idx  int // byte offset into data
}

// snapshot is the single save/restore slot described in spec.md §3 and
// §9 ("a deliberate constraint... assert no overlapping saves rather
// than generalize to a stack").
type snapshot struct {
	currentChar     rune
	currentPosition position.Position
	lastPosition    position.Position
	dataIndex       int
	atEndOfLine     bool
	line, col       int
}

// Reader streams characters across a sequence of named buffers with
// accurate line/column tracking and newline normalization (spec.md
// §4.1).
type Reader struct {
	inputs []Input
	loader Loader
	onLoad OnSourceLoaded

	nextInput int
	cur       *bufferState

	currentChar     rune
	currentPosition position.Position
	lastPosition    position.Position
	line, col       int
	atEndOfLine     bool

	started bool // true once at least one buffer has been loaded
	saved   *snapshot
}

// New returns a Reader over inputs, using loader to resolve any Input
// whose Reader field is nil.
func New(inputs []Input, loader Loader) *Reader {
	return &Reader{
		inputs: inputs,
		loader: loader,
		line:   1,
		col:    1,
	}
}

// SetOnSourceLoaded registers the hook invoked after a new buffer loads.
func (r *Reader) SetOnSourceLoaded(fn OnSourceLoaded) {
	r.onLoad = fn
}

// CurrentSourceName returns the name of the buffer currently being read,
// or "" if none is loaded.
func (r *Reader) CurrentSourceName() string {
	if r.cur == nil {
		return ""
	}
	return r.cur.name
}

// EnsureValidSource reports true if a buffer is loaded; otherwise it
// attempts to load the next one (spec.md §4.1).
func (r *Reader) EnsureValidSource() bool {
	if r.cur != nil {
		return true
	}
	return r.NextSource()
}

// NextSource moves to the next buffer, invoking OnSourceLoaded after
// loading and before the first Advance. Returns false once all buffers
// are consumed.
func (r *Reader) NextSource() bool {
	if r.nextInput >= len(r.inputs) {
		r.cur = nil
		return false
	}
	in := r.inputs[r.nextInput]
	r.nextInput++

	rd := in.Reader
	if rd == nil {
		if r.loader == nil {
			invariant.Raise("source: no reader or loader available for %q", in.Name)
		}
		opened, err := r.loader.Open(in.Name)
		if err != nil {
			invariant.Raise("source: opening %q: %s", in.Name, err)
		}
		rd = opened
	}

	data, err := readAll(rd)
	if err != nil {
		invariant.Raise("source: reading %q: %s", in.Name, err)
	}

	r.cur = &bufferState{name: in.Name, data: data}
	r.line = 1
	r.col = 1
	r.atEndOfLine = false
	r.currentChar = NUL
	r.currentPosition = position.Position{Line: 1, Column: 1}
	r.lastPosition = r.currentPosition
	r.started = true

	if r.onLoad != nil {
		r.onLoad(in.Name)
	}
	return true
}

func readAll(rd io.Reader) (string, error) {
	br := bufio.NewReader(rd)
	var sb []byte
	buf := make([]byte, 4096)
	for {
		n, err := br.Read(buf)
		if n > 0 {
			sb = append(sb, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return string(sb), nil
}

// Advance returns the next character, or NUL when the current buffer is
// exhausted. \r, \n, and \r\n are all folded to a single \n; an embedded
// literal NUL is rewritten to a space. The newline-terminated line's
// number is reported for the newline itself; the following Advance
// moves to column 1 of the next line (spec.md §4.1).
func (r *Reader) Advance() rune {
	if !r.started {
		invariant.Raise("source: Advance called before NextSource")
	}
	if r.cur == nil {
		return NUL
	}

	if r.atEndOfLine {
		r.line++
		r.col = 1
		r.atEndOfLine = false
	}

	r.lastPosition = r.currentPosition

	if r.cur.idx >= len(r.cur.data) {
		r.currentChar = NUL
		r.currentPosition = position.Position{Line: r.line, Column: r.col}
		return NUL
	}

	ch, size := utf8.DecodeRuneInString(r.cur.data[r.cur.idx:])
	r.cur.idx += size

	switch ch {
	case '\r':
		if r.cur.idx < len(r.cur.data) {
			next, nsize := utf8.DecodeRuneInString(r.cur.data[r.cur.idx:])
			if next == '\n' {
				r.cur.idx += nsize
			}
		}
		ch = '\n'
	case NUL:
		ch = ' '
	}

	r.currentPosition = position.Position{Line: r.line, Column: r.col}
	r.currentChar = ch
	if ch == '\n' {
		r.atEndOfLine = true
	} else {
		r.col++
	}
	return ch
}

// CurrentChar returns the character last returned by Advance.
func (r *Reader) CurrentChar() rune {
	return r.currentChar
}

// CurrentPosition returns the position of the character last returned
// by Advance.
func (r *Reader) CurrentPosition() position.Position {
	return r.currentPosition
}

// LastPosition returns the position of the character returned by the
// Advance call before the most recent one.
func (r *Reader) LastPosition() position.Position {
	return r.lastPosition
}

// SkipWhitespace consumes space/tab/newline characters, stopping at a
// newline when skipNewlines is false, and returns the first
// non-whitespace character encountered (or NUL at end of buffer).
func (r *Reader) SkipWhitespace(skipNewlines bool) rune {
	for {
		c := r.CurrentChar()
		if c == ' ' || c == '\t' {
			c = r.Advance()
			continue
		}
		if c == '\n' && skipNewlines {
			c = r.Advance()
			continue
		}
		return c
	}
}

// SaveState snapshots the reader's position within the current buffer
// into the single save slot. Saving again before RestoreState is called
// is an invariant violation: the slot does not nest (spec.md §3, §9).
func (r *Reader) SaveState() {
	if r.saved != nil {
		invariant.Raise("source: overlapping SaveState (single-slot, not a stack)")
	}
	r.saved = &snapshot{
		currentChar:     r.currentChar,
		currentPosition: r.currentPosition,
		lastPosition:    r.lastPosition,
		dataIndex:       r.cur.idx,
		atEndOfLine:     r.atEndOfLine,
		line:            r.line,
		col:             r.col,
	}
}

// RestoreState rolls back to the last SaveState snapshot. Restoring
// without a pending save is an invariant violation. Restoring across a
// buffer boundary (a NextSource call between Save and Restore) is
// undefined per spec.md §4.1 and is not guarded against here.
func (r *Reader) RestoreState() {
	if r.saved == nil {
		invariant.Raise("source: RestoreState with no pending SaveState")
	}
	s := r.saved
	r.currentChar = s.currentChar
	r.currentPosition = s.currentPosition
	r.lastPosition = s.lastPosition
	r.cur.idx = s.dataIndex
	r.atEndOfLine = s.atEndOfLine
	r.line = s.line
	r.col = s.col
	r.saved = nil
}
