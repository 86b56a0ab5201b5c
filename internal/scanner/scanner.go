// Package scanner implements the Scanner with embedded Preprocessor of
// spec.md §4.4: it builds on internal/source to emit internal/token
// tokens, evaluating #if/#elif, skipping inactive conditional blocks,
// tracking #region nesting, honoring #pragma warning gates against the
// current internal/options.Scope, and applying #line remaps.
//
// The character-class dispatch and state-machine shape here follow the
// teacher's asm/lexer.go (isWhiteSpaceChar, isDigitChar, ... and the
// explicit accumulator-based token loop); see DESIGN.md.
package scanner

import (
	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/invariant"
	"github.com/gmofishsauce/csfront/internal/options"
	"github.com/gmofishsauce/csfront/internal/position"
	"github.com/gmofishsauce/csfront/internal/source"
	"github.com/gmofishsauce/csfront/internal/token"
)

// session holds the per-buffer state that is reset on each NextSource
// (spec.md §3 "Scanner session state").
type session struct {
	ppNesting      []*ppFrame
	regionDepth    int
	firstOnLine    bool
	sawNonPP       bool
	lineOverride   int
	sourceOverride string
	hasSrcOverride bool
}

// Scanner produces tokens from a source.Reader, maintaining the
// embedded preprocessor state machine and appending diagnostics to a
// shared diag.OutputMessageCollection gated by an options.Stack.
type Scanner struct {
	reader   *source.Reader
	optStack *options.Stack
	sink     *diag.OutputMessageCollection

	sess session

	pushedBack []token.Token

	debug bool
}

// New returns a Scanner reading from r, gating diagnostics against
// optStack, and appending to sink. It registers itself on r so that
// every new buffer pushes a fresh options.Scope and resets session
// state (spec.md §4.1, §4.3: "push on source load"), then reads the
// buffer's first character so scanning starts on it.
func New(r *source.Reader, optStack *options.Stack, sink *diag.OutputMessageCollection) *Scanner {
	s := &Scanner{reader: r, optStack: optStack, sink: sink}
	r.SetOnSourceLoaded(func(name string) {
		optStack.Push(optStack.Top())
		s.sess = session{firstOnLine: true}
		r.Advance()
	})
	return s
}

// SetDebug records the debug flag, mirroring the teacher's lexer_debug
// package variable (asm/lexer.go). No scanner code reads the flag, so
// it produces no tracing output.
func (s *Scanner) SetDebug(v bool) { s.debug = v }

// PushBack re-queues tok to be returned by the next NextToken call.
// Multiple pushed-back tokens are re-emitted FIFO, in the order they
// were pushed back (spec.md §5: "implemented as a FIFO over an ordered
// queue").
func (s *Scanner) PushBack(t token.Token) {
	s.pushedBack = append(s.pushedBack, t)
}

// NextToken returns the next pushed-back token if any, else reads one
// from the input. The second return value is false only once EOD has
// already been returned (there is nothing more to read, ever).
func (s *Scanner) NextToken() (token.Token, bool) {
	if len(s.pushedBack) > 0 {
		t := s.pushedBack[0]
		s.pushedBack = s.pushedBack[1:]
		return t, true
	}
	t := s.readToken()
	return t, t.Kind != token.EOD
}

func (s *Scanner) curScope() *options.Scope {
	return s.optStack.Top()
}

// emit builds a Token spanning [start, end] at the reader's current
// source name, stamping the active #line remap. Emitting a token clears
// firstOnLine until the next newline is crossed.
func (s *Scanner) emit(kind token.Kind, start, end position.Position, val token.Value) token.Token {
	s.sess.firstOnLine = false
	t := token.Token{
		Kind:         kind,
		SourceName:   s.reader.CurrentSourceName(),
		Start:        start,
		End:          end,
		Value:        val,
		LineOverride: s.sess.lineOverride,
	}
	if s.sess.hasSrcOverride {
		t.SetSourceOverride(s.sess.sourceOverride)
	}
	return t
}

// report appends a diagnostic to the sink at pos, gated by the current
// option scope's ShouldShow/EffectiveSeverity.
func (s *Scanner) report(code int, pos position.Position, args ...interface{}) {
	d, ok := diag.Catalog.Lookup(code)
	if !ok {
		invariant.Raise("scanner: unknown diagnostic code %d", code)
	}
	scope := s.curScope()
	if scope != nil && !scope.ShouldShow(d) {
		return
	}
	sev := d.Severity
	if scope != nil {
		sev = scope.EffectiveSeverity(d)
	}
	s.sink.Add(diag.OutputMessage{
		Severity:   sev,
		SourceName: s.reader.CurrentSourceName(),
		Position:   pos,
		Code:       code,
		Message:    d.Format(args...),
	})
}

// readToken implements the recognition dispatch of spec.md §4.4: skip
// whitespace (tracking first-on-line), then branch on the first
// non-whitespace character.
func (s *Scanner) readToken() token.Token {
	if !s.reader.EnsureValidSource() {
		pos := s.reader.CurrentPosition()
		return s.emit(token.EOD, pos, pos, token.NoneValue())
	}
	for {
		c := s.skipWhitespaceTrackingLines()

		switch {
		case c == source.NUL:
			return s.atEndOfBuffer()
		case c == '#':
			if !s.sess.firstOnLine {
				start := s.reader.CurrentPosition()
				s.report(diag.CodePPNotFirstToken, start)
				s.reader.Advance()
				s.sess.sawNonPP = true
				continue
			}
			if tok, ok := s.scanDirective(); ok {
				return tok
			}
			continue // directive consumed, no token produced; read another
		case isIdentifierStart(c) || c == '@' || (c == '\\' && (s.peekRune() == 'u' || s.peekRune() == 'U')):
			s.sess.sawNonPP = true
			return s.scanIdentifierOrVerbatim()
		case c == '"':
			s.sess.sawNonPP = true
			return s.scanString()
		case c == '\'':
			s.sess.sawNonPP = true
			return s.scanChar()
		case c == '.' && !isDigit(s.peekAfterDot()):
			s.sess.sawNonPP = true
			return s.scanPunctuation()
		case isDigit(c) || c == '.':
			s.sess.sawNonPP = true
			return s.scanNumber()
		case c == '/' && s.peekIsCommentStart():
			if xc, ok := s.scanCommentOrXmlDoc(); ok {
				return xc
			}
			continue
		default:
			s.sess.sawNonPP = true
			return s.scanPunctuation()
		}
	}
}

// atEndOfBuffer is reached when the reader returns source.NUL. It
// reports any #if/#region left open at end of file, pops this buffer's
// option scope, moves the reader to the next buffer, and returns EOF, the
// per-buffer sentinel, carrying the finished buffer's name. Every buffer,
// the last included, ends with EOF; once every buffer is exhausted the
// next read returns EOD (spec.md §3, §4.1: "EOF ends one buffer; EOD
// ends the whole session").
func (s *Scanner) atEndOfBuffer() token.Token {
	pos := s.reader.CurrentPosition()
	if len(s.sess.ppNesting) > 0 {
		s.report(diag.CodePPEndIfExpected, pos)
		s.sess.ppNesting = nil
	}
	if s.sess.regionDepth > 0 {
		s.report(diag.CodeEndRegionExpected, pos)
		s.sess.regionDepth = 0
	}

	s.optStack.Pop()

	eof := s.emit(token.EOF, pos, pos, token.NoneValue())
	s.reader.NextSource()
	return eof
}

// skipWhitespaceTrackingLines consumes whitespace, setting firstOnLine
// whenever a newline is crossed, and returns the first non-whitespace
// character (or NUL at end of buffer).
func (s *Scanner) skipWhitespaceTrackingLines() rune {
	c := s.reader.CurrentChar()
	for {
		switch c {
		case ' ', '\t':
			c = s.reader.Advance()
		case '\n':
			s.sess.firstOnLine = true
			c = s.reader.Advance()
		default:
			return c
		}
	}
}
