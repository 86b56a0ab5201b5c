package scanner

import (
	"strconv"
	"strings"

	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/position"
	"github.com/gmofishsauce/csfront/internal/source"
	"github.com/gmofishsauce/csfront/internal/token"
)

// ppFrame is one open #if/#elif/#else/#endif construct (spec.md §3:
// "pp-nesting: stack<{True,False,Else}>"). anyTaken records whether some
// branch in the construct has already been selected, so that a later
// #elif whose own condition is true is still skipped once a prior branch
// matched (spec.md §4.4, mirroring the source language's own rule).
type ppFrame struct {
	anyTaken bool
	sawElse  bool
}

// scanDirective consumes a '#'-introduced preprocessor line (the '#' is
// the reader's current character). It returns a Token only in the one
// case that produces one in this design (there is none today — every
// directive either mutates state or reports a diagnostic) so the second
// return is always false; it exists to keep the call site in scanner.go
// symmetric with the other scan* methods.
func (s *Scanner) scanDirective() (token.Token, bool) {
	start := s.reader.CurrentPosition()
	s.reader.Advance() // consume '#'
	s.sess.firstOnLine = false

	word := s.readDirectiveWord()
	switch word {
	case "define":
		s.ppDefine(start)
	case "undef":
		s.ppUndef(start)
	case "if":
		s.ppIf(start)
	case "elif":
		s.ppElif(start)
	case "else":
		s.ppElse(start)
	case "endif":
		s.ppEndif(start)
	case "region":
		s.sess.regionDepth++
		s.consumeRestOfLine()
	case "endregion":
		if s.sess.regionDepth == 0 {
			s.report(diag.CodeEndRegionExpected, start)
		} else {
			s.sess.regionDepth--
		}
		s.consumeRestOfLine()
	case "pragma":
		s.ppPragma(start)
	case "line":
		s.ppLine(start)
	case "warning":
		msg := s.consumeRestOfLine()
		s.report(diag.CodeUserWarning, start, msg)
	case "error":
		msg := s.consumeRestOfLine()
		s.report(diag.CodeUserError, start, msg)
	case "":
		s.report(diag.CodePPDirectiveExpected, start)
		s.consumeRestOfLine()
	default:
		s.report(diag.CodePPDirectiveExpected, start)
		s.consumeRestOfLine()
	}
	return token.Token{}, false
}

// readDirectiveWord skips intra-line whitespace and reads the bareword
// naming the directive (define, if, pragma, ...).
func (s *Scanner) readDirectiveWord() string {
	c := s.reader.SkipWhitespace(false)
	var sb strings.Builder
	for c >= 'a' && c <= 'z' {
		sb.WriteRune(c)
		c = s.reader.Advance()
	}
	return sb.String()
}

// readDirectiveIdentifier reads a plain ASCII-ish identifier used as a
// preprocessor symbol name (spec.md §4.4's conditional-symbol grammar is
// deliberately simpler than the full identifier grammar: no verbatim
// '@' form, no Unicode escapes).
func (s *Scanner) readDirectiveIdentifier() string {
	c := s.reader.SkipWhitespace(false)
	var sb strings.Builder
	for isIdentifierContinue(c) {
		sb.WriteRune(c)
		c = s.reader.Advance()
	}
	return sb.String()
}

// consumeRestOfLine discards (and returns, trimmed) everything up to but
// not including the terminating newline or end of buffer.
func (s *Scanner) consumeRestOfLine() string {
	c := s.reader.CurrentChar()
	var sb strings.Builder
	for c != '\n' && c != source.NUL {
		sb.WriteRune(c)
		c = s.reader.Advance()
	}
	return strings.TrimSpace(sb.String())
}

func (s *Scanner) ppDefine(start position.Position) {
	if s.sess.sawNonPP {
		s.report(diag.CodePPTooLate, start)
		s.consumeRestOfLine()
		return
	}
	name := s.readDirectiveIdentifier()
	s.consumeRestOfLine()
	if name == "" {
		s.report(diag.CodeExpectedIdentifier, start)
		return
	}
	s.curScope().Define(name)
}

func (s *Scanner) ppUndef(start position.Position) {
	if s.sess.sawNonPP {
		s.report(diag.CodePPTooLate, start)
		s.consumeRestOfLine()
		return
	}
	name := s.readDirectiveIdentifier()
	s.consumeRestOfLine()
	if name == "" {
		s.report(diag.CodeExpectedIdentifier, start)
		return
	}
	s.curScope().Undefine(name)
}

func (s *Scanner) ppIf(start position.Position) {
	exprText := s.consumeRestOfLine()
	cond, err := evalPPExpr(exprText, s.curScope())
	if err != nil {
		s.report(diag.CodeInvalidPPExpression, start)
		cond = false
	}
	frame := &ppFrame{anyTaken: cond}
	s.sess.ppNesting = append(s.sess.ppNesting, frame)
	if !cond {
		s.resolveInactiveBranch(frame)
	}
}

func (s *Scanner) ppElif(start position.Position) {
	exprText := s.consumeRestOfLine()
	frame := s.topFrame()
	if frame == nil {
		s.report(diag.CodeUnexpectedPPDirective, start)
		return
	}
	if frame.sawElse {
		s.report(diag.CodeUnexpectedPPDirective, start)
	}
	_ = exprText // the active branch just ended; its own condition is moot
	frame.anyTaken = true
	s.skipToMatchingEndif(frame)
}

func (s *Scanner) ppElse(start position.Position) {
	s.consumeRestOfLine()
	frame := s.topFrame()
	if frame == nil {
		s.report(diag.CodeUnexpectedPPDirective, start)
		return
	}
	if frame.sawElse {
		s.report(diag.CodeUnexpectedPPDirective, start)
	}
	frame.sawElse = true
	frame.anyTaken = true
	s.skipToMatchingEndif(frame)
}

func (s *Scanner) ppEndif(start position.Position) {
	s.consumeRestOfLine()
	if len(s.sess.ppNesting) == 0 {
		s.report(diag.CodeUnexpectedPPDirective, start)
		return
	}
	s.sess.ppNesting = s.sess.ppNesting[:len(s.sess.ppNesting)-1]
}

func (s *Scanner) topFrame() *ppFrame {
	n := len(s.sess.ppNesting)
	if n == 0 {
		return nil
	}
	return s.sess.ppNesting[n-1]
}

// resolveInactiveBranch is entered immediately after a false #if
// condition. It raw-scans forward, skipping everything not itself a
// directive line, tracking nested #if/#endif depth, until it finds the
// #elif/#else that starts the construct's active branch (at which point
// it returns with scanning resumed normally) or the #endif that closes
// the whole construct with no branch ever taken (spec.md §4.4 "PPSkip").
func (s *Scanner) resolveInactiveBranch(frame *ppFrame) {
	depth := 0
	for {
		word, text, start, found := s.rawScanToNextDirectiveLine()
		if !found {
			s.report(diag.CodePPEndIfExpected, start)
			return
		}
		switch word {
		case "if":
			depth++
		case "endif":
			if depth == 0 {
				s.popFrameIfTop(frame)
				return
			}
			depth--
		case "elif":
			if depth == 0 {
				if frame.anyTaken {
					continue
				}
				cond, err := evalPPExpr(text, s.curScope())
				if err != nil {
					s.report(diag.CodeInvalidPPExpression, start)
					continue
				}
				if cond {
					frame.anyTaken = true
					return
				}
			}
		case "else":
			if depth == 0 {
				if frame.sawElse {
					s.report(diag.CodeUnexpectedPPDirective, start)
				}
				frame.sawElse = true
				if !frame.anyTaken {
					frame.anyTaken = true
					return
				}
			}
		case "region":
			// unmatched while skipped; region/endregion balance across
			// a disabled block is not enforced (spec.md §4.4 Non-goals).
		case "endregion":
		default:
			// define/undef/pragma/line/warning/error lines inside a
			// disabled region are inert (spec.md §4.4).
		}
	}
}

// skipToMatchingEndif is resolveInactiveBranch's simpler sibling: once a
// branch has already been taken (anyTaken), every later #elif/#else in
// the construct is skipped unconditionally; only #endif matters.
func (s *Scanner) skipToMatchingEndif(frame *ppFrame) {
	depth := 0
	for {
		word, _, start, found := s.rawScanToNextDirectiveLine()
		if !found {
			s.report(diag.CodePPEndIfExpected, start)
			return
		}
		switch word {
		case "if":
			depth++
		case "endif":
			if depth == 0 {
				s.popFrameIfTop(frame)
				return
			}
			depth--
		}
	}
}

func (s *Scanner) popFrameIfTop(frame *ppFrame) {
	n := len(s.sess.ppNesting)
	if n > 0 && s.sess.ppNesting[n-1] == frame {
		s.sess.ppNesting = s.sess.ppNesting[:n-1]
	}
}

// rawScanToNextDirectiveLine advances the reader character-by-character
// (never tokenizing) until it finds a line whose first non-blank
// character is '#', returning the directive's bareword and the raw text
// of the rest of that line. found is false at end of buffer.
func (s *Scanner) rawScanToNextDirectiveLine() (word, rest string, pos position.Position, found bool) {
	c := s.reader.CurrentChar()
	atLineStart := true
	for {
		if c == source.NUL {
			return "", "", s.reader.CurrentPosition(), false
		}
		if atLineStart {
			for c == ' ' || c == '\t' {
				c = s.reader.Advance()
			}
			if c == '#' {
				pos = s.reader.CurrentPosition()
				s.reader.Advance()
				word = s.readDirectiveWord()
				rest = s.consumeRestOfLine()
				return word, rest, pos, true
			}
			atLineStart = false
		}
		if c == '\n' {
			atLineStart = true
			c = s.reader.Advance()
			continue
		}
		c = s.reader.Advance()
	}
}

// ppPragma handles "#pragma warning disable [codes]" and
// "#pragma warning restore [codes]" (spec.md §4.4, §6). An empty code
// list means "all warnings".
func (s *Scanner) ppPragma(start position.Position) {
	kind := s.readDirectiveWord()
	if kind != "warning" {
		s.report(diag.CodeUnrecognizedPragma, start)
		s.consumeRestOfLine()
		return
	}
	action := s.readDirectiveWord()
	rest := s.consumeRestOfLine()
	scope := s.curScope()

	codes := strings.FieldsFunc(rest, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	switch action {
	case "disable":
		if len(codes) == 0 {
			scope.DisableAllWarnings()
			return
		}
		for _, c := range codes {
			if code, ok := parseWarningCode(c); ok {
				scope.DisableWarning(code)
			} else {
				s.report(diag.CodeInvalidWarningCode, start, c)
			}
		}
	case "restore":
		if len(codes) == 0 {
			scope.RestoreAllWarnings()
			return
		}
		for _, c := range codes {
			if code, ok := parseWarningCode(c); ok {
				scope.RestoreWarning(code)
			} else {
				s.report(diag.CodeInvalidWarningCode, start, c)
			}
		}
	default:
		s.report(diag.CodeInvalidWarningPragma, start)
	}
}

func parseWarningCode(s string) (int, bool) {
	s = strings.TrimPrefix(s, "CS")
	s = strings.TrimPrefix(s, "cs")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if !diag.Catalog.IsValidWarning(n) {
		return n, false
	}
	return n, true
}

// ppLine handles "#line <number> ["file"]", "#line default", and
// "#line hidden" (spec.md §4.4, §3 LineOverrideDefault/Hidden).
func (s *Scanner) ppLine(start position.Position) {
	c := s.reader.SkipWhitespace(false)
	switch {
	case c == 'd':
		word := s.readDirectiveWord()
		if word != "default" {
			s.report(diag.CodeInvalidLineDirective, start)
		}
		s.sess.lineOverride = token.LineOverrideDefault
		s.sess.hasSrcOverride = false
		s.consumeRestOfLine()
	case c == 'h':
		word := s.readDirectiveWord()
		if word != "hidden" {
			s.report(diag.CodeInvalidLineDirective, start)
		}
		s.sess.lineOverride = token.LineOverrideHidden
		s.consumeRestOfLine()
	case isDigit(c):
		var sb strings.Builder
		for isDigit(c) {
			sb.WriteRune(c)
			c = s.reader.Advance()
		}
		n, err := strconv.Atoi(sb.String())
		if err != nil || n < 1 {
			s.report(diag.CodeInvalidLineDirective, start)
			s.consumeRestOfLine()
			return
		}
		s.sess.lineOverride = n
		c = s.reader.SkipWhitespace(false)
		if c == '"' {
			s.reader.Advance()
			var fn strings.Builder
			c = s.reader.CurrentChar()
			for c != '"' && c != '\n' && c != source.NUL {
				fn.WriteRune(c)
				c = s.reader.Advance()
			}
			if c == '"' {
				s.reader.Advance()
			}
			s.sess.sourceOverride = fn.String()
			s.sess.hasSrcOverride = true
		}
		s.consumeRestOfLine()
	default:
		s.report(diag.CodeInvalidLineDirective, start)
		s.consumeRestOfLine()
	}
}
