package scanner

import (
	"strings"

	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/token"
)

// scanIdentifierOrVerbatim recognizes identifiers, keywords, the three
// reserved-word literals (true, false, null), and '@'-prefixed verbatim
// identifiers (spec.md §4.4: "'@' forces identifier interpretation even
// over a spelling that matches a keyword").
func (s *Scanner) scanIdentifierOrVerbatim() token.Token {
	start := s.reader.CurrentPosition()
	c := s.reader.CurrentChar()

	if c == '@' {
		next := s.reader.Advance()
		switch {
		case next == '"':
			return s.scanVerbatimString(start)
		case isIdentifierStart(next) || next == '\\':
			text := s.accumulateIdentifierText()
			end := s.reader.LastPosition()
			return s.emit(token.Identifier, start, end, token.StringValue(text))
		default:
			s.report(diag.CodeMisplacedVerbatim, start)
			return s.emit(token.Invalid, start, start, token.NoneValue())
		}
	}

	text := s.accumulateIdentifierText()
	end := s.reader.LastPosition()

	switch text {
	case "true":
		return s.emit(token.Literal, start, end, token.BoolValue(true))
	case "false":
		return s.emit(token.Literal, start, end, token.BoolValue(false))
	case "null":
		return s.emit(token.Literal, start, end, token.NoneValue())
	}
	if kw, ok := token.LookupKeyword(text); ok {
		return s.emit(kw, start, end, token.NoneValue())
	}
	return s.emit(token.Identifier, start, end, token.StringValue(text))
}

// accumulateIdentifierText reads an identifier body starting at the
// reader's current character, resolving \u/\U Unicode escapes inline
// (spec.md §4.4), and leaves the reader positioned one past the last
// character consumed.
func (s *Scanner) accumulateIdentifierText() string {
	var sb strings.Builder
	c := s.reader.CurrentChar()
	first := true
	for {
		if c == '\\' && (s.peekRune() == 'u' || s.peekRune() == 'U') {
			r, ok := s.scanUnicodeEscape()
			if !ok {
				break
			}
			if first && !isIdentifierStart(r) {
				s.report(diag.CodeUnexpectedCharacter, s.reader.CurrentPosition(), string(r))
			} else if !first && !isIdentifierContinue(r) {
				s.report(diag.CodeUnexpectedCharacter, s.reader.CurrentPosition(), string(r))
			}
			sb.WriteRune(r)
			first = false
			c = s.reader.CurrentChar()
			continue
		}
		ok := first && isIdentifierStart(c) || !first && isIdentifierContinue(c)
		if !ok {
			break
		}
		sb.WriteRune(c)
		first = false
		c = s.reader.Advance()
	}
	return sb.String()
}

// peekRune returns the character one past the reader's current position
// without consuming anything, using a save/restore pair over the
// single-slot reader snapshot.
func (s *Scanner) peekRune() rune {
	s.reader.SaveState()
	defer s.reader.RestoreState()
	return s.reader.Advance()
}

// scanUnicodeEscape consumes a "\u" or "\U" escape (the reader's current
// character must be the backslash), reading 1-4 hex digits — this
// dialect's \u and \U both take 1-4 digits, not real C#'s fixed 4/8
// (spec.md §4.4) — and returns the decoded rune. On zero digits it
// reports CodeUnrecognizedEscape and returns ok=false.
func (s *Scanner) scanUnicodeEscape() (rune, bool) {
	startPos := s.reader.CurrentPosition()
	s.reader.Advance() // '\\' -> 'u'/'U'
	return s.scanHexEscape(startPos)
}
