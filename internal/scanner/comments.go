package scanner

import (
	"strings"

	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/source"
	"github.com/gmofishsauce/csfront/internal/token"
)

// peekIsCommentStart reports whether the reader's current '/' begins a
// line or block comment (spec.md §4.4).
func (s *Scanner) peekIsCommentStart() bool {
	n := s.peekRune()
	return n == '/' || n == '*'
}

// scanCommentOrXmlDoc consumes a line comment ("//"), an XML doc comment
// ("///", which becomes an XmlCommentLine token carrying its text), or a
// block comment ("/* ... */"), reporting CodeUnterminatedComment and
// CodeMisplacedXmlComment where spec.md §4.4/§6 calls for them.
func (s *Scanner) scanCommentOrXmlDoc() (token.Token, bool) {
	start := s.reader.CurrentPosition()
	c := s.reader.Advance() // consume first '/'

	if c == '/' {
		isXmlDoc := s.peekRune() == '/'
		s.reader.Advance() // consume second '/'
		if isXmlDoc {
			s.reader.Advance() // consume third '/'
			if !s.sess.firstOnLine {
				s.report(diag.CodeMisplacedXmlComment, start)
			}
			var sb strings.Builder
			c = s.reader.CurrentChar()
			for c != '\n' && c != source.NUL {
				sb.WriteRune(c)
				c = s.reader.Advance()
			}
			end := s.reader.LastPosition()
			return s.emit(token.XmlCommentLine, start, end, token.StringValue(strings.TrimPrefix(sb.String(), " "))), true
		}
		c = s.reader.CurrentChar()
		for c != '\n' && c != source.NUL {
			c = s.reader.Advance()
		}
		return token.Token{}, false
	}

	// Block comment: c == '*'.
	s.reader.Advance() // consume '*'
	c = s.reader.CurrentChar()
	for {
		if c == source.NUL {
			s.report(diag.CodeUnterminatedComment, start)
			return token.Token{}, false
		}
		if c == '\n' {
			s.sess.firstOnLine = true
			c = s.reader.Advance()
			continue
		}
		if c == '*' && s.peekRune() == '/' {
			s.reader.Advance()
			s.reader.Advance()
			return token.Token{}, false
		}
		c = s.reader.Advance()
	}
}
