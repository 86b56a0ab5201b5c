package scanner

import (
	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/token"
)

// peekAfterDot looks one character past a '.' the reader is sitting on,
// used by the top-level dispatch to tell "123.45" from "." / "..".
func (s *Scanner) peekAfterDot() rune {
	return s.peekRune()
}

// assignable is the set of base punctuation Kinds that have an "<op>="
// compound assignment form; scanPunctuation consults it after matching
// the base operator.
var assignable = map[token.Kind]bool{
	token.Plus: true, token.Minus: true, token.Star: true, token.Slash: true,
	token.Percent: true, token.Amp: true, token.Pipe: true, token.Caret: true,
	token.Shl: true, token.Shr: true,
}

// scanPunctuation recognizes single-character punctuation, the
// multi-character compound operators, and compound-assignment forms
// (spec.md §4.4). It is the fallback for anything not claimed by an
// identifier, literal, or comment.
func (s *Scanner) scanPunctuation() token.Token {
	start := s.reader.CurrentPosition()
	c := s.reader.CurrentChar()

	var base token.Kind
	switch c {
	case '~':
		s.reader.Advance()
		return s.emit(token.Tilde, start, start, token.NoneValue())
	case '(':
		s.reader.Advance()
		return s.emit(token.LParen, start, start, token.NoneValue())
	case ')':
		s.reader.Advance()
		return s.emit(token.RParen, start, start, token.NoneValue())
	case '{':
		s.reader.Advance()
		return s.emit(token.LBrace, start, start, token.NoneValue())
	case '}':
		s.reader.Advance()
		return s.emit(token.RBrace, start, start, token.NoneValue())
	case '[':
		s.reader.Advance()
		return s.emit(token.LBrack, start, start, token.NoneValue())
	case ']':
		s.reader.Advance()
		return s.emit(token.RBrack, start, start, token.NoneValue())
	case ';':
		s.reader.Advance()
		return s.emit(token.Semi, start, start, token.NoneValue())
	case ',':
		s.reader.Advance()
		return s.emit(token.Comma, start, start, token.NoneValue())
	case '.':
		s.reader.Advance()
		return s.emit(token.Period, start, start, token.NoneValue())
	case '?':
		n := s.reader.Advance()
		if n == '?' {
			s.reader.Advance()
			return s.emit(token.QuestionQuestion, start, s.reader.LastPosition(), token.NoneValue())
		}
		return s.emit(token.Question, start, start, token.NoneValue())
	case '!':
		n := s.reader.Advance()
		if n == '=' {
			s.reader.Advance()
			return s.emit(token.NotEq, start, s.reader.LastPosition(), token.NoneValue())
		}
		return s.emit(token.Bang, start, start, token.NoneValue())
	case '=':
		n := s.reader.Advance()
		if n == '=' {
			s.reader.Advance()
			return s.emit(token.EqEq, start, s.reader.LastPosition(), token.NoneValue())
		}
		return s.emit(token.OpAssign, start, start, token.NoneValue())
	case ':':
		n := s.reader.Advance()
		if n == ':' {
			s.reader.Advance()
			return s.emit(token.ColonColon, start, s.reader.LastPosition(), token.NoneValue())
		}
		return s.emit(token.Colon, start, start, token.NoneValue())
	case '&':
		n := s.reader.Advance()
		if n == '&' {
			s.reader.Advance()
			return s.emit(token.AmpAmp, start, s.reader.LastPosition(), token.NoneValue())
		}
		base = token.Amp
	case '|':
		n := s.reader.Advance()
		if n == '|' {
			s.reader.Advance()
			return s.emit(token.PipePipe, start, s.reader.LastPosition(), token.NoneValue())
		}
		base = token.Pipe
	case '^':
		s.reader.Advance()
		base = token.Caret
	case '%':
		s.reader.Advance()
		base = token.Percent
	case '*':
		s.reader.Advance()
		base = token.Star
	case '+':
		n := s.reader.Advance()
		if n == '+' {
			s.reader.Advance()
			return s.emit(token.PlusPlus, start, s.reader.LastPosition(), token.NoneValue())
		}
		base = token.Plus
	case '-':
		n := s.reader.Advance()
		if n == '-' {
			s.reader.Advance()
			return s.emit(token.MinusMinus, start, s.reader.LastPosition(), token.NoneValue())
		}
		if n == '>' {
			s.reader.Advance()
			return s.emit(token.Arrow, start, s.reader.LastPosition(), token.NoneValue())
		}
		base = token.Minus
	case '<':
		n := s.reader.Advance()
		if n == '<' {
			s.reader.Advance()
			base = token.Shl
			break
		}
		if n == '=' {
			s.reader.Advance()
			return s.emit(token.LessEq, start, s.reader.LastPosition(), token.NoneValue())
		}
		return s.emit(token.Less, start, start, token.NoneValue())
	case '>':
		n := s.reader.Advance()
		if n == '>' {
			s.reader.Advance()
			base = token.Shr
			break
		}
		if n == '=' {
			s.reader.Advance()
			return s.emit(token.GreaterEq, start, s.reader.LastPosition(), token.NoneValue())
		}
		return s.emit(token.Greater, start, start, token.NoneValue())
	case '/':
		n := s.reader.Advance()
		if n == '=' {
			base = token.Slash
			break
		}
		return s.emit(token.Slash, start, start, token.NoneValue())
	default:
		s.report(diag.CodeUnexpectedCharacter, start, string(c))
		s.reader.Advance()
		return s.emit(token.Invalid, start, start, token.NoneValue())
	}

	// Fell through with `base` set: either "<op>" alone, or "<op>=" if an
	// '=' follows (compound assignment, spec.md §3 "OpAssign.OpBase").
	if base == token.Shl || base == token.Shr {
		end := s.reader.LastPosition()
		if s.reader.CurrentChar() == '=' {
			s.reader.Advance()
			return s.emit(token.OpAssign, start, s.reader.LastPosition(), token.OpBaseValue(base))
		}
		return s.emit(base, start, end, token.NoneValue())
	}
	if s.reader.CurrentChar() == '=' && assignable[base] {
		s.reader.Advance()
		return s.emit(token.OpAssign, start, s.reader.LastPosition(), token.OpBaseValue(base))
	}
	return s.emit(base, start, s.reader.LastPosition(), token.NoneValue())
}
