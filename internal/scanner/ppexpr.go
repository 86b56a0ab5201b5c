package scanner

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gmofishsauce/csfront/internal/options"
)

// The conditional-compilation expression grammar (spec.md §4.4), in
// ascending precedence: pp-or-expression (||), pp-and-expression (&&),
// pp-equality-expression (== !=), pp-unary-expression (!), and
// pp-primary-expression (true, false, identifier, "(" expr ")"). This is
// deliberately a much smaller grammar than the statement/expression
// language itself (spec.md §1 Non-goals): #if/#elif never see anything
// but boolean combinations of symbol-defined tests.

type ppLexer struct {
	runes []rune
	pos   int
}

func newPPLexer(s string) *ppLexer { return &ppLexer{runes: []rune(s)} }

func (l *ppLexer) peek() rune {
	if l.pos >= len(l.runes) {
		return 0
	}
	return l.runes[l.pos]
}

func (l *ppLexer) skipSpace() {
	for l.pos < len(l.runes) && (l.runes[l.pos] == ' ' || l.runes[l.pos] == '\t') {
		l.pos++
	}
}

type ppTokKind int

const (
	ppEOF ppTokKind = iota
	ppTrueLit
	ppFalseLit
	ppIdent
	ppBang
	ppAmpAmp
	ppPipePipe
	ppEqEq
	ppNotEq
	ppLParen
	ppRParen
)

type ppTok struct {
	kind ppTokKind
	text string
}

func (l *ppLexer) next() (ppTok, error) {
	l.skipSpace()
	if l.pos >= len(l.runes) {
		return ppTok{kind: ppEOF}, nil
	}
	c := l.runes[l.pos]
	switch c {
	case '(':
		l.pos++
		return ppTok{kind: ppLParen}, nil
	case ')':
		l.pos++
		return ppTok{kind: ppRParen}, nil
	case '!':
		l.pos++
		if l.peek() == '=' {
			l.pos++
			return ppTok{kind: ppNotEq}, nil
		}
		return ppTok{kind: ppBang}, nil
	case '&':
		l.pos++
		if l.peek() == '&' {
			l.pos++
			return ppTok{kind: ppAmpAmp}, nil
		}
		return ppTok{}, fmt.Errorf("'&' is not valid in a preprocessor expression")
	case '|':
		l.pos++
		if l.peek() == '|' {
			l.pos++
			return ppTok{kind: ppPipePipe}, nil
		}
		return ppTok{}, fmt.Errorf("'|' is not valid in a preprocessor expression")
	case '=':
		l.pos++
		if l.peek() == '=' {
			l.pos++
			return ppTok{kind: ppEqEq}, nil
		}
		return ppTok{}, fmt.Errorf("'=' is not valid in a preprocessor expression")
	}
	if c == '_' || unicode.IsLetter(c) {
		start := l.pos
		for l.pos < len(l.runes) && (l.runes[l.pos] == '_' || unicode.IsLetter(l.runes[l.pos]) || unicode.IsDigit(l.runes[l.pos])) {
			l.pos++
		}
		text := string(l.runes[start:l.pos])
		switch text {
		case "true":
			return ppTok{kind: ppTrueLit}, nil
		case "false":
			return ppTok{kind: ppFalseLit}, nil
		default:
			return ppTok{kind: ppIdent, text: text}, nil
		}
	}
	return ppTok{}, fmt.Errorf("unexpected character %q in preprocessor expression", c)
}

// ppParser is a recursive-descent parser/evaluator combined into one
// pass: since pp-expressions have no side effects, there is no value in
// building an AST just to walk it immediately afterward.
type ppParser struct {
	lex   *ppLexer
	tok   ppTok
	err   error
	scope *options.Scope
}

func (p *ppParser) advance() {
	if p.err != nil {
		return
	}
	p.tok, p.err = p.lex.next()
}

// evalPPExpr evaluates a #if/#elif condition against scope's defined-symbol
// table, left-to-right with || binding looser than && (spec.md §9's
// normative grammar; see DESIGN.md for this Open Question's resolution).
func evalPPExpr(text string, scope *options.Scope) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, fmt.Errorf("empty preprocessor expression")
	}
	p := &ppParser{lex: newPPLexer(text), scope: scope}
	p.advance()
	v := p.parseOr()
	if p.err != nil {
		return false, p.err
	}
	if p.tok.kind != ppEOF {
		return false, fmt.Errorf("trailing input in preprocessor expression")
	}
	return v, nil
}

func (p *ppParser) parseOr() bool {
	v := p.parseAnd()
	for p.err == nil && p.tok.kind == ppPipePipe {
		p.advance()
		rhs := p.parseAnd()
		v = v || rhs
	}
	return v
}

func (p *ppParser) parseAnd() bool {
	v := p.parseEquality()
	for p.err == nil && p.tok.kind == ppAmpAmp {
		p.advance()
		rhs := p.parseEquality()
		v = v && rhs
	}
	return v
}

func (p *ppParser) parseEquality() bool {
	v := p.parseUnary()
	for p.err == nil && (p.tok.kind == ppEqEq || p.tok.kind == ppNotEq) {
		wantEq := p.tok.kind == ppEqEq
		p.advance()
		rhs := p.parseUnary()
		if wantEq {
			v = v == rhs
		} else {
			v = v != rhs
		}
	}
	return v
}

func (p *ppParser) parseUnary() bool {
	if p.err != nil {
		return false
	}
	if p.tok.kind == ppBang {
		p.advance()
		return !p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *ppParser) parsePrimary() bool {
	if p.err != nil {
		return false
	}
	switch p.tok.kind {
	case ppTrueLit:
		p.advance()
		return true
	case ppFalseLit:
		p.advance()
		return false
	case ppIdent:
		name := p.tok.text
		p.advance()
		if p.scope == nil {
			return false
		}
		return p.scope.IsDefined(name)
	case ppLParen:
		p.advance()
		v := p.parseOr()
		if p.err != nil {
			return false
		}
		if p.tok.kind != ppRParen {
			p.err = fmt.Errorf("')' expected in preprocessor expression")
			return false
		}
		p.advance()
		return v
	default:
		p.err = fmt.Errorf("expression expected in preprocessor expression")
		return false
	}
}
