package parser

import (
	"github.com/gmofishsauce/csfront/internal/ast"
	"github.com/gmofishsauce/csfront/internal/position"
	"github.com/gmofishsauce/csfront/internal/token"
)

// parseDottedNameString consumes IDENT ('.' IDENT)* and returns the
// joined dotted spelling, matching DottedName and the glossary's
// "Namespace names may be compound (dotted) as captured in
// Identifier.name."
func (p *Parser) parseDottedNameString() (string, bool) {
	tok, ok := p.expectIdentifier()
	if !ok {
		return "", false
	}
	name := tok.Value.Str
	for p.peek(0).Kind == token.Period && p.peek(1).Kind == token.Identifier {
		p.advance() // '.'
		seg := p.advance()
		name += "." + seg.Value.Str
	}
	return name, true
}

// splitShr splits a merged '>>' (Shr) token sitting at the front of the
// lookahead buffer into two separate Greater tokens, so a single
// closing ">>" can close two nested generic argument lists. The scanner
// greedily merges '>>' per spec.md §4.4's compound-operator rule; the
// generic-close ambiguity this creates for "List<List<int>>" is a
// parser-level concern, resolved here by splitting the token back apart
// rather than by leaving it unmerged in the scanner.
func (p *Parser) splitShr() {
	p.fill(0)
	t := p.buf[0]
	mid := position.Position{Line: t.Start.Line, Column: t.Start.Column + 1}
	first, second := t, t
	first.Kind, first.End = token.Greater, t.Start
	second.Kind, second.Start = token.Greater, mid
	p.buf[0] = first
	rest := append([]token.Token{second}, p.buf[1:]...)
	p.buf = append(p.buf[:1], rest...)
}

// skipTypeArgsOpt consumes a balanced '<' ... '>' generic argument list
// if present, parsing (and discarding) each Type — generics resolution
// is out of scope (spec.md §1 Non-goals) but the syntax must still be
// consumed so the token stream stays in sync. A merged Shr ('>>') is
// split into two Greater tokens (see splitShr) so it can close two
// nested levels, or close one and leave a Greater behind for whatever
// enclosing context follows.
func (p *Parser) skipTypeArgsOpt() {
	if p.peek(0).Kind != token.Less {
		return
	}
	p.advance()
	depth := 1
	for depth > 0 {
		k := p.peek(0).Kind
		if k == token.EOF || k == token.EOD {
			return
		}
		if k == token.Less {
			depth++
			p.advance()
			continue
		}
		if k == token.Shr {
			p.splitShr()
			continue
		}
		if k == token.Greater {
			depth--
			p.advance()
			continue
		}
		p.advance()
	}
}

// parseBaseTypeRef parses the non-qualified head of a Type: either a
// primitive type keyword or a TypeName.
func (p *Parser) parseBaseTypeRef() *ast.TypeRef {
	tok := p.peek(0)
	if tok.Kind.IsTypeKeyword() {
		p.advance()
		if prim, ok := ast.LookupPrimitive(tok.Kind.String()); ok {
			return ast.NewPrimitiveType(prim)
		}
	}
	return p.parseTypeName()
}

// parseTypeName implements TypeName = (IDENT '::')? DottedName
// TypeArgsOpt ('.' IDENT TypeArgsOpt)*.
func (p *Parser) parseTypeName() *ast.TypeRef {
	start := p.peek(0).Start

	if p.peek(0).Kind == token.Identifier && p.peek(1).Kind == token.ColonColon {
		p.advance() // extern-alias qualifier; alias resolution is out of scope
		p.advance() // '::'
	}

	tok, ok := p.expectIdentifier()
	if !ok {
		// expectIdentifier already reported the diagnostic; return a
		// placeholder so callers can keep building a tree.
		return &ast.TypeRef{Data: &ast.UnresolvedType{Name: &ast.Node{SourceName: p.sourceName, Start: start, End: start, Data: &ast.Identifier{Name: ""}}}}
	}
	nameNode := &ast.Node{SourceName: p.sourceName, Start: start, End: tok.End, Data: &ast.Identifier{Name: tok.Value.Str}}
	var ref *ast.TypeRef = &ast.TypeRef{Data: &ast.UnresolvedType{Name: nameNode}}
	p.skipTypeArgsOpt()

	for p.peek(0).Kind == token.Period && p.peek(1).Kind == token.Identifier {
		p.advance() // '.'
		segTok := p.advance()
		segNode := &ast.Node{SourceName: p.sourceName, Start: segTok.Start, End: segTok.End, Data: &ast.Identifier{Name: segTok.Value.Str}}
		ref = &ast.TypeRef{Data: &ast.UnresolvedNestedType{Outer: ref, Name: segNode}}
		p.skipTypeArgsOpt()
	}
	return ref
}

// parseType implements Type = TypeName '?'? '*'* ('[' ','* ']')?.
func (p *Parser) parseType() *ast.TypeRef {
	t := p.parseBaseTypeRef()

	if p.peek(0).Kind == token.Question {
		p.advance()
		t = ast.NewNullableType(t)
	}
	for p.peek(0).Kind == token.Star {
		p.advance()
		t = ast.NewPointerType(t)
	}
	if p.peek(0).Kind == token.LBrack {
		p.advance()
		rank := 1
		for p.peek(0).Kind == token.Comma {
			p.advance()
			rank++
		}
		p.expectChar(token.RBrack, "]")
		t = ast.NewArrayType(t, rank)
	}
	return t
}
