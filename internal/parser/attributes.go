package parser

import (
	"github.com/gmofishsauce/csfront/internal/ast"
	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/token"
)

// validAttributeTargets is the full set spec.md §4.5 names: "assembly
// event field method param property return type typevar".
var validAttributeTargets = map[string]bool{
	"assembly": true, "event": true, "field": true, "method": true,
	"param": true, "property": true, "return": true, "type": true, "typevar": true,
}

// namespaceAttributeTargets is the set valid immediately inside a
// Namespace body (only the global "assembly" target; anything else
// there belongs to a following TypeDecl instead).
var namespaceAttributeTargets = map[string]bool{"assembly": true}

// memberAttributeTargets and typeAttributeTargets narrow the valid set
// by declaration context, per spec.md §4.5: "A section attached where
// the target is invalid → same warning, node removed from list."
var memberAttributeTargets = map[string]bool{
	"field": true, "method": true, "param": true, "property": true,
	"return": true, "event": true, "typevar": true,
}

var typeAttributeTargets = map[string]bool{"type": true, "typevar": true}

// parseAttributes implements Attributes = ('[' (AttrTarget ':')?
// Attribute (',' Attribute)* ']')* for a context whose valid target set
// is allowed. The global-vs-local disambiguation in parseNamespaceBody
// calls the lower-level parseAttributeSectionsWithTarget directly since
// it needs to know whether an "assembly" target was actually seen.
func (p *Parser) parseAttributes(allowed map[string]bool) *ast.List {
	list, _ := p.parseAttributeSectionsWithTarget(allowed)
	return list
}

// parseAttributeSectionsWithTarget parses every contiguous
// '[' ... ']' section and additionally reports back the target word of
// the last section seen with an explicit target (used by
// parseNamespaceBody to decide global- vs type-attribute placement).
func (p *Parser) parseAttributeSectionsWithTarget(allowed map[string]bool) (*ast.List, string) {
	list := ast.NewList()
	lastTarget := ""
	for p.peek(0).Kind == token.LBrack {
		p.advance() // '['
		target := ""
		if p.targetFollows() {
			targetTok := p.advance()
			name := targetWord(targetTok)
			p.advance() // ':'
			if !validAttributeTargets[name] {
				p.report(diag.CodeUnknownAttributeTarget, targetTok.Start, name)
				p.skipToMatchingBracket()
				continue
			}
			if !allowed[name] {
				p.report(diag.CodeInvalidAttributeTarget, targetTok.Start, name)
				p.skipToMatchingBracket()
				continue
			}
			target = name
			lastTarget = name
		}

		for {
			a := p.parseAttribute(target)
			if a != nil {
				list.Append(a)
			}
			if p.peek(0).Kind == token.Comma {
				p.advance()
				continue
			}
			break
		}
		p.expectChar(token.RBrack, "]")
	}
	return list, lastTarget
}

// targetFollows reports whether the upcoming tokens are "<word> ':'",
// the AttrTarget prefix. The target word is either a plain identifier
// (param, field, ...) or the 'event'/'return' contextual spellings that
// happen to coincide with real keywords.
func (p *Parser) targetFollows() bool {
	if p.peek(1).Kind != token.Colon {
		return false
	}
	t := p.peek(0)
	return t.Kind == token.Identifier || t.Kind == token.KwEvent || t.Kind == token.KwReturn
}

func targetWord(t token.Token) string {
	if t.Kind == token.Identifier {
		return t.Value.Str
	}
	return t.Kind.String()
}

// skipToMatchingBracket discards a discarded attribute section's
// remaining tokens up to and including its closing ']' (spec.md §4.5:
// "whole section discarded").
func (p *Parser) skipToMatchingBracket() {
	depth := 1
	for depth > 0 {
		k := p.peek(0).Kind
		if k == token.EOF || k == token.EOD {
			return
		}
		if k == token.LBrack {
			depth++
		}
		if k == token.RBrack {
			depth--
		}
		p.advance()
	}
}

// parseAttribute implements Attribute = TypeName CtorCallOpt.
func (p *Parser) parseAttribute(target string) *ast.Node {
	start := p.peek(0).Start
	ty := p.parseTypeName()

	var positional []*ast.Node
	var namedNames []string
	var namedValues []*ast.Node

	if p.peek(0).Kind == token.LParen {
		p.advance()
		if p.peek(0).Kind != token.RParen {
			for {
				if p.peek(0).Kind == token.Identifier && isBareAssign(p.peek(1)) {
					nameTok := p.advance()
					p.advance() // '='
					val := p.parseExpressionStub()
					namedNames = append(namedNames, nameTok.Value.Str)
					namedValues = append(namedValues, val)
				} else {
					val := p.parseExpressionStub()
					positional = append(positional, val)
				}
				if p.peek(0).Kind == token.Comma {
					p.advance()
					continue
				}
				break
			}
		}
		p.expect(token.RParen, diag.CodeExpectedCloseParen)
	}

	return &ast.Node{
		SourceName: p.sourceName,
		Start:      start,
		End:        p.lastEnd(),
		Data: &ast.Attribute{
			Target:         target,
			Type:           ty,
			PositionalArgs: positional,
			NamedArgNames:  namedNames,
			NamedArgValues: namedValues,
		},
	}
}
