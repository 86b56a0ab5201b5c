package parser

import (
	"github.com/gmofishsauce/csfront/internal/ast"
	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/position"
	"github.com/gmofishsauce/csfront/internal/token"
)

// parseModifiers implements Modifiers = (ModifierKeyword | 'partial')*,
// reporting DuplicateModifier for a repeated spelling (spec.md §4.5).
// 'partial' is already a member of the modifier-keyword contiguous
// range (internal/token), so no special case is needed for it.
func (p *Parser) parseModifiers() []string {
	seen := map[string]bool{}
	var mods []string
	for p.peek(0).Kind.IsModifierKeyword() {
		tok := p.advance()
		name := tok.Kind.String()
		if seen[name] {
			p.report(diag.CodeDuplicateModifier, tok.Start, name)
			continue
		}
		seen[name] = true
		mods = append(mods, name)
	}
	return mods
}

// parseTypeDecl implements TypeDecl = Attributes Modifiers
// (Class|Struct|Interface|Enum|Delegate). pendingAttrs carries attribute
// sections the caller already consumed while disambiguating global vs.
// type attributes (spec.md §4.5's Attributes production, parsed once).
func (p *Parser) parseTypeDecl(pendingAttrs *ast.List) *ast.Node {
	attrs := pendingAttrs
	if attrs == nil {
		attrs = p.parseAttributes(typeAttributeTargets)
	}
	mods := p.parseModifiers()
	start := p.peek(0).Start
	tok := p.peek(0)

	switch tok.Kind {
	case token.KwClass:
		return p.parseClassLikeDecl(attrs, mods, ast.DeclClass, start)
	case token.KwStruct:
		return p.parseClassLikeDecl(attrs, mods, ast.DeclStruct, start)
	case token.KwInterface:
		return p.parseClassLikeDecl(attrs, mods, ast.DeclInterface, start)
	case token.KwEnum:
		return p.parseEnumDecl(attrs, mods, start)
	case token.KwDelegate:
		return p.parseDelegateDecl(attrs, mods, start)
	default:
		p.report(diag.CodeExpectedTypeDeclaration, tok.Start)
		p.recoverFromBadDeclaration()
		return nil
	}
}

func isTypeIntroKeyword(k token.Kind) bool {
	switch k {
	case token.KwClass, token.KwStruct, token.KwInterface, token.KwEnum, token.KwDelegate:
		return true
	default:
		return false
	}
}

// parseClassLikeDecl implements ClassDecl = ('class'|'struct'|
// 'interface') IDENT TypeParamsOpt BaseListOpt WhereOpt '{' Member* '}'.
func (p *Parser) parseClassLikeDecl(attrs *ast.List, mods []string, kind ast.TypeDeclKind, start position.Position) *ast.Node {
	p.advance() // class/struct/interface keyword
	nameTok, _ := p.expectIdentifier()
	name := nameTok.Value.Str

	p.skipTypeArgsOpt() // TypeParamsOpt reuses the same balanced-angle-bracket skip as TypeArgsOpt
	if p.peek(0).Kind == token.Colon || isWhereWord(p.peek(0)) {
		p.skipUntilOpenBrace()
	}

	if _, ok := p.expect(token.LBrace, diag.CodeExpectedOpenBrace); !ok {
		p.recoverFromBadDeclaration()
	}

	events, fields, methods, properties, nested := ast.NewList(), ast.NewList(), ast.NewList(), ast.NewList(), ast.NewList()
	for {
		k := p.peek(0).Kind
		if k == token.RBrace || k == token.EOF || k == token.EOD {
			break
		}
		p.parseMember(kind, events, fields, methods, properties, nested)
	}
	end := p.peek(0).End
	p.expect(token.RBrace, diag.CodeExpectedCloseBrace)

	return &ast.Node{
		SourceName: p.sourceName, Start: start, End: end,
		Data: &ast.TypeDeclaration{
			Name: name, Kind: kind, Modifiers: mods, Attributes: attrs,
			Events: events, Fields: fields, Methods: methods, Properties: properties, NestedTypes: nested,
		},
	}
}

func isWhereWord(t token.Token) bool {
	return t.Kind == token.Identifier && t.Value.Str == "where"
}

// parseEnumDecl parses 'enum' IDENT (':' Type)? '{' (IDENT (',' IDENT)* ','?)? '}'.
// This shape is not spelled out by spec.md §4.5's ClassDecl production
// (which only covers class/struct/interface members); it is
// supplemented here so TypeDeclKind's Enum variant is actually reachable.
func (p *Parser) parseEnumDecl(attrs *ast.List, mods []string, start position.Position) *ast.Node {
	p.advance() // 'enum'
	nameTok, _ := p.expectIdentifier()
	name := nameTok.Value.Str

	if p.peek(0).Kind == token.Colon {
		p.advance()
		ty := p.parseType()
		if prim, ok := ty.Data.(*ast.PrimitiveType); ok {
			switch prim.Kind {
			case ast.PrimByte, ast.PrimSbyte, ast.PrimShort, ast.PrimUshort,
				ast.PrimInt, ast.PrimUint, ast.PrimLong, ast.PrimUlong:
			default:
				p.report(diag.CodeEnumBaseExpected, nameTok.Start)
			}
		} else {
			p.report(diag.CodeEnumBaseExpected, nameTok.Start)
		}
	}

	if _, ok := p.expect(token.LBrace, diag.CodeExpectedOpenBrace); !ok {
		p.recoverFromBadDeclaration()
	}
	fields := ast.NewList()
	for p.peek(0).Kind != token.RBrace && p.peek(0).Kind != token.EOF && p.peek(0).Kind != token.EOD {
		memberTok, ok := p.expectIdentifier()
		if !ok {
			p.recoverTo(token.Comma, token.RBrace)
		} else {
			hasInit := false
			if isBareAssign(p.peek(0)) {
				p.advance()
				p.parseExpressionStub()
				hasInit = true
			}
			fields.Append(&ast.Node{SourceName: p.sourceName, Start: memberTok.Start, End: p.lastEnd(),
				Data: &ast.FieldDecl{Name: memberTok.Value.Str, HasInitializer: hasInit}})
		}
		if p.peek(0).Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	end := p.peek(0).End
	p.expect(token.RBrace, diag.CodeExpectedCloseBrace)

	return &ast.Node{SourceName: p.sourceName, Start: start, End: end, Data: &ast.TypeDeclaration{
		Name: name, Kind: ast.DeclEnum, Modifiers: mods, Attributes: attrs,
		Events: ast.NewList(), Fields: fields, Methods: ast.NewList(), Properties: ast.NewList(), NestedTypes: ast.NewList(),
	}}
}

// parseDelegateDecl parses 'delegate' Type IDENT TypeParamsOpt '(' Params ')' ';'.
// Like enums, delegates sit outside the ClassDecl Member grammar; this
// is the supplemented shape needed to make TypeDeclKind's Delegate
// variant constructible.
func (p *Parser) parseDelegateDecl(attrs *ast.List, mods []string, start position.Position) *ast.Node {
	p.advance() // 'delegate'
	retType := p.parseType()
	nameTok, _ := p.expectIdentifier()
	name := nameTok.Value.Str
	p.skipTypeArgsOpt()

	if _, ok := p.expectChar(token.LParen, "("); ok {
		p.skipBalancedFromInside(token.LParen, token.RParen)
	}
	end := p.peek(0).End
	p.expect(token.Semi, diag.CodeExpectedSemicolon)

	methods := ast.NewList()
	methods.Append(&ast.Node{SourceName: p.sourceName, Start: start, End: end,
		Data: &ast.MethodDecl{Name: name, ReturnType: retType}})

	return &ast.Node{SourceName: p.sourceName, Start: start, End: end, Data: &ast.TypeDeclaration{
		Name: name, Kind: ast.DeclDelegate, Modifiers: mods, Attributes: attrs,
		Events: ast.NewList(), Fields: ast.NewList(), Methods: methods, Properties: ast.NewList(), NestedTypes: ast.NewList(),
	}}
}

// skipBalancedFromInside consumes up to and including the matching
// closeKind, given that the matching openKind was already consumed by
// the caller (unlike skipBalanced, which expects to see open itself).
func (p *Parser) skipBalancedFromInside(openKind, closeKind token.Kind) {
	depth := 1
	for depth > 0 {
		k := p.peek(0).Kind
		if k == token.EOF || k == token.EOD {
			return
		}
		if k == openKind {
			depth++
		}
		if k == closeKind {
			depth--
		}
		p.advance()
	}
}

// parseMember implements Member = Attributes Modifiers (NestedType |
// EventDecl | MethodDecl | FieldDecl | PropertyDecl) with the
// disambiguation rules spec.md §4.5 spells out.
func (p *Parser) parseMember(kind ast.TypeDeclKind, events, fields, methods, properties, nested *ast.List) {
	// Member attribute sections are parsed only for their side effects
	// (target validation, diagnostics): none of EventDecl/FieldDecl/
	// MethodDecl/PropertyDecl carries an Attributes field in this
	// front end's lean member shapes (internal/ast.Node doc comment).
	attrs := p.parseAttributes(memberAttributeTargets)
	mods := p.parseModifiers()
	start := p.peek(0).Start
	tok := p.peek(0)

	switch {
	case tok.Kind == token.Tilde:
		p.advance()
		nameTok, _ := p.expectIdentifier()
		if kind != ast.DeclClass {
			p.report(diag.CodeNoDestructorOutsideClass, tok.Start)
		}
		p.skipDestructorTail()
		methods.Append(&ast.Node{SourceName: p.sourceName, Start: start, End: p.lastEnd(),
			Data: &ast.MethodDecl{Name: "~" + nameTok.Value.Str}})

	case tok.Kind == token.Identifier && p.peek(1).Kind == token.LParen:
		p.advance() // constructor name
		if kind == ast.DeclInterface {
			p.report(diag.CodeNoConstructorInInterface, tok.Start)
		}
		p.skipBalanced(token.LParen, token.RParen)
		p.skipInitializerOrBaseCall()
		p.skipMethodBodyOrSemi()
		methods.Append(&ast.Node{SourceName: p.sourceName, Start: start, End: p.lastEnd(),
			Data: &ast.MethodDecl{Name: tok.Value.Str}})

	case isTypeIntroKeyword(tok.Kind):
		if kind == ast.DeclInterface {
			p.report(diag.CodeNoTypesInInterfaces, tok.Start)
		}
		n := p.parseTypeDecl(attrs)
		if n != nil {
			n.Data.(*ast.TypeDeclaration).Modifiers = mods
			nested.Append(n)
		}

	case tok.Kind == token.KwEvent:
		p.advance()
		ty := p.parseType()
		nameTok, _ := p.expectIdentifier()
		if p.peek(0).Kind == token.LBrace {
			p.skipBalanced(token.LBrace, token.RBrace)
		} else {
			p.expect(token.Semi, diag.CodeExpectedSemicolon)
		}
		events.Append(&ast.Node{SourceName: p.sourceName, Start: start, End: p.lastEnd(),
			Data: &ast.EventDecl{Name: nameTok.Value.Str, Type: ty}})

	default:
		p.parseFieldMethodOrProperty(kind, start, fields, methods, properties)
	}
}

// skipDestructorTail consumes a destructor's empty parameter list and
// body/semicolon.
func (p *Parser) skipDestructorTail() {
	if p.peek(0).Kind == token.LParen {
		p.skipBalanced(token.LParen, token.RParen)
	}
	p.skipMethodBodyOrSemi()
}

// skipInitializerOrBaseCall consumes a constructor's optional
// ": base(...)" / ": this(...)" initializer.
func (p *Parser) skipInitializerOrBaseCall() {
	if p.peek(0).Kind != token.Colon {
		return
	}
	p.advance()
	p.advance() // 'base' or 'this'
	if p.peek(0).Kind == token.LParen {
		p.skipBalanced(token.LParen, token.RParen)
	}
}

// parseFieldMethodOrProperty handles the Type-first disambiguation
// branch of Member: parse a Type, then decide between field, property/
// indexer, and method based on what follows the member's name (spec.md
// §4.5).
func (p *Parser) parseFieldMethodOrProperty(kind ast.TypeDeclKind, start position.Position, fields, methods, properties *ast.List) {
	ty := p.parseType()

	if p.peek(0).Kind == token.Identifier && (p.peek(1).Kind == token.Semi || isBareAssign(p.peek(1))) {
		nameTok := p.advance()
		hasInit := false
		if isBareAssign(p.peek(0)) {
			p.advance()
			p.parseExpressionStub()
			hasInit = true
		}
		p.expect(token.Semi, diag.CodeExpectedSemicolon)
		if kind == ast.DeclInterface {
			p.report(diag.CodeNoFieldsInInterfaces, nameTok.Start)
		}
		fields.Append(&ast.Node{SourceName: p.sourceName, Start: start, End: p.lastEnd(),
			Data: &ast.FieldDecl{Name: nameTok.Value.Str, Type: ty, HasInitializer: hasInit}})
		return
	}

	var name string
	var ok bool
	if p.peek(0).Kind == token.KwThis {
		p.advance()
		name, ok = "this", true
	} else {
		name, ok = p.parseDottedNameString()
	}
	if !ok {
		p.report(diag.CodeInvalidTokenInTypeDecl, p.peek(0).Start)
		p.recoverFromBadDeclaration()
		return
	}

	switch p.peek(0).Kind {
	case token.LBrace:
		p.skipBalanced(token.LBrace, token.RBrace)
		properties.Append(&ast.Node{SourceName: p.sourceName, Start: start, End: p.lastEnd(),
			Data: &ast.PropertyDecl{Name: name, Type: ty}})

	case token.LBrack:
		p.skipBalanced(token.LBrack, token.RBrack)
		if p.peek(0).Kind == token.LBrace {
			p.skipBalanced(token.LBrace, token.RBrace)
		} else {
			p.expect(token.Semi, diag.CodeExpectedSemicolon)
		}
		properties.Append(&ast.Node{SourceName: p.sourceName, Start: start, End: p.lastEnd(),
			Data: &ast.PropertyDecl{Name: name, Type: ty, IsIndexer: true}})

	case token.LParen:
		p.skipBalanced(token.LParen, token.RParen)
		p.skipMethodBodyOrSemi()
		methods.Append(&ast.Node{SourceName: p.sourceName, Start: start, End: p.lastEnd(),
			Data: &ast.MethodDecl{Name: name, ReturnType: ty}})

	default:
		p.report(diag.CodeInvalidTokenInTypeDecl, p.peek(0).Start)
		p.recoverFromBadDeclaration()
	}
}

// skipMethodBodyOrSemi consumes a member body after its signature: a
// balanced '{' ... '}' block, an expression body ("=>"-shaped, which
// lexes as a bare '=' immediately followed by '>' since this token set
// has no dedicated fat-arrow kind) up to its terminating ';', or a bare
// ';' for an abstract/interface/extern member.
func (p *Parser) skipMethodBodyOrSemi() {
	switch {
	case p.peek(0).Kind == token.LBrace:
		p.skipBalanced(token.LBrace, token.RBrace)
	case p.peek(0).Kind == token.Semi:
		p.advance()
	case isBareAssign(p.peek(0)) && p.peek(1).Kind == token.Greater:
		p.advance() // '='
		p.advance() // '>'
		p.skipToSemicolonBalanced()
	default:
		p.recoverFromBadDeclaration()
	}
}
