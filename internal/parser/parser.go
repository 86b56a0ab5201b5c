// Package parser implements the recursive-descent Parser of spec.md
// §4.5: it drains internal/scanner's token stream through a buffered
// N-token ring (re-filled by draining the scanner, so arbitrary
// lookahead depth is supported, not just the N=2 the grammar strictly
// needs) into internal/ast nodes, reporting into a shared
// diag.OutputMessageCollection and recovering locally from syntax
// errors instead of aborting.
//
// The overall shape — one struct accumulating parse context, a single
// report-and-continue error path, state advanced one token at a time —
// follows the teacher's parserContext/report (asm/parser.go), adapted
// from a flat per-line state machine to recursive-descent productions
// because this grammar, unlike the assembly line grammar, nests.
package parser

import (
	"github.com/gmofishsauce/csfront/internal/ast"
	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/invariant"
	"github.com/gmofishsauce/csfront/internal/options"
	"github.com/gmofishsauce/csfront/internal/position"
	"github.com/gmofishsauce/csfront/internal/scanner"
	"github.com/gmofishsauce/csfront/internal/token"
)

// Parser consumes tokens from a scanner.Scanner, gating and appending
// diagnostics the same way the scanner does (spec.md §4.7: "all
// scanner/parser instances reference a single compiler").
type Parser struct {
	sc       *scanner.Scanner
	optStack *options.Stack
	sink     *diag.OutputMessageCollection

	buf        []token.Token
	sourceName string
	lastTok    token.Token
}

// New returns a Parser reading tokens from sc, gating diagnostics
// against optStack, and appending to sink.
func New(sc *scanner.Scanner, optStack *options.Stack, sink *diag.OutputMessageCollection) *Parser {
	return &Parser{sc: sc, optStack: optStack, sink: sink}
}

// fill ensures the lookahead ring holds at least n+1 tokens, draining
// the scanner. Once EOD is seen the ring is padded with repeated EOD
// tokens rather than calling NextToken again, since nothing further
// will ever come back (spec.md §4.1: "undefined" to read past EOD).
func (p *Parser) fill(n int) {
	for len(p.buf) <= n {
		t, _ := p.sc.NextToken()
		p.buf = append(p.buf, t)
		if t.Kind == token.EOD {
			for len(p.buf) <= n {
				p.buf = append(p.buf, t)
			}
			return
		}
	}
}

// peek returns the token n positions ahead of the cursor (0 = next
// token to be consumed) without consuming it.
func (p *Parser) peek(n int) token.Token {
	p.fill(n)
	return p.buf[n]
}

// advance consumes and returns the next token.
func (p *Parser) advance() token.Token {
	p.fill(0)
	t := p.buf[0]
	p.buf = p.buf[1:]
	if t.SourceName != "" {
		p.sourceName = t.SourceName
	}
	p.lastTok = t
	return t
}

// expect consumes and returns the next token if its kind is k;
// otherwise it reports code at the token's position and leaves the
// cursor unmoved so the caller's recovery path sees the offending token.
func (p *Parser) expect(k token.Kind, code int) (token.Token, bool) {
	if p.peek(0).Kind == k {
		return p.advance(), true
	}
	p.report(code, p.peek(0).Start)
	return token.Token{}, false
}

// expectIdentifier consumes and returns the next token if it is a plain
// identifier, distinguishing "keyword where an identifier was expected"
// from a bare syntax error per spec.md's diagnostic catalog (1001 vs
// 1041).
func (p *Parser) expectIdentifier() (token.Token, bool) {
	tok := p.peek(0)
	if tok.Kind == token.Identifier {
		return p.advance(), true
	}
	if tok.Kind.IsKeyword() {
		p.report(diag.CodeExpectedIdentGotKeyword, tok.Start, tok.Kind.String())
	} else {
		p.report(diag.CodeExpectedIdentifier, tok.Start)
	}
	return token.Token{}, false
}

// report looks up code in the shared catalog, gates it against the
// current option scope, and appends it to the sink — the same
// gate-then-append shape scanner.Scanner.report uses (spec.md §4.2,
// §4.3, §7).
func (p *Parser) report(code int, pos position.Position, args ...interface{}) {
	d, ok := diag.Catalog.Lookup(code)
	if !ok {
		invariant.Raise("parser: unknown diagnostic code %d", code)
	}
	scope := p.optStack.Top()
	if scope != nil && !scope.ShouldShow(d) {
		return
	}
	sev := d.Severity
	if scope != nil {
		sev = scope.EffectiveSeverity(d)
	}
	p.sink.Add(diag.OutputMessage{
		Severity:   sev,
		SourceName: p.currentSourceName(),
		Position:   pos,
		Code:       code,
		Message:    d.Format(args...),
	})
}

// expectChar is like expect but for punctuation whose diagnostic names
// the expected character explicitly (spec.md diag 1003 "expected
// character '{0}'"), used where no dedicated code exists for the
// closing token (e.g. ']' or ')').
func (p *Parser) expectChar(k token.Kind, spelling string) (token.Token, bool) {
	if p.peek(0).Kind == k {
		return p.advance(), true
	}
	p.report(diag.CodeExpectedCharacter, p.peek(0).Start, spelling)
	return token.Token{}, false
}

func (p *Parser) currentSourceName() string {
	if p.buf != nil && len(p.buf) > 0 {
		return p.buf[0].SourceName
	}
	return p.sourceName
}

func isBareAssign(t token.Token) bool {
	return t.Kind == token.OpAssign && t.Value.Kind == token.VNone
}

// ParseOne parses a single SourceFile from the buffer currently at the
// front of the scanner's stream (spec.md §4.5: "parse-one() — a single
// SourceFile"). It returns (nil, false) once there is nothing left to
// parse (the scanner has reached EOD before any token of a new buffer
// was read).
func (p *Parser) ParseOne() (*ast.Node, bool) {
	if p.peek(0).Kind == token.EOD {
		return nil, false
	}
	start := p.peek(0).Start
	srcName := p.peek(0).SourceName

	ns := p.parseNamespaceBody(true)

	end := p.peek(0).Start
	nsNode := &ast.Node{SourceName: srcName, Start: start, End: end, Data: ns}
	fileNode := &ast.Node{SourceName: srcName, Start: start, End: end, Data: &ast.SourceFile{Root: nsNode}}

	if p.peek(0).Kind == token.EOF {
		p.advance() // commit past this buffer's boundary so the next ParseOne sees the next file
	}
	return fileNode, true
}

// ParseProgram parses every buffer the scanner's reader was given,
// returning one SourceFile node per buffer (spec.md §4.5: "parse-
// program() — all buffers → list of SourceFile").
func (p *Parser) ParseProgram() []*ast.Node {
	var files []*ast.Node
	for {
		f, ok := p.ParseOne()
		if !ok {
			break
		}
		files = append(files, f)
	}
	return files
}

// parseNamespaceBody parses the Namespace production's contents —
// extern alias declarations, using directives, global attributes, and
// nested namespace/type declarations — stopping at a closing '}' (for a
// nested namespace) or EOF/EOD (for the root). The caller owns matching
// the opening/closing braces for a nested namespace.
func (p *Parser) parseNamespaceBody(isRoot bool) *ast.Namespace {
	ns := &ast.Namespace{
		Usings:           ast.NewList(),
		NestedNamespaces: ast.NewList(),
		Types:            ast.NewList(),
		GlobalAttributes: ast.NewList(),
	}

	for {
		tok := p.peek(0)
		if tok.Kind == token.EOF || tok.Kind == token.EOD {
			if !isRoot {
				p.report(diag.CodeExpectedCloseBrace, tok.Start)
			}
			return ns
		}
		if !isRoot && tok.Kind == token.RBrace {
			return ns
		}

		switch {
		case tok.Kind == token.KwExtern && isAliasWord(p.peek(1)):
			p.advance() // extern
			p.advance() // alias
			nameTok, ok := p.expectIdentifier()
			if ok {
				ns.ExternAliases = append(ns.ExternAliases, nameTok.Value.Str)
			}
			p.expect(token.Semi, diag.CodeExpectedSemicolon)

		case tok.Kind == token.KwUsing:
			u := p.parseUsingDecl()
			if u != nil {
				ns.Usings.Append(u)
			}

		case tok.Kind == token.KwNamespace:
			n := p.parseNamespaceDecl()
			if n != nil {
				ns.NestedNamespaces.Append(n)
			}

		case tok.Kind == token.LBrack:
			attrs, target := p.parseAttributeSectionsWithTarget(namespaceAttributeTargets)
			if target == "assembly" {
				for _, n := range attrs.Slice() {
					ns.GlobalAttributes.Append(n)
				}
				continue
			}
			d := p.parseTypeDecl(attrs)
			if d != nil {
				ns.Types.Append(d)
			}

		default:
			d := p.parseTypeDecl(nil)
			if d != nil {
				ns.Types.Append(d)
			}
		}
	}
}

func isAliasWord(t token.Token) bool {
	return t.Kind == token.Identifier && t.Value.Str == "alias"
}

// parseUsingDecl implements UsingDecl = 'using' (IDENT '=' TypeName |
// DottedName) ';'.
func (p *Parser) parseUsingDecl() *ast.Node {
	start := p.peek(0).Start
	p.advance() // 'using'

	if p.peek(0).Kind == token.Identifier && isBareAssign(p.peek(1)) {
		aliasTok := p.advance()
		p.advance() // '='
		ty := p.parseTypeName()
		p.expect(token.Semi, diag.CodeExpectedSemicolon)
		return &ast.Node{SourceName: p.sourceName, Start: start, End: p.lastEnd(),
			Data: &ast.UsingAlias{Alias: aliasTok.Value.Str, Type: ty}}
	}

	name, ok := p.parseDottedNameString()
	p.expect(token.Semi, diag.CodeExpectedSemicolon)
	if !ok {
		return nil
	}
	return &ast.Node{SourceName: p.sourceName, Start: start, End: p.lastEnd(),
		Data: &ast.UsingNamespace{Name: name}}
}

// parseNamespaceDecl implements NamespaceDecl = 'namespace' DottedName
// '{' Namespace '}'.
func (p *Parser) parseNamespaceDecl() *ast.Node {
	start := p.peek(0).Start
	p.advance() // 'namespace'

	name, _ := p.parseDottedNameString()
	var nameNode *ast.Node
	if name != "" {
		nameNode = &ast.Node{SourceName: p.sourceName, Start: start, End: p.lastEnd(), Data: &ast.Identifier{Name: name}}
	}

	if _, ok := p.expect(token.LBrace, diag.CodeExpectedOpenBrace); !ok {
		p.recoverFromBadDeclaration()
		return nil
	}
	body := p.parseNamespaceBody(false)
	body.Name = nameNode
	end := p.peek(0).End
	p.expect(token.RBrace, diag.CodeExpectedCloseBrace)

	return &ast.Node{SourceName: p.sourceName, Start: start, End: end, Data: body}
}

// lastEnd returns the End position of the token just consumed, for
// spans that end at the last-read token rather than the next one.
func (p *Parser) lastEnd() position.Position {
	return p.lastTok.End
}
