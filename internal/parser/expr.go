package parser

import (
	"errors"
	"strings"

	"github.com/gmofishsauce/csfront/internal/ast"
	"github.com/gmofishsauce/csfront/internal/token"
)

// ErrNotSupported is returned by ParseExpression: spec.md §4.5 leaves
// expression parsing unimplemented in the source repository and asks a
// faithful port to "stub with not-supported". Internal call sites
// (attribute constructor arguments, field/property initializers) don't
// propagate the error — they already got an ast.UnsupportedExpr node to
// splice into the tree and keep recovering — but ParseExpression is
// exposed for callers (or future grammar extensions) that want the
// stronger typed signal.
var ErrNotSupported = errors.New("parser: expression parsing is not supported")

// ParseExpression consumes one balanced expression-shaped run of tokens
// (honoring paren/bracket/brace nesting) up to the next top-level ','
// or closing delimiter, wraps its rendered text in an
// ast.UnsupportedExpr node, and returns ErrNotSupported alongside it.
func (p *Parser) ParseExpression() (*ast.Node, error) {
	return p.parseExpressionStub(), ErrNotSupported
}

// parseExpressionStub is the internal, error-less form used while
// parsing attribute argument lists and initializers: every argument
// position in this grammar still needs a placeholder node even though
// the expression itself cannot be parsed.
func (p *Parser) parseExpressionStub() *ast.Node {
	start := p.peek(0).Start
	var sb strings.Builder
	depth := 0
	first := true
	for {
		k := p.peek(0).Kind
		if k == token.EOF || k == token.EOD {
			break
		}
		if depth == 0 && (k == token.Comma || k == token.RParen || k == token.RBrack || k == token.RBrace || k == token.Semi) {
			break
		}
		switch k {
		case token.LParen, token.LBrack, token.LBrace:
			depth++
		case token.RParen, token.RBrack, token.RBrace:
			depth--
		}
		tok := p.advance()
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(tokenText(tok))
	}
	return &ast.Node{SourceName: p.sourceName, Start: start, End: p.lastEnd(), Data: &ast.UnsupportedExpr{RawText: sb.String()}}
}

func tokenText(t token.Token) string {
	if t.Value.Kind != token.VNone {
		return t.Value.String()
	}
	return t.Kind.String()
}
