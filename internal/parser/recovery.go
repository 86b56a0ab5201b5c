package parser

import "github.com/gmofishsauce/csfront/internal/token"

// recoverTo skips tokens until the current one's kind is in kinds, or
// EOF/EOD is reached (spec.md §4.5: "skips until one of the kinds (or
// EOF/EOD)"). It does not consume the token it stops on.
func (p *Parser) recoverTo(kinds ...token.Kind) {
	for {
		k := p.peek(0).Kind
		if k == token.EOF || k == token.EOD {
			return
		}
		for _, want := range kinds {
			if k == want {
				return
			}
		}
		p.advance()
	}
}

// recoverFromBadDeclaration implements spec.md §4.5's declaration-level
// recovery: find the next '{', '}', or ';'; if '{', skip the balanced
// block; otherwise consume the one token found ('}' or ';').
func (p *Parser) recoverFromBadDeclaration() {
	for {
		k := p.peek(0).Kind
		if k == token.EOF || k == token.EOD {
			return
		}
		if k == token.LBrace {
			p.skipBalanced(token.LBrace, token.RBrace)
			return
		}
		if k == token.RBrace || k == token.Semi {
			p.advance()
			return
		}
		p.advance()
	}
}

// skipBalanced assumes the current token is open and consumes through
// its matching close, honoring nesting.
func (p *Parser) skipBalanced(open, closeKind token.Kind) {
	depth := 0
	for {
		k := p.peek(0).Kind
		if k == token.EOF || k == token.EOD {
			return
		}
		if k == open {
			depth++
			p.advance()
			continue
		}
		if k == closeKind {
			depth--
			p.advance()
			if depth == 0 {
				return
			}
			continue
		}
		p.advance()
	}
}

// skipToSemicolonBalanced consumes tokens up to and including the next
// top-level ';' (one not nested inside parens/brackets/braces), for
// skipping initializer and expression-bodied-member expressions that
// parse-expression() cannot parse (spec.md §4.5 Open Question).
func (p *Parser) skipToSemicolonBalanced() {
	depth := 0
	for {
		k := p.peek(0).Kind
		if k == token.EOF || k == token.EOD {
			return
		}
		switch k {
		case token.LParen, token.LBrack, token.LBrace:
			depth++
		case token.RParen, token.RBrack, token.RBrace:
			if depth > 0 {
				depth--
			}
		case token.Semi:
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

// skipUntilOpenBrace discards tokens up to (not including) the next
// '{', for the BaseListOpt/WhereOpt gap between a type's header and its
// body — full base-list/constraint resolution is out of this front
// end's scope (spec.md §1 Non-goals: "full expression trees"; base
// lists and generic constraints are a similar unimplemented surface).
func (p *Parser) skipUntilOpenBrace() {
	for {
		k := p.peek(0).Kind
		if k == token.LBrace || k == token.EOF || k == token.EOD {
			return
		}
		p.advance()
	}
}
