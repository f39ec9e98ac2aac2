package parser

import (
	"github.com/funvibe/typeassist/internal/diagnostics"
	"github.com/funvibe/typeassist/internal/syntax"
)

// Binding power of binary operators; higher binds tighter.
var binaryPrecedence = map[syntax.Kind]int{
	syntax.PIPEPIPE: 1,
	syntax.AMPAMP:   2,
	syntax.EQEQ:     3,
	syntax.NEQ:      3,
	syntax.LT:       3,
	syntax.LTEQ:     3,
	syntax.GT:       3,
	syntax.GTEQ:     3,
	syntax.PIPE:     4,
	syntax.CARET:    5,
	syntax.AMP:      6,
	syntax.PLUS:     7,
	syntax.MINUS:    7,
	syntax.STAR:     8,
	syntax.SLASH:    8,
	syntax.PERCENT:  8,
}

// parseExpr returns the kind of the outermost node it produced, or
// TOMBSTONE if no expression starts at the current token.
func (p *Parser) parseExpr() syntax.Kind {
	cp := p.checkpoint()
	kind := p.parseExprBP(0, false)
	if kind != syntax.TOMBSTONE && p.at(syntax.EQ) {
		// Assignment binds loosest and associates to the right.
		p.startNodeAt(cp, syntax.BIN_EXPR)
		p.bump()
		if p.parseExpr() == syntax.TOMBSTONE {
			p.errorAt(diagnostics.ErrP003, "expected an expression after '='")
		}
		p.finishNode()
		return syntax.BIN_EXPR
	}
	return kind
}

// noStruct disables struct literals, which would otherwise swallow the
// block of an `if`.
func (p *Parser) parseExprBP(minBP int, noStruct bool) syntax.Kind {
	cp := p.checkpoint()
	kind := p.parseUnary(noStruct)
	if kind == syntax.TOMBSTONE {
		return kind
	}
	for {
		bp, ok := binaryPrecedence[p.nth(0)]
		if !ok || bp <= minBP {
			return kind
		}
		p.startNodeAt(cp, syntax.BIN_EXPR)
		p.bump()
		if p.parseExprBP(bp, noStruct) == syntax.TOMBSTONE {
			p.errorAt(diagnostics.ErrP003, "expected an expression after operator")
		}
		p.finishNode()
		kind = syntax.BIN_EXPR
	}
}

func (p *Parser) parseUnary(noStruct bool) syntax.Kind {
	switch p.nth(0) {
	case syntax.MINUS, syntax.BANG, syntax.STAR:
		p.startNode(syntax.PREFIX_EXPR)
		p.bump()
		if p.parseUnary(noStruct) == syntax.TOMBSTONE {
			p.errorAt(diagnostics.ErrP003, "expected an expression after prefix operator")
		}
		p.finishNode()
		return syntax.PREFIX_EXPR
	case syntax.AMP:
		p.startNode(syntax.REF_EXPR)
		p.bump()
		if p.at(syntax.MUT_KW) {
			p.bump()
		}
		if p.parseUnary(noStruct) == syntax.TOMBSTONE {
			p.errorAt(diagnostics.ErrP003, "expected an expression after '&'")
		}
		p.finishNode()
		return syntax.REF_EXPR
	case syntax.AMPAMP:
		p.startNode(syntax.REF_EXPR)
		p.startNode(syntax.REF_EXPR)
		p.bump()
		if p.at(syntax.MUT_KW) {
			p.bump()
		}
		if p.parseUnary(noStruct) == syntax.TOMBSTONE {
			p.errorAt(diagnostics.ErrP003, "expected an expression after '&&'")
		}
		p.finishNode()
		p.finishNode()
		return syntax.REF_EXPR
	}
	return p.parsePostfix(noStruct)
}

func (p *Parser) parsePostfix(noStruct bool) syntax.Kind {
	cp := p.checkpoint()
	kind := p.parseAtom(noStruct)
	if kind == syntax.TOMBSTONE {
		return kind
	}
	for {
		switch p.nth(0) {
		case syntax.L_PAREN:
			p.startNodeAt(cp, syntax.CALL_EXPR)
			p.parseArgList()
			p.finishNode()
			kind = syntax.CALL_EXPR
		case syntax.L_BRACK:
			p.startNodeAt(cp, syntax.INDEX_EXPR)
			p.bump()
			if p.parseExpr() == syntax.TOMBSTONE {
				p.errorAt(diagnostics.ErrP003, "expected an index expression")
			}
			p.expect(syntax.R_BRACK)
			p.finishNode()
			kind = syntax.INDEX_EXPR
		case syntax.DOT:
			switch {
			case p.nth(1) == syntax.IDENT && (p.nth(2) == syntax.L_PAREN || p.nth(2) == syntax.COLONCOLON):
				p.startNodeAt(cp, syntax.METHOD_CALL_EXPR)
				p.bump() // .
				p.parseNameRef()
				if p.at(syntax.COLONCOLON) && p.nth(1) == syntax.LT {
					p.bump()
					p.parseGenericArgList()
				}
				p.parseArgList()
				p.finishNode()
				kind = syntax.METHOD_CALL_EXPR
			case p.nth(1) == syntax.IDENT || p.nth(1) == syntax.INT_NUMBER || p.nth(1) == syntax.FLOAT_NUMBER:
				// A FLOAT_NUMBER here is a chained tuple index such as t.0.1.
				p.startNodeAt(cp, syntax.FIELD_EXPR)
				p.bump() // .
				p.startNode(syntax.NAME_REF)
				p.bump()
				p.finishNode()
				p.finishNode()
				kind = syntax.FIELD_EXPR
			default:
				p.startNodeAt(cp, syntax.FIELD_EXPR)
				p.bump()
				p.errorAt(diagnostics.ErrP006, "expected a field name after '.'")
				p.finishNode()
				return syntax.FIELD_EXPR
			}
		default:
			return kind
		}
	}
}

func (p *Parser) parseAtom(noStruct bool) syntax.Kind {
	switch p.nth(0) {
	case syntax.INT_NUMBER, syntax.FLOAT_NUMBER, syntax.STRING, syntax.CHAR,
		syntax.TRUE_KW, syntax.FALSE_KW:
		p.parseLiteral()
		return syntax.LITERAL

	case syntax.IDENT:
		cp := p.checkpoint()
		p.parsePath(false)
		if !noStruct && p.at(syntax.L_CURLY) {
			p.startNodeAt(cp, syntax.STRUCT_LIT)
			p.parseStructLitFields()
			p.finishNode()
			return syntax.STRUCT_LIT
		}
		p.startNodeAt(cp, syntax.PATH_EXPR)
		p.finishNode()
		return syntax.PATH_EXPR

	case syntax.L_PAREN:
		return p.parseParenOrTuple()

	case syntax.L_BRACK:
		p.parseArrayExpr()
		return syntax.ARRAY_EXPR

	case syntax.L_CURLY:
		p.startNode(syntax.BLOCK_EXPR)
		p.parseBlock()
		p.finishNode()
		return syntax.BLOCK_EXPR

	case syntax.IF_KW:
		p.parseIfExpr()
		return syntax.IF_EXPR

	case syntax.RETURN_KW:
		p.startNode(syntax.RETURN_EXPR)
		p.bump()
		if !p.atAny(syntax.SEMI, syntax.R_CURLY, syntax.R_PAREN, syntax.COMMA, syntax.EOF) {
			p.parseExpr()
		}
		p.finishNode()
		return syntax.RETURN_EXPR
	}

	p.errorAt(diagnostics.ErrP003, "expected an expression, found %s", describe(p.nth(0)))
	return syntax.TOMBSTONE
}

func (p *Parser) parseLiteral() {
	p.startNode(syntax.LITERAL)
	p.bump()
	p.finishNode()
}

func (p *Parser) parseParenOrTuple() syntax.Kind {
	cp := p.checkpoint()
	p.bump() // (
	if p.at(syntax.R_PAREN) {
		p.bump()
		p.startNodeAt(cp, syntax.TUPLE_EXPR)
		p.finishNode()
		return syntax.TUPLE_EXPR
	}

	p.parseExpr()
	kind := syntax.PAREN_EXPR
	for p.at(syntax.COMMA) {
		kind = syntax.TUPLE_EXPR
		p.bump()
		if p.at(syntax.R_PAREN) {
			break
		}
		if p.parseExpr() == syntax.TOMBSTONE {
			break
		}
	}
	p.expect(syntax.R_PAREN)
	p.startNodeAt(cp, kind)
	p.finishNode()
	return kind
}

// [a, b, c] or [value; count]
func (p *Parser) parseArrayExpr() {
	p.startNode(syntax.ARRAY_EXPR)
	p.bump() // [
	if !p.at(syntax.R_BRACK) {
		p.parseExpr()
		if p.at(syntax.SEMI) {
			p.bump()
			p.parseExpr()
		} else {
			for p.at(syntax.COMMA) {
				p.bump()
				if p.at(syntax.R_BRACK) {
					break
				}
				if p.parseExpr() == syntax.TOMBSTONE {
					break
				}
			}
		}
	}
	p.expect(syntax.R_BRACK)
	p.finishNode()
}

func (p *Parser) parseIfExpr() {
	p.startNode(syntax.IF_EXPR)
	p.bump() // if
	if p.parseExprBP(0, true) == syntax.TOMBSTONE {
		p.errorAt(diagnostics.ErrP003, "expected a condition")
	}
	if p.at(syntax.L_CURLY) {
		p.startNode(syntax.BLOCK_EXPR)
		p.parseBlock()
		p.finishNode()
	} else {
		p.expect(syntax.L_CURLY)
	}
	if p.at(syntax.ELSE_KW) {
		p.bump()
		switch {
		case p.at(syntax.IF_KW):
			p.parseIfExpr()
		case p.at(syntax.L_CURLY):
			p.startNode(syntax.BLOCK_EXPR)
			p.parseBlock()
			p.finishNode()
		default:
			p.expect(syntax.L_CURLY)
		}
	}
	p.finishNode()
}

func (p *Parser) parseArgList() {
	p.startNode(syntax.ARG_LIST)
	p.bump() // (
	for !p.atAny(syntax.R_PAREN, syntax.EOF) {
		if p.parseExpr() == syntax.TOMBSTONE {
			if !p.atAny(syntax.R_PAREN, syntax.COMMA, syntax.SEMI, syntax.R_CURLY) {
				p.bumpError()
			}
			if !p.at(syntax.COMMA) {
				break
			}
		}
		if !p.at(syntax.R_PAREN) && !p.expect(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.R_PAREN)
	p.finishNode()
}

func (p *Parser) parseStructLitFields() {
	p.startNode(syntax.STRUCT_LIT_FIELD_LIST)
	p.bump() // {
	for !p.atAny(syntax.R_CURLY, syntax.EOF) {
		if !p.at(syntax.IDENT) {
			p.errorAt(diagnostics.ErrP006, "expected a field name, found %s", describe(p.nth(0)))
			p.bumpError()
			continue
		}
		p.startNode(syntax.STRUCT_LIT_FIELD)
		p.parseNameRef()
		if p.at(syntax.COLON) {
			p.bump()
			if p.parseExpr() == syntax.TOMBSTONE {
				p.errorAt(diagnostics.ErrP003, "expected a field value")
			}
		}
		p.finishNode()
		if !p.at(syntax.R_CURLY) && !p.expect(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.R_CURLY)
	p.finishNode()
}
