package parser

import (
	"github.com/funvibe/typeassist/internal/diagnostics"
	"github.com/funvibe/typeassist/internal/syntax"
)

func (p *Parser) parseType() {
	switch p.nth(0) {
	case syntax.L_PAREN:
		p.startNode(syntax.TUPLE_TYPE)
		p.bump()
		for !p.atAny(syntax.R_PAREN, syntax.EOF) {
			before := p.pos
			p.parseType()
			if p.pos == before {
				break
			}
			if !p.at(syntax.R_PAREN) && !p.expect(syntax.COMMA) {
				break
			}
		}
		p.expect(syntax.R_PAREN)
		p.finishNode()

	case syntax.AMP:
		p.startNode(syntax.REF_TYPE)
		p.bump()
		if p.at(syntax.MUT_KW) {
			p.bump()
		}
		p.parseType()
		p.finishNode()

	case syntax.AMPAMP:
		// &&T is one token but two references; the outer one owns no token.
		p.startNode(syntax.REF_TYPE)
		p.startNode(syntax.REF_TYPE)
		p.bump()
		if p.at(syntax.MUT_KW) {
			p.bump()
		}
		p.parseType()
		p.finishNode()
		p.finishNode()

	case syntax.L_BRACK:
		cp := p.checkpoint()
		p.bump()
		p.parseType()
		if p.at(syntax.SEMI) {
			p.startNodeAt(cp, syntax.ARRAY_TYPE)
			p.bump()
			p.parseExpr()
		} else {
			p.startNodeAt(cp, syntax.SLICE_TYPE)
		}
		p.expect(syntax.R_BRACK)
		p.finishNode()

	case syntax.BANG:
		p.startNode(syntax.NEVER_TYPE)
		p.bump()
		p.finishNode()

	case syntax.UNDERSCORE:
		p.startNode(syntax.PLACEHOLDER_TYPE)
		p.bump()
		p.finishNode()

	case syntax.IDENT:
		p.startNode(syntax.PATH_TYPE)
		p.parsePath(true)
		p.finishNode()

	default:
		p.errorAt(diagnostics.ErrP005, "expected a type, found %s", describe(p.nth(0)))
	}
}

// parsePath parses a::b::c. In type position generic arguments follow a
// segment directly (Vec<i32>); in expression position they need the
// turbofish (Vec::<i32>::new).
func (p *Parser) parsePath(typePosition bool) {
	p.startNode(syntax.PATH)
	p.parsePathSegment(typePosition)
	for p.at(syntax.COLONCOLON) && p.nth(1) == syntax.IDENT {
		p.bump()
		p.parsePathSegment(typePosition)
	}
	p.finishNode()
}

func (p *Parser) parsePathSegment(typePosition bool) {
	p.startNode(syntax.PATH_SEGMENT)
	p.parseNameRef()
	switch {
	case typePosition && p.at(syntax.LT):
		p.parseGenericArgList()
	case !typePosition && p.at(syntax.COLONCOLON) && p.nth(1) == syntax.LT:
		p.bump()
		p.parseGenericArgList()
	}
	p.finishNode()
}

func (p *Parser) parseGenericArgList() {
	p.startNode(syntax.GENERIC_ARG_LIST)
	p.bump() // <
	for !p.atAny(syntax.GT, syntax.EOF) {
		before := p.pos
		p.parseType()
		if p.pos == before {
			break
		}
		if !p.at(syntax.GT) && !p.expect(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.GT)
	p.finishNode()
}
