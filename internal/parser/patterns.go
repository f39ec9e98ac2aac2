package parser

import (
	"github.com/funvibe/typeassist/internal/diagnostics"
	"github.com/funvibe/typeassist/internal/syntax"
)

// patternRecovery lists tokens a broken pattern must not swallow, so the
// enclosing let statement or parameter keeps its shape.
var patternRecovery = []syntax.Kind{
	syntax.EQ, syntax.SEMI, syntax.COLON, syntax.COMMA,
	syntax.R_PAREN, syntax.R_CURLY, syntax.EOF,
}

func (p *Parser) parsePattern() {
	switch p.nth(0) {
	case syntax.UNDERSCORE:
		p.startNode(syntax.PLACEHOLDER_PAT)
		p.bump()
		p.finishNode()

	case syntax.AMP:
		p.startNode(syntax.REF_PAT)
		p.bump()
		if p.at(syntax.MUT_KW) {
			p.bump()
		}
		p.parsePattern()
		p.finishNode()

	case syntax.L_PAREN:
		p.startNode(syntax.TUPLE_PAT)
		p.bump()
		p.parsePatternList(syntax.R_PAREN)
		p.finishNode()

	case syntax.INT_NUMBER, syntax.FLOAT_NUMBER, syntax.STRING, syntax.CHAR,
		syntax.TRUE_KW, syntax.FALSE_KW, syntax.MINUS:
		p.startNode(syntax.LITERAL_PAT)
		if p.at(syntax.MINUS) {
			p.bump()
		}
		p.parseLiteral()
		p.finishNode()

	case syntax.REF_KW, syntax.MUT_KW:
		p.parseBindPat()

	case syntax.IDENT:
		switch p.nth(1) {
		case syntax.COLONCOLON, syntax.L_PAREN, syntax.L_CURLY:
			p.parsePathPattern()
		default:
			p.parseBindPat()
		}

	default:
		p.errorAt(diagnostics.ErrP004, "expected a pattern, found %s", describe(p.nth(0)))
		if !p.atAny(patternRecovery...) {
			p.bumpError()
		}
	}
}

// ref? mut? name (@ pat)?
func (p *Parser) parseBindPat() {
	p.startNode(syntax.BIND_PAT)
	if p.at(syntax.REF_KW) {
		p.bump()
	}
	if p.at(syntax.MUT_KW) {
		p.bump()
	}
	p.parseName()
	if p.at(syntax.AT) {
		p.bump()
		p.parsePattern()
	}
	p.finishNode()
}

// Path(pats) or Path { field: pat, shorthand }
func (p *Parser) parsePathPattern() {
	cp := p.checkpoint()
	p.parsePath(false)
	switch {
	case p.at(syntax.L_PAREN):
		p.startNodeAt(cp, syntax.TUPLE_STRUCT_PAT)
		p.bump()
		p.parsePatternList(syntax.R_PAREN)
		p.finishNode()
	case p.at(syntax.L_CURLY):
		p.startNodeAt(cp, syntax.STRUCT_PAT)
		p.bump()
		for !p.atAny(syntax.R_CURLY, syntax.EOF) {
			p.startNode(syntax.FIELD_PAT)
			if p.at(syntax.IDENT) && p.nth(1) == syntax.COLON {
				p.parseNameRef()
				p.bump() // :
			}
			p.parsePattern()
			p.finishNode()
			if !p.at(syntax.R_CURLY) && !p.expect(syntax.COMMA) {
				break
			}
		}
		p.expect(syntax.R_CURLY)
		p.finishNode()
	default:
		// A bare multi-segment path such as Ordering::Less.
		p.startNodeAt(cp, syntax.TUPLE_STRUCT_PAT)
		p.finishNode()
	}
}

func (p *Parser) parsePatternList(closing syntax.Kind) {
	for !p.atAny(closing, syntax.EOF) {
		before := p.pos
		p.parsePattern()
		if p.pos == before {
			break
		}
		if !p.at(closing) && !p.expect(syntax.COMMA) {
			break
		}
	}
	p.expect(closing)
}
