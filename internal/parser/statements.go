package parser

import (
	"github.com/funvibe/typeassist/internal/diagnostics"
	"github.com/funvibe/typeassist/internal/syntax"
)

func (p *Parser) parseItem() {
	switch p.nth(0) {
	case syntax.FN_KW:
		p.parseFnDef()
	case syntax.STRUCT_KW:
		p.parseStructDef()
	case syntax.SEMI:
		p.bump()
	default:
		p.errorAt(diagnostics.ErrP002, "expected an item, found %s", describe(p.nth(0)))
		p.bumpError()
	}
}

// fn name<T, U>(a: T, b: U) -> Ret { ... }
func (p *Parser) parseFnDef() {
	p.startNode(syntax.FN_DEF)
	p.bump() // fn
	p.parseName()
	if p.at(syntax.LT) {
		p.parseGenericParamList()
	}
	p.parseParamList()
	if p.at(syntax.THIN_ARROW) {
		p.startNode(syntax.RET_TYPE)
		p.bump()
		p.parseType()
		p.finishNode()
	}
	if p.at(syntax.L_CURLY) {
		p.parseBlock()
	} else {
		p.expect(syntax.L_CURLY)
	}
	p.finishNode()
}

// struct Name<T> { field: Type, ... } or struct Name;
func (p *Parser) parseStructDef() {
	p.startNode(syntax.STRUCT_DEF)
	p.bump() // struct
	p.parseName()
	if p.at(syntax.LT) {
		p.parseGenericParamList()
	}
	if p.at(syntax.L_CURLY) {
		p.parseFieldList()
	} else {
		p.expect(syntax.SEMI)
	}
	p.finishNode()
}

func (p *Parser) parseName() {
	if !p.at(syntax.IDENT) {
		p.errorAt(diagnostics.ErrP006, "expected a name, found %s", describe(p.nth(0)))
		return
	}
	p.startNode(syntax.NAME)
	p.bump()
	p.finishNode()
}

func (p *Parser) parseNameRef() {
	if !p.at(syntax.IDENT) {
		p.errorAt(diagnostics.ErrP006, "expected a name, found %s", describe(p.nth(0)))
		return
	}
	p.startNode(syntax.NAME_REF)
	p.bump()
	p.finishNode()
}

func (p *Parser) parseGenericParamList() {
	p.startNode(syntax.GENERIC_PARAM_LIST)
	p.bump() // <
	for !p.atAny(syntax.GT, syntax.EOF) {
		if !p.at(syntax.IDENT) {
			p.errorAt(diagnostics.ErrP006, "expected a generic parameter, found %s", describe(p.nth(0)))
			break
		}
		p.startNode(syntax.GENERIC_PARAM)
		p.parseName()
		p.finishNode()
		if !p.at(syntax.GT) && !p.expect(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.GT)
	p.finishNode()
}

func (p *Parser) parseParamList() {
	p.startNode(syntax.PARAM_LIST)
	if !p.expect(syntax.L_PAREN) {
		p.finishNode()
		return
	}
	for !p.atAny(syntax.R_PAREN, syntax.EOF, syntax.L_CURLY) {
		p.startNode(syntax.PARAM)
		p.parsePattern()
		p.expect(syntax.COLON)
		p.parseType()
		p.finishNode()
		if !p.at(syntax.R_PAREN) && !p.expect(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.R_PAREN)
	p.finishNode()
}

func (p *Parser) parseFieldList() {
	p.startNode(syntax.FIELD_LIST)
	p.bump() // {
	for !p.atAny(syntax.R_CURLY, syntax.EOF) {
		if !p.at(syntax.IDENT) {
			p.errorAt(diagnostics.ErrP006, "expected a field name, found %s", describe(p.nth(0)))
			p.bumpError()
			continue
		}
		p.startNode(syntax.FIELD)
		p.parseName()
		p.expect(syntax.COLON)
		p.parseType()
		p.finishNode()
		if !p.at(syntax.R_CURLY) && !p.expect(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.R_CURLY)
	p.finishNode()
}

func (p *Parser) parseBlock() {
	p.startNode(syntax.BLOCK)
	p.expect(syntax.L_CURLY)
	for !p.atAny(syntax.R_CURLY, syntax.EOF) {
		before := p.pos
		p.parseStmt()
		if p.pos == before {
			p.bumpError()
		}
	}
	p.expect(syntax.R_CURLY)
	p.finishNode()
}

func (p *Parser) parseStmt() {
	switch p.nth(0) {
	case syntax.SEMI:
		p.bump()
		return
	case syntax.LET_KW:
		p.parseLetStmt()
		return
	case syntax.FN_KW, syntax.STRUCT_KW:
		p.parseItem()
		return
	}

	cp := p.checkpoint()
	kind := p.parseExpr()
	if kind == syntax.TOMBSTONE {
		return
	}
	switch {
	case p.at(syntax.SEMI):
		p.startNodeAt(cp, syntax.EXPR_STMT)
		p.bump()
		p.finishNode()
	case p.at(syntax.R_CURLY):
		// Tail expression of the block.
	case kind == syntax.BLOCK_EXPR || kind == syntax.IF_EXPR:
		p.startNodeAt(cp, syntax.EXPR_STMT)
		p.finishNode()
	default:
		p.errorAt(diagnostics.ErrP001, "expected ';', found %s", describe(p.nth(0)))
		p.startNodeAt(cp, syntax.EXPR_STMT)
		p.finishNode()
	}
}

// let pat (: Type)? (= expr)? ;
func (p *Parser) parseLetStmt() {
	p.startNode(syntax.LET_STMT)
	p.bump() // let
	p.parsePattern()
	if p.at(syntax.COLON) {
		p.bump()
		p.parseType()
	}
	if p.at(syntax.EQ) {
		p.bump()
		p.parseExpr()
	}
	p.expect(syntax.SEMI)
	p.finishNode()
}
