package parser

import (
	"github.com/funvibe/typeassist/internal/diagnostics"
	"github.com/funvibe/typeassist/internal/lexer"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/token"
)

// Parser builds a lossless syntax tree from a token stream. It never fails:
// unexpected input is wrapped in ERROR nodes and reported in Errors.
type Parser struct {
	tokens  []token.Token
	pos     int // index of the next unconsumed token, trivia included
	builder *syntax.Builder

	Errors []*diagnostics.DiagnosticError
}

func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != syntax.EOF {
		offset := 0
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			offset = last.Offset + len(last.Text)
		}
		tokens = append(tokens, token.Token{Kind: syntax.EOF, Offset: offset})
	}
	return &Parser{tokens: tokens, builder: syntax.NewBuilder()}
}

// Parse lexes and parses src in one go.
func Parse(src string) (*syntax.Node, []*diagnostics.DiagnosticError) {
	l := lexer.New(src)
	tokens := l.Tokenize()
	p := New(tokens)
	root := p.ParseSourceFile()
	errs := append(l.Errors, p.Errors...)
	return root, errs
}

func (p *Parser) ParseSourceFile() *syntax.Node {
	p.builder.StartNode(syntax.SOURCE_FILE)
	for !p.at(syntax.EOF) {
		p.parseItem()
	}
	p.flushTrivia()
	p.builder.FinishNode()
	return p.builder.Finish()
}

// nthIndex returns the index of the n-th significant token at or after pos.
func (p *Parser) nthIndex(n int) int {
	i := p.pos
	for {
		for i < len(p.tokens)-1 && p.tokens[i].Kind.IsTrivia() {
			i++
		}
		if n == 0 || i >= len(p.tokens)-1 {
			return i
		}
		n--
		i++
	}
}

func (p *Parser) current() token.Token {
	return p.tokens[p.nthIndex(0)]
}

func (p *Parser) nth(n int) syntax.Kind {
	return p.tokens[p.nthIndex(n)].Kind
}

func (p *Parser) at(kind syntax.Kind) bool {
	return p.nth(0) == kind
}

func (p *Parser) atAny(kinds ...syntax.Kind) bool {
	cur := p.nth(0)
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

func (p *Parser) flushTrivia() {
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind.IsTrivia() {
		tok := p.tokens[p.pos]
		p.builder.Token(tok.Kind, tok.Text)
		p.pos++
	}
}

// bump consumes the current significant token. EOF is never consumed.
func (p *Parser) bump() {
	p.flushTrivia()
	tok := p.tokens[p.pos]
	if tok.Kind == syntax.EOF {
		return
	}
	p.builder.Token(tok.Kind, tok.Text)
	p.pos++
}

func (p *Parser) startNode(kind syntax.Kind) {
	p.flushTrivia()
	p.builder.StartNode(kind)
}

func (p *Parser) checkpoint() syntax.Checkpoint {
	p.flushTrivia()
	return p.builder.Checkpoint()
}

func (p *Parser) startNodeAt(cp syntax.Checkpoint, kind syntax.Kind) {
	p.builder.StartNodeAt(cp, kind)
}

func (p *Parser) finishNode() {
	p.builder.FinishNode()
}

func (p *Parser) errorAt(code diagnostics.ErrorCode, format string, args ...interface{}) {
	p.Errors = append(p.Errors, diagnostics.NewError(code, p.current().Range(), format, args...))
}

// expect consumes a token of the given kind or records an error.
func (p *Parser) expect(kind syntax.Kind) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	p.errorAt(diagnostics.ErrP001, "expected %s, found %s", describe(kind), describe(p.nth(0)))
	return false
}

// bumpError wraps the current token in an ERROR node so that parsing makes
// progress on unexpected input.
func (p *Parser) bumpError() {
	if p.at(syntax.EOF) {
		return
	}
	p.startNode(syntax.ERROR)
	p.bump()
	p.finishNode()
}

func describe(kind syntax.Kind) string {
	switch kind {
	case syntax.COLON:
		return "':'"
	case syntax.SEMI:
		return "';'"
	case syntax.COMMA:
		return "','"
	case syntax.EQ:
		return "'='"
	case syntax.GT:
		return "'>'"
	case syntax.L_PAREN:
		return "'('"
	case syntax.R_PAREN:
		return "')'"
	case syntax.L_CURLY:
		return "'{'"
	case syntax.R_CURLY:
		return "'}'"
	case syntax.R_BRACK:
		return "']'"
	case syntax.IDENT:
		return "identifier"
	case syntax.EOF:
		return "end of file"
	}
	return kind.String()
}
