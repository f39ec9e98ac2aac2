package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/typeassist/internal/diagnostics"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/token"
)

// Lexer splits source text into tokens without dropping anything: trivia
// and malformed input come out as WHITESPACE, COMMENT and ERROR_TOKEN.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination

	Errors []*diagnostics.DiagnosticError
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	l.position = l.readPosition
	if l.readPosition >= len(l.input) {
		l.ch = 0
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.readPosition += w
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// Tokenize lexes the whole input. The final token is always EOF.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == syntax.EOF {
			return tokens
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	start := l.position
	if l.atEOF() {
		return token.Token{Kind: syntax.EOF, Offset: start}
	}

	var kind syntax.Kind
	switch ch := l.ch; {
	case isWhitespace(ch):
		for !l.atEOF() && isWhitespace(l.ch) {
			l.readChar()
		}
		kind = syntax.WHITESPACE
	case ch == '/' && l.peekChar() == '/':
		for !l.atEOF() && l.ch != '\n' {
			l.readChar()
		}
		kind = syntax.COMMENT
	case ch == '/' && l.peekChar() == '*':
		l.readBlockComment(start)
		kind = syntax.COMMENT
	case isIdentStart(ch):
		for !l.atEOF() && isIdentContinue(l.ch) {
			l.readChar()
		}
		kind = token.LookupIdent(l.input[start:l.position])
	case isDigit(ch):
		kind = l.readNumber()
	case ch == '"':
		l.readQuoted('"', start)
		kind = syntax.STRING
	case ch == '\'':
		l.readQuoted('\'', start)
		kind = syntax.CHAR
	default:
		kind = l.readPunct(start)
	}

	return token.Token{Kind: kind, Text: l.input[start:l.position], Offset: start}
}

func (l *Lexer) readBlockComment(start int) {
	l.readChar() // /
	l.readChar() // *
	depth := 1
	for !l.atEOF() && depth > 0 {
		switch {
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			depth++
		case l.ch == '*' && l.peekChar() == '/':
			l.readChar()
			depth--
		}
		l.readChar()
	}
	if depth > 0 {
		l.Errors = append(l.Errors, diagnostics.NewError(diagnostics.ErrL003,
			syntax.TextRange{Start: start, End: l.position}, "unterminated block comment"))
	}
}

func (l *Lexer) readQuoted(quote rune, start int) {
	l.readChar() // opening quote
	escaped := false
	for !l.atEOF() {
		ch := l.ch
		l.readChar()
		switch {
		case escaped:
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == quote:
			return
		}
	}
	l.Errors = append(l.Errors, diagnostics.NewError(diagnostics.ErrL002,
		syntax.TextRange{Start: start, End: l.position}, "unterminated literal"))
}

// readNumber consumes an integer or float literal including a type suffix
// such as 1u8 or 2.5f32. A dot only continues the number when a digit
// follows it, so `t.0.1` and `1..2` keep their dots.
func (l *Lexer) readNumber() syntax.Kind {
	kind := syntax.INT_NUMBER
	l.readDigits()
	if l.ch == '.' && isDigit(l.peekChar()) {
		kind = syntax.FLOAT_NUMBER
		l.readChar()
		l.readDigits()
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || next == '+' || next == '-' {
			kind = syntax.FLOAT_NUMBER
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			l.readDigits()
		}
	}

	rest := l.input[l.position:]
	for _, suffix := range token.FloatSuffixes {
		if strings.HasPrefix(rest, suffix) && !continuesIdent(rest[len(suffix):]) {
			l.advance(len(suffix))
			return syntax.FLOAT_NUMBER
		}
	}
	if kind == syntax.INT_NUMBER {
		for _, suffix := range token.IntSuffixes {
			if strings.HasPrefix(rest, suffix) && !continuesIdent(rest[len(suffix):]) {
				l.advance(len(suffix))
				break
			}
		}
	}
	return kind
}

func (l *Lexer) readDigits() {
	for !l.atEOF() && (isDigit(l.ch) || l.ch == '_') {
		l.readChar()
	}
}

func (l *Lexer) advance(n int) {
	target := l.position + n
	for l.position < target && !l.atEOF() {
		l.readChar()
	}
}

func (l *Lexer) readPunct(start int) syntax.Kind {
	ch := l.ch
	next := l.peekChar()
	two := func(kind syntax.Kind) syntax.Kind {
		l.readChar()
		l.readChar()
		return kind
	}
	switch ch {
	case ':':
		if next == ':' {
			return two(syntax.COLONCOLON)
		}
	case '=':
		if next == '=' {
			return two(syntax.EQEQ)
		}
	case '!':
		if next == '=' {
			return two(syntax.NEQ)
		}
	case '<':
		if next == '=' {
			return two(syntax.LTEQ)
		}
	case '>':
		if next == '=' {
			return two(syntax.GTEQ)
		}
	case '&':
		if next == '&' {
			return two(syntax.AMPAMP)
		}
	case '|':
		if next == '|' {
			return two(syntax.PIPEPIPE)
		}
	case '-':
		if next == '>' {
			return two(syntax.THIN_ARROW)
		}
	}

	l.readChar()
	switch ch {
	case ':':
		return syntax.COLON
	case ';':
		return syntax.SEMI
	case ',':
		return syntax.COMMA
	case '=':
		return syntax.EQ
	case '<':
		return syntax.LT
	case '>':
		return syntax.GT
	case '+':
		return syntax.PLUS
	case '-':
		return syntax.MINUS
	case '*':
		return syntax.STAR
	case '/':
		return syntax.SLASH
	case '%':
		return syntax.PERCENT
	case '!':
		return syntax.BANG
	case '&':
		return syntax.AMP
	case '|':
		return syntax.PIPE
	case '^':
		return syntax.CARET
	case '(':
		return syntax.L_PAREN
	case ')':
		return syntax.R_PAREN
	case '{':
		return syntax.L_CURLY
	case '}':
		return syntax.R_CURLY
	case '[':
		return syntax.L_BRACK
	case ']':
		return syntax.R_BRACK
	case '.':
		return syntax.DOT
	case '@':
		return syntax.AT
	}

	l.Errors = append(l.Errors, diagnostics.NewError(diagnostics.ErrL001,
		syntax.TextRange{Start: start, End: l.position}, "unexpected character %q", ch))
	return syntax.ERROR_TOKEN
}

func continuesIdent(rest string) bool {
	if rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return isIdentContinue(r)
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentContinue(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
