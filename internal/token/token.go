package token

import (
	"fmt"

	"github.com/funvibe/typeassist/internal/syntax"
)

// Token is a single lexeme with its byte offset in the source.
type Token struct {
	Kind   syntax.Kind
	Text   string
	Offset int
}

func (t Token) Range() syntax.TextRange {
	return syntax.TextRange{Start: t.Offset, End: t.Offset + len(t.Text)}
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @%d", t.Kind, t.Text, t.Offset)
}

var keywords = map[string]syntax.Kind{
	"fn":     syntax.FN_KW,
	"let":    syntax.LET_KW,
	"mut":    syntax.MUT_KW,
	"ref":    syntax.REF_KW,
	"struct": syntax.STRUCT_KW,
	"if":     syntax.IF_KW,
	"else":   syntax.ELSE_KW,
	"true":   syntax.TRUE_KW,
	"false":  syntax.FALSE_KW,
	"return": syntax.RETURN_KW,
	"_":      syntax.UNDERSCORE,
}

// LookupIdent classifies an identifier-shaped word as a keyword or IDENT.
func LookupIdent(word string) syntax.Kind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return syntax.IDENT
}

// IntSuffixes are the integer literal suffixes the lexer keeps attached to
// a number, longest first so that "usize" is not read as "u" + "size".
var IntSuffixes = []string{"isize", "usize", "i128", "u128", "i16", "i32", "i64", "u16", "u32", "u64", "i8", "u8"}

var FloatSuffixes = []string{"f32", "f64"}
