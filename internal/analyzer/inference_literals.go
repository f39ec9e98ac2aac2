package analyzer

import (
	"strings"

	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/token"
	"github.com/funvibe/typeassist/internal/typesystem"
)

func (w *walker) inferLiteral(lit ast.Literal, expected typesystem.Type) typesystem.Type {
	tok := lit.Token()
	if tok == nil {
		return typesystem.Unknown()
	}
	switch tok.Kind() {
	case syntax.TRUE_KW, syntax.FALSE_KW:
		return typesystem.Simple(typesystem.Bool{})
	case syntax.CHAR:
		return typesystem.Simple(typesystem.Char{})
	case syntax.STRING:
		return typesystem.RefTo(typesystem.Simple(typesystem.Str{}), false)
	case syntax.INT_NUMBER:
		_, suffix := splitNumberSuffix(tok.Text())
		if suffix != "" {
			t, _ := typesystem.PrimitiveByName(suffix)
			return t
		}
		return w.a.literalType(expected, false)
	case syntax.FLOAT_NUMBER:
		_, suffix := splitNumberSuffix(tok.Text())
		if suffix != "" {
			t, _ := typesystem.PrimitiveByName(suffix)
			return t
		}
		return w.a.literalType(expected, true)
	}
	return typesystem.Unknown()
}

// splitNumberSuffix separates a type suffix such as `u8` or `f32` from a
// numeric literal. Hex literals never carry a float suffix since `f` is a
// digit there.
func splitNumberSuffix(text string) (digits, suffix string) {
	hex := strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X")
	for _, s := range token.IntSuffixes {
		if strings.HasSuffix(text, s) && len(text) > len(s) {
			return strings.TrimSuffix(strings.TrimSuffix(text, s), "_"), s
		}
	}
	if !hex {
		for _, s := range token.FloatSuffixes {
			if strings.HasSuffix(text, s) && len(text) > len(s) {
				return strings.TrimSuffix(strings.TrimSuffix(text, s), "_"), s
			}
		}
	}
	return text, ""
}

func stripUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", "")
}

// isUntypedLiteral reports whether expr is a numeric literal without a
// suffix, possibly negated or parenthesized. Such a literal takes its type
// from the other operand of a binary expression.
func isUntypedLiteral(expr ast.Expr) bool {
	switch e := expr.(type) {
	case ast.Literal:
		tok := e.Token()
		if tok == nil {
			return false
		}
		if tok.Kind() != syntax.INT_NUMBER && tok.Kind() != syntax.FLOAT_NUMBER {
			return false
		}
		_, suffix := splitNumberSuffix(tok.Text())
		return suffix == ""
	case ast.PrefixExpr:
		if e.Op() != syntax.MINUS {
			return false
		}
		operand, ok := e.Operand()
		return ok && isUntypedLiteral(operand)
	case ast.ParenExpr:
		inner, ok := e.Inner()
		return ok && isUntypedLiteral(inner)
	}
	return false
}
