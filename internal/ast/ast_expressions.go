package ast

import (
	"github.com/funvibe/typeassist/internal/syntax"
)

// Expr is any expression node.
type Expr interface {
	AstNode
	exprNode()
}

func CastExpr(n *syntax.Node) (Expr, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind() {
	case syntax.LITERAL:
		return Literal{n}, true
	case syntax.PATH_EXPR:
		return PathExpr{n}, true
	case syntax.CALL_EXPR:
		return CallExpr{n}, true
	case syntax.METHOD_CALL_EXPR:
		return MethodCallExpr{n}, true
	case syntax.FIELD_EXPR:
		return FieldExpr{n}, true
	case syntax.INDEX_EXPR:
		return IndexExpr{n}, true
	case syntax.PAREN_EXPR:
		return ParenExpr{n}, true
	case syntax.TUPLE_EXPR:
		return TupleExpr{n}, true
	case syntax.ARRAY_EXPR:
		return ArrayExpr{n}, true
	case syntax.PREFIX_EXPR:
		return PrefixExpr{n}, true
	case syntax.REF_EXPR:
		return RefExpr{n}, true
	case syntax.BIN_EXPR:
		return BinExpr{n}, true
	case syntax.BLOCK_EXPR:
		return BlockExpr{n}, true
	case syntax.IF_EXPR:
		return IfExpr{n}, true
	case syntax.RETURN_EXPR:
		return ReturnExpr{n}, true
	case syntax.STRUCT_LIT:
		return StructLit{n}, true
	}
	return nil, false
}

func exprChildren(n *syntax.Node) []Expr {
	var out []Expr
	for _, child := range n.Children() {
		if expr, ok := CastExpr(child); ok {
			out = append(out, expr)
		}
	}
	return out
}

func firstExpr(n *syntax.Node) (Expr, bool) {
	exprs := exprChildren(n)
	if len(exprs) == 0 {
		return nil, false
	}
	return exprs[0], true
}

// firstSignificant returns the first non-trivia direct child token.
func firstSignificant(n *syntax.Node) *syntax.Token {
	toks := n.SignificantTokens()
	if len(toks) == 0 {
		return nil
	}
	return toks[0]
}

type Literal struct{ node *syntax.Node }

func (e Literal) Syntax() *syntax.Node { return e.node }
func (Literal) exprNode()              {}

func (e Literal) Token() *syntax.Token { return firstSignificant(e.node) }

type PathExpr struct{ node *syntax.Node }

func (e PathExpr) Syntax() *syntax.Node { return e.node }
func (PathExpr) exprNode()              {}

func (e PathExpr) Path() (Path, bool) { return childPath(e.node) }

type CallExpr struct{ node *syntax.Node }

func (e CallExpr) Syntax() *syntax.Node { return e.node }
func (CallExpr) exprNode()              {}

func (e CallExpr) Callee() (Expr, bool) { return firstExpr(e.node) }

func (e CallExpr) Args() []Expr { return argList(e.node) }

type MethodCallExpr struct{ node *syntax.Node }

func (e MethodCallExpr) Syntax() *syntax.Node { return e.node }
func (MethodCallExpr) exprNode()              {}

func (e MethodCallExpr) Receiver() (Expr, bool) { return firstExpr(e.node) }

func (e MethodCallExpr) Method() string {
	if ref, ok := childNameRef(e.node); ok {
		return ref.Text()
	}
	return ""
}

func (e MethodCallExpr) Args() []Expr { return argList(e.node) }

func argList(n *syntax.Node) []Expr {
	list := n.FirstChild(syntax.ARG_LIST)
	if list == nil {
		return nil
	}
	return exprChildren(list)
}

// FieldExpr is `recv.name` or `recv.0`. A chained tuple index like `t.0.1`
// lexes its index as one float token; Field returns it verbatim.
type FieldExpr struct{ node *syntax.Node }

func (e FieldExpr) Syntax() *syntax.Node { return e.node }
func (FieldExpr) exprNode()              {}

func (e FieldExpr) Receiver() (Expr, bool) { return firstExpr(e.node) }

func (e FieldExpr) Field() string {
	if ref, ok := childNameRef(e.node); ok {
		return ref.Text()
	}
	return ""
}

type IndexExpr struct{ node *syntax.Node }

func (e IndexExpr) Syntax() *syntax.Node { return e.node }
func (IndexExpr) exprNode()              {}

func (e IndexExpr) Base() (Expr, bool) { return firstExpr(e.node) }

func (e IndexExpr) Index() (Expr, bool) {
	exprs := exprChildren(e.node)
	if len(exprs) < 2 {
		return nil, false
	}
	return exprs[1], true
}

type ParenExpr struct{ node *syntax.Node }

func (e ParenExpr) Syntax() *syntax.Node { return e.node }
func (ParenExpr) exprNode()              {}

func (e ParenExpr) Inner() (Expr, bool) { return firstExpr(e.node) }

type TupleExpr struct{ node *syntax.Node }

func (e TupleExpr) Syntax() *syntax.Node { return e.node }
func (TupleExpr) exprNode()              {}

func (e TupleExpr) Fields() []Expr { return exprChildren(e.node) }

// ArrayExpr is `[a, b]` or the repeat form `[value; count]`.
type ArrayExpr struct{ node *syntax.Node }

func (e ArrayExpr) Syntax() *syntax.Node { return e.node }
func (ArrayExpr) exprNode()              {}

func (e ArrayExpr) IsRepeat() bool { return e.node.HasToken(syntax.SEMI) }

func (e ArrayExpr) Elements() []Expr { return exprChildren(e.node) }

type PrefixExpr struct{ node *syntax.Node }

func (e PrefixExpr) Syntax() *syntax.Node { return e.node }
func (PrefixExpr) exprNode()              {}

func (e PrefixExpr) Op() syntax.Kind {
	if tok := firstSignificant(e.node); tok != nil {
		return tok.Kind()
	}
	return syntax.TOMBSTONE
}

func (e PrefixExpr) Operand() (Expr, bool) { return firstExpr(e.node) }

type RefExpr struct{ node *syntax.Node }

func (e RefExpr) Syntax() *syntax.Node { return e.node }
func (RefExpr) exprNode()              {}

func (e RefExpr) IsMut() bool { return e.node.HasToken(syntax.MUT_KW) }

func (e RefExpr) Operand() (Expr, bool) { return firstExpr(e.node) }

type BinExpr struct{ node *syntax.Node }

func (e BinExpr) Syntax() *syntax.Node { return e.node }
func (BinExpr) exprNode()              {}

func (e BinExpr) Op() syntax.Kind {
	if tok := firstSignificant(e.node); tok != nil {
		return tok.Kind()
	}
	return syntax.TOMBSTONE
}

func (e BinExpr) Lhs() (Expr, bool) { return firstExpr(e.node) }

func (e BinExpr) Rhs() (Expr, bool) {
	exprs := exprChildren(e.node)
	if len(exprs) < 2 {
		return nil, false
	}
	return exprs[1], true
}

type BlockExpr struct{ node *syntax.Node }

func (e BlockExpr) Syntax() *syntax.Node { return e.node }
func (BlockExpr) exprNode()              {}

func (e BlockExpr) Block() (Block, bool) { return CastBlock(e.node.FirstChild(syntax.BLOCK)) }

// IfExpr is `if cond { .. } else ..`; the else branch is a BlockExpr or a
// nested IfExpr.
type IfExpr struct{ node *syntax.Node }

func (e IfExpr) Syntax() *syntax.Node { return e.node }
func (IfExpr) exprNode()              {}

func (e IfExpr) Condition() (Expr, bool) { return firstExpr(e.node) }

func (e IfExpr) Then() (BlockExpr, bool) {
	exprs := exprChildren(e.node)
	if len(exprs) < 2 {
		return BlockExpr{}, false
	}
	block, ok := exprs[1].(BlockExpr)
	return block, ok
}

func (e IfExpr) Else() (Expr, bool) {
	exprs := exprChildren(e.node)
	if len(exprs) < 3 {
		return nil, false
	}
	return exprs[2], true
}

type ReturnExpr struct{ node *syntax.Node }

func (e ReturnExpr) Syntax() *syntax.Node { return e.node }
func (ReturnExpr) exprNode()              {}

func (e ReturnExpr) Value() (Expr, bool) { return firstExpr(e.node) }

type StructLit struct{ node *syntax.Node }

func (e StructLit) Syntax() *syntax.Node { return e.node }
func (StructLit) exprNode()              {}

func (e StructLit) Path() (Path, bool) { return childPath(e.node) }

func (e StructLit) Fields() []StructLitField {
	list := e.node.FirstChild(syntax.STRUCT_LIT_FIELD_LIST)
	if list == nil {
		return nil
	}
	var out []StructLitField
	for _, child := range list.Children() {
		if child.Kind() == syntax.STRUCT_LIT_FIELD {
			out = append(out, StructLitField{child})
		}
	}
	return out
}

// StructLitField is `name: expr` or the shorthand `name`.
type StructLitField struct{ node *syntax.Node }

func (f StructLitField) Syntax() *syntax.Node { return f.node }

func (f StructLitField) Name() string {
	if ref, ok := childNameRef(f.node); ok {
		return ref.Text()
	}
	return ""
}

func (f StructLitField) Expr() (Expr, bool) { return firstExpr(f.node) }
