package ast

import (
	"github.com/funvibe/typeassist/internal/syntax"
)

// TypeRef is a type as written in source.
type TypeRef interface {
	AstNode
	typeRefNode()
}

func CastTypeRef(n *syntax.Node) (TypeRef, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind() {
	case syntax.PATH_TYPE:
		return PathType{n}, true
	case syntax.TUPLE_TYPE:
		return TupleType{n}, true
	case syntax.REF_TYPE:
		return RefType{n}, true
	case syntax.SLICE_TYPE:
		return SliceType{n}, true
	case syntax.ARRAY_TYPE:
		return ArrayType{n}, true
	case syntax.NEVER_TYPE:
		return NeverType{n}, true
	case syntax.PLACEHOLDER_TYPE:
		return PlaceholderType{n}, true
	}
	return nil, false
}

func firstType(n *syntax.Node) (TypeRef, bool) {
	for _, child := range n.Children() {
		if t, ok := CastTypeRef(child); ok {
			return t, true
		}
	}
	return nil, false
}

func typeChildren(n *syntax.Node) []TypeRef {
	var out []TypeRef
	for _, child := range n.Children() {
		if t, ok := CastTypeRef(child); ok {
			out = append(out, t)
		}
	}
	return out
}

type PathType struct{ node *syntax.Node }

func (t PathType) Syntax() *syntax.Node { return t.node }
func (PathType) typeRefNode()           {}

func (t PathType) Path() (Path, bool) { return childPath(t.node) }

type TupleType struct{ node *syntax.Node }

func (t TupleType) Syntax() *syntax.Node { return t.node }
func (TupleType) typeRefNode()           {}

func (t TupleType) Fields() []TypeRef { return typeChildren(t.node) }

// IsParenthesized reports `(T)` without a trailing comma, which is just T.
func (t TupleType) IsParenthesized() bool {
	return len(t.Fields()) == 1 && !t.node.HasToken(syntax.COMMA)
}

type RefType struct{ node *syntax.Node }

func (t RefType) Syntax() *syntax.Node { return t.node }
func (RefType) typeRefNode()           {}

func (t RefType) IsMut() bool { return t.node.HasToken(syntax.MUT_KW) }

func (t RefType) Inner() (TypeRef, bool) { return firstType(t.node) }

type SliceType struct{ node *syntax.Node }

func (t SliceType) Syntax() *syntax.Node { return t.node }
func (SliceType) typeRefNode()           {}

func (t SliceType) Elem() (TypeRef, bool) { return firstType(t.node) }

type ArrayType struct{ node *syntax.Node }

func (t ArrayType) Syntax() *syntax.Node { return t.node }
func (ArrayType) typeRefNode()           {}

func (t ArrayType) Elem() (TypeRef, bool) { return firstType(t.node) }

// Len is the length expression after `;`.
func (t ArrayType) Len() (Expr, bool) {
	for _, child := range t.node.Children() {
		if expr, ok := CastExpr(child); ok {
			return expr, true
		}
	}
	return nil, false
}

type NeverType struct{ node *syntax.Node }

func (t NeverType) Syntax() *syntax.Node { return t.node }
func (NeverType) typeRefNode()           {}

type PlaceholderType struct{ node *syntax.Node }

func (t PlaceholderType) Syntax() *syntax.Node { return t.node }
func (PlaceholderType) typeRefNode()           {}
