package ast

import (
	"github.com/funvibe/typeassist/internal/syntax"
)

// Pat is the closed set of pattern shapes. Code that inspects a Pat should
// switch over every variant below so that adding a shape shows up at each
// consumer.
type Pat interface {
	AstNode
	patNode()
}

func CastPat(n *syntax.Node) (Pat, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind() {
	case syntax.BIND_PAT:
		return BindPat{n}, true
	case syntax.TUPLE_PAT:
		return TuplePat{n}, true
	case syntax.TUPLE_STRUCT_PAT:
		return TupleStructPat{n}, true
	case syntax.STRUCT_PAT:
		return StructPat{n}, true
	case syntax.PLACEHOLDER_PAT:
		return PlaceholderPat{n}, true
	case syntax.REF_PAT:
		return RefPat{n}, true
	case syntax.LITERAL_PAT:
		return LiteralPat{n}, true
	}
	return nil, false
}

func firstPat(n *syntax.Node) (Pat, bool) {
	for _, child := range n.Children() {
		if pat, ok := CastPat(child); ok {
			return pat, true
		}
	}
	return nil, false
}

func patChildren(n *syntax.Node) []Pat {
	var out []Pat
	for _, child := range n.Children() {
		if pat, ok := CastPat(child); ok {
			out = append(out, pat)
		}
	}
	return out
}

// BindPat is `ref? mut? name (@ pat)?`.
type BindPat struct{ node *syntax.Node }

func (p BindPat) Syntax() *syntax.Node { return p.node }
func (BindPat) patNode()               {}

func (p BindPat) Name() (Name, bool) { return childName(p.node) }

func (p BindPat) IsMut() bool { return p.node.HasToken(syntax.MUT_KW) }

func (p BindPat) IsRef() bool { return p.node.HasToken(syntax.REF_KW) }

// SubPat is the pattern after `@`.
func (p BindPat) SubPat() (Pat, bool) { return firstPat(p.node) }

// TuplePat is `(a, b, ..)`.
type TuplePat struct{ node *syntax.Node }

func (p TuplePat) Syntax() *syntax.Node { return p.node }
func (TuplePat) patNode()               {}

func (p TuplePat) Fields() []Pat { return patChildren(p.node) }

// TupleStructPat is `Path(a, b)`, or a bare path such as `Ordering::Less`.
type TupleStructPat struct{ node *syntax.Node }

func (p TupleStructPat) Syntax() *syntax.Node { return p.node }
func (TupleStructPat) patNode()               {}

func (p TupleStructPat) Path() (Path, bool) { return childPath(p.node) }

func (p TupleStructPat) Fields() []Pat { return patChildren(p.node) }

// StructPat is `Path { field: pat, shorthand }`.
type StructPat struct{ node *syntax.Node }

func (p StructPat) Syntax() *syntax.Node { return p.node }
func (StructPat) patNode()               {}

func (p StructPat) Path() (Path, bool) { return childPath(p.node) }

func (p StructPat) Fields() []FieldPat {
	var out []FieldPat
	for _, child := range p.node.Children() {
		if child.Kind() == syntax.FIELD_PAT {
			out = append(out, FieldPat{child})
		}
	}
	return out
}

type FieldPat struct{ node *syntax.Node }

func (f FieldPat) Syntax() *syntax.Node { return f.node }

// FieldName is the explicit field name, or the bound name for shorthand
// fields.
func (f FieldPat) FieldName() string {
	if ref, ok := childNameRef(f.node); ok {
		return ref.Text()
	}
	if pat, ok := f.Pat(); ok {
		if bind, ok := pat.(BindPat); ok {
			if name, ok := bind.Name(); ok {
				return name.Text()
			}
		}
	}
	return ""
}

func (f FieldPat) Pat() (Pat, bool) { return firstPat(f.node) }

// PlaceholderPat is `_`.
type PlaceholderPat struct{ node *syntax.Node }

func (p PlaceholderPat) Syntax() *syntax.Node { return p.node }
func (PlaceholderPat) patNode()               {}

// RefPat is `&pat` or `&mut pat`.
type RefPat struct{ node *syntax.Node }

func (p RefPat) Syntax() *syntax.Node { return p.node }
func (RefPat) patNode()               {}

func (p RefPat) Pat() (Pat, bool) { return firstPat(p.node) }

// LiteralPat is a literal used as a refutable pattern.
type LiteralPat struct{ node *syntax.Node }

func (p LiteralPat) Syntax() *syntax.Node { return p.node }
func (LiteralPat) patNode()               {}
