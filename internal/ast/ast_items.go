package ast

import (
	"github.com/funvibe/typeassist/internal/syntax"
)

type SourceFile struct{ node *syntax.Node }

func CastSourceFile(n *syntax.Node) (SourceFile, bool) {
	if n == nil || n.Kind() != syntax.SOURCE_FILE {
		return SourceFile{}, false
	}
	return SourceFile{n}, true
}

func (f SourceFile) Syntax() *syntax.Node { return f.node }

func (f SourceFile) Functions() []FnDef {
	var out []FnDef
	for _, child := range f.node.Children() {
		if fn, ok := CastFnDef(child); ok {
			out = append(out, fn)
		}
	}
	return out
}

func (f SourceFile) Structs() []StructDef {
	var out []StructDef
	for _, child := range f.node.Children() {
		if st, ok := CastStructDef(child); ok {
			out = append(out, st)
		}
	}
	return out
}

type FnDef struct{ node *syntax.Node }

func CastFnDef(n *syntax.Node) (FnDef, bool) {
	if n == nil || n.Kind() != syntax.FN_DEF {
		return FnDef{}, false
	}
	return FnDef{n}, true
}

func (f FnDef) Syntax() *syntax.Node { return f.node }

func (f FnDef) Name() (Name, bool) { return childName(f.node) }

func (f FnDef) GenericParams() []string {
	return genericParamNames(f.node)
}

func (f FnDef) Params() []Param {
	list := f.node.FirstChild(syntax.PARAM_LIST)
	if list == nil {
		return nil
	}
	var out []Param
	for _, child := range list.Children() {
		if child.Kind() == syntax.PARAM {
			out = append(out, Param{child})
		}
	}
	return out
}

// RetType is the declared return type; absent means unit.
func (f FnDef) RetType() (TypeRef, bool) {
	ret := f.node.FirstChild(syntax.RET_TYPE)
	if ret == nil {
		return nil, false
	}
	return firstType(ret)
}

func (f FnDef) Body() (Block, bool) {
	return CastBlock(f.node.FirstChild(syntax.BLOCK))
}

type Param struct{ node *syntax.Node }

func (p Param) Syntax() *syntax.Node { return p.node }

func (p Param) Pat() (Pat, bool) { return firstPat(p.node) }

func (p Param) Type() (TypeRef, bool) { return firstType(p.node) }

type StructDef struct{ node *syntax.Node }

func CastStructDef(n *syntax.Node) (StructDef, bool) {
	if n == nil || n.Kind() != syntax.STRUCT_DEF {
		return StructDef{}, false
	}
	return StructDef{n}, true
}

func (s StructDef) Syntax() *syntax.Node { return s.node }

func (s StructDef) Name() (Name, bool) { return childName(s.node) }

func (s StructDef) GenericParams() []string {
	return genericParamNames(s.node)
}

func (s StructDef) Fields() []Field {
	list := s.node.FirstChild(syntax.FIELD_LIST)
	if list == nil {
		return nil
	}
	var out []Field
	for _, child := range list.Children() {
		if child.Kind() == syntax.FIELD {
			out = append(out, Field{child})
		}
	}
	return out
}

type Field struct{ node *syntax.Node }

func (f Field) Syntax() *syntax.Node { return f.node }

func (f Field) Name() (Name, bool) { return childName(f.node) }

func (f Field) Type() (TypeRef, bool) { return firstType(f.node) }

func genericParamNames(n *syntax.Node) []string {
	list := n.FirstChild(syntax.GENERIC_PARAM_LIST)
	if list == nil {
		return nil
	}
	var out []string
	for _, child := range list.Children() {
		if child.Kind() != syntax.GENERIC_PARAM {
			continue
		}
		if name, ok := childName(child); ok {
			out = append(out, name.Text())
		}
	}
	return out
}

// Block is a { ... } sequence of statements with an optional tail
// expression.
type Block struct{ node *syntax.Node }

func CastBlock(n *syntax.Node) (Block, bool) {
	if n == nil || n.Kind() != syntax.BLOCK {
		return Block{}, false
	}
	return Block{n}, true
}

func (b Block) Syntax() *syntax.Node { return b.node }

// Statements returns the let and expression statements in order. Nested
// items are skipped.
func (b Block) Statements() []Stmt {
	var out []Stmt
	for _, child := range b.node.Children() {
		if stmt, ok := CastStmt(child); ok {
			out = append(out, stmt)
		}
	}
	return out
}

// TailExpr is the trailing expression without a semicolon.
func (b Block) TailExpr() (Expr, bool) {
	children := b.node.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if expr, ok := CastExpr(children[i]); ok {
			return expr, true
		}
		if children[i].Kind() != syntax.ERROR {
			break
		}
	}
	return nil, false
}
