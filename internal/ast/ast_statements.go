package ast

import (
	"github.com/funvibe/typeassist/internal/syntax"
)

// Stmt is either a LetStmt or an ExprStmt.
type Stmt interface {
	AstNode
	stmtNode()
}

func CastStmt(n *syntax.Node) (Stmt, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind() {
	case syntax.LET_STMT:
		return LetStmt{n}, true
	case syntax.EXPR_STMT:
		return ExprStmt{n}, true
	}
	return nil, false
}

// LetStmt is `let pat (: Type)? (= init)?;`.
type LetStmt struct{ node *syntax.Node }

func CastLetStmt(n *syntax.Node) (LetStmt, bool) {
	if n == nil || n.Kind() != syntax.LET_STMT {
		return LetStmt{}, false
	}
	return LetStmt{n}, true
}

func (s LetStmt) Syntax() *syntax.Node { return s.node }
func (LetStmt) stmtNode()              {}

func (s LetStmt) Pat() (Pat, bool) { return firstPat(s.node) }

// Type is the written type annotation.
func (s LetStmt) Type() (TypeRef, bool) { return firstType(s.node) }

// Initializer is the expression after `=`.
func (s LetStmt) Initializer() (Expr, bool) {
	seenEq := false
	for _, child := range s.node.ChildrenWithTokens() {
		switch c := child.(type) {
		case *syntax.Token:
			if c.Kind() == syntax.EQ {
				seenEq = true
			}
		case *syntax.Node:
			if !seenEq {
				continue
			}
			if expr, ok := CastExpr(c); ok {
				return expr, true
			}
		}
	}
	return nil, false
}

type ExprStmt struct{ node *syntax.Node }

func (s ExprStmt) Syntax() *syntax.Node { return s.node }
func (ExprStmt) stmtNode()              {}

func (s ExprStmt) Expr() (Expr, bool) {
	for _, child := range s.node.Children() {
		if expr, ok := CastExpr(child); ok {
			return expr, true
		}
	}
	return nil, false
}
