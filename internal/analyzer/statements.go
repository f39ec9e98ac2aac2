package analyzer

import (
	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/symbols"
	"github.com/funvibe/typeassist/internal/typesystem"
)

// inferBlock walks the statements of block in a fresh scope. The block's
// type is its tail expression, `!` when a statement diverges, and `()`
// otherwise.
func (w *walker) inferBlock(block ast.Block, expected typesystem.Type) typesystem.Type {
	leave := w.enterScope(symbols.ScopeBlock)
	defer leave()

	diverges := false
	for _, stmt := range block.Statements() {
		switch s := stmt.(type) {
		case ast.LetStmt:
			w.inferLet(s)
		case ast.ExprStmt:
			if expr, ok := s.Expr(); ok {
				if isNever(w.infer(expr, nil)) {
					diverges = true
				}
			}
		}
	}

	if tail, ok := block.TailExpr(); ok {
		return w.infer(tail, expected)
	}
	if diverges {
		return typesystem.Simple(typesystem.Never{})
	}
	return typesystem.Unit()
}

// inferLet types the initializer before binding the pattern, so
// `let x = x + 1` reads the outer x.
func (w *walker) inferLet(stmt ast.LetStmt) {
	var declared typesystem.Type
	if ref, ok := stmt.Type(); ok {
		declared = w.lowerType(ref)
	}

	bound := declared
	if init, ok := stmt.Initializer(); ok {
		t := w.infer(init, declared)
		if bound == nil {
			bound = t
		}
	}
	if bound == nil {
		bound = typesystem.Unknown()
	}

	if pat, ok := stmt.Pat(); ok {
		w.bindPattern(pat, bound)
	}
}
