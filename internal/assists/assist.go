// Package assists holds the code transformations offered at a cursor
// position.
//
// An assist handler looks at the syntax tree around the cursor, asks the
// semantic model whatever it needs, and either returns a finished Assist or
// reports that it does not apply. Not applying is never an error: handlers
// return false and the editor simply does not offer them.
package assists

import (
	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/pipeline"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/textedit"
	"github.com/funvibe/typeassist/internal/typesystem"
)

// Assist is one offered transformation. It is a plain value and is never
// modified after Build returns it.
type Assist struct {
	ID     string
	Label  string
	Target syntax.TextRange
	Edit   textedit.TextEdit
}

// Semantics is the part of the semantic model assists use.
type Semantics interface {
	// TypeOf returns the type of expr, which must lie inside scope in the
	// given file. It returns false when the query cannot run at all.
	TypeOf(file pipeline.FileID, scope *syntax.Node, expr ast.Expr) (typesystem.Type, bool)
	// Display renders a type as source text.
	Display(t typesystem.Type) string
}

// AssistCtx is the input of every handler. Root and Sema are borrowed for
// the duration of the call and must not be modified.
type AssistCtx struct {
	Root   *syntax.Node
	File   pipeline.FileID
	Offset int
	Sema   Semantics
}

// FindEnclosing returns the innermost node at the cursor that cast accepts.
func FindEnclosing[N ast.AstNode](ctx *AssistCtx, cast func(*syntax.Node) (N, bool)) (N, bool) {
	if ctx == nil || ctx.Root == nil {
		var zero N
		return zero, false
	}
	return ast.NodeAtOffset(ctx.Root, ctx.Offset, cast)
}
