package assists

import (
	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/config"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/typesystem"
)

// AddExplicitType turns `let a = 1;` into `let a: i32 = 1;` using the type
// the semantic model infers for the initializer.
func AddExplicitType(ctx *AssistCtx) (Assist, bool) {
	stmt, ok := FindEnclosing(ctx, ast.CastLetStmt)
	if !ok {
		return Assist{}, false
	}
	check, ok := checkLet(ctx, stmt)
	if !ok {
		return Assist{}, false
	}

	b := NewActionBuilder(config.AddExplicitTypeID, config.AddExplicitTypeLabel)
	b.Target(check.binding.pattern)
	b.Insert(check.binding.name.End, ": "+ctx.Sema.Display(check.typ))
	return b.Build()
}

// bindingRanges are the ranges of a simple binding pattern: the whole
// pattern is what the editor highlights, the name end is where the type
// goes.
type bindingRanges struct {
	name    syntax.TextRange
	pattern syntax.TextRange
}

// classifyPattern accepts only `name`, `mut name` and `ref name`. Every
// other shape destructures, and an annotation would describe the whole
// value rather than the name.
func classifyPattern(pat ast.Pat) (bindingRanges, bool) {
	switch p := pat.(type) {
	case ast.BindPat:
		if _, hasSub := p.SubPat(); hasSub {
			// `name @ pat`: the annotation cannot follow the name.
			return bindingRanges{}, false
		}
		name, ok := p.Name()
		if !ok || name.Ident() == nil {
			return bindingRanges{}, false
		}
		return bindingRanges{name: name.Syntax().Range(), pattern: p.Syntax().Range()}, true
	case ast.TuplePat, ast.TupleStructPat, ast.StructPat, ast.PlaceholderPat, ast.RefPat, ast.LiteralPat:
		return bindingRanges{}, false
	}
	return bindingRanges{}, false
}

// letCheck accumulates what the gates learn about a let statement.
type letCheck struct {
	stmt    ast.LetStmt
	init    ast.Expr
	binding bindingRanges
	typ     typesystem.Type
}

// letGate is one applicability condition. Gates run in order and the first
// failure ends the check, so later gates may rely on fields earlier ones
// filled in.
type letGate func(ctx *AssistCtx, c *letCheck) bool

var letGates = []letGate{
	requireInitializer,
	requireBindingPattern,
	requireNoAnnotation,
	inferInitializerType,
	requireUsableType,
}

func checkLet(ctx *AssistCtx, stmt ast.LetStmt) (letCheck, bool) {
	c := letCheck{stmt: stmt}
	for _, gate := range letGates {
		if !gate(ctx, &c) {
			return letCheck{}, false
		}
	}
	return c, true
}

func requireInitializer(_ *AssistCtx, c *letCheck) bool {
	init, ok := c.stmt.Initializer()
	c.init = init
	return ok
}

func requireBindingPattern(_ *AssistCtx, c *letCheck) bool {
	pat, ok := c.stmt.Pat()
	if !ok {
		return false
	}
	c.binding, ok = classifyPattern(pat)
	return ok
}

// requireNoAnnotation scans only the statement's own tokens. A colon inside
// the initializer, such as a struct literal field, is not an annotation.
func requireNoAnnotation(_ *AssistCtx, c *letCheck) bool {
	return !c.stmt.Syntax().HasToken(syntax.COLON)
}

func inferInitializerType(ctx *AssistCtx, c *letCheck) bool {
	if ctx.Sema == nil {
		return false
	}
	t, ok := ctx.Sema.TypeOf(ctx.File, c.stmt.Syntax(), c.init)
	if !ok || t == nil {
		return false
	}
	c.typ = t
	return true
}

func requireUsableType(_ *AssistCtx, c *letCheck) bool {
	return isUsable(c.typ, 0)
}

// isUsable reports whether t and all of its parameters, at any depth, are
// known. Types nested deeper than config.MaxTypeDepth count as unusable.
func isUsable(t typesystem.Type, depth int) bool {
	if depth > config.MaxTypeDepth {
		return false
	}
	switch typ := t.(type) {
	case typesystem.TUnknown, typesystem.TVar:
		return false
	case typesystem.TApply:
		for _, p := range typ.Params {
			if !isUsable(p, depth+1) {
				return false
			}
		}
		return true
	case typesystem.TParam:
		return true
	}
	return false
}
