package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/typesystem"
)

func firstLet(t *testing.T, src string) (*Model, ast.LetStmt, ast.Expr) {
	t.Helper()
	ctx, model := AnalyzeSource(src, "test.rs", 7)
	require.Empty(t, ctx.Errors)

	offset := len("fn main() { let")
	stmt, ok := ast.NodeAtOffset(ctx.Tree, offset, ast.CastLetStmt)
	require.True(t, ok, "no let statement at %d", offset)
	init, ok := stmt.Initializer()
	require.True(t, ok)
	return model, stmt, init
}

func TestModelTypeOf(t *testing.T) {
	model, stmt, init := firstLet(t, "fn main() { let a = (1u8, 'c'); }")

	ty, ok := model.TypeOf(7, stmt.Syntax(), init)
	require.True(t, ok)
	if got := model.Display(ty); got != "(u8, char)" {
		t.Errorf("TypeOf = %q, want (u8, char)", got)
	}
}

func TestModelTypeOfRejectsForeignQueries(t *testing.T) {
	model, stmt, init := firstLet(t, "fn main() { let a = 1; }")

	if _, ok := model.TypeOf(8, stmt.Syntax(), init); ok {
		t.Errorf("query with another file id should fail")
	}

	_, other, _ := firstLet(t, "fn main() { let b = 2; }")
	if _, ok := model.TypeOf(7, other.Syntax(), init); ok {
		t.Errorf("query anchored in another tree should fail")
	}

	_, _, foreignInit := firstLet(t, "fn main() { let c = 3; }")
	if _, ok := model.TypeOf(7, stmt.Syntax(), foreignInit); ok {
		t.Errorf("expression outside the statement should fail")
	}
}

func TestModelBindingTypeAtMissesNonBindings(t *testing.T) {
	_, model := AnalyzeSource("fn main() { let a = 1; }", "test.rs", 1)

	if _, _, ok := model.BindingTypeAt(len("fn ma")); ok {
		t.Errorf("fn name is not a let binding")
	}
	name, ty, ok := model.BindingTypeAt(len("fn main() { let a"))
	require.True(t, ok)
	if name.Text() != "a" || !typesystem.Equal(ty, typesystem.Simple(typesystem.Int{Kind: "i32"})) {
		t.Errorf("binding = %s: %s, want a: i32", name.Text(), ty)
	}
}
