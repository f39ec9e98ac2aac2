package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/typeassist/internal/lexer"
	"github.com/funvibe/typeassist/internal/parser"
	"github.com/funvibe/typeassist/internal/pipeline"
	"github.com/funvibe/typeassist/internal/syntax"
)

func parseClean(t *testing.T, input string) *syntax.Node {
	t.Helper()
	ctx := pipeline.NewPipelineContext(input)
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, err := range ctx.Errors {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("parsing failed with errors:\n%s", strings.Join(msgs, "\n"))
	}
	require.NotNil(t, ctx.Tree)
	return ctx.Tree
}

// kindsOf lists node kinds in preorder, skipping the ones in skip.
func kindsOf(root *syntax.Node, skip ...syntax.Kind) []string {
	var out []string
	root.Walk(func(n *syntax.Node) bool {
		for _, k := range skip {
			if n.Kind() == k {
				return true
			}
		}
		out = append(out, n.Kind().String())
		return true
	})
	return out
}

func TestParseValidFiles(t *testing.T) {
	inputs := map[string]string{
		"let statements": `fn main() {
    let a = 1;
    let mut b: u8 = 2;
    let c;
    let (d, _) = (1, 2);
    let Point { x, y: py } = p;
    let &r = &1;
    let ref mut m = 3;
    let t @ Some(_) = opt;
}`,
		"generics and types": `struct Pair<A, B> { left: A, right: B }
fn make<T>(x: T, xs: &[T], arr: [u8; 4], f: &mut Vec<Option<T>>) -> (T, !) { loop_forever() }`,
		"expressions": `fn e() {
    let a = -1 + 2 * 3 - (4 / 5) % 6;
    let b = a == 1 && !(a < 2) || a >= 3;
    let c = v.iter().len() + t.0.1 + xs[0];
    let d = Vec::<u8>::with_capacity(10);
    let e = if a > 1 { 1 } else if a < 0 { 2 } else { 3 };
    let f = [0; 8];
    let g = P { x: 1, y };
    let h = { 1 };
    x = 5;
    return;
}`,
		"if condition is not a struct literal": `fn f() { if a == B { } }`,
		"nested items": `fn outer() { fn inner() -> i32 { 1 } let x = inner(); }`,
		"comments everywhere": "// head\nfn /* a */ f /* b */ ( ) { /* c */ let /* d */ a = 1 ; // tail\n}\n",
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			root := parseClean(t, input)
			if root.Text() != input {
				t.Errorf("tree text differs from input:\n%s", root.Text())
			}
			if root.Range() != syntax.NewRange(0, len(input)) {
				t.Errorf("root range = %s, want 0..%d", root.Range(), len(input))
			}
			root.Walk(func(n *syntax.Node) bool {
				if n.Kind() == syntax.ERROR {
					t.Errorf("unexpected ERROR node at %s", n.Range())
				}
				return true
			})
		})
	}
}

func TestLetStatementShape(t *testing.T) {
	root := parseClean(t, "fn f() { let mut a: (i32, i32) = (3, 4); }")
	stmt := findFirst(root, syntax.LET_STMT)
	require.NotNil(t, stmt)

	var direct []string
	for _, el := range stmt.ChildrenWithTokens() {
		if el.Kind().IsTrivia() {
			continue
		}
		direct = append(direct, el.Kind().String())
	}
	want := []string{"LET_KW", "BIND_PAT", "COLON", "TUPLE_TYPE", "EQ", "TUPLE_EXPR", "SEMI"}
	if diff := cmp.Diff(want, direct); diff != "" {
		t.Errorf("LET_STMT children mismatch (-want +got):\n%s", diff)
	}
	if got := stmt.Text(); got != "let mut a: (i32, i32) = (3, 4);" {
		t.Errorf("statement text = %q", got)
	}
	if pat := stmt.FirstChild(syntax.BIND_PAT); pat.Text() != "mut a" {
		t.Errorf("pattern text = %q, want %q", pat.Text(), "mut a")
	}
}

func TestExpressionPrecedence(t *testing.T) {
	root := parseClean(t, "fn f() { let x = 1 + 2 * 3 == 7 && ok; }")
	stmt := findFirst(root, syntax.LET_STMT)
	got := kindsOf(stmt, syntax.NAME, syntax.NAME_REF, syntax.PATH, syntax.PATH_SEGMENT)
	want := []string{
		"LET_STMT", "BIND_PAT",
		"BIN_EXPR", // &&
		"BIN_EXPR", // ==
		"BIN_EXPR", // +
		"LITERAL",
		"BIN_EXPR", // *
		"LITERAL", "LITERAL",
		"LITERAL",
		"PATH_EXPR",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree shape mismatch (-want +got):\n%s", diff)
	}
}

func TestPostfixChains(t *testing.T) {
	root := parseClean(t, "fn f() { let x = a.b(1)[2].c; }")
	stmt := findFirst(root, syntax.LET_STMT)
	got := kindsOf(stmt, syntax.NAME, syntax.NAME_REF, syntax.PATH, syntax.PATH_SEGMENT, syntax.LET_STMT, syntax.BIND_PAT)
	want := []string{"FIELD_EXPR", "INDEX_EXPR", "METHOD_CALL_EXPR", "PATH_EXPR", "ARG_LIST", "LITERAL", "LITERAL"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree shape mismatch (-want +got):\n%s", diff)
	}
}

func TestDoubleReference(t *testing.T) {
	root := parseClean(t, "fn f() { let a: &&mut str = &&x; }")
	stmt := findFirst(root, syntax.LET_STMT)
	got := kindsOf(stmt, syntax.NAME, syntax.NAME_REF, syntax.PATH, syntax.PATH_SEGMENT, syntax.LET_STMT, syntax.BIND_PAT)
	want := []string{"REF_TYPE", "REF_TYPE", "PATH_TYPE", "REF_EXPR", "REF_EXPR", "PATH_EXPR"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree shape mismatch (-want +got):\n%s", diff)
	}

	outer := findFirst(stmt, syntax.REF_TYPE)
	if outer.HasToken(syntax.MUT_KW) {
		t.Errorf("mut attached to the outer reference")
	}
	if inner := outer.FirstChild(syntax.REF_TYPE); inner == nil || !inner.HasToken(syntax.MUT_KW) {
		t.Errorf("inner reference lost its mut")
	}
}

func TestErrorRecovery(t *testing.T) {
	inputs := []string{
		"fn f() { let = 1; let b = 2; }",
		"fn f() { let a = ; }",
		"fn f( { }",
		"struct { }",
		"let a = 1;",
		"fn f() { let a = 1 let b = 2; }",
		"fn f() { $ let a = 1; }",
		"fn",
		"}}}",
		"fn f() { let a: = 1; }",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			root, errs := parser.Parse(input)
			if len(errs) == 0 {
				t.Errorf("expected errors for %q", input)
			}
			if root.Text() != input {
				t.Errorf("tree text = %q, want %q", root.Text(), input)
			}
		})
	}
}

func TestRecoveryKeepsLaterStatements(t *testing.T) {
	root, errs := parser.Parse("fn f() { let = 1; let b = 2; }")
	require.NotEmpty(t, errs)

	var lets []string
	root.Walk(func(n *syntax.Node) bool {
		if n.Kind() == syntax.LET_STMT {
			lets = append(lets, n.Text())
		}
		return true
	})
	if len(lets) != 2 || lets[1] != "let b = 2;" {
		t.Errorf("let statements = %q", lets)
	}
}

func findFirst(root *syntax.Node, kind syntax.Kind) *syntax.Node {
	var found *syntax.Node
	root.Walk(func(n *syntax.Node) bool {
		if found != nil {
			return false
		}
		if n.Kind() == kind {
			found = n
			return false
		}
		return true
	})
	return found
}
