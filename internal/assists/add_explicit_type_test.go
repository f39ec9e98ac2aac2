package assists

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/typeassist/internal/config"
	"github.com/funvibe/typeassist/internal/typesystem"
)

func TestAddExplicitTypeTarget(t *testing.T) {
	checkAssistTarget(t, AddExplicitType, "fn f() { let a<|> = 1; }", "a")
}

func TestAddExplicitTypeWorksForSimpleExpr(t *testing.T) {
	checkAssist(t, AddExplicitType,
		"fn f() { let a<|> = 1; }",
		"fn f() { let a<|>: i32 = 1; }",
	)
}

func TestAddExplicitTypeNotApplicableIfTypeNotInferred(t *testing.T) {
	checkAssistNotApplicable(t, AddExplicitType, "fn f() { let a<|> = None; }")
}

func TestAddExplicitTypeNotApplicableIfTypeAlreadySpecified(t *testing.T) {
	checkAssistNotApplicable(t, AddExplicitType, "fn f() { let a<|>: i32 = 1; }")
}

func TestAddExplicitTypeNotApplicableIfSpecifiedTypeIsTuple(t *testing.T) {
	checkAssistNotApplicable(t, AddExplicitType, "fn f() { let a<|>: (i32, i32) = (3, 4); }")
}

func TestAddExplicitTypeApplies(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
	}{
		{
			"mutable binding",
			"fn f() { let mut v<|> = Vec::<u8>::new(); }",
			"fn f() { let mut v<|>: Vec<u8> = Vec::<u8>::new(); }",
		},
		{
			"cursor on the keyword",
			"fn f() { l<|>et s = String::new(); }",
			"fn f() { l<|>et s: String = String::new(); }",
		},
		{
			"cursor inside the initializer",
			"fn f() { let r = &mut [1u8, 2<|>]; }",
			"fn f() { let r: &mut [u8; 2] = &mut [1u8, 2<|>]; }",
		},
		{
			"struct literal colons are not annotations",
			"struct P { x: i64 }\nfn f() { let p<|> = P { x: 1 }; }",
			"struct P { x: i64 }\nfn f() { let p<|>: P = P { x: 1 }; }",
		},
		{
			"generic parameter of the enclosing fn",
			"fn f<T>(t: T) { let c<|> = (t, true); }",
			"fn f<T>(t: T) { let c<|>: (T, bool) = (t, true); }",
		},
		{
			"innermost statement wins",
			"fn f() { let outer = { let in<|>ner = 1u64; inner }; }",
			"fn f() { let outer = { let in<|>ner: u64 = 1u64; inner }; }",
		},
		{
			"literal branch takes the typed branch",
			"fn f() { let a<|> = if true { 1 } else { 2u8 }; }",
			"fn f() { let a<|>: u8 = if true { 1 } else { 2u8 }; }",
		},
		{
			"literal element takes the typed element",
			"fn f() { let a<|> = [1, 2u8]; }",
			"fn f() { let a<|>: [u8; 2] = [1, 2u8]; }",
		},
		{
			"literal takes the type of a later use",
			"fn f() { let a<|> = 1; let b: u8 = a; }",
			"fn f() { let a<|>: u8 = 1; let b: u8 = a; }",
		},
		{
			"reference to a reference",
			"fn f() { let s<|> = &\"x\"; }",
			"fn f() { let s<|>: &&str = &\"x\"; }",
		},
		{
			"ref binding",
			"fn f() { let ref x<|> = 'c'; }",
			"fn f() { let ref x<|>: char = 'c'; }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkAssist(t, AddExplicitType, tt.before, tt.after)
		})
	}
}

func TestAddExplicitTypeNotApplicable(t *testing.T) {
	tests := []struct {
		name   string
		before string
	}{
		{"no initializer", "fn f() { let a<|>; }"},
		{"unknown type parameter", "fn f() { let v<|> = Vec::new(); }"},
		{"unknown nested parameter", "fn f() { let o<|> = Some(Vec::new()); }"},
		{"unknown callee", "fn f() { let x<|> = nowhere(); }"},
		{"tuple pattern", "fn f() { let (a<|>, b) = (1, 2); }"},
		{"struct pattern", "struct P { x: i32 }\nfn f() { let P { x<|> } = P { x: 1 }; }"},
		{"placeholder", "fn f() { let _<|> = 1; }"},
		{"binding with subpattern", "fn f() { let t<|> @ (a, b) = (1, 2); }"},
		{"cursor outside any let", "fn f() { 1<|>; let a = 1; }"},
		{"cursor on the fn", "fn f<|>() { let a = 1; }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkAssistNotApplicable(t, AddExplicitType, tt.before)
		})
	}
}

func TestExistingAnnotationNeverApplies(t *testing.T) {
	// Even a model that knows every type must not override the annotation
	// check, and the model must not be asked at all.
	inputs := []string{
		"fn f() { let a<|>: i32 = 1; }",
		"fn f() { let a<|>: (i32, i32) = (3, 4); }",
		"fn f() { let mut a<|>: Vec<u8> = Vec::new(); }",
		"fn f() { let (a<|>, b): (u8, u8) = (1, 2); }",
		"fn f() { let a<|>: _ = 1; }",
	}
	for _, input := range inputs {
		sema := &fixedSema{typ: typesystem.Simple(typesystem.Int{Kind: "i32"}), ok: true}
		ctx, _ := ctxWithSema(t, input, sema)
		if _, ok := AddExplicitType(ctx); ok {
			t.Errorf("assist applied to annotated %q", input)
		}
		if sema.queries != 0 {
			t.Errorf("%q: semantic model queried %d times", input, sema.queries)
		}
	}
}

func TestDestructuringNeverApplies(t *testing.T) {
	known := typesystem.TupleOf(
		typesystem.Simple(typesystem.Int{Kind: "i32"}),
		typesystem.Simple(typesystem.Int{Kind: "i32"}),
	)
	inputs := []string{
		"fn f() { let (a<|>, b) = (1, 2); }",
		"fn f() { let Some(a<|>) = Some(1); }",
		"fn f() { let &a<|> = &1; }",
		"fn f() { let _<|> = (1, 2); }",
	}
	for _, input := range inputs {
		sema := &fixedSema{typ: known, ok: true}
		ctx, _ := ctxWithSema(t, input, sema)
		if _, ok := AddExplicitType(ctx); ok {
			t.Errorf("assist applied to destructuring %q", input)
		}
	}
}

func TestFailedQueryIsNotApplicable(t *testing.T) {
	ctx, _ := ctxWithSema(t, "fn f() { let a<|> = 1; }", &fixedSema{ok: false})
	if _, ok := AddExplicitType(ctx); ok {
		t.Error("assist applied although the type query failed")
	}

	ctx, _ = ctxWithSema(t, "fn f() { let a<|> = 1; }", nil)
	if _, ok := AddExplicitType(ctx); ok {
		t.Error("assist applied without a semantic model")
	}
}

func TestInsertionAndTargetRanges(t *testing.T) {
	tests := []struct {
		before  string
		nameEnd string // source prefix ending where the insertion goes
		target  string
	}{
		{"fn f() { let a<|> = 1; }", "fn f() { let a", "a"},
		{"fn f() { let mut count<|> = 1u8; }", "fn f() { let mut count", "mut count"},
		{"fn f() { let ref  mut  x<|> = 1u8; }", "fn f() { let ref  mut  x", "ref  mut  x"},
	}
	for _, tt := range tests {
		ctx, src := analyzedCtx(t, tt.before)
		a, ok := AddExplicitType(ctx)
		require.True(t, ok, "assist should apply to %q", tt.before)

		require.Len(t, a.Edit.Insertions, 1)
		ins := a.Edit.Insertions[0]
		if ins.Offset != len(tt.nameEnd) {
			t.Errorf("%q: insertion at %d, want %d (end of the name)", tt.before, ins.Offset, len(tt.nameEnd))
		}
		if got := src[a.Target.Start:a.Target.End]; got != tt.target {
			t.Errorf("%q: target %q, want %q", tt.before, got, tt.target)
		}
		if a.ID != config.AddExplicitTypeID || a.Label != config.AddExplicitTypeLabel {
			t.Errorf("assist identity = %q/%q", a.ID, a.Label)
		}
	}
}

func TestIsUsable(t *testing.T) {
	i32 := typesystem.Simple(typesystem.Int{Kind: "i32"})
	unknown := typesystem.Unknown()

	tests := []struct {
		name string
		typ  typesystem.Type
		want bool
	}{
		{"primitive", i32, true},
		{"unknown", unknown, false},
		{"unit", typesystem.Unit(), true},
		{"generic parameter", typesystem.TParam{Name: "T"}, true},
		{"unknown parameter", typesystem.OptionOf(unknown), false},
		{"unknown deep parameter", typesystem.VecOf(typesystem.OptionOf(typesystem.TupleOf(i32, unknown))), false},
		{"concrete nested generic", typesystem.AdtOf(typesystem.HashMapName,
			typesystem.AdtOf(typesystem.StringName),
			typesystem.VecOf(typesystem.ResultOf(i32, typesystem.RefTo(typesystem.Simple(typesystem.Str{}), false))),
		), true},
		{"nil", nil, false},
		{"open literal", typesystem.VecOf(typesystem.TVar{ID: 1}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUsable(tt.typ, 0); got != tt.want {
				t.Errorf("isUsable(%v) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestIsUsableBoundsDepth(t *testing.T) {
	typ := typesystem.Simple(typesystem.Bool{})
	for i := 0; i < config.MaxTypeDepth; i++ {
		typ = typesystem.AdtOf(typesystem.BoxName, typ)
	}
	if !isUsable(typ, 0) {
		t.Errorf("type nested %d deep should be usable", config.MaxTypeDepth)
	}
	typ = typesystem.AdtOf(typesystem.BoxName, typ)
	if isUsable(typ, 0) {
		t.Errorf("type nested past the bound should be unusable")
	}
}
