package assists

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/funvibe/typeassist/internal/analyzer"
	"github.com/funvibe/typeassist/internal/pipeline"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/testgen"
	"github.com/funvibe/typeassist/internal/typesystem"
)

// FuzzAddExplicitType runs the assist on generated programs at arbitrary
// cursor offsets. Whenever it applies, the result must parse cleanly, the
// binding must now have exactly the inserted type, and the assist must no
// longer apply at the same spot.
func FuzzAddExplicitType(f *testing.F) {
	f.Add([]byte{}, uint16(0))
	f.Add([]byte{}, uint16(120))
	f.Add([]byte{3, 9, 1, 4, 7, 2, 8}, uint16(150))
	f.Add([]byte("a longer seed with more choices"), uint16(200))

	f.Fuzz(func(t *testing.T, data []byte, off uint16) {
		src := testgen.NewFromData(data).GenerateProgram()
		ctx, model := analyzer.AnalyzeSource(src, "fuzz.rs", testFile)
		if len(ctx.Errors) > 0 {
			t.Skip("generated program has errors")
		}
		offset := int(off) % (len(src) + 1)

		a, ok := AddExplicitType(&AssistCtx{Root: ctx.Tree, File: testFile, Offset: offset, Sema: model})
		if !ok {
			return
		}
		if err := a.Edit.Validate(len(src)); err != nil {
			t.Fatalf("invalid edit: %v", err)
		}
		if len(a.Edit.Insertions) != 1 {
			t.Fatalf("expected one insertion, got %+v", a.Edit.Insertions)
		}
		ins := a.Edit.Insertions[0]
		if !strings.HasPrefix(ins.Text, ": ") {
			t.Fatalf("insertion %q is not an annotation", ins.Text)
		}
		if ins.Offset != a.Target.End {
			t.Fatalf("insertion at %d, target ends at %d", ins.Offset, a.Target.End)
		}

		out, err := a.Edit.Apply(src)
		if err != nil {
			t.Fatal(err)
		}
		after, afterModel := analyzer.AnalyzeSource(out, "fuzz.rs", testFile)
		if len(after.Errors) > 0 {
			t.Fatalf("annotated program has errors: %v\n%s", after.Errors[0], out)
		}

		name, typ, ok := afterModel.BindingTypeAt(ins.Offset - 1)
		if !ok {
			t.Fatalf("no binding before offset %d:\n%s", ins.Offset, out)
		}
		if got, want := typesystem.Display(typ), strings.TrimPrefix(ins.Text, ": "); got != want {
			t.Fatalf("binding %s has type %s after inserting %s:\n%s", name.Text(), got, want, out)
		}
		// The annotation only states what was inferred, so no other
		// binding may change type.
		if diff := cmp.Diff(bindingsInOrder(ctx), bindingsInOrder(after)); diff != "" {
			t.Fatalf("binding types changed (-before +after):\n%s\n%s", diff, out)
		}

		cursor := offset
		if cursor > ins.Offset {
			cursor += len(ins.Text)
		}
		if again, ok := AddExplicitType(&AssistCtx{Root: after.Tree, File: testFile, Offset: cursor, Sema: afterModel}); ok {
			t.Fatalf("assist still applies after annotating: %+v\n%s", again.Edit, out)
		}
	})
}

// bindingsInOrder lists "name: type" for every bound name in source order.
func bindingsInOrder(ctx *pipeline.PipelineContext) []string {
	names := make([]*syntax.Node, 0, len(ctx.BindingMap))
	for n := range ctx.BindingMap {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Range().Start < names[j].Range().Start })
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.Text() + ": " + typesystem.Display(ctx.BindingMap[n])
	}
	return out
}

// FuzzAssistsOnBrokenInput mutates generated programs into mostly invalid
// ones. Assists must never panic there, and any edit they offer must fit
// the text.
func FuzzAssistsOnBrokenInput(f *testing.F) {
	f.Add([]byte{}, int64(1), uint16(90))
	f.Add([]byte{5, 5, 5}, int64(99), uint16(130))

	f.Fuzz(func(t *testing.T, data []byte, seed int64, off uint16) {
		src := testgen.NewMutator(seed).MutateN(testgen.NewFromData(data).GenerateProgram(), 2)
		ctx, model := analyzer.AnalyzeSource(src, "fuzz.rs", testFile)
		offset := int(off) % (len(src) + 1)

		for _, a := range Compute(&AssistCtx{Root: ctx.Tree, File: testFile, Offset: offset, Sema: model}, nil) {
			if err := a.Edit.Validate(len(src)); err != nil {
				t.Fatalf("%s: invalid edit: %v\n%s", a.ID, err, src)
			}
			if a.Target.Start < 0 || a.Target.Start > a.Target.End || a.Target.End > len(src) {
				t.Fatalf("%s: target %v outside the text", a.ID, a.Target)
			}
		}
	})
}
