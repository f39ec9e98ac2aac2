package assists

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/textedit"
)

func TestActionBuilderBuild(t *testing.T) {
	b := NewActionBuilder("id", "label")
	b.Target(syntax.NewRange(3, 5))
	b.Insert(5, ": u8")

	got, ok := b.Build()
	if !ok {
		t.Fatal("Build returned nothing")
	}
	want := Assist{
		ID:     "id",
		Label:  "label",
		Target: syntax.NewRange(3, 5),
		Edit:   textedit.TextEdit{Insertions: []textedit.Insertion{{Offset: 5, Text: ": u8"}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}

	// The built assist does not share state with the builder.
	b.Insert(6, "x")
	if len(got.Edit.Insertions) != 1 {
		t.Errorf("assist changed after Build: %+v", got.Edit)
	}
}

func TestActionBuilderIncomplete(t *testing.T) {
	noTarget := NewActionBuilder("id", "label")
	noTarget.Insert(0, "x")
	if _, ok := noTarget.Build(); ok {
		t.Error("assist without a target must not be built")
	}

	noEdit := NewActionBuilder("id", "label")
	noEdit.Target(syntax.NewRange(0, 1))
	if _, ok := noEdit.Build(); ok {
		t.Error("assist without an edit must not be built")
	}
}

func TestActionBuilderTargetTwicePanics(t *testing.T) {
	b := NewActionBuilder("id", "label")
	b.Target(syntax.NewRange(0, 1))

	defer func() {
		if recover() == nil {
			t.Error("second Target call did not panic")
		}
	}()
	b.Target(syntax.NewRange(1, 2))
}
