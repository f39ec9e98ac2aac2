package assists

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/funvibe/typeassist/internal/config"
)

func TestRegistry(t *testing.T) {
	if diff := cmp.Diff([]string{config.AddExplicitTypeID}, IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}

	h, ok := ByID(config.AddExplicitTypeID)
	if !ok {
		t.Fatalf("ByID(%q) found nothing", config.AddExplicitTypeID)
	}
	if h.Label != config.AddExplicitTypeLabel {
		t.Errorf("label = %q, want %q", h.Label, config.AddExplicitTypeLabel)
	}
	if _, ok := ByID("add_explicit_types"); ok {
		t.Error("ByID matched a misspelled id")
	}
}

func TestCompute(t *testing.T) {
	ctx, _ := analyzedCtx(t, "fn f() { let a<|> = 1; }")

	got := Compute(ctx, nil)
	if len(got) != 1 || got[0].ID != config.AddExplicitTypeID {
		t.Fatalf("Compute = %+v, want one %s assist", got, config.AddExplicitTypeID)
	}

	disabled := &config.Settings{Disabled: []string{config.AddExplicitTypeID}}
	if got := Compute(ctx, disabled); len(got) != 0 {
		t.Errorf("Compute with the assist disabled = %+v, want none", got)
	}
}

func TestComputeNotApplicable(t *testing.T) {
	ctx, _ := analyzedCtx(t, "fn f() { let a<|> = None; }")
	if got := Compute(ctx, &config.Settings{}); len(got) != 0 {
		t.Errorf("Compute = %+v, want none", got)
	}
}
