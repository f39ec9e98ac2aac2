package assists

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/typeassist/internal/analyzer"
	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/pipeline"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/typesystem"
)

const cursorMarker = "<|>"

const testFile pipeline.FileID = 1

type handlerFunc func(*AssistCtx) (Assist, bool)

// extractOffset removes the cursor marker from text and returns its offset.
func extractOffset(t *testing.T, text string) (int, string) {
	t.Helper()
	offset := strings.Index(text, cursorMarker)
	require.GreaterOrEqual(t, offset, 0, "no cursor marker in %q", text)
	require.Equal(t, 1, strings.Count(text, cursorMarker), "more than one cursor marker in %q", text)
	return offset, text[:offset] + text[offset+len(cursorMarker):]
}

// analyzedCtx parses and analyzes before and returns the context for the
// marked cursor.
func analyzedCtx(t *testing.T, before string) (*AssistCtx, string) {
	t.Helper()
	offset, src := extractOffset(t, before)
	ctx, model := analyzer.AnalyzeSource(src, "test.rs", testFile)
	require.NotNil(t, ctx.Tree)
	return &AssistCtx{Root: ctx.Tree, File: testFile, Offset: offset, Sema: model}, src
}

// applyWithCursor applies the assist and puts the cursor marker back where
// the cursor ends up: insertions at or after the cursor leave it in place.
func applyWithCursor(t *testing.T, a Assist, src string, cursor int) string {
	t.Helper()
	out, err := a.Edit.Apply(src)
	require.NoError(t, err)
	shift := 0
	for _, ins := range a.Edit.Insertions {
		if ins.Offset < cursor {
			shift += len(ins.Text)
		}
	}
	at := cursor + shift
	return out[:at] + cursorMarker + out[at:]
}

func checkAssist(t *testing.T, h handlerFunc, before, after string) {
	t.Helper()
	ctx, src := analyzedCtx(t, before)
	a, ok := h(ctx)
	if !ok {
		t.Fatalf("assist not applicable to %q", before)
	}
	if got := applyWithCursor(t, a, src, ctx.Offset); got != after {
		t.Errorf("assist result mismatch\nbefore: %q\n   got: %q\n  want: %q", before, got, after)
	}
}

func checkAssistTarget(t *testing.T, h handlerFunc, before, target string) {
	t.Helper()
	ctx, src := analyzedCtx(t, before)
	a, ok := h(ctx)
	if !ok {
		t.Fatalf("assist not applicable to %q", before)
	}
	if got := src[a.Target.Start:a.Target.End]; got != target {
		t.Errorf("target = %q, want %q", got, target)
	}
}

func checkAssistNotApplicable(t *testing.T, h handlerFunc, before string) {
	t.Helper()
	ctx, _ := analyzedCtx(t, before)
	if a, ok := h(ctx); ok {
		t.Errorf("assist should not apply to %q, got edit %+v", before, a.Edit)
	}
}

// fixedSema answers every query with the same result, so gates can be
// tested apart from inference.
type fixedSema struct {
	typ     typesystem.Type
	ok      bool
	queries int
}

func (s *fixedSema) TypeOf(pipeline.FileID, *syntax.Node, ast.Expr) (typesystem.Type, bool) {
	s.queries++
	return s.typ, s.ok
}

func (s *fixedSema) Display(t typesystem.Type) string { return typesystem.Display(t) }

// ctxWithSema parses before and pairs it with sema instead of the analyzer.
func ctxWithSema(t *testing.T, before string, sema Semantics) (*AssistCtx, string) {
	t.Helper()
	ctx, src := analyzedCtx(t, before)
	ctx.Sema = sema
	return ctx, src
}
