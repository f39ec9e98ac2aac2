package typeassist_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	typeassist "github.com/funvibe/typeassist/pkg/embed"
)

const source = "fn main() {\n    let total = 40 + 2;\n}\n"

func TestEmbedAPI(t *testing.T) {
	e := typeassist.New()
	e.Set("main.rs", source)

	// 1. Assists at the binding
	offset := strings.Index(source, "total")
	list, err := e.Assists("main.rs", offset)
	require.NoError(t, err)
	want := []typeassist.Assist{{
		ID:     "add_explicit_type",
		Label:  "add explicit type",
		Target: typeassist.Range{Start: offset, End: offset + 5},
		Edits:  []typeassist.Insertion{{Offset: offset + 5, Text: ": i32"}},
	}}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Fatalf("assists mismatch (-want +got):\n%s", diff)
	}

	// 2. Edits apply to the original text
	out, err := typeassist.ApplyEdits(source, list[0].Edits)
	require.NoError(t, err)
	if !strings.Contains(out, "let total: i32 = 40 + 2;") {
		t.Errorf("ApplyEdits result:\n%s", out)
	}

	// 3. Apply stores the new text
	applied, err := e.Apply("main.rs", "add_explicit_type", offset)
	require.NoError(t, err)
	require.Equal(t, out, applied)
	current, err := e.Get("main.rs")
	require.NoError(t, err)
	require.Equal(t, out, current)

	// 4. The annotated binding no longer offers the assist
	list, err = e.Assists("main.rs", offset)
	require.NoError(t, err)
	require.Empty(t, list)
	_, err = e.Apply("main.rs", "add_explicit_type", offset)
	require.Error(t, err)
}

func TestEmbedTypeAt(t *testing.T) {
	e := typeassist.New()
	e.Set("a.rs", source)

	offset := strings.Index(source, "total") + 2
	b, ok, err := e.TypeAt("a.rs", offset)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "total", b.Name)
	require.Equal(t, "i32", b.Type)

	_, ok, err = e.TypeAt("a.rs", 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEmbedDiagnostics(t *testing.T) {
	e := typeassist.New()
	e.Set("bad.rs", "fn main() { let = 1; }")

	diags, err := e.Diagnostics("bad.rs")
	require.NoError(t, err)
	require.NotEmpty(t, diags)
	require.Equal(t, "P004", diags[0].Code)

	e.Set("bad.rs", source)
	diags, err = e.Diagnostics("bad.rs")
	require.NoError(t, err)
	require.Empty(t, diags)
}

func TestEmbedErrors(t *testing.T) {
	e := typeassist.New()
	e.Set("main.rs", source)

	_, err := e.Assists("missing.rs", 0)
	require.Error(t, err)
	_, err = e.Assists("main.rs", len(source)+1)
	require.Error(t, err)
	_, err = e.Apply("main.rs", "no_such_assist", 0)
	require.Error(t, err)
	_, err = e.Get("missing.rs")
	require.Error(t, err)

	e.Remove("main.rs")
	_, err = e.Get("main.rs")
	require.Error(t, err)
}

func TestEmbedSettings(t *testing.T) {
	e := typeassist.New()
	e.Set("main.rs", source)
	offset := strings.Index(source, "total")

	e.Disable("add_explicit_type")
	list, err := e.Assists("main.rs", offset)
	require.NoError(t, err)
	require.Empty(t, list)
	_, err = e.Apply("main.rs", "add_explicit_type", offset)
	require.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "typeassist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("disabled: []\n"), 0644))
	require.NoError(t, e.LoadSettings(path))
	list, err = e.Assists("main.rs", offset)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestEmbedLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.rs")
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	e := typeassist.New()
	require.NoError(t, e.LoadFile(path))
	got, err := e.Get(path)
	require.NoError(t, err)
	require.Equal(t, source, got)

	require.Error(t, e.LoadFile(filepath.Join(dir, "missing.rs")))
}

func TestEmbedConcurrentUse(t *testing.T) {
	e := typeassist.New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := filepath.Join("doc", string(rune('a'+i))+".rs")
			e.Set(name, source)
			if _, err := e.Assists(name, strings.Index(source, "total")); err != nil {
				t.Error(err)
			}
			if _, _, err := e.TypeAt(name, 0); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
}
