package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/typeassist/internal/textedit"
)

const mainSource = "fn main() {\n    let a = 1;\n}\n"

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestApplyPrintsResult(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.rs", mainSource)
	want := "fn main() {\n    let a: i32 = 1;\n}\n"

	for _, offset := range []string{"2:9", "20", "2:5"} {
		t.Run(offset, func(t *testing.T) {
			stdout, _, err := run(t, "", "apply", path, "--offset", offset)
			require.NoError(t, err)
			if diff := cmp.Diff(want, stdout); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// Printing never touches the file.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if string(data) != mainSource {
		t.Errorf("file modified without --write:\n%s", data)
	}
}

func TestApplyWrite(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.rs", mainSource)

	stdout, _, err := run(t, "", "apply", path, "-o", "2:9", "--write")
	require.NoError(t, err)
	if stdout != "" {
		t.Errorf("--write printed output: %q", stdout)
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if got := string(data); got != "fn main() {\n    let a: i32 = 1;\n}\n" {
		t.Errorf("file content = %q", got)
	}
}

func TestApplyStdin(t *testing.T) {
	stdout, _, err := run(t, `fn f() { let s = "x"; }`, "apply", "-", "--offset", "13")
	require.NoError(t, err)
	if want := `fn f() { let s: &str = "x"; }`; stdout != want {
		t.Errorf("output = %q, want %q", stdout, want)
	}

	_, _, err = run(t, "fn f() {}", "apply", "-", "--offset", "0", "--write")
	require.Error(t, err)
	if !strings.Contains(err.Error(), "--write needs a file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestApplyErrors(t *testing.T) {
	dir := t.TempDir()
	annotated := writeSource(t, dir, "annotated.rs", "fn main() {\n    let a: i32 = 1;\n}\n")
	plain := writeSource(t, dir, "plain.rs", mainSource)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"not applicable", []string{"apply", annotated, "--offset", "2:9"}, "add_explicit_type does not apply at 2:9"},
		{"missing offset", []string{"apply", plain}, "--offset is required"},
		{"missing file", []string{"apply", filepath.Join(dir, "nope.rs"), "--offset", "1"}, "reading nope"},
		{"typo id", []string{"apply", plain, "--offset", "2:9", "--id", "add_explict_type"}, `did you mean add_explicit_type?`},
		{"misspelled id", []string{"apply", plain, "--offset", "2:9", "--id", "add_explicit_typo"}, `did you mean add_explicit_type?`},
		{"unrelated id", []string{"apply", plain, "--offset", "2:9", "--id", "zzz"}, `unknown assist "zzz" (available: add_explicit_type)`},
		{"no args", []string{"apply"}, "accepts 1 arg(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			require.Error(t, err)
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestSettings(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.rs", mainSource)

	// No settings: the assist applies.
	_, _, err := run(t, "", "apply", path, "--offset", "2:9")
	require.NoError(t, err)

	writeSource(t, dir, "typeassist.yaml", "disabled:\n  - add_explicit_type\n")
	_, _, err = run(t, "", "apply", path, "--offset", "2:9")
	require.Error(t, err)
	if !strings.Contains(err.Error(), "disabled by settings") {
		t.Errorf("unexpected error: %v", err)
	}

	stdout, stderr, err := run(t, "", "list", path, "--offset", "2:9")
	require.NoError(t, err)
	if stdout != "" || !strings.Contains(stderr, "no assists available") {
		t.Errorf("disabled assist listed: stdout=%q stderr=%q", stdout, stderr)
	}

	// An explicit --config wins over the file found next to the source.
	other := writeSource(t, t.TempDir(), "settings.jsonc", "{\n  // nothing disabled\n  \"disabled\": [],\n}\n")
	_, _, err = run(t, "", "apply", path, "--offset", "2:9", "--config", other)
	require.NoError(t, err)

	broken := writeSource(t, t.TempDir(), "broken.yaml", "disabled: [\n")
	_, _, err = run(t, "", "apply", path, "--offset", "2:9", "--config", broken)
	require.Error(t, err)
}

func TestList(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.rs", mainSource)

	stdout, _, err := run(t, "", "list", path, "--offset", "2:9")
	require.NoError(t, err)
	fields := strings.Fields(stdout)
	want := []string{"add_explicit_type", "add", "explicit", "type", "2:9-2:10"}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("list output mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(stdout, "\033[") {
		t.Errorf("colour written to a non-terminal: %q", stdout)
	}

	stdout, stderr, err := run(t, "", "list", path, "--offset", "1:1")
	require.NoError(t, err)
	if stdout != "" || !strings.Contains(stderr, "no assists available at offset 0") {
		t.Errorf("stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestTree(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.rs", mainSource)

	stdout, _, err := run(t, "", "tree", path, "--types", "--no-color")
	require.NoError(t, err)
	for _, want := range []string{"SOURCE_FILE@0..29", "NAME@20..21 : i32", `INT_NUMBER@24..25 "1"`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("tree output lacks %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "WHITESPACE") {
		t.Errorf("trivia printed without --trivia")
	}
}

func TestVerboseLogsDiagnostics(t *testing.T) {
	path := writeSource(t, t.TempDir(), "broken.rs", "fn main() { let = 1; }")

	_, stderr, err := run(t, "", "list", path, "--offset", "0", "-v")
	require.NoError(t, err)
	if !strings.Contains(stderr, "broken:1:17:") || !strings.Contains(stderr, "[P004]") {
		t.Errorf("diagnostic not logged:\n%s", stderr)
	}

	_, stderr, err = run(t, "", "list", path, "--offset", "0")
	require.NoError(t, err)
	if strings.Contains(stderr, "P004") {
		t.Errorf("diagnostics logged without -v:\n%s", stderr)
	}
}

func TestParseOffset(t *testing.T) {
	src := "ab\ncdé\n"
	lines := textedit.NewLineIndex(src)

	valid := map[string]int{
		"0":   0,
		"8":   8,
		"1:1": 0,
		"1:3": 2,
		"2:1": 3,
		"2:3": 5,
		"2:4": 7,
		"2:9": 7,
		"3:1": 8,
	}
	for spec, want := range valid {
		got, err := parseOffset(spec, lines, len(src))
		if err != nil {
			t.Errorf("parseOffset(%q) failed: %v", spec, err)
			continue
		}
		if got != want {
			t.Errorf("parseOffset(%q) = %d, want %d", spec, got, want)
		}
	}

	for _, spec := range []string{"", "x", "-1", "9", "0:1", "1:0", "4:1", "a:b", "1:"} {
		if _, err := parseOffset(spec, lines, len(src)); err == nil {
			t.Errorf("parseOffset(%q) succeeded", spec)
		}
	}
}

func TestSuggestIDs(t *testing.T) {
	tests := map[string][]string{
		"explicit":          {"add_explicit_type"},
		"ADD_EXPLICIT":      {"add_explicit_type"},
		"add_explicit_typo": {"add_explicit_type"},
		"remove_type":       nil,
	}
	for id, want := range tests {
		if diff := cmp.Diff(want, suggestIDs(id)); diff != "" {
			t.Errorf("suggestIDs(%q) mismatch (-want +got):\n%s", id, diff)
		}
	}
}
