package main

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestArbitraryHover runs data-driven hover tests. The input code marks
// the cursor position with a '$' character.
func TestArbitraryHover(t *testing.T) {
	tests := []struct {
		name     string
		code     string // Use '$' to mark cursor position
		expected string // Substring expected in hover content. Empty means expect null.
	}{
		{
			name:     "Let Name Start",
			code:     "fn main() { let $a = 1; }",
			expected: "a: i32",
		},
		{
			name:     "Let Name End",
			code:     "fn main() { let a$ = 1; }",
			expected: "a: i32",
		},
		{
			name:     "Mutable Binding",
			code:     "fn main() { let mut c$ount = 0u64; }",
			expected: "count: u64",
		},
		{
			name:     "Parameter",
			code:     "fn f(x$: &str) {}",
			expected: "x: &str",
		},
		{
			name:     "Tuple Element",
			code:     "fn main() { let (x, $y) = (1, true); }",
			expected: "y: bool",
		},
		{
			name:     "Method Result",
			code:     "fn main() { let s = String::new(); let $n = s.len(); }",
			expected: "n: usize",
		},
		{
			name:     "Annotated Binding",
			code:     "fn main() { let $v: Vec<u8> = Vec::new(); }",
			expected: "v: Vec<u8>",
		},
		{
			name:     "Usage Is Not A Binding",
			code:     "fn main() { let a = 1; $a; }",
			expected: "",
		},
		{
			name:     "Keyword",
			code:     "fn main() { l$et a = 1; }",
			expected: "",
		},
		{
			name:     "Comment Line",
			code:     "// This is a $comment\nfn main() {}",
			expected: "",
		},
		{
			name:     "Whitespace",
			code:     "fn main() {  $  }",
			expected: "",
		},
		{
			name:     "Function Name",
			code:     "fn ma$in() {}",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkHover(t, tt.code, tt.expected)
		})
	}
}

// markerPosition removes the '$' marker and returns the code with the
// zero-based line and column of the marker.
func markerPosition(t *testing.T, codeWithMarker string) (string, Position) {
	t.Helper()
	idx := strings.Index(codeWithMarker, "$")
	if idx == -1 {
		t.Fatalf("Test code must contain '$' marker: %s", codeWithMarker)
	}
	code := strings.Replace(codeWithMarker, "$", "", 1)

	line, col := 0, 0
	for i, r := range code {
		if i == idx {
			break
		}
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return code, Position{Line: line, Character: col}
}

func checkHover(t *testing.T, codeWithMarker, expected string) {
	code, pos := markerPosition(t, codeWithMarker)

	uri := "file:///arbitrary.rs"
	server, buf := setupServer(t, uri, code)

	params := HoverParams{
		TextDocument: TextDocumentIdentifier{URI: uri},
		Position:     pos,
	}
	if err := server.handleHover(1, params); err != nil {
		t.Fatalf("handleHover failed: %v", err)
	}

	body := parseLSPOutput(t, buf.String())
	var resp struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v\nOutput: %s", err, body)
	}

	if expected == "" {
		if string(resp.Result) != "null" {
			t.Errorf("Expected null result, got: %s", string(resp.Result))
		}
		return
	}

	var hover Hover
	if err := json.Unmarshal(resp.Result, &hover); err != nil {
		t.Fatalf("Failed to unmarshal Hover result: %v (%s)", err, resp.Result)
	}
	if !strings.Contains(hover.Contents.Value, expected) {
		t.Errorf("Hover content mismatch.\nExpected substring: %q\nActual content: %q", expected, hover.Contents.Value)
	}
	if hover.Range == nil || hover.Range.Start.Line != pos.Line {
		t.Errorf("Hover range %+v does not cover line %d", hover.Range, pos.Line)
	}
}
