package textedit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		edits []Insertion
		want  string
	}{
		{"single", "let a = 1;", []Insertion{{5, ": i32"}}, "let a: i32 = 1;"},
		{"at start and end", "x", []Insertion{{0, "<"}, {1, ">"}}, "<x>"},
		{"same offset keeps order", "ab", []Insertion{{1, "1"}, {1, "2"}}, "a12b"},
		{"empty edit", "unchanged", nil, "unchanged"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edit := TextEdit{}
			for _, ins := range tt.edits {
				edit.Insert(ins.Offset, ins.Text)
			}
			got, err := edit.Apply(tt.src)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyRejectsBadOffsets(t *testing.T) {
	tests := []struct {
		name  string
		edits []Insertion
	}{
		{"negative", []Insertion{{-1, "x"}}},
		{"past end", []Insertion{{4, "x"}}},
		{"descending", []Insertion{{2, "x"}, {1, "y"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edit := TextEdit{Insertions: tt.edits}
			if _, err := edit.Apply("abc"); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestLineIndex(t *testing.T) {
	text := "fn main() {\n    let ü = \"😀\";\n}"
	li := NewLineIndex(text)

	if li.LineCount() != 3 {
		t.Fatalf("LineCount = %d, want 3", li.LineCount())
	}

	type pos struct{ Line, Char int }
	offsets := map[string]int{
		"start":      0,
		"line two":   len("fn main() {\n"),
		"after u":    len("fn main() {\n    let ü"),
		"after face": len("fn main() {\n    let ü = \"😀"),
		"last":       len(text),
	}
	want := map[string]pos{
		"start":      {0, 0},
		"line two":   {1, 0},
		"after u":    {1, 9},
		"after face": {1, 15},
		"last":       {2, 1},
	}
	got := make(map[string]pos, len(offsets))
	for name, off := range offsets {
		line, char := li.Position(off)
		got[name] = pos{line, char}
		if back := li.Offset(line, char); back != off {
			t.Errorf("%s: Offset(%d, %d) = %d, want %d", name, line, char, back, off)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestLineIndexClamps(t *testing.T) {
	li := NewLineIndex("ab\ncd")
	if got := li.Offset(0, 99); got != 2 {
		t.Errorf("Offset past line end = %d, want 2", got)
	}
	if got := li.Offset(9, 0); got != 5 {
		t.Errorf("Offset past last line = %d, want 5", got)
	}
	if line, char := li.Position(99); line != 1 || char != 2 {
		t.Errorf("Position past end = %d:%d, want 1:2", line, char)
	}
}
