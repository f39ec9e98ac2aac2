package testgen

import (
	"strings"
	"testing"

	"github.com/funvibe/typeassist/internal/parser"
)

func TestGeneratorDeterministic(t *testing.T) {
	a := New(42).GenerateProgram()
	b := New(42).GenerateProgram()
	if a != b {
		t.Errorf("same seed produced different programs:\n%s\n---\n%s", a, b)
	}
	if !strings.HasPrefix(a, Prelude) {
		t.Errorf("program does not start with the prelude:\n%s", a)
	}
}

func TestByteSource(t *testing.T) {
	s := &ByteSource{data: []byte{7, 200}}
	if got := s.Intn(5); got != 2 {
		t.Errorf("Intn(5) = %d, want 2", got)
	}
	if got := s.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
	if got := s.Intn(10); got != 0 {
		t.Errorf("Intn(10) = %d, want 0", got)
	}
	// Exhausted.
	if got := s.Intn(10); got != 0 {
		t.Errorf("Intn after exhaustion = %d, want 0", got)
	}
}

func TestEmptyDataStillValid(t *testing.T) {
	src := NewFromData(nil).GenerateProgram()
	want := Prelude + "fn main() {\n    let v0 = true;\n}\n"
	if src != want {
		t.Errorf("program = %q, want %q", src, want)
	}
}

func TestGeneratedProgramsParse(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		src := New(seed).GenerateProgram()
		root, errs := parser.Parse(src)
		if len(errs) > 0 {
			t.Fatalf("seed %d: %v\n%s", seed, errs[0], src)
		}
		if root.Text() != src {
			t.Fatalf("seed %d: tree is not lossless", seed)
		}
	}
}
