package testgen

import (
	"math/rand"
	"strings"
)

// Mutator applies random edits to source text, mostly breaking it. The
// result is used to exercise error recovery.
type Mutator struct {
	src RandomSource
}

func NewMutator(seed int64) *Mutator {
	return &Mutator{src: &RandSource{rand.New(rand.NewSource(seed))}}
}

func NewMutatorFromData(data []byte) *Mutator {
	return &Mutator{src: &ByteSource{data: data}}
}

var fragments = []string{
	"let", "=", ";", ":", "(", ")", "{", "}", "[", "]", "<", ">", "&", "&&",
	"mut", ",", "::", ".", "fn", "struct", "_", "@", "'", `"`, "/*", "//",
	"1u8", "x", "!", "é",
}

var operators = []string{"+", "-", "*", "/", "==", "!=", "<", ">", "<=", ">=", "&&", "||", "="}

// Mutate returns src with one random edit applied.
func (m *Mutator) Mutate(src string) string {
	if src == "" {
		return m.fragment()
	}
	switch m.src.Intn(5) {
	case 0:
		// Delete a span.
		start := m.src.Intn(len(src))
		end := start + 1 + m.src.Intn(8)
		if end > len(src) {
			end = len(src)
		}
		return src[:start] + src[end:]
	case 1:
		// Insert a fragment.
		at := m.src.Intn(len(src) + 1)
		return src[:at] + m.fragment() + src[at:]
	case 2:
		// Duplicate a span.
		start := m.src.Intn(len(src))
		end := start + 1 + m.src.Intn(16)
		if end > len(src) {
			end = len(src)
		}
		return src[:end] + src[start:end] + src[end:]
	case 3:
		// Swap an operator.
		for _, op := range operators {
			if i := strings.Index(src, " "+op+" "); i >= 0 {
				return src[:i+1] + operators[m.src.Intn(len(operators))] + src[i+1+len(op):]
			}
		}
		return src + m.fragment()
	default:
		// Truncate.
		return src[:m.src.Intn(len(src)+1)]
	}
}

// MutateN applies n mutations in a row.
func (m *Mutator) MutateN(src string, n int) string {
	for i := 0; i < n; i++ {
		src = m.Mutate(src)
	}
	return src
}

func (m *Mutator) fragment() string {
	return fragments[m.src.Intn(len(fragments))]
}
