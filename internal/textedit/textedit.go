// Package textedit describes edits as data and applies them to text.
package textedit

import (
	"strings"

	"github.com/pkg/errors"
)

// Insertion adds Text before the byte at Offset of the original text.
type Insertion struct {
	Offset int
	Text   string
}

// TextEdit is an ordered list of insertions. Every offset refers to the
// original, unmodified text.
type TextEdit struct {
	Insertions []Insertion
}

// Insert appends an insertion.
func (e *TextEdit) Insert(offset int, text string) {
	e.Insertions = append(e.Insertions, Insertion{Offset: offset, Text: text})
}

func (e TextEdit) IsEmpty() bool {
	return len(e.Insertions) == 0
}

// Validate checks that every offset lies inside a text of length n and
// that offsets never decrease.
func (e TextEdit) Validate(n int) error {
	prev := 0
	for i, ins := range e.Insertions {
		if ins.Offset < 0 || ins.Offset > n {
			return errors.Errorf("insertion %d: offset %d outside text of length %d", i, ins.Offset, n)
		}
		if ins.Offset < prev {
			return errors.Errorf("insertion %d: offset %d precedes offset %d", i, ins.Offset, prev)
		}
		prev = ins.Offset
	}
	return nil
}

// Apply returns src with all insertions made left to right.
func (e TextEdit) Apply(src string) (string, error) {
	if err := e.Validate(len(src)); err != nil {
		return "", err
	}

	var sb strings.Builder
	size := len(src)
	for _, ins := range e.Insertions {
		size += len(ins.Text)
	}
	sb.Grow(size)

	last := 0
	for _, ins := range e.Insertions {
		sb.WriteString(src[last:ins.Offset])
		sb.WriteString(ins.Text)
		last = ins.Offset
	}
	sb.WriteString(src[last:])
	return sb.String(), nil
}
