package assists

import (
	"fmt"

	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/textedit"
)

// ActionBuilder collects the target and edit of one assist.
type ActionBuilder struct {
	id     string
	label  string
	target *syntax.TextRange
	edit   textedit.TextEdit
}

func NewActionBuilder(id, label string) *ActionBuilder {
	return &ActionBuilder{id: id, label: label}
}

// Target records the range the editor highlights for this assist. It may be
// called once; a second call is a bug in the handler.
func (b *ActionBuilder) Target(r syntax.TextRange) {
	if b.target != nil {
		panic(fmt.Sprintf("assist %s: target set twice (%s, then %s)", b.id, *b.target, r))
	}
	b.target = &r
}

// Insert records text to insert at offset of the original source.
func (b *ActionBuilder) Insert(offset int, text string) {
	b.edit.Insert(offset, text)
}

// Build returns the assist once a target and at least one edit exist.
func (b *ActionBuilder) Build() (Assist, bool) {
	if b.target == nil || b.edit.IsEmpty() {
		return Assist{}, false
	}
	insertions := make([]textedit.Insertion, len(b.edit.Insertions))
	copy(insertions, b.edit.Insertions)
	return Assist{
		ID:     b.id,
		Label:  b.label,
		Target: *b.target,
		Edit:   textedit.TextEdit{Insertions: insertions},
	}, true
}
