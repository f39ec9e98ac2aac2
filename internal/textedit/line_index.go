package textedit

import (
	"sort"
	"unicode/utf8"
)

// LineIndex converts between byte offsets and line/column positions. LSP
// columns count UTF-16 code units.
type LineIndex struct {
	text       string
	lineStarts []int
}

func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{text: text, lineStarts: starts}
}

func (li *LineIndex) LineCount() int {
	return len(li.lineStarts)
}

// Position returns the zero-based line and UTF-16 column of offset. Offsets
// past the end clamp to the end of the text.
func (li *LineIndex) Position(offset int) (line, character int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.text) {
		offset = len(li.text)
	}
	line = sort.Search(len(li.lineStarts), func(i int) bool { return li.lineStarts[i] > offset }) - 1
	start := li.lineStarts[line]
	for _, r := range li.text[start:offset] {
		character += utf16Len(r)
	}
	return line, character
}

// Offset returns the byte offset of a zero-based line and UTF-16 column. A
// column past the end of the line clamps to the line end, and a line past
// the end clamps to the end of the text.
func (li *LineIndex) Offset(line, character int) int {
	if line < 0 {
		return 0
	}
	if line >= len(li.lineStarts) {
		return len(li.text)
	}
	start := li.lineStarts[line]
	end := len(li.text)
	if line+1 < len(li.lineStarts) {
		end = li.lineStarts[line+1] - 1
	}

	col := 0
	for i, r := range li.text[start:end] {
		if col >= character {
			return start + i
		}
		col += utf16Len(r)
	}
	return end
}

func utf16Len(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}
