package syntax

import "fmt"

// TextRange is a half-open [Start, End) byte range into the source text.
type TextRange struct {
	Start int
	End   int
}

func NewRange(start, end int) TextRange {
	if end < start {
		panic(fmt.Sprintf("invalid text range: %d..%d", start, end))
	}
	return TextRange{Start: start, End: end}
}

func (r TextRange) Len() int {
	return r.End - r.Start
}

func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether offset lies inside the range, excluding End.
func (r TextRange) Contains(offset int) bool {
	return r.Start <= offset && offset < r.End
}

// ContainsInclusive also accepts offset == End, which is where an editor
// cursor sits right after the last character of a token.
func (r TextRange) ContainsInclusive(offset int) bool {
	return r.Start <= offset && offset <= r.End
}

func (r TextRange) ContainsRange(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
