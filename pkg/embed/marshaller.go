package typeassist

import (
	"github.com/funvibe/typeassist/internal/assists"
	"github.com/funvibe/typeassist/internal/diagnostics"
)

// Range is a half-open byte range.
type Range struct {
	Start int
	End   int
}

// Insertion adds Text before the byte at Offset of the original text.
type Insertion struct {
	Offset int
	Text   string
}

// Assist is one applicable transformation. Edits refer to the text the
// assist was computed on.
type Assist struct {
	ID     string
	Label  string
	Target Range
	Edits  []Insertion
}

// Diagnostic is a syntax error.
type Diagnostic struct {
	Code    string
	Message string
	Range   Range
}

// Binding is a bound name and its inferred type.
type Binding struct {
	Name  string
	Type  string
	Range Range
}

func toAssist(a assists.Assist) Assist {
	out := Assist{
		ID:     a.ID,
		Label:  a.Label,
		Target: Range{Start: a.Target.Start, End: a.Target.End},
	}
	for _, ins := range a.Edit.Insertions {
		out.Edits = append(out.Edits, Insertion{Offset: ins.Offset, Text: ins.Text})
	}
	return out
}

func toDiagnostics(errs []*diagnostics.DiagnosticError) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, err := range errs {
		out = append(out, Diagnostic{
			Code:    string(err.Code),
			Message: err.Message,
			Range:   Range{Start: err.Range.Start, End: err.Range.End},
		})
	}
	return out
}
