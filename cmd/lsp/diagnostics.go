package main

import (
	"github.com/funvibe/typeassist/internal/diagnostics"
	"github.com/funvibe/typeassist/internal/textedit"
)

func (s *LanguageServer) publishDiagnostics(uri string, snap snapshot) error {
	var errs []*diagnostics.DiagnosticError
	if snap.context != nil {
		errs = snap.context.Errors
	}
	version := snap.version

	notification := NotificationMessage{
		Jsonrpc: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params: PublishDiagnosticsParams{
			URI:         uri,
			Version:     &version,
			Diagnostics: convertDiagnostics(errs, snap.lines),
		},
	}
	return s.sendNotification(notification)
}

func convertDiagnostics(errors []*diagnostics.DiagnosticError, lines *textedit.LineIndex) []Diagnostic {
	result := make([]Diagnostic, 0, len(errors))
	for _, err := range errors {
		result = append(result, Diagnostic{
			Range:    toRange(lines, err.Range.Start, err.Range.End),
			Severity: SeverityError,
			Code:     string(err.Code),
			Message:  err.Message,
			Source:   "typeassist",
		})
	}
	return result
}
