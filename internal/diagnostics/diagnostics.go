package diagnostics

import (
	"fmt"

	"github.com/funvibe/typeassist/internal/syntax"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // unexpected character
	ErrL002 ErrorCode = "L002" // unterminated string or char literal
	ErrL003 ErrorCode = "L003" // unterminated block comment

	// Parser
	ErrP001 ErrorCode = "P001" // expected a specific token
	ErrP002 ErrorCode = "P002" // expected an item
	ErrP003 ErrorCode = "P003" // expected an expression
	ErrP004 ErrorCode = "P004" // expected a pattern
	ErrP005 ErrorCode = "P005" // expected a type
	ErrP006 ErrorCode = "P006" // expected a name
)

// DiagnosticError is a problem found while lexing or parsing a file.
type DiagnosticError struct {
	Code    ErrorCode
	Range   syntax.TextRange
	Message string
	File    string
}

func NewError(code ErrorCode, rng syntax.TextRange, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Range:   rng,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: error [%s]: %s", e.File, e.Range.Start, e.Code, e.Message)
	}
	return fmt.Sprintf("error [%s] at %d: %s", e.Code, e.Range.Start, e.Message)
}
