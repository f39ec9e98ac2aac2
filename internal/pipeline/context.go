package pipeline

import (
	"github.com/funvibe/typeassist/internal/diagnostics"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/token"
	"github.com/funvibe/typeassist/internal/typesystem"
)

// FileID identifies a source file within a host session.
type FileID uint32

// PipelineContext carries one file through lexing, parsing and analysis.
// Everything a stage stores here is read-only for later consumers.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	FileID      FileID
	TokenStream []token.Token
	Tree        *syntax.Node

	// TypeMap holds the inferred type of every expression node.
	TypeMap map[*syntax.Node]typesystem.Type
	// BindingMap holds the type of every NAME introduced by a let
	// statement or a parameter.
	BindingMap map[*syntax.Node]typesystem.Type

	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		TypeMap:    make(map[*syntax.Node]typesystem.Type),
		BindingMap: make(map[*syntax.Node]typesystem.Type),
	}
}
