package analyzer

import (
	"github.com/funvibe/typeassist/internal/pipeline"
	"github.com/funvibe/typeassist/internal/symbols"
)

type SemanticAnalyzerProcessor struct{}

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Tree == nil {
		return ctx
	}

	analyzer := New(symbols.NewSymbolTable())
	analyzer.Analyze(ctx.Tree)

	// Export inferred types to context
	ctx.TypeMap = analyzer.TypeMap
	ctx.BindingMap = analyzer.BindingMap
	return ctx
}
