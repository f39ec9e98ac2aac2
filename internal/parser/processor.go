package parser

import (
	"github.com/funvibe/typeassist/internal/lexer"
	"github.com/funvibe/typeassist/internal/pipeline"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// Lexer stage was skipped; lex here so the tree always exists.
		l := lexer.New(ctx.SourceCode)
		ctx.TokenStream = l.Tokenize()
	}

	p := New(ctx.TokenStream)
	ctx.Tree = p.ParseSourceFile()

	for _, err := range p.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
