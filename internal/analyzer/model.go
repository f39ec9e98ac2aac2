package analyzer

import (
	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/lexer"
	"github.com/funvibe/typeassist/internal/parser"
	"github.com/funvibe/typeassist/internal/pipeline"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/typesystem"
)

// Model answers type queries for one analyzed file. It only reads maps the
// analyzer filled in, so any number of goroutines may query it at once.
type Model struct {
	file     pipeline.FileID
	root     *syntax.Node
	types    map[*syntax.Node]typesystem.Type
	bindings map[*syntax.Node]typesystem.Type
}

// NewModel wraps the results stored in ctx by the analysis pipeline.
func NewModel(ctx *pipeline.PipelineContext) *Model {
	return &Model{
		file:     ctx.FileID,
		root:     ctx.Tree,
		types:    ctx.TypeMap,
		bindings: ctx.BindingMap,
	}
}

// AnalyzeSource runs the whole pipeline over src and returns the context
// (tree and diagnostics) together with its model.
func AnalyzeSource(src, path string, file pipeline.FileID) (*pipeline.PipelineContext, *Model) {
	ctx := pipeline.NewPipelineContext(src)
	ctx.FilePath = path
	ctx.FileID = file

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&SemanticAnalyzerProcessor{},
	)
	ctx = p.Run(ctx)
	return ctx, NewModel(ctx)
}

func (m *Model) File() pipeline.FileID { return m.file }

func (m *Model) Root() *syntax.Node { return m.root }

// TypeOf returns the inferred type of expr. The query fails when file is not
// the analyzed file or when expr does not lie inside scope of this tree;
// an expression the analyzer never reached is Unknown.
func (m *Model) TypeOf(file pipeline.FileID, scope *syntax.Node, expr ast.Expr) (typesystem.Type, bool) {
	if file != m.file || expr == nil || scope == nil {
		return nil, false
	}
	if scope.Root() != m.root || !descends(expr.Syntax(), scope) {
		return nil, false
	}
	if t, ok := m.types[expr.Syntax()]; ok {
		return t, true
	}
	return typesystem.Unknown(), true
}

// Display renders t as source text.
func (m *Model) Display(t typesystem.Type) string {
	return typesystem.Display(t)
}

// BindingTypeAt finds the let or parameter binding whose name covers
// offset and returns its type.
func (m *Model) BindingTypeAt(offset int) (ast.Name, typesystem.Type, bool) {
	if m.root == nil {
		return ast.Name{}, nil, false
	}
	name, ok := ast.NodeAtOffset(m.root, offset, ast.CastName)
	if !ok {
		return ast.Name{}, nil, false
	}
	t, ok := m.bindings[name.Syntax()]
	if !ok {
		return ast.Name{}, nil, false
	}
	return name, t, true
}

func descends(n, ancestor *syntax.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur == ancestor {
			return true
		}
	}
	return false
}
