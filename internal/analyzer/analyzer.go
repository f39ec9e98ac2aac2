// Package analyzer infers the type of every expression in a parsed file.
//
// Analysis is eager and runs once per file: headers (structs and fn
// signatures) are collected first, then each fn body is walked with a
// lexical scope. The result is a set of maps from syntax nodes to types that
// never change afterwards, so a Model built over them is safe for
// concurrent readers.
package analyzer

import (
	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/symbols"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/typesystem"
)

type Analyzer struct {
	symbolTable *symbols.SymbolTable

	// TypeMap holds the inferred type of every expression node visited.
	TypeMap map[*syntax.Node]typesystem.Type
	// BindingMap holds the type given to each NAME a pattern binds.
	BindingMap map[*syntax.Node]typesystem.Type

	// vars holds the unsuffixed literal variables, indexed by TVar.ID.
	vars []literalVar
}

func New(symbolTable *symbols.SymbolTable) *Analyzer {
	if symbolTable == nil {
		symbolTable = symbols.NewSymbolTable()
	}
	return &Analyzer{
		symbolTable: symbolTable,
		TypeMap:     make(map[*syntax.Node]typesystem.Type),
		BindingMap:  make(map[*syntax.Node]typesystem.Type),
	}
}

// walker carries the per-body state of the inference pass.
type walker struct {
	a     *Analyzer
	scope *symbols.SymbolTable
	// retType is the declared return type of the fn being walked; return
	// expressions are checked against it.
	retType typesystem.Type
}

// Analyze runs both passes over the tree rooted at root.
func (a *Analyzer) Analyze(root *syntax.Node) {
	if root == nil {
		return
	}
	a.AnalyzeHeaders(root)
	a.AnalyzeBodies(root)
	a.resolveAll()
}

// AnalyzeHeaders registers every struct and fn item of the file, including
// items nested in blocks. Structs go first so signatures can refer to them.
func (a *Analyzer) AnalyzeHeaders(root *syntax.Node) {
	var fns []ast.FnDef
	root.Walk(func(n *syntax.Node) bool {
		switch n.Kind() {
		case syntax.STRUCT_DEF:
			if def, ok := ast.CastStructDef(n); ok {
				a.declareStruct(def)
			}
		case syntax.FN_DEF:
			if def, ok := ast.CastFnDef(n); ok {
				fns = append(fns, def)
			}
		}
		return true
	})
	for _, def := range fns {
		a.declareFunc(def)
	}
}

// AnalyzeBodies infers every fn body.
func (a *Analyzer) AnalyzeBodies(root *syntax.Node) {
	root.Walk(func(n *syntax.Node) bool {
		if n.Kind() != syntax.FN_DEF {
			return true
		}
		if def, ok := ast.CastFnDef(n); ok {
			a.analyzeFunc(def)
		}
		return true
	})
}

func (a *Analyzer) analyzeFunc(def ast.FnDef) {
	body, ok := def.Body()
	if !ok {
		return
	}

	w := &walker{
		a:     a,
		scope: symbols.NewEnclosedSymbolTable(a.symbolTable, symbols.ScopeFunction),
	}
	generics := def.GenericParams()
	for _, g := range generics {
		w.scope.Define(symbols.Symbol{Name: g, Kind: symbols.GenericParamSymbol, Type: typesystem.TParam{Name: g}})
	}

	w.retType = typesystem.Unit()
	if ret, ok := def.RetType(); ok {
		w.retType = w.lowerType(ret)
	}

	for _, param := range def.Params() {
		t := typesystem.Unknown()
		if ref, ok := param.Type(); ok {
			t = w.lowerType(ref)
		}
		if pat, ok := param.Pat(); ok {
			w.bindPattern(pat, t)
		}
	}

	w.inferBlock(body, w.retType)
}

// unify narrows the literal variables of actual by what the surrounding
// code expects.
func (w *walker) unify(actual, expected typesystem.Type) {
	if expected != nil {
		w.a.unify(actual, expected, 0)
	}
}

func (w *walker) record(n ast.AstNode, t typesystem.Type) typesystem.Type {
	if t == nil {
		t = typesystem.Unknown()
	}
	w.a.TypeMap[n.Syntax()] = t
	return t
}

func (w *walker) enterScope(scopeType symbols.ScopeType) func() {
	outer := w.scope
	w.scope = symbols.NewEnclosedSymbolTable(outer, scopeType)
	return func() { w.scope = outer }
}
