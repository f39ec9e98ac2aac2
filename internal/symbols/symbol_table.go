// symbols/symbol_table.go - lexical scopes for the analyzer
//
// The package is split into:
// - symbol_table_core.go: Symbol, StructInfo and FnSig
// - symbol_table.go: SymbolTable and scope operations
// - symbol_table_init.go: prelude types and constructors

package symbols

import (
	"github.com/funvibe/typeassist/internal/typesystem"
)

// SymbolTable is one lexical scope. Lookups walk outward through enclosing
// scopes, and items (structs and fns) resolve the same way.
type SymbolTable struct {
	store     map[string]Symbol
	structs   map[string]*StructInfo
	fns       map[string]*FnSig
	outer     *SymbolTable
	scopeType ScopeType
}

func NewEmptySymbolTable() *SymbolTable {
	return &SymbolTable{
		store:     make(map[string]Symbol),
		structs:   make(map[string]*StructInfo),
		fns:       make(map[string]*FnSig),
		scopeType: ScopeGlobal,
	}
}

func NewEnclosedSymbolTable(outer *SymbolTable, scopeType ScopeType) *SymbolTable {
	st := NewEmptySymbolTable()
	st.outer = outer
	st.scopeType = scopeType
	return st
}

// Outer returns the enclosing scope, nil for the outermost one.
func (s *SymbolTable) Outer() *SymbolTable {
	return s.outer
}

func (s *SymbolTable) ScopeType() ScopeType {
	return s.scopeType
}

func (s *SymbolTable) IsFunctionScope() bool {
	return s.scopeType == ScopeFunction
}

func (s *SymbolTable) IsGlobalScope() bool {
	return s.scopeType == ScopeGlobal
}

// Define binds name in this scope, shadowing any outer binding. Redefining a
// name in the same scope replaces it, as a second `let x` does.
func (s *SymbolTable) Define(sym Symbol) {
	s.store[sym.Name] = sym
}

func (s *SymbolTable) DefineVariable(name string, t typesystem.Type) {
	s.Define(Symbol{Name: name, Type: t, Kind: VariableSymbol})
}

func (s *SymbolTable) Find(name string) (Symbol, bool) {
	for scope := s; scope != nil; scope = scope.outer {
		if sym, ok := scope.store[name]; ok {
			return sym, true
		}
	}
	return Symbol{}, false
}

// IsGenericParam reports whether name refers to a generic parameter in scope.
func (s *SymbolTable) IsGenericParam(name string) bool {
	sym, ok := s.Find(name)
	return ok && sym.Kind == GenericParamSymbol
}

func (s *SymbolTable) DefineStruct(info *StructInfo) {
	s.structs[info.Name] = info
	s.Define(Symbol{Name: info.Name, Kind: TypeSymbol, Type: info.Instantiate(nil), DefinitionNode: info.Node})
}

func (s *SymbolTable) FindStruct(name string) (*StructInfo, bool) {
	for scope := s; scope != nil; scope = scope.outer {
		if info, ok := scope.structs[name]; ok {
			return info, true
		}
	}
	return nil, false
}

func (s *SymbolTable) DefineFunc(sig *FnSig) {
	s.fns[sig.Name] = sig
	s.Define(Symbol{Name: sig.Name, Kind: FunctionSymbol, Type: typesystem.Unknown(), DefinitionNode: sig.Node})
}

func (s *SymbolTable) FindFunc(name string) (*FnSig, bool) {
	for scope := s; scope != nil; scope = scope.outer {
		if sig, ok := scope.fns[name]; ok {
			return sig, true
		}
	}
	return nil, false
}
