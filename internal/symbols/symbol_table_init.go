package symbols

import (
	"github.com/funvibe/typeassist/internal/typesystem"
)

// libraryTypes lists the prelude types and how many generic arguments each
// takes.
var libraryTypes = map[string]int{
	typesystem.OptionName:  1,
	typesystem.ResultName:  2,
	typesystem.VecName:     1,
	typesystem.StringName:  0,
	typesystem.BoxName:     1,
	typesystem.HashMapName: 2,
}

// NewSymbolTable returns a file scope enclosed by the prelude.
func NewSymbolTable() *SymbolTable {
	prelude := NewEmptySymbolTable()
	prelude.scopeType = ScopePrelude
	prelude.initPrelude()
	return NewEnclosedSymbolTable(prelude, ScopeGlobal)
}

func (s *SymbolTable) initPrelude() {
	for name, arity := range libraryTypes {
		params := make([]typesystem.Type, arity)
		for i := range params {
			params[i] = typesystem.Unknown()
		}
		s.Define(Symbol{Name: name, Kind: TypeSymbol, Type: typesystem.AdtOf(name, params...)})
	}
}

// LibraryArity returns the number of generic arguments of a prelude type.
func LibraryArity(name string) (int, bool) {
	arity, ok := libraryTypes[name]
	return arity, ok
}
