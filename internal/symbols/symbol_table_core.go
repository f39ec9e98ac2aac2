package symbols

import (
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/typesystem"
)

type SymbolKind int

type ScopeType int

const (
	ScopePrelude ScopeType = iota // Library types and constructors
	ScopeGlobal                   // Items of the file
	ScopeFunction
	ScopeBlock
)

const (
	VariableSymbol SymbolKind = iota
	TypeSymbol
	FunctionSymbol
	GenericParamSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case VariableSymbol:
		return "variable"
	case TypeSymbol:
		return "type"
	case FunctionSymbol:
		return "function"
	case GenericParamSymbol:
		return "generic parameter"
	}
	return "unknown"
}

type Symbol struct {
	Name           string
	Type           typesystem.Type
	Kind           SymbolKind
	IsMutable      bool
	DefinitionNode *syntax.Node // NAME node of the binding, nil for prelude symbols
}

// StructInfo is the declared shape of a struct item. Field types may mention
// the struct's generic parameters as TParam.
type StructInfo struct {
	Name     string
	Generics []string
	Fields   []FieldInfo
	Node     *syntax.Node
}

type FieldInfo struct {
	Name string
	Type typesystem.Type
}

// Field looks a field up by name.
func (s *StructInfo) Field(name string) (typesystem.Type, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// Instantiate returns the struct type with fresh arguments for its generics.
func (s *StructInfo) Instantiate(args []typesystem.Type) typesystem.Type {
	params := make([]typesystem.Type, len(s.Generics))
	for i := range s.Generics {
		if i < len(args) && args[i] != nil {
			params[i] = args[i]
		} else {
			params[i] = typesystem.Unknown()
		}
	}
	return typesystem.AdtOf(s.Name, params...)
}

// SubstFor maps the struct's generic names to the arguments of t.
func (s *StructInfo) SubstFor(t typesystem.Type) typesystem.Subst {
	subst := make(typesystem.Subst, len(s.Generics))
	params := typesystem.Params(t)
	for i, g := range s.Generics {
		if i < len(params) {
			subst[g] = params[i]
		} else {
			subst[g] = typesystem.Unknown()
		}
	}
	return subst
}

// FnSig is the declared signature of a fn item.
type FnSig struct {
	Name     string
	Generics []string
	Params   []typesystem.Type
	Ret      typesystem.Type
	Node     *syntax.Node
}
