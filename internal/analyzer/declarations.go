package analyzer

import (
	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/symbols"
	"github.com/funvibe/typeassist/internal/typesystem"
)

func (a *Analyzer) declareStruct(def ast.StructDef) {
	name, ok := def.Name()
	if !ok || name.Text() == "" {
		return
	}
	generics := def.GenericParams()
	isGeneric := genericSet(generics)

	info := &symbols.StructInfo{
		Name:     name.Text(),
		Generics: generics,
		Node:     def.Syntax(),
	}
	for _, field := range def.Fields() {
		fieldName, ok := field.Name()
		if !ok {
			continue
		}
		t := typesystem.Unknown()
		if ref, ok := field.Type(); ok {
			t = a.lowerTypeRef(ref, isGeneric)
		}
		info.Fields = append(info.Fields, symbols.FieldInfo{Name: fieldName.Text(), Type: t})
	}
	a.symbolTable.DefineStruct(info)
}

func (a *Analyzer) declareFunc(def ast.FnDef) {
	name, ok := def.Name()
	if !ok || name.Text() == "" {
		return
	}
	generics := def.GenericParams()
	isGeneric := genericSet(generics)

	sig := &symbols.FnSig{
		Name:     name.Text(),
		Generics: generics,
		Ret:      typesystem.Unit(),
		Node:     def.Syntax(),
	}
	for _, param := range def.Params() {
		t := typesystem.Unknown()
		if ref, ok := param.Type(); ok {
			t = a.lowerTypeRef(ref, isGeneric)
		}
		sig.Params = append(sig.Params, t)
	}
	if ret, ok := def.RetType(); ok {
		sig.Ret = a.lowerTypeRef(ret, isGeneric)
	}
	a.symbolTable.DefineFunc(sig)
}

func genericSet(names []string) func(string) bool {
	set := nameSet(names)
	return func(name string) bool { return set[name] }
}
