package analyzer

import (
	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/symbols"
	"github.com/funvibe/typeassist/internal/typesystem"
)

// bindPattern defines every name pat introduces in the current scope. t is
// the type of the value being matched; parts that cannot be related to t
// are bound as Unknown.
func (w *walker) bindPattern(pat ast.Pat, t typesystem.Type) {
	if t == nil {
		t = typesystem.Unknown()
	}
	w.record(pat, t)

	switch p := pat.(type) {
	case ast.BindPat:
		bound := t
		if p.IsRef() {
			bound = typesystem.RefTo(t, p.IsMut())
		}
		if name, ok := p.Name(); ok && name.Text() != "" {
			w.scope.Define(symbols.Symbol{
				Name:           name.Text(),
				Type:           bound,
				Kind:           symbols.VariableSymbol,
				IsMutable:      p.IsMut() && !p.IsRef(),
				DefinitionNode: name.Syntax(),
			})
			w.a.BindingMap[name.Syntax()] = bound
		}
		if sub, ok := p.SubPat(); ok {
			w.bindPattern(sub, t)
		}

	case ast.TuplePat:
		for i, field := range p.Fields() {
			elem, ok := tupleElem(t, i)
			if !ok || len(typesystem.Params(t)) != len(p.Fields()) {
				elem = typesystem.Unknown()
			}
			w.bindPattern(field, elem)
		}

	case ast.TupleStructPat:
		w.bindTupleStructPat(p, t)

	case ast.StructPat:
		var info *symbols.StructInfo
		if path, ok := p.Path(); ok {
			if names := path.Names(); len(names) > 0 {
				info, _ = w.scope.FindStruct(names[len(names)-1])
			}
		}
		for _, field := range p.Fields() {
			ft := typesystem.Unknown()
			if info != nil && adtName(t) == info.Name {
				if declared, ok := info.Field(field.FieldName()); ok {
					ft = declared.Apply(info.SubstFor(t))
				}
			}
			if sub, ok := field.Pat(); ok {
				w.bindPattern(sub, ft)
			}
		}

	case ast.RefPat:
		inner := typesystem.Unknown()
		if isRef(t) {
			inner, _ = derefOnce(t)
		}
		if sub, ok := p.Pat(); ok {
			w.bindPattern(sub, inner)
		}

	case ast.PlaceholderPat, ast.LiteralPat:
		// Bind nothing.
	}
}

func (w *walker) bindTupleStructPat(p ast.TupleStructPat, t typesystem.Type) {
	var ctor string
	if path, ok := p.Path(); ok {
		if names := path.Names(); len(names) > 0 {
			ctor = names[len(names)-1]
		}
	}

	var payload []typesystem.Type
	switch ctor {
	case someCtor:
		payload = []typesystem.Type{paramOf(t, typesystem.OptionName, 0)}
	case okCtor:
		payload = []typesystem.Type{paramOf(t, typesystem.ResultName, 0)}
	case errCtor:
		payload = []typesystem.Type{paramOf(t, typesystem.ResultName, 1)}
	}

	for i, field := range p.Fields() {
		ft := typesystem.Unknown()
		if i < len(payload) {
			ft = payload[i]
		}
		w.bindPattern(field, ft)
	}
}
