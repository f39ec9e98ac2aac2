package analyzer

import (
	"github.com/funvibe/typeassist/internal/config"
	"github.com/funvibe/typeassist/internal/typesystem"
)

// literalVar is the state of one typesystem.TVar. bound is nil while the
// variable is open, and is either a concrete Int/Float or another TVar of
// the same kind once some use constrains it.
type literalVar struct {
	float bool
	bound typesystem.Type
}

func (a *Analyzer) newVar(float bool) typesystem.Type {
	a.vars = append(a.vars, literalVar{float: float})
	return typesystem.TVar{ID: len(a.vars) - 1, Float: float}
}

// shallow follows variable bindings until it reaches a concrete type or an
// open variable.
func (a *Analyzer) shallow(t typesystem.Type) typesystem.Type {
	for {
		v, ok := t.(typesystem.TVar)
		if !ok || a.vars[v.ID].bound == nil {
			return t
		}
		t = a.vars[v.ID].bound
	}
}

// literalType is the type of an unsuffixed literal: the expected type when
// it is of the right kind, a fresh variable otherwise.
func (a *Analyzer) literalType(expected typesystem.Type, float bool) typesystem.Type {
	expected = a.shallow(expected)
	if v, ok := expected.(typesystem.TVar); ok && v.Float == float {
		return v
	}
	if (!float && typesystem.IsInt(expected)) || (float && typesystem.IsFloat(expected)) {
		return expected
	}
	return a.newVar(float)
}

// unify binds the open variables of x to the matching parts of y and the
// other way round. Mismatches are ignored: unify only ever narrows
// literals.
func (a *Analyzer) unify(x, y typesystem.Type, depth int) {
	if x == nil || y == nil || depth > config.MaxTypeDepth {
		return
	}
	x, y = a.shallow(x), a.shallow(y)
	if v, ok := x.(typesystem.TVar); ok {
		a.bindVar(v, y)
		return
	}
	if v, ok := y.(typesystem.TVar); ok {
		a.bindVar(v, x)
		return
	}

	xa, ok := x.(typesystem.TApply)
	if !ok {
		return
	}
	ya, ok := y.(typesystem.TApply)
	if !ok || !sameCtor(xa.Ctor, ya.Ctor) || len(xa.Params) != len(ya.Params) {
		return
	}
	for i := range xa.Params {
		a.unify(xa.Params[i], ya.Params[i], depth+1)
	}
}

// bindVar binds the open variable v to t when t is of the same numeric
// kind. t must already be shallow.
func (a *Analyzer) bindVar(v typesystem.TVar, t typesystem.Type) {
	switch other := t.(type) {
	case typesystem.TVar:
		if other.ID != v.ID && other.Float == v.Float {
			a.vars[v.ID].bound = other
		}
	default:
		if (v.Float && typesystem.IsFloat(t)) || (!v.Float && typesystem.IsInt(t)) {
			a.vars[v.ID].bound = t
		}
	}
}

// sameCtor is constructor equality, except that & and &mut, and arrays of
// different lengths, still line up their parameters.
func sameCtor(x, y typesystem.TypeCtor) bool {
	if x == y {
		return true
	}
	switch x.(type) {
	case typesystem.Ref:
		_, ok := y.(typesystem.Ref)
		return ok
	case typesystem.Array:
		_, ok := y.(typesystem.Array)
		return ok
	}
	return false
}

// resolve replaces every variable in t by its binding, and open ones by
// the default integer or float type.
func (a *Analyzer) resolve(t typesystem.Type) typesystem.Type {
	t = a.shallow(t)
	switch typ := t.(type) {
	case typesystem.TVar:
		if typ.Float {
			return typesystem.Simple(typesystem.Float{Kind: typesystem.DefaultFloat})
		}
		return typesystem.Simple(typesystem.Int{Kind: typesystem.DefaultInt})
	case typesystem.TApply:
		if len(typ.Params) == 0 {
			return typ
		}
		params := make([]typesystem.Type, len(typ.Params))
		for i, p := range typ.Params {
			params[i] = a.resolve(p)
		}
		return typesystem.TApply{Ctor: typ.Ctor, Params: params}
	}
	return t
}

// resolveAll rewrites the recorded types once every body has been walked,
// so a literal typed by a later statement sees that type.
func (a *Analyzer) resolveAll() {
	if len(a.vars) == 0 {
		return
	}
	for n, t := range a.TypeMap {
		a.TypeMap[n] = a.resolve(t)
	}
	for n, t := range a.BindingMap {
		a.BindingMap[n] = a.resolve(t)
	}
}
