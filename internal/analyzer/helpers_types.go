package analyzer

import (
	"github.com/funvibe/typeassist/internal/typesystem"
)

// adtName returns the name of an Adt type, or "" for anything else.
func adtName(t typesystem.Type) string {
	ctor, ok := typesystem.CtorOf(t)
	if !ok {
		return ""
	}
	if adt, ok := ctor.(typesystem.Adt); ok {
		return adt.Name
	}
	return ""
}

// paramOf returns the i-th parameter of t when t is the named Adt, and
// Unknown otherwise. It extracts what an expected type says about a
// constructor argument, e.g. T from an expected Option<T>.
func paramOf(t typesystem.Type, name string, i int) typesystem.Type {
	if adtName(t) != name {
		return typesystem.Unknown()
	}
	params := typesystem.Params(t)
	if i >= len(params) {
		return typesystem.Unknown()
	}
	return params[i]
}

// tupleElem returns the i-th element of a tuple type.
func tupleElem(t typesystem.Type, i int) (typesystem.Type, bool) {
	ctor, ok := typesystem.CtorOf(t)
	if !ok {
		return nil, false
	}
	if _, ok := ctor.(typesystem.Tuple); !ok {
		return nil, false
	}
	params := typesystem.Params(t)
	if i < 0 || i >= len(params) {
		return nil, false
	}
	return params[i], true
}

func isRef(t typesystem.Type) bool {
	ctor, ok := typesystem.CtorOf(t)
	if !ok {
		return false
	}
	_, ok = ctor.(typesystem.Ref)
	return ok
}

func isNever(t typesystem.Type) bool {
	ctor, ok := typesystem.CtorOf(t)
	if !ok {
		return false
	}
	_, ok = ctor.(typesystem.Never)
	return ok
}

// derefOnce strips one level of `&`, `&mut` or Box.
func derefOnce(t typesystem.Type) (typesystem.Type, bool) {
	if isRef(t) || adtName(t) == typesystem.BoxName {
		params := typesystem.Params(t)
		if len(params) == 1 {
			return params[0], true
		}
	}
	return nil, false
}

// autoderef strips every reference layer, as method and field lookups do.
func autoderef(t typesystem.Type) typesystem.Type {
	for isRef(t) {
		inner, ok := derefOnce(t)
		if !ok {
			break
		}
		t = inner
	}
	return t
}

// elementOf returns the element type of an array, slice or Vec.
func elementOf(t typesystem.Type) (typesystem.Type, bool) {
	ctor, ok := typesystem.CtorOf(t)
	if !ok {
		return nil, false
	}
	switch c := ctor.(type) {
	case typesystem.Array, typesystem.Slice:
		params := typesystem.Params(t)
		if len(params) == 1 {
			return params[0], true
		}
	case typesystem.Adt:
		if c.Name == typesystem.VecName {
			params := typesystem.Params(t)
			if len(params) == 1 {
				return params[0], true
			}
		}
	}
	return nil, false
}

// matchGenerics walks a declared type and an actual type side by side and
// records, for each generic parameter of the declaration, the first known
// type found in its position.
func matchGenerics(declared, actual typesystem.Type, generics map[string]bool, subst typesystem.Subst) {
	if actual == nil || typesystem.IsUnknown(actual) {
		return
	}
	switch d := declared.(type) {
	case typesystem.TParam:
		if !generics[d.Name] {
			return
		}
		if prev, ok := subst[d.Name]; !ok || typesystem.IsUnknown(prev) {
			subst[d.Name] = actual
		}
	case typesystem.TApply:
		a, ok := actual.(typesystem.TApply)
		if !ok || a.Ctor != d.Ctor || len(a.Params) != len(d.Params) {
			return
		}
		for i := range d.Params {
			matchGenerics(d.Params[i], a.Params[i], generics, subst)
		}
	}
}

// closeGenerics maps every generic still unsolved in subst to Unknown.
func closeGenerics(names []string, subst typesystem.Subst) typesystem.Subst {
	for _, g := range names {
		if _, ok := subst[g]; !ok {
			subst[g] = typesystem.Unknown()
		}
	}
	return subst
}

// expectedFor narrows a declared type for use as an expected type: the
// generics solved so far are substituted and the rest become Unknown.
func expectedFor(declared typesystem.Type, names []string, subst typesystem.Subst) typesystem.Type {
	partial := make(typesystem.Subst, len(names))
	for _, g := range names {
		if t, ok := subst[g]; ok {
			partial[g] = t
		} else {
			partial[g] = typesystem.Unknown()
		}
	}
	return declared.Apply(partial)
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
