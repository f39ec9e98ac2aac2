package analyzer

import (
	"github.com/funvibe/typeassist/internal/typesystem"
)

// Prelude enum constructors.
const (
	noneCtor = "None"
	someCtor = "Some"
	okCtor   = "Ok"
	errCtor  = "Err"
)

func usize() typesystem.Type { return typesystem.Simple(typesystem.Int{Kind: "usize"}) }

func boolean() typesystem.Type { return typesystem.Simple(typesystem.Bool{}) }

func stringType() typesystem.Type { return typesystem.AdtOf(typesystem.StringName) }

// methodRule computes the result of a library method from the receiver type
// with references stripped. argExpected, when set, gives the expected type
// of the arguments.
type methodRule struct {
	result      func(recv typesystem.Type) typesystem.Type
	argExpected func(recv typesystem.Type) typesystem.Type
}

// optionOrResultValue is T for Option<T> and Result<T, E>.
func optionOrResultValue(recv typesystem.Type) typesystem.Type {
	switch adtName(recv) {
	case typesystem.OptionName:
		return paramOf(recv, typesystem.OptionName, 0)
	case typesystem.ResultName:
		return paramOf(recv, typesystem.ResultName, 0)
	}
	return typesystem.Unknown()
}

func vecElem(recv typesystem.Type) typesystem.Type {
	if elem, ok := elementOf(recv); ok {
		return elem
	}
	return typesystem.Unknown()
}

var methodRules = map[string]methodRule{
	"clone": {result: func(recv typesystem.Type) typesystem.Type { return recv }},
	"to_string": {result: func(typesystem.Type) typesystem.Type { return stringType() }},
	"to_owned": {result: func(recv typesystem.Type) typesystem.Type {
		if ctor, ok := typesystem.CtorOf(recv); ok {
			if _, isStr := ctor.(typesystem.Str); isStr {
				return stringType()
			}
			if _, isSlice := ctor.(typesystem.Slice); isSlice {
				return typesystem.VecOf(vecElem(recv))
			}
		}
		return recv
	}},
	"as_str": {result: func(typesystem.Type) typesystem.Type {
		return typesystem.RefTo(typesystem.Simple(typesystem.Str{}), false)
	}},
	"len":      {result: func(typesystem.Type) typesystem.Type { return usize() }},
	"is_empty": {result: func(typesystem.Type) typesystem.Type { return boolean() }},
	"is_some":  {result: func(typesystem.Type) typesystem.Type { return boolean() }},
	"is_none":  {result: func(typesystem.Type) typesystem.Type { return boolean() }},
	"is_ok":    {result: func(typesystem.Type) typesystem.Type { return boolean() }},
	"is_err":   {result: func(typesystem.Type) typesystem.Type { return boolean() }},
	"contains": {result: func(typesystem.Type) typesystem.Type { return boolean() }},
	"unwrap":   {result: optionOrResultValue},
	"expect": {
		result: optionOrResultValue,
		argExpected: func(typesystem.Type) typesystem.Type {
			return typesystem.RefTo(typesystem.Simple(typesystem.Str{}), false)
		},
	},
	"unwrap_or": {result: optionOrResultValue, argExpected: optionOrResultValue},
	"push": {
		result:      func(typesystem.Type) typesystem.Type { return typesystem.Unit() },
		argExpected: vecElem,
	},
	"pop": {result: func(recv typesystem.Type) typesystem.Type {
		if adtName(recv) != typesystem.VecName {
			return typesystem.Unknown()
		}
		return typesystem.OptionOf(vecElem(recv))
	}},
	"get": {
		result: func(recv typesystem.Type) typesystem.Type {
			if _, ok := elementOf(recv); !ok {
				return typesystem.Unknown()
			}
			return typesystem.OptionOf(typesystem.RefTo(vecElem(recv), false))
		},
		argExpected: func(typesystem.Type) typesystem.Type { return usize() },
	},
}
