package typesystem

// Type is the semantic type of an expression. The set of implementations
// is closed: TUnknown, TApply, TParam and TVar.
type Type interface {
	String() string
	Apply(Subst) Type
	isType()
}

// Subst maps generic parameter names to the types they stand for.
type Subst map[string]Type

// TUnknown marks a type inference could not determine.
type TUnknown struct{}

func (TUnknown) isType() {}

func (t TUnknown) String() string { return Display(t) }

func (t TUnknown) Apply(Subst) Type { return t }

// TApply is a type constructor applied to parameters. Primitives are
// constructors without parameters.
type TApply struct {
	Ctor   TypeCtor
	Params []Type
}

func (TApply) isType() {}

func (t TApply) String() string { return Display(t) }

func (t TApply) Apply(s Subst) Type {
	if len(t.Params) == 0 {
		return t
	}
	params := make([]Type, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.Apply(s)
	}
	return TApply{Ctor: t.Ctor, Params: params}
}

// TParam is a generic parameter of the enclosing item, e.g. T inside
// `fn id<T>(x: T) -> T`.
type TParam struct {
	Name string
}

func (TParam) isType() {}

func (t TParam) String() string { return t.Name }

func (t TParam) Apply(s Subst) Type {
	if replacement, ok := s[t.Name]; ok {
		return replacement
	}
	return t
}

// TVar is the still open type of an unsuffixed numeric literal. The
// analyzer binds it to a concrete Int or Float when some use constrains
// it, and falls back to DefaultInt or DefaultFloat otherwise, so no TVar
// survives analysis.
type TVar struct {
	ID    int
	Float bool
}

func (TVar) isType() {}

func (t TVar) String() string { return Display(t) }

func (t TVar) Apply(Subst) Type { return t }

// TypeCtor is the head of a TApply. All constructors are comparable.
type TypeCtor interface {
	isTypeCtor()
}

type Bool struct{}
type Char struct{}
type Str struct{}
type Never struct{}

// Int is a sized integer such as i32 or usize.
type Int struct{ Kind string }

// Float is f32 or f64.
type Float struct{ Kind string }

// Tuple takes Arity parameters; arity zero is the unit type.
type Tuple struct{ Arity int }

// Ref takes one parameter, the referenced type.
type Ref struct{ Mutable bool }

// Slice takes the element type.
type Slice struct{}

// Array takes the element type. Len is -1 when the length is not a
// literal.
type Array struct{ Len int }

// Adt is a named struct or library type; its parameters are the generic
// arguments.
type Adt struct{ Name string }

func (Bool) isTypeCtor()  {}
func (Char) isTypeCtor()  {}
func (Str) isTypeCtor()   {}
func (Never) isTypeCtor() {}
func (Int) isTypeCtor()   {}
func (Float) isTypeCtor() {}
func (Tuple) isTypeCtor() {}
func (Ref) isTypeCtor()   {}
func (Slice) isTypeCtor() {}
func (Array) isTypeCtor() {}
func (Adt) isTypeCtor()   {}

// Unknown returns the single unknown type value.
func Unknown() Type { return TUnknown{} }

func Simple(ctor TypeCtor) Type { return TApply{Ctor: ctor} }

func Unit() Type { return TApply{Ctor: Tuple{Arity: 0}} }

func TupleOf(elems ...Type) Type {
	return TApply{Ctor: Tuple{Arity: len(elems)}, Params: elems}
}

func RefTo(inner Type, mutable bool) Type {
	return TApply{Ctor: Ref{Mutable: mutable}, Params: []Type{inner}}
}

func SliceOf(elem Type) Type {
	return TApply{Ctor: Slice{}, Params: []Type{elem}}
}

func ArrayOf(elem Type, length int) Type {
	return TApply{Ctor: Array{Len: length}, Params: []Type{elem}}
}

func AdtOf(name string, params ...Type) Type {
	return TApply{Ctor: Adt{Name: name}, Params: params}
}

func OptionOf(t Type) Type    { return AdtOf(OptionName, t) }
func ResultOf(t, e Type) Type { return AdtOf(ResultName, t, e) }
func VecOf(t Type) Type       { return AdtOf(VecName, t) }

const (
	OptionName  = "Option"
	ResultName  = "Result"
	VecName     = "Vec"
	StringName  = "String"
	BoxName     = "Box"
	HashMapName = "HashMap"
)

var (
	IntKinds   = []string{"i8", "i16", "i32", "i64", "i128", "isize", "u8", "u16", "u32", "u64", "u128", "usize"}
	FloatKinds = []string{"f32", "f64"}
)

// DefaultInt and DefaultFloat are used for unsuffixed literals that nothing
// constrains.
const (
	DefaultInt   = "i32"
	DefaultFloat = "f64"
)

// PrimitiveByName resolves a primitive type keyword.
func PrimitiveByName(name string) (Type, bool) {
	switch name {
	case "bool":
		return Simple(Bool{}), true
	case "char":
		return Simple(Char{}), true
	case "str":
		return Simple(Str{}), true
	}
	for _, k := range IntKinds {
		if k == name {
			return Simple(Int{Kind: k}), true
		}
	}
	for _, k := range FloatKinds {
		if k == name {
			return Simple(Float{Kind: k}), true
		}
	}
	return nil, false
}

// IsUnknown reports whether t itself is TUnknown. Parameters are not
// inspected.
func IsUnknown(t Type) bool {
	if t == nil {
		return true
	}
	_, ok := t.(TUnknown)
	return ok
}

// Params returns the parameters of a TApply, nil for other variants.
func Params(t Type) []Type {
	if app, ok := t.(TApply); ok {
		return app.Params
	}
	return nil
}

// CtorOf returns the constructor of a TApply.
func CtorOf(t Type) (TypeCtor, bool) {
	if app, ok := t.(TApply); ok {
		return app.Ctor, true
	}
	return nil, false
}

func IsInt(t Type) bool {
	ctor, ok := CtorOf(t)
	if !ok {
		return false
	}
	_, isInt := ctor.(Int)
	return isInt
}

func IsFloat(t Type) bool {
	ctor, ok := CtorOf(t)
	if !ok {
		return false
	}
	_, isFloat := ctor.(Float)
	return isFloat
}

// Equal compares two types structurally.
func Equal(a, b Type) bool {
	switch ta := a.(type) {
	case TUnknown:
		_, ok := b.(TUnknown)
		return ok
	case TParam:
		tb, ok := b.(TParam)
		return ok && ta.Name == tb.Name
	case TVar:
		tb, ok := b.(TVar)
		return ok && ta.ID == tb.ID
	case TApply:
		tb, ok := b.(TApply)
		if !ok || ta.Ctor != tb.Ctor || len(ta.Params) != len(tb.Params) {
			return false
		}
		for i := range ta.Params {
			if !Equal(ta.Params[i], tb.Params[i]) {
				return false
			}
		}
		return true
	}
	return false
}
