package analyzer

import (
	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/symbols"
	"github.com/funvibe/typeassist/internal/typesystem"
)

func (w *walker) inferCall(e ast.CallExpr, expected typesystem.Type) typesystem.Type {
	args := e.Args()
	callee, ok := e.Callee()
	if !ok {
		w.inferArgs(args, nil)
		return typesystem.Unknown()
	}
	pathExpr, isPath := callee.(ast.PathExpr)
	if !isPath {
		w.infer(callee, nil)
		w.inferArgs(args, nil)
		return typesystem.Unknown()
	}
	path, ok := pathExpr.Path()
	if !ok {
		w.inferArgs(args, nil)
		return typesystem.Unknown()
	}

	segments := path.Segments()
	names := path.Names()
	var result typesystem.Type
	switch len(names) {
	case 1:
		result = w.inferNamedCall(names[0], segments[0], args, expected)
	case 2:
		result = w.inferAssocCall(names[0], names[1], segments[0], args, expected)
	default:
		w.inferArgs(args, nil)
		result = typesystem.Unknown()
	}
	w.record(callee, typesystem.Unknown())
	return result
}

func (w *walker) inferArgs(args []ast.Expr, expected []typesystem.Type) {
	for i, arg := range args {
		var want typesystem.Type
		if i < len(expected) {
			want = expected[i]
		}
		w.infer(arg, want)
	}
}

// inferNamedCall handles `f(..)`: a fn of the file, or one of the prelude
// enum constructors when no fn shadows it.
func (w *walker) inferNamedCall(name string, segment ast.PathSegment, args []ast.Expr, expected typesystem.Type) typesystem.Type {
	if sig, ok := w.scope.FindFunc(name); ok {
		return w.inferFnCall(sig, segment, args, expected)
	}

	switch name {
	case someCtor:
		if len(args) != 1 {
			break
		}
		return typesystem.OptionOf(w.infer(args[0], paramOf(expected, typesystem.OptionName, 0)))
	case okCtor:
		if len(args) != 1 {
			break
		}
		value := w.infer(args[0], paramOf(expected, typesystem.ResultName, 0))
		return typesystem.ResultOf(value, paramOf(expected, typesystem.ResultName, 1))
	case errCtor:
		if len(args) != 1 {
			break
		}
		errType := w.infer(args[0], paramOf(expected, typesystem.ResultName, 1))
		return typesystem.ResultOf(paramOf(expected, typesystem.ResultName, 0), errType)
	}
	w.inferArgs(args, nil)
	return typesystem.Unknown()
}

func (w *walker) inferFnCall(sig *symbols.FnSig, segment ast.PathSegment, args []ast.Expr, expected typesystem.Type) typesystem.Type {
	generics := nameSet(sig.Generics)
	subst := make(typesystem.Subst)

	// Turbofish arguments fix generics positionally.
	for i, arg := range segment.GenericArgs() {
		if i < len(sig.Generics) {
			subst[sig.Generics[i]] = w.lowerType(arg)
		}
	}
	if expected != nil {
		matchGenerics(sig.Ret, expected, generics, subst)
	}

	for i, arg := range args {
		if i >= len(sig.Params) {
			w.infer(arg, nil)
			continue
		}
		declared := sig.Params[i]
		actual := w.infer(arg, expectedFor(declared, sig.Generics, subst))
		matchGenerics(declared, actual, generics, subst)
	}

	return sig.Ret.Apply(closeGenerics(sig.Generics, subst))
}

// inferAssocCall handles `Type::func(..)` for prelude types.
func (w *walker) inferAssocCall(typeName, fn string, typeSegment ast.PathSegment, args []ast.Expr, expected typesystem.Type) typesystem.Type {
	arity, known := symbols.LibraryArity(typeName)
	if !known {
		w.inferArgs(args, nil)
		return typesystem.Unknown()
	}

	// Type arguments come from a turbofish on the type segment, then from
	// the expected type.
	typeArgs := make([]typesystem.Type, arity)
	for i := range typeArgs {
		typeArgs[i] = paramOf(expected, typeName, i)
	}
	for i, arg := range typeSegment.GenericArgs() {
		if i < arity {
			typeArgs[i] = w.lowerType(arg)
		}
	}

	switch typeName + "::" + fn {
	case "Vec::new", "HashMap::new":
		w.inferArgs(args, nil)
		return typesystem.AdtOf(typeName, typeArgs...)
	case "Vec::with_capacity", "HashMap::with_capacity":
		w.inferArgs(args, []typesystem.Type{usize()})
		return typesystem.AdtOf(typeName, typeArgs...)
	case "String::new":
		w.inferArgs(args, nil)
		return stringType()
	case "String::from":
		w.inferArgs(args, nil)
		return stringType()
	case "Box::new":
		if len(args) == 1 {
			return typesystem.AdtOf(typesystem.BoxName, w.infer(args[0], typeArgs[0]))
		}
	}
	w.inferArgs(args, nil)
	return typesystem.Unknown()
}

func (w *walker) inferMethodCall(e ast.MethodCallExpr, expected typesystem.Type) typesystem.Type {
	recvType := typesystem.Unknown()
	if recv, ok := e.Receiver(); ok {
		recvType = autoderef(w.infer(recv, nil))
	}
	args := e.Args()

	rule, ok := methodRules[e.Method()]
	if !ok || typesystem.IsUnknown(recvType) {
		w.inferArgs(args, nil)
		return typesystem.Unknown()
	}
	if rule.argExpected != nil {
		want := rule.argExpected(recvType)
		for _, arg := range args {
			w.infer(arg, want)
		}
	} else {
		w.inferArgs(args, nil)
	}
	return rule.result(recvType)
}
