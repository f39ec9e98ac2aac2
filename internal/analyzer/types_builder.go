package analyzer

import (
	"strconv"

	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/symbols"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/typesystem"
)

// lowerType converts a written type inside a fn body, where generic
// parameters are resolved through the scope.
func (w *walker) lowerType(ref ast.TypeRef) typesystem.Type {
	return w.a.lowerTypeRef(ref, w.scope.IsGenericParam)
}

// lowerTypeRef converts a written type into a typesystem.Type. Names that
// are neither generic parameters, primitives nor known items still become
// an Adt so that the annotation round-trips through Display.
func (a *Analyzer) lowerTypeRef(ref ast.TypeRef, isGeneric func(string) bool) typesystem.Type {
	switch t := ref.(type) {
	case ast.PathType:
		path, ok := t.Path()
		if !ok {
			return typesystem.Unknown()
		}
		return a.lowerPath(path, isGeneric)

	case ast.TupleType:
		fields := t.Fields()
		if t.IsParenthesized() {
			return a.lowerTypeRef(fields[0], isGeneric)
		}
		elems := make([]typesystem.Type, len(fields))
		for i, f := range fields {
			elems[i] = a.lowerTypeRef(f, isGeneric)
		}
		return typesystem.TupleOf(elems...)

	case ast.RefType:
		inner := typesystem.Unknown()
		if in, ok := t.Inner(); ok {
			inner = a.lowerTypeRef(in, isGeneric)
		}
		return typesystem.RefTo(inner, t.IsMut())

	case ast.SliceType:
		elem := typesystem.Unknown()
		if e, ok := t.Elem(); ok {
			elem = a.lowerTypeRef(e, isGeneric)
		}
		return typesystem.SliceOf(elem)

	case ast.ArrayType:
		elem := typesystem.Unknown()
		if e, ok := t.Elem(); ok {
			elem = a.lowerTypeRef(e, isGeneric)
		}
		length := -1
		if lenExpr, ok := t.Len(); ok {
			if n, ok := literalLength(lenExpr); ok {
				length = n
			}
		}
		return typesystem.ArrayOf(elem, length)

	case ast.NeverType:
		return typesystem.Simple(typesystem.Never{})

	case ast.PlaceholderType:
		return typesystem.Unknown()
	}
	return typesystem.Unknown()
}

func (a *Analyzer) lowerPath(path ast.Path, isGeneric func(string) bool) typesystem.Type {
	segments := path.Segments()
	if len(segments) == 0 {
		return typesystem.Unknown()
	}
	// Only the last segment names the type; `std::vec::Vec<T>` is `Vec<T>`.
	last := segments[len(segments)-1]
	name := last.Name()
	if name == "" {
		return typesystem.Unknown()
	}

	if len(segments) == 1 && isGeneric(name) {
		return typesystem.TParam{Name: name}
	}
	if prim, ok := typesystem.PrimitiveByName(name); ok {
		return prim
	}

	var args []typesystem.Type
	for _, arg := range last.GenericArgs() {
		args = append(args, a.lowerTypeRef(arg, isGeneric))
	}

	arity := -1
	if info, ok := a.symbolTable.FindStruct(name); ok {
		arity = len(info.Generics)
	} else if n, ok := symbols.LibraryArity(name); ok {
		arity = n
	}
	// Missing arguments are unknown; extra ones are dropped.
	if arity >= 0 {
		for len(args) < arity {
			args = append(args, typesystem.Unknown())
		}
		args = args[:arity]
	}
	return typesystem.AdtOf(name, args...)
}

// literalLength evaluates an array length written as a plain integer.
func literalLength(expr ast.Expr) (int, bool) {
	lit, ok := expr.(ast.Literal)
	if !ok {
		return 0, false
	}
	tok := lit.Token()
	if tok == nil || tok.Kind() != syntax.INT_NUMBER {
		return 0, false
	}
	digits, _ := splitNumberSuffix(tok.Text())
	n, err := strconv.ParseInt(stripUnderscores(digits), 0, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return int(n), true
}
