package analyzer

import (
	"strconv"
	"strings"

	"github.com/funvibe/typeassist/internal/ast"
	"github.com/funvibe/typeassist/internal/symbols"
	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/typesystem"
)

// infer computes and records the type of expr. expected is what the
// surrounding code wants, or nil; it steers literals and library
// constructors and narrows literal variables, it is never forced onto the
// result.
func (w *walker) infer(expr ast.Expr, expected typesystem.Type) typesystem.Type {
	if expr == nil {
		return typesystem.Unknown()
	}
	t := w.inferExpr(expr, expected)
	w.unify(t, expected)
	return w.record(expr, t)
}

func (w *walker) inferExpr(expr ast.Expr, expected typesystem.Type) typesystem.Type {
	switch e := expr.(type) {
	case ast.Literal:
		return w.inferLiteral(e, expected)
	case ast.PathExpr:
		return w.inferPathExpr(e, expected)
	case ast.CallExpr:
		return w.inferCall(e, expected)
	case ast.MethodCallExpr:
		return w.inferMethodCall(e, expected)
	case ast.FieldExpr:
		return w.inferField(e)
	case ast.IndexExpr:
		return w.inferIndex(e)
	case ast.ParenExpr:
		inner, ok := e.Inner()
		if !ok {
			return typesystem.Unknown()
		}
		return w.infer(inner, expected)
	case ast.TupleExpr:
		return w.inferTuple(e, expected)
	case ast.ArrayExpr:
		return w.inferArray(e, expected)
	case ast.PrefixExpr:
		return w.inferPrefix(e, expected)
	case ast.RefExpr:
		return w.inferRef(e, expected)
	case ast.BinExpr:
		return w.inferBinary(e, expected)
	case ast.BlockExpr:
		block, ok := e.Block()
		if !ok {
			return typesystem.Unknown()
		}
		return w.inferBlock(block, expected)
	case ast.IfExpr:
		return w.inferIf(e, expected)
	case ast.ReturnExpr:
		if value, ok := e.Value(); ok {
			w.infer(value, w.retType)
		}
		return typesystem.Simple(typesystem.Never{})
	case ast.StructLit:
		return w.inferStructLit(e, expected)
	}
	return typesystem.Unknown()
}

func (w *walker) inferPathExpr(e ast.PathExpr, expected typesystem.Type) typesystem.Type {
	path, ok := e.Path()
	if !ok {
		return typesystem.Unknown()
	}
	names := path.Names()
	if len(names) != 1 {
		return typesystem.Unknown()
	}
	name := names[0]
	if sym, ok := w.scope.Find(name); ok && sym.Kind == symbols.VariableSymbol {
		return sym.Type
	}
	if name == noneCtor {
		return typesystem.OptionOf(paramOf(expected, typesystem.OptionName, 0))
	}
	return typesystem.Unknown()
}

func (w *walker) inferField(e ast.FieldExpr) typesystem.Type {
	recv, ok := e.Receiver()
	if !ok {
		return typesystem.Unknown()
	}
	t := w.infer(recv, nil)

	// `t.0.1` carries both indices in one float token.
	for _, part := range strings.Split(e.Field(), ".") {
		t = w.fieldOf(autoderef(t), part)
	}
	return t
}

func (w *walker) fieldOf(t typesystem.Type, field string) typesystem.Type {
	if idx, err := strconv.Atoi(field); err == nil {
		if elem, ok := tupleElem(t, idx); ok {
			return elem
		}
		return typesystem.Unknown()
	}
	name := adtName(t)
	if name == "" {
		return typesystem.Unknown()
	}
	info, ok := w.scope.FindStruct(name)
	if !ok {
		return typesystem.Unknown()
	}
	ft, ok := info.Field(field)
	if !ok {
		return typesystem.Unknown()
	}
	return ft.Apply(info.SubstFor(t))
}

func (w *walker) inferIndex(e ast.IndexExpr) typesystem.Type {
	base, ok := e.Base()
	if !ok {
		return typesystem.Unknown()
	}
	bt := autoderef(w.infer(base, nil))

	indexExpected := typesystem.Simple(typesystem.Int{Kind: "usize"})
	result := typesystem.Unknown()
	if elem, ok := elementOf(bt); ok {
		result = elem
	} else if adtName(bt) == typesystem.HashMapName {
		indexExpected = typesystem.RefTo(paramOf(bt, typesystem.HashMapName, 0), false)
		result = paramOf(bt, typesystem.HashMapName, 1)
	}
	if index, ok := e.Index(); ok {
		w.infer(index, indexExpected)
	}
	return result
}

func (w *walker) inferTuple(e ast.TupleExpr, expected typesystem.Type) typesystem.Type {
	fields := e.Fields()
	elems := make([]typesystem.Type, len(fields))
	for i, f := range fields {
		var want typesystem.Type
		if t, ok := tupleElem(expected, i); ok {
			want = t
		}
		elems[i] = w.infer(f, want)
	}
	return typesystem.TupleOf(elems...)
}

func (w *walker) inferArray(e ast.ArrayExpr, expected typesystem.Type) typesystem.Type {
	var want typesystem.Type
	if t, ok := elementOf(expected); ok {
		want = t
	}
	elements := e.Elements()

	if e.IsRepeat() {
		if len(elements) < 2 {
			return typesystem.Unknown()
		}
		elem := w.infer(elements[0], want)
		w.infer(elements[1], typesystem.Simple(typesystem.Int{Kind: "usize"}))
		n, ok := literalLength(elements[1])
		if !ok {
			// A length we cannot evaluate would render as `_`, which is not
			// a writable type.
			return typesystem.Unknown()
		}
		return typesystem.ArrayOf(elem, n)
	}

	if len(elements) == 0 {
		if want == nil {
			want = typesystem.Unknown()
		}
		return typesystem.ArrayOf(want, 0)
	}
	elem := w.infer(elements[0], want)
	for _, el := range elements[1:] {
		w.infer(el, elem)
	}
	return typesystem.ArrayOf(elem, len(elements))
}

func (w *walker) inferPrefix(e ast.PrefixExpr, expected typesystem.Type) typesystem.Type {
	operand, ok := e.Operand()
	if !ok {
		return typesystem.Unknown()
	}
	switch e.Op() {
	case syntax.STAR:
		t := w.infer(operand, nil)
		if inner, ok := derefOnce(t); ok {
			return inner
		}
		return typesystem.Unknown()
	case syntax.BANG:
		return w.infer(operand, expected)
	case syntax.MINUS:
		return w.infer(operand, expected)
	}
	w.infer(operand, nil)
	return typesystem.Unknown()
}

func (w *walker) inferRef(e ast.RefExpr, expected typesystem.Type) typesystem.Type {
	operand, ok := e.Operand()
	if !ok {
		return typesystem.Unknown()
	}
	var want typesystem.Type
	if isRef(expected) {
		want, _ = derefOnce(expected)
	}
	return typesystem.RefTo(w.infer(operand, want), e.IsMut())
}

func (w *walker) inferBinary(e ast.BinExpr, expected typesystem.Type) typesystem.Type {
	lhs, lok := e.Lhs()
	rhs, rok := e.Rhs()
	if !lok || !rok {
		if lok {
			w.infer(lhs, nil)
		}
		return typesystem.Unknown()
	}

	op := e.Op()
	switch op {
	case syntax.EQ:
		lt := w.infer(lhs, nil)
		w.infer(rhs, lt)
		return typesystem.Unit()

	case syntax.AMPAMP, syntax.PIPEPIPE:
		boolType := typesystem.Simple(typesystem.Bool{})
		w.infer(lhs, boolType)
		w.infer(rhs, boolType)
		return boolType

	case syntax.EQEQ, syntax.NEQ, syntax.LT, syntax.LTEQ, syntax.GT, syntax.GTEQ:
		w.inferOperands(lhs, rhs, nil)
		return typesystem.Simple(typesystem.Bool{})
	}

	// Arithmetic and bitwise operators yield the operand type. References
	// are read through, so `&a + 1` is the type of a.
	return autoderef(w.inferOperands(lhs, rhs, expected))
}

// inferOperands infers both sides of a binary expression so that an
// unsuffixed literal takes the type of the other side, and returns the type
// of the side that decided it.
func (w *walker) inferOperands(lhs, rhs ast.Expr, expected typesystem.Type) typesystem.Type {
	if isUntypedLiteral(lhs) && !isUntypedLiteral(rhs) {
		rt := w.infer(rhs, expected)
		w.infer(lhs, autoderef(rt))
		return rt
	}
	lt := w.infer(lhs, expected)
	w.infer(rhs, autoderef(lt))
	return lt
}

func (w *walker) inferIf(e ast.IfExpr, expected typesystem.Type) typesystem.Type {
	if cond, ok := e.Condition(); ok {
		w.infer(cond, typesystem.Simple(typesystem.Bool{}))
	}
	then, hasThen := e.Then()
	elseExpr, hasElse := e.Else()
	if !hasElse {
		if hasThen {
			w.infer(then, typesystem.Unit())
		}
		return typesystem.Unit()
	}

	thenType := typesystem.Unknown()
	if hasThen {
		thenType = w.infer(then, expected)
	}
	want := expected
	if !typesystem.IsUnknown(thenType) && !isNever(thenType) {
		want = thenType
	}
	elseType := w.infer(elseExpr, want)
	if isNever(thenType) {
		return elseType
	}
	return thenType
}

func (w *walker) inferStructLit(e ast.StructLit, expected typesystem.Type) typesystem.Type {
	var info *symbols.StructInfo
	if path, ok := e.Path(); ok {
		if names := path.Names(); len(names) > 0 {
			info, _ = w.scope.FindStruct(names[len(names)-1])
		}
	}
	if info == nil {
		for _, f := range e.Fields() {
			if value, ok := f.Expr(); ok {
				w.infer(value, nil)
			}
		}
		return typesystem.Unknown()
	}

	generics := nameSet(info.Generics)
	subst := make(typesystem.Subst)
	if adtName(expected) == info.Name {
		matchGenerics(info.Instantiate(genericParams(info.Generics)), expected, generics, subst)
	}

	for _, f := range e.Fields() {
		declared, known := info.Field(f.Name())
		if !known {
			declared = typesystem.Unknown()
		}
		var actual typesystem.Type
		if value, ok := f.Expr(); ok {
			actual = w.infer(value, expectedFor(declared, info.Generics, subst))
		} else if sym, ok := w.scope.Find(f.Name()); ok && sym.Kind == symbols.VariableSymbol {
			actual = sym.Type
		}
		matchGenerics(declared, actual, generics, subst)
	}

	args := make([]typesystem.Type, len(info.Generics))
	for i, g := range info.Generics {
		args[i] = subst[g]
	}
	return info.Instantiate(args)
}

func genericParams(names []string) []typesystem.Type {
	out := make([]typesystem.Type, len(names))
	for i, n := range names {
		out[i] = typesystem.TParam{Name: n}
	}
	return out
}
