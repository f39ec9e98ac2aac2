// Package ast provides typed views over the untyped syntax tree.
//
// Every view is a small value wrapping a borrowed *syntax.Node; creating one
// never copies tree data. Views are obtained with the Cast* functions, which
// check the node kind.
package ast

import (
	"github.com/funvibe/typeassist/internal/syntax"
)

// AstNode is implemented by every typed view.
type AstNode interface {
	Syntax() *syntax.Node
}

// NodeAtOffset returns the innermost node containing offset that cast
// accepts. Ancestors of both tokens touching the offset are considered, so
// a cursor placed right after a name still finds the enclosing statement.
func NodeAtOffset[N AstNode](root *syntax.Node, offset int, cast func(*syntax.Node) (N, bool)) (N, bool) {
	for _, anc := range root.AncestorsAtOffset(offset) {
		if !anc.Range().ContainsInclusive(offset) {
			continue
		}
		if n, ok := cast(anc); ok {
			return n, true
		}
	}
	var zero N
	return zero, false
}

// Name is the defining occurrence of an identifier.
type Name struct{ node *syntax.Node }

func CastName(n *syntax.Node) (Name, bool) {
	if n == nil || n.Kind() != syntax.NAME {
		return Name{}, false
	}
	return Name{n}, true
}

func (n Name) Syntax() *syntax.Node { return n.node }

func (n Name) Ident() *syntax.Token { return n.node.FirstToken(syntax.IDENT) }

func (n Name) Text() string {
	if tok := n.Ident(); tok != nil {
		return tok.Text()
	}
	return ""
}

// NameRef is a use of an identifier. Inside a FIELD_EXPR it may also hold a
// tuple index such as `0`.
type NameRef struct{ node *syntax.Node }

func CastNameRef(n *syntax.Node) (NameRef, bool) {
	if n == nil || n.Kind() != syntax.NAME_REF {
		return NameRef{}, false
	}
	return NameRef{n}, true
}

func (n NameRef) Syntax() *syntax.Node { return n.node }

func (n NameRef) Text() string {
	toks := n.node.SignificantTokens()
	if len(toks) == 0 {
		return ""
	}
	return toks[0].Text()
}

func childName(n *syntax.Node) (Name, bool) {
	if n == nil {
		return Name{}, false
	}
	return CastName(n.FirstChild(syntax.NAME))
}

func childNameRef(n *syntax.Node) (NameRef, bool) {
	if n == nil {
		return NameRef{}, false
	}
	return CastNameRef(n.FirstChild(syntax.NAME_REF))
}

// Path is a :: separated sequence of segments.
type Path struct{ node *syntax.Node }

func CastPath(n *syntax.Node) (Path, bool) {
	if n == nil || n.Kind() != syntax.PATH {
		return Path{}, false
	}
	return Path{n}, true
}

func (p Path) Syntax() *syntax.Node { return p.node }

func (p Path) Segments() []PathSegment {
	var out []PathSegment
	for _, child := range p.node.Children() {
		if child.Kind() == syntax.PATH_SEGMENT {
			out = append(out, PathSegment{child})
		}
	}
	return out
}

// Names returns the segment names, e.g. ["Vec", "new"].
func (p Path) Names() []string {
	segs := p.Segments()
	out := make([]string, len(segs))
	for i, seg := range segs {
		out[i] = seg.Name()
	}
	return out
}

type PathSegment struct{ node *syntax.Node }

func (s PathSegment) Syntax() *syntax.Node { return s.node }

func (s PathSegment) Name() string {
	if ref, ok := childNameRef(s.node); ok {
		return ref.Text()
	}
	return ""
}

// GenericArgs returns the explicit type arguments of the segment, if any.
func (s PathSegment) GenericArgs() []TypeRef {
	list := s.node.FirstChild(syntax.GENERIC_ARG_LIST)
	if list == nil {
		return nil
	}
	return typeChildren(list)
}

func childPath(n *syntax.Node) (Path, bool) {
	if n == nil {
		return Path{}, false
	}
	return CastPath(n.FirstChild(syntax.PATH))
}
