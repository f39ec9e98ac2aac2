// Package prettyprinter renders analyzed syntax trees for debugging.
package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/funvibe/typeassist/internal/syntax"
	"github.com/funvibe/typeassist/internal/typesystem"
)

// Style wraps parts of the output, typically in terminal colours. The zero
// Style prints plain text.
type Style struct {
	Kind  func(string) string
	Type  func(string) string
	Token func(string) string
}

func apply(f func(string) string, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}

// TreePrinter prints one line per node or token:
//
//	LET_STMT@12..22
//	  BIND_PAT@16..17
//	    NAME@16..17 : i32
//	      IDENT@16..17 "a"
type TreePrinter struct {
	buf    bytes.Buffer
	indent int

	// Types annotates expression nodes, Bindings annotates bound names.
	Types    map[*syntax.Node]typesystem.Type
	Bindings map[*syntax.Node]typesystem.Type

	ShowTokens bool
	ShowTrivia bool
	Style      Style
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{ShowTokens: true}
}

func (p *TreePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
}

func (p *TreePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *TreePrinter) writeln() {
	p.buf.WriteByte('\n')
}

// Print renders the subtree rooted at n and returns the output so far.
func (p *TreePrinter) Print(n *syntax.Node) string {
	if n != nil {
		p.printNode(n)
	}
	return p.String()
}

func (p *TreePrinter) printNode(n *syntax.Node) {
	p.writeIndent()
	p.write(apply(p.Style.Kind, n.Kind().String()))
	p.write("@" + n.Range().String())
	if t, ok := p.typeOf(n); ok {
		p.write(" : " + apply(p.Style.Type, typesystem.Display(t)))
	}
	p.writeln()

	p.indent++
	for _, child := range n.ChildrenWithTokens() {
		switch c := child.(type) {
		case *syntax.Node:
			p.printNode(c)
		case *syntax.Token:
			p.printToken(c)
		}
	}
	p.indent--
}

func (p *TreePrinter) printToken(t *syntax.Token) {
	if !p.ShowTokens || (t.Kind().IsTrivia() && !p.ShowTrivia) {
		return
	}
	p.writeIndent()
	p.write(t.Kind().String())
	p.write("@" + t.Range().String() + " ")
	p.write(apply(p.Style.Token, strconv.Quote(t.Text())))
	p.writeln()
}

func (p *TreePrinter) typeOf(n *syntax.Node) (typesystem.Type, bool) {
	if t, ok := p.Bindings[n]; ok {
		return t, true
	}
	t, ok := p.Types[n]
	return t, ok
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}
