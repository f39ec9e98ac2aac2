package syntax

import (
	"fmt"
	"strings"
)

// Element is either a *Node or a *Token.
type Element interface {
	Kind() Kind
	Range() TextRange
	Parent() *Node
}

// Token is a leaf of the tree. Tokens keep their exact source text, so the
// concatenation of all tokens of a tree reproduces the parsed input.
type Token struct {
	kind   Kind
	text   string
	rng    TextRange
	parent *Node
}

func (t *Token) Kind() Kind       { return t.kind }
func (t *Token) Text() string     { return t.text }
func (t *Token) Range() TextRange { return t.rng }
func (t *Token) Parent() *Node    { return t.parent }

func (t *Token) String() string {
	return fmt.Sprintf("%s@%s %q", t.kind, t.rng, t.text)
}

// Node is an interior element of the tree. Nodes are never mutated once the
// Builder that produced them has finished.
type Node struct {
	kind     Kind
	rng      TextRange
	children []Element
	parent   *Node
}

func (n *Node) Kind() Kind       { return n.kind }
func (n *Node) Range() TextRange { return n.rng }
func (n *Node) Parent() *Node    { return n.parent }

// ChildrenWithTokens returns the direct children in source order, tokens
// and trivia included. The returned slice must not be modified.
func (n *Node) ChildrenWithTokens() []Element {
	return n.children
}

// Children returns the direct child nodes, skipping tokens.
func (n *Node) Children() []*Node {
	var out []*Node
	for _, child := range n.children {
		if node, ok := child.(*Node); ok {
			out = append(out, node)
		}
	}
	return out
}

// FirstChild returns the first direct child node of the given kind.
func (n *Node) FirstChild(kind Kind) *Node {
	for _, child := range n.children {
		if node, ok := child.(*Node); ok && node.kind == kind {
			return node
		}
	}
	return nil
}

// FirstToken returns the first direct child token of the given kind.
func (n *Node) FirstToken(kind Kind) *Token {
	for _, child := range n.children {
		if tok, ok := child.(*Token); ok && tok.kind == kind {
			return tok
		}
	}
	return nil
}

// HasToken reports whether a direct child token has the given kind.
// Descendants are not inspected.
func (n *Node) HasToken(kind Kind) bool {
	return n.FirstToken(kind) != nil
}

// SignificantTokens returns the direct child tokens that are not trivia.
func (n *Node) SignificantTokens() []*Token {
	var out []*Token
	for _, child := range n.children {
		if tok, ok := child.(*Token); ok && !tok.kind.IsTrivia() {
			out = append(out, tok)
		}
	}
	return out
}

// Ancestors yields n, its parent, and so on up to the root.
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for cur := n; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}

// Walk visits n and every descendant node in preorder. Returning false from
// visit skips the subtree of that node.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, child := range n.children {
		if node, ok := child.(*Node); ok {
			node.Walk(visit)
		}
	}
}

// Tokens returns every token of the subtree in source order.
func (n *Node) Tokens() []*Token {
	var out []*Token
	var collect func(*Node)
	collect = func(node *Node) {
		for _, child := range node.children {
			switch c := child.(type) {
			case *Token:
				out = append(out, c)
			case *Node:
				collect(c)
			}
		}
	}
	collect(n)
	return out
}

// Text reconstructs the source text covered by the node.
func (n *Node) Text() string {
	var sb strings.Builder
	for _, tok := range n.Tokens() {
		sb.WriteString(tok.text)
	}
	return sb.String()
}

// Root returns the topmost ancestor.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Debug renders the subtree in an indented KIND@range form. Used by tests
// and the CLI's dump mode.
func (n *Node) Debug() string {
	var sb strings.Builder
	var dump func(Element, int)
	dump = func(el Element, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		switch e := el.(type) {
		case *Node:
			fmt.Fprintf(&sb, "%s@%s\n", e.kind, e.rng)
			for _, child := range e.children {
				dump(child, depth+1)
			}
		case *Token:
			fmt.Fprintf(&sb, "%s@%s %q\n", e.kind, e.rng, e.text)
		}
	}
	dump(n, 0)
	return sb.String()
}
