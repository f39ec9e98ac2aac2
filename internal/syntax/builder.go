package syntax

import "fmt"

type frame struct {
	kind     Kind
	start    int
	children []Element
}

// Builder assembles a tree bottom-up from a flat stream of StartNode /
// Token / FinishNode calls. Offsets are derived from token text lengths.
type Builder struct {
	offset int
	stack  []*frame
	root   *Node
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Checkpoint marks a position among the current node's children. A node
// opened later with StartNodeAt adopts every child appended after it,
// which is how left-recursive constructs (binary and postfix expressions)
// are wrapped after their first operand is known.
type Checkpoint struct {
	depth  int
	index  int
	offset int
}

func (b *Builder) Offset() int {
	return b.offset
}

func (b *Builder) StartNode(kind Kind) {
	b.stack = append(b.stack, &frame{kind: kind, start: b.offset})
}

func (b *Builder) Checkpoint() Checkpoint {
	if len(b.stack) == 0 {
		panic("syntax: checkpoint outside of any node")
	}
	top := b.stack[len(b.stack)-1]
	return Checkpoint{depth: len(b.stack), index: len(top.children), offset: b.offset}
}

func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	if cp.depth != len(b.stack) {
		panic(fmt.Sprintf("syntax: checkpoint depth %d used at depth %d", cp.depth, len(b.stack)))
	}
	top := b.stack[len(b.stack)-1]
	if cp.index > len(top.children) {
		panic("syntax: stale checkpoint")
	}
	adopted := make([]Element, len(top.children)-cp.index)
	copy(adopted, top.children[cp.index:])
	top.children = top.children[:cp.index]

	start := cp.offset
	for _, child := range adopted {
		if tok, ok := child.(*Token); ok && tok.kind.IsTrivia() {
			continue
		}
		start = child.Range().Start
		break
	}
	b.stack = append(b.stack, &frame{kind: kind, start: start, children: adopted})
}

func (b *Builder) Token(kind Kind, text string) {
	if len(b.stack) == 0 {
		panic("syntax: token outside of any node")
	}
	tok := &Token{kind: kind, text: text, rng: TextRange{Start: b.offset, End: b.offset + len(text)}}
	b.offset += len(text)
	top := b.stack[len(b.stack)-1]
	top.children = append(top.children, tok)
}

func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		panic("syntax: FinishNode without StartNode")
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	end := top.start
	for i := len(top.children) - 1; i >= 0; i-- {
		child := top.children[i]
		if tok, ok := child.(*Token); ok && tok.kind.IsTrivia() && i > 0 {
			continue
		}
		end = child.Range().End
		break
	}
	if len(b.stack) == 0 {
		// The root always spans the whole input, trivia included.
		end = b.offset
		top.start = 0
	}

	node := &Node{kind: top.kind, rng: TextRange{Start: top.start, End: end}, children: top.children}
	for _, child := range node.children {
		switch c := child.(type) {
		case *Node:
			c.parent = node
		case *Token:
			c.parent = node
		}
	}

	if len(b.stack) == 0 {
		b.root = node
		return
	}
	parent := b.stack[len(b.stack)-1]
	parent.children = append(parent.children, node)
}

// Finish returns the root node. Every started node must have been finished.
func (b *Builder) Finish() *Node {
	if len(b.stack) != 0 {
		panic(fmt.Sprintf("syntax: %d unfinished nodes", len(b.stack)))
	}
	if b.root == nil {
		panic("syntax: empty tree")
	}
	return b.root
}
