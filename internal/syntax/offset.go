package syntax

// TokensAtOffset returns the tokens touching offset: one token when the
// offset falls strictly inside it, two when the offset sits on the boundary
// between adjacent tokens, none when the offset is outside the tree.
func (n *Node) TokensAtOffset(offset int) []*Token {
	rng := n.Range()
	if offset < rng.Start || offset > rng.End {
		return nil
	}
	var out []*Token
	for _, tok := range n.Tokens() {
		r := tok.Range()
		if r.Start > offset {
			break
		}
		if r.Contains(offset) || r.End == offset {
			out = append(out, tok)
		}
	}
	if len(out) > 2 {
		// Zero-width tokens can pile up on a boundary; keep the outer pair.
		out = []*Token{out[0], out[len(out)-1]}
	}
	return out
}

// AncestorsAtOffset returns the nodes containing offset, innermost first.
// When the offset sits between two tokens both ancestor chains are merged,
// ordered by range length.
func (n *Node) AncestorsAtOffset(offset int) []*Node {
	var chains [][]*Node
	for _, tok := range n.TokensAtOffset(offset) {
		if tok.parent != nil {
			chains = append(chains, tok.parent.Ancestors())
		}
	}
	switch len(chains) {
	case 0:
		return nil
	case 1:
		return chains[0]
	}

	left, right := chains[0], chains[1]
	out := make([]*Node, 0, len(left)+len(right))
	seen := make(map[*Node]bool, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) || j < len(right) {
		var next *Node
		switch {
		case i >= len(left):
			next = right[j]
			j++
		case j >= len(right):
			next = left[i]
			i++
		case left[i].Range().Len() <= right[j].Range().Len():
			next = left[i]
			i++
		default:
			next = right[j]
			j++
		}
		if !seen[next] {
			seen[next] = true
			out = append(out, next)
		}
	}
	return out
}

// CoveringNode returns the innermost node of the given kind whose range
// contains offset (end inclusive, so a cursor right after a name still
// counts), or nil.
func (n *Node) CoveringNode(offset int, kind Kind) *Node {
	for _, anc := range n.AncestorsAtOffset(offset) {
		if anc.Kind() == kind && anc.Range().ContainsInclusive(offset) {
			return anc
		}
	}
	return nil
}
