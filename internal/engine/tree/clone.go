package tree

// Clone returns a detached deep copy of n.
func Clone(n Node) Node {
	switch v := n.(type) {
	case *Text:
		return NewText(v.value)
	case *Element:
		e := &Element{Tag: v.Tag, Traits: v.Traits}
		for _, c := range v.children {
			e.AppendChild(Clone(c))
		}
		return e
	}
	return nil
}

// CloneAll deep-copies a node list.
func CloneAll(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Clone(n)
	}
	return out
}

// MergeAdjacentText joins consecutive text children of e into one node.
func MergeAdjacentText(e *Element) {
	for i := 0; i+1 < len(e.children); {
		a, ok1 := e.children[i].(*Text)
		b, ok2 := e.children[i+1].(*Text)
		if !ok1 || !ok2 {
			i++
			continue
		}
		a.SetValue(a.value + b.value)
		e.removeAt(i + 1)
	}
}
