package tree

import (
	"fmt"
	"slices"
)

// Node is a structural element of a document tree.
// It is implemented only by *Text and *Element.
type Node interface {
	// Parent returns the containing element, or nil for a detached node.
	Parent() *Element

	setParent(p *Element)
	sealed()
}

// Traits are the boolean properties an element carries.
type Traits struct {
	// Hint marks a decorative zero-width node (e.g. a "**" markdown marker).
	Hint bool

	// Atomic marks an opaque widget counted as one open/close pair.
	Atomic bool

	// Invalid marks an element the surface has detached or invalidated.
	// Commands refuse to operate on an invalid root.
	Invalid bool
}

// Element is a tagged node holding an ordered list of children.
type Element struct {
	Tag    string
	Traits Traits

	parent   *Element
	children []Node
}

// NewElement creates a container element and appends the given children.
func NewElement(tag string, children ...Node) *Element {
	e := &Element{Tag: tag}
	for _, c := range children {
		e.AppendChild(c)
	}
	return e
}

// NewHint creates a hint element wrapping the given children.
func NewHint(children ...Node) *Element {
	e := NewElement("hint", children...)
	e.Traits.Hint = true
	return e
}

// NewLabel creates an atomic element with the given tag.
func NewLabel(tag string, children ...Node) *Element {
	e := NewElement(tag, children...)
	e.Traits.Atomic = true
	return e
}

func (e *Element) sealed() {}

// Parent returns the containing element.
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) setParent(p *Element) { e.parent = p }

// IsHint reports whether the element is a decorative hint.
func (e *Element) IsHint() bool { return e.Traits.Hint }

// IsAtomic reports whether the element is an opaque label.
func (e *Element) IsAtomic() bool { return e.Traits.Atomic }

// IsValid reports whether the element has not been invalidated.
func (e *Element) IsValid() bool { return !e.Traits.Invalid }

// Len returns the number of children.
func (e *Element) Len() int { return len(e.children) }

// Child returns the i-th child.
func (e *Element) Child(i int) Node { return e.children[i] }

// Children returns the child list. The slice must not be modified.
func (e *Element) Children() []Node { return e.children }

// IndexOf returns the index of child n, or -1.
func (e *Element) IndexOf(n Node) int {
	for i, c := range e.children {
		if c == n {
			return i
		}
	}
	return -1
}

// InsertChild inserts n before the child at index i, detaching it from any
// previous parent first.
func (e *Element) InsertChild(i int, n Node) error {
	if i < 0 || i > len(e.children) {
		return fmt.Errorf("insert child at %d of %d: %w", i, len(e.children), ErrInvalidOffset)
	}
	if el, ok := n.(*Element); ok && (el == e || Contains(el, e)) {
		return ErrCycle
	}
	if p := n.Parent(); p != nil {
		idx := p.IndexOf(n)
		if p == e && idx < i {
			i--
		}
		p.removeAt(idx)
	}
	e.children = slices.Insert(e.children, i, n)
	n.setParent(e)
	return nil
}

// AppendChild appends n as the last child.
func (e *Element) AppendChild(n Node) {
	// Appending can only fail on a cycle, which the builders never create.
	if err := e.InsertChild(len(e.children), n); err != nil {
		panic(err)
	}
}

// RemoveChild removes and returns the child at index i.
func (e *Element) RemoveChild(i int) (Node, error) {
	if i < 0 || i >= len(e.children) {
		return nil, fmt.Errorf("remove child %d of %d: %w", i, len(e.children), ErrInvalidOffset)
	}
	return e.removeAt(i), nil
}

// RemoveRange removes the children in [from, to) and returns them detached.
func (e *Element) RemoveRange(from, to int) []Node {
	from = max(from, 0)
	to = min(to, len(e.children))
	if from >= to {
		return nil
	}
	removed := slices.Clone(e.children[from:to])
	e.children = slices.Delete(e.children, from, to)
	for _, n := range removed {
		n.setParent(nil)
	}
	return removed
}

// ReplaceChildren swaps the whole child list and returns the old one.
func (e *Element) ReplaceChildren(nodes []Node) []Node {
	old := e.RemoveRange(0, len(e.children))
	for _, n := range nodes {
		e.AppendChild(n)
	}
	return old
}

// Unwrap replaces the element by its children inside its parent.
func (e *Element) Unwrap() error {
	p := e.parent
	if p == nil {
		return fmt.Errorf("unwrap %q: %w", e.Tag, ErrNotDescendant)
	}
	idx := p.IndexOf(e)
	p.removeAt(idx)
	for j, c := range e.RemoveRange(0, len(e.children)) {
		if err := p.InsertChild(idx+j, c); err != nil {
			return err
		}
	}
	return nil
}

func (e *Element) removeAt(i int) Node {
	n := e.children[i]
	e.children = slices.Delete(e.children, i, i+1)
	n.setParent(nil)
	return n
}

// Remove detaches n from its parent, if any.
func Remove(n Node) {
	if p := n.Parent(); p != nil {
		p.removeAt(p.IndexOf(n))
	}
}

// Index returns the position of n within its parent, or -1 when detached.
func Index(n Node) int {
	if p := n.Parent(); p != nil {
		return p.IndexOf(n)
	}
	return -1
}
