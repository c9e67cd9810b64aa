package nav

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/tree"
)

// prepare validates loc against root and moves it out of hints and label
// interiors.
func prepare(root *tree.Element, loc tree.Location) (tree.Location, error) {
	if root == nil || loc.Node == nil || !tree.Contains(root, loc.Node) {
		return tree.Location{}, fmt.Errorf("location %s: %w", loc, tree.ErrNotDescendant)
	}
	loc = tree.SnapIntoLabel(root, tree.SnapOutOfHint(root, loc))
	if err := tree.CheckOffset(loc); err != nil {
		return tree.Location{}, err
	}
	return loc, nil
}

// Next returns the location one token after loc.
func Next(root *tree.Element, loc tree.Location) (tree.Location, bool, error) {
	loc, err := prepare(root, loc)
	if err != nil {
		return tree.Location{}, false, err
	}
	next, ok := next(root, loc)
	return next, ok, nil
}

// Prev returns the location one token before loc.
func Prev(root *tree.Element, loc tree.Location) (tree.Location, bool, error) {
	loc, err := prepare(root, loc)
	if err != nil {
		return tree.Location{}, false, err
	}
	prev, ok := prev(root, loc)
	return prev, ok, nil
}

func next(root *tree.Element, loc tree.Location) (tree.Location, bool) {
	if root.IsAtomic() {
		return tree.Location{}, false
	}
	switch n := loc.Node.(type) {
	case *tree.Text:
		if loc.Offset < n.Len() {
			return tree.At(n, loc.Offset+1), true
		}
		p := n.Parent()
		return forwardFrom(root, p, p.IndexOf(n)+1)
	case *tree.Element:
		if n.IsAtomic() && n != root {
			return leaveForward(root, n)
		}
		return forwardFrom(root, n, loc.Offset)
	}
	return tree.Location{}, false
}

func prev(root *tree.Element, loc tree.Location) (tree.Location, bool) {
	if root.IsAtomic() {
		return tree.Location{}, false
	}
	switch n := loc.Node.(type) {
	case *tree.Text:
		if loc.Offset > 0 {
			return tree.Canonical(tree.At(n, loc.Offset-1)), true
		}
		p := n.Parent()
		return backwardFrom(root, p, p.IndexOf(n))
	case *tree.Element:
		if n.IsAtomic() && n != root {
			return leaveBackward(root, n)
		}
		return backwardFrom(root, n, loc.Offset)
	}
	return tree.Location{}, false
}

// forwardFrom crosses the first token after gap i of e.
func forwardFrom(root, e *tree.Element, i int) (tree.Location, bool) {
	for j := i; j < e.Len(); j++ {
		switch c := e.Child(j).(type) {
		case *tree.Text:
			if c.Len() > 0 {
				return tree.At(c, 1), true
			}
		case *tree.Element:
			switch tree.Classify(c) {
			case tree.KindLabel:
				return tree.At(c, 0), true
			case tree.KindContainer:
				return tree.CanonicalGap(c, 0), true
			}
		}
	}
	return leaveForward(root, e)
}

// backwardFrom crosses the last token before gap i of e.
func backwardFrom(root, e *tree.Element, i int) (tree.Location, bool) {
	for j := i - 1; j >= 0; j-- {
		switch c := e.Child(j).(type) {
		case *tree.Text:
			if c.Len() > 0 {
				return tree.Canonical(tree.At(c, c.Len()-1)), true
			}
		case *tree.Element:
			switch tree.Classify(c) {
			case tree.KindLabel:
				return tree.At(c, 0), true
			case tree.KindContainer:
				return tree.CanonicalGap(c, c.Len()), true
			}
		}
	}
	return leaveBackward(root, e)
}

func leaveForward(root, e *tree.Element) (tree.Location, bool) {
	if e == root || e.Parent() == nil {
		return tree.Location{}, false
	}
	p := e.Parent()
	return tree.CanonicalGap(p, p.IndexOf(e)+1), true
}

func leaveBackward(root, e *tree.Element) (tree.Location, bool) {
	if e == root || e.Parent() == nil {
		return tree.Location{}, false
	}
	p := e.Parent()
	return tree.CanonicalGap(p, p.IndexOf(e)), true
}
