package edit

import (
	"fmt"
	"slices"

	"github.com/dshills/inkwell/internal/engine/tree"
)

// snapshot is the pre-edit state of one subtree, addressed by path so it
// can be restored after the live nodes were replaced.
type snapshot struct {
	path     tree.Path
	isText   bool
	text     string
	children []tree.Node
}

func capture(root *tree.Element, region tree.Node) (*snapshot, error) {
	p, err := tree.PathOf(root, region)
	if err != nil {
		return nil, err
	}
	switch n := region.(type) {
	case *tree.Text:
		return &snapshot{path: p, isText: true, text: n.Value()}, nil
	case *tree.Element:
		return &snapshot{path: p, children: tree.CloneAll(n.Children())}, nil
	}
	return nil, fmt.Errorf("capture %T: %w", region, tree.ErrNotDescendant)
}

func (s *snapshot) restore(root *tree.Element) error {
	n, err := tree.Resolve(root, s.path)
	if err != nil {
		return err
	}
	switch v := n.(type) {
	case *tree.Text:
		if s.isText {
			v.SetValue(s.text)
			return nil
		}
	case *tree.Element:
		if !s.isText {
			v.ReplaceChildren(tree.CloneAll(s.children))
			return nil
		}
	}
	return fmt.Errorf("restore %v: %w", []int(s.path), tree.ErrBadPath)
}

// covers reports whether restoring s also reverts every change other
// records, i.e. other's region lies inside s's region.
func (s *snapshot) covers(other *snapshot) bool {
	if s == nil || other == nil || len(other.path) < len(s.path) {
		return false
	}
	if s.isText && !other.isText {
		return false
	}
	return slices.Equal(other.path[:len(s.path)], s.path)
}
