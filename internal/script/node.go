package script

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dshills/inkwell/internal/engine/tree"
)

// NodeSpec describes one tree node in a fixture.
type NodeSpec struct {
	Text     *string    `yaml:"text,omitempty"`
	Tag      string     `yaml:"tag,omitempty"`
	Label    string     `yaml:"label,omitempty"`
	Hint     bool       `yaml:"hint,omitempty"`
	Children []NodeSpec `yaml:"children,omitempty"`

	line int
}

// UnmarshalYAML accepts a bare scalar as a text node.
func (n *NodeSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		text := value.Value
		*n = NodeSpec{Text: &text, line: value.Line}
		return nil
	}
	type plain NodeSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*n = NodeSpec(p)
	n.line = value.Line
	return nil
}

// IsZero reports whether no node was given.
func (n NodeSpec) IsZero() bool {
	return n.Text == nil && n.Tag == "" && n.Label == "" && !n.Hint && len(n.Children) == 0
}

// Build creates the node and its subtree.
func (n NodeSpec) Build() (tree.Node, error) {
	kinds := 0
	for _, set := range []bool{n.Text != nil, n.Tag != "", n.Label != "", n.Hint} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return nil, fmt.Errorf("line %d: node needs exactly one of text, tag, label or hint: %w", n.line, ErrBadTree)
	}
	if n.Text != nil {
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("line %d: text node with children: %w", n.line, ErrBadTree)
		}
		return tree.NewText(*n.Text), nil
	}

	children := make([]tree.Node, 0, len(n.Children))
	for _, c := range n.Children {
		child, err := c.Build()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	switch {
	case n.Label != "":
		return tree.NewLabel(n.Label, children...), nil
	case n.Hint:
		return tree.NewHint(children...), nil
	default:
		return tree.NewElement(n.Tag, children...), nil
	}
}

// BuildRoot builds a tree whose root is a plain container.
func (n NodeSpec) BuildRoot() (*tree.Element, error) {
	node, err := n.Build()
	if err != nil {
		return nil, err
	}
	root, ok := node.(*tree.Element)
	if !ok || !tree.IsContainer(root) {
		return nil, fmt.Errorf("line %d: root must be a tagged element: %w", n.line, ErrBadTree)
	}
	return root, nil
}
