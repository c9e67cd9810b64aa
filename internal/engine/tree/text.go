package tree

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Text is a leaf holding characters. Offsets count grapheme clusters, so a
// base letter with combining marks or an emoji sequence is one character.
type Text struct {
	parent *Element
	value  string
	n      int
}

// NewText creates a detached text node.
func NewText(s string) *Text {
	return &Text{value: s, n: uniseg.GraphemeClusterCount(s)}
}

func (t *Text) sealed() {}

// Parent returns the containing element.
func (t *Text) Parent() *Element { return t.parent }

func (t *Text) setParent(p *Element) { t.parent = p }

// Value returns the raw string.
func (t *Text) Value() string { return t.value }

// Len returns the number of grapheme clusters.
func (t *Text) Len() int { return t.n }

// SetValue replaces the content.
func (t *Text) SetValue(s string) {
	t.value = s
	t.n = uniseg.GraphemeClusterCount(s)
}

// Slice returns the characters in [start, end).
func (t *Text) Slice(start, end int) (string, error) {
	if err := t.checkRange(start, end); err != nil {
		return "", err
	}
	return t.value[byteIndex(t.value, start):byteIndex(t.value, end)], nil
}

// GraphemeAt returns the character starting at offset i.
func (t *Text) GraphemeAt(i int) (string, error) {
	return t.Slice(i, i+1)
}

// InsertAt inserts s before the character at offset i.
func (t *Text) InsertAt(i int, s string) error {
	if i < 0 || i > t.n {
		return fmt.Errorf("insert at %d of %d: %w", i, t.n, ErrInvalidOffset)
	}
	b := byteIndex(t.value, i)
	t.SetValue(t.value[:b] + s + t.value[b:])
	return nil
}

// DeleteRange removes the characters in [start, end) and returns them.
func (t *Text) DeleteRange(start, end int) (string, error) {
	if err := t.checkRange(start, end); err != nil {
		return "", err
	}
	bs, be := byteIndex(t.value, start), byteIndex(t.value, end)
	removed := t.value[bs:be]
	t.SetValue(t.value[:bs] + t.value[be:])
	return removed, nil
}

// SplitAt cuts the node at offset i. The receiver keeps [0, i) and a new
// node holding [i, Len) is inserted right after it in the parent.
func (t *Text) SplitAt(i int) (*Text, error) {
	if i < 0 || i > t.n {
		return nil, fmt.Errorf("split at %d of %d: %w", i, t.n, ErrInvalidOffset)
	}
	b := byteIndex(t.value, i)
	tail := NewText(t.value[b:])
	t.SetValue(t.value[:b])
	if p := t.parent; p != nil {
		if err := p.InsertChild(p.IndexOf(t)+1, tail); err != nil {
			return nil, err
		}
	}
	return tail, nil
}

func (t *Text) checkRange(start, end int) error {
	if start < 0 || end > t.n || start > end {
		return fmt.Errorf("range [%d,%d) of %d: %w", start, end, t.n, ErrInvalidOffset)
	}
	return nil
}

// byteIndex converts a grapheme offset into a byte offset.
func byteIndex(s string, n int) int {
	if n <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(s)
	for i := 0; g.Next(); i++ {
		if i == n {
			from, _ := g.Positions()
			return from
		}
	}
	return len(s)
}

// Graphemes splits s into grapheme clusters.
func Graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
