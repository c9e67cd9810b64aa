package nav

import (
	"github.com/dshills/inkwell/internal/engine/tree"
)

// TokenKind identifies what a single step crosses.
type TokenKind uint8

const (
	// TokenChar is one grapheme of a text node.
	TokenChar TokenKind = iota
	// TokenOpen is the open marker of a container or label.
	TokenOpen
	// TokenClose is the close marker of a container or label.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenChar:
		return "char"
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	default:
		return "unknown"
	}
}

// Token describes the token next to a location.
type Token struct {
	Kind TokenKind
	// Node is the text node for TokenChar, the element otherwise.
	Node tree.Node
	// Text is the grapheme for TokenChar.
	Text string
}

// Element returns the element whose marker the token is, or nil.
func (t Token) Element() *tree.Element {
	e, _ := t.Node.(*tree.Element)
	return e
}

// TokenAfter returns the token that Next would cross from loc.
func TokenAfter(root *tree.Element, loc tree.Location) (Token, bool, error) {
	loc, err := prepare(root, loc)
	if err != nil {
		return Token{}, false, err
	}
	tok, ok := tokenAfter(root, loc)
	return tok, ok, nil
}

// TokenBefore returns the token that Prev would cross from loc.
func TokenBefore(root *tree.Element, loc tree.Location) (Token, bool, error) {
	loc, err := prepare(root, loc)
	if err != nil {
		return Token{}, false, err
	}
	tok, ok := tokenBefore(root, loc)
	return tok, ok, nil
}

func tokenAfter(root *tree.Element, loc tree.Location) (Token, bool) {
	if root.IsAtomic() {
		return Token{}, false
	}
	switch n := loc.Node.(type) {
	case *tree.Text:
		if loc.Offset < n.Len() {
			g, _ := n.GraphemeAt(loc.Offset)
			return Token{Kind: TokenChar, Node: n, Text: g}, true
		}
		p := n.Parent()
		return tokenForward(root, p, p.IndexOf(n)+1)
	case *tree.Element:
		if n.IsAtomic() && n != root {
			return Token{Kind: TokenClose, Node: n}, true
		}
		return tokenForward(root, n, loc.Offset)
	}
	return Token{}, false
}

func tokenBefore(root *tree.Element, loc tree.Location) (Token, bool) {
	if root.IsAtomic() {
		return Token{}, false
	}
	switch n := loc.Node.(type) {
	case *tree.Text:
		if loc.Offset > 0 {
			g, _ := n.GraphemeAt(loc.Offset - 1)
			return Token{Kind: TokenChar, Node: n, Text: g}, true
		}
		p := n.Parent()
		return tokenBackward(root, p, p.IndexOf(n))
	case *tree.Element:
		if n.IsAtomic() && n != root {
			return Token{Kind: TokenOpen, Node: n}, true
		}
		return tokenBackward(root, n, loc.Offset)
	}
	return Token{}, false
}

func tokenForward(root, e *tree.Element, i int) (Token, bool) {
	for j := i; j < e.Len(); j++ {
		switch c := e.Child(j).(type) {
		case *tree.Text:
			if c.Len() > 0 {
				g, _ := c.GraphemeAt(0)
				return Token{Kind: TokenChar, Node: c, Text: g}, true
			}
		case *tree.Element:
			if !c.IsHint() {
				return Token{Kind: TokenOpen, Node: c}, true
			}
		}
	}
	if e == root {
		return Token{}, false
	}
	return Token{Kind: TokenClose, Node: e}, true
}

func tokenBackward(root, e *tree.Element, i int) (Token, bool) {
	for j := i - 1; j >= 0; j-- {
		switch c := e.Child(j).(type) {
		case *tree.Text:
			if c.Len() > 0 {
				g, _ := c.GraphemeAt(c.Len() - 1)
				return Token{Kind: TokenChar, Node: c, Text: g}, true
			}
		case *tree.Element:
			if !c.IsHint() {
				return Token{Kind: TokenClose, Node: c}, true
			}
		}
	}
	if e == root {
		return Token{}, false
	}
	return Token{Kind: TokenOpen, Node: e}, true
}
