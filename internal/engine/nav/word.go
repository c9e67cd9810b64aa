package nav

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/inkwell/internal/engine/tree"
)

// DefaultSeparators is the word separator set used when none is given.
const DefaultSeparators = " "

// NextWord moves forward at least one token, then on until the next token
// is a separator grapheme or the end of root. An empty seps selects
// DefaultSeparators.
func NextWord(root *tree.Element, loc tree.Location, seps string) (tree.Location, bool, error) {
	loc, err := prepare(root, loc)
	if err != nil {
		return tree.Location{}, false, err
	}
	cur, ok := next(root, loc)
	if !ok {
		return tree.Location{}, false, nil
	}
	for {
		tok, ok := tokenAfter(root, cur)
		if !ok || isSeparator(tok, seps) {
			return cur, true, nil
		}
		cur, _ = next(root, cur)
	}
}

// PrevWord mirrors NextWord going backward: it stops where the previous
// token is a separator or at the start of root.
func PrevWord(root *tree.Element, loc tree.Location, seps string) (tree.Location, bool, error) {
	loc, err := prepare(root, loc)
	if err != nil {
		return tree.Location{}, false, err
	}
	cur, ok := prev(root, loc)
	if !ok {
		return tree.Location{}, false, nil
	}
	for {
		tok, ok := tokenBefore(root, cur)
		if !ok || isSeparator(tok, seps) {
			return cur, true, nil
		}
		cur, _ = prev(root, cur)
	}
}

// IsSeparator reports whether the grapheme g is in seps.
func IsSeparator(g, seps string) bool {
	if seps == "" {
		seps = DefaultSeparators
	}
	r, size := utf8.DecodeRuneInString(g)
	if size == 0 || size != len(g) {
		return false
	}
	return strings.ContainsRune(seps, r)
}

// ContainsSeparator reports whether any grapheme of s is in seps.
func ContainsSeparator(s, seps string) bool {
	for _, g := range tree.Graphemes(s) {
		if IsSeparator(g, seps) {
			return true
		}
	}
	return false
}

func isSeparator(tok Token, seps string) bool {
	return tok.Kind == TokenChar && IsSeparator(tok.Text, seps)
}
