package tree

// Kind is the token category of a node.
type Kind uint8

const (
	// KindText is a text node; each grapheme is one token.
	KindText Kind = iota
	// KindHint is a decorative element counted as zero tokens.
	KindHint
	// KindLabel is an atomic element counted as exactly two tokens.
	KindLabel
	// KindContainer is an element counted as two tokens plus its children.
	KindContainer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindHint:
		return "hint"
	case KindLabel:
		return "label"
	case KindContainer:
		return "container"
	default:
		return "unknown"
	}
}

// Classify returns the token kind of n. Hint wins over Atomic.
func Classify(n Node) Kind {
	switch v := n.(type) {
	case *Text:
		return KindText
	case *Element:
		switch {
		case v.Traits.Hint:
			return KindHint
		case v.Traits.Atomic:
			return KindLabel
		default:
			return KindContainer
		}
	}
	return KindHint
}

// IsHint reports whether n is a hint element.
func IsHint(n Node) bool { return Classify(n) == KindHint }

// IsLabel reports whether n is an atomic element.
func IsLabel(n Node) bool { return Classify(n) == KindLabel }

// IsContainer reports whether n is a counted, non-atomic element.
func IsContainer(n Node) bool { return Classify(n) == KindContainer }
