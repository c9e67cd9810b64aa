package tree

import (
	"strconv"
	"strings"
)

// LabelRune stands in for an atomic element in plain-text projections.
const LabelRune = '\uFFFC'

// Format renders n in a compact debug notation:
//
//	"text"          text node
//	<p>...</p>      container
//	{...}           hint
//	[tag]           label
func Format(n Node) string {
	var sb strings.Builder
	format(&sb, n)
	return sb.String()
}

func format(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Text:
		sb.WriteString(strconv.Quote(v.value))
	case *Element:
		switch Classify(v) {
		case KindHint:
			sb.WriteByte('{')
			for _, c := range v.children {
				format(sb, c)
			}
			sb.WriteByte('}')
		case KindLabel:
			sb.WriteString("[" + v.Tag + "]")
		default:
			sb.WriteString("<" + v.Tag + ">")
			for _, c := range v.children {
				format(sb, c)
			}
			sb.WriteString("</" + v.Tag + ">")
		}
	}
}

// PlainText returns the visible text of n: hints are skipped and labels
// appear as LabelRune.
func PlainText(n Node) string {
	var sb strings.Builder
	plain(&sb, n)
	return sb.String()
}

func plain(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Text:
		sb.WriteString(v.value)
	case *Element:
		switch Classify(v) {
		case KindHint:
		case KindLabel:
			sb.WriteRune(LabelRune)
		default:
			for _, c := range v.children {
				plain(sb, c)
			}
		}
	}
}
