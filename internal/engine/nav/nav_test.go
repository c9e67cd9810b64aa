package nav

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/engine/tree"
)

func sampleTree() *tree.Element {
	return tree.NewElement("root",
		tree.NewElement("p",
			tree.NewText("hello "),
			tree.NewElement("b", tree.NewHint(tree.NewText("**")), tree.NewText("big"), tree.NewHint(tree.NewText("**"))),
			tree.NewText(" world"),
		),
		tree.NewElement("p", tree.NewLabel("math", tree.NewText("x^2")), tree.NewText("end")),
		tree.NewElement("ul", tree.NewElement("li"), tree.NewElement("li", tree.NewText(""))),
	)
}

func mustBias(t *testing.T, root *tree.Element, loc tree.Location) int {
	t.Helper()
	b, err := position.LocationToBias(root, loc)
	if err != nil {
		t.Fatalf("LocationToBias(%v): %v", loc, err)
	}
	return b
}

func TestNextPrevStepOneToken(t *testing.T) {
	root := sampleTree()
	size := position.Size(root)
	for b := 0; b < size; b++ {
		loc, err := position.BiasToLocation(root, b)
		if err != nil {
			t.Fatal(err)
		}
		next, ok, err := Next(root, loc)
		if err != nil || !ok {
			t.Fatalf("Next(%v) = %v, %v, %v", loc, next, ok, err)
		}
		if got := mustBias(t, root, next); got != b+1 {
			t.Errorf("Next(%v) = %v at bias %d, want %d", loc, next, got, b+1)
		}
		back, ok, err := Prev(root, next)
		if err != nil || !ok {
			t.Fatalf("Prev(%v) = %v, %v, %v", next, back, ok, err)
		}
		if back != loc {
			t.Errorf("Prev(Next(%v)) = %v", loc, back)
		}
	}
}

func TestBoundaries(t *testing.T) {
	root := sampleTree()
	if _, ok, err := Prev(root, tree.At(root, 0)); ok || err != nil {
		t.Errorf("Prev at start: ok=%v err=%v", ok, err)
	}
	if _, ok, err := Next(root, tree.At(root, root.Len())); ok || err != nil {
		t.Errorf("Next at end: ok=%v err=%v", ok, err)
	}

	// A paragraph used as its own root stops at its edges.
	p := root.Child(0).(*tree.Element)
	world := p.Child(2).(*tree.Text)
	if _, ok, _ := Next(p, tree.At(world, world.Len())); ok {
		t.Error("Next escaped the scoping root")
	}
}

func TestContractViolation(t *testing.T) {
	root := sampleTree()
	loose := tree.NewText("loose")
	if _, _, err := Next(root, tree.At(loose, 0)); !errors.Is(err, tree.ErrNotDescendant) {
		t.Errorf("Next: err = %v", err)
	}
	if _, _, err := PrevWord(root, tree.At(loose, 0), ""); !errors.Is(err, tree.ErrNotDescendant) {
		t.Errorf("PrevWord: err = %v", err)
	}
}

func TestStepFromInsideLabel(t *testing.T) {
	root := sampleTree()
	p2 := root.Child(1).(*tree.Element)
	math := p2.Child(0).(*tree.Element)
	inner := math.Child(0)

	next, ok, err := Next(root, tree.At(inner, 2))
	if err != nil || !ok {
		t.Fatal(ok, err)
	}
	end := p2.Child(1)
	if next != tree.At(end, 0) {
		t.Errorf("Next from label interior = %v", next)
	}
}

func TestTokens(t *testing.T) {
	root := sampleTree()
	p2 := root.Child(1).(*tree.Element)
	math := p2.Child(0)

	tests := []struct {
		name   string
		loc    tree.Location
		after  bool
		kind   TokenKind
		node   tree.Node
		exists bool
	}{
		{"open of p2 before inner start", tree.At(p2, 0), false, TokenOpen, p2, true},
		{"label open after inner start", tree.At(p2, 0), true, TokenOpen, math, true},
		{"label close from interior", tree.At(math, 0), true, TokenClose, math, true},
		{"label open from interior", tree.At(math, 0), false, TokenOpen, math, true},
		{"nothing after root end", tree.At(root, 3), true, 0, nil, false},
		{"close of ul before root end", tree.At(root, 3), false, TokenClose, root.Child(2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := TokenBefore
			if tt.after {
				fn = TokenAfter
			}
			tok, ok, err := fn(root, tt.loc)
			if err != nil {
				t.Fatal(err)
			}
			if ok != tt.exists {
				t.Fatalf("ok = %v, want %v", ok, tt.exists)
			}
			if ok && (tok.Kind != tt.kind || tok.Node != tt.node) {
				t.Errorf("token = %v %v, want %v %v", tok.Kind, tok.Node, tt.kind, tt.node)
			}
		})
	}

	hello := root.Child(0).(*tree.Element).Child(0)
	tok, _, _ := TokenAfter(root, tree.At(hello, 5))
	if tok.Kind != TokenChar || tok.Text != " " {
		t.Errorf("char token = %+v", tok)
	}
}

func TestWordMotion(t *testing.T) {
	text := tree.NewText("hello big world")
	p := tree.NewElement("p", text)

	forward := []struct{ from, to int }{{0, 5}, {5, 9}, {9, 15}, {12, 15}}
	for _, tt := range forward {
		got, ok, err := NextWord(p, tree.At(text, tt.from), "")
		if err != nil || !ok {
			t.Fatal(ok, err)
		}
		if got != tree.At(text, tt.to) {
			t.Errorf("NextWord(%d) = %v, want %d", tt.from, got, tt.to)
		}
	}
	backward := []struct{ from, to int }{{15, 10}, {10, 6}, {6, 0}, {3, 0}}
	for _, tt := range backward {
		got, ok, err := PrevWord(p, tree.At(text, tt.from), "")
		if err != nil || !ok {
			t.Fatal(ok, err)
		}
		if got != tree.At(text, tt.to) {
			t.Errorf("PrevWord(%d) = %v, want %d", tt.from, got, tt.to)
		}
	}
	if _, ok, _ := PrevWord(p, tree.At(text, 0), ""); ok {
		t.Error("PrevWord at start reported a move")
	}
}

func TestWordMotionCrossesSiblings(t *testing.T) {
	ab := tree.NewText("ab")
	ef := tree.NewText("e f")
	p := tree.NewElement("p", ab, tree.NewElement("b", tree.NewText("cd")), ef)

	got, ok, err := NextWord(p, tree.At(ab, 0), "")
	if err != nil || !ok {
		t.Fatal(ok, err)
	}
	if got != tree.At(ef, 1) {
		t.Errorf("NextWord = %v, want before the space of %q", got, ef.Value())
	}

	got, _, _ = NextWord(p, tree.At(ab, 0), "d")
	if got.Node.(*tree.Text).Value() != "cd" || got.Offset != 1 {
		t.Errorf("custom separators: %v", got)
	}
}

func TestIsSeparator(t *testing.T) {
	if !IsSeparator(" ", "") || IsSeparator("a", "") || IsSeparator("", " ") {
		t.Error("default separators")
	}
	if !IsSeparator("-", " -") || IsSeparator("\u00e9", "e") {
		t.Error("custom separators")
	}
	if !ContainsSeparator("a b", "") || ContainsSeparator("ab", "") {
		t.Error("ContainsSeparator")
	}
}

func TestIntervalRangeRoundTrip(t *testing.T) {
	root := sampleTree()
	r, anchors, err := IntervalToRange(root, position.Span(2, 13))
	if err != nil {
		t.Fatal(err)
	}
	if len(anchors) != 0 {
		t.Errorf("unexpected anchors %v", anchors)
	}
	p1 := root.Child(0).(*tree.Element)
	want := tree.Range{Start: tree.At(p1.Child(0), 1), End: tree.At(p1.Child(2), 1)}
	if r != want {
		t.Errorf("range = %v, want %v", r, want)
	}

	reversed := tree.Range{Start: r.End, End: r.Start}
	iv, err := RangeToInterval(root, reversed)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(position.Span(2, 13), iv); diff != "" {
		t.Errorf("RangeToInterval mismatch (-want +got):\n%s", diff)
	}
}

func TestIntervalToRangeAnchors(t *testing.T) {
	root := tree.NewElement("root", tree.NewElement("p", tree.NewText("x")))

	r, anchors, err := IntervalToRange(root, position.Caret(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(anchors) != 1 || r.Start != tree.At(anchors[0], 0) || !r.IsCollapsed() {
		t.Fatalf("collapsed anchor: %v %v", r, anchors)
	}
	if root.Len() != 2 || position.Size(root) != 3 {
		t.Errorf("after anchor: %s", tree.Format(root))
	}
	RemoveAnchors(anchors)
	if root.Len() != 1 {
		t.Errorf("after RemoveAnchors: %s", tree.Format(root))
	}

	r, anchors, err = IntervalToRange(root, position.Span(0, -1))
	if err != nil {
		t.Fatal(err)
	}
	if len(anchors) != 2 {
		t.Fatalf("anchors = %d, want 2", len(anchors))
	}
	if got := tree.Format(root); got != `<root>""<p>"x"</p>""</root>` {
		t.Errorf("tree = %s", got)
	}
	iv, err := RangeToInterval(root, r)
	if err != nil || iv != position.Span(0, 3) {
		t.Errorf("RangeToInterval = %v, %v", iv, err)
	}
}

func TestResolveIntervalErrors(t *testing.T) {
	root := sampleTree()
	if _, err := ResolveInterval(root, position.Span(5, 2)); !errors.Is(err, position.ErrInvertedInterval) {
		t.Errorf("inverted: %v", err)
	}
	if _, err := ResolveInterval(root, position.Span(0, 99)); !errors.Is(err, position.ErrNotFound) {
		t.Errorf("out of range: %v", err)
	}
}

func TestClip(t *testing.T) {
	root := sampleTree()
	p1 := root.Child(0).(*tree.Element)
	p2 := root.Child(1).(*tree.Element)
	end := p2.Child(1)

	from, _ := position.BiasToLocation(root, 5)
	to, _ := position.BiasToLocation(root, 23)
	got, ok, err := ClipRange(p2, tree.Range{Start: from, End: to})
	if err != nil || !ok {
		t.Fatal(ok, err)
	}
	want := tree.Range{Start: tree.At(p2, 0), End: tree.At(end, 1)}
	if got != want {
		t.Errorf("ClipRange = %v, want %v", got, want)
	}

	inP1 := tree.Range{Start: tree.At(p1.Child(0), 1), End: tree.At(p1.Child(0), 4)}
	if _, ok, err := ClipRange(p2, inP1); ok || err != nil {
		t.Errorf("disjoint: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := ClipLocation(p2, tree.At(root, 1)); ok {
		t.Error("gap between blocks overlapped p2")
	}

	loc, ok, err := ClipLocation(p2, tree.At(end, 2))
	if err != nil || !ok || loc != tree.At(end, 2) {
		t.Errorf("ClipLocation inside = %v, %v, %v", loc, ok, err)
	}

	whole, ok, err := ClipRange(root, tree.Range{Start: from, End: to})
	if err != nil || !ok || whole.Start != from || whole.End != to {
		t.Errorf("clip to root = %v, %v, %v", whole, ok, err)
	}
}
