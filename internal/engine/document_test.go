package engine

import (
	"errors"
	"testing"

	"github.com/dshills/inkwell/internal/engine/edit"
	"github.com/dshills/inkwell/internal/engine/tree"
)

func paragraph(text string) *tree.Element {
	return tree.NewElement("doc", tree.NewElement("p", tree.NewText(text)))
}

func twoParagraphs() *tree.Element {
	return tree.NewElement("doc",
		tree.NewElement("p", tree.NewText("hello")),
		tree.NewElement("p", tree.NewText("world")),
	)
}

func caret(t *testing.T, d *Document, b int) {
	t.Helper()
	if err := d.Select(b, b); err != nil {
		t.Fatalf("Select(%d) error = %v", b, err)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func assertDoc(t *testing.T, d *Document, want string) {
	t.Helper()
	if got := d.String(); got != want {
		t.Errorf("tree = %s, want %s", got, want)
	}
}

func assertSel(t *testing.T, d *Document, anchor, head int) {
	t.Helper()
	if got := d.Selection(); got.Anchor != anchor || got.Head != head {
		t.Errorf("Selection() = %v, want %d->%d", got, anchor, head)
	}
}

func TestNewEmpty(t *testing.T) {
	d := New(nil)
	if d.Size() != 0 {
		t.Errorf("Size() = %d, want 0", d.Size())
	}
	must(t, d.Type("hi"))
	if d.Text() != "hi" {
		t.Errorf("Text() = %q, want hi", d.Text())
	}
	assertSel(t, d, 2, 2)
}

func TestTypeUndoRedo(t *testing.T) {
	d := New(paragraph("hello"))
	caret(t, d, 6)

	must(t, d.Type("!"))
	assertDoc(t, d, `<doc><p>"hello!"</p></doc>`)
	assertSel(t, d, 7, 7)

	must(t, d.Undo())
	assertDoc(t, d, `<doc><p>"hello"</p></doc>`)
	assertSel(t, d, 6, 6)

	must(t, d.Redo())
	assertDoc(t, d, `<doc><p>"hello!"</p></doc>`)
	assertSel(t, d, 7, 7)
}

func TestTypingMergesUntilCaretMoves(t *testing.T) {
	d := New(paragraph(""))
	caret(t, d, 1)

	must(t, d.Type("a"))
	must(t, d.Type("b"))
	if d.UndoCount() != 1 {
		t.Fatalf("UndoCount() = %d, want 1", d.UndoCount())
	}

	must(t, d.MoveLeft(false))
	must(t, d.Type("x"))
	assertDoc(t, d, `<doc><p>"axb"</p></doc>`)
	if d.UndoCount() != 2 {
		t.Fatalf("UndoCount() = %d, want 2", d.UndoCount())
	}

	must(t, d.Undo())
	assertDoc(t, d, `<doc><p>"ab"</p></doc>`)
	assertSel(t, d, 2, 2)
	must(t, d.Undo())
	assertDoc(t, d, `<doc><p>""</p></doc>`)
	assertSel(t, d, 1, 1)
}

func TestTypeReplacesSelection(t *testing.T) {
	d := New(paragraph("hello"))
	must(t, d.Select(2, 5))
	must(t, d.Type("EL"))
	assertDoc(t, d, `<doc><p>"hELo"</p></doc>`)
	assertSel(t, d, 4, 4)
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		name    string
		root    func() *tree.Element
		at      int
		presses int
		want    string
		caret   int
		entries int
	}{
		{"characters merge", func() *tree.Element { return paragraph("hello") }, 6, 2, `<doc><p>"hel"</p></doc>`, 4, 1},
		{
			"label",
			func() *tree.Element {
				return tree.NewElement("doc", tree.NewElement("p", tree.NewText("a"), tree.NewLabel("img"), tree.NewText("b")))
			},
			4, 1, `<doc><p>"ab"</p></doc>`, 2, 1,
		},
		{"join paragraphs", twoParagraphs, 8, 1, `<doc><p>"helloworld"</p></doc>`, 6, 1},
		{"document start", twoParagraphs, 1, 1, `<doc><p>"hello"</p><p>"world"</p></doc>`, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := tt.root()
			orig := tree.Format(root)
			d := New(root)
			caret(t, d, tt.at)
			for range tt.presses {
				must(t, d.Backspace())
			}
			assertDoc(t, d, tt.want)
			assertSel(t, d, tt.caret, tt.caret)
			if d.UndoCount() != tt.entries {
				t.Fatalf("UndoCount() = %d, want %d", d.UndoCount(), tt.entries)
			}
			if tt.entries > 0 {
				must(t, d.Undo())
				assertDoc(t, d, orig)
				assertSel(t, d, tt.at, tt.at)
			}
		})
	}
}

func TestDeleteForward(t *testing.T) {
	d := New(twoParagraphs())
	caret(t, d, 6)
	must(t, d.DeleteForward())
	assertDoc(t, d, `<doc><p>"helloworld"</p></doc>`)
	assertSel(t, d, 6, 6)

	must(t, d.DeleteForward())
	must(t, d.DeleteForward())
	assertDoc(t, d, `<doc><p>"hellorld"</p></doc>`)

	withLabel := New(tree.NewElement("doc", tree.NewElement("p", tree.NewText("a"), tree.NewLabel("img"), tree.NewText("b"))))
	caret(t, withLabel, 2)
	must(t, withLabel.DeleteForward())
	assertDoc(t, withLabel, `<doc><p>"ab"</p></doc>`)
}

func TestWordGestures(t *testing.T) {
	d := New(paragraph("hello big world"))
	caret(t, d, 16)

	must(t, d.DeleteWordBackward())
	assertDoc(t, d, `<doc><p>"hello big "</p></doc>`)
	assertSel(t, d, 11, 11)

	must(t, d.MoveWordLeft(false))
	assertSel(t, d, 7, 7)

	must(t, d.MoveWordRight(true))
	assertSel(t, d, 7, 10)

	must(t, d.Type("ig"))
	assertDoc(t, d, `<doc><p>"hello ig "</p></doc>`)
}

func TestMoveLeftRight(t *testing.T) {
	d := New(twoParagraphs())
	caret(t, d, 6)

	must(t, d.MoveRight(false))
	assertSel(t, d, 7, 7)
	must(t, d.MoveRight(false))
	assertSel(t, d, 8, 8)
	must(t, d.MoveLeft(true))
	assertSel(t, d, 8, 7)
	must(t, d.MoveLeft(false))
	assertSel(t, d, 7, 7)

	caret(t, d, 14)
	must(t, d.MoveRight(false))
	assertSel(t, d, 14, 14)
}

func TestFormatGestures(t *testing.T) {
	d := New(paragraph("hello"))
	must(t, d.Select(2, 4))

	must(t, d.Format("b"))
	assertDoc(t, d, `<doc><p>"h"<b>"el"</b>"lo"</p></doc>`)
	assertSel(t, d, 3, 5)

	must(t, d.Unformat("b"))
	assertDoc(t, d, `<doc><p>"hello"</p></doc>`)
	assertSel(t, d, 2, 4)

	must(t, d.Undo())
	assertDoc(t, d, `<doc><p>"h"<b>"el"</b>"lo"</p></doc>`)
	assertSel(t, d, 3, 5)

	cross := New(twoParagraphs())
	must(t, cross.Select(3, 10))
	if err := cross.Format("b"); !errors.Is(err, edit.ErrCrossesBoundary) {
		t.Errorf("Format() error = %v, want ErrCrossesBoundary", err)
	}
	if cross.UndoCount() != 0 {
		t.Errorf("UndoCount() = %d after rejected format", cross.UndoCount())
	}
}

func TestInsertLabelReplacesSelection(t *testing.T) {
	d := New(paragraph("hello"))
	must(t, d.Select(2, 4))
	must(t, d.InsertLabel("img", ""))
	assertDoc(t, d, `<doc><p>"h"[img]"lo"</p></doc>`)
	assertSel(t, d, 4, 4)
	if d.UndoCount() != 1 {
		t.Fatalf("UndoCount() = %d, want 1", d.UndoCount())
	}

	must(t, d.Undo())
	assertDoc(t, d, `<doc><p>"hello"</p></doc>`)
	assertSel(t, d, 2, 4)
}

func TestGroupRollsBack(t *testing.T) {
	d := New(paragraph("hello"))
	caret(t, d, 6)
	boom := errors.New("boom")

	err := d.Group("fail", func() error {
		if err := d.Type("!"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Group() error = %v, want boom", err)
	}
	assertDoc(t, d, `<doc><p>"hello"</p></doc>`)
	assertSel(t, d, 6, 6)
	if d.CanUndo() {
		t.Error("CanUndo() = true after rollback")
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	d := New(paragraph("x"))
	if err := d.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
	if err := d.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
}

func TestOptions(t *testing.T) {
	d := New(paragraph(""), WithMaxHistory(2), WithMerge(false), WithSelection(1, 1))
	for _, s := range []string{"a", "b", "c"} {
		must(t, d.Type(s))
	}
	if d.UndoCount() != 2 {
		t.Errorf("UndoCount() = %d, want 2", d.UndoCount())
	}

	seps := New(paragraph("a-b"), WithWordSeparators("-"))
	caret(t, seps, 1)
	must(t, seps.MoveWordRight(false))
	assertSel(t, seps, 2, 2)

	ro := New(paragraph("x"), WithReadOnly())
	if err := ro.Type("y"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Type() error = %v, want ErrReadOnly", err)
	}
	if !ro.IsReadOnly() {
		t.Error("IsReadOnly() = false")
	}
}

func TestSelect(t *testing.T) {
	d := New(paragraph("hello"))
	must(t, d.Select(-1, 0))
	assertSel(t, d, 7, 0)

	if err := d.Select(0, 99); !errors.Is(err, ErrSelectionOutOfRange) {
		t.Errorf("Select() error = %v, want ErrSelectionOutOfRange", err)
	}
	d.SelectAll()
	assertSel(t, d, 0, 7)
}

func TestBiasLocation(t *testing.T) {
	d := New(paragraph("hello"))
	loc, err := d.Location(3)
	must(t, err)
	if txt, ok := loc.Node.(*tree.Text); !ok || txt.Value() != "hello" || loc.Offset != 2 {
		t.Fatalf("Location(3) = %v", loc)
	}
	b, err := d.Bias(loc)
	must(t, err)
	if b != 3 {
		t.Errorf("Bias() = %d, want 3", b)
	}
}
