package engine

import (
	"github.com/dshills/inkwell/internal/engine/cursor"
	"github.com/dshills/inkwell/internal/engine/edit"
	"github.com/dshills/inkwell/internal/engine/nav"
	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/engine/tree"
)

// Type replaces the selection with text, or inserts it at the caret.
func (d *Document) Type(text string) error {
	return d.Execute(edit.NewInsertText(d.root, d.sel.Interval(), text, d.opts()...))
}

// Backspace deletes the selection, or the token before the caret: one
// grapheme, a whole label, or the boundary pair joining the current block
// with the previous one.
func (d *Document) Backspace() error {
	if !d.sel.IsEmpty() {
		return d.deleteInterval(d.sel.Interval(), edit.Backward)
	}
	b := d.sel.Head
	loc, err := d.Location(b)
	if err != nil {
		return err
	}
	tok, ok, err := nav.TokenBefore(d.root, loc)
	if err != nil || !ok {
		return err
	}

	switch tok.Kind {
	case nav.TokenChar:
		return d.deleteInterval(position.Span(b-1, b), edit.Backward)
	case nav.TokenClose:
		if tree.IsLabel(tok.Node) {
			return d.deleteInterval(position.Span(b-2, b), edit.Backward)
		}
		// Step into the block that ends here.
		d.moveTo(b-1, false)
		return nil
	case nav.TokenOpen:
		e := tok.Element()
		if e == nil || tree.IsLabel(e) || e.Parent() == nil {
			return nil
		}
		if prev, _ := tree.PrevNonHint(e.Parent(), tree.Index(e)); prev != nil && tree.IsContainer(prev) {
			return d.deleteInterval(position.Span(b-2, b), edit.Backward)
		}
	}
	return nil
}

// DeleteForward deletes the selection, or the token after the caret,
// mirroring Backspace.
func (d *Document) DeleteForward() error {
	if !d.sel.IsEmpty() {
		return d.deleteInterval(d.sel.Interval(), edit.Forward)
	}
	b := d.sel.Head
	loc, err := d.Location(b)
	if err != nil {
		return err
	}
	tok, ok, err := nav.TokenAfter(d.root, loc)
	if err != nil || !ok {
		return err
	}

	switch tok.Kind {
	case nav.TokenChar:
		return d.deleteInterval(position.Span(b, b+1), edit.Forward)
	case nav.TokenOpen:
		if tree.IsLabel(tok.Node) {
			return d.deleteInterval(position.Span(b, b+2), edit.Forward)
		}
		d.moveTo(b+1, false)
		return nil
	case nav.TokenClose:
		e := tok.Element()
		if e == nil || tree.IsLabel(e) || e.Parent() == nil {
			return nil
		}
		if next, _ := tree.NextNonHint(e.Parent(), tree.Index(e)+1); next != nil && tree.IsContainer(next) {
			return d.deleteInterval(position.Span(b, b+2), edit.Forward)
		}
	}
	return nil
}

// DeleteWordBackward deletes from the previous word boundary to the caret.
func (d *Document) DeleteWordBackward() error {
	if !d.sel.IsEmpty() {
		return d.deleteInterval(d.sel.Interval(), edit.Backward)
	}
	target, ok, err := d.wordTarget(d.sel.Head, false)
	if err != nil || !ok {
		return err
	}
	return d.deleteInterval(position.Span(target, d.sel.Head), edit.Backward)
}

// DeleteWordForward deletes from the caret to the next word boundary.
func (d *Document) DeleteWordForward() error {
	if !d.sel.IsEmpty() {
		return d.deleteInterval(d.sel.Interval(), edit.Forward)
	}
	target, ok, err := d.wordTarget(d.sel.Head, true)
	if err != nil || !ok {
		return err
	}
	return d.deleteInterval(position.Span(d.sel.Head, target), edit.Forward)
}

func (d *Document) deleteInterval(iv Interval, dir edit.Direction) error {
	return d.Execute(edit.NewDelete(d.root, iv, dir, d.opts()...))
}

// Format wraps the selection in a new element with tag.
func (d *Document) Format(tag string) error {
	return d.Execute(edit.NewFormat(d.root, d.sel.Interval(), tag, d.opts()...))
}

// Unformat removes the nearest element with tag around the selection.
func (d *Document) Unformat(tag string) error {
	return d.Execute(edit.NewUnformat(d.root, d.sel.Interval(), tag, d.opts()...))
}

// InsertLabel replaces the selection with an atomic widget.
func (d *Document) InsertLabel(tag, content string) error {
	if d.sel.IsEmpty() {
		return d.Execute(edit.NewInsertLabel(d.root, d.sel.Head, tag, content, d.opts()...))
	}
	return d.Group("Insert ["+tag+"]", func() error {
		if err := d.deleteInterval(d.sel.Interval(), edit.Forward); err != nil {
			return err
		}
		return d.Execute(edit.NewInsertLabel(d.root, d.sel.Head, tag, content, d.opts()...))
	})
}

// MoveLeft moves the caret one token back. With extend the anchor stays.
// Without it, a non-empty selection collapses to its start.
func (d *Document) MoveLeft(extend bool) error {
	if !extend && !d.sel.IsEmpty() {
		d.moveTo(d.sel.Start(), false)
		return nil
	}
	return d.step(false, extend)
}

// MoveRight moves the caret one token forward.
func (d *Document) MoveRight(extend bool) error {
	if !extend && !d.sel.IsEmpty() {
		d.moveTo(d.sel.End(), false)
		return nil
	}
	return d.step(true, extend)
}

// MoveWordLeft moves the caret to the previous word boundary.
func (d *Document) MoveWordLeft(extend bool) error {
	target, ok, err := d.wordTarget(d.sel.Head, false)
	if err != nil || !ok {
		return err
	}
	d.moveTo(target, extend)
	return nil
}

// MoveWordRight moves the caret to the next word boundary.
func (d *Document) MoveWordRight(extend bool) error {
	target, ok, err := d.wordTarget(d.sel.Head, true)
	if err != nil || !ok {
		return err
	}
	d.moveTo(target, extend)
	return nil
}

func (d *Document) step(forward, extend bool) error {
	loc, err := d.Location(d.sel.Head)
	if err != nil {
		return err
	}
	var (
		to Location
		ok bool
	)
	if forward {
		to, ok, err = nav.Next(d.root, loc)
	} else {
		to, ok, err = nav.Prev(d.root, loc)
	}
	if err != nil || !ok {
		return err
	}
	b, err := d.Bias(to)
	if err != nil {
		return err
	}
	d.moveTo(b, extend)
	return nil
}

func (d *Document) wordTarget(from int, forward bool) (int, bool, error) {
	loc, err := d.Location(from)
	if err != nil {
		return 0, false, err
	}
	var (
		to Location
		ok bool
	)
	if forward {
		to, ok, err = nav.NextWord(d.root, loc, d.cfg.Separators)
	} else {
		to, ok, err = nav.PrevWord(d.root, loc, d.cfg.Separators)
	}
	if err != nil || !ok {
		return 0, false, err
	}
	b, err := d.Bias(to)
	return b, err == nil, err
}

// moveTo places the caret; a caret move ends any open merge run.
func (d *Document) moveTo(b int, extend bool) {
	if extend {
		d.sel = d.sel.Extend(b)
	} else {
		d.sel = cursor.NewCursorSelection(b)
	}
	d.history.BreakMerge()
}
