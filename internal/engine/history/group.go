package history

import "fmt"

// GroupScope provides a convenient way to group commands using defer.
// Usage:
//
//	func joinBlocks(h *History) {
//	    defer h.GroupScope("Join").End()
//	    // ... multiple edits ...
//	}
type GroupScope struct {
	history *History
	active  bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
func (h *History) GroupScope(name string) *GroupScope {
	h.BeginGroup(name)
	return &GroupScope{
		history: h,
		active:  true,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}

// Cancel cancels the group scope without creating a compound command.
// Commands already executed still affect the document.
func (g *GroupScope) Cancel() {
	if g.active {
		g.history.CancelGroup()
		g.active = false
	}
}

// Transaction executes fn within a grouped undo context. If fn returns an
// error, the commands it executed are undone in reverse order and the
// group is discarded, leaving the document as it was before the call.
func (h *History) Transaction(name string, fn func() error) error {
	if h.grouping {
		return fn()
	}
	h.BeginGroup(name)

	err := fn()
	if err != nil {
		cmds := h.groupCmds
		h.CancelGroup()
		for i := len(cmds) - 1; i >= 0; i-- {
			if uerr := cmds[i].Undo(); uerr != nil {
				return fmt.Errorf("%w (rollback step %d: %v)", err, i, uerr)
			}
			h.emit(Event{Kind: EventUndo, Command: cmds[i]})
		}
		return err
	}

	h.EndGroup()
	return nil
}

// ExecuteGrouped executes multiple commands as a single undo unit.
func (h *History) ExecuteGrouped(name string, cmds ...Command) error {
	if len(cmds) == 0 {
		return nil
	}

	if len(cmds) == 1 {
		// Single command doesn't need grouping
		return h.Execute(cmds[0], false)
	}

	return h.Transaction(name, func() error {
		for _, cmd := range cmds {
			if err := h.Execute(cmd, false); err != nil {
				return err
			}
		}
		return nil
	})
}

// Checkpoint represents a point in history that can be returned to.
type Checkpoint struct {
	pos int
}

// CreateCheckpoint creates a checkpoint at the current history position.
// The top entry stops merging so later edits stay separable.
func (h *History) CreateCheckpoint() Checkpoint {
	h.mergeOpen = false
	return Checkpoint{pos: h.evicted + len(h.done)}
}

// UndoToCheckpoint undoes all operations since the checkpoint.
func (h *History) UndoToCheckpoint(cp Checkpoint) error {
	if cp.pos < h.evicted {
		return ErrCheckpointEvicted
	}
	for h.evicted+len(h.done) > cp.pos {
		if _, err := h.Undo(); err != nil {
			return err
		}
	}
	return nil
}

// RedoToCheckpoint redoes operations up to the checkpoint position.
// This only works while the undone stack still holds them.
func (h *History) RedoToCheckpoint(cp Checkpoint) error {
	for h.evicted+len(h.done) < cp.pos && h.CanRedo() {
		if _, err := h.Redo(); err != nil {
			return err
		}
	}
	return nil
}
