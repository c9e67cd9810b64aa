package history

import (
	"errors"
	"time"

	"github.com/dshills/inkwell/internal/logging"
)

// Common errors for history operations.
var (
	// ErrNilCommand is returned when Execute is given a nil command.
	ErrNilCommand = errors.New("nil command")

	// ErrCheckpointEvicted is returned when the entries a checkpoint refers
	// to have been dropped by the entry limit.
	ErrCheckpointEvicted = errors.New("checkpoint evicted from history")
)

// entry wraps a command with metadata.
type entry struct {
	command   Command
	timestamp time.Time
	merged    int
}

// History manages the done/undone stacks of one document.
//
// A History is owned by a single document and is not safe for concurrent
// use; all edits run synchronously on the caller's goroutine.
type History struct {
	done   []*entry
	undone []*entry

	// Grouping state
	grouping  bool
	groupName string
	groupCmds []Command

	// mergeOpen is true while the top of done may absorb the next command.
	mergeOpen bool
	// evicted counts entries dropped from the bottom of done.
	evicted int

	maxEntries int
	merge      bool
	listeners  []Listener
	logger     *logging.Logger
}

// New creates a history manager.
func New(opts ...Option) *History {
	h := &History{
		maxEntries: DefaultMaxEntries,
		merge:      true,
		logger:     logging.Null(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute records cmd. Unless alreadyApplied is set, cmd.Execute runs first
// and its error aborts the call with nothing recorded. Listeners receive an
// EventExecute, the undone stack is cleared, and cmd is either absorbed by
// the top entry through TryMerge or pushed as a new entry.
func (h *History) Execute(cmd Command, alreadyApplied bool) error {
	if cmd == nil {
		return ErrNilCommand
	}
	if !alreadyApplied {
		if err := cmd.Execute(); err != nil {
			return err
		}
	}
	h.emit(Event{Kind: EventExecute, Command: cmd})
	h.undone = nil

	if h.grouping {
		h.groupCmds = append(h.groupCmds, cmd)
		return nil
	}
	h.push(cmd)
	return nil
}

func (h *History) push(cmd Command) {
	if h.merge && h.mergeOpen && len(h.done) > 0 {
		top := h.done[len(h.done)-1]
		if top.command.TryMerge(cmd) {
			top.merged++
			top.timestamp = time.Now()
			h.logger.Debug("merged %s into %s", cmd.ID(), top.command.ID())
			return
		}
	}

	h.done = append(h.done, &entry{command: cmd, timestamp: time.Now()})
	h.mergeOpen = true

	// Enforce max entries
	if excess := len(h.done) - h.maxEntries; excess > 0 {
		h.done = h.done[excess:]
		h.evicted += excess
		h.logger.Debug("evicted %d oldest entries", excess)
	}
}

// Undo reverts the most recent entry. It returns false when there is
// nothing to undo. A failing Undo leaves the entry on the done stack.
func (h *History) Undo() (bool, error) {
	if len(h.done) == 0 {
		return false, nil
	}
	e := h.done[len(h.done)-1]
	h.done = h.done[:len(h.done)-1]
	h.mergeOpen = false

	if err := e.command.Undo(); err != nil {
		// Restore entry on failure
		h.done = append(h.done, e)
		return false, err
	}
	h.emit(Event{Kind: EventUndo, Command: e.command})
	h.undone = append(h.undone, e)
	h.logger.Debug("undo %q", e.command.Description())
	return true, nil
}

// Redo re-executes the most recently undone entry. It returns false when
// there is nothing to redo.
func (h *History) Redo() (bool, error) {
	if len(h.undone) == 0 {
		return false, nil
	}
	e := h.undone[len(h.undone)-1]
	h.undone = h.undone[:len(h.undone)-1]
	h.mergeOpen = false

	if err := e.command.Execute(); err != nil {
		h.undone = append(h.undone, e)
		return false, err
	}
	h.emit(Event{Kind: EventRedo, Command: e.command})
	h.done = append(h.done, e)
	h.logger.Debug("redo %q", e.command.Description())
	return true, nil
}

// BreakMerge closes the top entry so the next command starts a new one.
func (h *History) BreakMerge() {
	h.mergeOpen = false
}

func (h *History) emit(ev Event) {
	for _, l := range h.listeners {
		l(ev)
	}
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.done) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.undone) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return len(h.done)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	return len(h.undone)
}

// Done returns the commands on the done stack, oldest first.
func (h *History) Done() []Command {
	out := make([]Command, len(h.done))
	for i, e := range h.done {
		out[i] = e.command
	}
	return out
}

// BeginGroup starts a command group.
// Commands executed while grouping are combined into a single undo unit.
func (h *History) BeginGroup(name string) {
	if h.grouping {
		// Already grouping, ignore nested calls
		return
	}
	h.grouping = true
	h.groupName = name
	h.groupCmds = nil
}

// EndGroup finishes a command group.
// All commands since BeginGroup are combined into a CompoundCommand.
func (h *History) EndGroup() {
	if !h.grouping {
		return
	}
	h.grouping = false

	if len(h.groupCmds) == 0 {
		h.groupCmds = nil
		return
	}

	h.mergeOpen = false
	h.push(NewCompoundCommand(h.groupName, h.groupCmds...))
	h.mergeOpen = false
	h.groupCmds = nil
}

// CancelGroup cancels a command group without adding to history.
// Commands already executed still affect the document.
func (h *History) CancelGroup() {
	h.grouping = false
	h.groupCmds = nil
}

// IsGrouping returns true if currently in a command group.
func (h *History) IsGrouping() bool {
	return h.grouping
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.done = nil
	h.undone = nil
	h.grouping = false
	h.groupCmds = nil
	h.mergeOpen = false
}

// UndoInfo returns info about available undo operations, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	return infos(h.done)
}

// RedoInfo returns info about available redo operations, oldest first.
func (h *History) RedoInfo() []OperationInfo {
	return infos(h.undone)
}

// PeekUndo returns info about the next undo operation without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	if len(h.done) == 0 {
		return OperationInfo{}, false
	}
	return h.done[len(h.done)-1].info(), true
}

// PeekRedo returns info about the next redo operation without removing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	if len(h.undone) == 0 {
		return OperationInfo{}, false
	}
	return h.undone[len(h.undone)-1].info(), true
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(n int) {
	if n <= 0 {
		n = DefaultMaxEntries
	}
	h.maxEntries = n
	if excess := len(h.done) - n; excess > 0 {
		h.done = h.done[excess:]
		h.evicted += excess
	}
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

func (e *entry) info() OperationInfo {
	return OperationInfo{
		ID:          e.command.ID(),
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
		Merged:      e.merged,
	}
}

func infos(entries []*entry) []OperationInfo {
	result := make([]OperationInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info()
	}
	return result
}
