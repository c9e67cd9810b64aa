package history

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies what History just did with a command.
type EventKind uint8

const (
	// EventExecute follows a first execution, including merged commands.
	EventExecute EventKind = iota
	// EventUndo follows a successful Undo.
	EventUndo
	// EventRedo follows a successful re-execution.
	EventRedo
)

func (k EventKind) String() string {
	switch k {
	case EventExecute:
		return "execute"
	case EventUndo:
		return "undo"
	case EventRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Event is emitted to listeners after each execute, undo and redo.
type Event struct {
	Kind    EventKind
	Command Command
}

// Listener receives history events. Listeners are fixed at construction.
type Listener func(Event)

// OperationInfo provides read-only info about a history entry.
// Used for displaying undo/redo history to users.
type OperationInfo struct {
	ID          uuid.UUID // Identity of the entry's command
	Description string    // Human-readable description
	Timestamp   time.Time // When the entry was last extended
	Merged      int       // Number of commands absorbed by TryMerge
}
