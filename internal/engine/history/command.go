package history

import (
	"fmt"

	"github.com/google/uuid"
)

// Command is a reversible unit of document mutation.
//
// Execute and Undo carry every side effect. TryMerge must not mutate the
// receiver unless it returns true, in which case next has been absorbed and
// the receiver now represents both edits.
type Command interface {
	// ID is the immutable identity assigned when the command is created.
	ID() uuid.UUID

	// Execute performs the command. It runs again on redo.
	Execute() error

	// Undo reverses the last Execute.
	Undo() error

	// TryMerge attempts to absorb next, which has already been executed.
	TryMerge(next Command) bool

	// Description returns a human-readable description of the command.
	Description() string
}

// FuncCommand adapts a pair of closures to Command. It never merges.
type FuncCommand struct {
	id   uuid.UUID
	Name string
	Do   func() error
	Back func() error
}

// NewFuncCommand creates a command from do/undo closures.
func NewFuncCommand(name string, do, undo func() error) *FuncCommand {
	return &FuncCommand{id: uuid.New(), Name: name, Do: do, Back: undo}
}

// ID returns the command identity.
func (c *FuncCommand) ID() uuid.UUID { return c.id }

// Execute runs Do.
func (c *FuncCommand) Execute() error {
	if c.Do == nil {
		return nil
	}
	return c.Do()
}

// Undo runs Back.
func (c *FuncCommand) Undo() error {
	if c.Back == nil {
		return nil
	}
	return c.Back()
}

// TryMerge always returns false.
func (c *FuncCommand) TryMerge(Command) bool { return false }

// Description returns the command's name.
func (c *FuncCommand) Description() string { return c.Name }

// CompoundCommand groups multiple commands as one undo unit.
type CompoundCommand struct {
	id       uuid.UUID
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a new compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{
		id:       uuid.New(),
		Name:     name,
		Commands: commands,
	}
}

// RestoreCompoundCommand recreates a compound command with a known identity,
// as read back from a journal.
func RestoreCompoundCommand(id uuid.UUID, name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{id: id, Name: name, Commands: commands}
}

// ID returns the command identity.
func (c *CompoundCommand) ID() uuid.UUID { return c.id }

// Execute runs all commands in order.
func (c *CompoundCommand) Execute() error {
	for i, cmd := range c.Commands {
		if err := cmd.Execute(); err != nil {
			// On error, try to undo what we've done
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Undo()
			}
			return fmt.Errorf("compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Undo reverses all commands in reverse order.
func (c *CompoundCommand) Undo() error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(); err != nil {
			return fmt.Errorf("undo compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// TryMerge returns false: a group is closed once it is pushed.
func (c *CompoundCommand) TryMerge(Command) bool { return false }

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// Add adds a command to the compound command.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty returns true if the compound command has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}
