package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/inkwell/internal/engine"
)

// Script is a parsed replay script.
type Script struct {
	Name      string   `yaml:"name"`
	Tree      NodeSpec `yaml:"tree"`
	Selection []int    `yaml:"selection,omitempty"`
	Steps     []Step   `yaml:"steps"`
}

// Step is one action of a script. Exactly one action field is set.
type Step struct {
	Select        []int      `yaml:"select,omitempty"`
	SelectAll     bool       `yaml:"select_all,omitempty"`
	Type          *string    `yaml:"type,omitempty"`
	Backspace     int        `yaml:"backspace,omitempty"`
	Delete        int        `yaml:"delete,omitempty"`
	BackspaceWord int        `yaml:"backspace_word,omitempty"`
	DeleteWord    int        `yaml:"delete_word,omitempty"`
	Move          string     `yaml:"move,omitempty"`
	Format        string     `yaml:"format,omitempty"`
	Unformat      string     `yaml:"unformat,omitempty"`
	Label         *LabelStep `yaml:"label,omitempty"`
	Undo          int        `yaml:"undo,omitempty"`
	Redo          int        `yaml:"redo,omitempty"`
	Lua           string     `yaml:"lua,omitempty"`
	Expect        *Expect    `yaml:"expect,omitempty"`

	// Modifiers.
	Extend bool `yaml:"extend,omitempty"`
	Repeat int  `yaml:"repeat,omitempty"`

	Line int `yaml:"-"`
}

// LabelStep inserts an atomic widget.
type LabelStep struct {
	Tag     string `yaml:"tag"`
	Content string `yaml:"content,omitempty"`
}

// Expect checks the document. Unset fields are not checked.
type Expect struct {
	Tree      string  `yaml:"tree,omitempty"`
	Text      *string `yaml:"text,omitempty"`
	Selection []int   `yaml:"selection,omitempty"`
	Undo      *int    `yaml:"undo,omitempty"`
	Redo      *int    `yaml:"redo,omitempty"`
}

// UnmarshalYAML records the step's line for error messages.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	type plain Step
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = Step(p)
	s.Line = value.Line
	return nil
}

// action names the step's single action.
func (s *Step) action() (string, error) {
	set := map[string]bool{
		"select":         s.Select != nil,
		"select_all":     s.SelectAll,
		"type":           s.Type != nil,
		"backspace":      s.Backspace > 0,
		"delete":         s.Delete > 0,
		"backspace_word": s.BackspaceWord > 0,
		"delete_word":    s.DeleteWord > 0,
		"move":           s.Move != "",
		"format":         s.Format != "",
		"unformat":       s.Unformat != "",
		"label":          s.Label != nil,
		"undo":           s.Undo > 0,
		"redo":           s.Redo > 0,
		"lua":            s.Lua != "",
		"expect":         s.Expect != nil,
	}
	var found []string
	for name, ok := range set {
		if ok {
			found = append(found, name)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return "", fmt.Errorf("no action: %w", ErrBadStep)
	default:
		return "", fmt.Errorf("%d actions in one step: %w", len(found), ErrBadStep)
	}
}

// Parse decodes a script. Unknown keys are errors.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty script: %w", ErrBadStep)
		}
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if len(s.Selection) > 2 {
		return nil, fmt.Errorf("selection takes one or two biases: %w", ErrBadStep)
	}
	for i := range s.Steps {
		if _, err := s.Steps[i].action(); err != nil {
			return nil, &StepError{Index: i, Line: s.Steps[i].Line, Err: err}
		}
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(data)
}

// Document builds the starting document. A script without a tree starts
// from an empty one.
func (s *Script) Document(opts ...engine.Option) (*engine.Document, error) {
	var d *engine.Document
	if s.Tree.IsZero() {
		d = engine.New(nil, opts...)
	} else {
		root, err := s.Tree.BuildRoot()
		if err != nil {
			return nil, err
		}
		d = engine.New(root, opts...)
	}
	if len(s.Selection) > 0 {
		anchor, head := pair(s.Selection)
		if err := d.Select(anchor, head); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// pair reads [anchor] or [anchor, head].
func pair(v []int) (int, int) {
	if len(v) == 1 {
		return v[0], v[0]
	}
	return v[0], v[1]
}
