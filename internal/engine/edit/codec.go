package edit

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/inkwell/internal/engine/history"
	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/engine/tree"
)

// Journal record kinds.
const (
	kindInsert   = "insert"
	kindDelete   = "delete"
	kindFormat   = "format"
	kindUnformat = "unformat"
	kindLabel    = "label"
	kindGroup    = "group"
)

// Encode serializes cmd as a JSON journal record. Records carry biases
// and intervals only, never node references, so they replay against any
// tree in the same state.
func Encode(cmd history.Command) ([]byte, error) {
	rec := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err == nil {
			rec, err = sjson.SetBytes(rec, path, v)
		}
	}
	at := func(iv position.Interval) {
		set("at", []int{iv.Start, iv.End})
	}

	switch c := cmd.(type) {
	case *InsertText:
		set("kind", kindInsert)
		at(c.At)
		set("text", c.Text)
	case *Delete:
		set("kind", kindDelete)
		at(c.At)
		set("direction", c.Dir.String())
	case *Format:
		set("kind", kindFormat)
		at(c.At)
		set("tag", c.Tag)
	case *Unformat:
		set("kind", kindUnformat)
		at(c.At)
		set("tag", c.Tag)
	case *InsertLabel:
		set("kind", kindLabel)
		at(position.Caret(c.At))
		set("tag", c.Tag)
		if c.Content != "" {
			set("text", c.Content)
		}
	case *history.CompoundCommand:
		set("kind", kindGroup)
		set("name", c.Name)
		set("commands", []any{})
		for _, sub := range c.Commands {
			raw, serr := Encode(sub)
			if serr != nil {
				return nil, serr
			}
			if err == nil {
				rec, err = sjson.SetRawBytes(rec, "commands.-1", raw)
			}
		}
	default:
		return nil, fmt.Errorf("encode %T: %w", cmd, ErrUnknownCommand)
	}
	set("id", cmd.ID().String())
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", cmd.Description(), err)
	}
	return rec, nil
}

// EncodeJournal serializes cmds as a JSON array of records.
func EncodeJournal(cmds []history.Command) ([]byte, error) {
	out := []byte(`{"records":[]}`)
	for _, cmd := range cmds {
		raw, err := Encode(cmd)
		if err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, "records.-1", raw); err != nil {
			return nil, err
		}
	}
	return []byte(gjson.GetBytes(out, "records").Raw), nil
}

// Decode rebuilds an unexecuted command from a journal record, bound to
// root. Options apply to every decoded command.
func Decode(root *tree.Element, data []byte, opts ...Option) (history.Command, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decode: invalid JSON")
	}
	return decode(root, gjson.ParseBytes(data), opts)
}

// DecodeJournal rebuilds the commands of a journal array, in order.
func DecodeJournal(root *tree.Element, data []byte, opts ...Option) ([]history.Command, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decode journal: invalid JSON")
	}
	res := gjson.ParseBytes(data)
	if !res.IsArray() {
		return nil, fmt.Errorf("decode journal: not an array")
	}
	var cmds []history.Command
	for i, r := range res.Array() {
		cmd, err := decode(root, r, opts)
		if err != nil {
			return nil, fmt.Errorf("journal record %d: %w", i, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func decode(root *tree.Element, r gjson.Result, opts []Option) (history.Command, error) {
	var id uuid.UUID
	if s := r.Get("id"); s.Exists() {
		parsed, err := uuid.Parse(s.String())
		if err != nil {
			return nil, fmt.Errorf("decode id: %w", err)
		}
		id = parsed
	}
	withID := func(b *base) {
		if id != uuid.Nil {
			b.id = id
		}
	}

	span := position.Span(int(r.Get("at.0").Int()), int(r.Get("at.1").Int()))
	tag := r.Get("tag").String()

	switch kind := r.Get("kind").String(); kind {
	case kindInsert:
		c := NewInsertText(root, span, r.Get("text").String(), opts...)
		withID(&c.base)
		return c, nil
	case kindDelete:
		dir, err := ParseDirection(r.Get("direction").String())
		if err != nil {
			return nil, err
		}
		c := NewDelete(root, span, dir, opts...)
		withID(&c.base)
		return c, nil
	case kindFormat:
		c := NewFormat(root, span, tag, opts...)
		withID(&c.base)
		return c, nil
	case kindUnformat:
		c := NewUnformat(root, span, tag, opts...)
		withID(&c.base)
		return c, nil
	case kindLabel:
		c := NewInsertLabel(root, span.Start, tag, r.Get("text").String(), opts...)
		withID(&c.base)
		return c, nil
	case kindGroup:
		var subs []history.Command
		for _, sr := range r.Get("commands").Array() {
			sub, err := decode(root, sr, opts)
			if err != nil {
				return nil, err
			}
			subs = append(subs, sub)
		}
		if id == uuid.Nil {
			id = uuid.New()
		}
		return history.RestoreCompoundCommand(id, r.Get("name").String(), subs...), nil
	default:
		return nil, fmt.Errorf("decode %q: %w", kind, ErrUnknownCommand)
	}
}
