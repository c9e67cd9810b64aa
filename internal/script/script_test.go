package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/inkwell/internal/engine"
	"github.com/dshills/inkwell/internal/engine/edit"
	"github.com/dshills/inkwell/internal/engine/tree"
)

const boldScript = `
name: bold a word
tree:
  tag: doc
  children:
    - tag: p
      children: [hello world]
selection: [1, 6]
steps:
  - format: b
  - expect:
      tree: '<doc><p><b>"hello"</b>" world"</p></doc>'
      selection: [2, 7]
  - undo: 1
  - lua: doc.select(-2); doc.type("!")
  - expect: {text: "hello world!", undo: 1, redo: 0}
`

func run(t *testing.T, src string, opts ...RunOption) (*engine.Document, error) {
	t.Helper()
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	d, err := s.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	r := NewRunner(d, opts...)
	defer r.Close()
	return d, r.Run(context.Background(), s)
}

func TestRunScript(t *testing.T) {
	d, err := run(t, boldScript)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := d.String(); got != `<doc><p>"hello world!"</p></doc>` {
		t.Errorf("tree = %s", got)
	}
}

func TestGestureSteps(t *testing.T) {
	src := `
tree:
  tag: doc
  children:
    - tag: p
      children: [hello]
    - tag: p
      children: [big world]
selection: [6]
steps:
  - type: "!"
  - move: right
    repeat: 2
  - expect: {selection: [9]}
  - delete: 1
  - backspace: 1
  - expect:
      tree: '<doc><p>"hello!ig world"</p></doc>'
      selection: [7]
  - move: word_right
    extend: true
  - expect: {selection: [7, 9]}
  - backspace_word: 1
  - expect: {text: "hello! world"}
  - select: [1, 7]
  - label: {tag: img}
  - expect: {tree: '<doc><p>[img]" world"</p></doc>', selection: [3], undo: 5}
  - backspace: 1
  - expect: {tree: '<doc><p>" world"</p></doc>'}
  - undo: 1
  - select_all: true
  - expect: {selection: [0, 10], redo: 1}
`
	if _, err := run(t, src); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestExpectationFailure(t *testing.T) {
	src := `
tree: {tag: doc, children: [{tag: p, children: [abc]}]}
steps:
  - select: [4]
  - backspace: 1
  - expect: {text: "abc"}
`
	_, err := run(t, src)
	var serr *StepError
	if !errors.As(err, &serr) {
		t.Fatalf("Run() error = %v, want *StepError", err)
	}
	if serr.Index != 2 || serr.Line != 6 {
		t.Errorf("StepError = %+v", serr)
	}
	var eerr *ExpectationError
	if !errors.As(err, &eerr) || eerr.Field != "text" || eerr.Got != "ab" {
		t.Errorf("ExpectationError = %+v", eerr)
	}
}

func TestEditErrorStopsRun(t *testing.T) {
	src := `
tree:
  tag: doc
  children:
    - {tag: p, children: [one]}
    - {tag: p, children: [two]}
steps:
  - select: [2, 8]
  - format: b
  - type: never
`
	d, err := run(t, src)
	if !errors.Is(err, edit.ErrCrossesBoundary) {
		t.Fatalf("Run() error = %v, want ErrCrossesBoundary", err)
	}
	if strings.Contains(d.Text(), "never") {
		t.Error("steps ran after a failure")
	}
}

func TestLuaOutput(t *testing.T) {
	var out bytes.Buffer
	src := `
tree: {tag: doc}
steps:
  - lua: |
      doc.type("hi")
      print(doc.size())
  - lua: print(doc.text())
`
	if _, err := run(t, src, WithOutput(&out)); err != nil {
		t.Fatal(err)
	}
	if out.String() != "2\nhi\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrBadStep},
		{"no action", "steps:\n  - extend: true\n", ErrBadStep},
		{"two actions", "steps:\n  - undo: 1\n    redo: 1\n", ErrBadStep},
		{"long selection", "selection: [1, 2, 3]\n", ErrBadStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.src)); !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("stpes: []\n")); err == nil {
		t.Error("Parse() accepted an unknown key")
	}
}

func TestBadMove(t *testing.T) {
	_, err := run(t, "steps:\n  - move: up\n")
	if !errors.Is(err, ErrBadStep) {
		t.Errorf("Run() error = %v, want ErrBadStep", err)
	}
}

func TestNodeSpecBuild(t *testing.T) {
	src := `
tree:
  tag: doc
  children:
    - tag: p
      children:
        - a
        - hint: true
          children: ["**"]
        - {label: math, children: [x]}
        - text: ""
steps: []
`
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	root, err := s.Tree.BuildRoot()
	if err != nil {
		t.Fatal(err)
	}
	if got := tree.Format(root); got != `<doc><p>"a"{"**"}[math]""</p></doc>` {
		t.Errorf("Format() = %s", got)
	}
}

func TestNodeSpecErrors(t *testing.T) {
	tests := []string{
		"tree: {tag: doc, label: x}\n",
		"tree: {tag: doc, children: [{text: a, children: [b]}]}\n",
		"tree: plain\n",
		"tree: {label: box}\n",
	}
	for _, src := range tests {
		s, err := Parse([]byte(src))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", src, err)
		}
		if _, err := s.Document(); !errors.Is(err, ErrBadTree) {
			t.Errorf("Document() for %q error = %v, want ErrBadTree", src, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte(boldScript), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "bold a word" || len(s.Steps) != 5 {
		t.Errorf("Load() = %q with %d steps", s.Name, len(s.Steps))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}
