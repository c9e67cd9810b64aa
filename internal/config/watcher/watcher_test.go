package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestCoalesce(t *testing.T) {
	ev := func(op Operation) Event { return Event{Path: "/x", Op: op} }
	tests := []struct {
		name string
		prev Event
		next Event
		want Operation
	}{
		{"first", Event{}, ev(OpWrite), OpWrite},
		{"create then write", ev(OpCreate), ev(OpWrite), OpCreate},
		{"write then write", ev(OpWrite), ev(OpWrite), OpWrite},
		{"write then remove", ev(OpWrite), ev(OpRemove), OpRemove},
		{"remove then write", ev(OpRemove), ev(OpWrite), OpRemove},
		{"remove then create", ev(OpRemove), ev(OpCreate), OpCreate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coalesce(tt.prev, tt.next).Op; got != tt.want {
				t.Errorf("coalesce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWatcher_WatchUnwatch(t *testing.T) {
	dir := t.TempDir()
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.yaml")
	for _, p := range []string{a, b, a} {
		if err := w.Watch(p); err != nil {
			t.Fatalf("Watch(%s) error = %v", p, err)
		}
	}
	if n := len(w.WatchedFiles()); n != 2 {
		t.Errorf("WatchedFiles() = %d files, want 2", n)
	}
	if err := w.Unwatch(a); err != nil {
		t.Fatal(err)
	}
	if files := w.WatchedFiles(); len(files) != 1 || files[0] != b {
		t.Errorf("WatchedFiles() = %v", files)
	}

	if err := w.Watch(filepath.Join(dir, "missing", "c.toml")); err == nil {
		t.Error("Watch() in a missing directory succeeded")
	}
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.yaml")
	if err := os.WriteFile(path, []byte("steps: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(WithDebounce(20 * time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	events := make(chan Event, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(ev Event) { events <- ev })
	}()

	// Unwatched neighbours are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	for range 3 {
		if err := os.WriteFile(path, []byte("steps: [{undo: true}]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case ev := <-events:
		if ev.Path != path {
			t.Errorf("event path = %s, want %s", ev.Path, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event delivered")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestWatcher_Closed(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if err := w.Watch(t.TempDir() + "/x"); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Watch() after Close = %v", err)
	}
}
