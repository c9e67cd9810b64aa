package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/config/watcher"
	"github.com/dshills/inkwell/internal/engine"
	"github.com/dshills/inkwell/internal/engine/edit"
	"github.com/dshills/inkwell/internal/logging"
	"github.com/dshills/inkwell/internal/script"
)

type replayer struct {
	cfg    *config.Config
	logger *logging.Logger
	out    io.Writer
	color  bool
	opts   Options
}

// runAll replays every script and reports whether any failed.
func (r *replayer) runAll(ctx context.Context) bool {
	failed := false
	for _, path := range r.opts.Scripts {
		if err := r.replay(ctx, path); err != nil {
			r.logger.Error("%s: %v", path, err)
			failed = true
		}
	}
	return failed
}

func (r *replayer) replay(ctx context.Context, path string) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	d, err := r.document(s)
	if err != nil {
		return err
	}

	runner := script.NewRunner(d, script.WithLogger(r.logger), script.WithOutput(r.out))
	defer runner.Close()
	runErr := runner.Run(ctx, s)

	name := s.Name
	if name == "" {
		name = path
	}
	fmt.Fprintf(r.out, "# %s\n%s\n", name, d.String())
	if runErr != nil {
		return runErr
	}

	journal, err := edit.EncodeJournal(d.History().Done())
	if err != nil {
		return err
	}
	if err := r.writeJournal(journal); err != nil {
		return err
	}
	if r.opts.Verify {
		if err := r.verify(s, journal, d.String()); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "journal verified (%d commands)\n", d.UndoCount())
	}
	return nil
}

func (r *replayer) document(s *script.Script) (*engine.Document, error) {
	opts := append(r.cfg.DocumentOptions(), engine.WithLogger(r.logger))
	return s.Document(opts...)
}

func (r *replayer) writeJournal(journal []byte) error {
	switch r.opts.Journal {
	case "":
		return nil
	case "-":
		_, err := r.out.Write(formatJSON(journal, r.color))
		return err
	default:
		return os.WriteFile(r.opts.Journal, formatJSON(journal, false), 0o644)
	}
}

// verify replays journal against a fresh copy of the starting tree.
func (r *replayer) verify(s *script.Script, journal []byte, want string) error {
	d, err := r.document(s)
	if err != nil {
		return err
	}
	cmds, err := edit.DecodeJournal(d.Root(), journal, edit.WithConfig(d.Config()))
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		if err := d.Execute(cmd); err != nil {
			return fmt.Errorf("replaying %s: %w", cmd.Description(), err)
		}
	}
	if got := d.String(); got != want {
		return fmt.Errorf("journal replay produced %s, want %s", got, want)
	}
	return nil
}

// watch re-runs a script each time it is saved.
func (r *replayer) watch(ctx context.Context) error {
	w, err := watcher.New()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, path := range r.opts.Scripts {
		if err := w.Watch(path); err != nil {
			return err
		}
	}
	r.logger.Info("watching %d scripts", len(r.opts.Scripts))

	return w.Run(ctx, func(ev watcher.Event) {
		if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
			return
		}
		if err := r.replay(ctx, ev.Path); err != nil {
			r.logger.Error("%s: %v", ev.Path, err)
		}
	})
}
