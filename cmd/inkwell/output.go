package main

import (
	"io"
	"os"

	"github.com/tidwall/pretty"
	"golang.org/x/term"
)

// formatJSON indents journal output, colorizing it for terminals.
func formatJSON(data []byte, color bool) []byte {
	out := pretty.Pretty(data)
	if color {
		out = pretty.Color(out, nil)
	}
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
