package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func newLogger(w io.Writer, verbose, noColor bool) *slog.Logger {
	if noColor || !isTerminal(w) {
		color.NoColor = true
	}

	opts := *slogcolor.DefaultOptions
	opts.Level = slog.LevelWarn
	if verbose {
		opts.Level = slog.LevelDebug
	}
	opts.SrcFileMode = slogcolor.Nop

	return slog.New(slogcolor.NewHandler(w, &opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
