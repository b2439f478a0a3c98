package main

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// startSpinner shows a spinner on w while the process table is scanned.
// It is a no-op unless w is a terminal.
func startSpinner(w io.Writer, enabled bool) (stop func()) {
	f, ok := w.(*os.File)
	if !enabled || !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(f))
	s.Suffix = " Scanning processes..."
	s.Start()
	return s.Stop
}
