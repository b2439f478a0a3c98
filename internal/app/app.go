package app

import "prockill/internal/proc"

// Options configures the top-level controller.
type Options struct {
	// Source is the process table the controller reads and signals.
	Source proc.Source
}

// App exposes the find/kill operations the CLI and TUI share.
type App struct {
	src proc.Source
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	return &App{
		src: opts.Source,
	}
}
