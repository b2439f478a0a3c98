package app

import (
	"context"
	"errors"

	"prockill/internal/proc"
)

// FindParams selects processes by name.
type FindParams struct {
	// Pattern is matched as a plain, case-sensitive substring. Empty matches all.
	Pattern string
}

// Find takes one snapshot of the process table and returns the processes
// whose name contains the pattern, in enumeration order.
func (a *App) Find(ctx context.Context, params FindParams) ([]proc.Process, error) {
	if a.src == nil {
		return nil, errors.New("no process source configured")
	}
	procs, err := a.src.Processes(ctx)
	if err != nil {
		return nil, err
	}
	return proc.Filter(procs, params.Pattern), nil
}
