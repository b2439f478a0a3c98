// Package proc discovers running processes and delivers forced kills.
package proc

import (
	"context"
	"fmt"
	"strings"
)

// Process is one entry of an enumeration snapshot.
type Process struct {
	PID  int
	Name string
}

// Source is the operating-system boundary: it lists live processes and
// delivers a forced kill to a PID. Results are a point-in-time snapshot; a
// listed PID may be gone (or reused) by the time Kill is called.
type Source interface {
	Processes(ctx context.Context) ([]Process, error)
	Kill(pid int) error
}

// EnumerationError reports that the process table could not be read at all.
type EnumerationError struct {
	Root string
	Err  error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("unable to open %s: %v", e.Root, e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// Matches reports whether pattern occurs in name. Case-sensitive, no globbing.
func Matches(name, pattern string) bool {
	return strings.Contains(name, pattern)
}

// Filter keeps the processes whose name contains pattern, in input order.
func Filter(procs []Process, pattern string) []Process {
	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		if Matches(p.Name, pattern) {
			out = append(out, p)
		}
	}
	return out
}
