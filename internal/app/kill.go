package app

import (
	"fmt"

	"prockill/internal/proc"
)

// Kill event kinds.
const (
	EventSuccess     = "success"
	EventKillFailure = "kill_failure"
	EventOutOfRange  = "out_of_range"
)

// KillParams configures which of the matched processes get terminated.
type KillParams struct {
	Matches []proc.Process
	// All terminates every match and ignores Numbers.
	All bool
	// Numbers are 1-based positions in Matches, handled in the given order.
	Numbers []int
}

// KillEvent describes one action taken during kill.
type KillEvent struct {
	Kind   string
	Number int
	Proc   proc.Process
	Err    error
}

// KillResult aggregates the command outcome.
type KillResult struct {
	Events    []KillEvent
	Attempted int
	Successes int
}

// Kill sends a forced kill to each selected process, one at a time. A failed
// or out-of-range target is recorded and the next one is still attempted.
func (a *App) Kill(params KillParams) KillResult {
	var result KillResult

	numbers := params.Numbers
	if params.All {
		numbers = make([]int, len(params.Matches))
		for i := range params.Matches {
			numbers[i] = i + 1
		}
	}

	for _, n := range numbers {
		if n < 1 || n > len(params.Matches) {
			result.Events = append(result.Events, KillEvent{Kind: EventOutOfRange, Number: n})
			continue
		}
		target := params.Matches[n-1]
		result.Attempted++
		if err := a.killOne(target.PID); err != nil {
			result.Events = append(result.Events, KillEvent{
				Kind:   EventKillFailure,
				Number: n,
				Proc:   target,
				Err:    err,
			})
			continue
		}
		result.Events = append(result.Events, KillEvent{
			Kind:   EventSuccess,
			Number: n,
			Proc:   target,
		})
		result.Successes++
	}
	return result
}

func (a *App) killOne(pid int) error {
	if a.src == nil {
		return fmt.Errorf("no process source configured for pid %d", pid)
	}
	return a.src.Kill(pid)
}
