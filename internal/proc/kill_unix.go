//go:build !windows

package proc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func killPID(pid int) error {
	// kill(2) treats 0 and negative PIDs as process groups.
	if pid <= 0 {
		return fmt.Errorf("invalid pid %d", pid)
	}
	if err := unix.Kill(pid, unix.SIGKILL); err != nil {
		return fmt.Errorf("kill pid %d: %w", pid, err)
	}
	return nil
}
