package proc

import (
	"fmt"
	"log"
	"runtime"
)

// Source kinds accepted by NewSource.
const (
	KindAuto     = "auto"
	KindProcFS   = "procfs"
	KindGopsutil = "gopsutil"
)

// NewSource picks a process source. "auto" prefers procfs on Linux and
// gopsutil everywhere else.
func NewSource(kind, procRoot string, logger *log.Logger) (Source, error) {
	switch kind {
	case "", KindAuto:
		if runtime.GOOS == "linux" {
			return NewProcFS(procRoot, logger), nil
		}
		return NewGopsutil(logger), nil
	case KindProcFS:
		return NewProcFS(procRoot, logger), nil
	case KindGopsutil:
		return NewGopsutil(logger), nil
	default:
		return nil, fmt.Errorf("unknown process source %q (want %s, %s or %s)", kind, KindAuto, KindProcFS, KindGopsutil)
	}
}
