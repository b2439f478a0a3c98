package proc

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/shirou/gopsutil/v4/process"
)

// Gopsutil enumerates processes through gopsutil, which works on platforms
// without a procfs mount (macOS, BSD, Windows).
type Gopsutil struct {
	Logger *log.Logger
}

// NewGopsutil returns a gopsutil-backed source.
func NewGopsutil(logger *log.Logger) *Gopsutil {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Gopsutil{Logger: logger}
}

// Processes lists all PIDs reported by the platform, in platform order.
func (g *Gopsutil) Processes(ctx context.Context) ([]Process, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, &EnumerationError{Root: "process table", Err: err}
	}

	procs := make([]Process, 0, len(pids))
	for _, pid := range pids {
		if pid <= 0 {
			continue
		}
		procs = append(procs, Process{PID: int(pid), Name: g.name(ctx, pid)})
	}
	return procs, nil
}

func (g *Gopsutil) name(ctx context.Context, pid int32) string {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		g.Logger.Printf("pid %d: %v", pid, err)
		return ""
	}
	name, err := p.NameWithContext(ctx)
	if err != nil {
		g.Logger.Printf("pid %d: name unavailable: %v", pid, err)
		return ""
	}
	return name
}

// Kill force-terminates pid.
func (g *Gopsutil) Kill(pid int) error {
	if pid <= 0 {
		return fmt.Errorf("invalid pid %d", pid)
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return fmt.Errorf("unable to find PID %d: %w", pid, err)
	}
	if err := p.Kill(); err != nil {
		return fmt.Errorf("kill pid %d: %w", pid, err)
	}
	return nil
}
