package proc

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultRoot is where Linux mounts the process information pseudo-filesystem.
const DefaultRoot = "/proc"

// ProcFS enumerates processes by walking a procfs mount.
type ProcFS struct {
	Root   string
	Logger *log.Logger
}

// NewProcFS returns a procfs source rooted at root (DefaultRoot when empty).
func NewProcFS(root string, logger *log.Logger) *ProcFS {
	if root == "" {
		root = DefaultRoot
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ProcFS{Root: root, Logger: logger}
}

// Processes lists every numeric directory under Root, sorted by PID.
// A process whose comm file cannot be read keeps an empty name.
func (p *ProcFS) Processes(ctx context.Context) ([]Process, error) {
	entries, err := os.ReadDir(p.Root)
	if err != nil {
		return nil, &EnumerationError{Root: p.Root, Err: err}
	}

	procs := make([]Process, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() || !isDigits(entry.Name()) {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue
		}
		name, err := p.readComm(pid)
		if err != nil {
			p.Logger.Printf("pid %d: name unavailable: %v", pid, err)
		}
		procs = append(procs, Process{PID: pid, Name: name})
	}

	sort.Slice(procs, func(i, j int) bool {
		return procs[i].PID < procs[j].PID
	})
	return procs, nil
}

// Kill sends SIGKILL (TerminateProcess on Windows) to pid.
func (p *ProcFS) Kill(pid int) error {
	return killPID(pid)
}

func (p *ProcFS) readComm(pid int) (string, error) {
	data, err := os.ReadFile(filepath.Join(p.Root, strconv.Itoa(pid), "comm"))
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return line, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
