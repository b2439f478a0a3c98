package proc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeProcTree(t *testing.T, entries map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, comm := range entries {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if comm == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, "comm"), []byte(comm), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestProcFSProcesses(t *testing.T) {
	root := writeProcTree(t, map[string]string{
		"1":      "systemd\n",
		"42":     "nginx\n",
		"7":      "bash\n",
		"100":    "", // exited mid-scan: no comm file
		"self":   "prockill\n",
		"sys":    "",
		"0":      "swapper\n",
		"-3":     "bogus\n",
		"12abc":  "nope\n",
		"+12":    "signed\n",
		" 13":    "spaced\n",
		"2":      "two\nlines\n",
		"999999": "kworker/0:1",
	})
	if err := os.WriteFile(filepath.Join(root, "55"), []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}

	procs, err := NewProcFS(root, nil).Processes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Process{
		{PID: 1, Name: "systemd"},
		{PID: 2, Name: "two"},
		{PID: 7, Name: "bash"},
		{PID: 42, Name: "nginx"},
		{PID: 100, Name: ""},
		{PID: 999999, Name: "kworker/0:1"},
	}
	if len(procs) != len(want) {
		t.Fatalf("expected %d processes, got %d: %+v", len(want), len(procs), procs)
	}
	for i := range want {
		if procs[i] != want[i] {
			t.Fatalf("proc[%d] = %+v, want %+v", i, procs[i], want[i])
		}
	}
}

func TestProcFSMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")
	_, err := NewProcFS(root, nil).Processes(context.Background())

	var enumErr *EnumerationError
	if !errors.As(err, &enumErr) {
		t.Fatalf("expected EnumerationError, got %v", err)
	}
	if enumErr.Root != root {
		t.Fatalf("expected root %q, got %q", root, enumErr.Root)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestProcFSCancelledContext(t *testing.T) {
	root := writeProcTree(t, map[string]string{"1": "init\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewProcFS(root, nil).Processes(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestProcFSDefaultRoot(t *testing.T) {
	if got := NewProcFS("", nil).Root; got != DefaultRoot {
		t.Fatalf("expected default root %q, got %q", DefaultRoot, got)
	}
}

func TestKillRejectsNonPositivePID(t *testing.T) {
	src := NewProcFS("", nil)
	for _, pid := range []int{0, -1} {
		if err := src.Kill(pid); err == nil {
			t.Fatalf("expected error killing pid %d", pid)
		}
	}
	if err := NewGopsutil(nil).Kill(0); err == nil {
		t.Fatalf("expected gopsutil source to reject pid 0")
	}
}
