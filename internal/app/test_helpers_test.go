package app

import (
	"context"

	"prockill/internal/proc"
)

type fakeSource struct {
	procs   []proc.Process
	listErr error
	killErr map[int]error
	killed  []int
}

func (f *fakeSource) Processes(ctx context.Context) ([]proc.Process, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]proc.Process(nil), f.procs...), nil
}

func (f *fakeSource) Kill(pid int) error {
	f.killed = append(f.killed, pid)
	if err, ok := f.killErr[pid]; ok {
		return err
	}
	return nil
}

func sampleMatches() []proc.Process {
	return []proc.Process{
		{PID: 101, Name: "node"},
		{PID: 202, Name: "nodemon"},
		{PID: 303, Name: "node-gyp"},
	}
}
