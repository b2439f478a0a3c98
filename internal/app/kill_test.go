package app

import (
	"errors"
	"reflect"
	"testing"
)

func TestAppKillAllInOrder(t *testing.T) {
	src := &fakeSource{}
	app := New(Options{Source: src})

	res := app.Kill(KillParams{Matches: sampleMatches(), All: true})
	if !reflect.DeepEqual(src.killed, []int{101, 202, 303}) {
		t.Fatalf("unexpected kill order %v", src.killed)
	}
	if res.Attempted != 3 || res.Successes != 3 || len(res.Events) != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}
	for i, event := range res.Events {
		if event.Kind != EventSuccess || event.Number != i+1 {
			t.Fatalf("event[%d] = %+v", i, event)
		}
	}
}

func TestAppKillFailureDoesNotStopLaterTargets(t *testing.T) {
	denied := errors.New("operation not permitted")
	src := &fakeSource{killErr: map[int]error{101: denied}}
	app := New(Options{Source: src})

	res := app.Kill(KillParams{Matches: sampleMatches(), All: true})
	if !reflect.DeepEqual(src.killed, []int{101, 202, 303}) {
		t.Fatalf("expected every target attempted, got %v", src.killed)
	}
	if res.Successes != 2 || res.Attempted != 3 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	first := res.Events[0]
	if first.Kind != EventKillFailure || first.Proc.PID != 101 || !errors.Is(first.Err, denied) {
		t.Fatalf("unexpected first event: %+v", first)
	}
	if res.Events[1].Kind != EventSuccess || res.Events[2].Kind != EventSuccess {
		t.Fatalf("unexpected later events: %+v", res.Events[1:])
	}
}

func TestAppKillNumbersWithOutOfRange(t *testing.T) {
	src := &fakeSource{}
	app := New(Options{Source: src})

	sel := ParseSelection("1,3,x,0,99")
	res := app.Kill(KillParams{Matches: sampleMatches(), Numbers: sel.Numbers})

	if !reflect.DeepEqual(src.killed, []int{101, 303}) {
		t.Fatalf("expected pids 101 and 303 killed, got %v", src.killed)
	}
	wantKinds := []string{EventSuccess, EventSuccess, EventOutOfRange, EventOutOfRange}
	wantNumbers := []int{1, 3, 0, 99}
	if len(res.Events) != len(wantKinds) {
		t.Fatalf("unexpected events: %+v", res.Events)
	}
	for i := range wantKinds {
		if res.Events[i].Kind != wantKinds[i] || res.Events[i].Number != wantNumbers[i] {
			t.Fatalf("event[%d] = %+v", i, res.Events[i])
		}
	}
	if res.Attempted != 2 || res.Successes != 2 {
		t.Fatalf("unexpected counts: %+v", res)
	}
}

func TestAppKillDuplicateNumbersAreAttemptedTwice(t *testing.T) {
	src := &fakeSource{}
	app := New(Options{Source: src})

	app.Kill(KillParams{Matches: sampleMatches(), Numbers: []int{2, 2}})
	if !reflect.DeepEqual(src.killed, []int{202, 202}) {
		t.Fatalf("unexpected kills %v", src.killed)
	}
}

func TestAppKillNothingSelected(t *testing.T) {
	src := &fakeSource{}
	app := New(Options{Source: src})

	res := app.Kill(KillParams{Matches: sampleMatches()})
	if len(src.killed) != 0 || len(res.Events) != 0 {
		t.Fatalf("expected no work, got kills=%v result=%+v", src.killed, res)
	}
}

func TestAppKillWithoutSource(t *testing.T) {
	app := New(Options{})
	res := app.Kill(KillParams{Matches: sampleMatches(), Numbers: []int{1}})
	if len(res.Events) != 1 || res.Events[0].Kind != EventKillFailure {
		t.Fatalf("expected kill failure, got %+v", res)
	}
}
