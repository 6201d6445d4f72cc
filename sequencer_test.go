package keccak

import (
	"errors"
	"strings"
	"testing"
)

// run drives seq from Start to ready and returns the number of steps observed.
func run(t *testing.T, seq *Sequencer, initial State) int {
	t.Helper()
	if err := seq.Start(initial); err != nil {
		t.Fatal(err)
	}
	steps := 1
	for ready := false; !ready; steps++ {
		var err error
		ready, err = seq.Step()
		if err != nil {
			t.Fatal(err)
		}
		if steps > 50 {
			t.Fatalf("not ready within 50 steps")
		}
	}
	return steps
}

// finish steps seq until ready and returns the result.
func finish(t *testing.T, seq *Sequencer) State {
	t.Helper()
	for ready := false; !ready; {
		var err error
		if ready, err = seq.Step(); err != nil {
			t.Fatal(err)
		}
	}
	out, err := seq.Result()
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestSequencerStepCount(t *testing.T) {
	var seq Sequencer
	if seq.Phase() != Idle || seq.Ready() {
		t.Fatalf("zero Sequencer: phase = %s, ready = %v", seq.Phase(), seq.Ready())
	}

	if steps := run(t, &seq, State{}); steps != 25 {
		t.Fatalf("run took %d steps, want 25", steps)
	}
	if seq.Steps() != 25 {
		t.Fatalf("Steps() = %d, want 25", seq.Steps())
	}
	if seq.Phase() != Done || !seq.Ready() {
		t.Fatalf("after run: phase = %s, ready = %v", seq.Phase(), seq.Ready())
	}
	if seq.Round() != Rounds {
		t.Fatalf("Round() = %d, want %d", seq.Round(), Rounds)
	}
}

func TestSequencerZeroInput(t *testing.T) {
	var seq Sequencer
	run(t, &seq, State{})

	got, err := seq.Result()
	if err != nil {
		t.Fatal(err)
	}
	var want [StateSize]byte
	F1600(&want)
	if b := got.Bytes(); b != want {
		t.Fatalf("Result() = %x, want %x", b, want)
	}
}

func TestSequencerMatchesPermute(t *testing.T) {
	var seq Sequencer
	for _, s := range randomStates("sequencer", 8) {
		run(t, &seq, s)
		got, err := seq.Result()
		if err != nil {
			t.Fatal(err)
		}
		if want := Permute(s); got != want {
			t.Fatalf("Result() = %x, want %x", got, want)
		}
	}
}

func TestSequencerRoundConstants(t *testing.T) {
	var seq Sequencer
	if err := seq.Start(State{}); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < Rounds; i++ {
		if seq.Round() != i {
			t.Fatalf("Round() = %d, want %d", seq.Round(), i)
		}
		rc, err := seq.RoundConstant()
		if err != nil {
			t.Fatal(err)
		}
		if rc != RoundConstant(i) {
			t.Fatalf("round %d: RoundConstant() = %#016x, want %#016x", i, rc, RoundConstant(i))
		}
		if _, err := seq.Step(); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := seq.RoundConstant(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("RoundConstant() when done: err = %v, want ErrNotRunning", err)
	}
}

func TestSequencerIntermediateStates(t *testing.T) {
	s := randomStates("intermediate", 1)[0]
	var seq Sequencer
	if err := seq.Start(s); err != nil {
		t.Fatal(err)
	}

	want := s
	for i := 0; i < Rounds; i++ {
		if _, err := seq.Step(); err != nil {
			t.Fatal(err)
		}
		want = ApplyRound(want, RoundConstant(i))
		if seq.state != want {
			t.Fatalf("after round %d: state = %x, want %x", i, seq.state, want)
		}
	}
}

func TestSequencerRestartAfterReady(t *testing.T) {
	first, second := State{1}, State{2}

	var seq Sequencer
	run(t, &seq, first)

	// Start while a result is held discards it and begins a fresh run.
	if err := seq.Start(second); err != nil {
		t.Fatal(err)
	}
	if seq.Phase() != Running || seq.Round() != 0 || seq.Steps() != 1 || seq.Ready() {
		t.Fatalf("after restart: phase = %s, round = %d, steps = %d, ready = %v",
			seq.Phase(), seq.Round(), seq.Steps(), seq.Ready())
	}
	if _, err := seq.Result(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Result() after restart: err = %v, want ErrNotReady", err)
	}

	if got, want := finish(t, &seq), Permute(second); got != want {
		t.Fatalf("Result() = %x, want %x", got, want)
	}
}

func TestSequencerStartWhileRunning(t *testing.T) {
	var seq Sequencer
	if err := seq.Start(State{1}); err != nil {
		t.Fatal(err)
	}
	_, _ = seq.Step()
	_, _ = seq.Step()

	err := seq.Start(State{2})
	if !errors.Is(err, ErrBusy) {
		t.Fatalf("Start while running: err = %v, want ErrBusy", err)
	}
	if !strings.Contains(err.Error(), "round 2") {
		t.Fatalf("Start while running: err = %v, want round in message", err)
	}
	if seq.Round() != 2 || seq.Steps() != 3 {
		t.Fatalf("rejected Start changed the run: round = %d, steps = %d", seq.Round(), seq.Steps())
	}

	if got, want := finish(t, &seq), Permute(State{1}); got != want {
		t.Fatalf("Result() = %x, want %x", got, want)
	}
}

func TestSequencerMisuse(t *testing.T) {
	var seq Sequencer

	ready, err := seq.Step()
	if ready || !errors.Is(err, ErrNotRunning) {
		t.Fatalf("Step() when idle = %v, %v; want false, ErrNotRunning", ready, err)
	}
	if _, err := seq.Result(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Result() when idle: err = %v, want ErrNotReady", err)
	}

	run(t, &seq, State{})
	_, err = seq.Step()
	if !errors.Is(err, ErrNotRunning) || !strings.Contains(err.Error(), "done") {
		t.Fatalf("Step() when done: err = %v, want ErrNotRunning", err)
	}

	if _, err := seq.Result(); err != nil {
		t.Fatal(err)
	}

	// The result is released on read.
	if _, err := seq.Result(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("second Result(): err = %v, want ErrNotReady", err)
	}
	if seq.Phase() != Idle || seq.state != (State{}) {
		t.Fatalf("after Result(): phase = %s, state = %x", seq.Phase(), seq.state)
	}
}

func TestSequencerAbort(t *testing.T) {
	var seq Sequencer
	if err := seq.Start(State{7}); err != nil {
		t.Fatal(err)
	}
	_, _ = seq.Step()

	seq.Abort()
	if seq.Phase() != Idle || seq.Steps() != 0 || seq.state != (State{}) {
		t.Fatalf("after Abort(): phase = %s, steps = %d, state = %x", seq.Phase(), seq.Steps(), seq.state)
	}
	if err := seq.Start(State{8}); err != nil {
		t.Fatalf("Start after Abort(): %v", err)
	}
}

func TestPhaseString(t *testing.T) {
	for p, want := range map[Phase]string{Idle: "idle", Running: "running", Done: "done", Phase(9): "Phase(9)"} {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", uint8(p), got, want)
		}
	}
}
