package keccak

import (
	"fmt"

	"github.com/pkg/errors"
)

// Phase is the execution phase of a Sequencer.
type Phase uint8

const (
	// Idle accepts a new initial state.
	Idle Phase = iota
	// Running has a permutation in flight; Round reports the next round to execute.
	Running
	// Done holds the final state for readback.
	Done
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Sequencer applies the 24 rounds of Keccak-f[1600] one Step at a time.
//
// Start latches the initial state and counts as the first step; each Step then applies
// one round, so a full run is 25 steps. Start is rejected with ErrBusy while a run is in
// flight (use Abort to discard it), and accepted in Done, where it discards the held
// result. Result hands the final state to the caller and returns the Sequencer to Idle.
//
// The zero value is an Idle Sequencer. A Sequencer is not safe for concurrent use;
// independent streams should each own one.
type Sequencer struct {
	phase Phase
	round int
	steps int
	state State
}

// Start latches initial and begins a new permutation.
func (s *Sequencer) Start(initial State) error {
	if s.phase == Running {
		return errors.Wrapf(ErrBusy, "start at round %d", s.round)
	}
	s.state = initial
	s.round = 0
	s.steps = 1
	s.phase = Running
	return nil
}

// Step applies the current round. It reports whether the final state is ready.
func (s *Sequencer) Step() (bool, error) {
	if s.phase != Running {
		return false, errors.Wrapf(ErrNotRunning, "step while %s", s.phase)
	}
	s.state = ApplyRound(s.state, roundConstants[s.round])
	s.steps++
	if s.round == Rounds-1 {
		s.round = Rounds
		s.phase = Done
		return true, nil
	}
	s.round++
	return false, nil
}

// Result returns the final state and releases it: the Sequencer goes back to Idle.
func (s *Sequencer) Result() (State, error) {
	if s.phase != Done {
		return State{}, errors.Wrapf(ErrNotReady, "result while %s", s.phase)
	}
	out := s.state
	s.reset()
	return out, nil
}

// Abort discards any in-flight or held permutation.
func (s *Sequencer) Abort() {
	s.reset()
}

func (s *Sequencer) reset() {
	*s = Sequencer{}
}

// Ready reports whether a final state is held.
func (s *Sequencer) Ready() bool {
	return s.phase == Done
}

// Phase returns the current execution phase.
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Round returns the index of the next round to execute while Running, Rounds once Done,
// and 0 while Idle.
func (s *Sequencer) Round() int {
	return s.round
}

// Steps returns the number of steps taken since the last Start, the latch included.
func (s *Sequencer) Steps() int {
	return s.steps
}

// RoundConstant returns the constant the next Step will consume.
func (s *Sequencer) RoundConstant() (uint64, error) {
	if s.phase != Running {
		return 0, errors.Wrapf(ErrNotRunning, "round constant while %s", s.phase)
	}
	return roundConstants[s.round], nil
}
