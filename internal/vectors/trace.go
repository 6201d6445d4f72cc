package vectors

import (
	"github.com/pkg/errors"

	keccak "github.com/Giulio2002/keccakf"
)

// ErrLiveness is returned when the sequencer does not become ready within the step budget.
var ErrLiveness = errors.New("sequencer did not become ready")

// Record describes one step of a traced run.
type Record struct {
	Step  int    `json:"step"`
	Phase string `json:"phase"`
	// Round is the round applied by this step, -1 for the latch.
	Round int    `json:"round"`
	RC    string `json:"rc,omitempty"`
	Ready bool   `json:"ready"`
}

// TraceResult is a complete traced run.
type TraceResult struct {
	Records []Record `json:"records"`
	Steps   int      `json:"steps"`
	Output  Lanes    `json:"output"`
}

// Trace starts seq on initial and steps it until ready, calling observe (if not nil)
// after every step. It fails with ErrLiveness after maxSteps steps without ready.
func Trace(seq *keccak.Sequencer, initial keccak.State, maxSteps int, observe func(Record)) (TraceResult, error) {
	var res TraceResult
	emit := func(r Record) {
		res.Records = append(res.Records, r)
		if observe != nil {
			observe(r)
		}
	}

	if err := seq.Start(initial); err != nil {
		return res, err
	}
	emit(Record{Step: seq.Steps(), Phase: seq.Phase().String(), Round: -1})

	for !seq.Ready() {
		if seq.Steps() >= maxSteps {
			seq.Abort()
			return res, errors.Wrapf(ErrLiveness, "after %d steps", maxSteps)
		}
		round := seq.Round()
		rc, err := seq.RoundConstant()
		if err != nil {
			return res, err
		}
		ready, err := seq.Step()
		if err != nil {
			return res, err
		}
		emit(Record{
			Step:  seq.Steps(),
			Phase: seq.Phase().String(),
			Round: round,
			RC:    FormatLane(rc),
			Ready: ready,
		})
	}

	out, err := seq.Result()
	if err != nil {
		return res, err
	}
	res.Steps = len(res.Records)
	res.Output = FormatLanes(out)
	return res, nil
}
