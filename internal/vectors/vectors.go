// Package vectors produces golden test vectors and per-step traces of the Keccak-f[1600]
// sequencer, in the lane layout used by hardware testbenches.
package vectors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	keccak "github.com/Giulio2002/keccakf"
	"github.com/Giulio2002/keccakf/internal/config"
)

// Lanes is a state as 25 hex lanes "0x%016x", indexed x + 5*y.
type Lanes []string

// FormatLanes renders s as Lanes.
func FormatLanes(s keccak.State) Lanes {
	out := make(Lanes, keccak.Lanes)
	for i, lane := range s {
		out[i] = FormatLane(lane)
	}
	return out
}

// FormatLane renders one lane as fixed-width hex.
func FormatLane(v uint64) string {
	return fmt.Sprintf("0x%016x", v)
}

// State parses l back into a state.
func (l Lanes) State() (keccak.State, error) {
	var s keccak.State
	if len(l) != keccak.Lanes {
		return s, errors.Errorf("expected %d lanes, got %d", keccak.Lanes, len(l))
	}
	for i, lane := range l {
		v, err := strconv.ParseUint(lane, 0, 64)
		if err != nil {
			return s, errors.Wrapf(err, "lane %d", i)
		}
		s[i] = v
	}
	return s, nil
}

// Vector is one input/output pair of the permutation.
type Vector struct {
	Name   string `json:"name" toml:"name"`
	Input  Lanes  `json:"input" toml:"input"`
	Output Lanes  `json:"output" toml:"output"`
}

// Seeded returns n reproducible states squeezed from SHAKE128(seed).
func Seeded(seed string, n int) []keccak.State {
	drbg := sha3.NewShake128()
	_, _ = drbg.Write([]byte(seed))

	out := make([]keccak.State, n)
	for i := range out {
		var b [keccak.StateSize]byte
		_, _ = drbg.Read(b[:])
		out[i] = keccak.StateFromBytes(&b)
	}
	return out
}

// Generate returns the all-zero vector followed by cfg.Count seeded vectors.
func Generate(ctx context.Context, cfg config.Vectors) ([]Vector, error) {
	inputs := append([]keccak.State{{}}, Seeded(cfg.Seed, cfg.Count)...)
	outputs, err := keccak.PermuteBatch(ctx, inputs, cfg.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "permuting vectors")
	}

	vectors := make([]Vector, len(inputs))
	for i := range inputs {
		name := "zero"
		if i > 0 {
			name = fmt.Sprintf("%s/%d", cfg.Seed, i-1)
		}
		vectors[i] = Vector{
			Name:   name,
			Input:  FormatLanes(inputs[i]),
			Output: FormatLanes(outputs[i]),
		}
	}
	return vectors, nil
}

// Check verifies that every vector's output is the permutation of its input.
func Check(vectors []Vector) error {
	for _, v := range vectors {
		in, err := v.Input.State()
		if err != nil {
			return errors.Wrapf(err, "%s: input", v.Name)
		}
		out, err := v.Output.State()
		if err != nil {
			return errors.Wrapf(err, "%s: output", v.Name)
		}
		if got := keccak.Permute(in); got != out {
			return errors.Errorf("%s: output mismatch", v.Name)
		}
	}
	return nil
}

type vectorFile struct {
	Vector []Vector `json:"vectors" toml:"vector"`
}

// Encode writes vectors to w in the given format.
func Encode(w io.Writer, format string, vectors []Vector) error {
	f := vectorFile{Vector: vectors}
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case config.FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

// Decode reads vectors written by Encode.
func Decode(r io.Reader, format string) ([]Vector, error) {
	var f vectorFile
	switch format {
	case config.FormatJSON:
		if err := json.NewDecoder(r).Decode(&f); err != nil {
			return nil, errors.Wrap(err, "decoding json vectors")
		}
	case config.FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
			return nil, errors.Wrap(err, "decoding toml vectors")
		}
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}
	return f.Vector, nil
}
