package keccak

import "github.com/pkg/errors"

var (
	// ErrNotRunning is returned when a Sequencer is stepped with no permutation in flight.
	ErrNotRunning = errors.New("keccak: no permutation in flight")
	// ErrNotReady is returned when a result is read before the final round has been applied.
	ErrNotReady = errors.New("keccak: result not ready")
	// ErrBusy is returned by Start while a permutation is still running.
	ErrBusy = errors.New("keccak: permutation already in flight")
	// ErrStateLength is returned when a byte state is not exactly StateSize bytes long.
	ErrStateLength = errors.New("keccak: invalid state length")
)
