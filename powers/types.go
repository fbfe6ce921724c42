// Package powers - options, sentinel errors and result types.
package powers

import (
	"errors"

	"github.com/katalvlaran/reachlab/matrix"
)

// ErrNegativePower is returned when a negative exponent or length is requested.
var ErrNegativePower = errors.New("powers: negative exponent")

// EngineName identifies this engine in timing samples and reports.
const EngineName = "matrix"

// Option configures Reachability via functional arguments.
type Option func(*Options)

// Options holds diagnostic hooks. Nil hooks are skipped entirely, so the
// default configuration adds no work to the timed loop.
type Options struct {
	// OnPower receives A^k before it is ORed into the accumulator.
	// The Walks value is owned by the engine; callers must not keep it
	// beyond the callback unless they copy it.
	OnPower func(k int, p *matrix.Walks)

	// OnAccumulate receives the accumulator's non-zero count after step k.
	OnAccumulate func(k int, nonZero int)
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnPower registers a callback for every intermediate power A¹…A^{n-1}.
func WithOnPower(fn func(k int, p *matrix.Walks)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPower = fn
		}
	}
}

// WithOnAccumulate registers a callback observing accumulator growth.
func WithOnAccumulate(fn func(k int, nonZero int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAccumulate = fn
		}
	}
}

// WalkAnalysis reports, for each length k in 1…MaxLength, how many ordered
// pairs (i,j), i≠j, are joined by at least one walk of length exactly k.
// PairsByLength[0] is always 0.
type WalkAnalysis struct {
	N             int
	MaxLength     int
	PairsByLength []int
}

// Summary describes a reachability matrix.
//   - ConnectedPairs: off-diagonal ones.
//   - TotalPairs: n·(n-1).
//   - Ratio: ConnectedPairs/TotalPairs, 0 when TotalPairs == 0.
//   - FullyConnected: every distinct pair reaches each other (vacuously true for n ≤ 1).
type Summary struct {
	N              int
	ConnectedPairs int
	TotalPairs     int
	Ratio          float64
	FullyConnected bool
}
