package timing

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/internal/logging"
	"github.com/katalvlaran/reachlab/matrix"
)

var (
	// ErrOptionViolation is returned by Run when an invalid Option was supplied.
	ErrOptionViolation = errors.New("timing: invalid option supplied")

	// ErrNoEngines is returned by Run when the harness has nothing to time.
	ErrNoEngines = errors.New("timing: no engines configured")

	// ErrNilFamily is returned by Run for a Family without a Build function.
	ErrNilFamily = errors.New("timing: family has no generator")

	// ErrNilRegisterer is returned by NewRecorder for a nil registry.
	ErrNilRegisterer = errors.New("timing: nil prometheus registerer")
)

// Engine is anything that turns a graph into a reachability matrix.
// powers.Engine and bfs.Engine satisfy it.
type Engine interface {
	Name() string
	Reachability(g *core.Graph) (*matrix.Dense, error)
}

// Sample is one timed measurement.
type Sample struct {
	N       int           `json:"n"`
	Edges   int           `json:"edges"`
	Family  string        `json:"family"`
	Engine  string        `json:"engine"`
	Elapsed time.Duration `json:"elapsed"`
}

// Seconds returns Elapsed in seconds.
func (s Sample) Seconds() float64 { return s.Elapsed.Seconds() }

// Run is the result of one Harness.Run call. Samples are ordered by size,
// then by engine order.
type Run struct {
	ID      uuid.UUID
	Family  string
	Samples []Sample
	Started time.Time
}

// Option configures a Harness via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds harness parameters.
type Options struct {
	// Engines are run in this order for every size.
	Engines []Engine

	// Repetitions per (size, engine); the Sample holds the mean.
	Repetitions int

	// Validate cross-checks every engine's result against the first one.
	Validate bool

	// Isolate forces a GC before each timed call.
	Isolate bool

	// Logger receives progress at debug level and mismatches at warn level.
	Logger *slog.Logger

	// Recorder, if set, observes every Sample and mismatch.
	Recorder *Recorder

	err error
}

// DefaultOptions returns: no engines, one repetition, validation off,
// isolation on, a discarding logger, no recorder.
func DefaultOptions() Options {
	return Options{
		Repetitions: 1,
		Isolate:     true,
		Logger:      logging.Discard(),
	}
}

// WithEngines replaces the engine list.
func WithEngines(engines ...Engine) Option {
	return func(o *Options) {
		for i, e := range engines {
			if e == nil {
				o.err = fmt.Errorf("%w: nil engine at index %d", ErrOptionViolation, i)
				return
			}
		}
		o.Engines = append([]Engine(nil), engines...)
	}
}

// WithRepetitions sets the number of timed calls averaged per Sample (r ≥ 1).
func WithRepetitions(r int) Option {
	return func(o *Options) {
		if r < 1 {
			o.err = fmt.Errorf("%w: repetitions must be ≥ 1 (%d)", ErrOptionViolation, r)
			return
		}
		o.Repetitions = r
	}
}

// WithValidation toggles the per-size cross-check of engine results.
func WithValidation(on bool) Option {
	return func(o *Options) {
		o.Validate = on
	}
}

// WithIsolation toggles the GC before each timed call.
func WithIsolation(on bool) Option {
	return func(o *Options) {
		o.Isolate = on
	}
}

// WithLogger sets the harness logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder attaches a metrics recorder; nil is ignored.
func WithRecorder(r *Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}
