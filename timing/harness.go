package timing

import (
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/reachlab/builder"
	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/matrix"
	"github.com/katalvlaran/reachlab/validate"
)

// Harness runs engines over graph families. It is not safe for concurrent
// use; timings from parallel runs would be meaningless anyway.
type Harness struct {
	opts Options
}

// New resolves opts into a Harness.
func New(opts ...Option) *Harness {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Harness{opts: o}
}

// Options returns a copy of the resolved options.
func (h *Harness) Options() Options { return h.opts }

// Run times every engine on family.Build(n) for each n in sizes.
// Any build, engine or validation failure aborts the run; no partial Run
// is returned.
func (h *Harness) Run(family builder.Family, sizes []int) (*Run, error) {
	if h.opts.err != nil {
		return nil, h.opts.err
	}
	if len(h.opts.Engines) == 0 {
		return nil, ErrNoEngines
	}
	if family.Build == nil {
		return nil, fmt.Errorf("timing: family %q: %w", family.Name, ErrNilFamily)
	}

	run := &Run{
		ID:      uuid.New(),
		Family:  family.Name,
		Samples: make([]Sample, 0, len(sizes)*len(h.opts.Engines)),
		Started: time.Now(),
	}
	log := h.opts.Logger.With("run", run.ID.String(), "family", family.Name)
	log.Info("run started", "sizes", len(sizes), "engines", len(h.opts.Engines))

	for _, n := range sizes {
		g, err := family.Build(n)
		if err != nil {
			return nil, fmt.Errorf("timing: build %s n=%d: %w", family.Name, n, err)
		}
		results := make([]*matrix.Dense, len(h.opts.Engines))
		for i, eng := range h.opts.Engines {
			s, res, err := h.measure(eng, family.Name, g)
			if err != nil {
				return nil, err
			}
			results[i] = res
			run.Samples = append(run.Samples, s)
			if h.opts.Recorder != nil {
				h.opts.Recorder.Observe(s)
			}
			log.Debug("sample", "n", s.N, "edges", s.Edges, "engine", s.Engine, "seconds", s.Seconds())
		}
		if h.opts.Validate {
			if err = h.crossCheck(family.Name, g, results); err != nil {
				log.Warn("engines disagree", "n", g.Order(), "err", err)
				return nil, err
			}
		}
	}
	log.Info("run finished", "samples", len(run.Samples))

	return run, nil
}

// measure times Repetitions calls of eng on g and returns their mean.
func (h *Harness) measure(eng Engine, family string, g *core.Graph) (Sample, *matrix.Dense, error) {
	var (
		total time.Duration
		res   *matrix.Dense
		err   error
	)
	for r := 0; r < h.opts.Repetitions; r++ {
		if h.opts.Isolate {
			runtime.GC()
		}
		start := time.Now()
		res, err = eng.Reachability(g)
		total += time.Since(start)
		if err != nil {
			return Sample{}, nil, fmt.Errorf("timing: %s on %s n=%d: %w", eng.Name(), family, g.Order(), err)
		}
	}

	return Sample{
		N:       g.Order(),
		Edges:   g.Size(),
		Family:  family,
		Engine:  eng.Name(),
		Elapsed: total / time.Duration(h.opts.Repetitions),
	}, res, nil
}

// crossCheck compares every result against the first engine's.
func (h *Harness) crossCheck(family string, g *core.Graph, results []*matrix.Dense) error {
	for i := 1; i < len(results); i++ {
		if _, err := validate.Matrices(results[0], results[i]); err != nil {
			if h.opts.Recorder != nil {
				h.opts.Recorder.Mismatch(family)
			}
			return fmt.Errorf("timing: %s n=%d %s vs %s: %w",
				family, g.Order(), h.opts.Engines[0].Name(), h.opts.Engines[i].Name(), err)
		}
	}

	return nil
}
