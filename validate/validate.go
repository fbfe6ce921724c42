package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/reachlab/bfs"
	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/matrix"
	"github.com/katalvlaran/reachlab/powers"
)

// ErrMismatch is matched by every *Error via errors.Is.
var ErrMismatch = errors.New("validate: reachability engines disagree")

// maxListed bounds the cells spelled out by Error.Error.
const maxListed = 8

// Error carries the full list of differing cells.
type Error struct {
	N          int
	Mismatches []matrix.Cell
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: n=%d, %d cell(s):", ErrMismatch.Error(), e.N, len(e.Mismatches))
	for i, c := range e.Mismatches {
		if i == maxListed {
			fmt.Fprintf(&sb, " ... (+%d)", len(e.Mismatches)-maxListed)
			break
		}
		sb.WriteString(" ")
		sb.WriteString(c.String())
	}

	return sb.String()
}

// Unwrap returns ErrMismatch.
func (e *Error) Unwrap() error { return ErrMismatch }

// Report is the outcome of validating one graph.
type Report struct {
	N          int
	Agree      bool
	Mismatches []matrix.Cell
	Matrix     *matrix.Dense
	BFS        *matrix.Dense
}

// Graph runs both engines on g, each building its own adjacency matrix.
// On disagreement it returns the report together with a *Error.
// Engine failures (invalid graph, nil graph) are returned as is.
func Graph(g *core.Graph) (*Report, error) {
	viaPowers, err := powers.FromGraph(g)
	if err != nil {
		return nil, err
	}
	viaBFS, err := bfs.FromGraph(g)
	if err != nil {
		return nil, err
	}

	rep := &Report{N: g.Order(), Matrix: viaPowers, BFS: viaBFS}
	rep.Mismatches, err = Matrices(viaPowers, viaBFS)
	rep.Agree = err == nil

	return rep, err
}

// Matrices compares two reachability matrices cell by cell and returns the
// differing cells in row-major order. A shape mismatch or a nil operand is
// a mismatch too, reported without cells.
func Matrices(a, b *matrix.Dense) ([]matrix.Cell, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("validate: nil operand: %w", ErrMismatch)
	}
	cells, err := a.Diff(b)
	if err != nil {
		return nil, fmt.Errorf("validate: %w: %w", ErrMismatch, err)
	}
	if len(cells) > 0 {
		return cells, &Error{N: a.Rows(), Mismatches: cells}
	}

	return nil, nil
}
