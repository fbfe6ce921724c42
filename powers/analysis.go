// Package powers - diagnostic helpers over individual powers.
package powers

import (
	"fmt"

	"github.com/katalvlaran/reachlab/matrix"
)

// Power returns A^k by k-1 repeated multiplications (A⁰ = I).
func Power(a *matrix.Dense, k int) (*matrix.Walks, error) {
	seq, err := Sequence(a, k)
	if err != nil {
		return nil, err
	}

	return seq[k], nil
}

// Sequence returns A⁰, A¹, …, A^maxK; index k holds A^k.
// Each power is computed from the previous one, so the cost is maxK-1
// multiplications. Validation matches Reachability.
func Sequence(a *matrix.Dense, maxK int) ([]*matrix.Walks, error) {
	if maxK < 0 {
		return nil, fmt.Errorf("powers: Sequence(k=%d): %w", maxK, ErrNegativePower)
	}
	if err := matrix.ValidateAdjacency(a); err != nil {
		return nil, fmt.Errorf("powers: %w", err)
	}

	id, err := matrix.IdentityWalks(a.Rows())
	if err != nil {
		return nil, fmt.Errorf("powers: %w", err)
	}
	seq := make([]*matrix.Walks, 0, maxK+1)
	seq = append(seq, id)
	if maxK == 0 {
		return seq, nil
	}

	cur, err := matrix.WalksFrom(a)
	if err != nil {
		return nil, fmt.Errorf("powers: %w", err)
	}
	seq = append(seq, cur)
	for k := 2; k <= maxK; k++ {
		if cur, err = matrix.MulWalks(cur, a); err != nil {
			return nil, fmt.Errorf("powers: k=%d: %w", k, err)
		}
		seq = append(seq, cur)
	}

	return seq, nil
}

// AnalyzeWalks counts, per walk length 1…maxLen, the ordered pairs of
// distinct nodes joined by a walk of exactly that length.
func AnalyzeWalks(a *matrix.Dense, maxLen int) (*WalkAnalysis, error) {
	seq, err := Sequence(a, maxLen)
	if err != nil {
		return nil, err
	}
	n := a.Rows()
	res := &WalkAnalysis{N: n, MaxLength: maxLen, PairsByLength: make([]int, maxLen+1)}
	for k := 1; k <= maxLen; k++ {
		off := seq[k].CountNonZero()
		for i := 0; i < n; i++ {
			v, _ := seq[k].At(i, i)
			if v.Sign() != 0 {
				off--
			}
		}
		res.PairsByLength[k] = off
	}

	return res, nil
}

// Summarize reports connectivity statistics of a reachability matrix.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Summarize(reach *matrix.Dense) (Summary, error) {
	if err := matrix.ValidateSquare(reach); err != nil {
		return Summary{}, fmt.Errorf("powers: %w", err)
	}
	n := reach.Rows()
	s := Summary{N: n, TotalPairs: n * (n - 1)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if v, _ := reach.At(i, j); v != 0 {
				s.ConnectedPairs++
			}
		}
	}
	if s.TotalPairs > 0 {
		s.Ratio = float64(s.ConnectedPairs) / float64(s.TotalPairs)
	}
	s.FullyConnected = s.ConnectedPairs == s.TotalPairs

	return s, nil
}
