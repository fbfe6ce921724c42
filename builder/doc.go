// Package builder provides deterministic graph-family constructors for the
// reachability engines, their validator and the timing harness.
//
// Constructors follow one shape:
//
//	type Constructor func(g *core.Graph, cfg builderConfig) error
//
// Each constructor appends its own block of fresh nodes to g (via
// core.Graph.AddNodes) and wires edges inside that block only, so composing
// constructors in BuildGraph yields a disjoint union:
//
//	g, _ := builder.BuildGraph(nil, builder.Path(3), builder.Path(3)) // two P3
//
// Families:
//
//   - Path(n)          P_n, n ≥ 1, edges (i-1,i).
//   - Cycle(n)         C_n, n ≥ 3, edges (i,(i+1) mod n).
//   - Star(n)          center 0 plus n-1 leaves, n ≥ 2.
//   - Wheel(n)         C_{n-1} plus hub, n ≥ 4.
//   - Grid(r, c)       4-neighborhood, id r*c+c, r,c ≥ 1.
//   - Complete(n)      K_n, n ≥ 1.
//   - Bipartite(a, b)  K_{a,b}, a,b ≥ 1.
//   - Isolated(n)      n nodes, no edges, n ≥ 0.
//   - RandomSparse(n, p)      Erdős–Rényi G(n,p), needs WithSeed/WithRand for 0<p<1.
//   - Clustered(k, size, p)   k G(size,p) clusters joined by a chain of bridges.
//
// Family and FamilyByName bind a family name to a size-indexed generator for
// the benchmark harness and the CLI.
//
// Determinism: same options, same seed and the same constructor order always
// produce the same edge list in the same order.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, ErrUnknownFamily. Runtime failures never panic; option
// constructors (WithRand) panic on nil.
package builder
