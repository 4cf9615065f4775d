// SPDX-License-Identifier: MIT
//
// complete.go — bulk constructors for layered graphs.
//
// Contract:
//   • Rows are created in index order, nodes within a row in position order,
//     so NodeIDs are deterministic for a given shape.
//   • Every adjacent-row pair (row r, position u) → (row r+1, position v) is
//     offered to the WeightFn exactly once, in lexicographic (r,u,v) order.
//   • Returns only sentinel errors (wrapped with method context); never panics
//     at runtime. WeightFn constructors panic on invalid parameters.

package layered

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	methodComplete     = "Complete"
	methodFromMatrices = "FromMatrices"

	// DefaultEdgeWeight is used by Complete when no WeightFn is given.
	DefaultEdgeWeight uint64 = 1
)

// WeightFn decides whether the edge from position from in row to position to
// in row+1 exists, and with which weight.
type WeightFn func(row, from, to int) (weight uint64, ok bool)

// ConstantWeight returns a WeightFn connecting every adjacent pair with weight w.
func ConstantWeight(w uint64) WeightFn {
	return func(_, _, _ int) (uint64, bool) {
		return w, true
	}
}

// RandomWeight returns a WeightFn that keeps each edge with probability p and
// samples its weight uniformly in [min, max].
// Panics if rng is nil, max < min, or p is outside [0, 1].
func RandomWeight(rng *rand.Rand, min, max uint64, p float64) WeightFn {
	if rng == nil {
		panic("RandomWeight: rng must not be nil")
	}
	if max < min {
		panic(fmt.Sprintf("RandomWeight: require min ≤ max, got min=%d, max=%d", min, max))
	}
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("RandomWeight: require 0 ≤ p ≤ 1, got %g", p))
	}

	return func(_, _, _ int) (uint64, bool) {
		if rng.Float64() >= p {
			return 0, false
		}
		span := max - min
		if span == 0 {
			return min, true
		}
		if span >= math.MaxInt64 {
			return min + rng.Uint64()%span, true
		}

		return min + uint64(rng.Int63n(int64(span)+1)), true
	}
}

// Complete builds a graph with len(widths) rows, row i holding widths[i] nodes,
// and offers every adjacent-row pair to fn. A nil fn connects every pair with
// DefaultEdgeWeight.
func Complete(widths []int, fn WeightFn, opts ...Option) (*Graph, error) {
	if len(widths) == 0 {
		return nil, fmt.Errorf("%s: %w", methodComplete, ErrTooFewRows)
	}
	if fn == nil {
		fn = ConstantWeight(DefaultEdgeWeight)
	}

	g := NewGraph(append([]Option{WithRowCapacity(len(widths))}, opts...)...)
	for r, w := range widths {
		if _, err := g.AddRow(w); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", methodComplete, r, err)
		}
	}

	for r := 0; r+1 < len(g.rows); r++ {
		src, dst := g.rows[r], g.rows[r+1]
		for u, from := range src {
			for v, to := range dst {
				weight, ok := fn(r, u, v)
				if !ok {
					continue
				}
				if err := g.AddEdge(from, to, weight); err != nil {
					return nil, fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}
	}

	return g, nil
}

// FromMatrices builds a graph from per-row weight matrices: ms[i][u][v] is the
// weight of the edge from node u of row i to node v of row i+1. A negative
// entry means "no edge".
//
// The result has len(ms)+1 rows. Row i has len(ms[i]) nodes and the terminal
// row has len(ms[len(ms)-1][0]) nodes. Every matrix must be rectangular and
// its column count must equal the row count of the next matrix.
func FromMatrices(ms [][][]int64, opts ...Option) (*Graph, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%s: %w", methodFromMatrices, ErrTooFewRows)
	}

	widths := make([]int, len(ms)+1)
	for i, m := range ms {
		if len(m) == 0 {
			return nil, fmt.Errorf("%s: matrix %d has no rows: %w", methodFromMatrices, i, ErrDimensionMismatch)
		}
		cols := len(m[0])
		for u, line := range m {
			if len(line) != cols {
				return nil, fmt.Errorf("%s: matrix %d line %d has %d columns, want %d: %w",
					methodFromMatrices, i, u, len(line), cols, ErrDimensionMismatch)
			}
		}
		if i+1 < len(ms) && len(ms[i+1]) != cols {
			return nil, fmt.Errorf("%s: matrix %d has %d columns but matrix %d has %d rows: %w",
				methodFromMatrices, i, cols, i+1, len(ms[i+1]), ErrDimensionMismatch)
		}
		widths[i] = len(m)
		widths[i+1] = cols
	}

	g, err := Complete(widths, func(row, from, to int) (uint64, bool) {
		w := ms[row][from][to]
		if w < 0 {
			return 0, false
		}

		return uint64(w), true
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromMatrices, err)
	}

	return g, nil
}
