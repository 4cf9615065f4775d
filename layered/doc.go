// Package layered computes minimum path costs through layered directed graphs.
//
// 🚀 What is a layered graph?
//
//	Nodes are arranged in N ordered rows. Every edge leaves a node in row i and
//	enters a node in row i+1, carrying a non-negative integer weight:
//
//	    row 0:  A ──2──► B     A ──3──► C
//	            D ──0──► B     D ──1──► C
//	    row 1:  B ──6──► E     C ──4──► E     C ──5──► F
//	    row 2:  E   F
//
//	The cost of a path is the sum of its edge weights. MinPathCost returns the
//	cheapest cost of any path starting anywhere in row 0 and ending anywhere in
//	the last (terminal) row. In the picture above that is D→C→E with cost 5.
//
// ✨ Key features:
//   - Arena storage: nodes live in one flat slice and are addressed by NodeID,
//     so many predecessors can share a destination without pointer juggling.
//   - Single forward sweep: rows are relaxed in order, no heap, no repeated passes.
//   - Pruning: nodes never reached from row 0 are skipped entirely.
//   - Bulk constructors: Complete (WeightFn driven) and FromMatrices.
//
// Algorithm:
//
//  1. Row 0 nodes are path starts with implicit cost 0.
//  2. A node outside row 0 that was never reached is skipped.
//  3. Each outgoing edge of a reachable node proposes weight (+ own min path).
//  4. The destination keeps the smaller of its current min path and the proposal.
//  5. On the terminal row the min paths are folded into the result.
//
// Because edges advance exactly one row, a node's min path is final once its own
// row is processed. This is topological-order relaxation on a DAG whose order is
// the row index, so one pass is enough.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the arena, O(1) extra during the solve.
//
// Error handling (sentinel errors, construction only):
//
//   - ErrBadSize           negative row size or width.
//   - ErrRowNotFound       AddNode on a row that does not exist.
//   - ErrNodeNotFound      AddEdge with an unknown NodeID.
//   - ErrNotAdjacentRow    AddEdge whose destination is not in the next row.
//   - ErrTooFewRows        bulk constructors given no rows.
//   - ErrDimensionMismatch FromMatrices with ragged or inconsistent matrices.
//
// MinPathCost itself never fails and never panics: "no path" is reported through
// its boolean result. Graphs built with WithUncheckedEdges may break the row
// invariant; the solver still terminates but the cost is then meaningless.
//
// Thread safety:
//
//   - A Graph is not safe for concurrent use. MinPathCost writes the per-node
//     min path, so two solves on the same Graph must be serialized by the caller.
//     Independent graphs may be solved in parallel.
//
// Usage:
//
//	g := layered.NewGraph()
//	top, _ := g.AddRow(2)
//	bottom, _ := g.AddRow(1)
//	_ = g.AddEdge(top[0], bottom[0], 4)
//	_ = g.AddEdge(top[1], bottom[0], 2)
//
//	if cost, ok := layered.MinPathCost(g); ok {
//		fmt.Println(cost) // 2
//	}
package layered
