// SPDX-License-Identifier: MIT

package layered

import "math"

// MinPathCost returns the minimum total edge weight of any path that starts in
// row 0 and ends in the terminal row of g.
//
// ok is false when no such path exists. That includes a nil graph, a graph with
// no rows, and a single-row graph: a path needs at least one edge.
//
// Side effects: the min path of every node reachable from row 0 is lowered in
// place and stays readable through Graph.MinPath. Solving an already solved
// graph returns the same cost; call Reset to start from scratch.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(1) beyond the graph itself
func MinPathCost(g *Graph) (cost uint64, ok bool) {
	if g == nil || len(g.rows) == 0 {
		return 0, false
	}

	last := len(g.rows) - 1
	for r, row := range g.rows {
		for _, id := range row {
			if !g.valid(id) {
				continue
			}
			n := &g.nodes[id]

			// Never reached from row 0, so none of its edges can help.
			if r != 0 && !n.reached {
				continue
			}

			if r == last {
				if n.reached && (!ok || n.minPath < cost) {
					cost, ok = n.minPath, true
				}
				continue
			}

			var base uint64
			if r != 0 {
				base = n.minPath
			}
			for _, e := range n.edges {
				g.relax(e.To, addSat(base, e.Weight))
			}
		}
	}

	return cost, ok
}

// Reset clears the min path of every node, returning g to its unsolved state.
func (g *Graph) Reset() {
	for i := range g.nodes {
		g.nodes[i].minPath = 0
		g.nodes[i].reached = false
	}
}

// relax lowers the min path of id to candidate if that is an improvement.
// Equal candidates leave the node untouched.
func (g *Graph) relax(id NodeID, candidate uint64) {
	if !g.valid(id) {
		return
	}
	d := &g.nodes[id]
	if !d.reached || candidate < d.minPath {
		d.minPath = candidate
		d.reached = true
	}
}

// addSat adds a and b, clamping at math.MaxUint64 instead of wrapping.
func addSat(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}
