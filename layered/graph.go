// SPDX-License-Identifier: MIT

package layered

import "fmt"

// NewGraph returns an empty graph with no rows.
func NewGraph(opts ...Option) *Graph {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{
		opts: cfg,
		rows: make([][]NodeID, 0, cfg.RowCapacity),
	}
}

// AddRow appends a new terminal row of size fresh nodes and returns their IDs
// in row order. A row of size 0 is allowed; it cuts every path through it.
func (g *Graph) AddRow(size int) ([]NodeID, error) {
	if size < 0 {
		return nil, fmt.Errorf("AddRow(%d): %w", size, ErrBadSize)
	}

	row := len(g.rows)
	ids := make([]NodeID, size)
	for i := range ids {
		ids[i] = g.newNode(row)
	}
	g.rows = append(g.rows, ids)

	out := make([]NodeID, size)
	copy(out, ids)

	return out, nil
}

// AddNode appends one node to an existing row.
func (g *Graph) AddNode(row int) (NodeID, error) {
	if row < 0 || row >= len(g.rows) {
		return 0, fmt.Errorf("AddNode(row=%d): %w", row, ErrRowNotFound)
	}
	id := g.newNode(row)
	g.rows[row] = append(g.rows[row], id)

	return id, nil
}

// AddEdge appends an edge from → to with the given weight.
// Unless the graph was built WithUncheckedEdges, to must lie in the row right
// after the row of from.
func (g *Graph) AddEdge(from, to NodeID, weight uint64) error {
	if !g.valid(from) {
		return fmt.Errorf("AddEdge(%d→%d): source %w", from, to, ErrNodeNotFound)
	}
	if !g.valid(to) {
		return fmt.Errorf("AddEdge(%d→%d): destination %w", from, to, ErrNodeNotFound)
	}
	if !g.opts.UncheckedEdges && g.nodes[to].row != g.nodes[from].row+1 {
		return fmt.Errorf("%w: edge %d(row %d)→%d(row %d)",
			ErrNotAdjacentRow, from, g.nodes[from].row, to, g.nodes[to].row)
	}
	g.nodes[from].edges = append(g.nodes[from].edges, Edge{Weight: weight, To: to})

	return nil
}

// Rows returns the number of rows.
func (g *Graph) Rows() int { return len(g.rows) }

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int { return len(g.nodes) }

// Row returns a copy of the node IDs of row i, or nil if the row does not exist.
func (g *Graph) Row(i int) []NodeID {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	out := make([]NodeID, len(g.rows[i]))
	copy(out, g.rows[i])

	return out
}

// RowOf reports the row index of id.
func (g *Graph) RowOf(id NodeID) (int, bool) {
	if !g.valid(id) {
		return 0, false
	}

	return g.nodes[id].row, true
}

// Edges returns a copy of the outgoing edges of id, or nil for an unknown ID.
func (g *Graph) Edges(id NodeID) []Edge {
	if !g.valid(id) {
		return nil
	}
	out := make([]Edge, len(g.nodes[id].edges))
	copy(out, g.nodes[id].edges)

	return out
}

// MinPath returns the lowest cost found so far from row 0 to id.
// ok is false while id has not been reached (or does not exist).
// Row 0 nodes never carry a min path of their own.
func (g *Graph) MinPath(id NodeID) (cost uint64, ok bool) {
	if !g.valid(id) || !g.nodes[id].reached {
		return 0, false
	}

	return g.nodes[id].minPath, true
}

func (g *Graph) newNode(row int) NodeID {
	g.nodes = append(g.nodes, Node{row: row})

	return NodeID(len(g.nodes) - 1)
}

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}
