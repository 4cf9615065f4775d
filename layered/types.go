// SPDX-License-Identifier: MIT

package layered

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by graph construction. MinPathCost never returns errors.
var (
	// ErrBadSize indicates a negative row size or row width.
	ErrBadSize = errors.New("layered: size must be non-negative")

	// ErrRowNotFound indicates that a row index does not exist in the graph.
	ErrRowNotFound = errors.New("layered: row not found")

	// ErrNodeNotFound indicates that a NodeID does not exist in the graph.
	ErrNodeNotFound = errors.New("layered: node not found")

	// ErrNotAdjacentRow indicates an edge whose destination is not in the row
	// immediately following the source row.
	ErrNotAdjacentRow = errors.New("layered: edge must connect row i to row i+1")

	// ErrTooFewRows indicates that a bulk constructor was given no rows at all.
	ErrTooFewRows = errors.New("layered: at least one row is required")

	// ErrDimensionMismatch indicates ragged or inconsistent weight matrices.
	ErrDimensionMismatch = errors.New("layered: matrix dimensions do not chain")
)

// NodeID addresses a node inside the arena of the Graph that created it.
type NodeID int

// Edge is a directed, weighted connection to the node To.
// The source node is implicit: it is the node whose edge list holds the Edge.
type Edge struct {
	Weight uint64 // non-negative by type
	To     NodeID // destination, always in the next row for well-formed graphs
}

// Node is one vertex of the layered graph.
//
// minPath is only meaningful while reached is true; an unreached node is never
// treated as having cost 0.
type Node struct {
	row     int    // index of the row holding this node
	edges   []Edge // outgoing edges, in insertion order
	minPath uint64 // lowest accumulated weight known from any row-0 node
	reached bool   // false means "not reached yet" (absent min path)
}

// Graph is an arena of nodes grouped into ordered rows.
// Row 0 is the source row, row Rows()-1 is the terminal row.
type Graph struct {
	opts  Options
	nodes []Node     // flat arena, indexed by NodeID
	rows  [][]NodeID // rows[i] lists the nodes of row i in order
}

// Options configures graph construction.
//
// UncheckedEdges – skip the row-adjacency check in AddEdge (malformed input on purpose).
// RowCapacity    – initial capacity of the row table. Must be ≥ 0.
type Options struct {
	UncheckedEdges bool
	RowCapacity    int
}

// Option represents a functional option for NewGraph and the bulk constructors.
type Option func(*Options)

// WithUncheckedEdges disables the row-adjacency validation in AddEdge.
// Unknown node IDs are still rejected.
func WithUncheckedEdges() Option {
	return func(o *Options) {
		o.UncheckedEdges = true
	}
}

// WithRowCapacity presizes the row table for n rows.
// Panics if n < 0.
func WithRowCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("WithRowCapacity: n must be ≥ 0, got %d", n))
	}

	return func(o *Options) {
		o.RowCapacity = n
	}
}

// DefaultOptions returns the default construction options:
//   - UncheckedEdges: false (AddEdge enforces row i → row i+1).
//   - RowCapacity:    0.
func DefaultOptions() Options {
	return Options{
		UncheckedEdges: false,
		RowCapacity:    0,
	}
}
