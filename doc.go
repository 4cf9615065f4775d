// Package layerpath is a small, dependency-light library for minimum-cost
// paths through layered directed graphs.
//
// 🚀 What is layerpath?
//
//	Nodes sit in N ordered rows and every edge steps from row i to row i+1.
//	The library answers one question: what is the cheapest way to get from
//	anywhere in the first row to anywhere in the last row?
//
// ✨ Why a dedicated solver?
//
//   - One linear sweep: rows are a topological order, so no heap is needed.
//   - Arena storage: nodes are indexed, shared destinations need no pointers.
//   - Total: no panics, "no path" is a boolean, never an error.
//   - Pure Go – no cgo, no hidden deps.
//
// Subpackages:
//
//	layered/ — Graph arena, constructors (Complete, FromMatrices) and MinPathCost
//
// Quick ASCII example:
//
//	    row 0:  A   D
//	            │╲ ╱│
//	    row 1:  B   C
//	            │ ╱ │
//	    row 2:  E   F
//
//	go get github.com/katalvlaran/layerpath/layered
package layerpath
