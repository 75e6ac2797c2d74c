// Package core provides a thread-safe, in-memory, undirected weighted Graph
// used to model a transit network: stations are vertices, track segments are
// edges carrying a non-negative travel cost.
//
// The Graph G = (V,E) enforces its invariants at insertion time so that the
// algorithms built on top of it never have to re-check them:
//
//   - Symmetry: every edge {A,B,w} is reachable from both A and B
//     (adjacency[A][B] and adjacency[B][A] reference the same edge ID).
//   - No self-loops: AddEdge(v, v, ...) → ErrLoopNotAllowed.
//   - One edge per unordered pair: a second AddEdge(A, B) or AddEdge(B, A)
//     → ErrMultiEdgeNotAllowed. Use SetEdgeWeight to change an existing cost.
//   - Weights are finite and ≥ 0: otherwise → ErrInvalidWeight.
//
// Determinism:
//
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - Edges() returns edges in insertion order.
//   - Neighbors(id) returns incident edges sorted by the opposite endpoint ID.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error        // O(1)
//	HasVertex(id string) bool         // O(1)
//	Vertices() []string               // O(V·log V)
//	VertexCount() int                 // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	SetEdgeWeight(from, to string, weight float64) error                // O(1)
//	HasEdge(from, to string) bool                                       // O(1)
//	Edge(from, to string) (*Edge, error)                                // O(1)
//	Edges() []*Edge                                                     // O(E·log E)
//	EdgeCount() int                                                     // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d)
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Stats() GraphStats                       // O(V+E)
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdgeAdj guards edges and adjacency.
//	Lock order is always muVert → muEdgeAdj. Edges handed out by queries are
//	never mutated in place; SetEdgeWeight swaps in a fresh *Edge, so readers
//	holding an older pointer keep a consistent snapshot.
package core
