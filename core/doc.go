// Package core provides the thread-safe, in-memory directed labeled graph
// that the key wheel and the multi-path search are built on.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Edge labels (WithEdgeLabel) carrying the name of the rule that produced the edge
//   - Constant-time edge membership via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() returns IDs sorted lexicographically.
//	Edges() and Neighbors() return edges in insertion order, so every
//	algorithm iterating a graph built the same way sees the same sequence.
//
// Core Methods:
//
//	AddVertex(id string) error                                             // O(1)
//	HasVertex(id string) bool                                              // O(1)
//	AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) // O(1)
//	GetEdge(edgeID string) (*Edge, error)                                  // O(1)
//	Neighbors(id string) ([]*Edge, error)                                  // O(d log d)
//	OutDegree(id string) (int, error)                                      // O(d)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound,
//	ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
