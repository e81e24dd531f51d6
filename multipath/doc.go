// Package multipath enumerates the N cheapest arrival paths between two
// vertices of a core.Graph.
//
// Unlike Dijkstra, the search keeps no visited set: every popped candidate
// is expanded along every outgoing edge, so paths may revisit vertices
// (including the target itself) and the same vertex is reached many times.
// Candidates leave the frontier in non-decreasing cost order, and every
// time one of them sits on the target it is emitted as a result. The
// search stops after n emissions or when the frontier empties.
//
// This is not a k-shortest-simple-paths solver: results are arrival
// paths, not distinct simple paths.
//
// Ordering:
//
//   - Primary key: accumulated cost (sum of edge weights).
//   - Secondary key: push sequence (FIFO), so equal-cost candidates leave
//     the frontier in the order they were discovered and results are
//     reproducible for a given graph.
//
// History:
//
//	Node and label histories are persistent singly linked lists. A child
//	candidate shares its parent's history and only the emitted paths are
//	materialized into slices.
//
// Complexity:
//
//   - With branching factor b and emitted cost bound c, the frontier holds
//     O(b^c) candidates; each push/pop costs O(log F).
//   - Callers must bound n (and optionally the frontier via WithMaxFrontier).
//
// Errors (sentinel):
//
//	ErrNilGraph, ErrVertexNotFound, ErrNegativeCount,
//	ErrNegativeWeight, ErrFrontierExceeded.
package multipath
