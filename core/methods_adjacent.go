// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, OutDegree).
// Determinism:
//   - Neighbors() returns edges in insertion order.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

// Neighbors returns the edges leaving the given vertex.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.From == id.
//   - Undirected edges: include incident edges (mirrored adjacency); self-loops appear once.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj read locks (in that order).
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Collect edges from adjacencyList[id] and order them by insertion.
//
// Returns pointers to live catalog edges; treat them as immutable.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e == nil {
				continue
			}
			// Directed policy: only outgoing edges.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortBySeq(out)

	return out, nil
}

// OutDegree returns the number of edges Neighbors(id) would return.
// Complexity: O(d).
func (g *Graph) OutDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	n := 0
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil || (e.Directed && e.From != id) {
				continue
			}
			n++
		}
	}

	return n, nil
}

// Other returns the endpoint of e opposite to id, i.e. the vertex reached
// when e is traversed starting at id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}
