// Package core: high-performance Graph method implementations
//
// This file provides thread-safe, O(1) (amortized) operations for
// vertex and edge management on the Graph type defined in types.go.
// We leverage separate RWMutex locks for vertices (muVert) and
// edges+adjacency (muEdgeAdj) to minimize contention.
// Adjacency is stored as a nested map: adjacency[from][to][edgeID] = struct{}{},
// allowing constant-time existence, insertion, and deletion of edges.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const (
	edgeIDPrefix = "e"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID // empty ID
	}
	// Acquire write lock on vertices only
	g.muVert.Lock()
	defer g.muVert.Unlock()

	// Check if vertex already present
	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	// Insert new Vertex struct with empty Metadata map
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Initialize adjacency entry for this vertex (lazy map-of-maps)
	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// MintVertex inserts a fresh vertex whose ID is derived by the graph's
// VertexSupplier from the current mint ordinal, then advances the ordinal.
// Returns ErrEmptyVertexID if the supplier produced an empty string and
// ErrVertexExists if the ID is already taken; the ordinal does not advance
// on failure.
// Complexity: O(1) amortized plus one supplier call.
func (g *Graph) MintVertex() (string, error) {
	g.muVert.Lock()

	// Derive the candidate ID from the current ordinal
	id := g.supplier(g.minted)
	if id == "" {
		g.muVert.Unlock()
		return "", ErrEmptyVertexID
	}
	// A collision means the supplier clashes with pre-existing IDs
	if _, exists := g.vertices[id]; exists {
		g.muVert.Unlock()
		return "", ErrVertexExists
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.minted++
	g.muVert.Unlock()

	// Initialize adjacency entry, same as AddVertex
	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.muEdgeAdj.Unlock()

	return id, nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	// Acquire read lock on vertices
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if vertex does not exist.
// Complexity: O(E) in the worst case (scans incident edges).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	// Lock vertices and edges+adjacency to prevent races
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Verify vertex presence
	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	// Remove all edges where id is either endpoint
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.removeEdgeFromAdj(eid, e)
			delete(g.edges, eid)
		}
	}

	// Remove vertex itself
	delete(g.vertices, id)
	// Cleanup empty adjacency entries
	g.compactAdjacency()

	return nil
}

// AddEdge creates a new edge from 'from' to 'to' with the given weight and
// returns its unique Edge.ID. Both endpoints are created on demand.
// Handles parallel edges, loops, and weights per the graph configuration;
// in undirected graphs the adjacency entry is mirrored both ways.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Weight constraint
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	// 3) Loop constraint
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// 4) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 5) Lock everything around edges & adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 6) Multi-edge existence check
	if !g.allowMulti {
		if inner, ok := g.adjacency[from][to]; ok && len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 7) Generate a new atomic Edge.ID
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))

	// 8) Store in the global map
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}

	// 9) Insert into nested adjacency[from][to][eid]
	g.ensureAdjMap(from, to)
	g.adjacency[from][to][eid] = struct{}{}

	// 10) Mirror the reverse direction for undirected graphs
	//     (loops skip the mirror)
	if !g.directed && from != to {
		g.ensureAdjMap(to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID (and its mirror) from the graph,
// updating both the global map and the nested adjacency maps.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	// Lock edges+adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	// Fetch edge
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)        // Delete from global edges map
	g.removeEdgeFromAdj(eid, e) // Remove from adjacency[from][to] (and mirror)
	g.compactAdjacency()        // Drop emptied nested maps

	return nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// In undirected graphs the order of 'from' and 'to' does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	// Check nested map existence and non-empty
	if inner, ok := g.adjacency[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// Neighbors returns all edges incident to vertex 'id'.
// For directed graphs this is the outgoing edges; for undirected graphs,
// every incident edge. Result is a slice of Edge values sorted by Edge.ID
// for determinism.
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	// Ensure vertex exists
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	// Lock edges+adjacency for reading
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []Edge
	// Iterate all "to" maps for this vertex
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			// Append a copy: callers never see live internals
			out = append(out, *g.edges[eid])
		}
	}
	// Sort by ID to ensure reproducible ordering
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs of all adjacent vertices to id, sorted.
// A self-loop makes id its own neighbor.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else {
			seen[e.From] = struct{}{}
		}
	}
	var ids []string
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edge endpoints incident to id, with
// self-loops counted twice. For directed graphs this is in-degree plus
// out-degree.
// Complexity: O(d) for undirected graphs, O(E) for directed (incoming scan).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return 0, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	deg := 0
	for to, edgeSet := range g.adjacency[id] {
		deg += len(edgeSet)
		if to == id {
			deg += len(edgeSet) // loops contribute both endpoints
		}
	}
	// Directed graphs keep no mirror, so incoming edges need a scan
	if g.directed {
		for _, e := range g.edges {
			if e.To == id && e.From != id {
				deg++
			}
		}
	}

	return deg, nil
}

// Metadata access:
////////////////////

// VertexMetadata returns a shallow copy of the metadata map for vertex id.
// Complexity: O(k) where k is the number of metadata keys.
func (g *Graph) VertexMetadata(id string) (map[string]interface{}, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make(map[string]interface{}, len(v.Metadata))
	for k, val := range v.Metadata {
		out[k] = val
	}

	return out, nil
}

// SetVertexMetadata stores value under key in the metadata of vertex id.
// Complexity: O(1).
func (g *Graph) SetVertexMetadata(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// Configuration accessors:
////////////////////

// Weighted reports whether the graph treats edge weights as meaningful.
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Directed reports whether edges are oriented.
func (g *Graph) Directed() bool {
	return g.directed
}

// Looped reports whether the graph permits self-loops.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Multigraph reports whether the graph permits parallel edges.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// Cloning and bulk views:
////////////////////

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges. The mint ordinal carries over so minting stays collision-free.
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	// Copy configuration via options
	opts := []GraphOption{
		WithDirected(g.directed),
		WithVertexSupplier(g.supplier),
	}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	clone.minted = g.minted
	// Copy vertices
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	// Copy edges and adjacency
	for eid, e := range g.edges {
		// Duplicate Edge struct
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		// Append to nested adjacency maps
		if _, ok := clone.adjacency[e.From][e.To]; !ok {
			clone.adjacency[e.From][e.To] = make(map[string]struct{})
		}
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		if !g.directed && e.From != e.To {
			if _, ok := clone.adjacency[e.To][e.From]; !ok {
				clone.adjacency[e.To][e.From] = make(map[string]struct{})
			}
			clone.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}
	// Carry the counter so fresh edge IDs never collide with copied ones
	clone.nextEdgeID = g.nextEdgeID

	return clone
}

// Edges returns copies of all edges sorted by their ID.
// Complexity: O(E·logE)
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Clear resets the graph to empty state (vertices, edges, counters)
// but preserves flags and the vertex supplier.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	// reset maps and counters
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
	g.minted = 0
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// Internal helper methods:
////////////////////

// ensureAdjID makes adjacency[id] non-nil.
func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacency[id]; !ok {
		// Create outer map for "from" key
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjMap ensures adjacency[from][to] initialized.
func (g *Graph) ensureAdjMap(from, to string) {
	g.ensureAdjID(from)
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeEdgeFromAdj deletes eid from both directions if needed.
func (g *Graph) removeEdgeFromAdj(eid string, e *Edge) {
	// from -> to
	if m := g.adjacency[e.From][e.To]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	// mirror when undirected
	if !g.directed && e.From != e.To {
		if m := g.adjacency[e.To][e.From]; m != nil {
			delete(m, eid)
			if len(m) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}

// compactAdjacency removes empty nested maps.
func (g *Graph) compactAdjacency() {
	for u, m := range g.adjacency {
		for v, em := range m {
			if len(em) == 0 {
				delete(m, v)
			}
		}
		if len(m) == 0 {
			delete(g.adjacency, u)
		}
	}
}
