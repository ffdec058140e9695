// Package treecheck reports structural facts about undirected core.Graph
// values: connectivity, forest-ness, and tree-ness.
// It uses a disjoint-set (union-find) structure with path compression and
// union by rank, so each check runs in near-linear time.
package treecheck

import (
	"errors"

	"github.com/pabender/treegen/core"
)

// Sentinel errors for structure checks.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("treecheck: nil graph")

	// ErrDirectedGraph is returned for directed graphs; these predicates are
	// defined on undirected graphs only.
	ErrDirectedGraph = errors.New("treecheck: directed graph")
)

// IsConnected reports whether g consists of a single connected component.
// The empty graph is not connected; a single vertex is.
//
// Error Conditions:
//   - ErrNilGraph      : g == nil.
//   - ErrDirectedGraph : g.Directed() == true.
//
// Complexity: O(V + E·α(V)). Memory: O(V).
func IsConnected(g *core.Graph) (bool, error) {
	verts, err := validate(g)
	if err != nil {
		return false, err
	}
	if len(verts) == 0 {
		return false, nil
	}
	components, _ := scan(g, verts)

	return components == 1, nil
}

// IsForest reports whether g contains no cycle. Self-loops and parallel
// edges both count as cycles. The empty graph is not a forest.
//
// Error Conditions: as for IsConnected.
// Complexity: O(V + E·α(V)). Memory: O(V).
func IsForest(g *core.Graph) (bool, error) {
	verts, err := validate(g)
	if err != nil {
		return false, err
	}
	if len(verts) == 0 {
		return false, nil
	}
	_, cyclic := scan(g, verts)

	return !cyclic, nil
}

// IsTree reports whether g is a tree: connected with exactly |V|−1 edges.
// A connected graph on |V|−1 edges is necessarily acyclic, so no separate
// cycle check is needed. The empty graph is not a tree; a single vertex is.
//
// Error Conditions: as for IsConnected.
// Complexity: O(V + E·α(V)). Memory: O(V).
func IsTree(g *core.Graph) (bool, error) {
	verts, err := validate(g)
	if err != nil {
		return false, err
	}
	if len(verts) == 0 {
		return false, nil
	}
	if g.EdgeCount() != len(verts)-1 {
		return false, nil
	}
	components, _ := scan(g, verts)

	return components == 1, nil
}

// validate rejects nil and directed graphs and returns the sorted vertex IDs.
func validate(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	return g.Vertices(), nil
}

// scan unions every edge of g and reports the component count and whether
// any edge closed a cycle (including self-loops and parallel edges).
func scan(g *core.Graph, verts []string) (components int, cyclic bool) {
	// Initialize disjoint-set structures: parent[v] = v, rank[v] = 0.
	parent := make(map[string]string, len(verts))
	rank := make(map[string]int, len(verts))
	for _, vid := range verts {
		parent[vid] = vid
		rank[vid] = 0
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u string) string {
		for parent[u] != u {
			// Path compression: make u point to its grandparent.
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v string) {
		rootU := find(u)
		rootV := find(v)
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	for _, e := range g.Edges() {
		// A self-loop is a one-edge cycle.
		if e.From == e.To {
			cyclic = true
			continue
		}
		// An edge inside one component closes a cycle (covers parallels).
		if find(e.From) == find(e.To) {
			cyclic = true
			continue
		}
		union(e.From, e.To)
	}

	// Roots that point to themselves are the component representatives.
	for _, vid := range verts {
		if find(vid) == vid {
			components++
		}
	}

	return components, cyclic
}
