package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pabender/treegen/core"
)

// TestAddVertex_EmptyID verifies that empty IDs are rejected.
func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.Equal(t, 0, g.VertexCount())
}

// TestAddVertex_Idempotent verifies that re-adding a vertex is a no-op.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("B"))
}

// TestRemoveVertex verifies vertex removal together with incident edges.
func TestRemoveVertex(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	require.NoError(t, g.RemoveVertex("B"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("C", "B"))

	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
}

// TestAddEdge_AutoCreatesEndpoints verifies endpoints appear on demand.
func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(eid, "e"))
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_UndirectedMirror verifies HasEdge symmetry in undirected graphs.
func TestAddEdge_UndirectedMirror(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
}

// TestAddEdge_DirectedNoMirror verifies directed edges keep one orientation.
func TestAddEdge_DirectedNoMirror(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
}

// TestAddEdge_Constraints covers weight, loop, and multi-edge policies.
func TestAddEdge_Constraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "B", 3.5)
	assert.ErrorIs(t, err, core.ErrBadWeight) // unweighted graph

	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

// TestAddEdge_WeightedLoopsMulti verifies the permissive configuration.
func TestAddEdge_WeightedLoopsMulti(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())

	_, err := g.AddEdge("A", "B", 2.5)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 4.5)
	require.NoError(t, err) // parallel edge
	_, err = g.AddEdge("A", "A", 1)
	require.NoError(t, err) // self-loop

	assert.Equal(t, 3, g.EdgeCount())

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, 2.5, edges[0].Weight)
	assert.Equal(t, 4.5, edges[1].Weight)
}

// TestRemoveEdge verifies removal updates both orientations.
func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 0, g.EdgeCount())

	assert.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
}

// TestNeighbors verifies incident-edge queries and their ordering.
func TestNeighbors(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("B", "A", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("D", "B", 0)

	ns, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, ns, 3)
	// Sorted by edge ID: e1 < e2 < e3
	assert.Equal(t, "e1", ns[0].ID)
	assert.Equal(t, "e2", ns[1].ID)
	assert.Equal(t, "e3", ns[2].ID)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestNeighbors_ReturnsCopies verifies callers cannot mutate graph internals.
func TestNeighbors_ReturnsCopies(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)

	ns, err := g.Neighbors("A")
	require.NoError(t, err)
	ns[0].Weight = 99

	again, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, again[0].Weight)
}

// TestNeighborIDs verifies unique, sorted adjacency and loop handling.
func TestNeighborIDs(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("B", "A", 0)
	_, _ = g.AddEdge("B", "B", 0)

	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids)
}

// TestNeighborIDs_Directed verifies only outgoing neighbors are reported.
func TestNeighborIDs_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "A", 0)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids)
}

// TestDegree covers path, loop, and directed degree counting.
func TestDegree(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	degB, err := g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 2, degB)

	degA, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, degA)

	_, err = g.Degree("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestDegree_LoopCountsTwice verifies both endpoints of a loop are counted.
func TestDegree_LoopCountsTwice(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A", 0)
	_, _ = g.AddEdge("A", "B", 0)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 3, deg)
}

// TestDegree_Directed verifies in-degree plus out-degree.
func TestDegree_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "B", 0)
	_, _ = g.AddEdge("B", "D", 0)

	deg, err := g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 3, deg) // two in, one out
}

// TestVerticesAndEdges_Sorted verifies deterministic iteration order.
func TestVerticesAndEdges_Sorted(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("C", "B", 0)
	_, _ = g.AddEdge("A", "C", 0)

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, "C", edges[0].From)
	assert.Equal(t, "B", edges[0].To)
}

// TestVertexMetadata verifies metadata set/get round-trips and copy semantics.
func TestVertexMetadata(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	require.NoError(t, g.SetVertexMetadata("A", "label", "root"))

	meta, err := g.VertexMetadata("A")
	require.NoError(t, err)
	assert.Equal(t, "root", meta["label"])

	// Mutating the returned map must not touch the stored metadata.
	meta["label"] = "changed"
	meta2, err := g.VertexMetadata("A")
	require.NoError(t, err)
	assert.Equal(t, "root", meta2["label"])

	assert.ErrorIs(t, g.SetVertexMetadata("Z", "k", 1), core.ErrVertexNotFound)
	_, err = g.VertexMetadata("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestCloneEmpty verifies configuration and vertices carry over without edges.
func TestCloneEmpty(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 7)

	clone := g.CloneEmpty()
	assert.True(t, clone.Directed())
	assert.True(t, clone.Weighted())
	assert.True(t, clone.Looped())
	assert.False(t, clone.Multigraph())
	assert.Equal(t, []string{"A", "B"}, clone.Vertices())
	assert.Equal(t, 0, clone.EdgeCount())
}

// TestClone verifies deep copies stay independent of the original.
func TestClone(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 2.5)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1.5)
	require.NoError(t, err)

	clone := g.Clone()
	assert.Equal(t, g.Vertices(), clone.Vertices())
	assert.Equal(t, g.Edges(), clone.Edges())

	// Mutating the clone must not leak into the original.
	require.NoError(t, clone.RemoveEdge(eid))
	assert.True(t, g.HasEdge("A", "B"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, clone.EdgeCount())
}

// TestClone_FreshEdgeIDsDoNotCollide verifies the ID counter carries over.
func TestClone_FreshEdgeIDsDoNotCollide(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	clone := g.Clone()
	eid, err := clone.AddEdge("C", "D", 0)
	require.NoError(t, err)
	assert.NotEqual(t, "e1", eid)
	assert.NotEqual(t, "e2", eid)
	assert.Equal(t, 3, clone.EdgeCount())
}

// TestClear verifies storage resets while configuration survives.
func TestClear(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 5)

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())

	// The graph remains usable after Clear.
	_, err := g.AddEdge("X", "Y", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}
