package jsonio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pabender/treegen/core"
	"github.com/pabender/treegen/jsonio"
	"github.com/pabender/treegen/treecheck"
)

const smallDoc = `{
	"nodes": [{"id": "a", "label": "Alpha"}, {"id": 2}],
	"edges": [{"source": "a", "target": 2, "weight": 1.5}]
}`

func TestImport_DefaultPathMintsAndRecordsMetadata(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, jsonio.Import(g, strings.NewReader(smallDoc)))

	// Document order drives minting: "a"→"0", 2→"1".
	assert.Equal(t, []string{"0", "1"}, g.Vertices())

	meta, err := g.VertexMetadata("0")
	require.NoError(t, err)
	assert.Equal(t, "a", meta["id"])
	assert.Equal(t, "Alpha", meta["label"])

	meta, err = g.VertexMetadata("1")
	require.NoError(t, err)
	assert.Equal(t, "2", meta["id"], "numeric file ids normalize to decimal strings")
	assert.NotContains(t, meta, "label")

	// Unweighted target: the file weight is discarded.
	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "0", edges[0].From)
	assert.Equal(t, "1", edges[0].To)
	assert.Zero(t, edges[0].Weight)
}

func TestImport_WeightedTargetHonorsWeights(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, jsonio.Import(g, strings.NewReader(smallDoc)))

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, 1.5, edges[0].Weight)
}

func TestImport_VertexFactoryNamesVertices(t *testing.T) {
	t.Parallel()

	imp := jsonio.Importer{VertexFactory: func(fileID string) string { return "n:" + fileID }}
	g := core.NewGraph()
	require.NoError(t, imp.Import(g, strings.NewReader(smallDoc)))

	assert.Equal(t, []string{"n:2", "n:a"}, g.Vertices())

	// Factory path keeps only the label in metadata.
	meta, err := g.VertexMetadata("n:a")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", meta["label"])
	assert.NotContains(t, meta, "id")

	assert.True(t, g.HasEdge("n:a", "n:2"))
}

func TestImport_MalformedDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"truncated", `{"nodes": [`},
		{"boolean_id", `{"nodes": [{"id": true}]}`},
		{"missing_id", `{"nodes": [{"label": "x"}]}`},
		{"array_root", `[1, 2, 3]`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := jsonio.Import(core.NewGraph(), strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, jsonio.ErrMalformedDocument)
		})
	}
}

func TestImport_DuplicateNodeIDs(t *testing.T) {
	t.Parallel()

	err := jsonio.Import(core.NewGraph(), strings.NewReader(
		`{"nodes": [{"id": "a"}, {"id": "a"}]}`))
	assert.ErrorIs(t, err, jsonio.ErrDuplicateNode)

	// A numeric 2 and the string "2" normalize to the same identifier.
	err = jsonio.Import(core.NewGraph(), strings.NewReader(
		`{"nodes": [{"id": 2}, {"id": "2"}]}`))
	assert.ErrorIs(t, err, jsonio.ErrDuplicateNode)
}

func TestImport_UnknownEdgeEndpoints(t *testing.T) {
	t.Parallel()

	err := jsonio.Import(core.NewGraph(), strings.NewReader(
		`{"nodes": [{"id": "a"}], "edges": [{"source": "zz", "target": "a"}]}`))
	assert.ErrorIs(t, err, jsonio.ErrUnknownNode)

	err = jsonio.Import(core.NewGraph(), strings.NewReader(
		`{"nodes": [{"id": "a"}], "edges": [{"source": "a", "target": "zz"}]}`))
	assert.ErrorIs(t, err, jsonio.ErrUnknownNode)
}

func TestImport_NilGraph(t *testing.T) {
	t.Parallel()

	err := jsonio.Import(nil, strings.NewReader(smallDoc))
	assert.ErrorIs(t, err, jsonio.ErrNilGraph)
}

func TestImport_FactoryCollision(t *testing.T) {
	t.Parallel()

	imp := jsonio.Importer{VertexFactory: func(string) string { return "x" }}
	err := imp.Import(core.NewGraph(), strings.NewReader(
		`{"nodes": [{"id": "a"}, {"id": "b"}]}`))
	assert.ErrorIs(t, err, jsonio.ErrDuplicateNode)
}

func TestImport_FactoryEmptyID(t *testing.T) {
	t.Parallel()

	imp := jsonio.Importer{VertexFactory: func(string) string { return "" }}
	err := imp.Import(core.NewGraph(), strings.NewReader(`{"nodes": [{"id": "a"}]}`))
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestImport_CoreEdgePolicyPropagates(t *testing.T) {
	t.Parallel()

	// Loops are rejected by the default graph configuration.
	err := jsonio.Import(core.NewGraph(), strings.NewReader(
		`{"nodes": [{"id": "a"}], "edges": [{"source": "a", "target": "a"}]}`))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// With the loop flag set, the same document imports cleanly.
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, jsonio.Import(g, strings.NewReader(
		`{"nodes": [{"id": "a"}], "edges": [{"source": "a", "target": "a"}]}`)))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestImport_EmptyDocument(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, jsonio.Import(g, strings.NewReader(`{}`)))
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestImport_IntoNonEmptyGraph(t *testing.T) {
	t.Parallel()

	// Factory path composes with pre-existing vertices.
	imp := jsonio.Importer{VertexFactory: func(fileID string) string { return fileID }}
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("keep"))
	require.NoError(t, imp.Import(g, strings.NewReader(
		`{"nodes": [{"id": "a"}, {"id": "b"}], "edges": [{"source": "a", "target": "b"}]}`)))

	assert.Equal(t, []string{"a", "b", "keep"}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())

	// Default path cannot compose when minted IDs are taken: "0" is occupied.
	g2 := core.NewGraph()
	require.NoError(t, g2.AddVertex("0"))
	err := jsonio.Import(g2, strings.NewReader(`{"nodes": [{"id": "a"}]}`))
	assert.ErrorIs(t, err, core.ErrVertexExists)
}

func TestImport_DirectedTarget(t *testing.T) {
	t.Parallel()

	imp := jsonio.Importer{VertexFactory: func(fileID string) string { return fileID }}
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, imp.Import(g, strings.NewReader(
		`{"nodes": [{"id": "a"}, {"id": "b"}], "edges": [{"source": "a", "target": "b"}]}`)))

	out, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, out)

	out, err = g.NeighborIDs("b")
	require.NoError(t, err)
	assert.Empty(t, out, "directed import must not mirror the edge")
}

func TestImport_StarDocumentIsTree(t *testing.T) {
	t.Parallel()

	const starDoc = `{
		"nodes": [{"id": "hub"}, {"id": "l1"}, {"id": "l2"}, {"id": "l3"}],
		"edges": [
			{"source": "hub", "target": "l1"},
			{"source": "hub", "target": "l2"},
			{"source": "hub", "target": "l3"}
		]
	}`

	g := core.NewGraph()
	require.NoError(t, jsonio.Import(g, strings.NewReader(starDoc)))

	ok, err := treecheck.IsTree(g)
	require.NoError(t, err)
	assert.True(t, ok)
}
