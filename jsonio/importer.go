package jsonio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pabender/treegen/core"
)

// document mirrors the node-link wire shape.
type document struct {
	Nodes []node `json:"nodes"`
	Edges []link `json:"edges"`
}

type node struct {
	ID    flexID `json:"id"`
	Label string `json:"label"`
}

type link struct {
	Source flexID  `json:"source"`
	Target flexID  `json:"target"`
	Weight float64 `json:"weight"`
}

// flexID accepts a JSON string or number and normalizes it to a string.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexID(n.String())
		return nil
	}

	return fmt.Errorf("id must be a JSON string or number, got %s", data)
}

// Importer reads node-link JSON documents into core graphs.
//
// The zero value mints every node through the target graph's vertex supplier
// and records the file-side id (and label, when present) in vertex metadata.
// Setting VertexFactory switches naming: each vertex ID becomes
// VertexFactory(fileID) and metadata keeps only the label.
type Importer struct {
	// VertexFactory maps a file-side node ID to the vertex ID to insert.
	// Nil means "mint through the target's supplier".
	VertexFactory func(fileID string) string
}

// Import decodes one node-link document from r and inserts its nodes and
// edges into g, in document order. Importing into a non-empty graph is
// allowed; clashes with existing vertices surface as core errors.
//
// Error Conditions:
//   - ErrNilGraph          : g == nil.
//   - ErrMalformedDocument : undecodable JSON or a node without a usable id.
//   - ErrDuplicateNode     : two nodes resolving to one identifier.
//   - ErrUnknownNode       : an edge endpoint naming no declared node.
//   - wrapped core errors  : minting or insertion failures (weight policy,
//     loop/multi-edge flags, supplier collisions).
//
// Complexity: O(nodes + edges) time and memory.
func (imp Importer) Import(g *core.Graph, r io.Reader) error {
	if g == nil {
		return fmt.Errorf("Import: %w", ErrNilGraph)
	}

	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("Import: decode: %v: %w", err, ErrMalformedDocument)
	}

	// First pass: declare all nodes; file-side id → inserted vertex ID.
	idMap := make(map[string]string, len(doc.Nodes))
	seen := make(map[string]struct{}, len(doc.Nodes))
	for i, nd := range doc.Nodes {
		fid := string(nd.ID)
		if fid == "" {
			return fmt.Errorf("Import: node %d: missing id: %w", i, ErrMalformedDocument)
		}
		if _, dup := idMap[fid]; dup {
			return fmt.Errorf("Import: node %d: id %q: %w", i, fid, ErrDuplicateNode)
		}

		vid, err := imp.insertNode(g, fid, nd.Label)
		if err != nil {
			return fmt.Errorf("Import: node %d (id %q): %w", i, fid, err)
		}
		if _, dup := seen[vid]; dup {
			// Two file-side ids collapsed onto one vertex via the factory.
			return fmt.Errorf("Import: node %d: factory maps %q onto occupied vertex %q: %w",
				i, fid, vid, ErrDuplicateNode)
		}
		idMap[fid] = vid
		seen[vid] = struct{}{}
	}

	// Second pass: connect. Weights apply only on weighted targets.
	useWeight := g.Weighted()
	var w float64
	for j, e := range doc.Edges {
		from, ok := idMap[string(e.Source)]
		if !ok {
			return fmt.Errorf("Import: edge %d: source %q: %w", j, string(e.Source), ErrUnknownNode)
		}
		to, ok := idMap[string(e.Target)]
		if !ok {
			return fmt.Errorf("Import: edge %d: target %q: %w", j, string(e.Target), ErrUnknownNode)
		}

		if useWeight {
			w = e.Weight
		} else {
			w = 0
		}
		if _, err := g.AddEdge(from, to, w); err != nil {
			return fmt.Errorf("Import: edge %d (%s->%s): %w", j, from, to, err)
		}
	}

	return nil
}

// insertNode places one node into g and returns the inserted vertex ID.
func (imp Importer) insertNode(g *core.Graph, fid, label string) (string, error) {
	if imp.VertexFactory == nil {
		// Default path: the target's supplier names the vertex; keep the
		// file-side identity in metadata.
		vid, err := g.MintVertex()
		if err != nil {
			return "", err
		}
		if err = g.SetVertexMetadata(vid, "id", fid); err != nil {
			return "", err
		}
		if label != "" {
			if err = g.SetVertexMetadata(vid, "label", label); err != nil {
				return "", err
			}
		}

		return vid, nil
	}

	vid := imp.VertexFactory(fid)
	if err := g.AddVertex(vid); err != nil {
		return "", err
	}
	if label != "" {
		if err := g.SetVertexMetadata(vid, "label", label); err != nil {
			return "", err
		}
	}

	return vid, nil
}

// Import is the zero-configuration entry point: it mints node IDs through
// the target graph's supplier. Equivalent to Importer{}.Import(g, r).
func Import(g *core.Graph, r io.Reader) error {
	return Importer{}.Import(g, r)
}
