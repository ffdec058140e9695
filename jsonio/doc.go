// Package jsonio reads node-link JSON documents into core graphs.
//
// The accepted document shape is:
//
//	{
//	  "nodes": [{"id": "a", "label": "Alpha"}, {"id": 2}],
//	  "edges": [{"source": "a", "target": 2, "weight": 1.5}]
//	}
//
// Node IDs may be JSON strings or numbers; numbers are normalized to their
// decimal string form. By default every node is minted through the target
// graph's vertex supplier and the file-side ID is kept in vertex metadata;
// a VertexFactory switches naming to a pure function of the file-side ID.
// Edge weights are honored only when the target graph is weighted.
package jsonio
