package jsonio

import "errors"

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Import.
	ErrNilGraph = errors.New("jsonio: nil graph")
	// ErrMalformedDocument indicates JSON that does not decode into the
	// node-link shape, or a node without a usable id.
	ErrMalformedDocument = errors.New("jsonio: malformed node-link document")
	// ErrDuplicateNode indicates two nodes resolving to the same identifier,
	// either file-side or through the VertexFactory.
	ErrDuplicateNode = errors.New("jsonio: duplicate node id")
	// ErrUnknownNode indicates an edge endpoint that names no declared node.
	ErrUnknownNode = errors.New("jsonio: unknown node id")
)
