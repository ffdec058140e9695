// Package prufer defines shared constants used by the tree generator,
// ensuring consistent defaults and validation across construction paths.
package prufer

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the entry-point name for context.
//-----------------------------------------------------------------------------

const (
	// MethodFromSequence is the canonical name for the explicit-sequence constructor.
	MethodFromSequence = "NewFromSequence"
	// MethodRandom is the canonical name for the random constructor.
	MethodRandom = "NewRandom"
	// MethodGenerate is the canonical name for the emission entry point.
	MethodGenerate = "Generate"
	// MethodBuildTree is the canonical name for the one-shot explicit helper.
	MethodBuildTree = "BuildTree"
	// MethodBuildRandomTree is the canonical name for the one-shot random helper.
	MethodBuildRandomTree = "BuildRandomTree"
)

//-----------------------------------------------------------------------------
// Sequence Geometry
//-----------------------------------------------------------------------------

// MinVertexCount is the smallest tree size the generator accepts.
// A single vertex is a valid (edgeless) tree; zero vertices encode nothing.
const MinVertexCount = 1

// SequenceOffset relates sequence length to vertex count: a tree on n
// vertices is encoded by exactly n−SequenceOffset sequence elements
// (clamped at zero for n ∈ {1, 2}).
const SequenceOffset = 2
