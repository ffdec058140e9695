// Package prufer generates labeled trees from Prüfer sequences: every
// sequence of length n−2 over {0,…,n−1} corresponds to exactly one labeled
// tree on n vertices, so decoding a uniformly random sequence yields a
// uniformly random labeled tree (Cayley: n^(n−2) trees).
//
// The package offers the following key components:
//
//   - TreeGenerator (facade):
//     – NewFromSequence:  build the one tree encoded by an explicit sequence.
//     – NewRandom:        sample a uniform sequence, then decode it.
//     – Generate:         emit vertices and edges into an empty core.Graph,
//     minting vertex IDs through the target's own VertexSupplier.
//   - One-shot helpers:
//     – BuildTree:        fresh graph + NewFromSequence + Generate.
//     – BuildRandomTree:  fresh graph + NewRandom + Generate.
//   - Randomness:
//     – Rand:             minimal source interface ({ Intn }), satisfied by
//     *math/rand.Rand.
//     – DefaultRand:      process-wide default source (locked global stream).
//     – WithSeed/WithRand options for reproducible or injected streams.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:  constant weight DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform integer draws in [min,max].
//     Weights apply only when the target graph is weighted.
//
// Guarantees:
//
//   - Determinism: the same sequence (or the same seed) produces the same
//     vertex creation order and the same edge list, element for element.
//   - The decoder consumes the ascending leaf frontier (smallest current
//     leaf first) in O(n) total via a scan pointer with a surfaced-leaf
//     shortcut; edge i is (leaf_i, seq[i]), the last edge joins the final
//     leaf to vertex n−1.
//   - Validation is strict and happens at construction: nil sequences,
//     counts below 1, length ≠ n−2, and out-of-range elements are all
//     rejected with ErrInvalidSequence before any target is touched.
//   - Generate refuses nil targets (ErrNilGraph) and directed or non-empty
//     targets (ErrUnsupportedTarget) before any mutation.
//   - Structured runtime errors: sentinels wrapped with method context;
//     branch with errors.Is.
//
// See individual function documentation for detailed contracts and
// performance notes.
package prufer
