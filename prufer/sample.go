// SPDX-License-Identifier: MIT
// Package: treegen/prufer
//
// sample.go — uniform Prüfer sequence sampling.
//
// Canonical model:
//   - Draw n−2 independent uniform labels from {0,…,n−1} via rng.Intn(n).
//   - The Prüfer bijection then makes the decoded tree uniform over all
//     n^(n−2) labeled trees on n vertices (Cayley's formula).
//
// Contract:
//   - Callers guarantee n ≥ MinVertexCount and rng != nil (validated at the
//     construction boundary, not here).
//   - n ∈ {1, 2} yields the empty, non-nil sequence.
//
// Determinism:
//   - The element order equals the draw order; a fixed source state ⇒ an
//     identical sequence.
//
// Complexity: O(n) time, O(n) space.

package prufer

// sampleSequence draws a uniform Prüfer sequence for a tree on n vertices.
func sampleSequence(n int, rng Rand) []int {
	seq := make([]int, expectedSequenceLen(n))
	for i := range seq {
		seq[i] = rng.Intn(n)
	}

	return seq
}
