// Package prufer provides validation helpers enforcing the
// sequence/count contract shared by all construction paths.
//
// Each function returns a formatted error wrapping ErrInvalidSequence
// when its precondition is violated.
package prufer

import "fmt"

// expectedSequenceLen returns the sequence length a tree on n vertices
// requires: n−2, clamped at zero for n ∈ {1, 2}.
// Complexity: O(1) time and space.
func expectedSequenceLen(n int) int {
	if n < SequenceOffset {
		return 0
	}

	return n - SequenceOffset
}

// derivedVertexCount resolves the vertex count encoded by a sequence when no
// explicit count is pinned: len(seq)+2.
// Complexity: O(1) time and space.
func derivedVertexCount(seq []int) int {
	return len(seq) + SequenceOffset
}

// validateSequence checks that seq encodes a tree on exactly n vertices.
// Check order is part of the contract (stable diagnostics):
//  1. n ≥ MinVertexCount,
//  2. seq non-nil,
//  3. len(seq) == n−2 (clamped) — a pinned count inconsistent with the
//     sequence fails here,
//  4. every element in [0, n−1].
//
// Returns nil or an error wrapping ErrInvalidSequence with method context.
// Complexity: O(len(seq)) time, O(1) space.
func validateSequence(method string, seq []int, n int) error {
	// 1) Count domain: at least one vertex.
	if n < MinVertexCount {
		return fmt.Errorf("%s: vertex count n=%d < min=%d: %w",
			method, n, MinVertexCount, ErrInvalidSequence)
	}

	// 2) A nil sequence encodes nothing (an empty one encodes K1/K2).
	if seq == nil {
		return fmt.Errorf("%s: sequence is nil: %w", method, ErrInvalidSequence)
	}

	// 3) Length must match the count exactly.
	if want := expectedSequenceLen(n); len(seq) != want {
		return fmt.Errorf("%s: sequence length %d != n-2 = %d for n=%d: %w",
			method, len(seq), want, n, ErrInvalidSequence)
	}

	// 4) Element range: labels are 0-based vertex indices.
	for i, s := range seq {
		if s < 0 || s >= n {
			return fmt.Errorf("%s: seq[%d]=%d outside [0,%d]: %w",
				method, i, s, n-1, ErrInvalidSequence)
		}
	}

	return nil
}
