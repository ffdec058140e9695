// SPDX-License-Identifier: MIT
// Package: treegen/prufer
//
// decode.go — linear Prüfer sequence decoding.
//
// Canonical model:
//   - Degree table: every vertex starts at 1, plus one per occurrence in the
//     sequence. Degree-1 vertices form the leaf frontier.
//   - For each sequence element s (left to right): remove the smallest
//     current leaf ℓ, emit edge (ℓ, s), and decrement degree[s]; when that
//     decrement turns s into a leaf, s joins the frontier.
//   - After the sequence is consumed exactly two vertices remain, one of
//     them always n−1; the final edge joins the surviving leaf to n−1.
//
// Smallest-leaf selection in O(n) total (index-ordered scan pointer):
//   - ptr sweeps 0..n−1 once over the whole decode and rests on the most
//     recently consumed leaf position; every already-consumed position is
//     ≤ ptr at all times.
//   - When degree[s] drops to 1 with s < ptr, s is the unique live leaf
//     below the pointer and therefore the global minimum: consume it next
//     without moving ptr (the surfaced-leaf shortcut).
//   - Otherwise the minimal live leaf lies above ptr; advance ptr to the
//     next degree-1 position. Total pointer movement is ≤ n.
//
// Contract:
//   - Input is already validated (length n−2, elements in [0,n−1]); the
//     decoder never fails and never validates.
//   - n == 1 ⇒ nil (the single-vertex tree has no edges); n == 2 ⇒ {0,1}.
//   - Emission order is contractual: edge i is (leaf_i, seq[i]) in sequence
//     order, then the final edge (last leaf, n−1) — the ascending tie-break
//     law callers rely on for reproducible output.
//
// Complexity:
//   - Time: O(n) — one degree pass, one sequence pass, ≤ n pointer steps.
//   - Space: O(n) for the degree table and the edge list.
//
// Determinism:
//   - Pure function of (seq, n); no RNG, no maps, no iteration-order hazards.

package prufer

// decodeSequence converts a validated Prüfer sequence into the edge list of
// its tree, with vertices named by index 0..n−1.
func decodeSequence(seq []int, n int) [][2]int {
	// 1) Trees below two vertices carry no edges.
	if n < SequenceOffset {
		return nil
	}

	// 2) Degree table: 1 + occurrences.
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, s := range seq {
		degree[s]++
	}

	edges := make([][2]int, 0, n-1)

	// 3) Park the scan pointer on the smallest initial leaf.
	ptr := 0
	for degree[ptr] != 1 {
		ptr++
	}
	leaf := ptr

	// 4) Consume the sequence, smallest leaf first.
	for _, s := range seq {
		edges = append(edges, [2]int{leaf, s})
		degree[s]--
		if degree[s] == 1 && s < ptr {
			// Surfaced leaf below the pointer: it is the global minimum.
			leaf = s
		} else {
			// Advance to the next leaf at or above ptr+1.
			ptr++
			for degree[ptr] != 1 {
				ptr++
			}
			leaf = ptr
		}
	}

	// 5) Exactly two vertices remain; n−1 is always one of them.
	edges = append(edges, [2]int{leaf, n - 1})

	return edges
}
