// SPDX-License-Identifier: MIT
// Package: treegen/prufer
//
// errors.go — sentinel errors for the prufer package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context via `%w`: "<Method>: <detail>: <sentinel>".
//   • Constructors and Generate MUST NOT panic on any input an error kind
//     covers; invalid option values are recorded during option application and
//     surfaced as errors at construction (see options.go).
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • Wrap lower-level errors with method context: fmt.Errorf("%s: AddEdge(%s—%s): %w", ...).
//   • Return ONLY these sentinels for validation classes (sequence/rng/target/options).
//   • Do NOT stringify parameters into sentinel definitions; use %w wrapping instead.
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package prufer

import "errors"

// ErrInvalidSequence indicates that a Prüfer sequence or vertex count cannot
// encode any tree: nil sequence, count below 1, sequence length different
// from n−2, or an element outside [0, n−1].
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrInvalidSequence) { /* report invalid input */ }.
var ErrInvalidSequence = errors.New("prufer: invalid sequence")

// ErrNeedRandSource indicates that a stochastic construction requires a
// non-nil random source: WithRand(nil) was supplied where sampling needs
// a live stream.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("prufer: rng is required")

// ErrNilGraph indicates Generate received a nil target graph.
// Usage: if errors.Is(err, ErrNilGraph) { /* pass a constructed graph */ }.
var ErrNilGraph = errors.New("prufer: nil target graph")

// ErrUnsupportedTarget indicates the target graph cannot receive a tree:
// it is directed, or it already contains vertices. The target is never
// mutated when this is returned.
// Usage: if errors.Is(err, ErrUnsupportedTarget) { /* pass an empty undirected graph */ }.
var ErrUnsupportedTarget = errors.New("prufer: unsupported target graph")

// ErrOptionViolation indicates that a WithX(...) option received a
// meaningless value (e.g. WithWeightFn(nil)). The violation is recorded when
// the option is applied and surfaced from the constructor, so construction
// never panics.
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = errors.New("prufer: invalid option value")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return fmt.Errorf("%s: vertex count n=%d < min=%d: %w",
//          MethodRandom, n, MinVertexCount, ErrInvalidSequence)
//    This preserves the sentinel for errors.Is while adding a deterministic
//    context prefix ("NewRandom: vertex count n=0 < min=1: ...").
//
// 2) Priority (tie-break guidance when multiple validations fail):
//    • option errors (recorded during application) — surfaced first;
//    • ErrInvalidSequence — count/length/range checks, in that order;
//    • ErrNeedRandSource  — RNG presence for the random mode;
//    • ErrNilGraph / ErrUnsupportedTarget — target checks inside Generate,
//      nil before mode before emptiness.
//
// 3) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching strings.
//    Edge cases: nil seq, n=0, seq element == n, WithRand(nil), directed
//    target, populated target, second Generate into the same graph.
