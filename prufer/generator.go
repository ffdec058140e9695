// SPDX-License-Identifier: MIT
// Package: treegen/prufer
//
// generator.go — public entry points for tree generation.
//
// Design contract (strict):
//   - Two constructors, one emitter: NewFromSequence / NewRandom resolve and
//     validate everything up front; Generate only emits.
//   - Functional options (Option) resolve into an immutable generatorConfig
//     (no global state beyond the documented DefaultRand).
//   - Determinism: the same sequence, or the same seed, yields the same
//     vertex creation order and the same edge list, element for element.
//   - Safety: never panic; return sentinel errors wrapped with method context.
//   - Generate validates the target before any mutation: a failed target
//     check leaves the graph untouched.
//
// AI-Hints (practical):
//   - Use WithSeed(...) to freeze random trees in tests and examples.
//   - Generate mints vertex IDs through the TARGET's supplier
//     (core.WithVertexSupplier); index i of the decode maps to the i-th
//     minted ID, so ID naming is entirely the target's policy.
//   - Reusing a generator across fresh graphs is supported; random mode
//     draws a new sequence per Generate call from the same stream.

package prufer

import (
	"fmt"

	"github.com/pabender/treegen/core"
)

// TreeGenerator emits labeled trees into empty undirected graphs.
//
// A generator is either explicit (decodes one fixed sequence, every Generate
// call produces the same tree) or random (samples a fresh uniform sequence
// per call from its source). Construct via NewFromSequence or NewRandom.
type TreeGenerator struct {
	seq      []int    // explicit mode: the validated sequence (private copy)
	n        int      // vertex count
	rng      Rand     // random mode: sampling source; both modes: weight draws
	weightFn WeightFn // applied only to weighted targets
	random   bool     // mode switch
}

// NewFromSequence returns a generator for the one tree encoded by seq.
//
// The vertex count is derived as len(seq)+2 unless WithVertexCount pins it;
// a pinned count must be consistent with the sequence length. The sequence
// is copied, so later caller mutations do not leak into the generator.
//
// Errors: ErrInvalidSequence (nil sequence, count < 1, length ≠ n−2,
// element out of range), ErrNeedRandSource / ErrOptionViolation (recorded
// option violations).
// Complexity: O(len(seq)) time and space.
func NewFromSequence(seq []int, opts ...Option) (*TreeGenerator, error) {
	cfg := newGeneratorConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", MethodFromSequence, cfg.err)
	}

	// Resolve the count: pinned wins, else derived from the sequence.
	n := derivedVertexCount(seq)
	if cfg.countSet {
		n = cfg.count
	}
	if err := validateSequence(MethodFromSequence, seq, n); err != nil {
		return nil, err
	}

	// Private copy: the generator owns its sequence.
	own := make([]int, len(seq))
	copy(own, seq)

	// No source option means no source: explicit trees need none, and the
	// default weight fn never draws.
	rng, _ := cfg.source()

	return &TreeGenerator{
		seq:      own,
		n:        n,
		rng:      rng,
		weightFn: cfg.weightFn,
	}, nil
}

// NewRandom returns a generator sampling uniform trees on n vertices.
//
// Source precedence: WithRand (explicit) > WithSeed (derived) > DefaultRand.
// A WithVertexCount option, if present, must agree with n.
//
// Errors: ErrInvalidSequence (n < 1 or count mismatch), ErrNeedRandSource
// (WithRand(nil)), ErrOptionViolation (recorded option violations).
// Complexity: O(1) time and space.
func NewRandom(n int, opts ...Option) (*TreeGenerator, error) {
	cfg := newGeneratorConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandom, cfg.err)
	}

	if n < MinVertexCount {
		return nil, fmt.Errorf("%s: vertex count n=%d < min=%d: %w",
			MethodRandom, n, MinVertexCount, ErrInvalidSequence)
	}
	if cfg.countSet && cfg.count != n {
		return nil, fmt.Errorf("%s: WithVertexCount(%d) conflicts with n=%d: %w",
			MethodRandom, cfg.count, n, ErrInvalidSequence)
	}

	// Resolve the source: explicit option wins, else the process default.
	rng, ok := cfg.source()
	if !ok {
		rng = DefaultRand
	}

	return &TreeGenerator{
		n:        n,
		rng:      rng,
		weightFn: cfg.weightFn,
		random:   true,
	}, nil
}

// VertexCount reports the number of vertices each generated tree will have.
func (t *TreeGenerator) VertexCount() int {
	return t.n
}

// Generate emits one tree into g: mints n vertices through the target's own
// supplier in index order 0..n−1, then inserts the n−1 decoded edges in
// decode order, mapping sequence indices through the minted-ID table.
//
// The target must be a non-nil, undirected, empty graph; those checks run
// before any mutation. Weighted targets receive weightFn draws, unweighted
// targets receive 0. Loops/multi-edge flags on the target are irrelevant:
// a decoded tree never produces either.
//
// Errors: ErrNilGraph, ErrUnsupportedTarget (directed or non-empty target),
// ErrInvalidSequence (zero-value generator), and wrapped core errors from
// minting or insertion (e.g. a colliding vertex supplier).
// Complexity: O(n) time, O(n) space.
func (t *TreeGenerator) Generate(g *core.Graph) error {
	// 1) Target checks, strictly before mutation.
	if g == nil {
		return fmt.Errorf("%s: nil target graph: %w", MethodGenerate, ErrNilGraph)
	}
	if g.Directed() {
		return fmt.Errorf("%s: directed target: %w", MethodGenerate, ErrUnsupportedTarget)
	}
	if cnt := g.VertexCount(); cnt > 0 {
		return fmt.Errorf("%s: target not empty (%d vertices): %w",
			MethodGenerate, cnt, ErrUnsupportedTarget)
	}

	// 2) Guard against a zero-value generator (not built by a constructor).
	if t.n < MinVertexCount {
		return fmt.Errorf("%s: vertex count n=%d < min=%d: %w",
			MethodGenerate, t.n, MinVertexCount, ErrInvalidSequence)
	}

	// 3) Resolve the sequence for this emission.
	seq := t.seq
	if t.random {
		seq = sampleSequence(t.n, t.rng)
	}

	// 4) Mint all vertices; index i ↔ ids[i].
	ids := make([]string, t.n)
	for i := 0; i < t.n; i++ {
		id, err := g.MintVertex()
		if err != nil {
			return fmt.Errorf("%s: MintVertex ordinal %d: %w", MethodGenerate, i, err)
		}
		ids[i] = id
	}

	// 5) Decode and insert edges through the index→ID table.
	useWeight := g.Weighted()
	var w float64
	for _, e := range decodeSequence(seq, t.n) {
		if useWeight {
			w = t.weightFn(t.rng)
		} else {
			w = 0
		}
		if _, err := g.AddEdge(ids[e[0]], ids[e[1]], w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s—%s, w=%g): %w",
				MethodGenerate, ids[e[0]], ids[e[1]], w, err)
		}
	}

	return nil
}

// BuildTree constructs a fresh core.Graph from gopts and emits the tree
// encoded by seq into it. Thin one-shot wrapper over NewFromSequence +
// Generate; errors are wrapped with "BuildTree:" context.
// Complexity: O(len(seq)) beyond graph construction.
func BuildTree(seq []int, gopts []core.GraphOption, opts ...Option) (*core.Graph, error) {
	gen, err := NewFromSequence(seq, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildTree, err)
	}

	g := core.NewGraph(gopts...)
	if err = gen.Generate(g); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildTree, err)
	}

	return g, nil
}

// BuildRandomTree constructs a fresh core.Graph from gopts and emits one
// uniform random tree on n vertices into it. Thin one-shot wrapper over
// NewRandom + Generate; errors are wrapped with "BuildRandomTree:" context.
// Complexity: O(n) beyond graph construction.
func BuildRandomTree(n int, gopts []core.GraphOption, opts ...Option) (*core.Graph, error) {
	gen, err := NewRandom(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildRandomTree, err)
	}

	g := core.NewGraph(gopts...)
	if err = gen.Generate(g); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildRandomTree, err)
	}

	return g, nil
}
