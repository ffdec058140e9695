// SPDX-License-Identifier: MIT
// Package: treegen/prufer
//
// options.go — functional options for tree generator construction.
//
// Contract (strict):
//   • Options are functional (type Option func(*generatorConfig)).
//   • Option constructors NEVER panic: meaningless inputs are recorded in the
//     config and surfaced as errors from NewFromSequence/NewRandom, because
//     a nil random source is a contracted error (ErrNeedRandSource), not a
//     programmer-error panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; the only ambient state is the documented DefaultRand,
//     used solely when no source option is supplied.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible random trees in tests/fixtures.
//   • WithVertexCount pins the count for explicit sequences (the only way to
//     request the single-vertex tree: count 1 + empty sequence).
//   • WithWeightFn affects weighted targets only; core controls whether
//     weights are observed.

package prufer

import "fmt"

// Option customizes generator construction by mutating a generatorConfig
// before validation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*generatorConfig)

// WithRand provides an explicit random source for sampling.
// A nil source is recorded as ErrNeedRandSource and surfaced at construction.
// Injected *rand.Rand values are not goroutine-safe; do not share them.
// Complexity: O(1) time, O(1) space.
func WithRand(r Rand) Option {
	return func(c *generatorConfig) {
		if r == nil {
			// Surface as an error, not a panic: the null-source contract.
			c.err = fmt.Errorf("WithRand: nil source: %w", ErrNeedRandSource)
			return
		}
		c.rng = r
		c.rngSet = true
	}
}

// WithSeed derives a fresh deterministic source from the given seed at
// construction time. Use this in tests and examples to lock outcomes.
// An explicit WithRand takes precedence over WithSeed regardless of the
// order the two options appear in.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		// Stored raw; materialized into rand.New(rand.NewSource(seed))
		// only if no explicit source is present.
		c.seed = seed
		c.seedSet = true
	}
}

// WithVertexCount pins the vertex count for explicit sequences instead of
// deriving it as len(seq)+2. The count is validated at construction
// (count-known path); a count inconsistent with the sequence length is
// rejected there with ErrInvalidSequence.
// Complexity: O(1) time, O(1) space.
func WithVertexCount(n int) Option {
	return func(c *generatorConfig) {
		c.count = n
		c.countSet = true
	}
}

// WithWeightFn overrides the per-edge weight generator. The function receives
// the generator's (possibly nil) random source and applies only when the
// target graph is weighted. A nil fn is recorded as ErrOptionViolation.
// Complexity: O(1) time, O(1) space.
func WithWeightFn(fn WeightFn) Option {
	return func(c *generatorConfig) {
		if fn == nil {
			c.err = fmt.Errorf("WithWeightFn: nil weight fn: %w", ErrOptionViolation)
			return
		}
		c.weightFn = fn
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
// A negative weight is recorded as ErrOptionViolation (options never panic;
// the panic lives in the direct ConstantWeightFn constructor).
// Complexity: O(1).
func WithConstantWeight(w float64) Option {
	return func(c *generatorConfig) {
		if w < 0 {
			c.err = fmt.Errorf("WithConstantWeight: negative weight %g: %w", w, ErrOptionViolation)
			return
		}
		c.weightFn = ConstantWeightFn(w)
	}
}

// WithUniformWeight sets integer weights ∼ U[min,max] via UniformWeightFn.
// A malformed interval is recorded as ErrOptionViolation.
// Complexity: O(1).
func WithUniformWeight(min, max int) Option {
	return func(c *generatorConfig) {
		if min < 0 || max < min {
			c.err = fmt.Errorf("WithUniformWeight: require 0 ≤ min ≤ max, got min=%d, max=%d: %w",
				min, max, ErrOptionViolation)
			return
		}
		c.weightFn = UniformWeightFn(min, max)
	}
}
