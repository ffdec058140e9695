// SPDX-License-Identifier: MIT
// Package: treegen/prufer
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • generatorConfig is the single source of truth for all construction knobs.
//   • Defaults are deterministic and documented; no globals besides DefaultRand.
//   • newGeneratorConfig applies options in-order (later overrides earlier
//     within the same knob); the first recorded option error wins and
//     short-circuits construction.
//   • Source precedence is positional-independent: an explicit WithRand beats
//     a WithSeed wherever it appears in the option list, because seeds are
//     stored raw and resolved only at construction time.
//
// Deterministic defaults (no surprises):
//   • source   = none  (resolved per mode: DefaultRand for NewRandom,
//                       unset for NewFromSequence)
//   • count    = unset (derived as len(seq)+2 on the explicit path)
//   • weightFn = DefaultWeightFn (constant 1, weighted targets only)
//
// AI-Hints:
//   • Set WithSeed for reproducible random-tree fixtures.
//   • The config travels by value into the generator; callers cannot mutate
//     a constructed generator through retained option closures.

package prufer

import "math/rand"

// generatorConfig aggregates all knobs used by the constructors.
// It is resolved once per construction and then discarded.
type generatorConfig struct {
	// Explicit random source; valid only when rngSet.
	rng    Rand
	rngSet bool

	// Raw seed; valid only when seedSet. Materialized into a source lazily
	// so an explicit WithRand always wins the precedence race.
	seed    int64
	seedSet bool

	// Pinned vertex count for explicit sequences; valid only when countSet.
	count    int
	countSet bool

	// Weight generator for edges; used only for weighted targets.
	weightFn WeightFn

	// First option violation recorded during application.
	err error
}

// newGeneratorConfig constructs a config with deterministic defaults and
// applies all options in order. Later options override earlier ones within
// the same knob, except that the first recorded error is preserved.
// Complexity: O(len(opts)) time, O(1) space.
func newGeneratorConfig(opts ...Option) generatorConfig {
	// Start with strict, deterministic defaults.
	cfg := generatorConfig{
		weightFn: DefaultWeightFn,
	}

	// Apply options in the given order; earliest error survives.
	for _, opt := range opts {
		firstErr := cfg.err
		opt(&cfg)
		if firstErr != nil {
			// Keep the earliest violation for stable diagnostics.
			cfg.err = firstErr
		}
	}

	return cfg
}

// source resolves the sampling source with the documented precedence:
// WithRand (explicit) > WithSeed (derived) > none.
// The boolean reports whether any source option was supplied at all; the
// mode-specific fallback (DefaultRand or nil) is the caller's decision.
// Complexity: O(1) time, O(1) space.
func (c *generatorConfig) source() (Rand, bool) {
	if c.rngSet {
		return c.rng, true
	}
	if c.seedSet {
		return rand.New(rand.NewSource(c.seed)), true
	}

	return nil, false
}
