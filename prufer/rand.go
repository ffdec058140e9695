// Package prufer - random source plumbing for stochastic construction.
//
// This file centralizes the randomness contract for the package.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequences, hence identical trees.
//   - Encapsulation: a single Rand interface; no time-based sources hidden anywhere.
//   - Explicitness: the process-wide default is a named, documented value
//     (DefaultRand), overridable per generator via WithRand/WithSeed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share an injected
//     *rand.Rand across goroutines.
//   - DefaultRand delegates to the mutex-protected global math/rand stream
//     and is safe for concurrent use.
package prufer

import "math/rand"

// Rand is the minimal source of randomness the generator needs.
// Intn must return a uniform int in [0, n); it is satisfied by *math/rand.Rand.
type Rand interface {
	Intn(n int) int
}

// DefaultRand is the process-wide random source used by NewRandom when no
// WithRand/WithSeed option is supplied. It draws from the global math/rand
// stream, so runs are not reproducible unless the global source is seeded.
var DefaultRand Rand = globalRand{}

// globalRand adapts the locked global math/rand stream to the Rand interface.
type globalRand struct{}

// Intn draws from the global source.
func (globalRand) Intn(n int) int { return rand.Intn(n) }
