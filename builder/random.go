// Package builder: seeded random parties.
//
// RNG policy: same seed ⇒ identical party, on every platform. seed == 0
// selects a stable default seed, never the clock, so the zero value stays
// reproducible. math/rand.Rand is not goroutine-safe; each Random call owns
// its generator.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pfad/party"
)

const methodRandom = "Random"

// defaultRNGSeed is the fixed seed substituted when callers pass seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Probability bounds for Random.
const (
	minProbability = 0.0
	maxProbability = 1.0
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random builds a party of n guests where every ordered pair (i, j), i ≠ j,
// is introduced independently with probability p. Pairs are drawn in
// ascending (knower, known) order from a generator seeded with seed, so the
// same (n, p, seed) triple always yields the same party. Random(n, 0, seed)
// coincides with Hermits(n); Random(n, 1, seed) with Complete(n).
//
// Whether the result has a celebrity clique depends on the draw; pair it
// with the searches rather than assuming one.
//
// Returns ErrTooFewGuests for n < 1, ErrInvalidProbability for p outside
// [0, 1]. Complexity: O(n²) draws.
func Random(n int, p float64, seed int64) (*party.Party, error) {
	if n < minGuests {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minGuests, ErrTooFewGuests)
	}
	if p < minProbability || p > maxProbability {
		return nil, fmt.Errorf("%s: p=%v outside [%v, %v]: %w",
			methodRandom, p, minProbability, maxProbability, ErrInvalidProbability)
	}

	pt := party.New()
	if err := invite(pt, methodRandom, n); err != nil {
		return nil, err
	}

	rng := rngFromSeed(seed)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if i == j {
				continue
			}
			// Draw for every ordered pair, even when p is 0 or 1, to keep
			// the stream position independent of p.
			if rng.Float64() >= p {
				continue
			}
			if err := pt.Introduce(party.ID(i), party.ID(j)); err != nil {
				return nil, fmt.Errorf("%s: introduce %d→%d: %w", methodRandom, i, j, err)
			}
		}
	}

	return pt, nil
}
