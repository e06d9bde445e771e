// Package celebrity: exhaustive reference search over the subset lattice.

package celebrity

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/pfad/party"
)

// maxExhaustiveGuests bounds the subset scan to masks that fit a uint64.
const maxExhaustiveGuests = 62

// cancelEvery is the number of subsets tested between context checks.
const cancelEvery = 1024

// FindCliqueExhaustive locates the celebrity clique by testing every
// non-empty subset of the guest list against the celebrity-clique predicate.
// It is the reference implementation the elimination fold is cross-checked
// against. At most one non-empty celebrity clique exists (two cliques force
// mutual containment, because every guest knows every member of either), so
// the subsets can be enumerated in any order; the scan walks bitmasks
// 1..2ⁿ-1 ascending and the empty subset, which satisfies the predicate
// vacuously, is skipped.
//
// "No celebrity clique" is a normal result, never an error. Returns
// ErrNilParty for nil input, ErrPartyTooLarge beyond 62 guests, and the
// context error on cancellation (checked every 1024 subsets).
// Complexity: O(2ⁿ·n²) relation probes worst-case, O(n) space.
func FindCliqueExhaustive(p *party.Party, opts ...Option) (*Result, error) {
	f, err := newFinder(p, opts)
	if err != nil {
		return nil, err
	}

	n := f.snap.Len()
	if n > maxExhaustiveGuests {
		return nil, fmt.Errorf("%w: %d guests (max %d)", ErrPartyTooLarge, n, maxExhaustiveGuests)
	}

	for mask, total := uint64(1), uint64(1)<<uint(n); mask < total; mask++ {
		if mask%cancelEvery == 0 {
			if err = f.canceled(); err != nil {
				return nil, err
			}
		}
		if !f.isCelebrityCliqueMask(mask) {
			continue
		}

		members := maskToIndices(mask)
		f.adopt(members)

		return &Result{Members: f.idsOf(members), Found: true, Probes: f.probes}, nil
	}

	return &Result{Probes: f.probes}, nil
}

// isCelebrityCliqueMask is isCelebrityCliqueAt over a member bitmask,
// allocation-free for the hot subset scan.
func (f *finder) isCelebrityCliqueMask(mask uint64) bool {
	n := f.snap.Len()
	for someone := 0; someone < n; someone++ {
		for rest := mask; rest != 0; rest &= rest - 1 {
			c := bits.TrailingZeros64(rest)
			if !f.knows(someone, c) {
				return false
			}
			if f.knows(c, someone) && mask&(1<<uint(someone)) == 0 {
				return false
			}
		}
	}

	return true
}

// maskToIndices expands a member bitmask into ascending snapshot indices.
func maskToIndices(mask uint64) []int {
	members := make([]int, 0, bits.OnesCount64(mask))
	for rest := mask; rest != 0; rest &= rest - 1 {
		members = append(members, bits.TrailingZeros64(rest))
	}

	return members
}
