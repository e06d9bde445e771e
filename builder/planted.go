// Package builder: parties with a planted celebrity clique.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pfad/party"
)

const methodPlanted = "PlantedClique"

// PlantedClique builds a party of n guests whose celebrity clique is exactly
// 1..k:
//
//   - members 1..k know each other mutually and nobody else;
//   - every fan k+1..n knows all of 1..k, so the members are known by the
//     whole party;
//   - each fan additionally knows the next fan (wrapping among the fans), so
//     fans are neither isolated nor qualify: a fan is known by exactly one
//     other fan, never by everybody.
//
// PlantedClique(n, n) coincides with Complete(n).
// Returns ErrTooFewGuests for n < 1, ErrBadCliqueSize for k outside 1..n.
// Complexity: O(k² + n·k) introductions.
func PlantedClique(n, k int) (*party.Party, error) {
	if n < minGuests {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPlanted, n, minGuests, ErrTooFewGuests)
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%s: k=%d outside 1..%d: %w", methodPlanted, k, n, ErrBadCliqueSize)
	}

	p := party.New()
	if err := invite(p, methodPlanted, n); err != nil {
		return nil, err
	}

	// 1) Members 1..k know each other; self pairs are implicit no-ops.
	for i := 1; i <= k; i++ {
		for j := 1; j <= k; j++ {
			if err := p.Introduce(party.ID(i), party.ID(j)); err != nil {
				return nil, fmt.Errorf("%s: introduce %d→%d: %w", methodPlanted, i, j, err)
			}
		}
	}

	// 2) Every fan knows every member.
	for i := k + 1; i <= n; i++ {
		for j := 1; j <= k; j++ {
			if err := p.Introduce(party.ID(i), party.ID(j)); err != nil {
				return nil, fmt.Errorf("%s: introduce %d→%d: %w", methodPlanted, i, j, err)
			}
		}
	}

	// 3) Each fan knows the next fan, wrapping from n back to k+1. With a
	// single fan the wrapped successor is the fan itself: a no-op.
	for i := k + 1; i <= n; i++ {
		next := i + 1
		if next > n {
			next = k + 1
		}
		if err := p.Introduce(party.ID(i), party.ID(next)); err != nil {
			return nil, fmt.Errorf("%s: introduce %d→%d: %w", methodPlanted, i, next, err)
		}
	}

	return p, nil
}
