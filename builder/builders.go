// Package builder: fixed-topology party constructors.
//
// Contract shared by every constructor in this file:
//   - n ≥ 1 (else ErrTooFewGuests), guests receive ids 1..n.
//   - Guests are invited in ascending order, introductions are emitted in
//     ascending (knower, known) order, so repeated calls build identical
//     parties.
//   - Only sentinel errors are returned; constructors never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pfad/party"
)

// File-local method tags for error context and the shared parameter minimum.
const (
	methodComplete = "Complete"
	methodHermits  = "Hermits"
	methodRing     = "Ring"

	minGuests = 1
)

// invite adds guests 1..n in ascending order.
func invite(p *party.Party, method string, n int) error {
	for i := 1; i <= n; i++ {
		if err := p.Invite(party.ID(i)); err != nil {
			return fmt.Errorf("%s: invite %d: %w", method, i, err)
		}
	}

	return nil
}

// Complete builds the party where everybody knows everybody else.
// The whole guest list is its own celebrity clique: each guest is known by
// all and knows only party members.
// Returns ErrTooFewGuests for n < 1.
// Complexity: O(n²) introductions.
func Complete(n int) (*party.Party, error) {
	if n < minGuests {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minGuests, ErrTooFewGuests)
	}

	p := party.New()
	if err := invite(p, methodComplete, n); err != nil {
		return nil, err
	}
	// Every ordered pair (i, j), i ≠ j, in ascending order.
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if i == j {
				continue
			}
			if err := p.Introduce(party.ID(i), party.ID(j)); err != nil {
				return nil, fmt.Errorf("%s: introduce %d→%d: %w", methodComplete, i, j, err)
			}
		}
	}

	return p, nil
}

// Hermits builds the party where nobody knows anybody.
// No celebrity clique exists for n ≥ 2 (no guest is known by the others);
// the lone guest of a one-person party is their own clique.
// Returns ErrTooFewGuests for n < 1.
// Complexity: O(n).
func Hermits(n int) (*party.Party, error) {
	if n < minGuests {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodHermits, n, minGuests, ErrTooFewGuests)
	}

	p := party.New()
	if err := invite(p, methodHermits, n); err != nil {
		return nil, err
	}

	return p, nil
}

// Ring builds the party where guest i knows only guest i+1, wrapping from n
// back to 1. No celebrity clique exists for n ≥ 2: each guest is known by
// exactly one other. Ring(1) degenerates to a single hermit, because the
// wrapped successor of 1 is 1 itself and self-introductions are no-ops.
// Returns ErrTooFewGuests for n < 1.
// Complexity: O(n) introductions.
func Ring(n int) (*party.Party, error) {
	if n < minGuests {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minGuests, ErrTooFewGuests)
	}

	p := party.New()
	if err := invite(p, methodRing, n); err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		next := i%n + 1
		if err := p.Introduce(party.ID(i), party.ID(next)); err != nil {
			return nil, fmt.Errorf("%s: introduce %d→%d: %w", methodRing, i, next, err)
		}
	}

	return p, nil
}
