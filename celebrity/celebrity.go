// Package celebrity: the classic single-celebrity puzzle.

package celebrity

import (
	"github.com/katalvlaran/pfad/party"
)

// FindCelebrity solves the classic variant of the puzzle: find the one guest
// who is known by everybody yet knows nobody else, i.e. the celebrity clique
// of size one. Result.Members holds zero or one id.
//
// One elimination pass keeps a single surviving candidate: comparing the
// candidate with the next guest, whoever knows the other is discarded (the
// candidate for knowing somebody, the guest for being unknown to the
// candidate). One probe settles each comparison, so n-1 probes leave exactly
// one survivor, and a verification pass confirms or rejects it. "No
// celebrity" is a normal result, never an error.
//
// FindCelebrity succeeds exactly when FindClique returns the matching
// singleton; parties whose celebrity clique has two or more members have no
// single celebrity, because clique members know each other.
//
// Returns ErrNilParty for nil input and the context error on cancellation
// (checked once per guest).
// Complexity: O(n) relation probes, O(1) extra space.
func FindCelebrity(p *party.Party, opts ...Option) (*Result, error) {
	f, err := newFinder(p, opts)
	if err != nil {
		return nil, err
	}

	n := f.snap.Len()
	if n == 0 {
		return &Result{}, nil
	}

	// 1) Elimination pass: one probe discards one of the two contenders.
	cand := 0
	f.adopt([]int{cand})
	for person := 1; person < n; person++ {
		if err = f.canceled(); err != nil {
			return nil, err
		}
		if f.knows(cand, person) {
			// the candidate knows somebody and is out; person survives
			cand = person
			f.adopt([]int{cand})
		}
		// otherwise person is unknown to the candidate and is out
	}

	// 2) Verification pass over the whole party.
	return f.finish([]int{cand})
}
