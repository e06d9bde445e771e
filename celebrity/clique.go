// Package celebrity: elimination-fold search for the celebrity clique,
// plus the finder state shared by every search in the package.

package celebrity

import (
	"sort"

	"github.com/katalvlaran/pfad/party"
)

// finder bundles the captured snapshot with per-search state. All searches
// run on an immutable Snapshot, never on the live Party, so a concurrent
// Introduce cannot skew a half-finished scan.
type finder struct {
	snap   *party.Snapshot
	opts   Options
	probes int
}

// newFinder validates the party, resolves the options and captures the
// snapshot the search will run on.
func newFinder(p *party.Party, opts []Option) (*finder, error) {
	if p == nil {
		return nil, ErrNilParty
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &finder{snap: p.Snapshot(), opts: o}, nil
}

// knows probes the captured relation and counts the lookup.
func (f *finder) knows(i, j int) bool {
	f.probes++

	return f.snap.KnowsAt(i, j)
}

// canceled reports the context error once the search deadline passed.
func (f *finder) canceled() error {
	select {
	case <-f.opts.Ctx.Done():
		return f.opts.Ctx.Err()
	default:
		return nil
	}
}

// adopt reports a newly adopted candidate clique to the OnCandidate hook.
// The ids are materialized only when a hook is registered.
func (f *finder) adopt(members []int) {
	if f.opts.OnCandidate == nil {
		return
	}
	f.opts.OnCandidate(f.idsOf(members))
}

// idsOf maps snapshot indices to guest ids, ascending.
func (f *finder) idsOf(members []int) []party.ID {
	ids := make([]party.ID, len(members))
	for k, i := range members {
		ids[k] = f.snap.IDAt(i)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	return ids
}

// isCelebrityCliqueAt replays the party-wide predicate over the snapshot:
// every guest knows every member, and a member knowing a guest forces that
// guest into the clique. inClique must mirror members, indexed by snapshot
// position.
func (f *finder) isCelebrityCliqueAt(members []int, inClique []bool) bool {
	n := f.snap.Len()
	for someone := 0; someone < n; someone++ {
		for _, c := range members {
			if !f.knows(someone, c) {
				return false
			}
			if f.knows(c, someone) && !inClique[someone] {
				return false
			}
		}
	}

	return true
}

// finish verifies the candidate member set and assembles the Result.
// A failed verification is the normal "no celebrity clique" outcome.
func (f *finder) finish(members []int) (*Result, error) {
	if len(members) == 0 {
		return &Result{Probes: f.probes}, nil
	}

	inClique := make([]bool, f.snap.Len())
	for _, i := range members {
		inClique[i] = true
	}
	if !f.isCelebrityCliqueAt(members, inClique) {
		return &Result{Probes: f.probes}, nil
	}

	return &Result{Members: f.idsOf(members), Found: true, Probes: f.probes}, nil
}

// FindClique locates the celebrity clique of p with an elimination fold over
// the guest list followed by one verification pass.
//
// The fold keeps a working clique and classifies each guest against its head
// (the most recently joined member):
//
//  1. working clique empty     → the guest starts a new clique
//  2. guest does not know head → the working clique is discarded, restart
//  3. head does not know guest → the guest is a mere fan, skip
//  4. mutual knowledge         → the guest joins as the new head
//
// The fold is guaranteed to produce the celebrity clique only when one
// exists, so the survivor is verified against the whole party before it is
// returned. Probing the relation twice per guest during the fold and twice
// per guest-member pair during verification keeps the search at O(n²) probes
// worst-case with O(n) extra space, against O(2ⁿ) subsets for the exhaustive
// scan.
//
// "No celebrity clique" is a normal result, never an error. Returns
// ErrNilParty for nil input and the context error on cancellation (checked
// once per guest).
func FindClique(p *party.Party, opts ...Option) (*Result, error) {
	f, err := newFinder(p, opts)
	if err != nil {
		return nil, err
	}

	n := f.snap.Len()
	clique := make([]int, 0, n) // working clique, head last
	for person := 0; person < n; person++ {
		if err = f.canceled(); err != nil {
			return nil, err
		}

		// 1) the first guest starts the clique
		if len(clique) == 0 {
			clique = append(clique, person)
			f.adopt(clique)
			continue
		}

		head := clique[len(clique)-1]
		switch {
		case !f.knows(person, head):
			// 2) the head is unknown to person, restart with person
			clique = append(clique[:0], person)
			f.adopt(clique)
		case !f.knows(head, person):
			// 3) person is a fan of the head, the clique stands
		default:
			// 4) mutual knowledge, person joins as the new head
			clique = append(clique, person)
			f.adopt(clique)
		}
	}

	return f.finish(clique)
}
