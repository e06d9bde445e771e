// Package party: thread-safe roster and introduction management.
//
// All operations take the narrowest lock that covers their data: roster
// methods use muGuests, introduction methods use muIntro, and the few
// operations that need both (Leave, Clone, Clear, Snapshot) acquire them in
// the fixed order muGuests → muIntro.

package party

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pfad/sets"
)

// Invite adds id to the guest list.
// Inviting someone twice is a no-op (idempotent).
// Returns ErrInvalidID if id is negative.
// Complexity: O(1) amortized.
func (p *Party) Invite(id ID) error {
	// Validate input: negative IDs are not allowed
	if id < 0 {
		return ErrInvalidID
	}
	// Acquire write lock on the roster only
	p.muGuests.Lock()
	defer p.muGuests.Unlock()

	p.guests.Add(id)

	return nil
}

// InviteAll invites every id in order, stopping at the first failure.
// The returned error wraps ErrInvalidID and names the offending id.
// Complexity: O(len(ids)) amortized.
func (p *Party) InviteAll(ids ...ID) error {
	for _, id := range ids {
		if err := p.Invite(id); err != nil {
			return fmt.Errorf("invite %d: %w", id, err)
		}
	}

	return nil
}

// HasGuest reports whether id is on the guest list.
// Negative IDs are considered absent.
// Complexity: O(1).
func (p *Party) HasGuest(id ID) bool {
	if id < 0 {
		return false
	}
	p.muGuests.RLock()
	defer p.muGuests.RUnlock()

	return p.guests.Contains(id)
}

// Leave removes id from the guest list together with every introduction the
// guest received. Introductions pointing AT the departed guest are kept:
// the remaining guests now reference an outsider, which snapshots and the
// predicates built on them ignore.
// Returns ErrInvalidID for negative ids, ErrPersonNotFound if id was never
// invited.
// Complexity: O(1) amortized (the departed guest's bucket is dropped whole).
func (p *Party) Leave(id ID) error {
	// 1) Validate input
	if id < 0 {
		return ErrInvalidID
	}
	// 2) Lock roster and introductions to keep both views consistent
	p.muGuests.Lock()
	defer p.muGuests.Unlock()
	p.muIntro.Lock()
	defer p.muIntro.Unlock()

	// 3) Verify presence
	if !p.guests.Contains(id) {
		return fmt.Errorf("%w: %d", ErrPersonNotFound, id)
	}
	// 4) Drop the guest and their outgoing introductions
	p.guests.Delete(id)
	delete(p.knows, id)

	return nil
}

// Introduce records that knower knows known.
// Self-introductions are silently ignored: the relation is reflexive by
// definition, so knowing yourself carries no information. The known side may
// be an outsider (someone never invited); fans may well know people who are
// not at the party.
//
// On a relaxed guest list (the default) an unknown knower is invited on the
// spot, mirroring how edges auto-add their endpoints in adjacency stores.
// With WithStrictGuestList the call fails with ErrPersonNotFound instead.
//
// Returns ErrInvalidID if either id is negative.
// Complexity: O(1) amortized.
func (p *Party) Introduce(knower, known ID) error {
	// 1) Input validation
	if knower < 0 || known < 0 {
		return ErrInvalidID
	}
	// 2) Reflexive pairs carry no information
	if knower == known {
		return nil
	}
	// 3) Roster policy for the knower
	p.muGuests.Lock()
	if !p.guests.Contains(knower) {
		if p.strict {
			p.muGuests.Unlock()
			return fmt.Errorf("%w: knower %d is not on the guest list", ErrPersonNotFound, knower)
		}
		p.guests.Add(knower)
	}
	p.muGuests.Unlock()

	// 4) Record the acquaintance
	p.muIntro.Lock()
	defer p.muIntro.Unlock()

	bucket, ok := p.knows[knower]
	if !ok {
		bucket = sets.New[ID]()
		p.knows[knower] = bucket
	}
	bucket.Add(known)

	return nil
}

// Forget removes a previously recorded introduction.
// The reflexive pair (id, id) is never stored and therefore cannot be
// forgotten.
// Returns ErrInvalidID for negative ids, ErrAcquaintanceNotFound if the pair
// was never recorded.
// Complexity: O(1) amortized.
func (p *Party) Forget(knower, known ID) error {
	if knower < 0 || known < 0 {
		return ErrInvalidID
	}
	p.muIntro.Lock()
	defer p.muIntro.Unlock()

	bucket, ok := p.knows[knower]
	if !ok || !bucket.Contains(known) {
		return fmt.Errorf("%w: %d does not know %d", ErrAcquaintanceNotFound, knower, known)
	}
	bucket.Delete(known)
	// Drop empty buckets so the map mirrors the live relation exactly
	if bucket.Len() == 0 {
		delete(p.knows, knower)
	}

	return nil
}

// Knows reports whether a knows b.
// The relation is reflexive: Knows(x, x) is true for every non-negative x,
// invited or not. Beyond that, only explicitly recorded introductions count;
// negative ids know nothing and are known by nobody.
// Complexity: O(1).
func (p *Party) Knows(a, b ID) bool {
	if a < 0 || b < 0 {
		return false
	}
	if a == b {
		return true
	}
	p.muIntro.RLock()
	defer p.muIntro.RUnlock()

	bucket, ok := p.knows[a]

	return ok && bucket.Contains(b)
}

// Guests returns the guest list sorted ascending.
// Sorting keeps enumeration deterministic for algorithms and rendering.
// Complexity: O(V log V).
func (p *Party) Guests() []ID {
	p.muGuests.RLock()
	out := p.guests.Elems()
	p.muGuests.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// GuestCount returns the number of people on the guest list.
// Complexity: O(1).
func (p *Party) GuestCount() int {
	p.muGuests.RLock()
	defer p.muGuests.RUnlock()

	return p.guests.Len()
}

// Acquaintances returns the ids known by id, sorted ascending. The result
// may include outsiders. A guest with no recorded introductions gets an
// empty, non-nil slice.
// Returns ErrInvalidID for negative ids, ErrPersonNotFound if id is not a
// guest.
// Complexity: O(deg(id) log deg(id)).
func (p *Party) Acquaintances(id ID) ([]ID, error) {
	// 1) Validate input
	if id < 0 {
		return nil, ErrInvalidID
	}
	// 2) Verify roster membership
	p.muGuests.RLock()
	invited := p.guests.Contains(id)
	p.muGuests.RUnlock()
	if !invited {
		return nil, fmt.Errorf("%w: %d", ErrPersonNotFound, id)
	}
	// 3) Copy the bucket under the introduction lock
	p.muIntro.RLock()
	out := []ID{}
	if bucket, ok := p.knows[id]; ok {
		out = bucket.Elems()
	}
	p.muIntro.RUnlock()

	// 4) Sort for deterministic enumeration
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Clone returns a deep copy of the party: roster, introduction buckets and
// the strictness flag. Mutating the clone never affects the original.
// Complexity: O(V + E).
func (p *Party) Clone() *Party {
	p.muGuests.RLock()
	defer p.muGuests.RUnlock()
	p.muIntro.RLock()
	defer p.muIntro.RUnlock()

	c := &Party{
		strict: p.strict,
		guests: p.guests.Clone(),
		knows:  make(map[ID]sets.Set[ID], len(p.knows)),
	}
	for id, bucket := range p.knows {
		c.knows[id] = bucket.Clone()
	}

	return c
}

// Clear empties the roster and the relation in place, keeping the
// strictness flag. Complexity: O(1) plus garbage collection.
func (p *Party) Clear() {
	p.muGuests.Lock()
	defer p.muGuests.Unlock()
	p.muIntro.Lock()
	defer p.muIntro.Unlock()

	p.guests = sets.New[ID]()
	p.knows = make(map[ID]sets.Set[ID])
}

// Stats returns summary counters for the party.
// The roster and the relation are read under their own locks in two phases,
// so each counter is internally consistent; see PartyStats for the caveat.
// Complexity: O(V + E).
func (p *Party) Stats() PartyStats {
	st := PartyStats{StrictGuestList: p.strict}

	// Phase 1: roster
	p.muGuests.RLock()
	guests := p.guests.Clone()
	p.muGuests.RUnlock()
	st.Guests = guests.Len()

	// Phase 2: relation
	p.muIntro.RLock()
	known := sets.New[ID]()
	for _, bucket := range p.knows {
		st.Introductions += bucket.Len()
		known = sets.Union(known, bucket)
	}
	p.muIntro.RUnlock()

	// Everyone referenced but never invited is an outsider
	st.Outsiders = sets.Difference(known, guests).Len()

	return st
}
