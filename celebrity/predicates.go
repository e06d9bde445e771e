// Package celebrity: party-wide clique predicates.

package celebrity

import (
	"fmt"

	"github.com/katalvlaran/pfad/party"
)

// resolveMembers validates member ids against the snapshot and maps them to
// deduplicated snapshot indices plus a membership table indexed by snapshot
// position.
func resolveMembers(snap *party.Snapshot, members []party.ID) ([]int, []bool, error) {
	idx := make([]int, 0, len(members))
	inClique := make([]bool, snap.Len())
	for _, id := range members {
		i, ok := snap.Index(id)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %d", ErrUnknownGuest, id)
		}
		if inClique[i] {
			continue // duplicates collapse, set semantics
		}
		inClique[i] = true
		idx = append(idx, i)
	}

	return idx, inClique, nil
}

// IsClique reports whether members form a clique of p: every two members
// know each other. Reflexivity covers the diagonal, so the empty set and
// singletons are cliques. Duplicate ids collapse.
//
// Returns ErrNilParty for nil input, ErrUnknownGuest when a member is not on
// the guest list.
// Complexity: O(k²) relation probes for k members.
func IsClique(p *party.Party, members []party.ID) (bool, error) {
	if p == nil {
		return false, ErrNilParty
	}

	snap := p.Snapshot()
	idx, _, err := resolveMembers(snap, members)
	if err != nil {
		return false, err
	}

	for _, a := range idx {
		for _, b := range idx {
			if !snap.KnowsAt(a, b) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsCelebrityClique reports whether members form a celebrity clique of p:
// every guest knows every member, and a member knowing a guest forces that
// guest into the set. Both conditions quantify over the guest list, so a
// member knowing an outsider does not disqualify the set; introductions to
// outsiders never make it into a Snapshot. The empty set satisfies the
// predicate vacuously; the searches skip it.
//
// Every celebrity clique is a clique: members are known by everybody at the
// party, each other included.
//
// Returns ErrNilParty for nil input, ErrUnknownGuest when a member is not on
// the guest list.
// Complexity: O(n·k) relation probes for n guests and k members.
func IsCelebrityClique(p *party.Party, members []party.ID) (bool, error) {
	if p == nil {
		return false, ErrNilParty
	}

	snap := p.Snapshot()
	idx, inClique, err := resolveMembers(snap, members)
	if err != nil {
		return false, err
	}

	f := &finder{snap: snap}

	return f.isCelebrityCliqueAt(idx, inClique), nil
}
