// Package party: immutable matrix view consumed by the clique algorithms.

package party

import "sort"

// Snapshot is a point-in-time, read-only view of a Party: the guest roster
// sorted ascending plus a dense boolean acquaintance matrix restricted to
// guests. Introductions that point at outsiders are dropped during capture,
// so every index addresses a guest.
//
// A Snapshot never changes after capture and is safe to share between
// goroutines without locking.
type Snapshot struct {
	ids   []ID       // guests, ascending
	index map[ID]int // guest id → row/column
	knows [][]bool   // knows[i][j] == true iff ids[i] knows ids[j]
}

// Snapshot captures the current roster and relation in one step.
// Both read locks are held for the duration so the view is consistent:
// no Introduce or Leave can interleave with the copy.
// The diagonal is always true, materializing reflexivity.
// Complexity: O(V² + E).
func (p *Party) Snapshot() *Snapshot {
	p.muGuests.RLock()
	defer p.muGuests.RUnlock()
	p.muIntro.RLock()
	defer p.muIntro.RUnlock()

	// 1) Sorted roster
	ids := p.guests.Elems()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// 2) id → index
	index := make(map[ID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// 3) Dense matrix; outsider targets have no column and vanish here
	knows := make([][]bool, len(ids))
	for i, id := range ids {
		row := make([]bool, len(ids))
		row[i] = true // reflexive
		if bucket, ok := p.knows[id]; ok {
			for _, target := range bucket.Elems() {
				if j, member := index[target]; member {
					row[j] = true
				}
			}
		}
		knows[i] = row
	}

	return &Snapshot{ids: ids, index: index, knows: knows}
}

// Len returns the number of guests captured by the snapshot.
func (s *Snapshot) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the captured roster in ascending order.
func (s *Snapshot) IDs() []ID {
	out := make([]ID, len(s.ids))
	copy(out, s.ids)

	return out
}

// IDAt returns the guest id at index i. i must be in [0, Len()).
func (s *Snapshot) IDAt(i int) ID {
	return s.ids[i]
}

// Index returns the matrix index of id and whether id was a guest at
// capture time.
func (s *Snapshot) Index(id ID) (int, bool) {
	i, ok := s.index[id]

	return i, ok
}

// Knows reports whether a knew b at capture time, by id.
// Reflexive pairs are always true. Unlike Party.Knows, introductions whose
// target was an outsider report false here: the snapshot only sees guests.
func (s *Snapshot) Knows(a, b ID) bool {
	if a < 0 || b < 0 {
		return false
	}
	if a == b {
		return true
	}
	i, ok := s.index[a]
	if !ok {
		return false
	}
	j, ok := s.index[b]
	if !ok {
		return false
	}

	return s.knows[i][j]
}

// KnowsAt reports whether the guest at index i knew the guest at index j.
// Both indices must be in [0, Len()). This is the hot-path accessor used by
// the search loops; it performs no id translation.
func (s *Snapshot) KnowsAt(i, j int) bool {
	return s.knows[i][j]
}
