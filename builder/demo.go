// Package builder: the canonical chapter-9 demo party.

package builder

import "github.com/katalvlaran/pfad/party"

// demoAcquaintances is the party from the book's worked example, knower by
// knower. Two quirks are preserved on purpose: guests 1 and 5 list
// themselves (self-introductions are no-ops, mirroring how the puzzle strips
// them), and guest 4 knows 42, who never shows up.
var demoAcquaintances = []struct {
	knower party.ID
	knows  []party.ID
}{
	{1, []party.ID{1, 2, 3}},
	{2, []party.ID{1, 3}},
	{3, []party.ID{1, 2}},
	{4, []party.ID{1, 2, 3, 42}},
	{5, []party.ID{1, 2, 3, 4, 5}},
	{6, []party.ID{1, 2, 3, 7}},
	{7, []party.ID{1, 2, 3, 5, 6}},
}

// Demo builds the seven-guest party used throughout the documentation and
// the CLI: guests 1..7, where 1, 2 and 3 know only each other while 4..7
// admire all three of them. Its celebrity clique is {1, 2, 3}; the outsider
// 42 is referenced but never invited.
// Complexity: O(1), the party is fixed.
func Demo() *party.Party {
	p := party.New()
	for _, g := range demoAcquaintances {
		for _, known := range g.knows {
			// Relaxed roster, non-negative ids: Introduce cannot fail here.
			_ = p.Introduce(g.knower, known)
		}
	}

	return p
}
