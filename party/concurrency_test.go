// Package party_test verifies thread-safety of party.Party under concurrent
// operations.
package party_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pfad/party"
)

// TestConcurrentIntroduce ensures that concurrent Introduce calls are safe
// and every introduction lands.
func TestConcurrentIntroduce(t *testing.T) {
	p := party.New()
	const num = 200 // number of concurrent introductions
	var wg sync.WaitGroup
	wg.Add(num)

	// Launch num goroutines introducing guest 0 to guests 1..num
	for i := 0; i < num; i++ {
		go func(id int64) {
			defer wg.Done() // signal completion
			require.NoError(t, p.Introduce(0, party.ID(id)))
		}(int64(i + 1))
	}
	wg.Wait() // wait for all introductions to finish

	acq, err := p.Acquaintances(0)
	require.NoError(t, err)
	require.Len(t, acq, num, "expected %d acquaintances", num)
}

// TestConcurrentInviteAndLeave mixes Invite and Leave calls to verify no
// races or panics occur under concurrent modification.
func TestConcurrentInviteAndLeave(t *testing.T) {
	p := party.New()
	// Pre-add an anchor guest so Leave always has candidates
	require.NoError(t, p.Invite(0))

	const rounds = 100 // number of invite/leave rounds
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		// Concurrent invitations
		go func(id int64) {
			defer wg.Done()
			_ = p.Invite(party.ID(id))
		}(int64(i + 1))

		// Concurrent departures over whatever is currently on the list
		go func() {
			defer wg.Done()
			for _, id := range p.Guests() {
				if id == 0 {
					continue
				}
				_ = p.Leave(id)
			}
		}()
	}
	wg.Wait() // wait for all operations to complete
	// Party remains consistent and race-free if no panic
	require.True(t, p.HasGuest(0))
}

// TestConcurrentSnapshotAndMutate validates concurrent reads via Snapshot
// and Stats while writers keep mutating the relation.
func TestConcurrentSnapshotAndMutate(t *testing.T) {
	p := party.New()
	require.NoError(t, p.InviteAll(1, 2, 3, 4, 5))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)

	for i := 0; i < rounds; i++ {
		go func(k int64) {
			defer wg.Done()
			_ = p.Introduce(party.ID(k%5+1), party.ID((k+1)%5+1))
		}(int64(i))

		go func() {
			defer wg.Done()
			snap := p.Snapshot()
			// every captured row must be internally consistent
			for j := 0; j < snap.Len(); j++ {
				require.True(t, snap.KnowsAt(j, j))
			}
		}()

		go func() {
			defer wg.Done()
			st := p.Stats()
			require.GreaterOrEqual(t, st.Guests, 5)
		}()
	}
	wg.Wait()
}
