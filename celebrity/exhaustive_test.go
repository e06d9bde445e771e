package celebrity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pfad/builder"
	"github.com/katalvlaran/pfad/celebrity"
	"github.com/katalvlaran/pfad/party"
)

// TestFindCliqueExhaustive_MatchesFold cross-checks the subset scan against
// the elimination fold over a spread of party shapes, random draws included.
// Both searches must agree exactly; the exhaustive scan is the executable
// definition.
func TestFindCliqueExhaustive_MatchesFold(t *testing.T) {
	mk := func(p *party.Party, err error) *party.Party {
		t.Helper()
		require.NoError(t, err)
		return p
	}

	cases := []struct {
		name  string
		party *party.Party
	}{
		{"demo", builder.Demo()},
		{"ring_6", mk(builder.Ring(6))},
		{"complete_5", mk(builder.Complete(5))},
		{"hermits_4", mk(builder.Hermits(4))},
		{"planted_8_3", mk(builder.PlantedClique(8, 3))},
		{"random_sparse", mk(builder.Random(12, 0.15, 7))},
		{"random_dense", mk(builder.Random(10, 0.8, 99))},
		{"empty", party.New()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := celebrity.FindCliqueExhaustive(tc.party)
			require.NoError(t, err)
			got, err := celebrity.FindClique(tc.party)
			require.NoError(t, err)

			assert.Equal(t, want.Found, got.Found)
			assert.Equal(t, want.Members, got.Members)
		})
	}
}

func TestFindCliqueExhaustive_DemoParty(t *testing.T) {
	res, err := celebrity.FindCliqueExhaustive(builder.Demo())
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, ids(1, 2, 3), res.Members)
}

func TestFindCliqueExhaustive_TooLarge(t *testing.T) {
	p, err := builder.Hermits(63)
	require.NoError(t, err)

	_, err = celebrity.FindCliqueExhaustive(p)
	assert.ErrorIs(t, err, celebrity.ErrPartyTooLarge)
}

func TestFindCliqueExhaustive_AtTheMaskLimit(t *testing.T) {
	// 62 guests still fit the bitmask enumeration; a planted clique is found
	// long before the scan space matters
	p, err := builder.PlantedClique(62, 1)
	require.NoError(t, err)

	res, err := celebrity.FindCliqueExhaustive(p)
	require.NoError(t, err)
	assert.Equal(t, ids(1), res.Members)
}

func TestFindCliqueExhaustive_Canceled(t *testing.T) {
	// hermits have no clique, so the scan would visit every subset; the
	// pre-canceled context must stop it at the first periodic check instead
	p, err := builder.Hermits(30)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = celebrity.FindCliqueExhaustive(p, celebrity.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindCliqueExhaustive_NilParty(t *testing.T) {
	_, err := celebrity.FindCliqueExhaustive(nil)
	assert.ErrorIs(t, err, celebrity.ErrNilParty)
}
