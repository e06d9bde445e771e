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

func TestFindCelebrity_Found(t *testing.T) {
	res, err := celebrity.FindCelebrity(buildStar(t))
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, ids(3), res.Members)
}

func TestFindCelebrity_NoneWhenCliqueIsBigger(t *testing.T) {
	// the demo party has the clique {1,2,3}; its members know each other, so
	// none of them is a single celebrity
	res, err := celebrity.FindCelebrity(builder.Demo())
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Nil(t, res.Members)
}

func TestFindCelebrity_SingleGuest(t *testing.T) {
	p := party.New()
	require.NoError(t, p.Invite(9))

	res, err := celebrity.FindCelebrity(p)
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, ids(9), res.Members)
}

func TestFindCelebrity_EmptyParty(t *testing.T) {
	res, err := celebrity.FindCelebrity(party.New())
	require.NoError(t, err)
	assert.False(t, res.Found)
}

// TestFindCelebrity_MatchesFindClique pins the equivalence: a single
// celebrity exists exactly when the celebrity clique is that one singleton.
func TestFindCelebrity_MatchesFindClique(t *testing.T) {
	mk := func(p *party.Party, err error) *party.Party {
		t.Helper()
		require.NoError(t, err)
		return p
	}

	cases := []struct {
		name  string
		party *party.Party
	}{
		{"star", buildStar(t)},
		{"demo", builder.Demo()},
		{"complete_3", mk(builder.Complete(3))},
		{"hermits_5", mk(builder.Hermits(5))},
		{"planted_9_1", mk(builder.PlantedClique(9, 1))},
		{"planted_9_2", mk(builder.PlantedClique(9, 2))},
		{"random", mk(builder.Random(14, 0.25, 3))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			single, err := celebrity.FindCelebrity(tc.party)
			require.NoError(t, err)
			clique, err := celebrity.FindClique(tc.party)
			require.NoError(t, err)

			wantSingle := clique.Found && len(clique.Members) == 1
			assert.Equal(t, wantSingle, single.Found)
			if wantSingle {
				assert.Equal(t, clique.Members, single.Members)
			}
		})
	}
}

func TestFindCelebrity_ProbeBudget(t *testing.T) {
	// one probe per elimination step plus one verification sweep keeps the
	// search linear; n=200 hermits reject the survivor almost immediately
	const n = 200
	p, err := builder.Hermits(n)
	require.NoError(t, err)

	res, err := celebrity.FindCelebrity(p)
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.LessOrEqual(t, res.Probes, 3*n)
}

func TestFindCelebrity_NilParty(t *testing.T) {
	_, err := celebrity.FindCelebrity(nil)
	assert.ErrorIs(t, err, celebrity.ErrNilParty)
}

func TestFindCelebrity_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := celebrity.FindCelebrity(builder.Demo(), celebrity.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindCelebrity_OnCandidate(t *testing.T) {
	var adopted [][]party.ID
	res, err := celebrity.FindCelebrity(buildStar(t), celebrity.WithOnCandidate(func(m []party.ID) {
		adopted = append(adopted, m)
	}))
	require.NoError(t, err)

	// guest 1 opens; guest 2 drops out because the candidate does not know
	// them; guest 3 takes over because the candidate does
	require.Equal(t, [][]party.ID{ids(1), ids(3)}, adopted)
	assert.Equal(t, ids(3), res.Members)
}
