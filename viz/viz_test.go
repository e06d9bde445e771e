package viz_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pfad/builder"
	"github.com/katalvlaran/pfad/party"
	"github.com/katalvlaran/pfad/viz"
)

// buildTrio returns guests 1, 2, 3 where 1 and 2 know each other, 3 knows 1
// and the outsider 42.
func buildTrio(t *testing.T) *party.Party {
	t.Helper()
	p := party.New()
	for _, pr := range [][2]party.ID{{1, 2}, {2, 1}, {3, 1}, {3, 42}} {
		require.NoError(t, p.Introduce(pr[0], pr[1]))
	}
	return p
}

func TestDOT_Golden(t *testing.T) {
	out, err := viz.DOT(buildTrio(t))
	require.NoError(t, err)

	want := `digraph party {
    rankdir=LR;
    node [shape=circle, style=filled, fillcolor="white"];

    1;
    2;
    3;

    1 -> 2;
    2 -> 1;
    3 -> 1;
}
`
	assert.Equal(t, want, out)
}

func TestDOT_HighlightAndDirection(t *testing.T) {
	out, err := viz.DOT(buildTrio(t),
		viz.WithDirection(viz.DirectionTB),
		viz.WithHighlight([]party.ID{1, 2}))
	require.NoError(t, err)

	want := `digraph party {
    rankdir=TB;
    node [shape=circle, style=filled, fillcolor="white"];

    1 [fillcolor="#ffd93d"];
    2 [fillcolor="#ffd93d"];
    3;

    1 -> 2;
    2 -> 1;
    3 -> 1;
}
`
	assert.Equal(t, want, out)
}

func TestDOT_DropsOutsiders(t *testing.T) {
	out, err := viz.DOT(buildTrio(t))
	require.NoError(t, err)

	assert.NotContains(t, out, "42", "outsider must not appear as node or edge")
}

func TestDOT_HighlightNonGuestIgnored(t *testing.T) {
	plain, err := viz.DOT(buildTrio(t))
	require.NoError(t, err)
	highlighted, err := viz.DOT(buildTrio(t), viz.WithHighlight([]party.ID{42, 99}))
	require.NoError(t, err)

	assert.Equal(t, plain, highlighted, "non-guest highlights change nothing")
}

func TestDOT_NoEdges(t *testing.T) {
	p, err := builder.Hermits(2)
	require.NoError(t, err)

	out, err := viz.DOT(p)
	require.NoError(t, err)

	want := `digraph party {
    rankdir=LR;
    node [shape=circle, style=filled, fillcolor="white"];

    1;
    2;
}
`
	assert.Equal(t, want, out)
}

func TestDOT_EmptyParty(t *testing.T) {
	out, err := viz.DOT(party.New())
	require.NoError(t, err)

	want := `digraph party {
    rankdir=LR;
    node [shape=circle, style=filled, fillcolor="white"];
}
`
	assert.Equal(t, want, out)
}

func TestDOT_Deterministic(t *testing.T) {
	p := builder.Demo()
	first, err := viz.DOT(p)
	require.NoError(t, err)
	second, err := viz.DOT(p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDOT_Errors(t *testing.T) {
	_, err := viz.DOT(nil)
	assert.ErrorIs(t, err, viz.ErrNilParty)

	_, err = viz.DOT(party.New(), viz.WithDirection("UP"))
	assert.ErrorIs(t, err, viz.ErrBadDirection)
}

func TestMermaid_Golden(t *testing.T) {
	out, err := viz.Mermaid(buildTrio(t))
	require.NoError(t, err)

	want := `flowchart LR
    p1(("1"))
    p2(("2"))
    p3(("3"))

    p1 --> p2
    p2 --> p1
    p3 --> p1
`
	assert.Equal(t, want, out)
}

func TestMermaid_Highlight(t *testing.T) {
	out, err := viz.Mermaid(buildTrio(t), viz.WithHighlight([]party.ID{1}))
	require.NoError(t, err)

	want := `flowchart LR
    p1(("1")):::celebrity
    p2(("2"))
    p3(("3"))

    p1 --> p2
    p2 --> p1
    p3 --> p1

    classDef celebrity fill:#ffd93d,stroke:#333,stroke-width:2px
`
	assert.Equal(t, want, out)
}

func TestMermaid_NoClassDefWithoutHighlight(t *testing.T) {
	out, err := viz.Mermaid(buildTrio(t))
	require.NoError(t, err)

	assert.False(t, strings.Contains(out, "classDef"), "unused class must not be declared")
}

func TestMermaid_Errors(t *testing.T) {
	_, err := viz.Mermaid(nil)
	assert.ErrorIs(t, err, viz.ErrNilParty)

	_, err = viz.Mermaid(party.New(), viz.WithDirection("diagonal"))
	assert.ErrorIs(t, err, viz.ErrBadDirection)
}

func TestRender_Dispatch(t *testing.T) {
	p := buildTrio(t)

	dot, err := viz.Render(p, viz.FormatDOT)
	require.NoError(t, err)
	direct, err := viz.DOT(p)
	require.NoError(t, err)
	assert.Equal(t, direct, dot)

	mmd, err := viz.Render(p, viz.FormatMermaid)
	require.NoError(t, err)
	directMmd, err := viz.Mermaid(p)
	require.NoError(t, err)
	assert.Equal(t, directMmd, mmd)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := viz.Render(party.New(), viz.Format("svg"))
	assert.ErrorIs(t, err, viz.ErrUnknownFormat)
}
