// Package viz: Graphviz DOT emission.

package viz

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pfad/party"
)

// DOT renders the party as a Graphviz digraph.
//
// Guests become nodes named by their decimal id, introductions between
// guests become directed edges; introductions to outsiders are dropped.
// Highlighted guests are filled. Output is deterministic: nodes ascending
// by id, edges ascending by (knower, known).
//
// The text is ready for `dot -Tpng` and friends. Returns ErrNilParty for
// nil input, ErrBadDirection for a direction outside TB/LR/BT/RL.
// Complexity: O(V²) over the snapshot matrix.
func DOT(p *party.Party, opts ...Option) (string, error) {
	snap, o, err := prepare(p, opts)
	if err != nil {
		return "", err
	}
	marked := markHighlighted(snap, o.Highlight)

	var sb strings.Builder
	sb.WriteString("digraph party {\n")
	fmt.Fprintf(&sb, "    rankdir=%s;\n", o.Direction)
	sb.WriteString("    node [shape=circle, style=filled, fillcolor=\"white\"];\n")

	// 1) Nodes, ascending by id.
	if snap.Len() > 0 {
		sb.WriteString("\n")
		for i := 0; i < snap.Len(); i++ {
			if marked[i] {
				fmt.Fprintf(&sb, "    %s [fillcolor=%q];\n", snap.IDAt(i), highlightColor)
			} else {
				fmt.Fprintf(&sb, "    %s;\n", snap.IDAt(i))
			}
		}
	}

	// 2) Edges, ascending by (knower, known); the reflexive diagonal is
	// definitional and never drawn.
	edges := collectEdges(snap)
	if len(edges) > 0 {
		sb.WriteString("\n")
		for _, e := range edges {
			fmt.Fprintf(&sb, "    %s -> %s;\n", e[0], e[1])
		}
	}

	sb.WriteString("}\n")

	return sb.String(), nil
}

// collectEdges lists the introductions between guests in ascending
// (knower, known) order, skipping the diagonal.
func collectEdges(snap *party.Snapshot) [][2]party.ID {
	n := snap.Len()
	edges := make([][2]party.ID, 0, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !snap.KnowsAt(i, j) {
				continue
			}
			edges = append(edges, [2]party.ID{snap.IDAt(i), snap.IDAt(j)})
		}
	}

	return edges
}
