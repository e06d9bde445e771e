// Package viz: Mermaid flowchart emission.

package viz

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pfad/party"
)

// Mermaid renders the party as a Mermaid flowchart, the format README
// viewers display inline.
//
// Node ids are prefixed with "p" because Mermaid identifiers must not start
// with a digit; labels keep the plain guest number. Highlighted guests get
// the celebrity class, declared only when at least one guest is marked.
// Everything else matches DOT: guests only, deterministic ascending order.
//
// Returns ErrNilParty for nil input, ErrBadDirection for a direction
// outside TB/LR/BT/RL. Complexity: O(V²) over the snapshot matrix.
func Mermaid(p *party.Party, opts ...Option) (string, error) {
	snap, o, err := prepare(p, opts)
	if err != nil {
		return "", err
	}
	marked := markHighlighted(snap, o.Highlight)

	var sb strings.Builder
	fmt.Fprintf(&sb, "flowchart %s\n", o.Direction)

	// 1) Nodes, ascending by id.
	anyMarked := false
	for i := 0; i < snap.Len(); i++ {
		id := snap.IDAt(i)
		if marked[i] {
			anyMarked = true
			fmt.Fprintf(&sb, "    p%s((\"%s\")):::celebrity\n", id, id)
		} else {
			fmt.Fprintf(&sb, "    p%s((\"%s\"))\n", id, id)
		}
	}

	// 2) Edges, ascending by (knower, known).
	edges := collectEdges(snap)
	if len(edges) > 0 {
		sb.WriteString("\n")
		for _, e := range edges {
			fmt.Fprintf(&sb, "    p%s --> p%s\n", e[0], e[1])
		}
	}

	// 3) Class declaration, only when used.
	if anyMarked {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "    classDef celebrity fill:%s,stroke:#333,stroke-width:2px\n", highlightColor)
	}

	return sb.String(), nil
}
