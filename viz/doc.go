// Package viz renders a party's acquaintance graph as Graphviz DOT or
// Mermaid text, the diagram the puzzle's documentation ships next to the
// answer line.
//
// What:
//
//   - DOT(p):     a digraph over the guests, one arrow per introduction.
//   - Mermaid(p): the same graph as a Mermaid flowchart.
//   - Render(p, format): the two above behind a Format switch.
//
// Semantics:
//
//   - Only guests are drawn. Introductions pointing at outsiders are
//     dropped, exactly as the clique predicates ignore them.
//   - Nodes and edges are emitted in ascending-ID order, so the same party
//     always renders to the same bytes.
//   - WithHighlight fills the given guests (typically the found celebrity
//     clique); highlight ids that are not guests are ignored.
//   - WithDirection picks the flow direction, one of TB, LR, BT, RL.
//
// The package writes no files and runs no external tools; converting DOT to
// PNG via Graphviz is the CLI's job.
//
// Errors:
//
//   - ErrNilParty      nil *party.Party supplied
//   - ErrBadDirection  direction outside TB/LR/BT/RL
//   - ErrUnknownFormat Render with a Format this package does not emit
package viz
