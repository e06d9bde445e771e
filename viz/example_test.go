package viz_test

import (
	"fmt"

	"github.com/katalvlaran/pfad/party"
	"github.com/katalvlaran/pfad/viz"
)

// ExampleDOT renders a two-guest party with both guests highlighted, the
// way the CLI marks a found celebrity clique.
func ExampleDOT() {
	p := party.New()
	p.Introduce(1, 2)
	p.Introduce(2, 1)

	out, err := viz.DOT(p, viz.WithHighlight([]party.ID{1, 2}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(out)

	// Output:
	// digraph party {
	//     rankdir=LR;
	//     node [shape=circle, style=filled, fillcolor="white"];
	//
	//     1 [fillcolor="#ffd93d"];
	//     2 [fillcolor="#ffd93d"];
	//
	//     1 -> 2;
	//     2 -> 1;
	// }
}

// ExampleMermaid renders the same relation as a Mermaid flowchart, top to
// bottom.
func ExampleMermaid() {
	p := party.New()
	p.Introduce(1, 2)
	p.Introduce(2, 1)

	out, err := viz.Mermaid(p, viz.WithDirection(viz.DirectionTB))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(out)

	// Output:
	// flowchart TB
	//     p1(("1"))
	//     p2(("2"))
	//
	//     p1 --> p2
	//     p2 --> p1
}
