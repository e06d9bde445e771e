package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pfad/builder"
)

// ExampleDemo inspects the book's worked example: seven guests, one
// admired-by-all trio, and a reference to someone who never shows up.
func ExampleDemo() {
	p := builder.Demo()

	fmt.Println("Guests:", p.Guests())
	fmt.Println("4 knows 42?", p.Knows(4, 42))

	st := p.Stats()
	fmt.Printf("Introductions: %d, Outsiders: %d\n", st.Introductions, st.Outsiders)

	// Output:
	// Guests: [1 2 3 4 5 6 7]
	// 4 knows 42? true
	// Introductions: 23, Outsiders: 1
}

// ExamplePlantedClique builds a party whose celebrity clique is fixed by
// construction: guests 1..3 are the clique, 4..8 are fans.
func ExamplePlantedClique() {
	p, err := builder.PlantedClique(8, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("Guests:", p.GuestCount())
	fmt.Println("1 and 2 mutual?", p.Knows(1, 2) && p.Knows(2, 1))
	fmt.Println("fan 5 knows member 3?", p.Knows(5, 3))
	fmt.Println("member 3 knows fan 5?", p.Knows(3, 5))

	// Output:
	// Guests: 8
	// 1 and 2 mutual? true
	// fan 5 knows member 3? true
	// member 3 knows fan 5? false
}
