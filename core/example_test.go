package core_test

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// ExampleGraph_Neighbors builds a two-production cast and lists the
// one-hop neighborhood of the person who appears in both.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	_ = g.AddPerson(core.Person{ID: "102", Name: "Kevin Bacon"})
	_ = g.AddPerson(core.Person{ID: "158", Name: "Tom Hanks"})
	_ = g.AddPerson(core.Person{ID: "641", Name: "Gary Sinise"})
	_ = g.AddProduction(core.Production{ID: "112384", Title: "Apollo 13"})
	_ = g.AddProduction(core.Production{ID: "109830", Title: "Forrest Gump"})

	_ = g.AddCredit("102", "112384")
	_ = g.AddCredit("158", "112384")
	_ = g.AddCredit("158", "109830")
	_ = g.AddCredit("641", "109830")

	for _, l := range g.Neighbors("158") {
		fmt.Println(l.Production, l.Person)
	}
	// Output:
	// 109830 158
	// 109830 641
	// 112384 102
	// 112384 158
}
