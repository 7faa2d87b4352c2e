package search_test

import (
	"fmt"

	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/search"
)

// ExampleShortestPath walks a three-person chain p0–m0–p1–m1–p2.
func ExampleShortestPath() {
	g, _ := builder.BuildCast(nil, nil, builder.Chain(3))

	path, ok, err := search.ShortestPath(g, "p0", "p2")
	if err != nil || !ok {
		fmt.Println("not connected")
		return
	}
	fmt.Printf("%d degrees of separation.\n", path.Degrees())
	prev := "p0"
	for i, l := range path {
		fmt.Printf("%d: %s and %s starred in %s\n", i+1, prev, l.Person, l.Production)
		prev = l.Person
	}
	// Output:
	// 2 degrees of separation.
	// 1: p0 and p1 starred in m0
	// 2: p1 and p2 starred in m1
}

// ExampleFind shows the counters a search reports.
func ExampleFind() {
	g, _ := builder.BuildCast(nil, nil,
		builder.Cast("m1", "a", "b"),
		builder.Cast("m2", "b", "c"),
	)

	res, _ := search.Find(g, "a", "c", search.WithFrontierDedup())
	fmt.Println(res.Connected, res.Path.People(), res.Explored, res.Generated)
	// Output:
	// true [b c] 3 3
}
