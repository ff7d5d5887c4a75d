package graph_test

import (
	"fmt"

	"github.com/matzehuels/copurchase/pkg/graph"
	"github.com/matzehuels/copurchase/pkg/record"
)

func ExampleGraph_AddSimilar() {
	g := graph.New()
	g.AddSimilar("0827229534", []string{"0804215715", "156101074X"})

	fmt.Println(g.Neighbors("0804215715"))
	fmt.Println(g.Neighbors("0827229534"))
	fmt.Println("degree:", g.Degree("0827229534"))
	// Output:
	// [0827229534]
	// [0804215715 156101074X 0804215715 156101074X]
	// degree: 4
}

func ExampleBuild() {
	g := graph.Build([]record.Record{
		{ID: "A", Related: []string{"B"}},
		{ID: "B", Related: []string{"C"}},
	})

	for _, id := range g.IDs() {
		fmt.Println(id, g.Neighbors(id))
	}
	fmt.Println("symmetric:", g.IsSymmetric())
	// Output:
	// A [B B]
	// B [A C]
	// C [B]
	// symmetric: true
}
