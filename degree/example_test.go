package degree_test

import (
	"fmt"

	"github.com/katalvlaran/rostergraph/core"
	"github.com/katalvlaran/rostergraph/degree"
)

// ExampleBinned folds a star's degrees into width-10 ranges.
func ExampleBinned() {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, _ = g.Connect("hub", fmt.Sprintf("leaf%02d", i))
	}
	hist := degree.Histogram(g)
	bins, err := degree.Binned(hist, degree.DefaultBinWidth)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, b := range bins {
		fmt.Printf("%d-%d: %d\n", b.Low, b.High, b.Count)
	}

	// Output:
	// 0-9: 12
	// 10-19: 1
}
