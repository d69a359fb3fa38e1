package pathsample_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rostergraph/core"
	"github.com/katalvlaran/rostergraph/pathsample"
)

// ExampleSampleAverageDistance estimates the mean hop count of a complete
// graph, where every pair is exactly one hop apart.
func ExampleSampleAverageDistance() {
	g := core.NewGraph()
	names := []string{"Alice", "Bob", "Carol", "Dave"}
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			_, _ = g.Connect(names[i], names[j])
		}
	}

	est, err := pathsample.SampleAverageDistance(g, 100, rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("mean=%.4f found=%d/%d\n", est.Mean, est.Found, est.Drawn)

	// Output: mean=1.0000 found=100/100
}
