// Package degree computes the degree distribution of a core.Graph and the
// derived series used for charting it.
//
// Degree is the number of incident edges; edge weight is never read, so a
// pair of players who shared five rosters contributes one to each degree.
//
// Complexity:
//
//   - Histogram: O(V + E) time, O(D) space for D distinct degrees.
//   - Buckets, Binned, LogLog, Summarize: O(D log D).
package degree

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/rostergraph/core"
	"gonum.org/v1/gonum/stat"
)

// Histogram maps each degree to the number of vertices having it.
// The counts sum to g.VertexCount(). A nil or empty graph yields an empty map.
func Histogram(g *core.Graph) map[int]int {
	hist := make(map[int]int)
	if g == nil {
		return hist
	}
	for _, nbrs := range g.AdjacencyList() {
		hist[len(nbrs)]++
	}

	return hist
}

// Buckets returns the histogram as one Bucket per degree, ascending.
func Buckets(hist map[int]int) []Bucket {
	out := make([]Bucket, 0, len(hist))
	for _, d := range sortedDegrees(hist) {
		out = append(out, Bucket{Low: d, High: d, Count: hist[d]})
	}

	return out
}

// Binned groups degrees into fixed-width ranges [k·width, k·width+width-1]
// and returns the non-empty ranges ascending.
// Returns ErrBadBinWidth if width <= 0.
func Binned(hist map[int]int, width int) ([]Bucket, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBinWidth, width)
	}

	bins := make(map[int]int)
	for d, c := range hist {
		bins[(d/width)*width] += c
	}
	out := make([]Bucket, 0, len(bins))
	for _, low := range sortedDegrees(bins) {
		out = append(out, Bucket{Low: low, High: low + width - 1, Count: bins[low]})
	}

	return out, nil
}

// LogLog returns (log10 degree, log10 count) for every degree with both
// degree and count positive, ordered by degree. Degree zero has no logarithm
// and is skipped.
func LogLog(hist map[int]int) []Point {
	out := make([]Point, 0, len(hist))
	for _, d := range sortedDegrees(hist) {
		c := hist[d]
		if d <= 0 || c <= 0 {
			continue
		}
		out = append(out, Point{X: math.Log10(float64(d)), Y: math.Log10(float64(c))})
	}

	return out
}

// Summarize returns count-weighted moments of the distribution.
// An empty histogram yields the zero Summary.
func Summarize(hist map[int]int) Summary {
	degrees := sortedDegrees(hist)
	if len(degrees) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(degrees))
	ws := make([]float64, len(degrees))
	s := Summary{Min: degrees[0], Max: degrees[len(degrees)-1], Isolated: hist[0]}
	for i, d := range degrees {
		xs[i] = float64(d)
		ws[i] = float64(hist[d])
		s.Vertices += hist[d]
	}
	s.Mean = stat.Mean(xs, ws)
	// The weighted sample variance divides by Σw-1.
	if s.Vertices > 1 {
		s.StdDev = stat.StdDev(xs, ws)
	}

	return s
}

// FitLogLog fits a least-squares line through points.
// Returns ErrTooFewPoints unless at least two distinct X values exist.
func FitLogLog(points []Point) (Fit, error) {
	if len(points) < 2 {
		return Fit{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	distinct := false
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
		if p.X != points[0].X {
			distinct = true
		}
	}
	if !distinct {
		return Fit{}, fmt.Errorf("%w: all points share x=%g", ErrTooFewPoints, points[0].X)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	return Fit{
		Slope:     beta,
		Intercept: alpha,
		RSquared:  stat.RSquared(xs, ys, nil, alpha, beta),
	}, nil
}

// sortedDegrees returns the keys of hist ascending.
func sortedDegrees(hist map[int]int) []int {
	keys := make([]int, 0, len(hist))
	for d := range hist {
		keys = append(keys, d)
	}
	sort.Ints(keys)

	return keys
}
