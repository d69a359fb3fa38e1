// Package degree defines result types and sentinel errors for degree
// distribution analysis.
package degree

import "errors"

// Sentinel errors for degree analysis.
var (
	// ErrBadBinWidth is returned by Binned for a non-positive width.
	ErrBadBinWidth = errors.New("degree: bin width must be positive")

	// ErrTooFewPoints is returned by FitLogLog when fewer than two distinct
	// log-degree values exist.
	ErrTooFewPoints = errors.New("degree: at least two points with distinct degrees are required")
)

// DefaultBinWidth is the bucket width used for the binned distribution chart.
const DefaultBinWidth = 10

// Bucket counts the vertices whose degree lies in [Low, High].
// For the unbinned distribution Low == High.
type Bucket struct {
	Low   int `json:"low"`
	High  int `json:"high"`
	Count int `json:"count"`
}

// Point is one (log10 degree, log10 count) sample of the log-log series.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Summary holds moments of the degree distribution.
type Summary struct {
	Vertices int     `json:"vertices"`  // total number of vertices (sum of counts)
	Min      int     `json:"min"`       // smallest degree present
	Max      int     `json:"max"`       // largest degree present
	Mean     float64 `json:"mean"`      // count-weighted mean degree
	StdDev   float64 `json:"std_dev"`   // count-weighted sample standard deviation
	Isolated int     `json:"isolated"`  // vertices of degree 0
}

// Fit is a least-squares line through the log-log series:
// log10(count) ≈ Intercept + Slope·log10(degree).
// For a power law count ∝ degree^-γ, Slope ≈ -γ.
type Fit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}
