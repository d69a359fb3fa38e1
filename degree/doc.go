// Package degree summarises how connected the players of a teammate graph are.
//
// Overview:
//
//   - Histogram(g) counts vertices per degree; counts sum to the vertex count.
//   - Buckets(h) lists the histogram ascending by degree.
//   - Binned(h, width) folds degrees into fixed-width ranges for a bar chart
//     (DefaultBinWidth is 10).
//   - LogLog(h) produces the (log10 d, log10 count) series used to eyeball
//     power-law behavior; FitLogLog fits a line through it.
//   - Summarize(h) reports mean, standard deviation and extremes.
//
// All functions are pure: they read the graph once (Histogram) or only the
// histogram map, and never mutate their input.
//
// Errors:
//
//   - ErrBadBinWidth  – Binned with width <= 0.
//   - ErrTooFewPoints – FitLogLog with fewer than two distinct degrees.
package degree
