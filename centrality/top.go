package centrality

import "sort"

// Top returns the n highest scores, ordered by value descending and then by
// name ascending so ties are reproducible. n <= 0 or n >= len(scores)
// returns every entry.
// Complexity: O(V log V).
func Top(scores map[string]float64, n int) []Score {
	out := make([]Score, 0, len(scores))
	for name, v := range scores {
		out = append(out, Score{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}

		return out[i].Name < out[j].Name
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}

	return out
}
