package spanning

import (
	"sort"

	"github.com/katalvlaran/rostergraph/core"
)

// Strongest returns the n heaviest edges of f as named ties, heaviest first
// and then by names. n <= 0 returns all of them. Edges whose endpoints can
// no longer be resolved are dropped.
func Strongest(g *core.Graph, f Forest, n int) []Tie {
	if g == nil {
		return nil
	}
	ties := make([]Tie, 0, len(f.Edges))
	for _, e := range f.Edges {
		a, errA := g.VertexID(e.From)
		b, errB := g.VertexID(e.To)
		if errA != nil || errB != nil {
			continue
		}
		if b < a {
			a, b = b, a
		}
		ties = append(ties, Tie{A: a, B: b, Weight: e.Weight})
	}
	sort.Slice(ties, func(i, j int) bool {
		if ties[i].Weight != ties[j].Weight {
			return ties[i].Weight > ties[j].Weight
		}
		if ties[i].A != ties[j].A {
			return ties[i].A < ties[j].A
		}
		return ties[i].B < ties[j].B
	})
	if n > 0 && n < len(ties) {
		ties = ties[:n]
	}

	return ties
}
