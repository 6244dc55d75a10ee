package retriever

import (
	"cmp"
	"slices"
)

// Scored pairs a search hit with its similarity score.
type Scored[T any] struct {
	Item  T
	Score float64
}

// rank sorts hits by descending score, keeping encounter order for ties, and
// keeps at most limit of them.
func rank[T any](hits []Scored[T], limit int) []Scored[T] {
	slices.SortStableFunc(hits, func(a, b Scored[T]) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}
