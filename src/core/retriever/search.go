package retriever

import (
	"manualrag/src/core/manual"
	"manualrag/src/core/similarity"
)

type ScoredItem = Scored[manual.IndexedItem]

// Result is the outcome of an index search.
type Result struct {
	Status Status
	Reason Reason
	Items  []ScoredItem
}

func insufficient(reason Reason) Result {
	return Result{Status: StatusInsufficient, Reason: reason}
}

// Search scores every indexed item's caption and text against the query with
// the blended lexical score. It reports insufficient information when nothing
// scores above zero or the best score is below the confidence threshold, and
// otherwise returns the best IndexTopK items.
func (r *Retriever) Search(query string) Result {
	hits := make([]ScoredItem, 0)
	for _, item := range r.index {
		score := similarity.Blended(query, item.SearchText())
		if score > 0 {
			hits = append(hits, ScoredItem{Item: item, Score: score})
		}
	}

	hits = rank(hits, r.cfg.IndexTopK)
	if len(hits) == 0 {
		r.logger.V(1).Info("no index matches", "query", query)
		return insufficient(ReasonNoMatches)
	}
	if hits[0].Score < r.cfg.ConfidenceThreshold {
		r.logger.V(1).Info("best index match below threshold",
			"query", query, "score", hits[0].Score, "threshold", r.cfg.ConfidenceThreshold)
		return insufficient(ReasonBelowThreshold)
	}
	return Result{Status: StatusOK, Items: hits}
}
