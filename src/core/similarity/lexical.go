package similarity

import (
	"math"
	"strings"
)

const (
	jaccardWeight   = 0.5
	termWeight      = 0.3
	substringWeight = 0.2
)

// Jaccard is the word-set overlap of query and candidate: the size of the
// intersection over the size of the union.
func Jaccard(query, candidate string) float64 {
	if query == "" || candidate == "" {
		return 0
	}
	return jaccard(tokenSet(Tokenize(query)), tokenSet(Tokenize(candidate)))
}

// TermWeight scores query against a TF-IDF model built from candidate alone.
//
// With a single document the inverse document frequency carries no corpus
// information. It is smoothed as 1 + ln(N/(1+df)) with N = 1, which gives a
// present term the constant weight 1 - ln 2 and never divides by zero. The
// result is therefore a stop-word filtered term count scaled by a constant,
// averaged over the query tokens. It is kept as a legacy heuristic and is not
// bounded by 1.
func TermWeight(query, candidate string) float64 {
	if query == "" || candidate == "" {
		return 0
	}
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return 0
	}

	tf := make(map[string]int)
	for _, tok := range Tokenize(candidate) {
		if stopWords[tok] {
			continue
		}
		tf[tok]++
	}

	const docs = 1.0
	var sum float64
	for _, tok := range queryTokens {
		count := tf[tok]
		if count == 0 {
			continue
		}
		idf := 1 + math.Log(docs/(1+docs))
		sum += float64(count) * idf
	}
	return sum / float64(len(queryTokens))
}

// SubstringBonus is 1 when the candidate contains the query verbatim, ignoring
// case, and 0 otherwise.
func SubstringBonus(query, candidate string) float64 {
	if query == "" || candidate == "" {
		return 0
	}
	if strings.Contains(strings.ToLower(candidate), strings.ToLower(query)) {
		return 1
	}
	return 0
}

// Blended combines Jaccard, TermWeight and SubstringBonus with weights
// 0.5, 0.3 and 0.2.
func Blended(query, candidate string) float64 {
	if query == "" || candidate == "" {
		return 0
	}
	return jaccardWeight*Jaccard(query, candidate) +
		termWeight*TermWeight(query, candidate) +
		substringWeight*SubstringBonus(query, candidate)
}
