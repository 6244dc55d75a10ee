package similarity

import (
	"github.com/kljensen/snowball/english"
)

// StemmedOverlap is Jaccard over Snowball-stemmed tokens, so inflected forms
// such as "valves" and "valve" count as the same word. It only reduces
// suffixes and does not measure meaning.
func StemmedOverlap(query, candidate string) float64 {
	if query == "" || candidate == "" {
		return 0
	}
	return jaccard(stemSet(Tokenize(query)), stemSet(Tokenize(candidate)))
}

func stemSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[english.Stem(tok, true)] = struct{}{}
	}
	return set
}
