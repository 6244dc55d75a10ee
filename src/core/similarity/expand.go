package similarity

import (
	"fmt"
	"regexp"
	"strings"
)

// ExpansionMode selects how a synonym key is located and replaced in a query.
type ExpansionMode string

const (
	// ExpandSubstring replaces the first raw substring occurrence, including
	// occurrences inside longer words ("tablet" becomes "chartt"). Default.
	ExpandSubstring ExpansionMode = "substring"
	// ExpandWholeWord replaces every case-insensitive whole-word occurrence.
	ExpandWholeWord ExpansionMode = "word"
)

// ParseExpansionMode maps a configuration value to an ExpansionMode.
func ParseExpansionMode(s string) (ExpansionMode, error) {
	switch ExpansionMode(strings.ToLower(strings.TrimSpace(s))) {
	case ExpandSubstring, "":
		return ExpandSubstring, nil
	case ExpandWholeWord:
		return ExpandWholeWord, nil
	}
	return "", fmt.Errorf("unknown expansion mode %q", s)
}

// Synonym maps a query word to the words it may be swapped for.
type Synonym struct {
	Key          string
	Alternatives []string
}

// DefaultSynonyms is the built-in synonym table.
var DefaultSynonyms = []Synonym{
	{Key: "drawing", Alternatives: []string{"figure", "diagram", "image", "sketch"}},
	{Key: "table", Alternatives: []string{"chart", "matrix", "grid"}},
}

type synonymRule struct {
	Synonym
	pattern *regexp.Regexp
}

// Expander generates query variants from a synonym table.
type Expander struct {
	mode  ExpansionMode
	rules []synonymRule
}

func NewExpander(mode ExpansionMode, synonyms []Synonym) *Expander {
	rules := make([]synonymRule, 0, len(synonyms))
	for _, syn := range synonyms {
		if syn.Key == "" {
			continue
		}
		rules = append(rules, synonymRule{
			Synonym: syn,
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(syn.Key) + `\b`),
		})
	}
	return &Expander{mode: mode, rules: rules}
}

// Expand returns the query itself followed by one variant per alternative of
// every key found in the query, in table order.
func (e *Expander) Expand(query string) []string {
	variants := []string{query}
	for _, rule := range e.rules {
		switch e.mode {
		case ExpandSubstring:
			if !strings.Contains(query, rule.Key) {
				continue
			}
			for _, alt := range rule.Alternatives {
				variants = append(variants, strings.Replace(query, rule.Key, alt, 1))
			}
		default:
			if !rule.pattern.MatchString(query) {
				continue
			}
			for _, alt := range rule.Alternatives {
				variants = append(variants, rule.pattern.ReplaceAllLiteralString(query, alt))
			}
		}
	}
	return variants
}
