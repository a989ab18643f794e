package keywordutil

import (
	"regexp"
	"sort"
	"strings"
)

// MaxKeywords bounds the number of keywords derived from one text.
const MaxKeywords = 20

var wordRegex = regexp.MustCompile(`\b[a-z]{3,}\b`)

var stopWords = map[string]struct{}{
	"the":  {},
	"and":  {},
	"or":   {},
	"but":  {},
	"in":   {},
	"on":   {},
	"at":   {},
	"to":   {},
	"for":  {},
	"of":   {},
	"with": {},
	"by":   {},
	"a":    {},
	"an":   {},
}

// Extract derives a bounded keyword list from free text. Tokens are
// lowercase alphabetic runs of at least three characters minus stop
// words, ranked by frequency with an alphabetical tie-break, truncated
// to MaxKeywords. Deterministic for a given input.
func Extract(text string) []string {
	counts := map[string]int{}
	for _, word := range wordRegex.FindAllString(strings.ToLower(text), -1) {
		if _, stop := stopWords[word]; stop {
			continue
		}
		counts[word]++
	}
	if len(counts) == 0 {
		return nil
	}

	keywords := make([]string, 0, len(counts))
	for word := range counts {
		keywords = append(keywords, word)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > MaxKeywords {
		keywords = keywords[:MaxKeywords]
	}
	return keywords
}
