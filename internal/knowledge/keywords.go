package knowledge

import (
	"regexp"
	"sort"
	"strings"
)

const (
	keywordLimit     = 20
	minKeywordLength = 4
)

var nonWord = regexp.MustCompile(`\W+`)

// stopwords only needs entries longer than 3 characters; shorter tokens are
// dropped by the length filter before this set is consulted.
var stopwords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "from": {}, "they": {},
	"have": {}, "been": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "their": {}, "there": {}, "about": {}, "which": {},
	"when": {}, "what": {}, "were": {}, "your": {}, "more": {},
	"than": {}, "them": {}, "then": {}, "these": {}, "those": {},
	"also": {}, "into": {}, "over": {}, "such": {}, "only": {},
}

// ExtractKeywords returns the up-to-20 most frequent terms of a text, most
// frequent first. Ties keep the order in which the terms were first seen, so
// the same content always yields the same keyword list. No stemming, no
// locale handling; exact token match only.
func ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}

	clean := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	freq := make(map[string]int)
	var order []string
	for _, token := range strings.Fields(clean) {
		if len(token) < minKeywordLength {
			continue
		}
		if _, skip := stopwords[token]; skip {
			continue
		}
		if _, seen := freq[token]; !seen {
			order = append(order, token)
		}
		freq[token]++
	}

	if len(order) == 0 {
		return nil
	}

	// order already holds first-appearance order; a stable sort on frequency
	// keeps it as the tie-break.
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > keywordLimit {
		order = order[:keywordLimit]
	}
	return order
}
