// Package keywords extracts ranked keyword sets from free text.
package keywords

import (
	"slices"
	"strings"
)

// DefaultLimit is the maximum number of keywords returned when no limit is given
const DefaultLimit = 8

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "you": {}, "with": {}, "that": {}, "this": {}, "have": {},
	"from": {}, "your": {}, "about": {}, "into": {}, "over": {}, "under": {}, "https": {},
	"http": {}, "www": {},
}

// Extract returns up to limit keywords of text ordered by descending frequency,
// equal counts keep the order of first occurrence. Limit <= 0 means DefaultLimit.
// Empty or stop-word only text gives an empty, non-nil result.
func Extract(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	type entry struct {
		word  string
		count int
	}
	var entries []entry
	index := map[string]int{}
	for _, tok := range strings.Fields(normalize(text)) {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if i, ok := index[tok]; ok {
			entries[i].count++
			continue
		}
		index[tok] = len(entries)
		entries = append(entries, entry{word: tok, count: 1})
	}

	slices.SortStableFunc(entries, func(a, b entry) int { return b.count - a.count })

	res := make([]string, 0, min(limit, len(entries)))
	for _, e := range entries[:min(limit, len(entries))] {
		res = append(res, e.word)
	}
	return res
}

// normalize lowercases text and replaces everything except [a-z0-9] and whitespace with spaces
func normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '\v', r == '\f':
			sb.WriteRune(r)
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
