// Package relevance scores a query against entity text fields.
//
// The scale is a bounded heuristic, not a probabilistic ranker: branch
// order and point values determine result ordering across the whole
// search pipeline and must stay stable.
package relevance

import "strings"

// Contribution points per match branch.
const (
	exactMatch    = 100
	prefixMatch   = 80
	containsMatch = 50
	wordExact     = 40
	wordPrefix    = 30
)

// Score rates query against a set of text fields, returning a value in
// [0, 100]. Matching is case-insensitive; the query is trimmed once,
// fields are compared as stored.
//
// Each non-empty field contributes through exactly one of the
// exact/prefix/contains branches, or through the word fallback where
// every whitespace-delimited word is checked independently, so a single
// field can accumulate several word-level contributions. The total is
// clamped to 100.
func Score(query string, fields []string) int {
	q := strings.ToLower(strings.TrimSpace(query))

	total := 0
	for _, raw := range fields {
		if raw == "" {
			continue
		}
		f := strings.ToLower(raw)

		switch {
		case f == q:
			total += exactMatch
		case strings.HasPrefix(f, q):
			total += prefixMatch
		case strings.Contains(f, q):
			total += containsMatch
		default:
			for _, w := range strings.Fields(f) {
				if w == q {
					total += wordExact
				} else if strings.HasPrefix(w, q) {
					total += wordPrefix
				}
			}
		}
	}

	if total > 100 {
		total = 100
	}
	return total
}
