package catalog

import "strings"

// ContainsAny reports whether text contains any of the patterns.
// Matching is case-insensitive substring matching.
func ContainsAny(text string, patterns []string) bool {
	lower := strings.ToLower(text)
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// FirstMatch returns the first pattern contained in text, or "" when
// none match.
func FirstMatch(text string, patterns []string) string {
	lower := strings.ToLower(text)
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return p
		}
	}
	return ""
}

// MatchConcepts returns the vocabulary entries for problemType that
// appear in text, in vocabulary order.
func (c *Catalog) MatchConcepts(problemType, text string) []string {
	vocab, ok := c.Vocab[problemType]
	if !ok {
		return nil
	}
	lower := strings.ToLower(text)
	var matched []string
	for _, term := range vocab {
		if strings.Contains(lower, term) {
			matched = append(matched, term)
		}
	}
	return matched
}
