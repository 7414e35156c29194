// Package violation scans tutor utterances for direct-answer leakage.
package violation

import (
	"regexp"
	"strings"

	"github.com/abhisek/socratiq/internal/catalog"
)

// finalNumberPattern matches an utterance whose last sentence is
// essentially a bare numeric result, e.g. "x = 12." or "12".
var finalNumberPattern = regexp.MustCompile(`(?i)^\s*(?:so\s+)?(?:[a-z]\s*=\s*)?-?\d+(?:[./]\d+)?\s*[.!]?\s*$`)

// Detector flags tutor utterances that hand the student the answer.
// Detection is heuristic and non-fatal: callers count violations,
// they never abort the conversation on one.
type Detector struct {
	catalog *catalog.Catalog
}

// New returns a Detector backed by c's leak patterns.
func New(c *catalog.Catalog) *Detector {
	return &Detector{catalog: c}
}

// ContainsDirectAnswer reports whether the utterance leaks a direct
// answer: a known giveaway phrase, an imperative solution statement,
// or a closing sentence that is just a number with no question asked.
func (d *Detector) ContainsDirectAnswer(utterance string) bool {
	text := strings.ToLower(utterance)
	if catalog.ContainsAny(text, d.catalog.Leak.Phrases) {
		return true
	}
	if catalog.ContainsAny(text, d.catalog.Leak.Imperatives) {
		return true
	}
	return d.endsWithBareAnswer(utterance)
}

// Pattern returns the specific leak pattern that matched, or "" when
// the utterance is clean. Used for logging violations with context.
func (d *Detector) Pattern(utterance string) string {
	text := strings.ToLower(utterance)
	if p := catalog.FirstMatch(text, d.catalog.Leak.Phrases); p != "" {
		return p
	}
	if p := catalog.FirstMatch(text, d.catalog.Leak.Imperatives); p != "" {
		return p
	}
	if d.endsWithBareAnswer(utterance) {
		return "bare-numeric-answer"
	}
	return ""
}

func (d *Detector) endsWithBareAnswer(utterance string) bool {
	if strings.Contains(utterance, "?") {
		return false
	}
	sentences := splitSentences(utterance)
	if len(sentences) == 0 {
		return false
	}
	return finalNumberPattern.MatchString(sentences[len(sentences)-1])
}

func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '\n'
	})
	var out []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
