// Package problem turns raw student input, typed text or an image of
// a worksheet, into a classified problem the engine can open a
// session on.
package problem

import (
	"context"
	"strings"

	"github.com/abhisek/socratiq/internal/catalog"
)

// Parsed is the result of classifying a problem statement.
type Parsed struct {
	IsValid     bool
	Content     string
	ProblemType string
	Concepts    []string
}

// Problem statements shorter than this cannot be tutored on.
const minProblemLen = 8

// Parser classifies problem text against the concept catalog.
type Parser struct {
	catalog *catalog.Catalog
}

// NewParser returns a Parser backed by c's vocabularies.
func NewParser(c *catalog.Catalog) *Parser {
	return &Parser{catalog: c}
}

// Parse classifies text. Too-short input yields IsValid=false; the
// caller should re-prompt rather than treat it as an error.
func (p *Parser) Parse(text string) Parsed {
	content := strings.TrimSpace(text)
	if len(content) < minProblemLen {
		return Parsed{Content: content}
	}

	problemType := p.classify(content)
	return Parsed{
		IsValid:     true,
		Content:     content,
		ProblemType: problemType,
		Concepts:    p.catalog.MatchConcepts(problemType, content),
	}
}

// classify picks the vocabulary with the most hits. Equations with a
// variable count toward algebra even without keyword hits; ties and
// zero hits fall back to word-problem.
func (p *Parser) classify(text string) string {
	lower := strings.ToLower(text)

	best := "word-problem"
	bestHits := 0
	for _, pt := range []string{"algebra", "geometry", "fractions", "arithmetic", "word-problem"} {
		hits := 0
		for _, term := range p.catalog.Vocab[pt] {
			if strings.Contains(lower, term) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = pt, hits
		}
	}
	if bestHits == 0 && looksLikeEquation(lower) {
		return "algebra"
	}
	return best
}

func looksLikeEquation(text string) bool {
	if !strings.Contains(text, "=") {
		return false
	}
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}

// ImageResult is what an image-to-text backend returns.
type ImageResult struct {
	Success    bool
	Text       string
	Confidence float64
	Err        string
}

// ImageReader extracts problem text from an image file.
type ImageReader interface {
	ProcessImage(ctx context.Context, path string) (ImageResult, error)
}

// Extraction below this confidence is treated as unusable.
const minImageConfidence = 0.3

// ResolveImageInput runs the image backend and decides whether its
// output is usable. A failed or low-confidence extraction returns
// ok=false so the caller can fall back to asking the student to type
// the problem; it is never a hard failure.
func ResolveImageInput(ctx context.Context, r ImageReader, path string) (text string, ok bool) {
	res, err := r.ProcessImage(ctx, path)
	if err != nil || !res.Success || res.Confidence < minImageConfidence {
		return "", false
	}
	extracted := strings.TrimSpace(res.Text)
	if extracted == "" {
		return "", false
	}
	return extracted, true
}
