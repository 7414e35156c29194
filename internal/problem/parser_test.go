package problem

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/socratiq/internal/catalog"
)

func TestParser_Parse(t *testing.T) {
	p := NewParser(catalog.Default())

	tests := []struct {
		name     string
		text     string
		valid    bool
		wantType string
	}{
		{"algebra keywords", "Solve the equation 2x + 4 = 10 for the variable x", true, "algebra"},
		{"geometry keywords", "Find the area and perimeter of the triangle", true, "geometry"},
		{"fractions keywords", "Which fraction is larger when the denominator changes?", true, "fractions"},
		{"arithmetic keywords", "Practice long division with a remainder", true, "arithmetic"},
		{"word problem keywords", "A baker sells 12 loaves per day, how many altogether in a week?", true, "word-problem"},
		{"bare equation", "3y - 7 = 14", true, "algebra"},
		{"no keywords", "Figure out what comes next in the sequence", true, "word-problem"},
		{"too short", "2+2", false, ""},
		{"whitespace only", "    \n ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text)
			if got.IsValid != tt.valid {
				t.Fatalf("Parse(%q).IsValid = %v, want %v", tt.text, got.IsValid, tt.valid)
			}
			if !tt.valid {
				return
			}
			if got.ProblemType != tt.wantType {
				t.Errorf("Parse(%q).ProblemType = %q, want %q", tt.text, got.ProblemType, tt.wantType)
			}
		})
	}
}

func TestParser_ConceptsMatched(t *testing.T) {
	p := NewParser(catalog.Default())
	got := p.Parse("Rewrite the fraction so the numerator and denominator share no factor")
	if got.ProblemType != "fractions" {
		t.Fatalf("ProblemType = %q, want fractions", got.ProblemType)
	}
	want := map[string]bool{"fraction": true, "numerator": true, "denominator": true}
	if len(got.Concepts) != len(want) {
		t.Fatalf("Concepts = %v, want %v", got.Concepts, want)
	}
	for _, c := range got.Concepts {
		if !want[c] {
			t.Errorf("unexpected concept %q", c)
		}
	}
}

type stubImageReader struct {
	res ImageResult
	err error
}

func (s stubImageReader) ProcessImage(ctx context.Context, path string) (ImageResult, error) {
	return s.res, s.err
}

func TestResolveImageInput(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		reader stubImageReader
		want   string
		wantOK bool
	}{
		{
			"confident extraction",
			stubImageReader{res: ImageResult{Success: true, Text: " 2x + 4 = 10 ", Confidence: 0.9}},
			"2x + 4 = 10", true,
		},
		{
			"low confidence",
			stubImageReader{res: ImageResult{Success: true, Text: "2x + 4 = 10", Confidence: 0.2}},
			"", false,
		},
		{
			"backend reported failure",
			stubImageReader{res: ImageResult{Success: false, Confidence: 0.9}},
			"", false,
		},
		{
			"backend error",
			stubImageReader{err: errors.New("decode failed")},
			"", false,
		},
		{
			"empty extraction",
			stubImageReader{res: ImageResult{Success: true, Text: "   ", Confidence: 0.8}},
			"", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveImageInput(ctx, tt.reader, "worksheet.png")
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ResolveImageInput = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
