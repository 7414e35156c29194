package violation

import (
	"testing"

	"github.com/abhisek/socratiq/internal/catalog"
)

func TestDetector_ContainsDirectAnswer(t *testing.T) {
	d := New(catalog.Default())

	tests := []struct {
		name      string
		utterance string
		want      bool
	}{
		{"giveaway phrase", "Well, the answer is 42, as you can see.", true},
		{"giveaway phrase capitalized", "The Final Answer here would be 7.", true},
		{"imperative leak", "Just multiply both sides by 3 and you are done.", true},
		{"bare numeric closer", "Think about the distributive property. x = 12.", true},
		{"bare number only", "12", true},
		{"so prefix", "So 15.", true},
		{"clean question", "What happens to the equation when you divide both sides by 2?", false},
		{"number inside question", "You wrote 12 earlier. What made you choose 12?", false},
		{"number mid-sentence", "The 3 in the numerator matters here. What role does it play?", false},
		{"empty", "", false},
		{"mentions answer without giving it", "How could you check whether your answer holds up?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.ContainsDirectAnswer(tt.utterance); got != tt.want {
				t.Errorf("ContainsDirectAnswer(%q) = %v, want %v", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestDetector_Pattern(t *testing.T) {
	d := New(catalog.Default())

	if got := d.Pattern("the answer is 9"); got != "the answer is" {
		t.Errorf("Pattern = %q, want %q", got, "the answer is")
	}
	if got := d.Pattern("Look again. x = 4."); got != "bare-numeric-answer" {
		t.Errorf("Pattern = %q, want bare-numeric-answer", got)
	}
	if got := d.Pattern("What do you notice about the signs?"); got != "" {
		t.Errorf("Pattern on clean text = %q, want empty", got)
	}
}
