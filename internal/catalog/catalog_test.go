package catalog

import "testing"

func TestContainsAny(t *testing.T) {
	c := Default()

	tests := []struct {
		text     string
		patterns []string
		want     bool
	}{
		{"I don't know what to do", c.Uncertainty, true},
		{"I'M SURE it's 4", c.Confidence, true},
		{"Maybe it works", c.Hedging, true},
		{"the slope is two", c.Uncertainty, false},
		{"", c.Uncertainty, false},
	}

	for _, tt := range tests {
		if got := ContainsAny(tt.text, tt.patterns); got != tt.want {
			t.Errorf("ContainsAny(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestFirstMatch(t *testing.T) {
	c := Default()
	if got := FirstMatch("The answer is 12", c.Leak.Phrases); got != "the answer is" {
		t.Errorf("FirstMatch = %q, want %q", got, "the answer is")
	}
	if got := FirstMatch("What do you think?", c.Leak.Phrases); got != "" {
		t.Errorf("FirstMatch = %q, want empty", got)
	}
}

func TestMatchConcepts(t *testing.T) {
	c := Default()

	got := c.MatchConcepts("algebra", "Solve for the variable in this equation")
	if len(got) == 0 {
		t.Fatal("expected algebra concepts to match")
	}
	for _, term := range got {
		if term != "variable" && term != "equation" && term != "solve" {
			t.Errorf("unexpected concept %q", term)
		}
	}

	if got := c.MatchConcepts("unknown-type", "anything"); got != nil {
		t.Errorf("unknown problem type should return nil, got %v", got)
	}
}

func TestDepthClassesOrder(t *testing.T) {
	c := Default()
	classes := c.Depth.Classes()
	if len(classes) != 5 {
		t.Fatalf("got %d depth classes, want 5", len(classes))
	}
	for i, class := range classes {
		if len(class) == 0 {
			t.Errorf("depth class %d is empty", i)
		}
	}
}

func TestEveryStageHasPrompts(t *testing.T) {
	c := Default()
	stages := []string{"wonder-receive", "reflect", "refine-cross-examine", "restate", "repeat"}
	for _, s := range stages {
		if len(c.Metacognitive[s]) == 0 {
			t.Errorf("no metacognitive prompts for stage %q", s)
		}
	}
}

func TestEveryQuestionTypeHasStems(t *testing.T) {
	c := Default()
	types := []string{"clarification", "assumptions", "evidence", "perspective", "implications", "meta-questioning"}
	for _, qt := range types {
		if len(c.Stems[qt]) == 0 {
			t.Errorf("no stems for question type %q", qt)
		}
	}
}
