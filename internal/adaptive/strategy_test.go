package adaptive

import (
	"testing"

	"github.com/abhisek/socratiq/internal/profile"
)

func TestStrategyFor(t *testing.T) {
	s := StrategyFor(profile.StyleAnalytical, Advanced)
	if s.Approach != "step decomposition" {
		t.Errorf("analytical approach = %q", s.Approach)
	}
	if s.Pacing != "brisk" {
		t.Errorf("advanced pacing = %q, want brisk", s.Pacing)
	}

	s = StrategyFor(profile.StyleVisual, Beginner)
	if s.Pacing != "slow" || s.FeedbackStyle != "encouraging" {
		t.Errorf("beginner visual strategy = %+v", s)
	}
}

func TestRankProblems_GapCoverageWins(t *testing.T) {
	p := profile.Default()
	p.KnowledgeGaps = []string{"denominator"}

	candidates := []Candidate{
		{ID: "a", ProblemType: "fractions", Difficulty: Beginner, Concepts: []string{"numerator"}},
		{ID: "b", ProblemType: "fractions", Difficulty: Beginner, Concepts: []string{"denominator"}},
	}
	ranked := RankProblems(candidates, p, Beginner)
	if ranked[0].ID != "b" {
		t.Errorf("top candidate = %q, want the gap-covering one", ranked[0].ID)
	}
}

func TestRankProblems_InterleavesTypes(t *testing.T) {
	p := profile.Default()
	candidates := []Candidate{
		{ID: "a1", ProblemType: "algebra", Difficulty: Intermediate},
		{ID: "a2", ProblemType: "algebra", Difficulty: Intermediate},
		{ID: "a3", ProblemType: "algebra", Difficulty: Intermediate},
		{ID: "g1", ProblemType: "geometry", Difficulty: Intermediate},
	}
	ranked := RankProblems(candidates, p, Intermediate)
	if len(ranked) != 4 {
		t.Fatalf("ranked length = %d, want 4", len(ranked))
	}
	top2 := map[string]bool{ranked[0].ProblemType: true, ranked[1].ProblemType: true}
	if !top2["algebra"] || !top2["geometry"] {
		t.Errorf("top two types = %v, want both algebra and geometry", top2)
	}
}

func TestRecommendations_CappedAndOrdered(t *testing.T) {
	p := profile.Default()
	p.KnowledgeGaps = []string{"fractions", "negative numbers", "ratios"}
	p.Strengths = []string{"arithmetic", "estimation"}

	d := Difficulty{
		CurrentLevel:     Intermediate,
		RecommendedLevel: Advanced,
		AverageSuccess:   0.9,
		Trend:            TrendDeclining,
	}
	recs := Recommendations(d, p)
	if len(recs) != 5 {
		t.Fatalf("got %d recommendations, want capped at 5", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Priority < recs[i-1].Priority {
			t.Fatalf("recommendations out of priority order: %+v", recs)
		}
	}
}

func TestRecommendations_EmptyProfile(t *testing.T) {
	recs := Recommendations(Difficulty{CurrentLevel: Beginner, RecommendedLevel: Beginner, Trend: TrendStable}, profile.Default())
	if len(recs) != 0 {
		t.Errorf("recommendations for empty profile = %+v, want none", recs)
	}
}
