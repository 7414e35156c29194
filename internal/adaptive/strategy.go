package adaptive

import (
	"fmt"
	"sort"

	"github.com/abhisek/socratiq/internal/profile"
	"github.com/abhisek/socratiq/internal/store"
)

// Strategy is the teaching posture derived from learning style and
// current difficulty.
type Strategy struct {
	Approach         string
	QuestioningStyle string
	FeedbackStyle    string
	Pacing           string
}

// StrategyFor derives a teaching strategy for the given style and level.
func StrategyFor(style string, level Level) Strategy {
	s := Strategy{
		Approach:         "guided discovery",
		QuestioningStyle: "open-ended",
		FeedbackStyle:    "encouraging",
		Pacing:           "moderate",
	}
	switch style {
	case profile.StyleVisual:
		s.Approach = "diagram-first exploration"
		s.QuestioningStyle = "describe what you see"
	case profile.StyleAnalytical:
		s.Approach = "step decomposition"
		s.QuestioningStyle = "justify each step"
		s.FeedbackStyle = "precise"
	case profile.StyleVerbal:
		s.Approach = "talk it through"
		s.QuestioningStyle = "restate and compare"
	}
	switch level {
	case Beginner:
		s.Pacing = "slow"
		s.FeedbackStyle = "encouraging"
	case Advanced:
		s.Pacing = "brisk"
	}
	return s
}

// Candidate is a problem considered for the next session.
type Candidate struct {
	ID          string
	ProblemType string
	Difficulty  Level
	Concepts    []string
}

// rankedCandidate pairs a candidate with its fit score.
type rankedCandidate struct {
	Candidate
	score float64
}

// RankProblems scores candidates by type preference, knowledge-gap
// coverage, difficulty match, and learning-style fit, then interleaves
// by problem type so the top of the list is varied.
func RankProblems(candidates []Candidate, p *profile.Profile, target Level) []Candidate {
	ranked := make([]rankedCandidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = rankedCandidate{Candidate: c, score: scoreCandidate(c, p, target)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	// Round-robin across types, highest scored first within each type.
	byType := map[string][]rankedCandidate{}
	var typeOrder []string
	for _, r := range ranked {
		if _, seen := byType[r.ProblemType]; !seen {
			typeOrder = append(typeOrder, r.ProblemType)
		}
		byType[r.ProblemType] = append(byType[r.ProblemType], r)
	}

	out := make([]Candidate, 0, len(candidates))
	for len(out) < len(candidates) {
		for _, pt := range typeOrder {
			if len(byType[pt]) == 0 {
				continue
			}
			out = append(out, byType[pt][0].Candidate)
			byType[pt] = byType[pt][1:]
		}
	}
	return out
}

func scoreCandidate(c Candidate, p *profile.Profile, target Level) float64 {
	var score float64

	if c.Difficulty == target {
		score += 0.4
	} else if levelDistance(c.Difficulty, target) == 1 {
		score += 0.2
	}

	gaps := map[string]bool{}
	for _, g := range p.KnowledgeGaps {
		gaps[g] = true
	}
	for _, concept := range c.Concepts {
		if gaps[concept] {
			score += 0.2
		}
	}

	if stats, ok := p.QuestionResponses[c.ProblemType]; ok && stats.AvgConfidence >= 0.6 {
		score += 0.1
	}
	if p.LearningStyle == profile.StyleVisual && c.ProblemType == "geometry" {
		score += 0.1
	}
	if p.LearningStyle == profile.StyleAnalytical && c.ProblemType == "algebra" {
		score += 0.1
	}
	return score
}

func levelDistance(a, b Level) int {
	d := levelRank(a) - levelRank(b)
	if d < 0 {
		return -d
	}
	return d
}

// Recommendation is a prioritized next action for the student.
type Recommendation struct {
	Priority int // lower is more urgent
	Text     string
}

const maxRecommendations = 5

// Recommendations builds a priority-ordered action list, capped to
// the five most urgent items.
func Recommendations(d Difficulty, p *profile.Profile) []Recommendation {
	var recs []Recommendation

	for i, gap := range p.KnowledgeGaps {
		if i >= 2 {
			break
		}
		recs = append(recs, Recommendation{
			Priority: 1,
			Text:     fmt.Sprintf("Revisit %s with a short guided session", gap),
		})
	}
	if d.Trend == TrendDeclining {
		recs = append(recs, Recommendation{
			Priority: 1,
			Text:     "Scores are slipping; repeat a recent problem type before moving on",
		})
	}
	if d.RecommendedLevel != d.CurrentLevel {
		recs = append(recs, Recommendation{
			Priority: 2,
			Text:     fmt.Sprintf("Move to %s problems next session", d.RecommendedLevel),
		})
	}
	if d.AverageSuccess >= escalateSuccess {
		recs = append(recs, Recommendation{
			Priority: 3,
			Text:     "Try a multi-step problem that combines two concepts",
		})
	}
	for i, s := range p.Strengths {
		if i >= 2 {
			break
		}
		recs = append(recs, Recommendation{
			Priority: 4,
			Text:     fmt.Sprintf("Use %s as an anchor when a new topic feels hard", s),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority < recs[j].Priority })
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func avgResponseMs(recent []store.SessionPerformanceRecord) int {
	if len(recent) == 0 {
		return 0
	}
	var total int
	for _, r := range recent {
		total += r.AvgResponseMs
	}
	return total / len(recent)
}
