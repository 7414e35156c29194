// Package adaptive adjusts difficulty and teaching strategy from
// historical session performance.
package adaptive

import (
	"github.com/abhisek/socratiq/internal/profile"
	"github.com/abhisek/socratiq/internal/store"
)

// Level is a difficulty level. Levels form a bounded total order.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Trend is the direction of recent performance.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Difficulty is the controller's recommendation for the next session.
type Difficulty struct {
	CurrentLevel     Level
	RecommendedLevel Level
	AverageSuccess   float64
	Trend            Trend
	Confidence       float64
	Velocity         float64
}

const (
	escalateSuccess      = 0.85
	escalateConfidence   = 0.8
	deescalateSuccess    = 0.4
	deescalateConfidence = 0.7
	trendWindow          = 3
	trendDelta           = 0.05
	styleOverrideSuccess = 0.7
	slowResponseMs       = 15000
)

// ParseLevel maps a stored string to a Level, defaulting to beginner.
func ParseLevel(s string) Level {
	switch Level(s) {
	case Beginner, Intermediate, Advanced:
		return Level(s)
	}
	return Beginner
}

// Increase returns the next level up, saturating at advanced.
func Increase(l Level) Level {
	switch l {
	case Beginner:
		return Intermediate
	case Intermediate:
		return Advanced
	}
	return Advanced
}

// Decrease returns the next level down, saturating at beginner.
func Decrease(l Level) Level {
	switch l {
	case Advanced:
		return Intermediate
	case Intermediate:
		return Beginner
	}
	return Beginner
}

// Calculate recommends a difficulty level from recent performance.
// With no history the current level is kept unchanged.
func Calculate(recent []store.SessionPerformanceRecord, p *profile.Profile) Difficulty {
	current := ParseLevel(p.DifficultyLevel)
	d := Difficulty{
		CurrentLevel:     current,
		RecommendedLevel: current,
		Trend:            TrendStable,
	}
	if len(recent) == 0 {
		return d
	}

	scores := make([]float64, len(recent))
	for i, r := range recent {
		scores[i] = r.MasteryScore
	}

	d.AverageSuccess = mean(scores)
	d.Trend = trendOf(scores)
	d.Confidence = estimateConfidence(scores)
	d.Velocity = regressionSlope(scores)

	switch {
	case d.AverageSuccess >= escalateSuccess && d.Confidence >= escalateConfidence:
		d.RecommendedLevel = Increase(current)
	case d.AverageSuccess <= deescalateSuccess && d.Confidence >= deescalateConfidence:
		d.RecommendedLevel = Decrease(current)
	case d.Velocity < 0 && d.Trend == TrendDeclining:
		d.RecommendedLevel = Decrease(current)
	}

	d.RecommendedLevel = applyStyleOverride(d, p, recent)
	return d
}

// applyStyleOverride adjusts the recommendation for the student's
// learning style. Analytical students who are succeeding get pushed
// one level further; visual students with slow responses are not
// escalated past their current level.
func applyStyleOverride(d Difficulty, p *profile.Profile, recent []store.SessionPerformanceRecord) Level {
	rec := d.RecommendedLevel
	switch p.LearningStyle {
	case profile.StyleAnalytical:
		if d.AverageSuccess >= styleOverrideSuccess && rec == d.CurrentLevel {
			rec = Increase(rec)
		}
	case profile.StyleVisual:
		if avgResponseMs(recent) > slowResponseMs && levelRank(rec) > levelRank(d.CurrentLevel) {
			rec = d.CurrentLevel
		}
	}
	return rec
}

func levelRank(l Level) int {
	switch l {
	case Intermediate:
		return 1
	case Advanced:
		return 2
	}
	return 0
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// trendOf compares the mean of the last trendWindow scores against
// the mean of everything before them.
func trendOf(scores []float64) Trend {
	if len(scores) <= trendWindow {
		return TrendStable
	}
	earlier := mean(scores[:len(scores)-trendWindow])
	recent := mean(scores[len(scores)-trendWindow:])
	switch {
	case recent-earlier > trendDelta:
		return TrendImproving
	case earlier-recent > trendDelta:
		return TrendDeclining
	}
	return TrendStable
}

// estimateConfidence blends sample size with score consistency: more
// sessions and lower variance mean a more trustworthy estimate.
func estimateConfidence(scores []float64) float64 {
	n := float64(len(scores))
	sizeTerm := n / (n + 2)

	m := mean(scores)
	var variance float64
	for _, s := range scores {
		variance += (s - m) * (s - m)
	}
	variance /= n
	consistency := 1 - min(1, variance*4)

	return sizeTerm*0.5 + consistency*0.5
}

// regressionSlope fits mastery score against session index with
// ordinary least squares and returns the slope.
func regressionSlope(scores []float64) float64 {
	n := float64(len(scores))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range scores {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}
