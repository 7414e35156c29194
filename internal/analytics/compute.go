// Package analytics rolls historical session performance up into the
// student profile: success rate, learning velocity, gaps, strengths,
// daily trends, and a heuristic learning-style call.
package analytics

import (
	"sort"
	"time"

	"github.com/abhisek/socratiq/internal/profile"
	"github.com/abhisek/socratiq/internal/store"
)

const (
	velocityWindow    = 10
	gapThreshold      = 0.6
	strengthThreshold = 0.8
	strengthMinOcc    = 2
	maxGaps           = 5
	maxStrengths      = 5
	styleMinSessions  = 5
)

// successRate is the mean mastery score over completed sessions.
func successRate(sessions []store.SessionPerformanceRecord) float64 {
	if len(sessions) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sessions {
		sum += s.MasteryScore
	}
	return sum / float64(len(sessions))
}

// learningVelocity compares the latest window of mastery scores with
// the window before it. With too little history it falls back to the
// delta between the latest score and the first.
func learningVelocity(sessions []store.SessionPerformanceRecord) float64 {
	n := len(sessions)
	if n < 2 {
		return 0
	}
	if n < 2*velocityWindow {
		return sessions[n-1].MasteryScore - sessions[0].MasteryScore
	}
	recent := sessions[n-velocityWindow:]
	previous := sessions[n-2*velocityWindow : n-velocityWindow]
	return successRate(recent) - successRate(previous)
}

// conceptScores flattens sessions into per-concept occurrence scores:
// a learned concept scores 1, a struggled one scores 0.
func conceptScores(sessions []store.SessionPerformanceRecord) map[string][]float64 {
	scores := map[string][]float64{}
	for _, s := range sessions {
		for _, c := range s.ConceptsLearned {
			scores[c] = append(scores[c], 1)
		}
		for _, c := range s.ConceptsStruggled {
			scores[c] = append(scores[c], 0)
		}
	}
	return scores
}

// knowledgeGaps returns concepts averaging below the gap threshold,
// worst first, capped.
func knowledgeGaps(sessions []store.SessionPerformanceRecord) []string {
	type scored struct {
		concept string
		avg     float64
	}
	var gaps []scored
	for concept, scores := range conceptScores(sessions) {
		if avg := mean(scores); avg < gapThreshold {
			gaps = append(gaps, scored{concept, avg})
		}
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].avg != gaps[j].avg {
			return gaps[i].avg < gaps[j].avg
		}
		return gaps[i].concept < gaps[j].concept
	})
	if len(gaps) > maxGaps {
		gaps = gaps[:maxGaps]
	}
	out := make([]string, len(gaps))
	for i, g := range gaps {
		out[i] = g.concept
	}
	return out
}

// strengths returns concepts seen at least twice averaging at or
// above the strength threshold, best first, capped.
func strengths(sessions []store.SessionPerformanceRecord) []string {
	type scored struct {
		concept string
		avg     float64
	}
	var strong []scored
	for concept, scores := range conceptScores(sessions) {
		if len(scores) < strengthMinOcc {
			continue
		}
		if avg := mean(scores); avg >= strengthThreshold {
			strong = append(strong, scored{concept, avg})
		}
	}
	sort.Slice(strong, func(i, j int) bool {
		if strong[i].avg != strong[j].avg {
			return strong[i].avg > strong[j].avg
		}
		return strong[i].concept < strong[j].concept
	})
	if len(strong) > maxStrengths {
		strong = strong[:maxStrengths]
	}
	out := make([]string, len(strong))
	for i, s := range strong {
		out[i] = s.concept
	}
	return out
}

// DailyTrend is one day's aggregate performance.
type DailyTrend struct {
	Day      time.Time
	Sessions int
	Mastery  float64
}

// dailyTrends buckets sessions by calendar day over the trailing
// window, oldest day first. Days with no sessions are omitted.
func dailyTrends(sessions []store.SessionPerformanceRecord, windowDays int, now time.Time) []DailyTrend {
	cutoff := now.AddDate(0, 0, -windowDays)
	type bucket struct {
		count int
		sum   float64
	}
	buckets := map[time.Time]*bucket{}
	for _, s := range sessions {
		if s.Timestamp.Before(cutoff) {
			continue
		}
		day := s.Timestamp.UTC().Truncate(24 * time.Hour)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.count++
		b.sum += s.MasteryScore
	}

	days := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	trends := make([]DailyTrend, len(days))
	for i, day := range days {
		b := buckets[day]
		trends[i] = DailyTrend{Day: day, Sessions: b.count, Mastery: b.sum / float64(b.count)}
	}
	return trends
}

// inferLearningStyle reads response-time and session-length patterns.
// It stays quiet (empty string) until enough sessions exist.
func inferLearningStyle(sessions []store.SessionPerformanceRecord) string {
	if len(sessions) < styleMinSessions {
		return ""
	}
	var totalMs, totalSecs, totalInteractions int
	for _, s := range sessions {
		totalMs += s.AvgResponseMs
		totalSecs += s.DurationSecs
		totalInteractions += s.Interactions
	}
	n := len(sessions)
	avgMs := totalMs / n
	avgSecs := totalSecs / n
	avgInteractions := totalInteractions / n

	switch {
	case avgMs > 12000:
		return profile.StyleVisual
	case avgMs < 5000 && avgInteractions >= 10:
		return profile.StyleAnalytical
	case avgSecs > 900:
		return profile.StyleVerbal
	}
	return profile.StyleBalanced
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
