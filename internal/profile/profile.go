// Package profile holds the long-lived student profile and its
// conversions to and from the persisted snapshot form.
package profile

import (
	"sort"
	"time"

	"github.com/abhisek/socratiq/internal/store"
)

// Learning styles inferred by the analytics aggregator.
const (
	StyleVisual     = "visual"
	StyleVerbal     = "verbal"
	StyleAnalytical = "analytical"
	StyleBalanced   = "balanced"
)

// QuestionStats aggregates how a student responds to one question type.
type QuestionStats struct {
	Count         int
	AvgConfidence float64
}

// Analytics is the rolled-up view refreshed after each session batch.
type Analytics struct {
	SuccessRate      float64
	LearningVelocity float64
	SessionsAnalyzed int
	UpdatedAt        time.Time
}

// Profile is the runtime student profile.
type Profile struct {
	LearningStyle          string
	KnowledgeGaps          []string
	Strengths              []string
	PreferredQuestionStyle string
	DifficultyLevel        string
	QuestionResponses      map[string]QuestionStats
	Analytics              Analytics
}

// Default returns the profile used when no snapshot exists yet.
func Default() *Profile {
	return &Profile{
		LearningStyle:          StyleBalanced,
		PreferredQuestionStyle: "clarification",
		DifficultyLevel:        "beginner",
		QuestionResponses:      map[string]QuestionStats{},
	}
}

// RecordResponse folds one observed confidence into the running
// average for the given question type.
func (p *Profile) RecordResponse(questionType string, confidence float64) {
	if p.QuestionResponses == nil {
		p.QuestionResponses = map[string]QuestionStats{}
	}
	s := p.QuestionResponses[questionType]
	s.AvgConfidence = (s.AvgConfidence*float64(s.Count) + confidence) / float64(s.Count+1)
	s.Count++
	p.QuestionResponses[questionType] = s
}

// ToData converts to the persisted form. Question responses are
// sorted by type so the serialized profile is stable.
func (p *Profile) ToData() *store.StudentProfileData {
	types := make([]string, 0, len(p.QuestionResponses))
	for qt := range p.QuestionResponses {
		types = append(types, qt)
	}
	sort.Strings(types)

	responses := make([]store.QuestionResponseData, 0, len(types))
	for _, qt := range types {
		s := p.QuestionResponses[qt]
		responses = append(responses, store.QuestionResponseData{
			QuestionType:  qt,
			Count:         s.Count,
			AvgConfidence: s.AvgConfidence,
		})
	}

	var updated string
	if !p.Analytics.UpdatedAt.IsZero() {
		updated = p.Analytics.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return &store.StudentProfileData{
		LearningStyle:          p.LearningStyle,
		KnowledgeGaps:          append([]string(nil), p.KnowledgeGaps...),
		Strengths:              append([]string(nil), p.Strengths...),
		PreferredQuestionStyle: p.PreferredQuestionStyle,
		DifficultyLevel:        p.DifficultyLevel,
		QuestionResponses:      responses,
		Analytics: store.ProfileAnalyticsData{
			SuccessRate:      p.Analytics.SuccessRate,
			LearningVelocity: p.Analytics.LearningVelocity,
			SessionsAnalyzed: p.Analytics.SessionsAnalyzed,
			UpdatedAt:        updated,
		},
	}
}

// FromData converts the persisted form back to a runtime profile.
// A nil input yields the default profile.
func FromData(data *store.StudentProfileData) *Profile {
	if data == nil {
		return Default()
	}

	responses := make(map[string]QuestionStats, len(data.QuestionResponses))
	for _, r := range data.QuestionResponses {
		responses[r.QuestionType] = QuestionStats{
			Count:         r.Count,
			AvgConfidence: r.AvgConfidence,
		}
	}

	var updated time.Time
	if data.Analytics.UpdatedAt != "" {
		if ts, err := time.Parse(time.RFC3339, data.Analytics.UpdatedAt); err == nil {
			updated = ts
		}
	}

	p := &Profile{
		LearningStyle:          data.LearningStyle,
		KnowledgeGaps:          append([]string(nil), data.KnowledgeGaps...),
		Strengths:              append([]string(nil), data.Strengths...),
		PreferredQuestionStyle: data.PreferredQuestionStyle,
		DifficultyLevel:        data.DifficultyLevel,
		QuestionResponses:      responses,
		Analytics: Analytics{
			SuccessRate:      data.Analytics.SuccessRate,
			LearningVelocity: data.Analytics.LearningVelocity,
			SessionsAnalyzed: data.Analytics.SessionsAnalyzed,
			UpdatedAt:        updated,
		},
	}
	if p.LearningStyle == "" {
		p.LearningStyle = StyleBalanced
	}
	if p.DifficultyLevel == "" {
		p.DifficultyLevel = "beginner"
	}
	if p.PreferredQuestionStyle == "" {
		p.PreferredQuestionStyle = "clarification"
	}
	return p
}
