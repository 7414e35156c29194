package profile

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/socratiq/internal/store"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.DifficultyLevel != "beginner" {
		t.Errorf("default difficulty = %q, want beginner", p.DifficultyLevel)
	}
	if p.LearningStyle != StyleBalanced {
		t.Errorf("default style = %q, want balanced", p.LearningStyle)
	}
	if p.QuestionResponses == nil {
		t.Error("default profile has nil QuestionResponses map")
	}
}

func TestRecordResponse_RunningAverage(t *testing.T) {
	p := Default()
	p.RecordResponse("evidence", 0.4)
	p.RecordResponse("evidence", 0.8)
	p.RecordResponse("clarification", 0.6)

	ev := p.QuestionResponses["evidence"]
	if ev.Count != 2 {
		t.Errorf("evidence count = %d, want 2", ev.Count)
	}
	if math.Abs(ev.AvgConfidence-0.6) > 1e-9 {
		t.Errorf("evidence avg = %v, want 0.6", ev.AvgConfidence)
	}
	if cl := p.QuestionResponses["clarification"]; cl.Count != 1 || cl.AvgConfidence != 0.6 {
		t.Errorf("clarification stats = %+v, want count 1 avg 0.6", cl)
	}
}

func TestRoundTrip(t *testing.T) {
	p := &Profile{
		LearningStyle:          StyleAnalytical,
		KnowledgeGaps:          []string{"fractions", "negative numbers"},
		Strengths:              []string{"arithmetic"},
		PreferredQuestionStyle: "evidence",
		DifficultyLevel:        "intermediate",
		QuestionResponses: map[string]QuestionStats{
			"evidence":      {Count: 3, AvgConfidence: 0.7},
			"clarification": {Count: 5, AvgConfidence: 0.5},
		},
		Analytics: Analytics{
			SuccessRate:      0.82,
			LearningVelocity: 0.05,
			SessionsAnalyzed: 7,
			UpdatedAt:        time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	got := FromData(p.ToData())

	if got.LearningStyle != p.LearningStyle || got.DifficultyLevel != p.DifficultyLevel {
		t.Errorf("round-trip lost identity fields: %+v", got)
	}
	if len(got.KnowledgeGaps) != 2 || got.KnowledgeGaps[0] != "fractions" {
		t.Errorf("round-trip gaps = %v", got.KnowledgeGaps)
	}
	if len(got.QuestionResponses) != 2 {
		t.Fatalf("round-trip responses = %v", got.QuestionResponses)
	}
	if got.QuestionResponses["evidence"] != (QuestionStats{Count: 3, AvgConfidence: 0.7}) {
		t.Errorf("round-trip evidence stats = %+v", got.QuestionResponses["evidence"])
	}
	if !got.Analytics.UpdatedAt.Equal(p.Analytics.UpdatedAt) {
		t.Errorf("round-trip UpdatedAt = %v, want %v", got.Analytics.UpdatedAt, p.Analytics.UpdatedAt)
	}
	if got.Analytics.SessionsAnalyzed != 7 {
		t.Errorf("round-trip SessionsAnalyzed = %d, want 7", got.Analytics.SessionsAnalyzed)
	}
}

func TestFromData_NilAndEmptyDefaults(t *testing.T) {
	if p := FromData(nil); p.DifficultyLevel != "beginner" {
		t.Errorf("FromData(nil) difficulty = %q, want beginner", p.DifficultyLevel)
	}
	p := FromData(&store.StudentProfileData{})
	if p.LearningStyle != StyleBalanced || p.DifficultyLevel != "beginner" {
		t.Errorf("FromData(empty) = %+v, want balanced/beginner defaults", p)
	}
}

func TestToData_StableOrdering(t *testing.T) {
	p := Default()
	p.RecordResponse("perspective", 0.5)
	p.RecordResponse("assumptions", 0.5)
	p.RecordResponse("evidence", 0.5)

	data := p.ToData()
	want := []string{"assumptions", "evidence", "perspective"}
	for i, r := range data.QuestionResponses {
		if r.QuestionType != want[i] {
			t.Errorf("responses[%d] = %q, want %q", i, r.QuestionType, want[i])
		}
	}
}
