package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	assert.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestTurnEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendTurn(ctx, TurnEventData{
		SessionID:         "sess-1",
		Role:              "student",
		Content:           "I think it might be 8 because both sides match",
		StudentConfidence: 0.6,
		ReasoningScore:    2,
	})
	require.NoError(t, err)

	err = repo.AppendTurn(ctx, TurnEventData{
		SessionID:        "sess-1",
		Role:             "tutor",
		Content:          "What makes you say both sides match?",
		QuestionType:     "evidence",
		DepthLevel:       2,
		TargetedConcepts: []string{"equations"},
	})
	require.NoError(t, err)

	turns, err := repo.SessionTurns(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, turns, 2)

	// Append-only ordering by sequence.
	assert.Less(t, turns[0].Sequence, turns[1].Sequence)
	assert.Equal(t, "student", turns[0].Role)
	assert.Equal(t, "evidence", turns[1].QuestionType)
	assert.Equal(t, []string{"equations"}, turns[1].TargetedConcepts)

	// Other sessions are not visible.
	other, err := repo.SessionTurns(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSessionPerformanceRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionStart(ctx, SessionStartData{
		SessionID:   "sess-1",
		ProblemType: "algebra",
	}))
	require.NoError(t, repo.AppendSessionEnd(ctx, SessionEndData{
		SessionID:         "sess-1",
		ProblemType:       "algebra",
		DurationSecs:      600,
		Interactions:      12,
		CompletionRate:    1.0,
		MasteryScore:      0.75,
		ConceptsLearned:   []string{"variables"},
		ConceptsStruggled: []string{"distribution"},
		HintsUsed:         2,
		DirectAnswerCount: 0,
		MaxDepth:          3,
		AvgResponseMs:     9000,
	}))

	perfs, err := repo.SessionPerformances(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, perfs, 1, "only end events count as performances")

	p := perfs[0]
	assert.Equal(t, "sess-1", p.SessionID)
	assert.Equal(t, 0.75, p.MasteryScore)
	assert.Equal(t, []string{"variables"}, p.ConceptsLearned)
	assert.Equal(t, 3, p.MaxDepth)
}

func TestViolationCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	n, err := repo.ViolationCount(ctx, "sess-1")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.AppendViolation(ctx, ViolationEventData{
		SessionID: "sess-1",
		Utterance: "The answer is 42.",
		Pattern:   "answer-phrase",
	}))

	n, err = repo.ViolationCount(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	profile := &StudentProfileData{
		LearningStyle:          "analytical",
		KnowledgeGaps:          []string{"fractions"},
		Strengths:              []string{"patterns"},
		PreferredQuestionStyle: "evidence",
		DifficultyLevel:        "intermediate",
		QuestionResponses: []QuestionResponseData{
			{QuestionType: "clarification", Count: 4, AvgConfidence: 0.55},
		},
		Analytics: ProfileAnalyticsData{
			SuccessRate:      0.7,
			LearningVelocity: 0.05,
			SessionsAnalyzed: 6,
			UpdatedAt:        time.Now().UTC().Format(time.RFC3339),
		},
	}

	require.NoError(t, repo.Save(ctx, &Snapshot{
		Sequence:  10,
		Timestamp: time.Now(),
		Data:      SnapshotData{Version: 1, Profile: profile},
	}))

	loaded, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.NotNil(t, loaded.Data.Profile)

	// Serialize-then-reload yields the same profile.
	assert.Equal(t, profile, loaded.Data.Profile)
	assert.Equal(t, int64(10), loaded.Sequence)
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		}))
	}

	require.NoError(t, repo.Prune(ctx, 2))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, int64(4), latest.Sequence, "latest snapshot survives pruning")
}

func TestLLMEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		SessionID:    "sess-7",
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "socratic-turn",
		InputTokens:  420,
		OutputTokens: 35,
		LatencyMs:    812,
		Success:      true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "opening-question",
		Success:      false,
		ErrorMessage: "provider unavailable",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "opening-question", events[0].Purpose)
	assert.Empty(t, events[0].SessionID)
	assert.False(t, events[0].Success)

	assert.Equal(t, "sess-7", events[1].SessionID)
	assert.Equal(t, 420, events[1].InputTokens)
	assert.True(t, events[1].Success)
}
