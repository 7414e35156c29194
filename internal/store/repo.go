package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// TurnEventData captures one dialogue message for persistence.
type TurnEventData struct {
	SessionID          string
	Role               string // "student" or "tutor"
	Content            string
	QuestionType       string
	DepthLevel         int
	TargetedConcepts   []string
	StudentConfidence  float64
	UnderstandingCheck bool
	ConfidenceDelta    float64
	ReasoningScore     int
	TeachBackScore     int
	TransferAttempt    bool
	Breakthrough       bool
}

// TurnRecord is a persisted turn read back from the log.
type TurnRecord struct {
	Sequence  int64
	Timestamp time.Time
	TurnEventData
}

// SessionStartData captures the start of a tutoring session.
type SessionStartData struct {
	SessionID   string
	ProblemType string
}

// SessionEndData captures the finalized performance aggregate for a session.
type SessionEndData struct {
	SessionID         string
	ProblemType       string
	DurationSecs      int
	Interactions      int
	CompletionRate    float64
	MasteryScore      float64
	ConceptsLearned   []string
	ConceptsStruggled []string
	HintsUsed         int
	DirectAnswerCount int
	MaxDepth          int
	AvgResponseMs     int
}

// SessionPerformanceRecord is a completed session read back from the log.
// Immutable historical input for the adaptive controller and analytics.
type SessionPerformanceRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionEndData
}

// ViolationEventData captures a direct-answer leak in a tutor utterance.
type ViolationEventData struct {
	SessionID string
	Utterance string
	Pattern   string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	SessionID    string // empty for requests made outside a session
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is a persisted LLM request event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendTurn records one dialogue message.
	AppendTurn(ctx context.Context, data TurnEventData) error

	// AppendSessionStart records the beginning of a session.
	AppendSessionStart(ctx context.Context, data SessionStartData) error

	// AppendSessionEnd records the finalized session performance.
	AppendSessionEnd(ctx context.Context, data SessionEndData) error

	// AppendViolation records a direct-answer policy violation.
	AppendViolation(ctx context.Context, data ViolationEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SessionTurns returns the ordered conversation history for a session.
	SessionTurns(ctx context.Context, sessionID string) ([]TurnRecord, error)

	// SessionPerformances returns completed sessions, oldest first.
	SessionPerformances(ctx context.Context, opts QueryOpts) ([]SessionPerformanceRecord, error)

	// ViolationCount returns the number of violations recorded for a session.
	ViolationCount(ctx context.Context, sessionID string) (int, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)
}

// QuestionResponseData aggregates how a student responds to one question type.
type QuestionResponseData struct {
	QuestionType  string  `json:"question_type"`
	Count         int     `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// ProfileAnalyticsData is the persisted analytics snapshot inside a profile.
type ProfileAnalyticsData struct {
	SuccessRate      float64 `json:"success_rate"`
	LearningVelocity float64 `json:"learning_velocity"`
	SessionsAnalyzed int     `json:"sessions_analyzed"`
	UpdatedAt        string  `json:"updated_at"` // RFC3339
}

// StudentProfileData is the persisted form of the long-lived student profile.
type StudentProfileData struct {
	LearningStyle          string                 `json:"learning_style"`
	KnowledgeGaps          []string               `json:"knowledge_gaps"`
	Strengths              []string               `json:"strengths"`
	PreferredQuestionStyle string                 `json:"preferred_question_style"`
	DifficultyLevel        string                 `json:"difficulty_level"`
	QuestionResponses      []QuestionResponseData `json:"question_responses"`
	Analytics              ProfileAnalyticsData   `json:"analytics"`
}

// SnapshotData captures the full student profile at a point in time.
type SnapshotData struct {
	Version int                 `json:"version"`
	Profile *StudentProfileData `json:"profile,omitempty"`
}

// Snapshot represents a point-in-time capture of the student profile.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages student profile snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
