package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/socratiq/internal/adaptive"
	"github.com/abhisek/socratiq/internal/dialogue"
	"github.com/abhisek/socratiq/internal/llm"
	"github.com/abhisek/socratiq/internal/problem"
	"github.com/abhisek/socratiq/internal/socratic"
	"github.com/abhisek/socratiq/internal/store"
)

// Session is one tutoring conversation. Turns for a session are
// serialized by its mutex; transitions depend on the previous turn.
type Session struct {
	engine   *Engine
	id       string
	problem  problem.Parsed
	strategy adaptive.Strategy

	mu      sync.Mutex
	tracker *dialogue.Tracker
	history []llm.Message

	lastType       socratic.QuestionType
	pendingCheck   bool
	prevConfidence float64
	hasPrev        bool

	studentTurns    int
	confidenceSum   float64
	responseMsTotal int64
	hintsUsed       int
	directAnswers   int

	learned   map[string]bool
	struggled map[string]bool

	started     time.Time
	lastTutorAt time.Time
	ended       bool
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Problem returns the parsed problem this session tutors.
func (s *Session) Problem() problem.Parsed { return s.problem }

// State returns the current dialogue state.
func (s *Session) State() dialogue.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.State()
}

// RespondToStudent runs one full turn: assess the utterance, pick the
// next question type, render the question, and screen it for leaks.
// A provider failure is returned as-is with the dialogue state
// untouched, so the caller can retry the same turn.
func (s *Session) RespondToStudent(ctx context.Context, utterance string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return "", ErrEmptyUtterance
	}

	e := s.engine
	now := e.now()
	responseMs := int64(0)
	if !s.lastTutorAt.IsZero() {
		responseMs = now.Sub(s.lastTutorAt).Milliseconds()
	}

	a := e.assessor.Assess(trimmed)
	delta := 0.0
	if s.hasPrev {
		delta = a.ConfidenceLevel - s.prevConfidence
	}
	concepts := e.catalog.MatchConcepts(s.problem.ProblemType, trimmed)

	wasCheck := s.pendingCheck
	checkPassed := wasCheck && a.ReadinessForAdvancement

	makeCheck := (s.studentTurns+1)%checkCadence == 0
	var qtype socratic.QuestionType
	if makeCheck {
		qtype = socratic.UnderstandingCheckType(a)
	} else {
		qtype = e.selector.ContextualType(a, s.lastType)
	}

	req := llm.Request{
		System:    systemPrompt(s.problem, s.strategy, s.tracker.State()),
		Messages:  append(s.historyCopy(), llm.Message{Role: llm.RoleUser, Content: turnPrompt(e.catalog, qtype, s.tracker.State().Stage, trimmed)}),
		Schema:    turnSchema(),
		MaxTokens: 1024,
	}
	resp, err := e.provider.Generate(llm.WithSession(llm.WithPurpose(ctx, "socratic-turn"), s.id), req)
	if err != nil {
		return "", fmt.Errorf("completion service: %w", err)
	}
	reply, err := decodeTurn(resp.Content)
	if err != nil {
		return "", fmt.Errorf("completion service: %w", err)
	}

	if e.detector.ContainsDirectAnswer(reply.Question) {
		s.directAnswers++
		// Logged best-effort; a failed write must not stall the turn.
		_ = e.events.AppendViolation(ctx, store.ViolationEventData{
			SessionID: s.id,
			Utterance: reply.Question,
			Pattern:   e.detector.Pattern(reply.Question),
		})
	}

	// Advance a staged copy and swap it in only once both turn events
	// are recorded. An append failure must leave no trace of the turn
	// so the caller can resubmit the same utterance.
	staged := s.tracker.Clone()
	st := staged.Advance(dialogue.Turn{
		Assessment:         a,
		QuestionType:       qtype,
		UnderstandingCheck: wasCheck,
		CheckPassed:        checkPassed,
		Concepts:           mergeConcepts(concepts, reply.Concepts),
	})

	if err := e.events.AppendTurn(ctx, store.TurnEventData{
		SessionID:          s.id,
		Role:               "student",
		Content:            trimmed,
		DepthLevel:         st.Depth,
		TargetedConcepts:   concepts,
		StudentConfidence:  a.ConfidenceLevel,
		UnderstandingCheck: wasCheck,
		ConfidenceDelta:    delta,
		ReasoningScore:     a.DepthOfThinking,
		TeachBackScore:     a.ConceptualUnderstanding,
		TransferAttempt:    a.TransferAttempt,
		Breakthrough:       delta >= breakthroughDelta,
	}); err != nil {
		return "", fmt.Errorf("recording student turn: %w", err)
	}
	if err := s.appendTutorTurn(ctx, reply.Question, qtype, st.Depth, makeCheck, reply.Concepts); err != nil {
		return "", err
	}
	s.tracker = staged

	e.mu.Lock()
	if s.lastType != "" {
		e.profile.RecordResponse(string(s.lastType), a.ConfidenceLevel)
	}
	e.mu.Unlock()

	s.studentTurns++
	s.confidenceSum += a.ConfidenceLevel
	s.responseMsTotal += responseMs
	if a.ConfidenceLevel < 0.2 {
		s.hintsUsed++
	}
	s.trackConcepts(concepts, a.ConfidenceLevel)
	s.history = append(s.history,
		llm.Message{Role: llm.RoleUser, Content: trimmed},
		llm.Message{Role: llm.RoleAssistant, Content: reply.Question},
	)
	s.prevConfidence = a.ConfidenceLevel
	s.hasPrev = true
	s.lastType = qtype
	s.pendingCheck = makeCheck
	s.lastTutorAt = now

	return reply.Question, nil
}

// ConversationHistory returns the persisted ordered message list.
func (s *Session) ConversationHistory(ctx context.Context) ([]store.TurnRecord, error) {
	return s.engine.events.SessionTurns(ctx, s.id)
}

// Analytics is the session-scoped rollup surfaced to the UI.
type Analytics struct {
	SessionID         string
	Turns             int
	MaxDepth          int
	DialogueLevel     dialogue.Level
	CycleStage        dialogue.Stage
	AvgConfidence     float64
	ConceptsLearned   []string
	ConceptsStruggled []string
	DirectAnswerCount int
	Compliant         bool
}

// SessionAnalytics snapshots the session's running aggregates.
func (s *Session) SessionAnalytics() Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.tracker.State()
	return Analytics{
		SessionID:         s.id,
		Turns:             s.studentTurns,
		MaxDepth:          st.MaxDepthReached,
		DialogueLevel:     st.Level,
		CycleStage:        st.Stage,
		AvgConfidence:     s.avgConfidence(),
		ConceptsLearned:   setToSlice(s.learned),
		ConceptsStruggled: setToSlice(s.struggled),
		DirectAnswerCount: s.directAnswers,
		Compliant:         s.directAnswers == 0,
	}
}

// SessionPerformance computes the finalized performance aggregate.
func (s *Session) SessionPerformance() store.SessionEndData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.performanceLocked()
}

func (s *Session) performanceLocked() store.SessionEndData {
	st := s.tracker.State()
	avgConf := s.avgConfidence()

	mastery := 0.7*avgConf + 0.3*float64(st.MaxDepthReached-1)/4
	mastery = min(1, max(0, mastery))

	completion := float64(s.studentTurns) / 8
	completion = min(1, completion)

	avgResponse := int64(0)
	if s.studentTurns > 0 {
		avgResponse = s.responseMsTotal / int64(s.studentTurns)
	}

	return store.SessionEndData{
		SessionID:         s.id,
		ProblemType:       s.problem.ProblemType,
		DurationSecs:      int(s.engine.now().Sub(s.started).Seconds()),
		Interactions:      s.studentTurns,
		CompletionRate:    completion,
		MasteryScore:      mastery,
		ConceptsLearned:   setToSlice(s.learned),
		ConceptsStruggled: setToSlice(s.struggled),
		HintsUsed:         s.hintsUsed,
		DirectAnswerCount: s.directAnswers,
		MaxDepth:          st.MaxDepthReached,
		AvgResponseMs:     int(avgResponse),
	}
}

// End finalizes the session best-effort with whatever state exists.
// Calling it twice is a no-op.
func (s *Session) End(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return nil
	}
	s.ended = true
	if err := s.engine.events.AppendSessionEnd(ctx, s.performanceLocked()); err != nil {
		return fmt.Errorf("recording session end: %w", err)
	}
	return nil
}

func (s *Session) appendTutorTurn(ctx context.Context, question string, qtype socratic.QuestionType, depth int, check bool, concepts []string) error {
	if err := s.engine.events.AppendTurn(ctx, store.TurnEventData{
		SessionID:          s.id,
		Role:               "tutor",
		Content:            question,
		QuestionType:       string(qtype),
		DepthLevel:         depth,
		TargetedConcepts:   concepts,
		UnderstandingCheck: check,
	}); err != nil {
		return fmt.Errorf("recording tutor turn: %w", err)
	}
	return nil
}

func (s *Session) historyCopy() []llm.Message {
	out := make([]llm.Message, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) avgConfidence() float64 {
	if s.studentTurns == 0 {
		return 0
	}
	return s.confidenceSum / float64(s.studentTurns)
}

func (s *Session) trackConcepts(concepts []string, confidence float64) {
	for _, c := range concepts {
		switch {
		case confidence >= 0.7:
			if s.learned == nil {
				s.learned = map[string]bool{}
			}
			s.learned[c] = true
			delete(s.struggled, c)
		case confidence < 0.4:
			if !s.learned[c] {
				if s.struggled == nil {
					s.struggled = map[string]bool{}
				}
				s.struggled[c] = true
			}
		}
	}
}

func decodeTurn(content json.RawMessage) (turnReply, error) {
	var reply turnReply
	if err := json.Unmarshal(content, &reply); err != nil {
		return turnReply{}, &llm.ErrInvalidResponse{Content: content, Err: err}
	}
	if reply.Question == "" {
		return turnReply{}, &llm.ErrInvalidResponse{Content: content, Err: errors.New("missing question")}
	}
	return reply, nil
}

func mergeConcepts(a, b []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, list := range [][]string{a, b} {
		for _, c := range list {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

func setToSlice(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
