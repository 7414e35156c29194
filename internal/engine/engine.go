// Package engine orchestrates tutoring sessions: it assesses each
// student utterance, advances the dialogue state machine, selects the
// next question type, renders the question through the completion
// provider, and screens the result for direct-answer leaks.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/socratiq/internal/adaptive"
	"github.com/abhisek/socratiq/internal/assess"
	"github.com/abhisek/socratiq/internal/catalog"
	"github.com/abhisek/socratiq/internal/dialogue"
	"github.com/abhisek/socratiq/internal/llm"
	"github.com/abhisek/socratiq/internal/problem"
	"github.com/abhisek/socratiq/internal/profile"
	"github.com/abhisek/socratiq/internal/socratic"
	"github.com/abhisek/socratiq/internal/store"
	"github.com/abhisek/socratiq/internal/violation"
)

// ErrInvalidProblem means the problem text could not be parsed into
// something tutorable; the caller should re-prompt.
var ErrInvalidProblem = errors.New("problem text too short or unparsable")

// ErrEmptyUtterance means the student turn was blank; the caller
// should re-prompt.
var ErrEmptyUtterance = errors.New("empty student utterance")

// Every fourth student turn gets an explicit understanding check.
const checkCadence = 4

// A confidence jump at or above this marks a breakthrough turn.
const breakthroughDelta = 0.3

// Engine wires the tutoring pipeline together. Sessions created from
// one Engine share the student profile but are otherwise independent
// and may run concurrently.
type Engine struct {
	provider llm.Provider
	events   store.EventRepo
	catalog  *catalog.Catalog
	assessor *assess.Assessor
	detector *violation.Detector
	parser   *problem.Parser
	selector *socratic.Selector
	now      func() time.Time

	mu      sync.Mutex
	profile *profile.Profile
}

// New builds an Engine. rng seeds the question selector; pass a fixed
// seed in tests for deterministic selection.
func New(provider llm.Provider, events store.EventRepo, prof *profile.Profile, rng *rand.Rand) *Engine {
	if prof == nil {
		prof = profile.Default()
	}
	cat := catalog.Default()
	return &Engine{
		provider: provider,
		events:   events,
		catalog:  cat,
		assessor: assess.New(cat),
		detector: violation.New(cat),
		parser:   problem.NewParser(cat),
		selector: socratic.New(rng),
		now:      time.Now,
		profile:  prof,
	}
}

// ContainsDirectAnswer reports whether text leaks a direct answer.
func (e *Engine) ContainsDirectAnswer(text string) bool {
	return e.detector.ContainsDirectAnswer(text)
}

// CurrentDifficulty returns the student's difficulty level.
func (e *Engine) CurrentDifficulty() adaptive.Level {
	e.mu.Lock()
	defer e.mu.Unlock()
	return adaptive.ParseLevel(e.profile.DifficultyLevel)
}

// Profile returns the shared student profile.
func (e *Engine) Profile() *profile.Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile
}

// StartProblem parses the problem text and opens a tutoring session,
// returning the session and its opening question. When the completion
// service is unreachable the opening question falls back to a canned
// stem so the session can still begin.
func (e *Engine) StartProblem(ctx context.Context, problemText string) (*Session, string, error) {
	parsed := e.parser.Parse(problemText)
	if !parsed.IsValid {
		return nil, "", ErrInvalidProblem
	}

	e.mu.Lock()
	level := adaptive.ParseLevel(e.profile.DifficultyLevel)
	style := e.profile.LearningStyle
	e.mu.Unlock()

	sess := &Session{
		engine:   e,
		id:       uuid.NewString(),
		problem:  parsed,
		strategy: adaptive.StrategyFor(style, level),
		tracker:  dialogue.NewTracker(),
		started:  e.now(),
	}

	if err := e.events.AppendSessionStart(ctx, store.SessionStartData{
		SessionID:   sess.id,
		ProblemType: parsed.ProblemType,
	}); err != nil {
		return nil, "", fmt.Errorf("recording session start: %w", err)
	}

	qtype := socratic.InitialType(parsed.Content)
	opening := e.renderOpening(ctx, sess, qtype)

	if err := sess.appendTutorTurn(ctx, opening, qtype, sess.tracker.State().Depth, false, nil); err != nil {
		return nil, "", err
	}
	sess.lastType = qtype
	sess.lastTutorAt = e.now()
	return sess, opening, nil
}

func (e *Engine) renderOpening(ctx context.Context, sess *Session, qtype socratic.QuestionType) string {
	req := llm.Request{
		System: systemPrompt(sess.problem, sess.strategy, sess.tracker.State()),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: openingPrompt(qtype)},
		},
		Schema:    turnSchema(),
		MaxTokens: 1024,
	}
	resp, err := e.provider.Generate(llm.WithSession(llm.WithPurpose(ctx, "opening-question"), sess.id), req)
	if err != nil {
		return fallbackQuestion(e.catalog, qtype)
	}
	reply, err := decodeTurn(resp.Content)
	if err != nil || reply.Question == "" {
		return fallbackQuestion(e.catalog, qtype)
	}
	return reply.Question
}
