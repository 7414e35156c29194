package engine

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/socratiq/internal/llm"
	"github.com/abhisek/socratiq/internal/store"
)

type recordingEvents struct {
	store.EventRepo
	turns      []store.TurnEventData
	starts     []store.SessionStartData
	ends       []store.SessionEndData
	violations []store.ViolationEventData

	turnErr error // when set, AppendTurn fails with it
}

func (r *recordingEvents) AppendTurn(ctx context.Context, data store.TurnEventData) error {
	if r.turnErr != nil {
		return r.turnErr
	}
	r.turns = append(r.turns, data)
	return nil
}

func (r *recordingEvents) AppendSessionStart(ctx context.Context, data store.SessionStartData) error {
	r.starts = append(r.starts, data)
	return nil
}

func (r *recordingEvents) AppendSessionEnd(ctx context.Context, data store.SessionEndData) error {
	r.ends = append(r.ends, data)
	return nil
}

func (r *recordingEvents) AppendViolation(ctx context.Context, data store.ViolationEventData) error {
	r.violations = append(r.violations, data)
	return nil
}

func (r *recordingEvents) SessionTurns(ctx context.Context, sessionID string) ([]store.TurnRecord, error) {
	var out []store.TurnRecord
	for i, turn := range r.turns {
		if turn.SessionID == sessionID {
			out = append(out, store.TurnRecord{Sequence: int64(i + 1), TurnEventData: turn})
		}
	}
	return out, nil
}

func turnJSON(question string, concepts ...string) json.RawMessage {
	reply := turnReply{Question: question, Concepts: concepts}
	raw, _ := json.Marshal(reply)
	return raw
}

func newTestEngine(mock *llm.MockProvider) (*Engine, *recordingEvents) {
	events := &recordingEvents{}
	e := New(mock, events, nil, rand.New(rand.NewPCG(1, 1)))
	return e, events
}

func TestStartProblem_InvalidProblem(t *testing.T) {
	e, _ := newTestEngine(llm.NewMockProvider())
	if _, _, err := e.StartProblem(context.Background(), "2+2"); !errors.Is(err, ErrInvalidProblem) {
		t.Fatalf("err = %v, want ErrInvalidProblem", err)
	}
}

func TestStartProblem_OpensSession(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: turnJSON("What is the problem asking you to find?", "variable"),
	})
	e, events := newTestEngine(mock)

	sess, opening, err := e.StartProblem(context.Background(), "Solve the equation 2x + 4 = 10")
	if err != nil {
		t.Fatalf("StartProblem: %v", err)
	}
	if opening != "What is the problem asking you to find?" {
		t.Errorf("opening = %q", opening)
	}
	if sess.Problem().ProblemType != "algebra" {
		t.Errorf("problem type = %q, want algebra", sess.Problem().ProblemType)
	}
	if len(events.starts) != 1 || events.starts[0].ProblemType != "algebra" {
		t.Errorf("session start events = %+v", events.starts)
	}
	if len(events.turns) != 1 || events.turns[0].Role != "tutor" {
		t.Fatalf("turn events = %+v, want one tutor turn", events.turns)
	}
	if events.turns[0].QuestionType != "clarification" {
		t.Errorf("opening question type = %q, want clarification", events.turns[0].QuestionType)
	}
}

func TestStartProblem_ProviderDownFallsBackToStem(t *testing.T) {
	e, _ := newTestEngine(llm.NewMockProvider()) // empty queue: provider unavailable

	_, opening, err := e.StartProblem(context.Background(), "Solve the equation 2x + 4 = 10")
	if err != nil {
		t.Fatalf("StartProblem: %v", err)
	}
	if opening == "" {
		t.Error("expected a fallback opening question")
	}
}

func TestRespondToStudent_EmptyUtterance(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: turnJSON("Opening?")})
	e, _ := newTestEngine(mock)
	sess, _, err := e.StartProblem(context.Background(), "Solve the equation 2x + 4 = 10")
	if err != nil {
		t.Fatalf("StartProblem: %v", err)
	}
	if _, err := sess.RespondToStudent(context.Background(), "   \n"); !errors.Is(err, ErrEmptyUtterance) {
		t.Fatalf("err = %v, want ErrEmptyUtterance", err)
	}
}

func TestRespondToStudent_FullTurn(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: turnJSON("Opening?")},
		llm.MockResponse{Content: turnJSON("What does the variable stand for?", "variable")},
	)
	e, events := newTestEngine(mock)
	sess, _, err := e.StartProblem(context.Background(), "Solve the equation 2x + 4 = 10")
	if err != nil {
		t.Fatalf("StartProblem: %v", err)
	}

	reply, err := sess.RespondToStudent(context.Background(), "I think the equation needs the variable isolated first")
	if err != nil {
		t.Fatalf("RespondToStudent: %v", err)
	}
	if reply != "What does the variable stand for?" {
		t.Errorf("reply = %q", reply)
	}

	// Opening tutor turn + student turn + tutor turn.
	if len(events.turns) != 3 {
		t.Fatalf("turn events = %d, want 3", len(events.turns))
	}
	student := events.turns[1]
	if student.Role != "student" || student.StudentConfidence <= 0 {
		t.Errorf("student turn = %+v", student)
	}
	if len(student.TargetedConcepts) == 0 {
		t.Errorf("student turn matched no concepts: %+v", student)
	}

	hist, err := sess.ConversationHistory(context.Background())
	if err != nil {
		t.Fatalf("ConversationHistory: %v", err)
	}
	if len(hist) != 3 {
		t.Errorf("history length = %d, want 3", len(hist))
	}
}

func TestRespondToStudent_ProviderFailureLeavesStateUnchanged(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: turnJSON("Opening?")})
	e, events := newTestEngine(mock)
	sess, _, err := e.StartProblem(context.Background(), "Solve the equation 2x + 4 = 10")
	if err != nil {
		t.Fatalf("StartProblem: %v", err)
	}
	before := sess.State()
	turnsBefore := len(events.turns)

	// Empty mock queue: the provider reports unavailable.
	if _, err := sess.RespondToStudent(context.Background(), "I am sure because the balance rule applies"); err == nil {
		t.Fatal("expected provider error")
	}

	after := sess.State()
	if after.Depth != before.Depth || after.MaxDepthReached != before.MaxDepthReached ||
		after.Level != before.Level || after.Stage != before.Stage ||
		after.LastType != before.LastType || after.Turns != before.Turns {
		t.Errorf("state changed on provider failure:\nbefore %+v\nafter  %+v", before, after)
	}
	if len(events.turns) != turnsBefore {
		t.Errorf("turn events appended on failed turn: %d -> %d", turnsBefore, len(events.turns))
	}

	// The same turn succeeds on retry.
	mock.AddResponse(llm.MockResponse{Content: turnJSON("What makes you sure the rule applies?")})
	if _, err := sess.RespondToStudent(context.Background(), "I am sure because the balance rule applies"); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestRespondToStudent_EventWriteFailureRollsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: turnJSON("Opening?")},
		llm.MockResponse{Content: turnJSON("What does x stand for?")},
		llm.MockResponse{Content: turnJSON("What does x stand for?")},
	)
	e, events := newTestEngine(mock)
	sess, _, err := e.StartProblem(context.Background(), "Solve the equation 2x + 4 = 10")
	if err != nil {
		t.Fatalf("StartProblem: %v", err)
	}
	before := sess.State()
	turnsBefore := len(events.turns)

	events.turnErr = errors.New("disk full")
	if _, err := sess.RespondToStudent(context.Background(), "I am sure I isolate the variable first"); err == nil {
		t.Fatal("expected append error to fail the turn")
	}

	// A failed write must leave no trace: no dialogue transition, no
	// recorded events, no counted turn.
	after := sess.State()
	if after.Depth != before.Depth || after.MaxDepthReached != before.MaxDepthReached ||
		after.Level != before.Level || after.Stage != before.Stage ||
		after.LastType != before.LastType || after.Turns != before.Turns {
		t.Errorf("state changed on failed write:\nbefore %+v\nafter  %+v", before, after)
	}
	if len(events.turns) != turnsBefore {
		t.Errorf("turn events recorded on failed write: %d -> %d", turnsBefore, len(events.turns))
	}
	if got := sess.SessionAnalytics().Turns; got != 0 {
		t.Errorf("counted turns = %d, want 0 after failed write", got)
	}

	// Resubmitting the same utterance applies the transition exactly once.
	events.turnErr = nil
	if _, err := sess.RespondToStudent(context.Background(), "I am sure I isolate the variable first"); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if got := sess.State().Turns; got != before.Turns+1 {
		t.Errorf("tracker turns = %d, want %d after retry", got, before.Turns+1)
	}
	if got := sess.SessionAnalytics().Turns; got != 1 {
		t.Errorf("counted turns = %d, want 1 after retry", got)
	}
}

func TestRespondToStudent_ViolationCountedNotFatal(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: turnJSON("Opening?")},
		llm.MockResponse{Content: turnJSON("Well, the answer is 3, right?")},
	)
	e, events := newTestEngine(mock)
	sess, _, err := e.StartProblem(context.Background(), "Solve the equation 2x + 4 = 10")
	if err != nil {
		t.Fatalf("StartProblem: %v", err)
	}

	reply, err := sess.RespondToStudent(context.Background(), "Maybe I subtract four from both sides?")
	if err != nil {
		t.Fatalf("RespondToStudent: %v", err)
	}
	if reply == "" {
		t.Fatal("violating reply should still be returned")
	}
	if len(events.violations) != 1 {
		t.Fatalf("violations = %+v, want 1", events.violations)
	}
	if a := sess.SessionAnalytics(); a.DirectAnswerCount != 1 || a.Compliant {
		t.Errorf("analytics = %+v, want one violation and non-compliant", a)
	}
}

func TestEnd_IdempotentAndRecordsPerformance(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: turnJSON("Opening?")},
		llm.MockResponse{Content: turnJSON("Why does that step work?")},
	)
	e, events := newTestEngine(mock)
	sess, _, err := e.StartProblem(context.Background(), "Solve the equation 2x + 4 = 10")
	if err != nil {
		t.Fatalf("StartProblem: %v", err)
	}
	if _, err := sess.RespondToStudent(context.Background(), "I am sure I subtract 4 because both sides stay balanced"); err != nil {
		t.Fatalf("RespondToStudent: %v", err)
	}

	if err := sess.End(context.Background()); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := sess.End(context.Background()); err != nil {
		t.Fatalf("second End: %v", err)
	}
	if len(events.ends) != 1 {
		t.Fatalf("session end events = %d, want 1", len(events.ends))
	}
	perf := events.ends[0]
	if perf.Interactions != 1 || perf.MasteryScore <= 0 {
		t.Errorf("performance = %+v", perf)
	}
	if perf.ProblemType != "algebra" {
		t.Errorf("performance problem type = %q", perf.ProblemType)
	}
}

func TestContainsDirectAnswer(t *testing.T) {
	e, _ := newTestEngine(llm.NewMockProvider())
	if !e.ContainsDirectAnswer("the answer is 12") {
		t.Error("expected direct answer detection")
	}
	if e.ContainsDirectAnswer("what do you notice about the coefficients?") {
		t.Error("false positive on a clean question")
	}
}
