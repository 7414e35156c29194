package analytics

import (
	"context"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/socratiq/internal/adaptive"
	"github.com/abhisek/socratiq/internal/profile"
	"github.com/abhisek/socratiq/internal/store"
)

type fakeEvents struct {
	store.EventRepo
	sessions   []store.SessionPerformanceRecord
	violations map[string]int
}

func (f *fakeEvents) SessionPerformances(ctx context.Context, opts store.QueryOpts) ([]store.SessionPerformanceRecord, error) {
	return f.sessions, nil
}

func (f *fakeEvents) ViolationCount(ctx context.Context, sessionID string) (int, error) {
	return f.violations[sessionID], nil
}

type fakeSnapshots struct {
	saved []*store.Snapshot
}

func (f *fakeSnapshots) Save(ctx context.Context, snap *store.Snapshot) error {
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapshots) Latest(ctx context.Context) (*store.Snapshot, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeSnapshots) Prune(ctx context.Context, keep int) error {
	if len(f.saved) > keep {
		f.saved = f.saved[len(f.saved)-keep:]
	}
	return nil
}

func newTestService(sessions []store.SessionPerformanceRecord) (*Service, *fakeSnapshots) {
	snaps := &fakeSnapshots{}
	svc := NewService(&fakeEvents{sessions: sessions}, snaps)
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	return svc, snaps
}

func session(day int, mastery float64, learned, struggled []string) store.SessionPerformanceRecord {
	return store.SessionPerformanceRecord{
		Timestamp: time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC),
		SessionEndData: store.SessionEndData{
			MasteryScore:      mastery,
			ConceptsLearned:   learned,
			ConceptsStruggled: struggled,
			DurationSecs:      600,
			Interactions:      8,
			AvgResponseMs:     8000,
		},
	}
}

func TestSuccessRateAndVelocity(t *testing.T) {
	sessions := []store.SessionPerformanceRecord{
		session(1, 0.4, nil, nil),
		session(2, 0.6, nil, nil),
		session(3, 0.8, nil, nil),
	}
	if got := successRate(sessions); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("successRate = %v, want 0.6", got)
	}
	// Short history: delta from first to latest.
	if got := learningVelocity(sessions); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("learningVelocity = %v, want 0.4", got)
	}
}

func TestLearningVelocity_WindowedComparison(t *testing.T) {
	var sessions []store.SessionPerformanceRecord
	for range 10 {
		sessions = append(sessions, session(1, 0.5, nil, nil))
	}
	for range 10 {
		sessions = append(sessions, session(2, 0.7, nil, nil))
	}
	if got := learningVelocity(sessions); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("learningVelocity = %v, want 0.2", got)
	}
}

func TestKnowledgeGapsAndStrengths(t *testing.T) {
	sessions := []store.SessionPerformanceRecord{
		session(1, 0.5, []string{"addition"}, []string{"fractions"}),
		session(2, 0.5, []string{"addition"}, []string{"fractions"}),
		session(3, 0.5, []string{"fractions"}, []string{"ratios"}),
	}

	gaps := knowledgeGaps(sessions)
	// fractions averages 1/3, ratios 0; both below 0.6, worst first.
	if !reflect.DeepEqual(gaps, []string{"ratios", "fractions"}) {
		t.Errorf("gaps = %v, want [ratios fractions]", gaps)
	}

	got := strengths(sessions)
	// addition: two occurrences, both learned.
	if !reflect.DeepEqual(got, []string{"addition"}) {
		t.Errorf("strengths = %v, want [addition]", got)
	}
}

func TestKnowledgeGaps_Capped(t *testing.T) {
	s := session(1, 0.5, nil, []string{"a", "b", "c", "d", "e", "f", "g"})
	if gaps := knowledgeGaps([]store.SessionPerformanceRecord{s}); len(gaps) != 5 {
		t.Errorf("gaps = %v, want capped at 5", gaps)
	}
}

func TestInferLearningStyle(t *testing.T) {
	slow := make([]store.SessionPerformanceRecord, 5)
	for i := range slow {
		slow[i] = session(i+1, 0.7, nil, nil)
		slow[i].AvgResponseMs = 15000
	}
	if got := inferLearningStyle(slow); got != profile.StyleVisual {
		t.Errorf("style for slow responders = %q, want visual", got)
	}

	fast := make([]store.SessionPerformanceRecord, 5)
	for i := range fast {
		fast[i] = session(i+1, 0.7, nil, nil)
		fast[i].AvgResponseMs = 3000
		fast[i].Interactions = 14
	}
	if got := inferLearningStyle(fast); got != profile.StyleAnalytical {
		t.Errorf("style for fast high-volume responders = %q, want analytical", got)
	}

	if got := inferLearningStyle(slow[:4]); got != "" {
		t.Errorf("style with 4 sessions = %q, want no inference", got)
	}
}

func TestDailyTrends(t *testing.T) {
	sessions := []store.SessionPerformanceRecord{
		session(14, 0.6, nil, nil),
		session(14, 0.8, nil, nil),
		session(15, 0.9, nil, nil),
		session(1, 0.2, nil, nil), // outside a 7-day window ending Mar 15
	}
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	trends := dailyTrends(sessions, 7, now)
	if len(trends) != 2 {
		t.Fatalf("trends = %+v, want 2 days", trends)
	}
	if trends[0].Sessions != 2 || math.Abs(trends[0].Mastery-0.7) > 1e-9 {
		t.Errorf("first day = %+v, want 2 sessions averaging 0.7", trends[0])
	}
	if trends[1].Sessions != 1 || trends[1].Mastery != 0.9 {
		t.Errorf("second day = %+v", trends[1])
	}
}

func TestUpdateProfile_Idempotent(t *testing.T) {
	sessions := []store.SessionPerformanceRecord{
		session(1, 0.9, []string{"addition"}, nil),
		session(2, 0.92, []string{"addition"}, []string{"fractions"}),
		session(3, 0.91, []string{"subtraction"}, nil),
		session(4, 0.9, []string{"subtraction"}, nil),
		session(5, 0.9, []string{"addition"}, nil),
	}
	svc, snaps := newTestService(sessions)
	ctx := context.Background()

	first, err := svc.UpdateProfile(ctx)
	if err != nil {
		t.Fatalf("first UpdateProfile: %v", err)
	}
	second, err := svc.UpdateProfile(ctx)
	if err != nil {
		t.Fatalf("second UpdateProfile: %v", err)
	}

	if !reflect.DeepEqual(first.Analytics, second.Analytics) {
		t.Errorf("analytics changed without new sessions:\nfirst  %+v\nsecond %+v", first.Analytics, second.Analytics)
	}
	if !reflect.DeepEqual(first.KnowledgeGaps, second.KnowledgeGaps) {
		t.Errorf("gaps changed: %v vs %v", first.KnowledgeGaps, second.KnowledgeGaps)
	}
	if first.DifficultyLevel != second.DifficultyLevel {
		t.Errorf("difficulty changed: %q vs %q", first.DifficultyLevel, second.DifficultyLevel)
	}
	if len(snaps.saved) != 2 {
		t.Errorf("snapshots saved = %d, want 2", len(snaps.saved))
	}
	if snaps.saved[1].Data.Version != 2 {
		t.Errorf("second snapshot version = %d, want 2", snaps.saved[1].Data.Version)
	}
}

func TestUpdateProfile_EscalatesOnConsistentMastery(t *testing.T) {
	sessions := []store.SessionPerformanceRecord{
		session(1, 0.9, nil, nil),
		session(2, 0.92, nil, nil),
		session(3, 0.9, nil, nil),
		session(4, 0.91, nil, nil),
		session(5, 0.9, nil, nil),
	}
	svc, _ := newTestService(sessions)
	p, err := svc.UpdateProfile(context.Background())
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if p.DifficultyLevel != string(adaptive.Intermediate) {
		t.Errorf("difficulty after strong beginner run = %q, want intermediate", p.DifficultyLevel)
	}
}

func TestReport(t *testing.T) {
	sessions := []store.SessionPerformanceRecord{
		session(13, 0.4, nil, []string{"fractions"}),
		session(14, 0.5, nil, []string{"fractions"}),
		session(15, 0.6, nil, nil),
	}
	svc, _ := newTestService(sessions)
	rep, err := svc.Report(context.Background(), 7)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if rep.SessionsAnalyzed != 3 {
		t.Errorf("SessionsAnalyzed = %d, want 3", rep.SessionsAnalyzed)
	}
	if math.Abs(rep.SuccessRate-0.5) > 1e-9 {
		t.Errorf("SuccessRate = %v, want 0.5", rep.SuccessRate)
	}
	if !reflect.DeepEqual(rep.KnowledgeGaps, []string{"fractions"}) {
		t.Errorf("KnowledgeGaps = %v, want [fractions]", rep.KnowledgeGaps)
	}
	if len(rep.DailyTrends) != 3 {
		t.Errorf("DailyTrends = %+v, want 3 days", rep.DailyTrends)
	}
	if len(rep.Recommendations) == 0 {
		t.Error("expected at least one recommendation for a struggling student")
	}
}

func TestReport_SumsDirectAnswerLeaks(t *testing.T) {
	first := session(13, 0.5, nil, nil)
	first.SessionID = "s1"
	second := session(14, 0.6, nil, nil)
	second.SessionID = "s2"

	events := &fakeEvents{
		sessions:   []store.SessionPerformanceRecord{first, second},
		violations: map[string]int{"s1": 2, "s2": 1},
	}
	svc := NewService(events, &fakeSnapshots{})
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	rep, err := svc.Report(context.Background(), 7)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if rep.DirectAnswerLeaks != 3 {
		t.Errorf("DirectAnswerLeaks = %d, want 3", rep.DirectAnswerLeaks)
	}
}
