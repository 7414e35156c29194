package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/socratiq/internal/adaptive"
	"github.com/abhisek/socratiq/internal/profile"
	"github.com/abhisek/socratiq/internal/store"
)

const snapshotKeep = 10

// Report is the full analytics view rendered by the stats command.
type Report struct {
	SessionsAnalyzed int
	SuccessRate      float64
	LearningVelocity float64
	// DirectAnswerLeaks counts tutor utterances across all sessions
	// that the violation detector caught giving an answer away.
	DirectAnswerLeaks int
	KnowledgeGaps     []string
	Strengths         []string
	LearningStyle     string
	Difficulty        adaptive.Difficulty
	DailyTrends       []DailyTrend
	Recommendations   []adaptive.Recommendation
}

// Service computes analytics over the event log and maintains the
// student profile snapshot.
type Service struct {
	events    store.EventRepo
	snapshots store.SnapshotRepo
	now       func() time.Time
}

// NewService wires the aggregator to its repositories.
func NewService(events store.EventRepo, snapshots store.SnapshotRepo) *Service {
	return &Service{events: events, snapshots: snapshots, now: time.Now}
}

// loadProfile returns the latest snapshotted profile, or the default
// when none has been saved yet.
func (s *Service) loadProfile(ctx context.Context) (*profile.Profile, int, error) {
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("loading profile snapshot: %w", err)
	}
	if snap == nil {
		return profile.Default(), 0, nil
	}
	return profile.FromData(snap.Data.Profile), snap.Data.Version, nil
}

// UpdateProfile recomputes analytics over the full session history
// and writes back a new profile snapshot. Running it twice with no
// new sessions yields the same analytics.
func (s *Service) UpdateProfile(ctx context.Context) (*profile.Profile, error) {
	p, version, err := s.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, p, version)
}

// RefreshProfile recomputes analytics into the given runtime profile,
// keeping its in-session state (question-response stats), and
// snapshots the result.
func (s *Service) RefreshProfile(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	_, version, err := s.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, p, version)
}

func (s *Service) refresh(ctx context.Context, p *profile.Profile, version int) (*profile.Profile, error) {
	sessions, err := s.events.SessionPerformances(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("loading session history: %w", err)
	}

	// Difficulty only moves when new sessions arrived; rerunning the
	// update over the same history must not keep escalating.
	hasNewSessions := len(sessions) != p.Analytics.SessionsAnalyzed

	p.KnowledgeGaps = knowledgeGaps(sessions)
	p.Strengths = strengths(sessions)
	if style := inferLearningStyle(sessions); style != "" {
		p.LearningStyle = style
	}
	p.Analytics = profile.Analytics{
		SuccessRate:      successRate(sessions),
		LearningVelocity: learningVelocity(sessions),
		SessionsAnalyzed: len(sessions),
		UpdatedAt:        s.now().UTC(),
	}

	if hasNewSessions {
		d := adaptive.Calculate(recentOf(sessions, velocityWindow), p)
		p.DifficultyLevel = string(d.RecommendedLevel)
	}

	snap := &store.Snapshot{
		Timestamp: s.now(),
		Data:      store.SnapshotData{Version: version + 1, Profile: p.ToData()},
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("saving profile snapshot: %w", err)
	}
	if err := s.snapshots.Prune(ctx, snapshotKeep); err != nil {
		return nil, fmt.Errorf("pruning profile snapshots: %w", err)
	}
	return p, nil
}

// Report builds the full analytics view over the trailing day window
// without mutating the stored profile.
func (s *Service) Report(ctx context.Context, windowDays int) (*Report, error) {
	p, _, err := s.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.events.SessionPerformances(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("loading session history: %w", err)
	}

	if style := inferLearningStyle(sessions); style != "" {
		p.LearningStyle = style
	}
	p.KnowledgeGaps = knowledgeGaps(sessions)
	p.Strengths = strengths(sessions)

	leaks := 0
	for _, rec := range sessions {
		n, err := s.events.ViolationCount(ctx, rec.SessionID)
		if err != nil {
			return nil, fmt.Errorf("counting violations: %w", err)
		}
		leaks += n
	}

	d := adaptive.Calculate(recentOf(sessions, velocityWindow), p)
	return &Report{
		SessionsAnalyzed:  len(sessions),
		SuccessRate:       successRate(sessions),
		LearningVelocity:  learningVelocity(sessions),
		DirectAnswerLeaks: leaks,
		KnowledgeGaps:     p.KnowledgeGaps,
		Strengths:         p.Strengths,
		LearningStyle:     p.LearningStyle,
		Difficulty:        d,
		DailyTrends:       dailyTrends(sessions, windowDays, s.now()),
		Recommendations:   adaptive.Recommendations(d, p),
	}, nil
}

func recentOf(sessions []store.SessionPerformanceRecord, n int) []store.SessionPerformanceRecord {
	if len(sessions) <= n {
		return sessions
	}
	return sessions[len(sessions)-n:]
}
