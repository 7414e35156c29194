package store

import (
	"context"
	"fmt"

	"github.com/abhisek/socratiq/ent"
	"github.com/abhisek/socratiq/ent/sessionevent"
)

const (
	actionStart = "start"
	actionEnd   = "end"
)

func (r *eventRepo) AppendSessionStart(ctx context.Context, data SessionStartData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(actionStart).
		SetProblemType(data.ProblemType).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session start: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEnd(ctx context.Context, data SessionEndData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(actionEnd).
		SetProblemType(data.ProblemType).
		SetDurationSecs(data.DurationSecs).
		SetInteractions(data.Interactions).
		SetCompletionRate(data.CompletionRate).
		SetMasteryScore(data.MasteryScore).
		SetHintsUsed(data.HintsUsed).
		SetDirectAnswerCount(data.DirectAnswerCount).
		SetMaxDepth(data.MaxDepth).
		SetAvgResponseMs(data.AvgResponseMs)

	if len(data.ConceptsLearned) > 0 {
		builder = builder.SetConceptsLearned(data.ConceptsLearned)
	}
	if len(data.ConceptsStruggled) > 0 {
		builder = builder.SetConceptsStruggled(data.ConceptsStruggled)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session end: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionPerformances(ctx context.Context, opts QueryOpts) ([]SessionPerformanceRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action(actionEnd))
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Asc(sessionevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session performances: %w", err)
	}

	records := make([]SessionPerformanceRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionPerformanceRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionEndData: SessionEndData{
				SessionID:         e.SessionID,
				ProblemType:       e.ProblemType,
				DurationSecs:      e.DurationSecs,
				Interactions:      e.Interactions,
				CompletionRate:    e.CompletionRate,
				MasteryScore:      e.MasteryScore,
				ConceptsLearned:   e.ConceptsLearned,
				ConceptsStruggled: e.ConceptsStruggled,
				HintsUsed:         e.HintsUsed,
				DirectAnswerCount: e.DirectAnswerCount,
				MaxDepth:          e.MaxDepth,
				AvgResponseMs:     e.AvgResponseMs,
			},
		})
	}
	return records, nil
}
