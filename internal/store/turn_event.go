package store

import (
	"context"
	"fmt"

	"github.com/abhisek/socratiq/ent"
	"github.com/abhisek/socratiq/ent/turnevent"
)

func (r *eventRepo) AppendTurn(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetRole(data.Role).
		SetContent(data.Content).
		SetQuestionType(data.QuestionType).
		SetDepthLevel(data.DepthLevel).
		SetStudentConfidence(data.StudentConfidence).
		SetUnderstandingCheck(data.UnderstandingCheck).
		SetConfidenceDelta(data.ConfidenceDelta).
		SetReasoningScore(data.ReasoningScore).
		SetTeachBackScore(data.TeachBackScore).
		SetTransferAttempt(data.TransferAttempt).
		SetBreakthrough(data.Breakthrough)

	if len(data.TargetedConcepts) > 0 {
		builder = builder.SetTargetedConcepts(data.TargetedConcepts)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionTurns(ctx context.Context, sessionID string) ([]TurnRecord, error) {
	events, err := r.client.TurnEvent.Query().
		Where(turnevent.SessionID(sessionID)).
		Order(ent.Asc(turnevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session turns: %w", err)
	}

	records := make([]TurnRecord, 0, len(events))
	for _, e := range events {
		records = append(records, TurnRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			TurnEventData: TurnEventData{
				SessionID:          e.SessionID,
				Role:               e.Role,
				Content:            e.Content,
				QuestionType:       e.QuestionType,
				DepthLevel:         e.DepthLevel,
				TargetedConcepts:   e.TargetedConcepts,
				StudentConfidence:  e.StudentConfidence,
				UnderstandingCheck: e.UnderstandingCheck,
				ConfidenceDelta:    e.ConfidenceDelta,
				ReasoningScore:     e.ReasoningScore,
				TeachBackScore:     e.TeachBackScore,
				TransferAttempt:    e.TransferAttempt,
				Breakthrough:       e.Breakthrough,
			},
		})
	}
	return records, nil
}
