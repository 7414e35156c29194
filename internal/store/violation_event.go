package store

import (
	"context"
	"fmt"

	"github.com/abhisek/socratiq/ent/violationevent"
)

func (r *eventRepo) AppendViolation(ctx context.Context, data ViolationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ViolationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUtterance(data.Utterance).
		SetPattern(data.Pattern).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save violation event: %w", err)
	}
	return nil
}

func (r *eventRepo) ViolationCount(ctx context.Context, sessionID string) (int, error) {
	n, err := r.client.ViolationEvent.Query().
		Where(violationevent.SessionID(sessionID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count violations: %w", err)
	}
	return n, nil
}
