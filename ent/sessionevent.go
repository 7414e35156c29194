// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/socratiq/ent/sessionevent"
)

// SessionEvent is the model entity for the SessionEvent schema.
type SessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// start or end
	Action string `json:"action,omitempty"`
	// Classified problem type
	ProblemType string `json:"problem_type,omitempty"`
	// Mean student response time (on end only)
	AvgResponseMs int `json:"avg_response_ms,omitempty"`
	// Actual duration in seconds (on end only)
	DurationSecs int `json:"duration_secs,omitempty"`
	// Total student turns (on end only)
	Interactions int `json:"interactions,omitempty"`
	// Fraction of the inquiry cycle completed (on end only)
	CompletionRate float64 `json:"completion_rate,omitempty"`
	// 0-1 summary of session success (on end only)
	MasteryScore float64 `json:"mastery_score,omitempty"`
	// Concepts the student demonstrated understanding of
	ConceptsLearned []string `json:"concepts_learned,omitempty"`
	// Concepts with repeated misconceptions
	ConceptsStruggled []string `json:"concepts_struggled,omitempty"`
	// Metacognitive prompts issued (on end only)
	HintsUsed int `json:"hints_used,omitempty"`
	// Policy violations detected during the session
	DirectAnswerCount int `json:"direct_answer_count,omitempty"`
	// Deepest dialogue level reached (on end only)
	MaxDepth     int `json:"max_depth,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldConceptsLearned, sessionevent.FieldConceptsStruggled:
			values[i] = new([]byte)
		case sessionevent.FieldCompletionRate, sessionevent.FieldMasteryScore:
			values[i] = new(sql.NullFloat64)
		case sessionevent.FieldID, sessionevent.FieldSequence, sessionevent.FieldAvgResponseMs, sessionevent.FieldDurationSecs, sessionevent.FieldInteractions, sessionevent.FieldHintsUsed, sessionevent.FieldDirectAnswerCount, sessionevent.FieldMaxDepth:
			values[i] = new(sql.NullInt64)
		case sessionevent.FieldSessionID, sessionevent.FieldAction, sessionevent.FieldProblemType:
			values[i] = new(sql.NullString)
		case sessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionEvent fields.
func (_m *SessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case sessionevent.FieldProblemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_type", values[i])
			} else if value.Valid {
				_m.ProblemType = value.String
			}
		case sessionevent.FieldAvgResponseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_response_ms", values[i])
			} else if value.Valid {
				_m.AvgResponseMs = int(value.Int64)
			}
		case sessionevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		case sessionevent.FieldInteractions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interactions", values[i])
			} else if value.Valid {
				_m.Interactions = int(value.Int64)
			}
		case sessionevent.FieldCompletionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_rate", values[i])
			} else if value.Valid {
				_m.CompletionRate = value.Float64
			}
		case sessionevent.FieldMasteryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_score", values[i])
			} else if value.Valid {
				_m.MasteryScore = value.Float64
			}
		case sessionevent.FieldConceptsLearned:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concepts_learned", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptsLearned); err != nil {
					return fmt.Errorf("unmarshal field concepts_learned: %w", err)
				}
			}
		case sessionevent.FieldConceptsStruggled:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concepts_struggled", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptsStruggled); err != nil {
					return fmt.Errorf("unmarshal field concepts_struggled: %w", err)
				}
			}
		case sessionevent.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		case sessionevent.FieldDirectAnswerCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field direct_answer_count", values[i])
			} else if value.Valid {
				_m.DirectAnswerCount = int(value.Int64)
			}
		case sessionevent.FieldMaxDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_depth", values[i])
			} else if value.Valid {
				_m.MaxDepth = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionEvent.
// Note that you need to call SessionEvent.Unwrap() before calling this method if this SessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionEvent) Update() *SessionEventUpdateOne {
	return NewSessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionEvent) Unwrap() *SessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SessionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("problem_type=")
	builder.WriteString(_m.ProblemType)
	builder.WriteString(", ")
	builder.WriteString("avg_response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgResponseMs))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteString(", ")
	builder.WriteString("interactions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Interactions))
	builder.WriteString(", ")
	builder.WriteString("completion_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionRate))
	builder.WriteString(", ")
	builder.WriteString("mastery_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryScore))
	builder.WriteString(", ")
	builder.WriteString("concepts_learned=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptsLearned))
	builder.WriteString(", ")
	builder.WriteString("concepts_struggled=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptsStruggled))
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteString(", ")
	builder.WriteString("direct_answer_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DirectAnswerCount))
	builder.WriteString(", ")
	builder.WriteString("max_depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDepth))
	builder.WriteByte(')')
	return builder.String()
}

// SessionEvents is a parsable slice of SessionEvent.
type SessionEvents []*SessionEvent
