// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/socratiq/ent/turnevent"
)

// TurnEvent is the model entity for the TurnEvent schema.
type TurnEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping turns in a session
	SessionID string `json:"session_id,omitempty"`
	// student or tutor
	Role string `json:"role,omitempty"`
	// Utterance text
	Content string `json:"content,omitempty"`
	// Socratic question type for tutor turns
	QuestionType string `json:"question_type,omitempty"`
	// Dialogue depth (1-5) when the turn was recorded
	DepthLevel int `json:"depth_level,omitempty"`
	// Concept tags this turn touched
	TargetedConcepts []string `json:"targeted_concepts,omitempty"`
	// Assessed confidence for student turns (0-1)
	StudentConfidence float64 `json:"student_confidence,omitempty"`
	// Whether this tutor turn was an understanding check
	UnderstandingCheck bool `json:"understanding_check,omitempty"`
	// Change in confidence vs. the previous student turn
	ConfidenceDelta float64 `json:"confidence_delta,omitempty"`
	// Depth-of-thinking score (1-5) for student turns
	ReasoningScore int `json:"reasoning_score,omitempty"`
	// Conceptual-understanding tier (1-5) for student turns
	TeachBackScore int `json:"teach_back_score,omitempty"`
	// Student tried to apply the concept to a new case
	TransferAttempt bool `json:"transfer_attempt,omitempty"`
	// Large confidence jump after a misconception
	Breakthrough bool `json:"breakthrough,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TurnEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldTargetedConcepts:
			values[i] = new([]byte)
		case turnevent.FieldUnderstandingCheck, turnevent.FieldTransferAttempt, turnevent.FieldBreakthrough:
			values[i] = new(sql.NullBool)
		case turnevent.FieldStudentConfidence, turnevent.FieldConfidenceDelta:
			values[i] = new(sql.NullFloat64)
		case turnevent.FieldID, turnevent.FieldSequence, turnevent.FieldDepthLevel, turnevent.FieldReasoningScore, turnevent.FieldTeachBackScore:
			values[i] = new(sql.NullInt64)
		case turnevent.FieldSessionID, turnevent.FieldRole, turnevent.FieldContent, turnevent.FieldQuestionType:
			values[i] = new(sql.NullString)
		case turnevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TurnEvent fields.
func (_m *TurnEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case turnevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case turnevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case turnevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case turnevent.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case turnevent.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case turnevent.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case turnevent.FieldDepthLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth_level", values[i])
			} else if value.Valid {
				_m.DepthLevel = int(value.Int64)
			}
		case turnevent.FieldTargetedConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field targeted_concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TargetedConcepts); err != nil {
					return fmt.Errorf("unmarshal field targeted_concepts: %w", err)
				}
			}
		case turnevent.FieldStudentConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field student_confidence", values[i])
			} else if value.Valid {
				_m.StudentConfidence = value.Float64
			}
		case turnevent.FieldUnderstandingCheck:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field understanding_check", values[i])
			} else if value.Valid {
				_m.UnderstandingCheck = value.Bool
			}
		case turnevent.FieldConfidenceDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_delta", values[i])
			} else if value.Valid {
				_m.ConfidenceDelta = value.Float64
			}
		case turnevent.FieldReasoningScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning_score", values[i])
			} else if value.Valid {
				_m.ReasoningScore = int(value.Int64)
			}
		case turnevent.FieldTeachBackScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field teach_back_score", values[i])
			} else if value.Valid {
				_m.TeachBackScore = int(value.Int64)
			}
		case turnevent.FieldTransferAttempt:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field transfer_attempt", values[i])
			} else if value.Valid {
				_m.TransferAttempt = value.Bool
			}
		case turnevent.FieldBreakthrough:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field breakthrough", values[i])
			} else if value.Valid {
				_m.Breakthrough = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TurnEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TurnEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TurnEvent.
// Note that you need to call TurnEvent.Unwrap() before calling this method if this TurnEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TurnEvent) Update() *TurnEventUpdateOne {
	return NewTurnEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TurnEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TurnEvent) Unwrap() *TurnEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TurnEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TurnEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TurnEvent(")
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
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("depth_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.DepthLevel))
	builder.WriteString(", ")
	builder.WriteString("targeted_concepts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetedConcepts))
	builder.WriteString(", ")
	builder.WriteString("student_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentConfidence))
	builder.WriteString(", ")
	builder.WriteString("understanding_check=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnderstandingCheck))
	builder.WriteString(", ")
	builder.WriteString("confidence_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceDelta))
	builder.WriteString(", ")
	builder.WriteString("reasoning_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReasoningScore))
	builder.WriteString(", ")
	builder.WriteString("teach_back_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TeachBackScore))
	builder.WriteString(", ")
	builder.WriteString("transfer_attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.TransferAttempt))
	builder.WriteString(", ")
	builder.WriteString("breakthrough=")
	builder.WriteString(fmt.Sprintf("%v", _m.Breakthrough))
	builder.WriteByte(')')
	return builder.String()
}

// TurnEvents is a parsable slice of TurnEvent.
type TurnEvents []*TurnEvent
