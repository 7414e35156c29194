// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldProblemType holds the string denoting the problem_type field in the database.
	FieldProblemType = "problem_type"
	// FieldAvgResponseMs holds the string denoting the avg_response_ms field in the database.
	FieldAvgResponseMs = "avg_response_ms"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldInteractions holds the string denoting the interactions field in the database.
	FieldInteractions = "interactions"
	// FieldCompletionRate holds the string denoting the completion_rate field in the database.
	FieldCompletionRate = "completion_rate"
	// FieldMasteryScore holds the string denoting the mastery_score field in the database.
	FieldMasteryScore = "mastery_score"
	// FieldConceptsLearned holds the string denoting the concepts_learned field in the database.
	FieldConceptsLearned = "concepts_learned"
	// FieldConceptsStruggled holds the string denoting the concepts_struggled field in the database.
	FieldConceptsStruggled = "concepts_struggled"
	// FieldHintsUsed holds the string denoting the hints_used field in the database.
	FieldHintsUsed = "hints_used"
	// FieldDirectAnswerCount holds the string denoting the direct_answer_count field in the database.
	FieldDirectAnswerCount = "direct_answer_count"
	// FieldMaxDepth holds the string denoting the max_depth field in the database.
	FieldMaxDepth = "max_depth"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldProblemType,
	FieldAvgResponseMs,
	FieldDurationSecs,
	FieldInteractions,
	FieldCompletionRate,
	FieldMasteryScore,
	FieldConceptsLearned,
	FieldConceptsStruggled,
	FieldHintsUsed,
	FieldDirectAnswerCount,
	FieldMaxDepth,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultProblemType holds the default value on creation for the "problem_type" field.
	DefaultProblemType string
	// DefaultAvgResponseMs holds the default value on creation for the "avg_response_ms" field.
	DefaultAvgResponseMs int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// DefaultInteractions holds the default value on creation for the "interactions" field.
	DefaultInteractions int
	// DefaultCompletionRate holds the default value on creation for the "completion_rate" field.
	DefaultCompletionRate float64
	// DefaultMasteryScore holds the default value on creation for the "mastery_score" field.
	DefaultMasteryScore float64
	// DefaultHintsUsed holds the default value on creation for the "hints_used" field.
	DefaultHintsUsed int
	// DefaultDirectAnswerCount holds the default value on creation for the "direct_answer_count" field.
	DefaultDirectAnswerCount int
	// DefaultMaxDepth holds the default value on creation for the "max_depth" field.
	DefaultMaxDepth int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByProblemType orders the results by the problem_type field.
func ByProblemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemType, opts...).ToFunc()
}

// ByAvgResponseMs orders the results by the avg_response_ms field.
func ByAvgResponseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgResponseMs, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByInteractions orders the results by the interactions field.
func ByInteractions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInteractions, opts...).ToFunc()
}

// ByCompletionRate orders the results by the completion_rate field.
func ByCompletionRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionRate, opts...).ToFunc()
}

// ByMasteryScore orders the results by the mastery_score field.
func ByMasteryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryScore, opts...).ToFunc()
}

// ByHintsUsed orders the results by the hints_used field.
func ByHintsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsUsed, opts...).ToFunc()
}

// ByDirectAnswerCount orders the results by the direct_answer_count field.
func ByDirectAnswerCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirectAnswerCount, opts...).ToFunc()
}

// ByMaxDepth orders the results by the max_depth field.
func ByMaxDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDepth, opts...).ToFunc()
}
