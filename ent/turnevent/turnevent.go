// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the turnevent type in the database.
	Label = "turn_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldDepthLevel holds the string denoting the depth_level field in the database.
	FieldDepthLevel = "depth_level"
	// FieldTargetedConcepts holds the string denoting the targeted_concepts field in the database.
	FieldTargetedConcepts = "targeted_concepts"
	// FieldStudentConfidence holds the string denoting the student_confidence field in the database.
	FieldStudentConfidence = "student_confidence"
	// FieldUnderstandingCheck holds the string denoting the understanding_check field in the database.
	FieldUnderstandingCheck = "understanding_check"
	// FieldConfidenceDelta holds the string denoting the confidence_delta field in the database.
	FieldConfidenceDelta = "confidence_delta"
	// FieldReasoningScore holds the string denoting the reasoning_score field in the database.
	FieldReasoningScore = "reasoning_score"
	// FieldTeachBackScore holds the string denoting the teach_back_score field in the database.
	FieldTeachBackScore = "teach_back_score"
	// FieldTransferAttempt holds the string denoting the transfer_attempt field in the database.
	FieldTransferAttempt = "transfer_attempt"
	// FieldBreakthrough holds the string denoting the breakthrough field in the database.
	FieldBreakthrough = "breakthrough"
	// Table holds the table name of the turnevent in the database.
	Table = "turn_events"
)

// Columns holds all SQL columns for turnevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldRole,
	FieldContent,
	FieldQuestionType,
	FieldDepthLevel,
	FieldTargetedConcepts,
	FieldStudentConfidence,
	FieldUnderstandingCheck,
	FieldConfidenceDelta,
	FieldReasoningScore,
	FieldTeachBackScore,
	FieldTransferAttempt,
	FieldBreakthrough,
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
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// DefaultQuestionType holds the default value on creation for the "question_type" field.
	DefaultQuestionType string
	// DefaultDepthLevel holds the default value on creation for the "depth_level" field.
	DefaultDepthLevel int
	// DefaultStudentConfidence holds the default value on creation for the "student_confidence" field.
	DefaultStudentConfidence float64
	// DefaultUnderstandingCheck holds the default value on creation for the "understanding_check" field.
	DefaultUnderstandingCheck bool
	// DefaultConfidenceDelta holds the default value on creation for the "confidence_delta" field.
	DefaultConfidenceDelta float64
	// DefaultReasoningScore holds the default value on creation for the "reasoning_score" field.
	DefaultReasoningScore int
	// DefaultTeachBackScore holds the default value on creation for the "teach_back_score" field.
	DefaultTeachBackScore int
	// DefaultTransferAttempt holds the default value on creation for the "transfer_attempt" field.
	DefaultTransferAttempt bool
	// DefaultBreakthrough holds the default value on creation for the "breakthrough" field.
	DefaultBreakthrough bool
)

// OrderOption defines the ordering options for the TurnEvent queries.
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

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByDepthLevel orders the results by the depth_level field.
func ByDepthLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepthLevel, opts...).ToFunc()
}

// ByStudentConfidence orders the results by the student_confidence field.
func ByStudentConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentConfidence, opts...).ToFunc()
}

// ByUnderstandingCheck orders the results by the understanding_check field.
func ByUnderstandingCheck(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnderstandingCheck, opts...).ToFunc()
}

// ByConfidenceDelta orders the results by the confidence_delta field.
func ByConfidenceDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceDelta, opts...).ToFunc()
}

// ByReasoningScore orders the results by the reasoning_score field.
func ByReasoningScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoningScore, opts...).ToFunc()
}

// ByTeachBackScore orders the results by the teach_back_score field.
func ByTeachBackScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeachBackScore, opts...).ToFunc()
}

// ByTransferAttempt orders the results by the transfer_attempt field.
func ByTransferAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransferAttempt, opts...).ToFunc()
}

// ByBreakthrough orders the results by the breakthrough field.
func ByBreakthrough(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakthrough, opts...).ToFunc()
}
