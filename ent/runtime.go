// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/socratiq/ent/llmrequestevent"
	"github.com/abhisek/socratiq/ent/schema"
	"github.com/abhisek/socratiq/ent/sessionevent"
	"github.com/abhisek/socratiq/ent/snapshot"
	"github.com/abhisek/socratiq/ent/turnevent"
	"github.com/abhisek/socratiq/ent/violationevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescSessionID is the schema descriptor for session_id field.
	llmrequesteventDescSessionID := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultSessionID holds the default value on creation for the session_id field.
	llmrequestevent.DefaultSessionID = llmrequesteventDescSessionID.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescProblemType is the schema descriptor for problem_type field.
	sessioneventDescProblemType := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultProblemType holds the default value on creation for the problem_type field.
	sessionevent.DefaultProblemType = sessioneventDescProblemType.Default.(string)
	// sessioneventDescAvgResponseMs is the schema descriptor for avg_response_ms field.
	sessioneventDescAvgResponseMs := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultAvgResponseMs holds the default value on creation for the avg_response_ms field.
	sessionevent.DefaultAvgResponseMs = sessioneventDescAvgResponseMs.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescInteractions is the schema descriptor for interactions field.
	sessioneventDescInteractions := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultInteractions holds the default value on creation for the interactions field.
	sessionevent.DefaultInteractions = sessioneventDescInteractions.Default.(int)
	// sessioneventDescCompletionRate is the schema descriptor for completion_rate field.
	sessioneventDescCompletionRate := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCompletionRate holds the default value on creation for the completion_rate field.
	sessionevent.DefaultCompletionRate = sessioneventDescCompletionRate.Default.(float64)
	// sessioneventDescMasteryScore is the schema descriptor for mastery_score field.
	sessioneventDescMasteryScore := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultMasteryScore holds the default value on creation for the mastery_score field.
	sessionevent.DefaultMasteryScore = sessioneventDescMasteryScore.Default.(float64)
	// sessioneventDescHintsUsed is the schema descriptor for hints_used field.
	sessioneventDescHintsUsed := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	sessionevent.DefaultHintsUsed = sessioneventDescHintsUsed.Default.(int)
	// sessioneventDescDirectAnswerCount is the schema descriptor for direct_answer_count field.
	sessioneventDescDirectAnswerCount := sessioneventFields[11].Descriptor()
	// sessionevent.DefaultDirectAnswerCount holds the default value on creation for the direct_answer_count field.
	sessionevent.DefaultDirectAnswerCount = sessioneventDescDirectAnswerCount.Default.(int)
	// sessioneventDescMaxDepth is the schema descriptor for max_depth field.
	sessioneventDescMaxDepth := sessioneventFields[12].Descriptor()
	// sessionevent.DefaultMaxDepth holds the default value on creation for the max_depth field.
	sessionevent.DefaultMaxDepth = sessioneventDescMaxDepth.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[0].Descriptor()
	// turnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	turnevent.SessionIDValidator = turneventDescSessionID.Validators[0].(func(string) error)
	// turneventDescRole is the schema descriptor for role field.
	turneventDescRole := turneventFields[1].Descriptor()
	// turnevent.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	turnevent.RoleValidator = turneventDescRole.Validators[0].(func(string) error)
	// turneventDescQuestionType is the schema descriptor for question_type field.
	turneventDescQuestionType := turneventFields[3].Descriptor()
	// turnevent.DefaultQuestionType holds the default value on creation for the question_type field.
	turnevent.DefaultQuestionType = turneventDescQuestionType.Default.(string)
	// turneventDescDepthLevel is the schema descriptor for depth_level field.
	turneventDescDepthLevel := turneventFields[4].Descriptor()
	// turnevent.DefaultDepthLevel holds the default value on creation for the depth_level field.
	turnevent.DefaultDepthLevel = turneventDescDepthLevel.Default.(int)
	// turneventDescStudentConfidence is the schema descriptor for student_confidence field.
	turneventDescStudentConfidence := turneventFields[6].Descriptor()
	// turnevent.DefaultStudentConfidence holds the default value on creation for the student_confidence field.
	turnevent.DefaultStudentConfidence = turneventDescStudentConfidence.Default.(float64)
	// turneventDescUnderstandingCheck is the schema descriptor for understanding_check field.
	turneventDescUnderstandingCheck := turneventFields[7].Descriptor()
	// turnevent.DefaultUnderstandingCheck holds the default value on creation for the understanding_check field.
	turnevent.DefaultUnderstandingCheck = turneventDescUnderstandingCheck.Default.(bool)
	// turneventDescConfidenceDelta is the schema descriptor for confidence_delta field.
	turneventDescConfidenceDelta := turneventFields[8].Descriptor()
	// turnevent.DefaultConfidenceDelta holds the default value on creation for the confidence_delta field.
	turnevent.DefaultConfidenceDelta = turneventDescConfidenceDelta.Default.(float64)
	// turneventDescReasoningScore is the schema descriptor for reasoning_score field.
	turneventDescReasoningScore := turneventFields[9].Descriptor()
	// turnevent.DefaultReasoningScore holds the default value on creation for the reasoning_score field.
	turnevent.DefaultReasoningScore = turneventDescReasoningScore.Default.(int)
	// turneventDescTeachBackScore is the schema descriptor for teach_back_score field.
	turneventDescTeachBackScore := turneventFields[10].Descriptor()
	// turnevent.DefaultTeachBackScore holds the default value on creation for the teach_back_score field.
	turnevent.DefaultTeachBackScore = turneventDescTeachBackScore.Default.(int)
	// turneventDescTransferAttempt is the schema descriptor for transfer_attempt field.
	turneventDescTransferAttempt := turneventFields[11].Descriptor()
	// turnevent.DefaultTransferAttempt holds the default value on creation for the transfer_attempt field.
	turnevent.DefaultTransferAttempt = turneventDescTransferAttempt.Default.(bool)
	// turneventDescBreakthrough is the schema descriptor for breakthrough field.
	turneventDescBreakthrough := turneventFields[12].Descriptor()
	// turnevent.DefaultBreakthrough holds the default value on creation for the breakthrough field.
	turnevent.DefaultBreakthrough = turneventDescBreakthrough.Default.(bool)
	violationeventMixin := schema.ViolationEvent{}.Mixin()
	violationeventMixinFields0 := violationeventMixin[0].Fields()
	_ = violationeventMixinFields0
	violationeventFields := schema.ViolationEvent{}.Fields()
	_ = violationeventFields
	// violationeventDescTimestamp is the schema descriptor for timestamp field.
	violationeventDescTimestamp := violationeventMixinFields0[1].Descriptor()
	// violationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	violationevent.DefaultTimestamp = violationeventDescTimestamp.Default.(func() time.Time)
	// violationeventDescSessionID is the schema descriptor for session_id field.
	violationeventDescSessionID := violationeventFields[0].Descriptor()
	// violationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	violationevent.SessionIDValidator = violationeventDescSessionID.Validators[0].(func(string) error)
	// violationeventDescPattern is the schema descriptor for pattern field.
	violationeventDescPattern := violationeventFields[2].Descriptor()
	// violationevent.DefaultPattern holds the default value on creation for the pattern field.
	violationevent.DefaultPattern = violationeventDescPattern.Default.(string)
}
