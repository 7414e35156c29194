// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/socratiq/ent/turnevent"
)

// TurnEventCreate is the builder for creating a TurnEvent entity.
type TurnEventCreate struct {
	config
	mutation *TurnEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TurnEventCreate) SetSequence(v int64) *TurnEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TurnEventCreate) SetTimestamp(v time.Time) *TurnEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableTimestamp(v *time.Time) *TurnEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TurnEventCreate) SetSessionID(v string) *TurnEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *TurnEventCreate) SetRole(v string) *TurnEventCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *TurnEventCreate) SetContent(v string) *TurnEventCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *TurnEventCreate) SetQuestionType(v string) *TurnEventCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableQuestionType(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetDepthLevel sets the "depth_level" field.
func (_c *TurnEventCreate) SetDepthLevel(v int) *TurnEventCreate {
	_c.mutation.SetDepthLevel(v)
	return _c
}

// SetNillableDepthLevel sets the "depth_level" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableDepthLevel(v *int) *TurnEventCreate {
	if v != nil {
		_c.SetDepthLevel(*v)
	}
	return _c
}

// SetTargetedConcepts sets the "targeted_concepts" field.
func (_c *TurnEventCreate) SetTargetedConcepts(v []string) *TurnEventCreate {
	_c.mutation.SetTargetedConcepts(v)
	return _c
}

// SetStudentConfidence sets the "student_confidence" field.
func (_c *TurnEventCreate) SetStudentConfidence(v float64) *TurnEventCreate {
	_c.mutation.SetStudentConfidence(v)
	return _c
}

// SetNillableStudentConfidence sets the "student_confidence" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableStudentConfidence(v *float64) *TurnEventCreate {
	if v != nil {
		_c.SetStudentConfidence(*v)
	}
	return _c
}

// SetUnderstandingCheck sets the "understanding_check" field.
func (_c *TurnEventCreate) SetUnderstandingCheck(v bool) *TurnEventCreate {
	_c.mutation.SetUnderstandingCheck(v)
	return _c
}

// SetNillableUnderstandingCheck sets the "understanding_check" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableUnderstandingCheck(v *bool) *TurnEventCreate {
	if v != nil {
		_c.SetUnderstandingCheck(*v)
	}
	return _c
}

// SetConfidenceDelta sets the "confidence_delta" field.
func (_c *TurnEventCreate) SetConfidenceDelta(v float64) *TurnEventCreate {
	_c.mutation.SetConfidenceDelta(v)
	return _c
}

// SetNillableConfidenceDelta sets the "confidence_delta" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableConfidenceDelta(v *float64) *TurnEventCreate {
	if v != nil {
		_c.SetConfidenceDelta(*v)
	}
	return _c
}

// SetReasoningScore sets the "reasoning_score" field.
func (_c *TurnEventCreate) SetReasoningScore(v int) *TurnEventCreate {
	_c.mutation.SetReasoningScore(v)
	return _c
}

// SetNillableReasoningScore sets the "reasoning_score" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableReasoningScore(v *int) *TurnEventCreate {
	if v != nil {
		_c.SetReasoningScore(*v)
	}
	return _c
}

// SetTeachBackScore sets the "teach_back_score" field.
func (_c *TurnEventCreate) SetTeachBackScore(v int) *TurnEventCreate {
	_c.mutation.SetTeachBackScore(v)
	return _c
}

// SetNillableTeachBackScore sets the "teach_back_score" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableTeachBackScore(v *int) *TurnEventCreate {
	if v != nil {
		_c.SetTeachBackScore(*v)
	}
	return _c
}

// SetTransferAttempt sets the "transfer_attempt" field.
func (_c *TurnEventCreate) SetTransferAttempt(v bool) *TurnEventCreate {
	_c.mutation.SetTransferAttempt(v)
	return _c
}

// SetNillableTransferAttempt sets the "transfer_attempt" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableTransferAttempt(v *bool) *TurnEventCreate {
	if v != nil {
		_c.SetTransferAttempt(*v)
	}
	return _c
}

// SetBreakthrough sets the "breakthrough" field.
func (_c *TurnEventCreate) SetBreakthrough(v bool) *TurnEventCreate {
	_c.mutation.SetBreakthrough(v)
	return _c
}

// SetNillableBreakthrough sets the "breakthrough" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableBreakthrough(v *bool) *TurnEventCreate {
	if v != nil {
		_c.SetBreakthrough(*v)
	}
	return _c
}

// Mutation returns the TurnEventMutation object of the builder.
func (_c *TurnEventCreate) Mutation() *TurnEventMutation {
	return _c.mutation
}

// Save creates the TurnEvent in the database.
func (_c *TurnEventCreate) Save(ctx context.Context) (*TurnEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnEventCreate) SaveX(ctx context.Context) *TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := turnevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := turnevent.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
	if _, ok := _c.mutation.DepthLevel(); !ok {
		v := turnevent.DefaultDepthLevel
		_c.mutation.SetDepthLevel(v)
	}
	if _, ok := _c.mutation.StudentConfidence(); !ok {
		v := turnevent.DefaultStudentConfidence
		_c.mutation.SetStudentConfidence(v)
	}
	if _, ok := _c.mutation.UnderstandingCheck(); !ok {
		v := turnevent.DefaultUnderstandingCheck
		_c.mutation.SetUnderstandingCheck(v)
	}
	if _, ok := _c.mutation.ConfidenceDelta(); !ok {
		v := turnevent.DefaultConfidenceDelta
		_c.mutation.SetConfidenceDelta(v)
	}
	if _, ok := _c.mutation.ReasoningScore(); !ok {
		v := turnevent.DefaultReasoningScore
		_c.mutation.SetReasoningScore(v)
	}
	if _, ok := _c.mutation.TeachBackScore(); !ok {
		v := turnevent.DefaultTeachBackScore
		_c.mutation.SetTeachBackScore(v)
	}
	if _, ok := _c.mutation.TransferAttempt(); !ok {
		v := turnevent.DefaultTransferAttempt
		_c.mutation.SetTransferAttempt(v)
	}
	if _, ok := _c.mutation.Breakthrough(); !ok {
		v := turnevent.DefaultBreakthrough
		_c.mutation.SetBreakthrough(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TurnEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TurnEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TurnEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "TurnEvent.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := turnevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "TurnEvent.content"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "TurnEvent.question_type"`)}
	}
	if _, ok := _c.mutation.DepthLevel(); !ok {
		return &ValidationError{Name: "depth_level", err: errors.New(`ent: missing required field "TurnEvent.depth_level"`)}
	}
	if _, ok := _c.mutation.StudentConfidence(); !ok {
		return &ValidationError{Name: "student_confidence", err: errors.New(`ent: missing required field "TurnEvent.student_confidence"`)}
	}
	if _, ok := _c.mutation.UnderstandingCheck(); !ok {
		return &ValidationError{Name: "understanding_check", err: errors.New(`ent: missing required field "TurnEvent.understanding_check"`)}
	}
	if _, ok := _c.mutation.ConfidenceDelta(); !ok {
		return &ValidationError{Name: "confidence_delta", err: errors.New(`ent: missing required field "TurnEvent.confidence_delta"`)}
	}
	if _, ok := _c.mutation.ReasoningScore(); !ok {
		return &ValidationError{Name: "reasoning_score", err: errors.New(`ent: missing required field "TurnEvent.reasoning_score"`)}
	}
	if _, ok := _c.mutation.TeachBackScore(); !ok {
		return &ValidationError{Name: "teach_back_score", err: errors.New(`ent: missing required field "TurnEvent.teach_back_score"`)}
	}
	if _, ok := _c.mutation.TransferAttempt(); !ok {
		return &ValidationError{Name: "transfer_attempt", err: errors.New(`ent: missing required field "TurnEvent.transfer_attempt"`)}
	}
	if _, ok := _c.mutation.Breakthrough(); !ok {
		return &ValidationError{Name: "breakthrough", err: errors.New(`ent: missing required field "TurnEvent.breakthrough"`)}
	}
	return nil
}

func (_c *TurnEventCreate) sqlSave(ctx context.Context) (*TurnEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TurnEventCreate) createSpec() (*TurnEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TurnEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turnevent.Table, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(turnevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(turnevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(turnevent.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(turnevent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(turnevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.DepthLevel(); ok {
		_spec.SetField(turnevent.FieldDepthLevel, field.TypeInt, value)
		_node.DepthLevel = value
	}
	if value, ok := _c.mutation.TargetedConcepts(); ok {
		_spec.SetField(turnevent.FieldTargetedConcepts, field.TypeJSON, value)
		_node.TargetedConcepts = value
	}
	if value, ok := _c.mutation.StudentConfidence(); ok {
		_spec.SetField(turnevent.FieldStudentConfidence, field.TypeFloat64, value)
		_node.StudentConfidence = value
	}
	if value, ok := _c.mutation.UnderstandingCheck(); ok {
		_spec.SetField(turnevent.FieldUnderstandingCheck, field.TypeBool, value)
		_node.UnderstandingCheck = value
	}
	if value, ok := _c.mutation.ConfidenceDelta(); ok {
		_spec.SetField(turnevent.FieldConfidenceDelta, field.TypeFloat64, value)
		_node.ConfidenceDelta = value
	}
	if value, ok := _c.mutation.ReasoningScore(); ok {
		_spec.SetField(turnevent.FieldReasoningScore, field.TypeInt, value)
		_node.ReasoningScore = value
	}
	if value, ok := _c.mutation.TeachBackScore(); ok {
		_spec.SetField(turnevent.FieldTeachBackScore, field.TypeInt, value)
		_node.TeachBackScore = value
	}
	if value, ok := _c.mutation.TransferAttempt(); ok {
		_spec.SetField(turnevent.FieldTransferAttempt, field.TypeBool, value)
		_node.TransferAttempt = value
	}
	if value, ok := _c.mutation.Breakthrough(); ok {
		_spec.SetField(turnevent.FieldBreakthrough, field.TypeBool, value)
		_node.Breakthrough = value
	}
	return _node, _spec
}

// TurnEventCreateBulk is the builder for creating many TurnEvent entities in bulk.
type TurnEventCreateBulk struct {
	config
	err      error
	builders []*TurnEventCreate
}

// Save creates the TurnEvent entities in the database.
func (_c *TurnEventCreateBulk) Save(ctx context.Context) ([]*TurnEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TurnEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TurnEventCreateBulk) SaveX(ctx context.Context) []*TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
