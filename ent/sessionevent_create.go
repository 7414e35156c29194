// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/socratiq/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SessionEventCreate) SetSequence(v int64) *SessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionEventCreate) SetTimestamp(v time.Time) *SessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTimestamp(v *time.Time) *SessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionEventCreate) SetSessionID(v string) *SessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SessionEventCreate) SetAction(v string) *SessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetProblemType sets the "problem_type" field.
func (_c *SessionEventCreate) SetProblemType(v string) *SessionEventCreate {
	_c.mutation.SetProblemType(v)
	return _c
}

// SetNillableProblemType sets the "problem_type" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableProblemType(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetProblemType(*v)
	}
	return _c
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (_c *SessionEventCreate) SetAvgResponseMs(v int) *SessionEventCreate {
	_c.mutation.SetAvgResponseMs(v)
	return _c
}

// SetNillableAvgResponseMs sets the "avg_response_ms" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableAvgResponseMs(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetAvgResponseMs(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *SessionEventCreate) SetDurationSecs(v int) *SessionEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableDurationSecs(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetInteractions sets the "interactions" field.
func (_c *SessionEventCreate) SetInteractions(v int) *SessionEventCreate {
	_c.mutation.SetInteractions(v)
	return _c
}

// SetNillableInteractions sets the "interactions" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableInteractions(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetInteractions(*v)
	}
	return _c
}

// SetCompletionRate sets the "completion_rate" field.
func (_c *SessionEventCreate) SetCompletionRate(v float64) *SessionEventCreate {
	_c.mutation.SetCompletionRate(v)
	return _c
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableCompletionRate(v *float64) *SessionEventCreate {
	if v != nil {
		_c.SetCompletionRate(*v)
	}
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *SessionEventCreate) SetMasteryScore(v float64) *SessionEventCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableMasteryScore(v *float64) *SessionEventCreate {
	if v != nil {
		_c.SetMasteryScore(*v)
	}
	return _c
}

// SetConceptsLearned sets the "concepts_learned" field.
func (_c *SessionEventCreate) SetConceptsLearned(v []string) *SessionEventCreate {
	_c.mutation.SetConceptsLearned(v)
	return _c
}

// SetConceptsStruggled sets the "concepts_struggled" field.
func (_c *SessionEventCreate) SetConceptsStruggled(v []string) *SessionEventCreate {
	_c.mutation.SetConceptsStruggled(v)
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *SessionEventCreate) SetHintsUsed(v int) *SessionEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableHintsUsed(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetDirectAnswerCount sets the "direct_answer_count" field.
func (_c *SessionEventCreate) SetDirectAnswerCount(v int) *SessionEventCreate {
	_c.mutation.SetDirectAnswerCount(v)
	return _c
}

// SetNillableDirectAnswerCount sets the "direct_answer_count" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableDirectAnswerCount(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetDirectAnswerCount(*v)
	}
	return _c
}

// SetMaxDepth sets the "max_depth" field.
func (_c *SessionEventCreate) SetMaxDepth(v int) *SessionEventCreate {
	_c.mutation.SetMaxDepth(v)
	return _c
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableMaxDepth(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetMaxDepth(*v)
	}
	return _c
}

// Mutation returns the SessionEventMutation object of the builder.
func (_c *SessionEventCreate) Mutation() *SessionEventMutation {
	return _c.mutation
}

// Save creates the SessionEvent in the database.
func (_c *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ProblemType(); !ok {
		v := sessionevent.DefaultProblemType
		_c.mutation.SetProblemType(v)
	}
	if _, ok := _c.mutation.AvgResponseMs(); !ok {
		v := sessionevent.DefaultAvgResponseMs
		_c.mutation.SetAvgResponseMs(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := sessionevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.Interactions(); !ok {
		v := sessionevent.DefaultInteractions
		_c.mutation.SetInteractions(v)
	}
	if _, ok := _c.mutation.CompletionRate(); !ok {
		v := sessionevent.DefaultCompletionRate
		_c.mutation.SetCompletionRate(v)
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		v := sessionevent.DefaultMasteryScore
		_c.mutation.SetMasteryScore(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := sessionevent.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.DirectAnswerCount(); !ok {
		v := sessionevent.DefaultDirectAnswerCount
		_c.mutation.SetDirectAnswerCount(v)
	}
	if _, ok := _c.mutation.MaxDepth(); !ok {
		v := sessionevent.DefaultMaxDepth
		_c.mutation.SetMaxDepth(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemType(); !ok {
		return &ValidationError{Name: "problem_type", err: errors.New(`ent: missing required field "SessionEvent.problem_type"`)}
	}
	if _, ok := _c.mutation.AvgResponseMs(); !ok {
		return &ValidationError{Name: "avg_response_ms", err: errors.New(`ent: missing required field "SessionEvent.avg_response_ms"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "SessionEvent.duration_secs"`)}
	}
	if _, ok := _c.mutation.Interactions(); !ok {
		return &ValidationError{Name: "interactions", err: errors.New(`ent: missing required field "SessionEvent.interactions"`)}
	}
	if _, ok := _c.mutation.CompletionRate(); !ok {
		return &ValidationError{Name: "completion_rate", err: errors.New(`ent: missing required field "SessionEvent.completion_rate"`)}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "SessionEvent.mastery_score"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "SessionEvent.hints_used"`)}
	}
	if _, ok := _c.mutation.DirectAnswerCount(); !ok {
		return &ValidationError{Name: "direct_answer_count", err: errors.New(`ent: missing required field "SessionEvent.direct_answer_count"`)}
	}
	if _, ok := _c.mutation.MaxDepth(); !ok {
		return &ValidationError{Name: "max_depth", err: errors.New(`ent: missing required field "SessionEvent.max_depth"`)}
	}
	return nil
}

func (_c *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
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

func (_c *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ProblemType(); ok {
		_spec.SetField(sessionevent.FieldProblemType, field.TypeString, value)
		_node.ProblemType = value
	}
	if value, ok := _c.mutation.AvgResponseMs(); ok {
		_spec.SetField(sessionevent.FieldAvgResponseMs, field.TypeInt, value)
		_node.AvgResponseMs = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.Interactions(); ok {
		_spec.SetField(sessionevent.FieldInteractions, field.TypeInt, value)
		_node.Interactions = value
	}
	if value, ok := _c.mutation.CompletionRate(); ok {
		_spec.SetField(sessionevent.FieldCompletionRate, field.TypeFloat64, value)
		_node.CompletionRate = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(sessionevent.FieldMasteryScore, field.TypeFloat64, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.ConceptsLearned(); ok {
		_spec.SetField(sessionevent.FieldConceptsLearned, field.TypeJSON, value)
		_node.ConceptsLearned = value
	}
	if value, ok := _c.mutation.ConceptsStruggled(); ok {
		_spec.SetField(sessionevent.FieldConceptsStruggled, field.TypeJSON, value)
		_node.ConceptsStruggled = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(sessionevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.DirectAnswerCount(); ok {
		_spec.SetField(sessionevent.FieldDirectAnswerCount, field.TypeInt, value)
		_node.DirectAnswerCount = value
	}
	if value, ok := _c.mutation.MaxDepth(); ok {
		_spec.SetField(sessionevent.FieldMaxDepth, field.TypeInt, value)
		_node.MaxDepth = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (_c *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
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
func (_c *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
