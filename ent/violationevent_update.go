// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/socratiq/ent/predicate"
	"github.com/abhisek/socratiq/ent/violationevent"
)

// ViolationEventUpdate is the builder for updating ViolationEvent entities.
type ViolationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ViolationEventMutation
}

// Where appends a list predicates to the ViolationEventUpdate builder.
func (_u *ViolationEventUpdate) Where(ps ...predicate.ViolationEvent) *ViolationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ViolationEventUpdate) SetSessionID(v string) *ViolationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableSessionID(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUtterance sets the "utterance" field.
func (_u *ViolationEventUpdate) SetUtterance(v string) *ViolationEventUpdate {
	_u.mutation.SetUtterance(v)
	return _u
}

// SetNillableUtterance sets the "utterance" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableUtterance(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetUtterance(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *ViolationEventUpdate) SetPattern(v string) *ViolationEventUpdate {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillablePattern(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// Mutation returns the ViolationEventMutation object of the builder.
func (_u *ViolationEventUpdate) Mutation() *ViolationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ViolationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViolationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ViolationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViolationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViolationEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := violationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ViolationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(violationevent.Table, violationevent.Columns, sqlgraph.NewFieldSpec(violationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(violationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Utterance(); ok {
		_spec.SetField(violationevent.FieldUtterance, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(violationevent.FieldPattern, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{violationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ViolationEventUpdateOne is the builder for updating a single ViolationEvent entity.
type ViolationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ViolationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ViolationEventUpdateOne) SetSessionID(v string) *ViolationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableSessionID(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUtterance sets the "utterance" field.
func (_u *ViolationEventUpdateOne) SetUtterance(v string) *ViolationEventUpdateOne {
	_u.mutation.SetUtterance(v)
	return _u
}

// SetNillableUtterance sets the "utterance" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableUtterance(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetUtterance(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *ViolationEventUpdateOne) SetPattern(v string) *ViolationEventUpdateOne {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillablePattern(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// Mutation returns the ViolationEventMutation object of the builder.
func (_u *ViolationEventUpdateOne) Mutation() *ViolationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ViolationEventUpdate builder.
func (_u *ViolationEventUpdateOne) Where(ps ...predicate.ViolationEvent) *ViolationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ViolationEventUpdateOne) Select(field string, fields ...string) *ViolationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ViolationEvent entity.
func (_u *ViolationEventUpdateOne) Save(ctx context.Context) (*ViolationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViolationEventUpdateOne) SaveX(ctx context.Context) *ViolationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ViolationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViolationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViolationEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := violationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ViolationEventUpdateOne) sqlSave(ctx context.Context) (_node *ViolationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(violationevent.Table, violationevent.Columns, sqlgraph.NewFieldSpec(violationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ViolationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, violationevent.FieldID)
		for _, f := range fields {
			if !violationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != violationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(violationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Utterance(); ok {
		_spec.SetField(violationevent.FieldUtterance, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(violationevent.FieldPattern, field.TypeString, value)
	}
	_node = &ViolationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{violationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
