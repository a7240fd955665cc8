package field

import (
	"fmt"

	"github.com/joshjon/kit/errtag"
)

// ErrTagTypeViolation tags a value whose runtime type does not match the
// field's declared type, including nil on a non-nullable field.
type ErrTagTypeViolation struct{ errtag.InvalidArgument }

func (ErrTagTypeViolation) Msg() string { return "Type violation" }

func (e ErrTagTypeViolation) Unwrap() error {
	return errtag.Tag[errtag.InvalidArgument](e.Cause())
}

// ErrTagValueViolation tags a value of the right type that falls outside the
// field's domain.
type ErrTagValueViolation struct{ errtag.InvalidArgument }

func (ErrTagValueViolation) Msg() string { return "Value violation" }

func (e ErrTagValueViolation) Unwrap() error {
	return errtag.Tag[errtag.InvalidArgument](e.Cause())
}

// Error reports which field rejected which value.
type Error struct {
	Entity string
	Field  string
	Value  any
	Reason string
	err    error
}

func (e *Error) Error() string {
	name := e.Field
	if e.Entity != "" {
		name = e.Entity + "." + e.Field
	}
	return fmt.Sprintf("%s: %s (got %#v)", name, e.Reason, e.Value)
}

func (e *Error) Unwrap() error { return e.err }

// WithEntity returns a copy of e scoped to the named entity.
func (e *Error) WithEntity(entity string) *Error {
	cp := *e
	cp.Entity = entity
	return &cp
}

func newTypeViolation(name string, v any, reason string) *Error {
	return &Error{
		Field:  name,
		Value:  v,
		Reason: reason,
		err:    errtag.Tag[ErrTagTypeViolation](fmt.Errorf("%s: %s", name, reason)),
	}
}

func newValueViolation(name string, v any, reason string) *Error {
	return &Error{
		Field:  name,
		Value:  v,
		Reason: reason,
		err:    errtag.Tag[ErrTagValueViolation](fmt.Errorf("%s: %s", name, reason)),
	}
}

// UnknownField reports an assignment to a field the entity does not declare.
func UnknownField(name string, v any) *Error {
	return newTypeViolation(name, v, "unknown field")
}

func IsTypeViolation(err error) bool {
	return errtag.HasTag[ErrTagTypeViolation](err)
}

func IsValueViolation(err error) bool {
	return errtag.HasTag[ErrTagValueViolation](err)
}
