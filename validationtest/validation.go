// Package validationtest provides entity-agnostic assertions for field
// validation.
//
// Each assertion checks a value twice: once when building an entity with the
// value, and once by building a valid entity, setting the field and calling
// Validate. Both paths must produce the same outcome.
package validationtest

import (
	"fmt"
	"maps"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isshub/isshub/entity"
	"github.com/isshub/isshub/factory"
	"github.com/isshub/isshub/field"
	"github.com/isshub/isshub/internal/randutil"
)

// Outcome is the expected result of assigning a value to a field.
type Outcome int

const (
	Accept Outcome = iota
	TypeViolation
	ValueViolation
)

func (o Outcome) String() string {
	switch o {
	case Accept:
		return "accepted"
	case TypeViolation:
		return "type violation"
	case ValueViolation:
		return "value violation"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// matches reports whether err is the outcome o.
func (o Outcome) matches(err error) bool {
	switch o {
	case Accept:
		return err == nil
	case TypeViolation:
		return field.IsTypeViolation(err)
	case ValueViolation:
		return field.IsValueViolation(err)
	}
	return false
}

// Case pairs a value with its expected outcome.
type Case struct {
	Value any
	Want  Outcome
}

var IntegerOnly = []Case{
	{"foo", TypeViolation},
	{-123, ValueViolation},
	{-1.5, TypeViolation},
	{-1, ValueViolation},
	{-0.001, TypeViolation},
	{0.001, TypeViolation},
	{1, Accept},
	{1.5, TypeViolation},
	{123, Accept},
}

var NoZero = []Case{
	{0, ValueViolation},
}

var PositiveIntegerOnly = concat(IntegerOnly, NoZero)

var StringOnly = []Case{
	{"foo", Accept},
	{1, TypeViolation},
	{-0.1, TypeViolation},
}

func concat(tables ...[]Case) []Case {
	var out []Case
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// BuildFunc builds an entity from field overrides.
type BuildFunc func(overrides entity.Values) (entity.Entity, error)

// Builder adapts a typed factory to a BuildFunc.
func Builder[E entity.Entity](f *factory.Factory[E]) BuildFunc {
	return func(overrides entity.Values) (entity.Entity, error) {
		e, err := f.Build(overrides)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

var (
	fakerOnce sync.Once
	faker     *randutil.Rand
)

// Setup returns the faker shared by the tests of a package. The seed of the
// first call wins; later calls return the same faker.
func Setup(seed uint64) factory.Faker {
	fakerOnce.Do(func() {
		faker = randutil.New(seed)
	})
	return faker
}

type tHelper interface {
	Helper()
}

// AssertFieldExists asserts that e declares a field named name.
func AssertFieldExists(t assert.TestingT, e entity.Entity, name string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.True(t, e.HasField(name), "%s has no field %q", e.Schema().Type().Title(), name)
}

// AssertFieldValue asserts that setting name to value has outcome want, both
// when building and when validating after mutation. extra is passed to every
// build.
func AssertFieldValue(t assert.TestingT, build BuildFunc, name string, value any, want Outcome, extra entity.Values) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	overrides := maps.Clone(extra)
	if overrides == nil {
		overrides = entity.Values{}
	}
	overrides[name] = value
	_, err := build(overrides)
	ok := assertOutcome(t, "build", name, value, want, err)

	e, err := build(extra)
	if !assert.NoError(t, err, "building a default instance to mutate %q", name) {
		return false
	}
	if !assert.NoError(t, e.Set(name, value), "setting %q", name) {
		return false
	}
	return assertOutcome(t, "validate", name, value, want, e.Validate()) && ok
}

// AssertFieldNotNullable asserts that nil is a type violation for name.
func AssertFieldNotNullable(t assert.TestingT, build BuildFunc, name string, extra entity.Values) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return AssertFieldValue(t, build, name, nil, TypeViolation, extra)
}

// AssertFieldNullable asserts that nil is accepted for name.
func AssertFieldNullable(t assert.TestingT, build BuildFunc, name string, extra entity.Values) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return AssertFieldValue(t, build, name, nil, Accept, extra)
}

// RunFieldCases runs AssertFieldValue for every case as a subtest.
func RunFieldCases(t *testing.T, build BuildFunc, name string, cases []Case, extra entity.Values) {
	t.Helper()
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s=%#v", name, c.Value), func(t *testing.T) {
			AssertFieldValue(t, build, name, c.Value, c.Want, extra)
		})
	}
}

func assertOutcome(t assert.TestingT, path, name string, value any, want Outcome, err error) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if want.matches(err) {
		return true
	}
	if err == nil {
		return assert.Fail(t, fmt.Sprintf("%s: %s=%#v: expected %s, got none", path, name, value, want))
	}
	return assert.Fail(t, fmt.Sprintf("%s: %s=%#v: expected %s, got %v", path, name, value, want, err))
}
