// Package factory builds entity instances with random but valid field values.
// Any field can be overridden; overrides are passed to the entity constructor
// verbatim, so an invalid override makes Build fail with the entity's own
// validation error.
package factory

import (
	"fmt"

	"github.com/isshub/isshub/entity"
)

// Faker supplies random values to factories.
type Faker interface {
	// PositiveInt returns an integer greater than zero.
	PositiveInt() int
	// String returns a string of at least minLen characters.
	String(minLen int) string
	Sentence() string
	// Member returns one of members. It is how factories pick enumeration
	// values.
	Member(members []any) any
}

// Gen synthesizes a single field value.
type Gen func(f Faker) any

// Attr declares how a factory fills one field when it is not overridden.
type Attr struct {
	Name string
	Gen  Gen
}

// Factory builds entities of type E. It holds no state besides its
// declaration and the injected Faker.
type Factory[E entity.Entity] struct {
	construct func(entity.Values) (E, error)
	faker     Faker
	attrs     []Attr
}

func New[E entity.Entity](construct func(entity.Values) (E, error), faker Faker, attrs ...Attr) *Factory[E] {
	return &Factory[E]{
		construct: construct,
		faker:     faker,
		attrs:     attrs,
	}
}

// Fields returns the names of the fields the factory synthesizes.
func (f *Factory[E]) Fields() []string {
	names := make([]string, len(f.attrs))
	for i, a := range f.attrs {
		names[i] = a.Name
	}
	return names
}

// Build constructs an entity from overrides, synthesizing every declared
// field that overrides does not set.
func (f *Factory[E]) Build(overrides entity.Values) (E, error) {
	values := make(entity.Values, len(f.attrs)+len(overrides))
	for _, a := range f.attrs {
		if _, ok := overrides[a.Name]; ok {
			continue
		}
		values[a.Name] = a.Gen(f.faker)
	}
	for name, v := range overrides {
		values[name] = v
	}
	return f.construct(values)
}

// MustBuild is like Build but panics on error.
func (f *Factory[E]) MustBuild(overrides entity.Values) E {
	e, err := f.Build(overrides)
	if err != nil {
		panic(fmt.Sprintf("factory build: %v", err))
	}
	return e
}

// BuildN builds n entities sharing the same overrides.
func (f *Factory[E]) BuildN(n int, overrides entity.Values) ([]E, error) {
	out := make([]E, 0, n)
	for range n {
		e, err := f.Build(overrides)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
