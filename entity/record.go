package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
	"slices"

	"github.com/isshub/isshub/field"
)

// ErrNoSchema is returned by a Record that was not created by an entity
// constructor such as NewNamespace.
var ErrNoSchema = errors.New("entity has no schema: use its constructor")

// Values assigns field values by name, in the manner of keyword arguments.
type Values map[string]any

// Entity is implemented by every domain entity built on Record.
type Entity interface {
	Schema() *Schema
	Validate() error
	HasField(name string) bool
	Get(name string) any
	Set(name string, value any) error
	Values() Values
}

// Record holds the field values of one entity instance. Concrete entities
// embed it and only supply a Schema.
//
// Only entity constructors produce usable records. A zero Record has no
// schema: Validate, Set and MarshalJSON fail with ErrNoSchema, HasField
// reports false and Get returns nil.
//
// Values are checked when the record is constructed and whenever Validate is
// called. Set does not validate, so a record is only guaranteed valid right
// after construction or a successful Validate.
type Record struct {
	schema *Schema
	values map[string]any
}

// newRecord assigns values to every declared field, leaving omitted fields
// nil, then validates all fields in declaration order.
func newRecord(schema *Schema, values Values) (Record, error) {
	r := Record{
		schema: schema,
		values: make(map[string]any, len(schema.fields)),
	}
	var unknown []string
	for name, v := range values {
		if !schema.HasField(name) {
			unknown = append(unknown, name)
			continue
		}
		r.values[name] = v
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return Record{}, schema.scope(field.UnknownField(unknown[0], values[unknown[0]]))
	}
	for _, def := range schema.fields {
		if _, ok := r.values[def.Name]; !ok {
			r.values[def.Name] = nil
		}
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (r *Record) Schema() *Schema { return r.schema }

// Validate checks every field's current value in declaration order and
// returns the first failure. It never modifies the record.
func (r *Record) Validate() error {
	if r.schema == nil {
		return ErrNoSchema
	}
	return r.schema.check(r.values)
}

func (r *Record) HasField(name string) bool {
	return r.schema != nil && r.schema.HasField(name)
}

// Get returns the current value of the named field, or nil if the field is
// not declared.
func (r *Record) Get(name string) any {
	return r.values[name]
}

// Set replaces the value of a declared field without validating it.
func (r *Record) Set(name string, value any) error {
	if r.schema == nil {
		return ErrNoSchema
	}
	if !r.schema.HasField(name) {
		return r.schema.scope(field.UnknownField(name, value))
	}
	r.values[name] = value
	return nil
}

// Values returns a copy of the current field values.
func (r *Record) Values() Values {
	return maps.Clone(r.values)
}

// MarshalJSON encodes the record as an object with keys in declaration order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r.schema == nil {
		return nil, ErrNoSchema
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, def := range r.schema.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(def.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[def.Name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
