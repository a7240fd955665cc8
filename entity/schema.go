package entity

import (
	"fmt"

	"github.com/isshub/isshub/field"
)

// Schema is the ordered field declaration of an entity type. It is immutable
// once declared and may be shared by every instance of the type.
type Schema struct {
	typ    Type
	fields []field.Def
	index  map[string]int
}

// NewSchema declares the fields of an entity type in validation order. It
// panics on duplicate field names.
func NewSchema(typ Type, defs ...field.Def) *Schema {
	s := &Schema{
		typ:    typ,
		fields: make([]field.Def, len(defs)),
		index:  make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		if _, ok := s.index[def.Name]; ok {
			panic(fmt.Sprintf("duplicate field %q in %s schema", def.Name, typ))
		}
		s.fields[i] = def
		s.index[def.Name] = i
	}
	return s
}

func (s *Schema) Type() Type { return s.typ }

// Fields returns the declared field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, def := range s.fields {
		names[i] = def.Name
	}
	return names
}

func (s *Schema) HasField(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s *Schema) Field(name string) (field.Def, bool) {
	i, ok := s.index[name]
	if !ok {
		return field.Def{}, false
	}
	return s.fields[i], true
}

// check validates values against every field in declaration order and returns
// the first failure.
func (s *Schema) check(values map[string]any) error {
	for _, def := range s.fields {
		if err := def.Check(values[def.Name]); err != nil {
			return s.scope(err)
		}
	}
	return nil
}

func (s *Schema) scope(err error) error {
	if ferr, ok := err.(*field.Error); ok {
		return ferr.WithEntity(s.typ.Title())
	}
	return err
}
