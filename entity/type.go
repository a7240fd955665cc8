package entity

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type represents the entity type.
type Type int

const (
	TypeUnspecified Type = iota
	TypeNamespace
	typeEnd
)

var typeNames = map[Type]string{
	TypeUnspecified: "unspecified",
	TypeNamespace:   "namespace",
}

var nameTypes = map[string]Type{
	"unspecified": TypeUnspecified,
	"namespace":   TypeNamespace,
}

// String returns the string representation of the Type.
// Defaults to "unspecified" if unrecognized.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return typeNames[TypeUnspecified]
}

// Title returns the display name of the Type, e.g. "Namespace".
func (t Type) Title() string {
	return cases.Title(language.English).String(t.String())
}

func (t Type) IsValid() bool {
	return t > TypeUnspecified && t < typeEnd
}

func ParseTypeFromString(typeName string) Type {
	if t, ok := nameTypes[typeName]; ok {
		return t
	}
	return TypeUnspecified
}
