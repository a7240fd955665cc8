package field

import (
	"fmt"
	"math"
)

// Type is the semantic type a field value must have before any domain rule
// is checked.
type Type struct {
	name    string
	match   func(v any) bool
	members []any
}

// Name returns the human readable name of the type, e.g. "integer".
func (t Type) Name() string { return t.name }

// Matches reports whether v has this type. nil never matches.
func (t Type) Matches(v any) bool {
	return v != nil && t.match != nil && t.match(v)
}

// Members returns the declared members of an enumeration type, or nil for
// any other type.
func (t Type) Members() []any {
	if t.members == nil {
		return nil
	}
	out := make([]any, len(t.members))
	copy(out, t.members)
	return out
}

var (
	Int    = Type{name: "integer", match: isInteger}
	String = Type{name: "string", match: isString}
)

// Enum is implemented by closed sets of symbolic constants.
type Enum interface {
	comparable
	fmt.Stringer
	IsValid() bool
}

// EnumOf returns the type of enumeration E. Only values whose dynamic type is
// exactly E match; members lists the valid constants of E.
func EnumOf[E Enum](members ...E) Type {
	var zero E
	ms := make([]any, len(members))
	for i, m := range members {
		ms[i] = m
	}
	return Type{
		name: fmt.Sprintf("%T", zero),
		match: func(v any) bool {
			_, ok := v.(E)
			return ok
		},
		members: ms,
	}
}

func isInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// AsInt64 converts any Go integer to int64. Unsigned values above
// math.MaxInt64 saturate. ok is false for non-integer values.
func AsInt64(v any) (n int64, ok bool) {
	switch i := v.(type) {
	case int:
		return int64(i), true
	case int8:
		return int64(i), true
	case int16:
		return int64(i), true
	case int32:
		return int64(i), true
	case int64:
		return i, true
	case uint:
		return saturate(uint64(i)), true
	case uint8:
		return int64(i), true
	case uint16:
		return int64(i), true
	case uint32:
		return int64(i), true
	case uint64:
		return saturate(i), true
	}
	return 0, false
}

func saturate(u uint64) int64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}
