// Package field provides reusable per-field constraints: a semantic type
// check, value-domain rules and a nullability toggle.
//
// A Def always checks nullability first, then the type, then its rules in
// order. A value of the wrong type never reaches a rule, so the reported kind
// for a value that is both mistyped and out of range is a type violation.
package field

import (
	"fmt"
	"slices"

	"github.com/cohesivestack/valgo"

	"github.com/isshub/isshub/internal/valgoutil"
)

// Rule checks the domain of a value that already matched the field's Type.
// It returns a valgo validation; an invalid validation is reported as a value
// violation.
type Rule func(name string, v any) *valgo.Validation

// Def declares a named field, its type, its domain rules and whether nil is
// an acceptable value.
type Def struct {
	Name     string
	Type     Type
	Rules    []Rule
	Nullable bool
}

// Required declares a field that rejects nil.
func Required(name string, t Type, rules ...Rule) Def {
	return Def{Name: name, Type: t, Rules: rules}
}

// Optional declares a field that accepts nil in addition to values that pass
// its type and rules.
func Optional(name string, t Type, rules ...Rule) Def {
	return Def{Name: name, Type: t, Rules: rules, Nullable: true}
}

func PositiveInt(name string) Def {
	return Required(name, Int, Positive)
}

func NonEmptyString(name string) Def {
	return Required(name, String, NotBlank)
}

// EnumMember declares an enumeration field that only accepts the given
// members. Factories draw from the same list through Type.Members.
func EnumMember[E Enum](name string, members ...E) Def {
	return Required(name, EnumOf(members...), MemberOf(members...))
}

// Check validates v against the field declaration. The returned error, if
// any, is a *Error tagged as a type or value violation.
func (d Def) Check(v any) error {
	if v == nil {
		if d.Nullable {
			return nil
		}
		return newTypeViolation(d.Name, v, "must not be null")
	}
	if !d.Type.Matches(v) {
		return newTypeViolation(d.Name, v, fmt.Sprintf("must be of type %s, not %T", d.Type.Name(), v))
	}
	for _, rule := range d.Rules {
		if err := rule(d.Name, v).Error(); err != nil {
			return newValueViolation(d.Name, v, valgoutil.FirstMessage(err))
		}
	}
	return nil
}

// Positive requires an integer greater than zero.
func Positive(name string, v any) *valgo.Validation {
	n, _ := AsInt64(v)
	return valgo.Is(valgoutil.PositiveIntValidator(n, name))
}

// NotBlank requires a string with at least one non-space character.
func NotBlank(name string, v any) *valgo.Validation {
	s, _ := v.(string)
	return valgo.Is(valgoutil.NotBlankValidator(s, name))
}

// Member requires an enumeration value for which IsValid reports true.
func Member[E Enum](name string, v any) *valgo.Validation {
	e, _ := v.(E)
	return valgo.Is(valgoutil.MemberValidator(e, func(e E) bool { return e.IsValid() }, name))
}

// MemberOf requires a valid enumeration value that is also in members.
func MemberOf[E Enum](members ...E) Rule {
	members = slices.Clone(members)
	return func(name string, v any) *valgo.Validation {
		e, _ := v.(E)
		return valgo.Is(valgoutil.MemberValidator(e, func(e E) bool {
			return e.IsValid() && slices.Contains(members, e)
		}, name))
	}
}
