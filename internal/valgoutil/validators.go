package valgoutil

import (
	"slices"
	"strings"

	"github.com/cohesivestack/valgo"
)

func PositiveIntValidator(n int64, nameAndTitle ...string) valgo.Validator {
	return valgo.Int64(n, nameAndTitle...).GreaterThan(0, "{{title}} must be greater than 0")
}

func NotBlankValidator(s string, nameAndTitle ...string) valgo.Validator {
	return valgo.String(s, nameAndTitle...).Not().Blank("{{title}} must not be blank")
}

// MemberValidator checks that v is one of the allowed values of a closed set.
func MemberValidator[T any](v T, isMember func(T) bool, nameAndTitle ...string) valgo.Validator {
	return valgo.Any(v, nameAndTitle...).Passing(func(a any) bool {
		t, ok := a.(T)
		return ok && isMember(t)
	}, "{{title}} must be a known member")
}

func OneOfValidator(s string, allowed []string, nameAndTitle ...string) valgo.Validator {
	return valgo.String(s, nameAndTitle...).Passing(func(s string) bool {
		return slices.Contains(allowed, s)
	}, "{{title}} must be one of ["+strings.Join(allowed, ", ")+"]")
}

// Messages flattens a valgo error into "name: message" strings. It returns nil
// for errors not produced by valgo.
func Messages(err error) []string {
	verr, ok := err.(*valgo.Error)
	if !ok {
		return nil
	}
	var msgs []string
	for _, fe := range verr.Errors() {
		for _, m := range fe.Messages() {
			msgs = append(msgs, fe.Name()+": "+m)
		}
	}
	slices.Sort(msgs)
	return msgs
}

// FirstMessage returns the first message of a valgo error without the field
// name prefix, or err.Error() if err is not a valgo error.
func FirstMessage(err error) string {
	verr, ok := err.(*valgo.Error)
	if !ok {
		return err.Error()
	}
	var msgs []string
	for _, fe := range verr.Errors() {
		msgs = append(msgs, fe.Messages()...)
	}
	if len(msgs) == 0 {
		return err.Error()
	}
	slices.Sort(msgs)
	return msgs[0]
}
