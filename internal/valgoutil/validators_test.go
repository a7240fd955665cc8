package valgoutil

import (
	"errors"
	"testing"

	"github.com/cohesivestack/valgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	assert.True(t, valgo.Is(PositiveIntValidator(1, "id")).Valid())
	assert.False(t, valgo.Is(PositiveIntValidator(0, "id")).Valid())
	assert.True(t, valgo.Is(NotBlankValidator("x", "name")).Valid())
	assert.False(t, valgo.Is(NotBlankValidator(" ", "name")).Valid())
	assert.True(t, valgo.Is(OneOfValidator("team", []string{"team", "group"}, "kind")).Valid())
	assert.False(t, valgo.Is(OneOfValidator("user", []string{"team", "group"}, "kind")).Valid())

	isEven := func(n int) bool { return n%2 == 0 }
	assert.True(t, valgo.Is(MemberValidator(2, isEven, "n")).Valid())
	assert.False(t, valgo.Is(MemberValidator(3, isEven, "n")).Valid())
}

func TestMessages(t *testing.T) {
	err := valgo.Is(PositiveIntValidator(-1, "id"), NotBlankValidator("", "name")).Error()
	require.Error(t, err)

	msgs := Messages(err)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "id: ")
	assert.Contains(t, msgs[1], "name: ")
	assert.NotEmpty(t, FirstMessage(err))

	plain := errors.New("boom")
	assert.Nil(t, Messages(plain))
	assert.Equal(t, "boom", FirstMessage(plain))
}
