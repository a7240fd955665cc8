package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceKind(t *testing.T) {
	assert.Equal(t, []NamespaceKind{NamespaceKindOrganization, NamespaceKindTeam, NamespaceKindGroup}, NamespaceKinds())
	assert.Equal(t, "organization", NamespaceKindOrganization.String())
	assert.Equal(t, "Organization", NamespaceKindOrganization.Title())
	assert.Equal(t, "unspecified", NamespaceKind(42).String())
	assert.False(t, NamespaceKindUnspecified.IsValid())
	assert.False(t, NamespaceKind(42).IsValid())
}

func TestParseNamespaceKind(t *testing.T) {
	got, err := ParseNamespaceKind("Team")
	require.NoError(t, err)
	assert.Equal(t, NamespaceKindTeam, got)

	_, err = ParseNamespaceKind("unspecified")
	require.EqualError(t, err, `unknown namespace kind "unspecified"`)

	var k NamespaceKind
	require.NoError(t, k.UnmarshalText([]byte("group")))
	assert.Equal(t, NamespaceKindGroup, k)
	assert.Error(t, k.UnmarshalText([]byte("user")))
}

func TestType(t *testing.T) {
	assert.Equal(t, "namespace", TypeNamespace.String())
	assert.Equal(t, "Namespace", TypeNamespace.Title())
	assert.Equal(t, TypeNamespace, ParseTypeFromString("namespace"))
	assert.Equal(t, TypeUnspecified, ParseTypeFromString("user"))
	assert.True(t, TypeNamespace.IsValid())
	assert.False(t, TypeUnspecified.IsValid())
}

func TestNewSchema_DuplicateField(t *testing.T) {
	assert.Panics(t, func() {
		NewSchema(TypeNamespace, NamespaceSchema.fields[0], NamespaceSchema.fields[0])
	})
}
