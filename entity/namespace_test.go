package entity_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isshub/isshub/entity"
	"github.com/isshub/isshub/factory"
	"github.com/isshub/isshub/field"
	"github.com/isshub/isshub/validationtest"
)

func namespaceFactory() *factory.Factory[*entity.Namespace] {
	return factory.NewNamespaceFactory(validationtest.Setup(42))
}

func TestNamespace_Fields(t *testing.T) {
	ns := namespaceFactory().MustBuild(nil)
	for _, name := range []string{"id", "name", "kind", "description"} {
		validationtest.AssertFieldExists(t, ns, name)
	}
	assert.False(t, ns.HasField("namespace"))
	assert.Equal(t, []string{"id", "name", "kind", "description"}, entity.NamespaceSchema.Fields())
}

func TestNamespace_ID(t *testing.T) {
	build := validationtest.Builder(namespaceFactory())
	validationtest.AssertFieldNotNullable(t, build, entity.FieldNamespaceID, nil)
	validationtest.RunFieldCases(t, build, entity.FieldNamespaceID, validationtest.PositiveIntegerOnly, nil)
}

func TestNamespace_Name(t *testing.T) {
	build := validationtest.Builder(namespaceFactory())
	validationtest.AssertFieldNotNullable(t, build, entity.FieldNamespaceName, nil)
	validationtest.RunFieldCases(t, build, entity.FieldNamespaceName, validationtest.StringOnly, nil)
	validationtest.AssertFieldValue(t, build, entity.FieldNamespaceName, "", validationtest.ValueViolation, nil)
	validationtest.AssertFieldValue(t, build, entity.FieldNamespaceName, "  ", validationtest.ValueViolation, nil)
}

func TestNamespace_Kind(t *testing.T) {
	build := validationtest.Builder(namespaceFactory())
	validationtest.AssertFieldNotNullable(t, build, entity.FieldNamespaceKind, nil)
	validationtest.RunFieldCases(t, build, entity.FieldNamespaceKind, []validationtest.Case{
		{Value: entity.NamespaceKindOrganization, Want: validationtest.Accept},
		{Value: entity.NamespaceKindTeam, Want: validationtest.Accept},
		{Value: entity.NamespaceKindGroup, Want: validationtest.Accept},
		{Value: entity.NamespaceKindUnspecified, Want: validationtest.ValueViolation},
		{Value: entity.NamespaceKind(99), Want: validationtest.ValueViolation},
		{Value: "organization", Want: validationtest.TypeViolation},
		{Value: 1, Want: validationtest.TypeViolation},
		{Value: entity.TypeNamespace, Want: validationtest.TypeViolation},
	}, nil)
}

func TestNamespace_Description(t *testing.T) {
	build := validationtest.Builder(namespaceFactory())
	validationtest.AssertFieldNullable(t, build, entity.FieldNamespaceDescription, nil)
	validationtest.RunFieldCases(t, build, entity.FieldNamespaceDescription, validationtest.StringOnly, nil)
}

func TestNamespaceFactory_Defaults(t *testing.T) {
	f := namespaceFactory()
	for range 100 {
		ns, err := f.Build(nil)
		require.NoError(t, err)
		assert.Positive(t, ns.ID())
		assert.GreaterOrEqual(t, len(ns.Name()), 2)
		assert.True(t, ns.Kind().IsValid())
		require.NotNil(t, ns.Description())
	}
}

func TestNamespaceFactory_KindOverride(t *testing.T) {
	ns, err := namespaceFactory().Build(entity.Values{entity.FieldNamespaceKind: entity.NamespaceKindGroup})
	require.NoError(t, err)
	assert.Equal(t, entity.NamespaceKindGroup, ns.Kind())
	assert.Positive(t, ns.ID())
	assert.GreaterOrEqual(t, len(ns.Name()), 2)
}

func TestNamespaceFactory_NegativeID(t *testing.T) {
	ns, err := namespaceFactory().Build(entity.Values{entity.FieldNamespaceID: -5})
	require.Error(t, err)
	assert.Nil(t, ns)
	assert.True(t, field.IsValueViolation(err))

	var ferr *field.Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "Namespace", ferr.Entity)
	assert.Equal(t, entity.FieldNamespaceID, ferr.Field)
	assert.Equal(t, -5, ferr.Value)
}

func TestNamespaceFactory_NullName(t *testing.T) {
	_, err := namespaceFactory().Build(entity.Values{entity.FieldNamespaceName: nil})
	require.Error(t, err)
	assert.True(t, field.IsTypeViolation(err))

	var ferr *field.Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, entity.FieldNamespaceName, ferr.Field)
}

func TestNewNamespace(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ns, err := entity.NewNamespace(entity.Values{
			"id":   7,
			"name": "isshub",
			"kind": entity.NamespaceKindOrganization,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), ns.ID())
		assert.Equal(t, "isshub", ns.Name())
		assert.Equal(t, entity.NamespaceKindOrganization, ns.Kind())
		assert.Nil(t, ns.Description())
	})

	t.Run("first failing field in declaration order", func(t *testing.T) {
		_, err := entity.NewNamespace(entity.Values{
			"id":   0,
			"name": 12,
			"kind": "team",
		})
		require.Error(t, err)
		var ferr *field.Error
		require.True(t, errors.As(err, &ferr))
		assert.Equal(t, "id", ferr.Field)
		assert.True(t, field.IsValueViolation(err))
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := entity.NewNamespace(entity.Values{"id": 1, "name": "x"})
		require.Error(t, err)
		assert.True(t, field.IsTypeViolation(err))
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := entity.NewNamespace(entity.Values{
			"id":    1,
			"name":  "x",
			"kind":  entity.NamespaceKindTeam,
			"owner": "me",
		})
		require.Error(t, err)
		assert.True(t, field.IsTypeViolation(err))
		assert.Contains(t, err.Error(), "Namespace.owner")
	})
}

func TestNewNamespace_UnknownFieldsReportedInNameOrder(t *testing.T) {
	values := entity.Values{
		"id":      1,
		"name":    "x",
		"kind":    entity.NamespaceKindTeam,
		"zeta":    1,
		"owner":   "me",
		"members": 3,
		"parent":  nil,
	}
	for range 20 {
		_, err := entity.NewNamespace(values)
		var ferr *field.Error
		require.True(t, errors.As(err, &ferr))
		assert.Equal(t, "members", ferr.Field)
	}
}

func TestNamespace_ZeroValue(t *testing.T) {
	var ns entity.Namespace
	assert.ErrorIs(t, ns.Validate(), entity.ErrNoSchema)
	assert.ErrorIs(t, ns.Set(entity.FieldNamespaceID, 1), entity.ErrNoSchema)
	assert.False(t, ns.HasField(entity.FieldNamespaceID))
	assert.Nil(t, ns.Get(entity.FieldNamespaceID))
	assert.Zero(t, ns.ID())
	assert.Nil(t, ns.Description())
	_, err := json.Marshal(&ns)
	assert.ErrorIs(t, err, entity.ErrNoSchema)
}

func TestNamespace_ValidateIdempotent(t *testing.T) {
	ns := namespaceFactory().MustBuild(nil)
	before := ns.Values()
	for range 5 {
		require.NoError(t, ns.Validate())
	}
	assert.Equal(t, before, ns.Values())
}

func TestNamespace_SetDoesNotValidate(t *testing.T) {
	ns := namespaceFactory().MustBuild(nil)
	require.NoError(t, ns.Set(entity.FieldNamespaceID, "not an int"))
	assert.Equal(t, "not an int", ns.Get(entity.FieldNamespaceID))
	assert.Zero(t, ns.ID())
	assert.True(t, field.IsTypeViolation(ns.Validate()))

	require.NoError(t, ns.Set(entity.FieldNamespaceID, 3))
	assert.NoError(t, ns.Validate())

	err := ns.Set("owner", "me")
	assert.True(t, field.IsTypeViolation(err))
}

func TestNamespace_ValuesIsACopy(t *testing.T) {
	ns := namespaceFactory().MustBuild(nil)
	values := ns.Values()
	values[entity.FieldNamespaceID] = -1
	assert.NoError(t, ns.Validate())
}

func TestNamespace_MarshalJSON(t *testing.T) {
	ns, err := entity.NewNamespace(entity.Values{
		"id":          3,
		"name":        "twidi",
		"kind":        entity.NamespaceKindTeam,
		"description": "core team",
	})
	require.NoError(t, err)

	got, err := json.Marshal(ns)
	require.NoError(t, err)
	assert.Equal(t, `{"id":3,"name":"twidi","kind":"team","description":"core team"}`, string(got))
}
