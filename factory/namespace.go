package factory

import "github.com/isshub/isshub/entity"

const minNamespaceNameLength = 2

// NewNamespaceFactory returns a factory for entity.Namespace.
func NewNamespaceFactory(faker Faker) *Factory[*entity.Namespace] {
	kindDef, _ := entity.NamespaceSchema.Field(entity.FieldNamespaceKind)
	members := kindDef.Type.Members()

	return New(entity.NewNamespace, faker,
		Attr{Name: entity.FieldNamespaceID, Gen: func(f Faker) any { return f.PositiveInt() }},
		Attr{Name: entity.FieldNamespaceName, Gen: func(f Faker) any { return f.String(minNamespaceNameLength) }},
		Attr{Name: entity.FieldNamespaceKind, Gen: func(f Faker) any { return f.Member(members) }},
		Attr{Name: entity.FieldNamespaceDescription, Gen: func(f Faker) any { return f.Sentence() }},
	)
}
