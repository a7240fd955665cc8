package logkey

const (
	Service   = "service"
	Component = "component"
	RunID     = "run.id"

	EntityType = "entity.type"

	NamespaceID   = "namespace.id"
	NamespaceName = "namespace.name"
	NamespaceKind = "namespace.kind"

	FixtureIndex = "fixture.index"
	FieldName    = "field.name"
	ErrorKind    = "error.kind"
)
