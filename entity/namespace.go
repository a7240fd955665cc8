package entity

import "github.com/isshub/isshub/field"

const (
	FieldNamespaceID          = "id"
	FieldNamespaceName        = "name"
	FieldNamespaceKind        = "kind"
	FieldNamespaceDescription = "description"
)

// NamespaceSchema declares the fields of a Namespace, in validation order.
var NamespaceSchema = NewSchema(TypeNamespace,
	field.PositiveInt(FieldNamespaceID),
	field.NonEmptyString(FieldNamespaceName),
	field.EnumMember(FieldNamespaceKind, NamespaceKinds()...),
	field.Optional(FieldNamespaceDescription, field.String),
)

// Namespace groups code repositories under an organization, a team or a
// group.
type Namespace struct {
	Record
}

// NewNamespace creates a new Namespace from the given field values. It returns
// the first failing field's error if any value is invalid.
func NewNamespace(values Values) (*Namespace, error) {
	r, err := newRecord(NamespaceSchema, values)
	if err != nil {
		return nil, err
	}
	return &Namespace{Record: r}, nil
}

// ID returns the current id, or 0 if it is not an integer.
func (n *Namespace) ID() int64 {
	id, _ := field.AsInt64(n.Get(FieldNamespaceID))
	return id
}

func (n *Namespace) Name() string {
	name, _ := n.Get(FieldNamespaceName).(string)
	return name
}

func (n *Namespace) Kind() NamespaceKind {
	kind, _ := n.Get(FieldNamespaceKind).(NamespaceKind)
	return kind
}

// Description returns nil when the namespace has no description.
func (n *Namespace) Description() *string {
	desc, ok := n.Get(FieldNamespaceDescription).(string)
	if !ok {
		return nil
	}
	return &desc
}
