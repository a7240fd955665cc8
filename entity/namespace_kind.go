package entity

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamespaceKind is the closed set of namespace kinds.
type NamespaceKind int

const (
	NamespaceKindUnspecified NamespaceKind = iota
	NamespaceKindOrganization
	NamespaceKindTeam
	NamespaceKindGroup
	namespaceKindEnd
)

var namespaceKindNames = map[NamespaceKind]string{
	NamespaceKindUnspecified:  "unspecified",
	NamespaceKindOrganization: "organization",
	NamespaceKindTeam:         "team",
	NamespaceKindGroup:        "group",
}

var nameNamespaceKinds = map[string]NamespaceKind{
	"organization": NamespaceKindOrganization,
	"team":         NamespaceKindTeam,
	"group":        NamespaceKindGroup,
}

// NamespaceKinds returns every valid kind in declaration order.
func NamespaceKinds() []NamespaceKind {
	kinds := make([]NamespaceKind, 0, namespaceKindEnd-1)
	for k := NamespaceKindUnspecified + 1; k < namespaceKindEnd; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the string representation of the NamespaceKind.
// Defaults to "unspecified" if unrecognized.
func (k NamespaceKind) String() string {
	if name, ok := namespaceKindNames[k]; ok {
		return name
	}
	return namespaceKindNames[NamespaceKindUnspecified]
}

// Title returns the display name of the kind, e.g. "Organization".
func (k NamespaceKind) Title() string {
	return cases.Title(language.English).String(k.String())
}

func (k NamespaceKind) IsValid() bool {
	return k > NamespaceKindUnspecified && k < namespaceKindEnd
}

// ParseNamespaceKind parses a kind name, case-insensitively.
func ParseNamespaceKind(name string) (NamespaceKind, error) {
	if k, ok := nameNamespaceKinds[cases.Lower(language.English).String(name)]; ok {
		return k, nil
	}
	return NamespaceKindUnspecified, fmt.Errorf("unknown namespace kind %q", name)
}

func (k NamespaceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *NamespaceKind) UnmarshalText(text []byte) error {
	parsed, err := ParseNamespaceKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
