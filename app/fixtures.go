package app

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/isshub/isshub/entity"
)

type namespaceFixtures struct {
	Namespaces []map[string]any `yaml:"namespaces"`
}

// DecodeNamespaceFixtures reads namespace field values from YAML. Scalars keep
// their YAML type (int, float64, string, bool or nil) so that invalid values
// reach entity validation unchanged. Kind names are converted to
// entity.NamespaceKind when they are known.
func DecodeNamespaceFixtures(r io.Reader) ([]entity.Values, error) {
	var doc namespaceFixtures
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode namespace fixtures: %w", err)
	}

	out := make([]entity.Values, len(doc.Namespaces))
	for i, raw := range doc.Namespaces {
		values := make(entity.Values, len(raw))
		for k, v := range raw {
			values[k] = v
		}
		if name, ok := values[entity.FieldNamespaceKind].(string); ok {
			if kind, err := entity.ParseNamespaceKind(name); err == nil {
				values[entity.FieldNamespaceKind] = kind
			}
		}
		out[i] = values
	}
	return out, nil
}
