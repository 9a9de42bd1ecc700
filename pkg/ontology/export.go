package ontology

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalGraphYAML renders the whole registry as a YAML document, one entry
// per entity in creation order. Used by the demo script and the graph
// endpoint's YAML mode; JSON export goes through encoding/json on the
// PlainEntity values directly.
func MarshalGraphYAML(r *Registry) ([]byte, error) {
	return MarshalPlainYAML(r.All())
}

// MarshalPlainYAML renders an already-snapshotted graph as YAML.
func MarshalPlainYAML(entities []PlainEntity) ([]byte, error) {
	data, err := yaml.Marshal(entities)
	if err != nil {
		return nil, fmt.Errorf("marshal graph to yaml: %w", err)
	}
	return data, nil
}
