// Package testhelpers provides shared fixtures for tests across packages.
package testhelpers

import (
	"testing"

	"github.com/Sherlock2019/ontology-engine/pkg/ontology"
)

// DemoRegistry returns a registry seeded with the fixed demo graph.
func DemoRegistry(t *testing.T) *ontology.Registry {
	t.Helper()

	r, err := ontology.BuildDemoGraph()
	if err != nil {
		t.Fatalf("failed to build demo graph: %v", err)
	}
	return r
}
