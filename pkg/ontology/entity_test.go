package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreate(t *testing.T, r *Registry, typeName string, attrs map[string]any) *Entity {
	t.Helper()
	e, err := r.Create(typeName, attrs)
	require.NoError(t, err)
	return e
}

func TestEntity_SetGet_RoundTrip(t *testing.T) {
	r := NewRegistry()
	e := mustCreate(t, r, "Human", nil)

	e.Set("name", "John")
	assert.Equal(t, "John", e.Get("name", nil))

	e.Set("name", "Paul")
	assert.Equal(t, "Paul", e.Get("name", nil), "Set should overwrite")

	e.Set("age", 42)
	assert.Equal(t, 42, e.Get("age", nil))
}

func TestEntity_Get_FallbackForMissingKey(t *testing.T) {
	r := NewRegistry()
	e := mustCreate(t, r, "Human", map[string]any{"name": "John"})

	assert.Nil(t, e.Get("missing", nil))
	assert.Equal(t, "n/a", e.Get("missing", "n/a"))
	assert.Equal(t, 0, e.Get("missing", 0))
}

func TestEntity_InitialAttributesAreCopied(t *testing.T) {
	r := NewRegistry()
	attrs := map[string]any{"name": "HR"}
	e := mustCreate(t, r, "Department", attrs)

	attrs["name"] = "mutated"
	assert.Equal(t, "HR", e.Get("name", nil), "entity must not share the caller's map")
}

func TestEntity_Link_PreservesOrderAndDuplicates(t *testing.T) {
	r := NewRegistry()
	e := mustCreate(t, r, "Project", nil)
	t1 := mustCreate(t, r, "Agent", map[string]any{"name": "a1"})
	t2 := mustCreate(t, r, "Agent", map[string]any{"name": "a2"})
	t3 := mustCreate(t, r, "Agent", map[string]any{"name": "a3"})

	e.Link("agents", t1)
	e.Link("agents", t2)
	e.Link("agents", t3)
	e.Link("agents", t1) // duplicates are kept

	targets := e.Links("agents")
	require.Len(t, targets, 4)
	assert.Same(t, t1, targets[0])
	assert.Same(t, t2, targets[1])
	assert.Same(t, t3, targets[2])
	assert.Same(t, t1, targets[3])
}

func TestEntity_Links_NilForUnknownRelation(t *testing.T) {
	r := NewRegistry()
	e := mustCreate(t, r, "Project", nil)

	assert.Nil(t, e.Links("never-linked"))
}

func TestEntity_Link_DoesNotMutateTarget(t *testing.T) {
	r := NewRegistry()
	a := mustCreate(t, r, "Human", nil)
	b := mustCreate(t, r, "Department", nil)

	a.Link("department", b)

	assert.Empty(t, b.Relations(), "no automatic back-link")
}

func TestEntity_PlainData_ShallowLinkSerialization(t *testing.T) {
	r := NewRegistry()
	a := mustCreate(t, r, "Human", map[string]any{"name": "A"})
	b := mustCreate(t, r, "Department", map[string]any{"name": "B"})
	c := mustCreate(t, r, "System", map[string]any{"name": "C"})

	a.Link("rel", b)
	b.Link("system", c)

	plain := a.PlainData()
	assert.Equal(t, "Human", plain.Type)
	assert.Equal(t, map[string]any{"name": "A"}, plain.Attributes)

	// Linked entities contribute their attributes only: no type, no links of
	// their own, and b's edge to c is invisible from a.
	require.Contains(t, plain.Links, "rel")
	assert.Equal(t, []map[string]any{{"name": "B"}}, plain.Links["rel"])
}

func TestEntity_PlainData_EmptyLinksIsEmptyMap(t *testing.T) {
	r := NewRegistry()
	e := mustCreate(t, r, "Department", map[string]any{"name": "HR"})

	plain := e.PlainData()
	require.NotNil(t, plain.Links)
	assert.Empty(t, plain.Links)
}

func TestEntity_PlainData_SurvivesCycles(t *testing.T) {
	r := NewRegistry()
	a := mustCreate(t, r, "Team", map[string]any{"name": "A"})
	b := mustCreate(t, r, "Team", map[string]any{"name": "B"})

	a.Link("peer", b)
	b.Link("peer", a)

	assert.Equal(t, []map[string]any{{"name": "B"}}, a.PlainData().Links["peer"])
	assert.Equal(t, []map[string]any{{"name": "A"}}, b.PlainData().Links["peer"])
}

func TestEntity_TypeAndIDAreStable(t *testing.T) {
	r := NewRegistry()
	e := mustCreate(t, r, "Asset", nil)

	assert.Equal(t, TypeAsset, e.Type())
	assert.NotEqual(t, e.ID().String(), "00000000-0000-0000-0000-000000000000")

	other := mustCreate(t, r, "Asset", nil)
	assert.NotEqual(t, e.ID(), other.ID())
}
