// Package ontology implements an in-memory typed object graph: entities
// tagged with a closed type catalog, attribute storage, and directed, labeled
// links between entities. A Registry is the single owner of every entity it
// creates; one registry is one graph.
package ontology

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/Sherlock2019/ontology-engine/pkg/apperrors"
)

// Registry is the gatekeeper for legal type names and the ordered,
// append-only store of every entity created through it. Construct one
// explicitly per graph (per server, per test); there is no hidden singleton.
//
// The registry carries a single graph-wide lock shared by all of its
// entities. Entity mutation and reads take that lock, so one registry can
// back concurrent HTTP requests.
type Registry struct {
	mu       sync.RWMutex
	entities []*Entity
	byID     map[uuid.UUID]*Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[uuid.UUID]*Entity),
	}
}

// Create validates typeName against the type catalog, mints a new entity
// with a shallow copy of attrs, appends it to the store, and returns it.
// Unknown type names fail with apperrors.ErrUnknownType and leave the store
// untouched. This is the only way to create an entity.
func (r *Registry) Create(typeName string, attrs map[string]any) (*Entity, error) {
	typ := Type(typeName)
	if !typ.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownType, typeName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := newEntity(r, typ, attrs)
	r.entities = append(r.entities, e)
	r.byID[e.id] = e
	return e, nil
}

// Find returns, in creation order, every entity whose type tag equals
// typeName and whose attributes match every key/value pair in query
// (entity.Get(k) == v for all pairs; equality is deep, conjunctive, exact —
// no partial or fuzzy matching). An empty or nil query matches all entities
// of the type. Unknown type names and empty results both yield an empty
// slice, never an error.
func (r *Registry) Find(typeName string, query map[string]any) []*Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*Entity
	for _, e := range r.entities {
		if e.typ.String() != typeName {
			continue
		}
		if matchesQuery(e, query) {
			matches = append(matches, e)
		}
	}
	return matches
}

func matchesQuery(e *Entity, query map[string]any) bool {
	for k, want := range query {
		if !reflect.DeepEqual(e.get(k, nil), want) {
			return false
		}
	}
	return true
}

// Get returns the entity with the given ID, or apperrors.ErrNotFound.
func (r *Registry) Get(id uuid.UUID) (*Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("entity %s: %w", id, apperrors.ErrNotFound)
	}
	return e, nil
}

// All returns the plain-data view of every entity in creation order. An
// empty registry yields an empty slice.
func (r *Registry) All() []PlainEntity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]PlainEntity, 0, len(r.entities))
	for _, e := range r.entities {
		out = append(out, e.plainData())
	}
	return out
}

// Len returns the number of entities ever created through this registry.
// The store never shrinks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}
