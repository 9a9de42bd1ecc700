package ontology

import (
	"github.com/google/uuid"
)

// Entity is a single node in the ontology graph: a type tag fixed at
// construction, a bag of attributes, and named outgoing relations to other
// entities. Entities are created only through Registry.Create, so every
// entity is owned and tracked by exactly one registry. Links are traversal
// references, never ownership, which is what lets the graph contain cycles.
//
// All methods share the owning registry's lock, so an entity is safe to use
// from the registry's concurrent callers.
type Entity struct {
	registry *Registry
	id       uuid.UUID
	typ      Type

	attributes map[string]any
	links      map[string][]*Entity
}

// PlainEntity is the serializable view of one entity. Linked entities are
// rendered one level deep: each target contributes its attributes only, not
// its type and not its own links. Deeper recursion would loop forever on
// cyclic graphs, so the shallow cut-off is part of the contract.
type PlainEntity struct {
	Type       string                      `json:"type" yaml:"type"`
	Attributes map[string]any              `json:"attributes" yaml:"attributes"`
	Links      map[string][]map[string]any `json:"links" yaml:"links"`
}

// newEntity builds an entity with a shallow copy of the initial attributes.
// The caller (the registry) has already validated the type tag.
func newEntity(r *Registry, typ Type, attrs map[string]any) *Entity {
	e := &Entity{
		registry:   r,
		id:         uuid.New(),
		typ:        typ,
		attributes: make(map[string]any, len(attrs)),
		links:      make(map[string][]*Entity),
	}
	for k, v := range attrs {
		e.attributes[k] = v
	}
	return e
}

// ID returns the entity's identity within its registry.
func (e *Entity) ID() uuid.UUID {
	return e.id
}

// Type returns the entity's type tag. The tag never changes after creation.
func (e *Entity) Type() Type {
	return e.typ
}

// Set inserts or overwrites an attribute. It never fails.
func (e *Entity) Set(key string, value any) {
	e.registry.mu.Lock()
	defer e.registry.mu.Unlock()
	e.attributes[key] = value
}

// Get returns the attribute stored under key, or fallback when the key has
// never been set. It never fails and never mutates the entity.
func (e *Entity) Get(key string, fallback any) any {
	e.registry.mu.RLock()
	defer e.registry.mu.RUnlock()
	return e.get(key, fallback)
}

// get is the lock-free variant for callers already holding the registry lock.
func (e *Entity) get(key string, fallback any) any {
	if v, ok := e.attributes[key]; ok {
		return v
	}
	return fallback
}

// Link appends target to the relation's edge list, creating the list the
// first time the relation name is seen on this entity. Append order is
// preserved and duplicates are kept. The target is not mutated; there is no
// automatic back-link.
func (e *Entity) Link(relation string, target *Entity) {
	e.registry.mu.Lock()
	defer e.registry.mu.Unlock()
	e.links[relation] = append(e.links[relation], target)
}

// Links returns the targets of one relation in append order, or nil when the
// relation has never been linked on this entity. The returned slice is a
// copy; mutating it does not affect the entity.
func (e *Entity) Links(relation string) []*Entity {
	e.registry.mu.RLock()
	defer e.registry.mu.RUnlock()
	targets := e.links[relation]
	if targets == nil {
		return nil
	}
	out := make([]*Entity, len(targets))
	copy(out, targets)
	return out
}

// Relations returns the relation names present on this entity. Order is
// unspecified.
func (e *Entity) Relations() []string {
	e.registry.mu.RLock()
	defer e.registry.mu.RUnlock()
	names := make([]string, 0, len(e.links))
	for name := range e.links {
		names = append(names, name)
	}
	return names
}

// PlainData renders the entity for display or JSON export.
func (e *Entity) PlainData() PlainEntity {
	e.registry.mu.RLock()
	defer e.registry.mu.RUnlock()
	return e.plainData()
}

func (e *Entity) plainData() PlainEntity {
	attrs := make(map[string]any, len(e.attributes))
	for k, v := range e.attributes {
		attrs[k] = v
	}

	links := make(map[string][]map[string]any, len(e.links))
	for relation, targets := range e.links {
		rendered := make([]map[string]any, 0, len(targets))
		for _, target := range targets {
			targetAttrs := make(map[string]any, len(target.attributes))
			for k, v := range target.attributes {
				targetAttrs[k] = v
			}
			rendered = append(rendered, targetAttrs)
		}
		links[relation] = rendered
	}

	return PlainEntity{
		Type:       e.typ.String(),
		Attributes: attrs,
		Links:      links,
	}
}
