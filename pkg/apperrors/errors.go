package apperrors

import "errors"

var (
	// ErrUnknownType is returned by Registry.Create when the requested type
	// name is not in the type catalog. It is the one validated failure in
	// the ontology core; match it with errors.Is.
	ErrUnknownType = errors.New("unknown entity type")

	// ErrNotFound is returned when an entity lookup by ID misses.
	ErrNotFound = errors.New("not found")
)
