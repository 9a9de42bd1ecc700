package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sherlock2019/ontology-engine/pkg/logging"
	"github.com/Sherlock2019/ontology-engine/pkg/ontology"
)

// OntologyService provides the operations the dashboard-facing API performs
// against one ontology graph: minting entities, wiring relations, exact-match
// lookup, and exporting the whole graph as plain data.
type OntologyService interface {
	// CreateEntity mints a new entity of the given type with the given
	// attributes. Fails with apperrors.ErrUnknownType for names outside the
	// type catalog.
	CreateEntity(ctx context.Context, typeName string, attrs map[string]any) (*ontology.Entity, error)

	// GetEntity returns the entity with the given ID, or apperrors.ErrNotFound.
	GetEntity(ctx context.Context, id uuid.UUID) (*ontology.Entity, error)

	// LinkEntities appends a directed, labeled link from source to target.
	// Fails with apperrors.ErrNotFound when either end is missing.
	LinkEntities(ctx context.Context, sourceID uuid.UUID, relation string, targetID uuid.UUID) error

	// FindEntities returns entities of the given type matching every
	// key/value pair in query, in creation order. Never fails.
	FindEntities(ctx context.Context, typeName string, query map[string]any) []*ontology.Entity

	// Graph returns the plain-data view of every entity in creation order.
	Graph(ctx context.Context) []ontology.PlainEntity
}

type ontologyService struct {
	registry *ontology.Registry
	logger   *zap.Logger
}

// NewOntologyService creates an OntologyService backed by the given registry.
func NewOntologyService(registry *ontology.Registry, logger *zap.Logger) OntologyService {
	return &ontologyService{
		registry: registry,
		logger:   logger.Named("ontology-service"),
	}
}

var _ OntologyService = (*ontologyService)(nil)

func (s *ontologyService) CreateEntity(ctx context.Context, typeName string, attrs map[string]any) (*ontology.Entity, error) {
	e, err := s.registry.Create(typeName, attrs)
	if err != nil {
		s.logger.Warn("Rejected entity creation",
			zap.String("type", typeName),
			zap.Error(err))
		return nil, fmt.Errorf("create entity: %w", err)
	}

	s.logger.Debug("Created entity",
		zap.String("entity_id", e.ID().String()),
		zap.String("type", typeName),
		zap.Any("attributes", logging.SanitizeAttributes(attrs)))
	return e, nil
}

func (s *ontologyService) GetEntity(ctx context.Context, id uuid.UUID) (*ontology.Entity, error) {
	e, err := s.registry.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get entity: %w", err)
	}
	return e, nil
}

func (s *ontologyService) LinkEntities(ctx context.Context, sourceID uuid.UUID, relation string, targetID uuid.UUID) error {
	source, err := s.registry.Get(sourceID)
	if err != nil {
		return fmt.Errorf("link source: %w", err)
	}
	target, err := s.registry.Get(targetID)
	if err != nil {
		return fmt.Errorf("link target: %w", err)
	}

	source.Link(relation, target)

	s.logger.Debug("Linked entities",
		zap.String("source_id", sourceID.String()),
		zap.String("relation", relation),
		zap.String("target_id", targetID.String()))
	return nil
}

func (s *ontologyService) FindEntities(ctx context.Context, typeName string, query map[string]any) []*ontology.Entity {
	return s.registry.Find(typeName, query)
}

func (s *ontologyService) Graph(ctx context.Context) []ontology.PlainEntity {
	return s.registry.All()
}
