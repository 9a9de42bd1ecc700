package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sherlock2019/ontology-engine/pkg/apperrors"
	"github.com/Sherlock2019/ontology-engine/pkg/ontology"
	"github.com/Sherlock2019/ontology-engine/pkg/services"
)

// ============================================================================
// Request/Response Types
// ============================================================================

// CreateEntityRequest for POST /api/entities
type CreateEntityRequest struct {
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// AddLinkRequest for POST /api/entities/{eid}/links
type AddLinkRequest struct {
	Relation string `json:"relation"`
	TargetID string `json:"target_id"`
}

// SearchEntitiesRequest for POST /api/entities/search
type SearchEntitiesRequest struct {
	Type  string         `json:"type"`
	Query map[string]any `json:"query,omitempty"`
}

// EntityResponse represents one entity: its registry identity plus the
// plain-data view (type, attributes, one-level-deep links).
type EntityResponse struct {
	ID         string                      `json:"id"`
	Type       string                      `json:"type"`
	Attributes map[string]any              `json:"attributes"`
	Links      map[string][]map[string]any `json:"links"`
}

// EntityListResponse for POST /api/entities/search
type EntityListResponse struct {
	Entities []EntityResponse `json:"entities"`
	Total    int              `json:"total"`
}

// GraphResponse for GET /api/graph
type GraphResponse struct {
	Entities []ontology.PlainEntity `json:"entities"`
	Total    int                    `json:"total"`
}

// ============================================================================
// Handler
// ============================================================================

// OntologyHandler handles ontology graph HTTP requests.
type OntologyHandler struct {
	ontologyService services.OntologyService
	logger          *zap.Logger
}

// NewOntologyHandler creates a new ontology handler.
func NewOntologyHandler(ontologyService services.OntologyService, logger *zap.Logger) *OntologyHandler {
	return &OntologyHandler{
		ontologyService: ontologyService,
		logger:          logger,
	}
}

// RegisterRoutes registers the ontology handler's routes on the given mux.
func (h *OntologyHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/entities", h.CreateEntity)
	mux.HandleFunc("GET /api/entities/{eid}", h.GetEntity)
	mux.HandleFunc("POST /api/entities/{eid}/links", h.AddLink)
	mux.HandleFunc("POST /api/entities/search", h.Search)
	mux.HandleFunc("GET /api/graph", h.GetGraph)
}

// CreateEntity handles POST /api/entities
func (h *OntologyHandler) CreateEntity(w http.ResponseWriter, r *http.Request) {
	var req CreateEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if req.Type == "" {
		h.writeError(w, http.StatusBadRequest, "missing_type", "Field 'type' is required")
		return
	}

	entity, err := h.ontologyService.CreateEntity(r.Context(), req.Type, req.Attributes)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownType) {
			h.writeError(w, http.StatusBadRequest, "unknown_type", err.Error())
			return
		}
		h.logger.Error("Failed to create entity",
			zap.String("type", req.Type),
			zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "create_entity_failed", err.Error())
		return
	}

	if err := WriteJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: toEntityResponse(entity)}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetEntity handles GET /api/entities/{eid}
func (h *OntologyHandler) GetEntity(w http.ResponseWriter, r *http.Request) {
	entityID, ok := ParseEntityID(w, r, h.logger)
	if !ok {
		return
	}

	entity, err := h.ontologyService.GetEntity(r.Context(), entityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "entity_not_found", "Entity not found")
			return
		}
		h.logger.Error("Failed to get entity",
			zap.String("entity_id", entityID.String()),
			zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "get_entity_failed", err.Error())
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: toEntityResponse(entity)}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// AddLink handles POST /api/entities/{eid}/links
func (h *OntologyHandler) AddLink(w http.ResponseWriter, r *http.Request) {
	sourceID, ok := ParseEntityID(w, r, h.logger)
	if !ok {
		return
	}

	var req AddLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if req.Relation == "" {
		h.writeError(w, http.StatusBadRequest, "missing_relation", "Field 'relation' is required")
		return
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_target_id", "Field 'target_id' must be a UUID")
		return
	}

	if err := h.ontologyService.LinkEntities(r.Context(), sourceID, req.Relation, targetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "entity_not_found", err.Error())
			return
		}
		h.logger.Error("Failed to link entities",
			zap.String("source_id", sourceID.String()),
			zap.String("relation", req.Relation),
			zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "link_entities_failed", err.Error())
		return
	}

	source, err := h.ontologyService.GetEntity(r.Context(), sourceID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "link_entities_failed", err.Error())
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: toEntityResponse(source)}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Search handles POST /api/entities/search
func (h *OntologyHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchEntitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if req.Type == "" {
		h.writeError(w, http.StatusBadRequest, "missing_type", "Field 'type' is required")
		return
	}

	entities := h.ontologyService.FindEntities(r.Context(), req.Type, req.Query)

	entityResponses := make([]EntityResponse, 0, len(entities))
	for _, e := range entities {
		entityResponses = append(entityResponses, toEntityResponse(e))
	}

	response := EntityListResponse{
		Entities: entityResponses,
		Total:    len(entityResponses),
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetGraph handles GET /api/graph
// The optional ?format=yaml query parameter switches the dump to YAML.
func (h *OntologyHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	entities := h.ontologyService.Graph(r.Context())

	if r.URL.Query().Get("format") == "yaml" {
		data, err := ontology.MarshalPlainYAML(entities)
		if err != nil {
			h.logger.Error("Failed to marshal graph as yaml", zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "graph_export_failed", err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		if _, err := w.Write(data); err != nil {
			h.logger.Error("Failed to write response", zap.Error(err))
		}
		return
	}

	response := GraphResponse{
		Entities: entities,
		Total:    len(entities),
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *OntologyHandler) writeError(w http.ResponseWriter, statusCode int, errorCode, message string) {
	if err := ErrorResponse(w, statusCode, errorCode, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}

func toEntityResponse(e *ontology.Entity) EntityResponse {
	plain := e.PlainData()
	return EntityResponse{
		ID:         e.ID().String(),
		Type:       plain.Type,
		Attributes: plain.Attributes,
		Links:      plain.Links,
	}
}
