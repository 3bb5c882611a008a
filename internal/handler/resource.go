package handler

import (
	"net/http"

	"github.com/openshelf/reserve/api/internal/model"
	"github.com/openshelf/reserve/api/internal/service"
)

// ResourceHandler handles resource catalog endpoints
type ResourceHandler struct {
	resourceService *service.ResourceService
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resourceService *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
	}
}

// GetResource handles GET /v1/resources/{resourceId} - get a catalog entry
func (h *ResourceHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	resourceID := r.PathValue("resourceId")
	if resourceID == "" {
		WriteError(w, model.NewBadRequestError("resource ID required"))
		return
	}

	resource, err := h.resourceService.GetByID(r.Context(), resourceID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, resource, map[string]string{
		"self":         "/v1/resources/" + resource.ID,
		"reservations": "/v1/resources/" + resource.ID + "/reservations",
	})
}

// ListResources handles GET /v1/resources - list the catalog
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resourceService.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, resources, map[string]string{
		"self": "/v1/resources",
	})
}
