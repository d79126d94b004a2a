package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rbacdashboard/backend/internal/models"
	"go.uber.org/zap"
)

// Resetter is implemented by registries that can be restored to their seed
type Resetter interface {
	// Method Reset restores the registry to its seed. IDs handed out before the reset are not reused.
	Reset(ctx context.Context) error
}

// AdminHandler handles maintenance requests that span both registries
type AdminHandler struct {
	BaseHandler
	registries []Resetter
}

// NewAdminHandler creates a new admin handler for the given registries
func NewAdminHandler(logger *zap.Logger, registries ...Resetter) *AdminHandler {
	return &AdminHandler{
		BaseHandler: BaseHandler{logger: logger},
		registries:  registries,
	}
}

// RegisterRoutes registers all admin handler routes
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Post("/reset", h.Reset)
	r.Get("/health", h.Health)
}

// Reset handles POST /reset
// @Summary Reset registries
// @Description Restore users and roles to their seed data
// @Tags admin
// @Produce json
// @Success 200 {object} models.MessageResponse "Registries reset"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /reset [post]
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	for _, registry := range h.registries {
		if err := registry.Reset(r.Context()); err != nil {
			h.respondServiceError(w, err, "reset registries")
			return
		}
	}

	h.logger.Info("registries reset")
	h.respondJSON(w, http.StatusOK, models.MessageResponse{Message: "Registries reset successfully"})
}

// Health handles GET /health
// @Summary Health check
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string "Service is healthy"
// @Router /health [get]
func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
