// Package handlers exposes the user and role registries over HTTP
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rbacdashboard/backend/internal/models"
	"github.com/rbacdashboard/backend/internal/pagination"
	"github.com/rbacdashboard/backend/internal/services"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, models.ErrorResponse{Error: message})
}

// respondServiceError maps a service error to a status code.
// Unknown errors are logged and reported as 500 without leaking their text.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, action string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		h.respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "validation failed", Details: verr.Details})
	case errors.Is(err, services.ErrInvalidListParams):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrUserNotFound):
		h.respondError(w, http.StatusNotFound, models.ErrUserNotFound.Error())
	case errors.Is(err, models.ErrRoleNotFound):
		h.respondError(w, http.StatusNotFound, models.ErrRoleNotFound.Error())
	default:
		h.logger.Error("failed to "+action, zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON decodes the request body into dst, rejecting unknown fields and trailing data
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("request body must contain a single JSON object")
	}
	return nil
}

// respondDecodeError replies to a body that could not be decoded
func (h *BaseHandler) respondDecodeError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	h.respondError(w, http.StatusBadRequest, "invalid request body")
}

// parseListParams reads search, page, pageSize, sort and order query parameters.
// Missing or malformed page values fall back to the first page of defaultSize records.
func parseListParams(r *http.Request, defaultSize, maxSize int) models.ListParams {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("pageSize"))
	page, size = pagination.Normalize(page, size, defaultSize, maxSize)

	return models.ListParams{
		Search:   q.Get("search"),
		Page:     page,
		PageSize: size,
		Sort:     strings.TrimSpace(q.Get("sort")),
		Order:    models.SortOrder(strings.ToLower(strings.TrimSpace(q.Get("order")))),
	}
}
