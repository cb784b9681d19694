package itineraries

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wanderday/go-hangout-itinerary/internal/api"
	"github.com/wanderday/go-hangout-itinerary/internal/api/auth"
	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Save handles POST /api/itineraries.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var itinerary types.ItineraryResponse
	if err := api.DecodeJSONBody(w, r, &itinerary); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Save(r.Context(), userID, itinerary); err != nil {
		if errors.Is(err, ErrMissingFields) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to save itinerary", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{"success": true})
}

// List handles GET /api/itineraries.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	saved, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list itineraries", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{"itineraries": saved})
}

// Delete handles DELETE /api/itineraries/{id}. Deleting a row the caller
// does not own is a no-op, reported as success.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid itinerary id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to delete itinerary", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{"success": true})
}
