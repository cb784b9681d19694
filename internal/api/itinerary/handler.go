package itinerary

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/wanderday/go-hangout-itinerary/internal/api"
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

// GenerateItinerary handles POST /api/generate-itinerary.
func (h *Handler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateRequest(req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	itinerary, err := h.service.GenerateItinerary(r.Context(), req)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to generate itinerary", slog.Any("error", err))
		api.GenerationErrorResponse(w, r, "Failed to generate itinerary", err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, itinerary)
}

// validateRequest rejects requests with missing preference or location
// fields before the pipeline runs.
func validateRequest(req types.GenerateItineraryRequest) error {
	if len(req.Preferences.HangoutTypes) == 0 {
		return errors.New("preferences.hangoutTypes must not be empty")
	}
	if req.Preferences.Duration == "" {
		return errors.New("preferences.duration is required")
	}
	if req.Preferences.Budget == "" {
		return errors.New("preferences.budget is required")
	}
	if req.LocationData.Location == "" {
		return errors.New("locationData.location is required")
	}
	if req.LocationData.Distance == "" {
		return errors.New("locationData.distance is required")
	}
	return nil
}
