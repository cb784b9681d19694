package itineraries

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

// ErrMissingFields is returned when a save request lacks required fields.
var ErrMissingFields = errors.New("title, description and location are required")

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for saved itineraries.
type Service interface {
	Save(ctx context.Context, userID string, itinerary types.ItineraryResponse) error
	List(ctx context.Context, userID string) ([]types.SavedItinerary, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) Save(ctx context.Context, userID string, itinerary types.ItineraryResponse) error {
	if itinerary.Title == "" || itinerary.Description == "" || itinerary.Location == "" {
		return ErrMissingFields
	}

	id, err := s.repo.Save(ctx, userID, itinerary)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Itinerary saved",
		slog.String("itinerary_id", id.String()), slog.String("user_id", userID))
	return nil
}

func (s *ServiceImpl) List(ctx context.Context, userID string) ([]types.SavedItinerary, error) {
	return s.repo.List(ctx, userID)
}

func (s *ServiceImpl) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
