package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"

	"github.com/wanderday/go-hangout-itinerary/app/observability/metrics"
	"github.com/wanderday/go-hangout-itinerary/internal/api/places"
	"github.com/wanderday/go-hangout-itinerary/internal/cache"
	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

const defaultTemperature = float32(0.7)

// Generator produces model output for a prompt. Nil when live generation is
// disabled; every failure falls back to the static catalog.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

// PhotoResolver resolves a representative photo for a venue. Best-effort:
// errors fall back to the stock image tables.
type PhotoResolver interface {
	PhotoForVenue(ctx context.Context, name, address string) (string, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for itinerary generation.
type Service interface {
	GenerateItinerary(ctx context.Context, req types.GenerateItineraryRequest) (*types.ItineraryResponse, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger    *slog.Logger
	generator Generator
	photos    PhotoResolver
	cache     cache.ItineraryCache
	cacheTTL  time.Duration
	metrics   *metrics.AppMetrics
}

// NewService creates a new itinerary generation service. generator and
// photos may be nil when the corresponding provider is disabled.
func NewService(generator Generator, photos PhotoResolver, itineraryCache cache.ItineraryCache, cacheTTL time.Duration, appMetrics *metrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		generator: generator,
		photos:    photos,
		cache:     itineraryCache,
		cacheTTL:  cacheTTL,
		metrics:   appMetrics,
	}
}

// GenerateItinerary runs the full pipeline: cache check, AI generation or
// catalog fallback, per-activity enrichment, cache write.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, req types.GenerateItineraryRequest) (*types.ItineraryResponse, error) {
	ctx, span := otel.Tracer("ItineraryGeneration").Start(ctx, "GenerateItinerary")
	defer span.End()

	start := time.Now()
	if s.metrics != nil {
		s.metrics.GenerationRequestsTotal.Add(ctx, 1)
		defer func() {
			s.metrics.GenerationDurationSeconds.Record(ctx, time.Since(start).Seconds())
		}()
	}

	cacheKey := cache.Key(req.Preferences, req.LocationData)
	span.SetAttributes(attribute.String("cache.key", cacheKey))

	if cached, found := s.cache.Get(ctx, cacheKey); found {
		s.logger.InfoContext(ctx, "Cache hit for itinerary", slog.String("cache_key", cacheKey))
		if s.metrics != nil {
			s.metrics.CacheHitsTotal.Add(ctx, 1)
		}
		span.SetStatus(codes.Ok, "Itinerary served from cache")
		return cached, nil
	}

	itinerary := s.generateOrFallback(ctx, req)
	assignIDs(itinerary)

	s.cache.Set(ctx, cacheKey, itinerary, s.cacheTTL)
	span.SetStatus(codes.Ok, "Itinerary generated and cached")
	return itinerary, nil
}

// generateOrFallback invokes the model and enriches its output; any
// provider or parse failure resolves to the fallback catalog instead of an
// error.
func (s *ServiceImpl) generateOrFallback(ctx context.Context, req types.GenerateItineraryRequest) *types.ItineraryResponse {
	if s.generator == nil {
		s.logger.InfoContext(ctx, "AI generation disabled, using fallback catalog",
			slog.String("location", req.LocationData.Location))
		return s.fallback(ctx, req)
	}

	prompt := buildItineraryPrompt(req.Preferences, req.LocationData)
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(defaultTemperature),
		ResponseMIMEType: "application/json",
	}

	txt, err := s.generator.GenerateContent(ctx, prompt, config)
	if err != nil {
		s.logger.WarnContext(ctx, "AI generation failed, using fallback catalog",
			slog.String("location", req.LocationData.Location), slog.Any("error", err))
		return s.fallback(ctx, req)
	}

	itinerary, err := parseItineraryResponse(txt)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to parse AI output, using fallback catalog",
			slog.String("location", req.LocationData.Location), slog.Any("error", err))
		return s.fallback(ctx, req)
	}

	s.enrich(ctx, itinerary, req.LocationData)
	return itinerary
}

func (s *ServiceImpl) fallback(ctx context.Context, req types.GenerateItineraryRequest) *types.ItineraryResponse {
	if s.metrics != nil {
		s.metrics.FallbackServedTotal.Add(ctx, 1)
	}
	return fallbackItinerary(req.Preferences, req.LocationData)
}

// enrich resolves photos and navigation links for a freshly generated
// itinerary. Each activity is processed sequentially; photo failures fall
// back to the category's stock images. Directions chain each activity to the
// previous stop, anchored at the city centre for the first.
func (s *ServiceImpl) enrich(ctx context.Context, itinerary *types.ItineraryResponse, loc types.LocationSelection) {
	previousStop := fmt.Sprintf("%s city centre", loc.Location)

	for i := range itinerary.Activities {
		activity := &itinerary.Activities[i]

		activity.Image = s.resolvePhoto(ctx, activity.Title, activity.Location, imageCategoryForActivity(activity.Type))
		activity.DirectionsURL = places.DirectionsURL(previousStop, activity.Location)
		activity.GoogleMapsLink = places.SearchURL(activity.Location)

		previousStop = activity.Location
	}

	for i := range itinerary.Recommendations {
		rec := &itinerary.Recommendations[i]
		rec.Image = s.resolvePhoto(ctx, rec.Title, itinerary.Location, "people enjoying outings")
	}
}

func (s *ServiceImpl) resolvePhoto(ctx context.Context, name, address, stockCategory string) string {
	if s.photos != nil {
		photoURL, err := s.photos.PhotoForVenue(ctx, name, address)
		if err == nil && photoURL != "" {
			return photoURL
		}
		if err != nil {
			s.logger.DebugContext(ctx, "Photo lookup failed, using stock image",
				slog.String("venue", name), slog.Any("error", err))
		}
	}
	return randomImageForCategory(stockCategory)
}

// assignIDs fills in missing activity and recommendation ids.
func assignIDs(itinerary *types.ItineraryResponse) {
	for i := range itinerary.Activities {
		if itinerary.Activities[i].ID == "" {
			itinerary.Activities[i].ID = uuid.NewString()
		}
	}
	for i := range itinerary.Recommendations {
		if itinerary.Recommendations[i].ID == "" {
			itinerary.Recommendations[i].ID = uuid.NewString()
		}
	}
}
