package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

// ItineraryCache stores complete itinerary responses keyed by the request
// that produced them. Writes always replace the full value; the only
// invalidation is TTL expiry.
type ItineraryCache interface {
	Get(ctx context.Context, key string) (*types.ItineraryResponse, bool)
	Set(ctx context.Context, key string, value *types.ItineraryResponse, ttl time.Duration)
}

// Key derives a deterministic cache key from the normalized location and the
// full preference/location selections, so identical requests within the TTL
// window always hit.
func Key(prefs types.PreferenceSelection, loc types.LocationSelection) string {
	normalized := strings.ToLower(strings.TrimSpace(loc.Location))

	// Struct marshalling has a stable field order, so the digest is a pure
	// function of the submitted selections.
	payload, _ := json.Marshal(struct {
		Preferences  types.PreferenceSelection `json:"preferences"`
		LocationData types.LocationSelection   `json:"locationData"`
	}{prefs, loc})
	sum := sha256.Sum256(payload)

	return fmt.Sprintf("itinerary:%s:%x", normalized, sum[:8])
}
