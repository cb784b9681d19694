package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

// parseItineraryResponse decodes the model's output into an
// ItineraryResponse. Models often wrap JSON in markdown fences, so those are
// stripped first. A response with no activities is treated as unparsable.
func parseItineraryResponse(txt string) (*types.ItineraryResponse, error) {
	jsonStr := strings.TrimSpace(txt)
	jsonStr = strings.TrimPrefix(jsonStr, "```json")
	jsonStr = strings.TrimPrefix(jsonStr, "```")
	jsonStr = strings.TrimSuffix(jsonStr, "```")
	jsonStr = strings.TrimSpace(jsonStr)

	var itinerary types.ItineraryResponse
	if err := json.Unmarshal([]byte(jsonStr), &itinerary); err != nil {
		return nil, fmt.Errorf("failed to parse itinerary JSON: %w", err)
	}

	if itinerary.Title == "" || len(itinerary.Activities) == 0 {
		return nil, fmt.Errorf("itinerary JSON is missing title or activities")
	}
	return &itinerary, nil
}
