package itinerary

import (
	"fmt"
	"strings"

	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

// buildItineraryPrompt interpolates the user's selections into the
// generation template. The model is instructed to return strict JSON
// matching the ItineraryResponse wire shape.
func buildItineraryPrompt(prefs types.PreferenceSelection, loc types.LocationSelection) string {
	return fmt.Sprintf(`
        Generate a personalized hangout itinerary for %s.

        Preferences:
        - Activities: %s
        - Duration: %s
        - Budget: %s
        - Maximum travel distance: %s
        - Transportation: %s

        Make activities specific to the location, realistic, and based on actual
        venues. Include exact street addresses. Descriptions should be engaging
        and 1-2 sentences long. For each activity include a short justification
        for why it fits these preferences.

        Return the response STRICTLY as a JSON object with:
        {
        "title": "A title for the itinerary",
        "description": "A short description of the day",
        "location": "%s",
        "activities": [
            {
            "id": "unique id (e.g. act1)",
            "time": "display time (e.g. 9:00 AM)",
            "title": "Name of the activity",
            "description": "1-2 engaging sentences",
            "location": "street address and neighbourhood",
            "price": "price category (e.g. $, $$, $$$)",
            "rating": "display rating (e.g. 4.8 ★)",
            "timeOfDay": "morning, afternoon or evening",
            "type": "one of: exploring, eating, historical, cafe",
            "justification": "why this matches the user's preferences"
            }
        ],
        "recommendations": [
            {
            "id": "unique id (e.g. rec1)",
            "title": "A similar adventure",
            "description": "1-2 sentences",
            "rating": "display rating",
            "duration": "e.g. Half day"
            }
        ]
        }
        Include morning, afternoon and evening activities and three recommendations.`,
		loc.Location,
		strings.Join(prefs.HangoutTypes, ", "),
		prefs.Duration,
		prefs.Budget,
		loc.Distance,
		strings.Join(loc.Transportation, ", "),
		loc.Location,
	)
}
