package types

import (
	"time"

	"github.com/google/uuid"
)

// Time-of-day buckets used by the timeline grouping.
const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
)

// PreferenceSelection is the first form submission: what the user wants to do.
type PreferenceSelection struct {
	HangoutTypes []string `json:"hangoutTypes"`
	Duration     string   `json:"duration"`
	Budget       string   `json:"budget"`
}

// LocationSelection is the second form submission: where and how they travel.
type LocationSelection struct {
	Location       string   `json:"location"`
	Distance       string   `json:"distance"`
	Transportation []string `json:"transportation"`
}

// GenerateItineraryRequest is the body of POST /api/generate-itinerary.
type GenerateItineraryRequest struct {
	Preferences  PreferenceSelection `json:"preferences"`
	LocationData LocationSelection   `json:"locationData"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ItineraryActivity struct {
	ID             string       `json:"id"`
	Time           string       `json:"time"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Location       string       `json:"location"`
	Image          string       `json:"image"`
	Price          string       `json:"price"`
	Rating         string       `json:"rating"`
	TimeOfDay      string       `json:"timeOfDay"`
	Type           string       `json:"type"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	Justification  string       `json:"justification,omitempty"`
	DirectionsURL  string       `json:"directionsUrl,omitempty"`
	GoogleMapsLink string       `json:"googleMapsLink,omitempty"`
}

type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Rating      string `json:"rating"`
	Duration    string `json:"duration"`
}

// ItineraryResponse is the unit of caching, display and persistence.
type ItineraryResponse struct {
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Location        string              `json:"location"`
	Activities      []ItineraryActivity `json:"activities"`
	Recommendations []Recommendation    `json:"recommendations"`
}

// SavedItinerary is an itinerary persisted by an authenticated user.
// Never mutated after creation.
type SavedItinerary struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ItineraryResponse
}

// GroupByTimeOfDay buckets activities into morning/afternoon/evening,
// preserving generation order within each bucket. Activities with an
// unrecognized timeOfDay are dropped, matching the timeline rendering.
func GroupByTimeOfDay(activities []ItineraryActivity) map[string][]ItineraryActivity {
	grouped := map[string][]ItineraryActivity{
		TimeOfDayMorning:   {},
		TimeOfDayAfternoon: {},
		TimeOfDayEvening:   {},
	}
	for _, a := range activities {
		if _, ok := grouped[a.TimeOfDay]; !ok {
			continue
		}
		grouped[a.TimeOfDay] = append(grouped[a.TimeOfDay], a)
	}
	return grouped
}
