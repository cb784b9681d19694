package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Client resolves representative photos for venues through the Places API
// and builds navigation links. Photo lookups are best-effort; callers fall
// back to stock images on any error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     os.Getenv("GOOGLE_MAPS_API_KEY"),
	}
}

type textSearchResponse struct {
	Results []struct {
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
	Status string `json:"status"`
}

// PhotoForVenue looks up a venue by name and address and returns a photo URL.
func (c *Client) PhotoForVenue(ctx context.Context, name, address string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GOOGLE_MAPS_API_KEY is not set")
	}

	query := url.Values{}
	query.Set("query", name+" "+address)
	query.Set("key", c.apiKey)

	endpoint := fmt.Sprintf("%s/textsearch/json?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("places lookup failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result textSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("invalid response from places API: %w", err)
	}
	if result.Status != "OK" || len(result.Results) == 0 || len(result.Results[0].Photos) == 0 {
		return "", fmt.Errorf("no photo found for %q", name)
	}

	photoQuery := url.Values{}
	photoQuery.Set("maxwidth", "800")
	photoQuery.Set("photo_reference", result.Results[0].Photos[0].PhotoReference)
	photoQuery.Set("key", c.apiKey)
	return fmt.Sprintf("%s/photo?%s", c.baseURL, photoQuery.Encode()), nil
}

// DirectionsURL builds a turn-by-turn navigation link between two stops.
func DirectionsURL(origin, destination string) string {
	query := url.Values{}
	query.Set("api", "1")
	query.Set("origin", origin)
	query.Set("destination", destination)
	return "https://www.google.com/maps/dir/?" + query.Encode()
}

// SearchURL builds a maps search link for a single venue.
func SearchURL(location string) string {
	query := url.Values{}
	query.Set("api", "1")
	query.Set("query", location)
	return "https://www.google.com/maps/search/?" + query.Encode()
}
