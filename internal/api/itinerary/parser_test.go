package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItineraryResponseStripsFences(t *testing.T) {
	fenced := "```json\n" + generatedItineraryJSON + "\n```"

	itin, err := parseItineraryResponse(fenced)
	require.NoError(t, err)
	assert.Equal(t, "A Perfect Day in Noida", itin.Title)
	assert.Len(t, itin.Activities, 2)
}

func TestParseItineraryResponsePlainJSON(t *testing.T) {
	itin, err := parseItineraryResponse(generatedItineraryJSON)
	require.NoError(t, err)
	assert.Equal(t, "Noida", itin.Location)
}

func TestParseItineraryResponseInvalid(t *testing.T) {
	_, err := parseItineraryResponse("sorry, I can't help with that")
	assert.Error(t, err)
}

func TestParseItineraryResponseEmptyActivities(t *testing.T) {
	_, err := parseItineraryResponse(`{"title":"Empty Day","description":"","location":"Noida","activities":[],"recommendations":[]}`)
	assert.Error(t, err)
}
