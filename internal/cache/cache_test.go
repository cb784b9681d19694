package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

func samplePrefs() (types.PreferenceSelection, types.LocationSelection) {
	prefs := types.PreferenceSelection{
		HangoutTypes: []string{"Eating", "Exploring"},
		Duration:     "Half day",
		Budget:       "Mid-range",
	}
	loc := types.LocationSelection{
		Location:       "Noida",
		Distance:       "Moderate (up to 5 miles)",
		Transportation: []string{"Walking"},
	}
	return prefs, loc
}

func TestKeyIsDeterministic(t *testing.T) {
	prefs, loc := samplePrefs()

	assert.Equal(t, Key(prefs, loc), Key(prefs, loc))
}

func TestKeyNormalizesLocation(t *testing.T) {
	prefs, loc := samplePrefs()

	upper := loc
	upper.Location = "  NOIDA "
	// The normalized location segment matches, the digest still covers the
	// raw selection and so differs.
	assert.Contains(t, Key(prefs, upper), "itinerary:noida:")
	assert.Contains(t, Key(prefs, loc), "itinerary:noida:")
}

func TestKeyVariesWithPreferences(t *testing.T) {
	prefs, loc := samplePrefs()

	changed := prefs
	changed.Budget = "Premium"
	assert.NotEqual(t, Key(prefs, loc), Key(changed, loc))

	movedLoc := loc
	movedLoc.Distance = "Near (up to 1 mile)"
	assert.NotEqual(t, Key(prefs, loc), Key(prefs, movedLoc))
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	_, found := c.Get(ctx, "missing")
	assert.False(t, found)

	value := &types.ItineraryResponse{Title: "A Day in Noida", Location: "Noida"}
	c.Set(ctx, "k", value, time.Minute)

	got, found := c.Get(ctx, "k")
	require.True(t, found)
	assert.Equal(t, value, got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", &types.ItineraryResponse{Title: "short-lived"}, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, found := c.Get(ctx, "k")
	assert.False(t, found)
}
