package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educonnect/models"
	"educonnect/utils"
)

func newTestLogger() *utils.Logger { return utils.NewNopLogger() }

func TestCleanerParseDistance(t *testing.T) {
	c := NewCleaner(newTestLogger())

	tests := []struct {
		raw  string
		want float64
	}{
		{"0.5km", 0.5},
		{"1.2km", 1.2},
		{" 2 km", 2},
		{"10km", 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.parseDistance(tt.raw), "parseDistance(%q)", tt.raw)
	}

	assert.True(t, math.IsInf(c.parseDistance("nearby"), 1))
	assert.True(t, math.IsInf(c.parseDistance(""), 1))
}

func TestCleanerClampRating(t *testing.T) {
	c := NewCleaner(newTestLogger())
	assert.Equal(t, 4.85, c.clampRating(4.85))
	assert.Equal(t, 0.0, c.clampRating(6.0))
	assert.Equal(t, 0.0, c.clampRating(-1))
}

func TestCleanerDropsInvalidRows(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := []*models.RawListing{
		{ID: 0, Title: "No ID", RoomType: "Studio"},
		{ID: 1, Title: "  ", RoomType: "Studio"},
		{ID: 2, Title: "Penthouse", RoomType: "Penthouse"},
		{ID: 3, Title: "Keeper", RoomType: "studio", Distance: "0.4km"},
		{ID: 3, Title: "Duplicate", RoomType: "Studio"},
		nil,
	}

	cleaned := c.Clean(raw)
	require.Len(t, cleaned, 1)
	assert.Equal(t, "Keeper", cleaned[0].Title)
	assert.Equal(t, models.Studio, cleaned[0].RoomType)
	assert.Equal(t, 0.4, cleaned[0].DistanceKm)
}

func TestCleanerNormalisesText(t *testing.T) {
	c := NewCleaner(newTestLogger())
	cleaned := c.Clean([]*models.RawListing{{
		ID:        7,
		Title:     "  Sunny   Loft ",
		RoomType:  "Entire House",
		Amenities: []string{"WiFi", " WiFi ", "", "Gym"},
	}})

	require.Len(t, cleaned, 1)
	assert.Equal(t, "Sunny Loft", cleaned[0].Title)
	assert.Equal(t, []string{"WiFi", "Gym"}, cleaned[0].Amenities)
}
