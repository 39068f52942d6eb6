package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceRangeBoundaries(t *testing.T) {
	tests := []struct {
		label string
		price int
		want  bool
	}{
		{"Under $500", 499, true},
		{"Under $500", 500, false},
		{"$500 - $800", 500, true},
		{"$500 - $800", 800, true},
		{"$500 - $800", 801, false},
		{"$800 - $1200", 800, true},
		{"$800 - $1200", 1200, true},
		{"$1500 - $2000", 2000, true},
		{"Over $2000", 2000, false},
		{"Over $2000", 2001, true},
		{"Over $2000", 50000, true},
	}

	for _, tt := range tests {
		pr, err := ParsePriceRange(tt.label)
		require.NoError(t, err)
		assert.Equal(t, tt.want, pr.Contains(tt.price), "%s contains %d", tt.label, tt.price)
	}
}

func TestParsePriceRangeUnknown(t *testing.T) {
	_, err := ParsePriceRange("$3 - $4")
	assert.ErrorIs(t, err, ErrUnknownBucket)

	pr, err := ParsePriceRange("")
	require.NoError(t, err)
	assert.False(t, pr.IsSet())
}

func TestParseRoomType(t *testing.T) {
	rt, err := ParseRoomType("1 bedroom")
	require.NoError(t, err)
	assert.Equal(t, OneBedroom, rt)
	assert.Equal(t, "1 Bedroom", rt.String())

	rt, err = ParseRoomType("")
	require.NoError(t, err)
	assert.Equal(t, RoomTypeUnset, rt)

	_, err = ParseRoomType("Penthouse")
	assert.ErrorIs(t, err, ErrUnknownRoomType)
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByPrice, k)

	k, err = ParseSortKey("Rating")
	require.NoError(t, err)
	assert.Equal(t, SortByRating, k)

	_, err = ParseSortKey("newest")
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}

func TestParseDistanceRange(t *testing.T) {
	dr, err := ParseDistanceRange("within 2km")
	require.NoError(t, err)
	assert.Equal(t, 2.0, dr.MaxKm)

	_, err = ParseDistanceRange("Next door")
	assert.ErrorIs(t, err, ErrUnknownBucket)
}
