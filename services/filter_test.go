package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educonnect/fixtures"
	"educonnect/models"
)

func sampleListings(t *testing.T) []*models.Listing {
	t.Helper()
	raw, err := fixtures.Housing()
	require.NoError(t, err)
	return NewCleaner(newTestLogger()).Clean(raw)
}

func ids(ls []*models.Listing) []int {
	out := make([]int, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func mustPrice(t *testing.T, label string) models.PriceRange {
	t.Helper()
	pr, err := models.ParsePriceRange(label)
	require.NoError(t, err)
	return pr
}

func TestVisibleListingsNoCriteriaSortsByPrice(t *testing.T) {
	all := sampleListings(t)
	got := ComputeVisibleListings(all, "", models.FilterCriteria{}, models.SortByPrice)

	assert.Equal(t, []int{5, 3, 1, 2, 4, 6}, ids(got))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(all), "input must not be reordered")
}

func TestVisibleListingsEmptyInput(t *testing.T) {
	got := ComputeVisibleListings(nil, "toronto", models.FilterCriteria{}, models.SortByRating)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestVisibleListingsQuery(t *testing.T) {
	all := sampleListings(t)

	tests := []struct {
		query string
		want  []int
	}{
		{"york", []int{4}},                 // title, address and university
		{"QUEEN", []int{6}},                // address, case-insensitive
		{"university of toronto", []int{3, 1}},
		{"studio", []int{2}},               // room type label
		{"1 bedroom", []int{4}},
		{"mars", []int{}},
	}

	for _, tt := range tests {
		got := ComputeVisibleListings(all, tt.query, models.FilterCriteria{}, models.SortByPrice)
		assert.Equal(t, tt.want, ids(got), "query %q", tt.query)
	}
}

func TestVisibleListingsFieldFilters(t *testing.T) {
	all := sampleListings(t)

	got := ComputeVisibleListings(all, "", models.FilterCriteria{RoomType: models.PrivateRoom}, models.SortByPrice)
	assert.Equal(t, []int{5, 1}, ids(got))

	got = ComputeVisibleListings(all, "", models.FilterCriteria{University: "University of Toronto"}, models.SortByPrice)
	assert.Equal(t, []int{3, 1}, ids(got))

	got = ComputeVisibleListings(all, "", models.FilterCriteria{
		RoomType:   models.PrivateRoom,
		University: "University of Toronto",
	}, models.SortByPrice)
	assert.Equal(t, []int{1}, ids(got))

	got = ComputeVisibleListings(all, "", models.FilterCriteria{University: "university of toronto"}, models.SortByPrice)
	assert.Empty(t, got, "university match is exact")
}

func TestVisibleListingsPriceBuckets(t *testing.T) {
	all := sampleListings(t)

	tests := []struct {
		label string
		want  []int
	}{
		{"Under $500", []int{}},
		{"$500 - $800", []int{5, 3, 1}},
		{"$800 - $1200", []int{1, 2}},
		{"$1200 - $1500", []int{2, 4}},
		{"$1500 - $2000", []int{4, 6}},
		{"Over $2000", []int{}},
	}

	for _, tt := range tests {
		got := ComputeVisibleListings(all, "", models.FilterCriteria{PriceRange: mustPrice(t, tt.label)}, models.SortByPrice)
		assert.Equal(t, tt.want, ids(got), "bucket %s", tt.label)
	}
}

func TestVisibleListingsBoundaryDoubleCounts(t *testing.T) {
	edge := []*models.Listing{{ID: 1, Title: "Edge", Price: 800, RoomType: models.Studio}}

	low := ComputeVisibleListings(edge, "", models.FilterCriteria{PriceRange: mustPrice(t, "$500 - $800")}, models.SortByPrice)
	high := ComputeVisibleListings(edge, "", models.FilterCriteria{PriceRange: mustPrice(t, "$800 - $1200")}, models.SortByPrice)

	assert.Len(t, low, 1)
	assert.Len(t, high, 1)
}

func TestVisibleListingsOpenEndedBucket(t *testing.T) {
	pricey := []*models.Listing{
		{ID: 1, Price: 2000, RoomType: models.EntireHouse},
		{ID: 2, Price: 2001, RoomType: models.EntireHouse},
		{ID: 3, Price: 9000, RoomType: models.EntireHouse},
	}
	got := ComputeVisibleListings(pricey, "", models.FilterCriteria{PriceRange: mustPrice(t, "Over $2000")}, models.SortByPrice)
	assert.Equal(t, []int{2, 3}, ids(got))
}

func TestVisibleListingsAmenitiesAllRequired(t *testing.T) {
	all := sampleListings(t)

	got := ComputeVisibleListings(all, "", models.FilterCriteria{Amenities: []string{"Gym", "Pet Friendly"}}, models.SortByPrice)
	assert.Equal(t, []int{4}, ids(got))

	got = ComputeVisibleListings(all, "", models.FilterCriteria{Amenities: []string{}}, models.SortByPrice)
	assert.Len(t, got, len(all), "empty amenity set is no constraint")
}

func TestVisibleListingsAmenitiesNarrowMonotonically(t *testing.T) {
	all := sampleListings(t)
	amenities := []string{"WiFi", "Laundry", "Parking", "Furnished", "Gym", "Kitchen Access"}

	for _, a := range amenities {
		for _, b := range amenities {
			wide := ComputeVisibleListings(all, "", models.FilterCriteria{Amenities: []string{a}}, models.SortByPrice)
			narrow := ComputeVisibleListings(all, "", models.FilterCriteria{Amenities: []string{a, b}}, models.SortByPrice)
			assert.Subset(t, ids(wide), ids(narrow), "{%s,%s} ⊆ {%s}", a, b, a)
		}
	}
}

func TestVisibleListingsLocationAndDistanceIgnored(t *testing.T) {
	all := sampleListings(t)
	dist, err := models.ParseDistanceRange("Within 1km")
	require.NoError(t, err)

	got := ComputeVisibleListings(all, "", models.FilterCriteria{Location: "Scarborough", Distance: dist}, models.SortByPrice)
	assert.Len(t, got, len(all))
}

func TestVisibleListingsSortByDistance(t *testing.T) {
	all := sampleListings(t)
	got := ComputeVisibleListings(all, "", models.FilterCriteria{}, models.SortByDistance)
	assert.Equal(t, []int{4, 1, 2, 3, 5, 6}, ids(got))
}

func TestVisibleListingsSortByRatingStable(t *testing.T) {
	tied := []*models.Listing{
		{ID: 1, Rating: 4.5, Price: 900, RoomType: models.Studio},
		{ID: 2, Rating: 4.9, Price: 700, RoomType: models.Studio},
		{ID: 3, Rating: 4.5, Price: 600, RoomType: models.Studio},
		{ID: 4, Rating: 4.5, Price: 800, RoomType: models.Studio},
	}

	got := ComputeVisibleListings(tied, "", models.FilterCriteria{}, models.SortByRating)
	assert.Equal(t, []int{2, 1, 3, 4}, ids(got), "equal ratings keep input order")

	byPrice := ComputeVisibleListings(tied, "", models.FilterCriteria{}, models.SortByPrice)
	reRated := ComputeVisibleListings(byPrice, "", models.FilterCriteria{}, models.SortByRating)
	assert.Equal(t, []int{2, 3, 4, 1}, ids(reRated), "rating ties keep the prior price order")
}

func TestVisibleListingsDeterministic(t *testing.T) {
	all := sampleListings(t)
	c := models.FilterCriteria{Amenities: []string{"WiFi"}}
	first := ComputeVisibleListings(all, "toronto", c, models.SortByRating)
	second := ComputeVisibleListings(all, "toronto", c, models.SortByRating)
	assert.Equal(t, ids(first), ids(second))
}

func TestUniversities(t *testing.T) {
	all := sampleListings(t)
	assert.Equal(t, []string{
		"University of Toronto", "Ryerson University", "York University",
		"OCAD University", "George Brown College",
	}, Universities(all))
}
