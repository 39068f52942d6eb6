package services

import (
	"sort"
	"strings"

	"educonnect/models"
)

// ComputeVisibleListings returns the listings a housing view shows for the
// given search text, criteria and sort key. The input slice is left
// untouched; the result is a fresh, possibly empty, slice.
//
// Filters combine with AND. Location and distance criteria are carried but do
// not narrow the view. Sorting is stable, so ties keep catalog order.
func ComputeVisibleListings(all []*models.Listing, query string, criteria models.FilterCriteria, sortKey models.SortKey) []*models.Listing {
	visible := make([]*models.Listing, 0, len(all))
	q := strings.ToLower(query)

	for _, l := range all {
		if l == nil {
			continue
		}
		if q != "" && !matchesQuery(l, q) {
			continue
		}
		if !matchesCriteria(l, criteria) {
			continue
		}
		visible = append(visible, l)
	}

	sortListings(visible, sortKey)
	return visible
}

func matchesQuery(l *models.Listing, q string) bool {
	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.Address), q) ||
		strings.Contains(strings.ToLower(l.University), q) ||
		strings.Contains(strings.ToLower(l.RoomType.String()), q)
}

func matchesCriteria(l *models.Listing, c models.FilterCriteria) bool {
	if c.RoomType != models.RoomTypeUnset && l.RoomType != c.RoomType {
		return false
	}
	if c.University != "" && l.University != c.University {
		return false
	}
	if c.PriceRange.IsSet() && !c.PriceRange.Contains(l.Price) {
		return false
	}
	for _, a := range c.Amenities {
		if !l.HasAmenity(a) {
			return false
		}
	}
	return true
}

func sortListings(ls []*models.Listing, key models.SortKey) {
	var less func(a, b *models.Listing) bool
	switch key {
	case models.SortByDistance:
		less = func(a, b *models.Listing) bool { return a.DistanceKm < b.DistanceKm }
	case models.SortByRating:
		less = func(a, b *models.Listing) bool { return a.Rating > b.Rating }
	default:
		less = func(a, b *models.Listing) bool { return a.Price < b.Price }
	}
	sort.SliceStable(ls, func(i, j int) bool { return less(ls[i], ls[j]) })
}

// Universities returns the distinct universities of the catalog in
// first-seen order.
func Universities(all []*models.Listing) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, l := range all {
		if _, ok := seen[l.University]; ok || l.University == "" {
			continue
		}
		seen[l.University] = struct{}{}
		out = append(out, l.University)
	}
	return out
}
