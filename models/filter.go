package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBucket is returned when a price or distance label is not one of
// the named buckets.
var ErrUnknownBucket = errors.New("unknown bucket")

// ErrUnknownSortKey is returned for an unrecognised sort key.
var ErrUnknownSortKey = errors.New("unknown sort key")

// PriceRange is a named price bucket. Bounds are inclusive; a bucket with
// HasMax false is open-ended upward. The zero value means no constraint.
type PriceRange struct {
	Label  string
	Min    int
	Max    int
	HasMax bool
	// Exclusive bounds are used by the open-ended edge buckets.
	MinExclusive bool
	MaxExclusive bool
}

var priceRanges = []PriceRange{
	{Label: "Under $500", Max: 500, HasMax: true, MaxExclusive: true},
	{Label: "$500 - $800", Min: 500, Max: 800, HasMax: true},
	{Label: "$800 - $1200", Min: 800, Max: 1200, HasMax: true},
	{Label: "$1200 - $1500", Min: 1200, Max: 1500, HasMax: true},
	{Label: "$1500 - $2000", Min: 1500, Max: 2000, HasMax: true},
	{Label: "Over $2000", Min: 2000, MinExclusive: true},
}

// PriceRanges lists the named price buckets in picker order.
func PriceRanges() []PriceRange {
	out := make([]PriceRange, len(priceRanges))
	copy(out, priceRanges)
	return out
}

// ParsePriceRange looks up a bucket by its label. An empty label yields the
// zero PriceRange.
func ParsePriceRange(label string) (PriceRange, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return PriceRange{}, nil
	}
	for _, pr := range priceRanges {
		if strings.EqualFold(pr.Label, label) {
			return pr, nil
		}
	}
	return PriceRange{}, fmt.Errorf("%w: price range %q", ErrUnknownBucket, label)
}

// IsSet reports whether the bucket constrains anything.
func (p PriceRange) IsSet() bool {
	return p.Label != ""
}

// Contains reports whether price falls inside the bucket.
func (p PriceRange) Contains(price int) bool {
	if p.MinExclusive {
		if price <= p.Min {
			return false
		}
	} else if price < p.Min {
		return false
	}
	if !p.HasMax {
		return true
	}
	if p.MaxExclusive {
		return price < p.Max
	}
	return price <= p.Max
}

// DistanceRange is a named distance bucket ("Within 2km"). It is carried in
// the criteria but the housing view does not filter on it.
type DistanceRange struct {
	Label string
	MaxKm float64
}

var distanceRanges = []DistanceRange{
	{Label: "Within 1km", MaxKm: 1},
	{Label: "Within 2km", MaxKm: 2},
	{Label: "Within 5km", MaxKm: 5},
	{Label: "Within 10km", MaxKm: 10},
	{Label: "Any distance"},
}

// DistanceRanges lists the named distance buckets in picker order.
func DistanceRanges() []DistanceRange {
	out := make([]DistanceRange, len(distanceRanges))
	copy(out, distanceRanges)
	return out
}

// ParseDistanceRange looks up a distance bucket by label.
func ParseDistanceRange(label string) (DistanceRange, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return DistanceRange{}, nil
	}
	for _, dr := range distanceRanges {
		if strings.EqualFold(dr.Label, label) {
			return dr, nil
		}
	}
	return DistanceRange{}, fmt.Errorf("%w: distance %q", ErrUnknownBucket, label)
}

// FilterCriteria is the set of active housing filters. Every field is
// optional; a zero value means "no constraint".
type FilterCriteria struct {
	Location   string
	PriceRange PriceRange
	RoomType   RoomType
	University string
	Distance   DistanceRange
	Amenities  []string
}

// SortKey selects the ordering of a housing view.
type SortKey int

const (
	SortByPrice SortKey = iota
	SortByDistance
	SortByRating
)

func (s SortKey) String() string {
	switch s {
	case SortByDistance:
		return "distance"
	case SortByRating:
		return "rating"
	default:
		return "price"
	}
}

// ParseSortKey maps "price", "distance" or "rating" to a SortKey. Empty
// input yields the default, SortByPrice.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "price":
		return SortByPrice, nil
	case "distance":
		return SortByDistance, nil
	case "rating":
		return SortByRating, nil
	}
	return SortByPrice, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}
