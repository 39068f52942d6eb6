package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRoomType is returned when a room type label is not recognised.
var ErrUnknownRoomType = errors.New("unknown room type")

// RoomType is the kind of accommodation a listing offers.
type RoomType int

const (
	RoomTypeUnset RoomType = iota
	PrivateRoom
	SharedRoom
	Studio
	OneBedroom
	TwoBedroom
	EntireHouse
)

var roomTypeLabels = map[RoomType]string{
	PrivateRoom: "Private Room",
	SharedRoom:  "Shared Room",
	Studio:      "Studio",
	OneBedroom:  "1 Bedroom",
	TwoBedroom:  "2 Bedroom",
	EntireHouse: "Entire House",
}

// RoomTypes lists every room type in picker order.
func RoomTypes() []RoomType {
	return []RoomType{PrivateRoom, SharedRoom, Studio, OneBedroom, TwoBedroom, EntireHouse}
}

// String returns the display label, e.g. "1 Bedroom".
func (r RoomType) String() string {
	return roomTypeLabels[r]
}

// ParseRoomType maps a display label (case-insensitive) to a RoomType.
// An empty label yields RoomTypeUnset.
func ParseRoomType(label string) (RoomType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return RoomTypeUnset, nil
	}
	for rt, l := range roomTypeLabels {
		if strings.EqualFold(l, label) {
			return rt, nil
		}
	}
	return RoomTypeUnset, fmt.Errorf("%w: %q", ErrUnknownRoomType, label)
}

// RawListing is a housing row as it appears in fixture or catalog data,
// before validation.
type RawListing struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Address     string   `yaml:"address"`
	Price       int      `yaml:"price"`
	RoomType    string   `yaml:"roomType"`
	Amenities   []string `yaml:"amenities"`
	University  string   `yaml:"university"`
	Distance    string   `yaml:"distance"`
	Rating      float64  `yaml:"rating"`
	Reviews     int      `yaml:"reviews"`
	Homeowner   string   `yaml:"homeowner"`
	Description string   `yaml:"description"`
	Available   bool     `yaml:"available"`
	Inquiries   int      `yaml:"inquiries"`
	Views       int      `yaml:"views"`
}

// Listing is a validated housing record. Listings are created once when the
// catalog loads and never mutated afterwards.
type Listing struct {
	ID          int
	Title       string
	Address     string
	Price       int
	RoomType    RoomType
	Amenities   []string
	University  string
	Distance    string
	DistanceKm  float64
	Rating      float64
	Reviews     int
	Homeowner   string
	Description string
	Available   bool
	Inquiries   int
	Views       int
}

// HasAmenity reports whether the listing offers the given amenity tag.
func (l *Listing) HasAmenity(tag string) bool {
	for _, a := range l.Amenities {
		if a == tag {
			return true
		}
	}
	return false
}

// HousingSummary holds the statistics shown above a housing view.
type HousingSummary struct {
	TotalListings        int
	AvailableListings    int
	AveragePrice         float64
	MinPrice             int
	MaxPrice             int
	MostExpensive        *Listing
	TopRated             []*Listing
	ListingsByUniversity map[string]int
}
