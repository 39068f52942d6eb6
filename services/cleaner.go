package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"educonnect/models"
	"educonnect/utils"
)

var (
	// distanceRegexp captures the leading magnitude of a distance label ("1.2km").
	distanceRegexp = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)
)

// Cleaner transforms RawListings into validated, immutable Listings.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean validates raw rows and returns listings in input order. Rows without
// an ID or title, with an unknown room type, or repeating an earlier ID are
// dropped.
func (c *Cleaner) Clean(raw []*models.RawListing) []*models.Listing {
	seen := make(map[int]struct{})
	result := make([]*models.Listing, 0, len(raw))

	for _, r := range raw {
		if r == nil {
			continue
		}
		if r.ID <= 0 {
			c.logger.Warn("[cleaner] Dropping listing without id: %s", r.Title)
			continue
		}
		title := normaliseText(r.Title)
		if title == "" {
			c.logger.Warn("[cleaner] Dropping listing %d with empty title", r.ID)
			continue
		}
		if _, dup := seen[r.ID]; dup {
			c.logger.Debug("[cleaner] Duplicate listing id skipped: %d", r.ID)
			continue
		}

		roomType, err := models.ParseRoomType(r.RoomType)
		if err != nil || roomType == models.RoomTypeUnset {
			c.logger.Warn("[cleaner] Dropping listing %d: room type %q", r.ID, r.RoomType)
			continue
		}
		seen[r.ID] = struct{}{}

		listing := &models.Listing{
			ID:          r.ID,
			Title:       title,
			Address:     normaliseText(r.Address),
			Price:       r.Price,
			RoomType:    roomType,
			Amenities:   normaliseTags(r.Amenities),
			University:  normaliseText(r.University),
			Distance:    strings.TrimSpace(r.Distance),
			DistanceKm:  c.parseDistance(r.Distance),
			Rating:      c.clampRating(r.Rating),
			Reviews:     r.Reviews,
			Homeowner:   normaliseText(r.Homeowner),
			Description: normaliseText(r.Description),
			Available:   r.Available,
			Inquiries:   r.Inquiries,
			Views:       r.Views,
		}

		result = append(result, listing)
	}

	c.logger.Debug("[cleaner] Cleaned %d → %d listings (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

// parseDistance reads the numeric prefix of a distance label the way the
// housing grid does ("0.8km" → 0.8). Labels without a leading number sort
// last.
func (c *Cleaner) parseDistance(raw string) float64 {
	match := distanceRegexp.FindStringSubmatch(raw)
	if len(match) < 2 {
		if strings.TrimSpace(raw) != "" {
			c.logger.Debug("[cleaner] Unparseable distance %q", raw)
		}
		return math.Inf(1)
	}
	val, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return math.Inf(1)
	}
	return val
}

// clampRating keeps ratings inside 0.0–5.0; anything else becomes 0.
func (c *Cleaner) clampRating(r float64) float64 {
	if r < 0 || r > 5 || math.IsNaN(r) {
		return 0
	}
	return r
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}

func normaliseTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = normaliseText(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
