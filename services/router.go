package services

import (
	"strings"

	"educonnect/models"
)

// ResponseRouter maps free text to a canned answer by keyword containment.
// The category table is fixed at construction and tried in order.
type ResponseRouter struct {
	categories []models.KeywordCategory
	fallback   string
}

// NewResponseRouter copies the categories, lowercasing their keywords.
// Categories earlier in the slice win over later ones.
func NewResponseRouter(categories []models.KeywordCategory, fallback string) *ResponseRouter {
	cats := make([]models.KeywordCategory, 0, len(categories))
	for _, c := range categories {
		kw := make([]string, 0, len(c.Keywords))
		for _, k := range c.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				kw = append(kw, k)
			}
		}
		cats = append(cats, models.KeywordCategory{
			ID:        c.ID,
			Keywords:  kw,
			Response:  c.Response,
			FollowUps: append([]string(nil), c.FollowUps...),
		})
	}
	return &ResponseRouter{categories: cats, fallback: fallback}
}

// Route answers one message. It never fails: input matching no category
// gets the fallback response with no follow-ups.
func (r *ResponseRouter) Route(text string) models.RouteResult {
	lower := strings.ToLower(text)
	for _, c := range r.categories {
		for _, k := range c.Keywords {
			if strings.Contains(lower, k) {
				return models.RouteResult{
					CategoryID: c.ID,
					Response:   c.Response,
					FollowUps:  append([]string(nil), c.FollowUps...),
				}
			}
		}
	}
	return models.RouteResult{Response: r.fallback, FollowUps: []string{}}
}

// Category returns the category with the given id.
func (r *ResponseRouter) Category(id string) (models.KeywordCategory, bool) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.KeywordCategory{}, false
}
