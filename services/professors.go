package services

import (
	"strings"

	"educonnect/models"
)

// FilterProfessors narrows the directory to professors whose name,
// university or field contains query (case-insensitive) and, when field is
// set, whose field matches it exactly. Directory order is preserved.
func FilterProfessors(all []*models.Professor, query, field string) []*models.Professor {
	out := make([]*models.Professor, 0, len(all))
	q := strings.ToLower(query)

	for _, p := range all {
		if p == nil {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.University), q) &&
			!strings.Contains(strings.ToLower(p.Field), q) {
			continue
		}
		if field != "" && p.Field != field {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Fields returns the distinct research fields in directory order.
func Fields(all []*models.Professor) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range all {
		if _, ok := seen[p.Field]; ok {
			continue
		}
		seen[p.Field] = struct{}{}
		out = append(out, p.Field)
	}
	return out
}
