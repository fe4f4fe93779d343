package facades

import (
	"strings"
	"unicode/utf8"

	"github.com/viagemtrack/travelog/internal/models"
)

// MatchCountry resolves a free-text, possibly partial country name against
// the candidate list and returns the best match, or nil when no candidate
// matches. The query is trimmed and lower-cased; candidate names are
// lower-cased for comparison but not otherwise normalized.
//
// The cascade is evaluated in strict order and the first tier that yields
// a match wins, taking the first candidate in input order:
//
//  1. exact name match
//  2. name starts with the query
//  3. any whitespace-separated word of the name equals or starts with
//     the query
//  4. name contains the query, provided the name is shorter than three
//     times the query length
//
// The length guard on tier 4 is a crude filter against matching a short
// fragment deep inside a much longer, unrelated name. It is not a
// similarity metric.
func MatchCountry(query string, candidates []models.GeoCountry) *models.GeoCountry {
	q := strings.ToLower(strings.TrimSpace(query))

	for i := range candidates {
		if strings.ToLower(candidates[i].Name) == q {
			return &candidates[i]
		}
	}

	for i := range candidates {
		if strings.HasPrefix(strings.ToLower(candidates[i].Name), q) {
			return &candidates[i]
		}
	}

	for i := range candidates {
		for _, word := range strings.Fields(strings.ToLower(candidates[i].Name)) {
			if word == q || strings.HasPrefix(word, q) {
				return &candidates[i]
			}
		}
	}

	for i := range candidates {
		name := strings.ToLower(candidates[i].Name)
		if strings.Contains(name, q) && utf8.RuneCountInString(candidates[i].Name) < 3*utf8.RuneCountInString(q) {
			return &candidates[i]
		}
	}

	return nil
}
