// ABOUTME: Request DTOs translating raw search parameters into engine query state
// ABOUTME: Shared by the JSON API and the server-rendered pages

package requests

import (
	"strings"

	"arxiv-digest-api/core/domain"
	"arxiv-digest-api/core/errors"
)

// SearchQuery carries the raw search parameters of one request.
type SearchQuery struct {
	// Q is the free-text query
	Q string

	// Month scopes results to one month; empty means all months
	Month string

	// Sort selects the result order; empty selects the default
	Sort string

	// Tags are repeatable category:value filter selections
	Tags []string
}

// ToQueryState validates the raw parameters and builds the engine state.
// Unknown sort modes and malformed tag selections are validation errors.
func (q SearchQuery) ToQueryState(view domain.View) (domain.QueryState, error) {
	sortMode, ok := domain.ParseSortMode(strings.TrimSpace(q.Sort))
	if !ok {
		return domain.QueryState{}, &errors.ValidationError{
			Field:   "sort",
			Message: "unknown sort mode: " + q.Sort,
		}
	}

	tags := make(map[string][]string)
	for _, raw := range q.Tags {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		category, value, found := strings.Cut(raw, ":")
		if !found || category == "" || value == "" {
			return domain.QueryState{}, &errors.ValidationError{
				Field:   "tag",
				Message: "tag filters must be category:value, got: " + raw,
			}
		}
		tags[category] = append(tags[category], value)
	}

	return domain.QueryState{
		View:  view,
		Month: strings.TrimSpace(q.Month),
		Query: q.Q,
		Sort:  sortMode,
		Tags:  tags,
	}, nil
}
