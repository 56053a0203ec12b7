// ABOUTME: Query state models the session-scoped search, scope, tag and sort selections
// ABOUTME: State is a plain value threaded through pure functions, never ambient

package domain

import "strings"

// View is the dataset scope a session was opened with. It is fixed at
// session start.
type View string

const (
	// ViewAll aggregates every month listed in the manifest
	ViewAll View = "all"

	// ViewMonth scopes the session to a single month
	ViewMonth View = "month"
)

// SortMode identifies one of the four total result orders.
type SortMode string

const (
	SortPublishedDesc  SortMode = "published_desc"
	SortPublishedAsc   SortMode = "published_asc"
	SortTitleAsc       SortMode = "title_asc"
	SortConfidenceDesc SortMode = "confidence_desc"
)

// DefaultSort is applied when no sort is selected.
const DefaultSort = SortPublishedDesc

// ParseSortMode maps a raw sort parameter to a SortMode. The empty
// string selects the default; anything else unknown is rejected.
func ParseSortMode(s string) (SortMode, bool) {
	switch SortMode(s) {
	case "":
		return DefaultSort, true
	case SortPublishedDesc, SortPublishedAsc, SortTitleAsc, SortConfidenceDesc:
		return SortMode(s), true
	default:
		return "", false
	}
}

// QueryState is the full filter state for one render pass. It is never
// persisted; reset rebuilds it from defaults without re-fetching data.
type QueryState struct {
	// View the session was opened with
	View View

	// Month scopes results to one month; empty means all months
	Month string

	// Query is the raw free-text input
	Query string

	// Sort selects the result order
	Sort SortMode

	// Tags maps each tag category to its selected values. Categories
	// with no selection impose no constraint.
	Tags map[string][]string
}

// NormalizedQuery is the lowercase, trimmed form used for matching.
func (s QueryState) NormalizedQuery() string {
	return strings.ToLower(strings.TrimSpace(s.Query))
}

// HasFilters reports whether a text query or any tag selection is
// active. Month scope is not a filter for empty-state purposes.
func (s QueryState) HasFilters() bool {
	if s.NormalizedQuery() != "" {
		return true
	}
	for _, values := range s.Tags {
		if len(values) > 0 {
			return true
		}
	}
	return false
}
