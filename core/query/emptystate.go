// ABOUTME: Empty-result classification distinguishing empty months from over-constrained filters
// ABOUTME: Stats-derived explanations apply only with a concrete month in scope and no active filters

package query

import (
	"fmt"

	"arxiv-digest-api/core/domain"
)

const noMatchesMessage = "No papers match the current filters."

// EmptyMessage explains an empty result set. A month-specific
// explanation derived from the month's stats is used only when no text
// or tag filters are active and a single concrete month is in scope;
// every other empty case gets the generic no-matches message.
func EmptyMessage(state domain.QueryState, months map[string]domain.MonthPayload) string {
	if state.HasFilters() || state.Month == "" {
		return noMatchesMessage
	}
	payload, ok := months[state.Month]
	if !ok {
		return noMatchesMessage
	}
	stats := payload.Stats
	switch {
	case stats.Candidates == 0:
		return fmt.Sprintf("No candidate papers were found on arXiv for %s.", state.Month)
	case stats.Accepted == 0:
		return fmt.Sprintf("No papers were accepted by triage for %s.", state.Month)
	case stats.Summarized == 0:
		return fmt.Sprintf("Papers were accepted for %s but none have been summarized yet.", state.Month)
	default:
		return fmt.Sprintf("No papers are available for %s.", state.Month)
	}
}
