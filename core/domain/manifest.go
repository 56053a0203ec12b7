// ABOUTME: Manifest domain models describe the cross-month index of published digests
// ABOUTME: Includes per-month stats and the empty-state classification for months without papers

package domain

// Empty-state classifications recorded per manifest entry. They explain
// why a month may currently show no papers.
const (
	EmptyStateHasPapers    = "has_papers"
	EmptyStateNoCandidates = "no_candidates"
	EmptyStateNoAccepts    = "no_accepts"
	EmptyStateNoSummaries  = "no_summaries"
	EmptyStateUnknown      = "unknown"
)

// Manifest is the cross-month index describing which digest months exist
// and where their payloads live.
type Manifest struct {
	// Latest is the most recent month (YYYY-MM), empty when no months exist
	Latest string `json:"latest"`

	// Months sorted newest-first; YYYY-MM labels sort chronologically
	Months []ManifestEntry `json:"months"`
}

// ManifestEntry describes one published digest month.
type ManifestEntry struct {
	// Month in zero-padded YYYY-MM form
	Month string `json:"month"`

	// MonthLabel is the human form, e.g. "January 2025"
	MonthLabel string `json:"month_label"`

	// Href is the month page path relative to the site root
	Href string `json:"href"`

	// JSONPath is the month payload path relative to the site root
	JSONPath string `json:"json_path"`

	// MonthRev is the payload revision used for cache keys; may be empty
	MonthRev string `json:"month_rev"`

	// Stats describe pipeline survival counts for the month
	Stats MonthStats `json:"stats"`

	// EmptyState classifies why the month might show no results
	EmptyState string `json:"empty_state"`

	// Featured is the hand-picked highlight for the month, if any
	Featured *Featured `json:"featured,omitempty"`
}

// MonthStats count how many papers survived each pipeline stage,
// independent of how many are currently loaded.
type MonthStats struct {
	Candidates int `json:"candidates"`
	Accepted   int `json:"accepted"`
	Summarized int `json:"summarized"`
}

// Featured is the home-page highlight blurb for a month.
type Featured struct {
	ArxivIDBase string `json:"arxiv_id_base"`
	Title       string `json:"title"`
	OneLiner    string `json:"one_liner"`
	AbsURL      string `json:"abs_url"`
}
