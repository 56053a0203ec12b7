// ABOUTME: Dataset domain models hold the merged in-memory paper collection for one load cycle
// ABOUTME: A dataset snapshot is built once and replaced wholesale, never mutated in place

package domain

// MonthPayload is one month's normalized digest data.
type MonthPayload struct {
	Month    string       `json:"month"`
	Stats    MonthStats   `json:"stats"`
	TopPicks []string     `json:"top_picks"`
	Papers   []Paper      `json:"papers"`
}

// Dataset is the merged collection over every month the manifest lists.
// Papers appear in manifest order (newest month first), with each month's
// payload order preserved.
type Dataset struct {
	Manifest Manifest
	Months   map[string]MonthPayload
	Papers   []Paper
	Facets   FacetIndex
}

// FacetIndex records the distinct tag values actually observed in the
// loaded dataset, per tag category. Filter controls are populated from
// it so they never offer values absent from the data.
type FacetIndex struct {
	// Categories in render order: the fixed vocabulary first, then any
	// extra categories found in the data
	Categories []string

	// Values per category, sorted ascending
	Values map[string][]string
}
