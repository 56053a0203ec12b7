// ABOUTME: Response DTOs for the digest manifest endpoint
// ABOUTME: Mirrors the manifest domain shape with JSON and doc tags

package responses

// ManifestResponse is the full month listing
type ManifestResponse struct {
	Latest string                  `json:"latest" doc:"Most recent month (YYYY-MM)"`
	Months []ManifestEntryResponse `json:"months" doc:"Entries sorted newest first"`
}

// ManifestEntryResponse describes one published digest month
type ManifestEntryResponse struct {
	Month      string             `json:"month" doc:"Digest month (YYYY-MM)"`
	MonthLabel string             `json:"month_label" doc:"Human-readable month name"`
	Href       string             `json:"href" doc:"Relative page path"`
	JSONPath   string             `json:"json_path" doc:"Relative payload path"`
	MonthRev   string             `json:"month_rev" doc:"Content revision, empty when unversioned"`
	Stats      MonthStatsResponse `json:"stats" doc:"Pipeline survival counts"`
	EmptyState string             `json:"empty_state" doc:"Why the month has no papers, if it has none"`
	Featured   *FeaturedResponse  `json:"featured" doc:"Highlighted paper, null when absent"`
}

// MonthStatsResponse carries per-month pipeline counts
type MonthStatsResponse struct {
	Candidates int `json:"candidates" doc:"Papers found on arXiv"`
	Accepted   int `json:"accepted" doc:"Papers accepted by triage"`
	Summarized int `json:"summarized" doc:"Papers with a summary"`
}

// FeaturedResponse highlights one paper for a month
type FeaturedResponse struct {
	ArxivIDBase string `json:"arxiv_id_base" doc:"Unversioned arXiv identifier"`
	Title       string `json:"title" doc:"Paper title"`
	OneLiner    string `json:"one_liner" doc:"One-sentence summary"`
	AbsURL      string `json:"abs_url" doc:"Abstract page URL"`
}
