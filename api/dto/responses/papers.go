// ABOUTME: Response DTOs for paper search and month payload endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// PaperResponse represents one normalized paper in API responses
type PaperResponse struct {
	Month               string              `json:"month" doc:"Digest month this paper belongs to"`
	ArxivIDBase         string              `json:"arxiv_id_base" doc:"Unversioned arXiv identifier"`
	ArxivID             string              `json:"arxiv_id" doc:"Versioned arXiv identifier"`
	Title               string              `json:"title" doc:"Paper title"`
	PublishedDate       string              `json:"published_date" doc:"Publication date (YYYY-MM-DD)"`
	Authors             []string            `json:"authors" doc:"Authors in display order"`
	Categories          []string            `json:"categories" doc:"arXiv taxonomy categories"`
	Links               LinksResponse       `json:"links" doc:"Outbound links"`
	Triage              TriageResponse      `json:"triage" doc:"Inclusion triage outcome"`
	Summary             *SummaryResponse    `json:"summary" doc:"Structured summary, null when unavailable"`
	SummaryFailedReason string              `json:"summary_failed_reason,omitempty" doc:"Why the summary is missing"`
}

// LinksResponse carries a paper's outbound URLs
type LinksResponse struct {
	Abs string `json:"abs" doc:"Abstract page URL"`
	PDF string `json:"pdf,omitempty" doc:"PDF URL if known"`
}

// TriageResponse carries the triage decision for a paper
type TriageResponse struct {
	Decision   string   `json:"decision" doc:"accept, reject, or borderline"`
	Confidence float64  `json:"confidence" doc:"Model confidence, always finite"`
	Reasons    []string `json:"reasons" doc:"Decision rationale"`
}

// SummaryResponse carries the structured LLM summary
type SummaryResponse struct {
	Title              string              `json:"title" doc:"Summary title"`
	OneLiner           string              `json:"one_liner" doc:"One-sentence summary"`
	DetailedSummary    string              `json:"detailed_summary" doc:"Full summary text"`
	UniqueContribution string              `json:"unique_contribution" doc:"What the paper adds"`
	KeyPoints          []string            `json:"key_points" doc:"Bullet points"`
	PaperType          string              `json:"paper_type" doc:"Paper type classification"`
	Tags               map[string][]string `json:"tags" doc:"Tag values per category"`
	OpenSource         OpenSourceResponse  `json:"open_source" doc:"Release pointers"`
	Limitations        []string            `json:"limitations" doc:"Stated limitations"`
}

// OpenSourceResponse carries code and weight release pointers
type OpenSourceResponse struct {
	CodeURL    string `json:"code_url,omitempty" doc:"Source code URL"`
	WeightsURL string `json:"weights_url,omitempty" doc:"Model weights URL"`
	License    string `json:"license,omitempty" doc:"Release license"`
}

// SearchPapersResponse is the paper search result page
type SearchPapersResponse struct {
	Papers       []PaperResponse `json:"papers" doc:"Result page"`
	Total        int             `json:"total" doc:"Result count before pagination"`
	ScopedTotal  int             `json:"scoped_total" doc:"Paper count in the active month scope"`
	Page         int             `json:"page" doc:"Current page number"`
	PerPage      int             `json:"per_page" doc:"Results per page"`
	EmptyMessage string          `json:"empty_message,omitempty" doc:"Explanation when no results match"`
}

// MonthPayloadResponse is one month's digest payload
type MonthPayloadResponse struct {
	Month    string             `json:"month" doc:"Digest month (YYYY-MM)"`
	Stats    MonthStatsResponse `json:"stats" doc:"Pipeline survival counts"`
	TopPicks []string           `json:"top_picks" doc:"Hand-picked paper ids"`
	Papers   []PaperResponse    `json:"papers" doc:"Normalized papers"`
}
