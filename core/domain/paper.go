// ABOUTME: Paper domain model represents one arXiv candidate with its triage and summary outcome
// ABOUTME: Records are immutable once constructed by the normalizer

package domain

// Paper is the normalized representation of one candidate arXiv paper.
// Every paper carries a non-empty ArxivIDBase; rows that cannot resolve
// one are dropped by the normalizer instead of being defaulted.
type Paper struct {
	// Month is the digest period this record belongs to (YYYY-MM)
	Month string `json:"month"`

	// ArxivIDBase is the record's identity key, unique within a dataset
	ArxivIDBase string `json:"arxiv_id_base"`

	// ArxivID is the versioned arXiv identifier (e.g. 2501.00001v2)
	ArxivID string `json:"arxiv_id"`

	// Title is the paper title as retrieved from arXiv
	Title string `json:"title"`

	// PublishedDate is the publication date truncated to YYYY-MM-DD
	PublishedDate string `json:"published_date"`

	// Authors in display order
	Authors []string `json:"authors"`

	// Categories are the arXiv taxonomy categories (cs.LG, eess.SP, ...)
	Categories []string `json:"categories"`

	// Links to the abstract page and PDF
	Links Links `json:"links"`

	// Triage holds the inclusion decision for this paper
	Triage Triage `json:"triage"`

	// Summary is nil when summarization failed or was skipped
	Summary *Summary `json:"summary"`

	// SummaryFailedReason explains a nil Summary
	SummaryFailedReason string `json:"summary_failed_reason"`
}

// Links holds the paper's outbound URLs. Abs is always populated; the
// normalizer derives it from ArxivIDBase when the source omits it.
type Links struct {
	Abs string `json:"abs"`
	PDF string `json:"pdf"`
}

// Triage is the upstream accept/reject/borderline decision and rationale.
type Triage struct {
	Decision   string   `json:"decision"`
	Confidence float64  `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

// DefaultTriage is the wholesale replacement for absent or malformed
// triage input. It is never partially merged with source fields.
func DefaultTriage() Triage {
	return Triage{Decision: "accept", Confidence: 0}
}

// Summary is the structured LLM summary of an accepted paper.
type Summary struct {
	Title              string              `json:"title"`
	OneLiner           string              `json:"one_liner"`
	DetailedSummary    string              `json:"detailed_summary"`
	UniqueContribution string              `json:"unique_contribution"`
	KeyPoints          []string            `json:"key_points"`
	PaperType          string              `json:"paper_type"`
	Tags               map[string][]string `json:"tags"`
	OpenSource         OpenSource          `json:"open_source"`
	Limitations        []string            `json:"limitations"`
}

// OpenSource holds code and weight release pointers from the summary.
type OpenSource struct {
	CodeURL    string `json:"code_url"`
	WeightsURL string `json:"weights_url"`
	License    string `json:"license"`
}
