// ABOUTME: Paper normalizer converts arbitrary JSON rows into the fixed Paper record shape
// ABOUTME: Tolerates legacy and partial upstream shapes; rows without an identity key are dropped

package normalize

import (
	"fmt"

	"arxiv-digest-api/core/domain"
)

// Paper converts an arbitrary decoded JSON value into a Paper record.
// The second return value is false when the row must be dropped: either
// the input is not an object, or no arxiv_id_base resolves from the
// top-level field or the nested summary.
func Paper(v interface{}, fallbackMonth string) (domain.Paper, bool) {
	row, ok := v.(map[string]interface{})
	if !ok {
		return domain.Paper{}, false
	}

	id := String(row["arxiv_id_base"])
	if id == "" {
		if summary, ok := row["summary"].(map[string]interface{}); ok {
			id = String(summary["arxiv_id_base"])
		}
	}
	if id == "" {
		return domain.Paper{}, false
	}

	month := String(row["month"])
	if month == "" {
		month = fallbackMonth
	}

	return domain.Paper{
		Month:               month,
		ArxivIDBase:         id,
		ArxivID:             String(row["arxiv_id"]),
		Title:               String(row["title"]),
		PublishedDate:       publishedDate(row["published_date"]),
		Authors:             StringList(row["authors"]),
		Categories:          StringList(row["categories"]),
		Links:               links(row["links"], id),
		Triage:              triage(row["triage"]),
		Summary:             summaryRecord(row),
		SummaryFailedReason: String(row["summary_failed_reason"]),
	}, true
}

// publishedDate truncates the upstream value to its YYYY-MM-DD prefix so
// lexicographic order stays chronological.
func publishedDate(v interface{}) string {
	s := String(v)
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func links(v interface{}, arxivIDBase string) domain.Links {
	m, _ := v.(map[string]interface{})
	abs := String(m["abs"])
	if abs == "" {
		abs = fmt.Sprintf("https://arxiv.org/abs/%s", arxivIDBase)
	}
	return domain.Links{Abs: abs, PDF: String(m["pdf"])}
}

// triage replaces absent or malformed input wholesale with the default
// record. It never partially merges a broken object.
func triage(v interface{}) domain.Triage {
	m, ok := v.(map[string]interface{})
	if !ok {
		return domain.DefaultTriage()
	}
	t := domain.Triage{
		Decision:   String(m["decision"]),
		Confidence: Number(m["confidence"], 0),
		Reasons:    StringList(m["reasons"]),
	}
	if t.Decision == "" {
		t.Decision = "accept"
	}
	return t
}

// summaryRecord resolves the summary sub-object. A legacy flat shape,
// where the row itself carries tags, key_points and unique_contribution,
// is treated as the summary record. The legacy detection is a heuristic
// kept for compatibility with old payloads.
func summaryRecord(row map[string]interface{}) *domain.Summary {
	if m, ok := row["summary"].(map[string]interface{}); ok {
		s := summary(m)
		return &s
	}
	if row["summary"] == nil && isLegacySummary(row) {
		s := summary(row)
		return &s
	}
	return nil
}

func isLegacySummary(row map[string]interface{}) bool {
	_, hasTags := row["tags"]
	_, hasKeyPoints := row["key_points"]
	_, hasContribution := row["unique_contribution"]
	return hasTags && hasKeyPoints && hasContribution
}

func summary(m map[string]interface{}) domain.Summary {
	return domain.Summary{
		Title:              String(m["title"]),
		OneLiner:           String(m["one_liner"]),
		DetailedSummary:    String(m["detailed_summary"]),
		UniqueContribution: String(m["unique_contribution"]),
		KeyPoints:          StringList(m["key_points"]),
		PaperType:          String(m["paper_type"]),
		Tags:               tagMap(m["tags"]),
		OpenSource:         openSource(m["open_source"]),
		Limitations:        StringList(m["limitations"]),
	}
}

func tagMap(v interface{}) map[string][]string {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string][]string, len(m))
	for category, values := range m {
		out[category] = StringList(values)
	}
	return out
}

func openSource(v interface{}) domain.OpenSource {
	m, _ := v.(map[string]interface{})
	return domain.OpenSource{
		CodeURL:    String(m["code_url"]),
		WeightsURL: String(m["weights_url"]),
		License:    String(m["license"]),
	}
}
