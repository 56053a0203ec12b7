// ABOUTME: Month payload normalizer accepts both the legacy bare-array and the current object shape
// ABOUTME: Malformed payloads become an empty payload with zero stats, never an error

package normalize

import "arxiv-digest-api/core/domain"

// MonthPayload converts an arbitrary decoded JSON value into a month
// payload. Two top-level shapes are accepted: a bare sequence of paper
// rows (legacy), or an object carrying month, stats, top_picks and
// papers. Anything else yields an empty payload for the given month.
func MonthPayload(v interface{}, month string) domain.MonthPayload {
	switch payload := v.(type) {
	case []interface{}:
		papers := paperRows(payload, month)
		return domain.MonthPayload{
			Month:  month,
			Stats:  Stats(nil, papers),
			Papers: papers,
		}
	case map[string]interface{}:
		m := String(payload["month"])
		if m == "" {
			m = month
		}
		var papers []domain.Paper
		if rows, ok := payload["papers"].([]interface{}); ok {
			papers = paperRows(rows, m)
		} else {
			papers = []domain.Paper{}
		}
		return domain.MonthPayload{
			Month:    m,
			Stats:    Stats(payload["stats"], papers),
			TopPicks: StringList(payload["top_picks"]),
			Papers:   papers,
		}
	default:
		return domain.MonthPayload{
			Month:  month,
			Stats:  Stats(nil, nil),
			Papers: []domain.Paper{},
		}
	}
}

// Stats normalizes a stats object against the loaded papers. Absent or
// non-finite candidates/accepted default to the loaded paper count and
// summarized to the count of papers with a summary, so stats stay
// self-consistent unless the upstream supplies authoritative figures.
func Stats(v interface{}, papers []domain.Paper) domain.MonthStats {
	summarized := 0
	for _, p := range papers {
		if p.Summary != nil {
			summarized++
		}
	}
	stats := domain.MonthStats{
		Candidates: len(papers),
		Accepted:   len(papers),
		Summarized: summarized,
	}
	if m, ok := v.(map[string]interface{}); ok {
		stats.Candidates = Int(m["candidates"], len(papers))
		stats.Accepted = Int(m["accepted"], len(papers))
		stats.Summarized = Int(m["summarized"], summarized)
	}
	stats.Candidates = clampNonNegative(stats.Candidates)
	stats.Accepted = clampNonNegative(stats.Accepted)
	stats.Summarized = clampNonNegative(stats.Summarized)
	return stats
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func paperRows(rows []interface{}, month string) []domain.Paper {
	papers := make([]domain.Paper, 0, len(rows))
	for _, row := range rows {
		if paper, ok := Paper(row, month); ok {
			papers = append(papers, paper)
		}
	}
	return papers
}
