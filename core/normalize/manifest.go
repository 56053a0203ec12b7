// ABOUTME: Manifest normalizer resolves the cross-month index with a deterministic fallback
// ABOUTME: Entries without a month label are dropped; the list is kept sorted newest-first

package normalize

import (
	"fmt"
	"sort"
	"time"

	"arxiv-digest-api/core/domain"
)

// Manifest converts an arbitrary decoded JSON value into the cross-month
// index. When the input is unusable (not an object, or missing a months
// sequence) the deterministic fallback built from fallbackMonths is
// returned instead.
func Manifest(v interface{}, fallbackMonths []string) domain.Manifest {
	m, ok := v.(map[string]interface{})
	if !ok {
		return FallbackManifest(fallbackMonths)
	}
	rows, ok := m["months"].([]interface{})
	if !ok {
		return FallbackManifest(fallbackMonths)
	}

	entries := make([]domain.ManifestEntry, 0, len(rows))
	for _, row := range rows {
		if entry, ok := manifestEntry(row); ok {
			entries = append(entries, entry)
		}
	}
	sortEntries(entries)

	latest := String(m["latest"])
	if latest == "" && len(entries) > 0 {
		latest = entries[0].Month
	}
	return domain.Manifest{Latest: latest, Months: entries}
}

// FallbackManifest builds the deterministic manifest used when the real
// one cannot be fetched or parsed. Each month gets the conventional
// paths, zeroed stats and an unknown empty-state.
func FallbackManifest(months []string) domain.Manifest {
	entries := make([]domain.ManifestEntry, 0, len(months))
	for _, raw := range months {
		month := String(raw)
		if month == "" {
			continue
		}
		entries = append(entries, domain.ManifestEntry{
			Month:      month,
			MonthLabel: MonthLabel(month),
			Href:       monthHref(month),
			JSONPath:   monthJSONPath(month),
			EmptyState: domain.EmptyStateUnknown,
		})
	}
	sortEntries(entries)
	latest := ""
	if len(entries) > 0 {
		latest = entries[0].Month
	}
	return domain.Manifest{Latest: latest, Months: entries}
}

// MonthLabel formats a YYYY-MM month as "January 2006", falling back to
// the raw string when it does not parse.
func MonthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("January 2006")
}

func manifestEntry(v interface{}) (domain.ManifestEntry, bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return domain.ManifestEntry{}, false
	}
	month := String(m["month"])
	if month == "" {
		return domain.ManifestEntry{}, false
	}

	entry := domain.ManifestEntry{
		Month:      month,
		MonthLabel: String(m["month_label"]),
		Href:       String(m["href"]),
		JSONPath:   String(m["json_path"]),
		MonthRev:   String(m["month_rev"]),
		Stats:      manifestStats(m["stats"]),
		EmptyState: String(m["empty_state"]),
	}
	if entry.MonthLabel == "" {
		entry.MonthLabel = MonthLabel(month)
	}
	if entry.Href == "" {
		entry.Href = monthHref(month)
	}
	if entry.JSONPath == "" {
		entry.JSONPath = monthJSONPath(month)
	}
	if entry.EmptyState == "" {
		entry.EmptyState = domain.EmptyStateUnknown
	}
	entry.Featured = featured(m["featured"])
	return entry, true
}

// manifestStats differs from Stats: the manifest carries no paper rows,
// so absent values default to zero rather than a loaded count.
func manifestStats(v interface{}) domain.MonthStats {
	m, _ := v.(map[string]interface{})
	return domain.MonthStats{
		Candidates: clampNonNegative(Int(m["candidates"], 0)),
		Accepted:   clampNonNegative(Int(m["accepted"], 0)),
		Summarized: clampNonNegative(Int(m["summarized"], 0)),
	}
}

func featured(v interface{}) *domain.Featured {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return &domain.Featured{
		ArxivIDBase: String(m["arxiv_id_base"]),
		Title:       String(m["title"]),
		OneLiner:    String(m["one_liner"]),
		AbsURL:      String(m["abs_url"]),
	}
}

// sortEntries orders months newest-first. Zero-padded YYYY-MM labels
// sort chronologically under plain lexicographic comparison.
func sortEntries(entries []domain.ManifestEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Month > entries[j].Month
	})
}

func monthHref(month string) string {
	return fmt.Sprintf("digest/%s/index.html", month)
}

func monthJSONPath(month string) string {
	return fmt.Sprintf("digest/%s/papers.json", month)
}
