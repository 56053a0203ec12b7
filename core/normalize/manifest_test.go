package normalize

import (
	"encoding/json"
	"reflect"
	"testing"

	"arxiv-digest-api/core/domain"
)

func decodeManifest(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("test fixture does not parse: %v", err)
	}
	return v
}

func TestManifest_SortedNewestFirst(t *testing.T) {
	v := decodeManifest(t, `{
		"months": [
			{"month": "2024-11"},
			{"month": "2025-02"},
			{"month": "2025-01"}
		]
	}`)

	manifest := Manifest(v, nil)

	got := []string{}
	for _, e := range manifest.Months {
		got = append(got, e.Month)
	}
	want := []string{"2025-02", "2025-01", "2024-11"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("month order = %v, want %v", got, want)
	}
	if manifest.Latest != "2025-02" {
		t.Errorf("Latest = %q, want %q", manifest.Latest, "2025-02")
	}
}

func TestManifest_ExplicitLatestWins(t *testing.T) {
	v := decodeManifest(t, `{
		"latest": "2025-01",
		"months": [{"month": "2025-02"}, {"month": "2025-01"}]
	}`)

	manifest := Manifest(v, nil)
	if manifest.Latest != "2025-01" {
		t.Errorf("Latest = %q, want upstream value", manifest.Latest)
	}
}

func TestManifest_EntryDefaults(t *testing.T) {
	v := decodeManifest(t, `{"months": [{"month": "2025-01"}]}`)
	manifest := Manifest(v, nil)

	entry := manifest.Months[0]
	if entry.MonthLabel != "January 2025" {
		t.Errorf("MonthLabel = %q", entry.MonthLabel)
	}
	if entry.Href != "digest/2025-01/index.html" {
		t.Errorf("Href = %q", entry.Href)
	}
	if entry.JSONPath != "digest/2025-01/papers.json" {
		t.Errorf("JSONPath = %q", entry.JSONPath)
	}
	if entry.EmptyState != domain.EmptyStateUnknown {
		t.Errorf("EmptyState = %q", entry.EmptyState)
	}
	if entry.Stats != (domain.MonthStats{}) {
		t.Errorf("Stats = %+v, want zeroes", entry.Stats)
	}
}

func TestManifest_DropsEntriesWithoutMonth(t *testing.T) {
	v := decodeManifest(t, `{
		"months": [{"month": "2025-01"}, {"href": "somewhere.html"}, "junk"]
	}`)

	manifest := Manifest(v, nil)
	if len(manifest.Months) != 1 {
		t.Errorf("got %d entries, want 1", len(manifest.Months))
	}
}

func TestManifest_FeaturedPreserved(t *testing.T) {
	v := decodeManifest(t, `{
		"months": [{
			"month": "2025-01",
			"featured": {
				"arxiv_id_base": "2501.00001",
				"title": "Big Result",
				"one_liner": "It works.",
				"abs_url": "https://arxiv.org/abs/2501.00001"
			}
		}]
	}`)

	featured := Manifest(v, nil).Months[0].Featured
	if featured == nil {
		t.Fatal("Featured should be set")
	}
	if featured.Title != "Big Result" {
		t.Errorf("Featured.Title = %q", featured.Title)
	}
}

func TestManifest_UnusableInputFallsBack(t *testing.T) {
	months := []string{"2024-12", "2025-01"}
	for _, v := range []interface{}{nil, "junk", decodeManifest(t, `{"latest": "2025-01"}`)} {
		manifest := Manifest(v, months)
		if len(manifest.Months) != 2 {
			t.Fatalf("fallback manifest has %d entries, want 2", len(manifest.Months))
		}
		if manifest.Latest != "2025-01" {
			t.Errorf("fallback Latest = %q", manifest.Latest)
		}
	}
}

func TestFallbackManifest_Deterministic(t *testing.T) {
	first := FallbackManifest([]string{"2025-01", "2024-12", ""})
	second := FallbackManifest([]string{"2025-01", "2024-12", ""})

	if !reflect.DeepEqual(first, second) {
		t.Error("fallback manifest should be deterministic")
	}
	if len(first.Months) != 2 {
		t.Errorf("got %d entries, want 2 (blank months dropped)", len(first.Months))
	}
	if first.Months[0].Month != "2025-01" {
		t.Errorf("first entry = %q, want newest", first.Months[0].Month)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2025-01"); got != "January 2025" {
		t.Errorf("MonthLabel = %q", got)
	}
	if got := MonthLabel("not-a-month"); got != "not-a-month" {
		t.Errorf("unparseable labels should pass through, got %q", got)
	}
}
