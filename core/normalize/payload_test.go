package normalize

import (
	"encoding/json"
	"reflect"
	"testing"

	"arxiv-digest-api/core/domain"
)

func decodePayload(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("test fixture does not parse: %v", err)
	}
	return v
}

func TestMonthPayload_LegacyBareArray(t *testing.T) {
	v := decodePayload(t, `[
		{"arxiv_id_base": "a"},
		{"arxiv_id_base": "b", "summary": {"one_liner": "x"}}
	]`)

	payload := MonthPayload(v, "2025-01")

	if payload.Month != "2025-01" {
		t.Errorf("Month = %q, want %q", payload.Month, "2025-01")
	}
	if len(payload.Papers) != 2 {
		t.Fatalf("got %d papers, want 2", len(payload.Papers))
	}
	if payload.Stats.Candidates != 2 || payload.Stats.Accepted != 2 {
		t.Errorf("Stats = %+v, want candidates=accepted=2", payload.Stats)
	}
	if payload.Stats.Summarized != 1 {
		t.Errorf("Summarized = %d, want 1", payload.Stats.Summarized)
	}
}

func TestMonthPayload_ObjectShape(t *testing.T) {
	v := decodePayload(t, `{
		"month": "2025-02",
		"stats": {"candidates": 40, "accepted": 3, "summarized": 3},
		"top_picks": ["a"],
		"papers": [{"arxiv_id_base": "a"}, {"arxiv_id_base": "b"}, {"arxiv_id_base": "c"}]
	}`)

	payload := MonthPayload(v, "ignored")

	if payload.Month != "2025-02" {
		t.Errorf("Month = %q, want %q", payload.Month, "2025-02")
	}
	if payload.Stats.Candidates != 40 {
		t.Errorf("Candidates = %d, want 40 (authoritative upstream value)", payload.Stats.Candidates)
	}
	if !reflect.DeepEqual(payload.TopPicks, []string{"a"}) {
		t.Errorf("TopPicks = %v", payload.TopPicks)
	}
	if len(payload.Papers) != 3 {
		t.Errorf("got %d papers, want 3", len(payload.Papers))
	}
}

func TestMonthPayload_ObjectWithoutMonthUsesFallback(t *testing.T) {
	v := decodePayload(t, `{"papers": []}`)
	payload := MonthPayload(v, "2025-03")
	if payload.Month != "2025-03" {
		t.Errorf("Month = %q, want fallback", payload.Month)
	}
}

func TestMonthPayload_MalformedBecomesEmpty(t *testing.T) {
	for _, v := range []interface{}{nil, "garbage", float64(7), true} {
		payload := MonthPayload(v, "2025-01")
		if payload.Month != "2025-01" {
			t.Errorf("Month = %q", payload.Month)
		}
		if payload.Papers == nil || len(payload.Papers) != 0 {
			t.Errorf("Papers = %v, want empty slice", payload.Papers)
		}
		if payload.Stats != (domain.MonthStats{}) {
			t.Errorf("Stats = %+v, want all zero", payload.Stats)
		}
	}
}

func TestMonthPayload_DropsBadRowsKeepsGood(t *testing.T) {
	v := decodePayload(t, `{
		"month": "2025-01",
		"papers": [{"arxiv_id_base": "good"}, "not an object", {"title": "no id"}]
	}`)

	payload := MonthPayload(v, "2025-01")

	if len(payload.Papers) != 1 {
		t.Fatalf("got %d papers, want 1", len(payload.Papers))
	}
	if payload.Papers[0].ArxivIDBase != "good" {
		t.Errorf("kept paper is %q", payload.Papers[0].ArxivIDBase)
	}
}

func TestStats_DefaultsFromPapers(t *testing.T) {
	v := decodePayload(t, `[{"arxiv_id_base": "a", "summary": {"one_liner": "x"}}, {"arxiv_id_base": "b"}]`)
	payload := MonthPayload(v, "2025-01")

	stats := Stats(nil, payload.Papers)
	if stats.Candidates != 2 || stats.Accepted != 2 || stats.Summarized != 1 {
		t.Errorf("Stats = %+v", stats)
	}
}

func TestStats_NegativeValuesClamped(t *testing.T) {
	v := decodePayload(t, `{"candidates": -5, "accepted": -1, "summarized": -2}`)
	stats := Stats(v, nil)
	if stats.Candidates != 0 || stats.Accepted != 0 || stats.Summarized != 0 {
		t.Errorf("Stats = %+v, want zeroes", stats)
	}
}

func TestStats_NonNumericFieldsFallBack(t *testing.T) {
	v := decodePayload(t, `{"candidates": "many", "accepted": 2}`)
	payload := decodePayload(t, `[{"arxiv_id_base": "a"}]`)
	papers := MonthPayload(payload, "2025-01").Papers

	stats := Stats(v, papers)
	if stats.Candidates != 1 {
		t.Errorf("Candidates = %d, want fallback 1", stats.Candidates)
	}
	if stats.Accepted != 2 {
		t.Errorf("Accepted = %d, want upstream 2", stats.Accepted)
	}
}
