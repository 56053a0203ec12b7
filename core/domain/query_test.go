package domain

import "testing"

func TestParseSortMode_EmptySelectsDefault(t *testing.T) {
	mode, ok := ParseSortMode("")
	if !ok {
		t.Fatal("empty sort should be accepted")
	}
	if mode != DefaultSort {
		t.Errorf("mode = %q, want default %q", mode, DefaultSort)
	}
}

func TestParseSortMode_KnownModes(t *testing.T) {
	for _, raw := range []string{"published_desc", "published_asc", "title_asc", "confidence_desc"} {
		mode, ok := ParseSortMode(raw)
		if !ok {
			t.Errorf("ParseSortMode(%q) rejected a known mode", raw)
		}
		if string(mode) != raw {
			t.Errorf("ParseSortMode(%q) = %q", raw, mode)
		}
	}
}

func TestParseSortMode_UnknownRejected(t *testing.T) {
	if _, ok := ParseSortMode("shuffled"); ok {
		t.Error("unknown sort modes must be rejected")
	}
}

func TestNormalizedQuery(t *testing.T) {
	state := QueryState{Query: "  LaBraM  "}
	if got := state.NormalizedQuery(); got != "labram" {
		t.Errorf("NormalizedQuery = %q", got)
	}
}

func TestHasFilters(t *testing.T) {
	cases := []struct {
		name  string
		state QueryState
		want  bool
	}{
		{"empty", QueryState{}, false},
		{"whitespace query", QueryState{Query: "   "}, false},
		{"query", QueryState{Query: "eeg"}, true},
		{"tag selection", QueryState{Tags: map[string][]string{"backbone": {"cnn"}}}, true},
		{"empty tag selection", QueryState{Tags: map[string][]string{"backbone": {}}}, false},
		{"month scope only", QueryState{Month: "2025-01"}, false},
	}
	for _, c := range cases {
		if got := c.state.HasFilters(); got != c.want {
			t.Errorf("%s: HasFilters = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestDefaultTriage(t *testing.T) {
	triage := DefaultTriage()
	if triage.Decision != "accept" {
		t.Errorf("Decision = %q, want accept", triage.Decision)
	}
	if triage.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", triage.Confidence)
	}
}
