// ABOUTME: Query engine applies scope, text, and tag filters plus one of four sort orders
// ABOUTME: Pure functions over (dataset, state); dataset records are never mutated

package query

import (
	"fmt"
	"sort"
	"strings"

	"arxiv-digest-api/core/domain"
)

// Apply runs the full filter pipeline, strictly ordered: month scope,
// free-text filter, tag filter, sort. The input slice is not modified.
func Apply(papers []domain.Paper, state domain.QueryState) []domain.Paper {
	results := scopeFilter(papers, state)
	results = textFilter(results, state)
	results = tagFilter(results, state)
	Sort(results, state.Sort)
	return results
}

// ScopedTotal counts papers after the scope filter only. It is the
// denominator of the result meta line.
func ScopedTotal(papers []domain.Paper, state domain.QueryState) int {
	return len(scopeFilter(papers, state))
}

// MetaLine is the result-count summary shown alongside the results.
func MetaLine(results, scopedTotal int) string {
	return fmt.Sprintf("Showing %d of %d accepted papers", results, scopedTotal)
}

func scopeFilter(papers []domain.Paper, state domain.QueryState) []domain.Paper {
	out := make([]domain.Paper, 0, len(papers))
	if state.Month == "" {
		return append(out, papers...)
	}
	for _, paper := range papers {
		if paper.Month == state.Month {
			out = append(out, paper)
		}
	}
	return out
}

func textFilter(papers []domain.Paper, state domain.QueryState) []domain.Paper {
	query := state.NormalizedQuery()
	if query == "" {
		return papers
	}
	out := papers[:0]
	for _, paper := range papers {
		if strings.Contains(searchableText(paper), query) {
			out = append(out, paper)
		}
	}
	return out
}

// searchableText concatenates every field the free-text filter matches
// against, lowercased. Tag labels are included so searching for a term
// like "transformer" finds papers tagged with it even when the word
// never appears in prose.
func searchableText(paper domain.Paper) string {
	var b strings.Builder
	add := func(s string) {
		if s != "" {
			b.WriteString(s)
			b.WriteByte('\n')
		}
	}
	add(paper.Title)
	add(paper.ArxivIDBase)
	add(paper.ArxivID)
	add(paper.Month)
	add(paper.PublishedDate)
	for _, author := range paper.Authors {
		add(author)
	}
	if paper.Summary != nil {
		add(paper.Summary.OneLiner)
		add(paper.Summary.UniqueContribution)
		add(paper.Summary.DetailedSummary)
		for _, point := range paper.Summary.KeyPoints {
			add(point)
		}
		for category, values := range paper.Summary.Tags {
			for _, value := range values {
				add(TagLabel(category, value))
			}
		}
	}
	return strings.ToLower(b.String())
}

// tagFilter keeps papers that satisfy every category with a selection:
// AND across categories, OR within a category's selected values.
func tagFilter(papers []domain.Paper, state domain.QueryState) []domain.Paper {
	active := false
	for _, values := range state.Tags {
		if len(values) > 0 {
			active = true
			break
		}
	}
	if !active {
		return papers
	}
	out := papers[:0]
	for _, paper := range papers {
		if matchesTags(paper, state.Tags) {
			out = append(out, paper)
		}
	}
	return out
}

func matchesTags(paper domain.Paper, selections map[string][]string) bool {
	for category, selected := range selections {
		if len(selected) == 0 {
			continue
		}
		var own []string
		if paper.Summary != nil {
			own = paper.Summary.Tags[category]
		}
		if !intersects(own, selected) {
			return false
		}
	}
	return true
}

func intersects(values, selected []string) bool {
	for _, value := range values {
		for _, want := range selected {
			if value == want {
				return true
			}
		}
	}
	return false
}

// Sort orders papers in place under one of the four total orders. Each
// order carries a tie-break chain ending on the id, so the result is
// deterministic for equal keys.
func Sort(papers []domain.Paper, mode domain.SortMode) {
	switch mode {
	case domain.SortPublishedAsc:
		sort.SliceStable(papers, func(i, j int) bool {
			a, b := papers[i], papers[j]
			if a.PublishedDate != b.PublishedDate {
				return a.PublishedDate < b.PublishedDate
			}
			if a.Month != b.Month {
				return a.Month < b.Month
			}
			return a.ArxivIDBase < b.ArxivIDBase
		})
	case domain.SortTitleAsc:
		sort.SliceStable(papers, func(i, j int) bool {
			a, b := papers[i], papers[j]
			if a.Title != b.Title {
				return a.Title < b.Title
			}
			return a.ArxivIDBase < b.ArxivIDBase
		})
	case domain.SortConfidenceDesc:
		sort.SliceStable(papers, func(i, j int) bool {
			a, b := papers[i], papers[j]
			if a.Triage.Confidence != b.Triage.Confidence {
				return a.Triage.Confidence > b.Triage.Confidence
			}
			if a.PublishedDate != b.PublishedDate {
				return a.PublishedDate > b.PublishedDate
			}
			return a.ArxivIDBase < b.ArxivIDBase
		})
	default: // published_desc
		sort.SliceStable(papers, func(i, j int) bool {
			a, b := papers[i], papers[j]
			if a.PublishedDate != b.PublishedDate {
				return a.PublishedDate > b.PublishedDate
			}
			if a.Month != b.Month {
				return a.Month > b.Month
			}
			return a.ArxivIDBase < b.ArxivIDBase
		})
	}
}
