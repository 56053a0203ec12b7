// ABOUTME: Paper search handler for the Huma API
// ABOUTME: Runs the query engine over the dataset snapshot with pagination

package handlers

import (
	"context"

	"arxiv-digest-api/api/dto/mappers"
	"arxiv-digest-api/api/dto/requests"
	"arxiv-digest-api/api/dto/responses"
	"arxiv-digest-api/core/domain"
	"arxiv-digest-api/core/query"
)

// SearchPapersInput defines the input for the SearchPapers operation
type SearchPapersInput struct {
	Q       string   `query:"q" doc:"Free-text query over titles, authors, summaries, and tags" required:"false"`
	Month   string   `query:"month" doc:"Scope results to one month (YYYY-MM)" required:"false"`
	Sort    string   `query:"sort" doc:"Sort mode" enum:"published_desc,published_asc,title_asc,confidence_desc" required:"false"`
	Tags    []string `query:"tag" doc:"Repeatable category:value tag filters" required:"false"`
	Page    int      `query:"page" doc:"Page number, starting at 1" default:"1" minimum:"1"`
	PerPage int      `query:"per_page" doc:"Results per page" default:"50" minimum:"1" maximum:"200"`
}

// SearchPapersOutput defines the output for the SearchPapers operation
type SearchPapersOutput struct {
	Body responses.SearchPapersResponse
}

// SearchPapers handles the GET /api/papers endpoint
func (h *DigestHandler) SearchPapers(ctx context.Context, input *SearchPapersInput) (*SearchPapersOutput, error) {
	search := requests.SearchQuery{
		Q:     input.Q,
		Month: input.Month,
		Sort:  input.Sort,
		Tags:  input.Tags,
	}

	state, err := search.ToQueryState(domain.ViewAll)
	if err != nil {
		return nil, toHumaError(err)
	}

	snapshot := h.datasets.Snapshot()
	results := query.Apply(snapshot.Papers, state)
	scopedTotal := query.ScopedTotal(snapshot.Papers, state)

	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = 50
	}

	total := len(results)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	body := responses.SearchPapersResponse{
		Papers:      mappers.ToPaperResponses(results[start:end]),
		Total:       total,
		ScopedTotal: scopedTotal,
		Page:        page,
		PerPage:     perPage,
	}
	if total == 0 {
		body.EmptyMessage = query.EmptyMessage(state, snapshot.Months)
	}

	return &SearchPapersOutput{Body: body}, nil
}
