// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"arxiv-digest-api/api/dto/responses"
	"arxiv-digest-api/core/domain"
)

// ToPaperResponse converts a domain Paper to a PaperResponse DTO
func ToPaperResponse(paper domain.Paper) responses.PaperResponse {
	return responses.PaperResponse{
		Month:         paper.Month,
		ArxivIDBase:   paper.ArxivIDBase,
		ArxivID:       paper.ArxivID,
		Title:         paper.Title,
		PublishedDate: paper.PublishedDate,
		Authors:       paper.Authors,
		Categories:    paper.Categories,
		Links: responses.LinksResponse{
			Abs: paper.Links.Abs,
			PDF: paper.Links.PDF,
		},
		Triage: responses.TriageResponse{
			Decision:   paper.Triage.Decision,
			Confidence: paper.Triage.Confidence,
			Reasons:    paper.Triage.Reasons,
		},
		Summary:             toSummaryResponse(paper.Summary),
		SummaryFailedReason: paper.SummaryFailedReason,
	}
}

// ToPaperResponses converts a slice of domain Papers to response DTOs
func ToPaperResponses(papers []domain.Paper) []responses.PaperResponse {
	out := make([]responses.PaperResponse, 0, len(papers))
	for _, paper := range papers {
		out = append(out, ToPaperResponse(paper))
	}
	return out
}

func toSummaryResponse(summary *domain.Summary) *responses.SummaryResponse {
	if summary == nil {
		return nil
	}

	return &responses.SummaryResponse{
		Title:              summary.Title,
		OneLiner:           summary.OneLiner,
		DetailedSummary:    summary.DetailedSummary,
		UniqueContribution: summary.UniqueContribution,
		KeyPoints:          summary.KeyPoints,
		PaperType:          summary.PaperType,
		Tags:               summary.Tags,
		OpenSource: responses.OpenSourceResponse{
			CodeURL:    summary.OpenSource.CodeURL,
			WeightsURL: summary.OpenSource.WeightsURL,
			License:    summary.OpenSource.License,
		},
		Limitations: summary.Limitations,
	}
}

// ToMonthPayloadResponse converts a domain MonthPayload to its response DTO
func ToMonthPayloadResponse(payload domain.MonthPayload) responses.MonthPayloadResponse {
	return responses.MonthPayloadResponse{
		Month:    payload.Month,
		Stats:    toMonthStatsResponse(payload.Stats),
		TopPicks: payload.TopPicks,
		Papers:   ToPaperResponses(payload.Papers),
	}
}

// ToManifestResponse converts a domain Manifest to its response DTO
func ToManifestResponse(manifest domain.Manifest) responses.ManifestResponse {
	response := responses.ManifestResponse{
		Latest: manifest.Latest,
		Months: make([]responses.ManifestEntryResponse, 0, len(manifest.Months)),
	}

	for _, entry := range manifest.Months {
		response.Months = append(response.Months, toManifestEntryResponse(entry))
	}

	return response
}

func toManifestEntryResponse(entry domain.ManifestEntry) responses.ManifestEntryResponse {
	return responses.ManifestEntryResponse{
		Month:      entry.Month,
		MonthLabel: entry.MonthLabel,
		Href:       entry.Href,
		JSONPath:   entry.JSONPath,
		MonthRev:   entry.MonthRev,
		Stats:      toMonthStatsResponse(entry.Stats),
		EmptyState: string(entry.EmptyState),
		Featured:   toFeaturedResponse(entry.Featured),
	}
}

func toMonthStatsResponse(stats domain.MonthStats) responses.MonthStatsResponse {
	return responses.MonthStatsResponse{
		Candidates: stats.Candidates,
		Accepted:   stats.Accepted,
		Summarized: stats.Summarized,
	}
}

func toFeaturedResponse(featured *domain.Featured) *responses.FeaturedResponse {
	if featured == nil {
		return nil
	}

	return &responses.FeaturedResponse{
		ArxivIDBase: featured.ArxivIDBase,
		Title:       featured.Title,
		OneLiner:    featured.OneLiner,
		AbsURL:      featured.AbsURL,
	}
}
