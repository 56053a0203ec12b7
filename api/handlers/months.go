// ABOUTME: Digest handlers for the Huma API
// ABOUTME: Provides JSON endpoints for the month manifest and per-month payloads

package handlers

import (
	"context"
	"net/http"

	"arxiv-digest-api/api/dto/mappers"
	"arxiv-digest-api/api/dto/responses"
	"arxiv-digest-api/core/domain"
	"arxiv-digest-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// DatasetService interface defines the methods needed from the dataset service
type DatasetService interface {
	Snapshot() domain.Dataset
	LoadMonth(ctx context.Context, entry domain.ManifestEntry) domain.MonthPayload
}

// DigestHandler handles digest-related HTTP requests
type DigestHandler struct {
	datasets DatasetService
}

// NewDigestHandler creates a new digest handler
func NewDigestHandler(datasets DatasetService) *DigestHandler {
	return &DigestHandler{datasets: datasets}
}

// RegisterRoutes registers all digest-related routes
func (h *DigestHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getManifest",
		Method:      http.MethodGet,
		Path:        "/api/manifest",
		Summary:     "List published digest months",
		Description: "Returns the month manifest sorted newest first, including per-month stats",
		Tags:        []string{"Digest"},
	}, h.GetManifest)

	huma.Register(api, huma.Operation{
		OperationID: "getMonth",
		Method:      http.MethodGet,
		Path:        "/api/months/{month}",
		Summary:     "Get one month's digest payload",
		Description: "Returns the normalized papers and stats for a single digest month",
		Tags:        []string{"Digest"},
	}, h.GetMonth)

	huma.Register(api, huma.Operation{
		OperationID: "searchPapers",
		Method:      http.MethodGet,
		Path:        "/api/papers",
		Summary:     "Search papers across all months",
		Description: "Filters the loaded corpus by text query, month scope, and tag selections",
		Tags:        []string{"Digest"},
	}, h.SearchPapers)
}

// GetManifestOutput defines the output for the GetManifest operation
type GetManifestOutput struct {
	Body responses.ManifestResponse
}

// GetManifest handles the GET /api/manifest endpoint
func (h *DigestHandler) GetManifest(ctx context.Context, input *struct{}) (*GetManifestOutput, error) {
	snapshot := h.datasets.Snapshot()

	return &GetManifestOutput{
		Body: mappers.ToManifestResponse(snapshot.Manifest),
	}, nil
}

// GetMonthInput defines the input for the GetMonth operation
type GetMonthInput struct {
	Month string `path:"month" doc:"Digest month (YYYY-MM)" example:"2025-01"`
}

// GetMonthOutput defines the output for the GetMonth operation
type GetMonthOutput struct {
	Body responses.MonthPayloadResponse
}

// GetMonth handles the GET /api/months/{month} endpoint. Months listed
// in the manifest but not yet in the snapshot are loaded on demand.
func (h *DigestHandler) GetMonth(ctx context.Context, input *GetMonthInput) (*GetMonthOutput, error) {
	snapshot := h.datasets.Snapshot()

	payload, ok := snapshot.Months[input.Month]
	if !ok {
		entry, found := manifestEntry(snapshot.Manifest, input.Month)
		if !found {
			return nil, toHumaError(&errors.NotFoundError{
				Resource: "month",
				ID:       input.Month,
			})
		}
		payload = h.datasets.LoadMonth(ctx, entry)
	}

	return &GetMonthOutput{
		Body: mappers.ToMonthPayloadResponse(payload),
	}, nil
}

func manifestEntry(manifest domain.Manifest, month string) (domain.ManifestEntry, bool) {
	for _, entry := range manifest.Months {
		if entry.Month == month {
			return entry, true
		}
	}
	return domain.ManifestEntry{}, false
}
