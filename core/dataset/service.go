// ABOUTME: Dataset service resolves the manifest and merges per-month payloads into one snapshot
// ABOUTME: Every fetch is a single attempt with a deterministic local fallback; nothing here is fatal

package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"arxiv-digest-api/core/domain"
	"arxiv-digest-api/core/interfaces"
	"arxiv-digest-api/core/normalize"
	"arxiv-digest-api/core/query"
)

// Config holds the remote layout of the published digest artifacts.
type Config struct {
	// BaseURL is the root under which the static site artifacts live
	BaseURL string

	// ManifestPath is the manifest resource path relative to BaseURL
	ManifestPath string

	// FallbackMonths seeds the deterministic manifest when the real one
	// cannot be fetched
	FallbackMonths []string
}

// CacheStats counts how month payloads were obtained during loads.
type CacheStats struct {
	NetworkHits int64
	CacheHits   int64
	CacheWrites int64
}

// Service loads and owns the in-memory dataset snapshot.
type Service struct {
	deps interfaces.Dependencies
	cfg  Config

	mu       sync.RWMutex
	snapshot domain.Dataset

	networkHits atomic.Int64
	cacheHits   atomic.Int64
	cacheWrites atomic.Int64
}

// NewService creates a dataset service. ManifestPath defaults to the
// conventional data/months.json.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = "data/months.json"
	}
	return &Service{deps: deps, cfg: cfg}
}

// ResolveManifest fetches the manifest once. Any fetch or parse failure
// falls back to the deterministic manifest built from the configured
// month list. It never returns an error.
func (s *Service) ResolveManifest(ctx context.Context) domain.Manifest {
	manifest, _ := s.resolveManifest(ctx)
	return manifest
}

func (s *Service) resolveManifest(ctx context.Context) (domain.Manifest, bool) {
	raw, err := s.fetchJSON(ctx, s.resolveURL(s.cfg.ManifestPath))
	if err != nil {
		s.deps.Logger.Warn("Manifest fetch failed, using fallback manifest", map[string]interface{}{
			"path":            s.cfg.ManifestPath,
			"fallback_months": len(s.cfg.FallbackMonths),
			"error":           err.Error(),
		})
		return normalize.FallbackManifest(s.cfg.FallbackMonths), true
	}
	return normalize.Manifest(raw, s.cfg.FallbackMonths), false
}

// LoadMonth fetches one month's payload. A failure substitutes an empty
// payload for that month so a transient error never blocks the session.
// The month-payload cache is consulted first when the entry carries a
// revision; entries without one always go to the network.
func (s *Service) LoadMonth(ctx context.Context, entry domain.ManifestEntry) domain.MonthPayload {
	cacheKey := ""
	if entry.MonthRev != "" {
		cacheKey = fmt.Sprintf("digest:monthPayload:v1:%s:%s", entry.Month, entry.MonthRev)
	}

	if cacheKey != "" && s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var raw interface{}
			if json.Unmarshal(data, &raw) == nil {
				s.cacheHits.Add(1)
				return normalize.MonthPayload(raw, entry.Month)
			}
		}
	}

	raw, err := s.fetchJSON(ctx, s.resolveURL(entry.JSONPath))
	if err != nil {
		s.deps.Logger.Warn("Month payload fetch failed, substituting empty payload", map[string]interface{}{
			"month": entry.Month,
			"path":  entry.JSONPath,
			"error": err.Error(),
		})
		return normalize.MonthPayload(nil, entry.Month)
	}
	s.networkHits.Add(1)

	if cacheKey != "" && s.deps.Cache != nil {
		if data, err := json.Marshal(raw); err == nil {
			if s.deps.Cache.Set(ctx, cacheKey, data, 0) == nil {
				s.cacheWrites.Add(1)
			}
		}
	}
	return normalize.MonthPayload(raw, entry.Month)
}

// LoadAll resolves the manifest and folds over its months sequentially
// in manifest order. Each step yields a payload or an empty fallback
// independent of the other steps, so one bad month never aborts the
// rest and the merged content is deterministic.
func (s *Service) LoadAll(ctx context.Context) domain.Dataset {
	ds, _ := s.loadAll(ctx)
	return ds
}

func (s *Service) loadAll(ctx context.Context) (domain.Dataset, bool) {
	manifest, usedFallback := s.resolveManifest(ctx)
	months := make(map[string]domain.MonthPayload, len(manifest.Months))
	papers := make([]domain.Paper, 0)
	for _, entry := range manifest.Months {
		payload := s.LoadMonth(ctx, entry)
		months[entry.Month] = payload
		papers = append(papers, payload.Papers...)
	}
	ds := domain.Dataset{
		Manifest: manifest,
		Months:   months,
		Papers:   papers,
		Facets:   query.Facets(papers),
	}
	stats := s.CacheStats()
	s.deps.Logger.Info("Dataset loaded", map[string]interface{}{
		"months":       len(manifest.Months),
		"papers":       len(papers),
		"network_hits": stats.NetworkHits,
		"cache_hits":   stats.CacheHits,
		"cache_writes": stats.CacheWrites,
	})
	return ds, usedFallback
}

// Snapshot returns the current immutable dataset.
func (s *Service) Snapshot() domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Run performs the initial load synchronously, then starts a ticker
// that rebuilds the snapshot at the given interval. An interval of zero
// disables refreshing. A refresh that had to fall back to the static
// manifest keeps the previous snapshot in place.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ds, _ := s.loadAll(ctx)
	s.swap(ds)
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refresh(ctx)
			}
		}
	}()
}

func (s *Service) refresh(ctx context.Context) {
	ds, usedFallback := s.loadAll(ctx)
	if usedFallback && len(s.Snapshot().Manifest.Months) > 0 {
		s.deps.Logger.Warn("Refresh fell back to static manifest, keeping previous snapshot", nil)
		return
	}
	s.swap(ds)
}

func (s *Service) swap(ds domain.Dataset) {
	s.mu.Lock()
	s.snapshot = ds
	s.mu.Unlock()
}

// CacheStats returns the running load counters.
func (s *Service) CacheStats() CacheStats {
	return CacheStats{
		NetworkHits: s.networkHits.Load(),
		CacheHits:   s.cacheHits.Load(),
		CacheWrites: s.cacheWrites.Load(),
	}
}

func (s *Service) resolveURL(path string) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// fetchJSON issues a single GET and decodes the body. There is no retry
// and no reuse of a previously fetched response.
func (s *Service) fetchJSON(ctx context.Context, url string) (interface{}, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("resource returned status %d", resp.StatusCode())
	}
	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
