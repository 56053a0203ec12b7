// Package core contains the business logic for the arXiv digest service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Paper, Manifest, QueryState, ...)
// - normalize: Defensive decoding of the published manifest and month payloads
// - dataset: Fetches, caches, and merges the cross-month dataset
// - query: Filtering, sorting, faceting, and empty-state messaging
// - render: Server-side HTML rendering for the site pages
// - feed: RSS rendering for the latest digest month
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "arxiv-digest-api/core/dataset"
//	    "arxiv-digest-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	datasets := dataset.NewService(deps, dataset.Config{
//	    BaseURL: "https://digest.example.org",
//	})
//	snapshot := datasets.Snapshot()
//
package core
