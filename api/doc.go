// Package api provides the HTTP API layer for the arXiv digest service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers for the JSON API and the HTML pages
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type SearchPapersInput struct {
//	    Q       string   `query:"q"`
//	    Sort    string   `query:"sort" enum:"published_desc,published_asc,title_asc,confidence_desc"`
//	    Page    int      `query:"page" default:"1" minimum:"1"`
//	    PerPage int      `query:"per_page" default:"50" minimum:"1" maximum:"200"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	digestHandler := handlers.NewDigestHandler(datasets)
//	digestHandler.RegisterRoutes(humaAPI)
//
//	pageHandler := handlers.NewPageHandler(datasets, logger, site)
//	pageHandler.RegisterRoutes(router)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "month not found: 1999-01"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
