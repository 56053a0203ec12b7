// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides the month-payload cache
	Cache Cache

	// HTTPClient fetches the published digest JSON artifacts
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
