// Package search provides web search clients used to gather evidence for a claim.
package search

import (
	"context"

	"github.com/truthscan/truthscan/internal/config"
	"github.com/truthscan/truthscan/internal/models"
)

// Client defines the interface for search providers.
type Client interface {
	// Search returns up to maxResults hits for the query, most relevant
	// first. A transport error or non-success response is returned as an
	// error; there is no partial-result tolerance.
	Search(ctx context.Context, query string, maxResults int) ([]models.RawSearchResult, error)

	// Name returns the provider name.
	Name() string
}

// NewClient creates a search client based on configuration.
func NewClient(cfg *config.SearchConfig) Client {
	switch cfg.Provider {
	case "duckduckgo":
		return NewDuckDuckGoClient()
	default:
		return NewSerperClient(cfg.APIKey)
	}
}
