// Package verify implements the verification pipeline: cache lookup,
// web search, analysis, verdict extraction and persistence.
package verify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/truthscan/truthscan/internal/config"
	"github.com/truthscan/truthscan/internal/database"
	"github.com/truthscan/truthscan/internal/llm"
	"github.com/truthscan/truthscan/internal/models"
	"github.com/truthscan/truthscan/internal/search"
)

// Pipeline failure classes. Cache reads gate deduplication and abort the
// request when unavailable; cache writes are best-effort and never do.
var (
	ErrEmptyQuery       = errors.New("query text is required")
	ErrCacheUnavailable = errors.New("cache lookup failed")
	ErrSearchFailed     = errors.New("search failed")
	ErrAnalysisFailed   = errors.New("analysis failed")
)

// Verifier orchestrates a single verification request.
type Verifier struct {
	store        database.Store
	searchClient search.Client
	analyst      *Analyst
	windowDays   int
	maxResults   int
	maxSources   int
}

// NewVerifier creates a verifier from configuration and collaborators.
func NewVerifier(cfg *config.Config, store database.Store, searchClient search.Client, provider llm.Provider) *Verifier {
	return &Verifier{
		store:        store,
		searchClient: searchClient,
		analyst:      NewAnalyst(provider, cfg.LLM.MaxOutputTokens, cfg.LLM.Temperature),
		windowDays:   cfg.Cache.WindowDays,
		maxResults:   cfg.Search.MaxResults,
		maxSources:   cfg.Search.MaxSources,
	}
}

// Result is the outcome of a verification request.
type Result struct {
	Verdict     models.Verdict
	Explanation string
	Sources     []models.Source
	Cached      bool
}

// Verify runs the pipeline for a single claim. The pipeline is a single
// pass with no retries; a collaborator failure aborts the remaining steps.
func (v *Verifier) Verify(ctx context.Context, queryText string) (*Result, error) {
	claim := strings.TrimSpace(queryText)
	if claim == "" {
		return nil, ErrEmptyQuery
	}

	// Cache check: an identical claim verified within the window is
	// answered from the store without touching the collaborators.
	cached, err := v.store.FindRecent(ctx, claim, v.windowDays)
	if err != nil {
		log.Error().Err(err).Msg("Cache lookup failed")
		return nil, fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	if cached != nil {
		log.Info().Str("id", cached.ID).Str("verdict", string(cached.Verdict)).Msg("Returning cached verification")
		return &Result{
			Verdict:     cached.Verdict,
			Explanation: cached.Explanation,
			Sources:     cached.Sources,
			Cached:      true,
		}, nil
	}

	log.Info().Str("claim", truncate(claim, 80)).Msg("Verifying claim")

	// Search: request maxResults, retain the first maxSources.
	rawResults, err := v.searchClient.Search(ctx, claim, v.maxResults)
	if err != nil {
		log.Error().Err(err).Str("provider", v.searchClient.Name()).Msg("Search failed")
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	sources := retainSources(rawResults, v.maxSources)

	// Analyze: single prompt/response round trip.
	analysisText, err := v.analyst.Analyze(ctx, claim, sources)
	if err != nil {
		log.Error().Err(err).Msg("Analysis failed")
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	// Extract: always succeeds, defaults to Inconclusive.
	verdict := ExtractVerdict(analysisText)

	// Persist: a write failure degrades to "no caching this round" and
	// never fails the request.
	record := &models.VerificationRecord{
		QueryText:   claim,
		Verdict:     verdict,
		Explanation: analysisText,
		Sources:     sources,
	}
	if err := v.store.Insert(ctx, record); err != nil {
		log.Error().Err(err).Msg("Failed to cache verification result")
	} else {
		log.Debug().Str("id", record.ID).Msg("Verification result cached")
	}

	log.Info().
		Str("verdict", string(verdict)).
		Int("sources", len(sources)).
		Msg("Verification complete")

	return &Result{
		Verdict:     verdict,
		Explanation: analysisText,
		Sources:     sources,
		Cached:      false,
	}, nil
}

// retainSources converts the top search hits into cited sources,
// preserving relevance order.
func retainSources(results []models.RawSearchResult, max int) []models.Source {
	sources := make([]models.Source, 0, max)
	for _, r := range results {
		if r.URL == "" {
			continue
		}
		sources = append(sources, models.Source{
			URL:     r.URL,
			Title:   r.Title,
			Snippet: r.Snippet,
		})
		if len(sources) >= max {
			break
		}
	}
	return sources
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
