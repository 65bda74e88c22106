// Package search provides a keyless DuckDuckGo search implementation.
package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/truthscan/truthscan/internal/models"
	"golang.org/x/net/html"
)

// DuckDuckGoClient scrapes DuckDuckGo's HTML results page. It needs no
// API key, which makes it useful for local runs and demos.
type DuckDuckGoClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDuckDuckGoClient creates a new DuckDuckGo client.
func NewDuckDuckGoClient() *DuckDuckGoClient {
	return &DuckDuckGoClient{
		baseURL:    "https://html.duckduckgo.com/html/",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Name returns the provider name.
func (c *DuckDuckGoClient) Name() string {
	return "duckduckgo"
}

var (
	ddgLinkPattern    = regexp.MustCompile(`<a[^>]*class="result__a"[^>]*href="([^"]*)"[^>]*>([^<]+)</a>`)
	ddgSnippetPattern = regexp.MustCompile(`<a[^>]*class="result__snippet"[^>]*>([^<]+)</a>`)
)

// Search scrapes DuckDuckGo HTML search results.
func (c *DuckDuckGoClient) Search(ctx context.Context, query string, maxResults int) ([]models.RawSearchResult, error) {
	u := fmt.Sprintf("%s?q=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	results := parseResults(string(body), maxResults)
	log.Debug().Int("count", len(results)).Msg("DuckDuckGo: search completed")
	return results, nil
}

// parseResults extracts title/url/snippet triples from the results page.
func parseResults(page string, maxResults int) []models.RawSearchResult {
	linkMatches := ddgLinkPattern.FindAllStringSubmatch(page, -1)
	snippetMatches := ddgSnippetPattern.FindAllStringSubmatch(page, -1)

	var results []models.RawSearchResult
	for i, match := range linkMatches {
		if len(results) >= maxResults {
			break
		}
		if len(match) < 3 {
			continue
		}

		actualURL := decodeRedirectURL(match[1])
		if actualURL == "" || strings.HasPrefix(actualURL, "//duckduckgo.com") {
			continue
		}

		snippet := ""
		if i < len(snippetMatches) && len(snippetMatches[i]) >= 2 {
			snippet = strings.TrimSpace(html.UnescapeString(snippetMatches[i][1]))
		}

		results = append(results, models.RawSearchResult{
			URL:     actualURL,
			Title:   strings.TrimSpace(html.UnescapeString(match[2])),
			Snippet: snippet,
		})
	}
	return results
}

// decodeRedirectURL extracts the actual URL from a DuckDuckGo redirect.
func decodeRedirectURL(rawURL string) string {
	if !strings.Contains(rawURL, "uddg=") {
		return rawURL
	}
	decoded, err := url.QueryUnescape(rawURL)
	if err != nil {
		return rawURL
	}
	idx := strings.Index(decoded, "uddg=")
	if idx < 0 {
		return rawURL
	}
	actualURL := decoded[idx+5:]
	if ampIdx := strings.Index(actualURL, "&"); ampIdx >= 0 {
		actualURL = actualURL[:ampIdx]
	}
	if decodedURL, err := url.QueryUnescape(actualURL); err == nil {
		return decodedURL
	}
	return actualURL
}
