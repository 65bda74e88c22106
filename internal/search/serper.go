// Package search provides the Serper web search implementation.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/truthscan/truthscan/internal/models"
)

const defaultSerperURL = "https://google.serper.dev/search"

// SerperClient searches the web through the Serper API.
type SerperClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewSerperClient creates a new Serper client.
func NewSerperClient(apiKey string) *SerperClient {
	return &SerperClient{
		apiKey:     apiKey,
		baseURL:    defaultSerperURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Name returns the provider name.
func (c *SerperClient) Name() string {
	return "serper"
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type serperResponse struct {
	Organic []struct {
		Link    string `json:"link"`
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// Search queries Serper for organic results.
func (c *SerperClient) Search(ctx context.Context, query string, maxResults int) ([]models.RawSearchResult, error) {
	bodyBytes, err := json.Marshal(serperRequest{Q: query, Num: maxResults})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serper request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serper returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var data serperResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	results := make([]models.RawSearchResult, 0, len(data.Organic))
	for _, hit := range data.Organic {
		if hit.Link == "" {
			continue
		}
		results = append(results, models.RawSearchResult{
			URL:     hit.Link,
			Title:   hit.Title,
			Snippet: hit.Snippet,
		})
		if len(results) >= maxResults {
			break
		}
	}

	return results, nil
}
