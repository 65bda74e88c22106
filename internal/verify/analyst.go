// Package verify provides claim analysis against search evidence.
package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/truthscan/truthscan/internal/llm"
	"github.com/truthscan/truthscan/internal/models"
)

const analysisPromptTemplate = `You are a fact-checking expert. Assess the following news claim against the evidence provided.

Claim: %s

Evidence from web search:
%s
Instructions:
1. State your conclusion on the first line as exactly one of:
   "Verdict: True", "Verdict: False", "Verdict: Partially True", or "Verdict: Inconclusive"
2. Follow with an objective explanation of your reasoning, citing the provided evidence by source.
3. Base your assessment only on the evidence above. If the evidence is insufficient or contradictory, say so.`

// Analyst runs the analysis round trip against a text-generation provider.
type Analyst struct {
	provider        llm.Provider
	maxOutputTokens int
	temperature     float64
}

// NewAnalyst creates a new analyst. Temperature is kept low so repeated
// runs over the same claim produce stable verdicts.
func NewAnalyst(provider llm.Provider, maxOutputTokens int, temperature float64) *Analyst {
	if maxOutputTokens <= 0 {
		maxOutputTokens = 1024
	}
	return &Analyst{
		provider:        provider,
		maxOutputTokens: maxOutputTokens,
		temperature:     temperature,
	}
}

// Analyze asks the provider to assess the claim against the sources and
// returns the free-form analysis text.
func (a *Analyst) Analyze(ctx context.Context, claim string, sources []models.Source) (string, error) {
	prompt := fmt.Sprintf(analysisPromptTemplate, claim, formatSourceContext(sources))

	opts := llm.CompletionOptions{
		MaxOutputTokens: a.maxOutputTokens,
		Temperature:     a.temperature,
	}

	response, err := a.provider.Complete(ctx, prompt, opts)
	if err != nil {
		return "", fmt.Errorf("analysis failed: %w", err)
	}

	return response, nil
}

// formatSourceContext renders the retained sources for the prompt.
func formatSourceContext(sources []models.Source) string {
	if len(sources) == 0 {
		return "(no search results were found for this claim)\n"
	}

	var b strings.Builder
	for i, s := range sources {
		fmt.Fprintf(&b, "Source %d: %s\n", i+1, s.Title)
		fmt.Fprintf(&b, "URL: %s\n", s.URL)
		if s.Snippet != "" {
			fmt.Fprintf(&b, "Excerpt: %s\n", s.Snippet)
		}
		b.WriteString("\n")
	}
	return b.String()
}
