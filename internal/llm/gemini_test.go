package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthscan/truthscan/internal/config"
)

func newGemini(t *testing.T, baseURL string) *GeminiProvider {
	t.Helper()
	p, err := NewGeminiProvider(&config.LLMConfig{APIKey: "gk-test", Model: "gemini-2.0-flash"})
	require.NoError(t, err)
	p.baseURL = baseURL
	return p
}

func TestGeminiComplete(t *testing.T) {
	var gotBody geminiRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-2.0-flash")
		assert.Equal(t, "gk-test", r.URL.Query().Get("key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "Verdict: False\nNo source supports it."}]}}]}`))
	}))
	defer ts.Close()

	p := newGemini(t, ts.URL)

	text, err := p.Complete(context.Background(), "Assess this claim", CompletionOptions{
		MaxOutputTokens: 1024,
		Temperature:     0.1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Verdict: False\nNo source supports it.", text)

	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "Assess this claim", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.GenerationConfig)
	assert.Equal(t, 1024, gotBody.GenerationConfig.MaxOutputTokens)
	assert.InDelta(t, 0.1, gotBody.GenerationConfig.Temperature, 1e-9)
}

func TestGeminiCompleteAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error": {"message": "API key not valid", "code": 400}}`))
	}))
	defer ts.Close()

	p := newGemini(t, ts.URL)

	_, err := p.Complete(context.Background(), "prompt", CompletionOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiCompleteNoContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer ts.Close()

	p := newGemini(t, ts.URL)

	_, err := p.Complete(context.Background(), "prompt", CompletionOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestGeminiRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(&config.LLMConfig{})
	require.Error(t, err)
}

func TestNewProviderSelection(t *testing.T) {
	p, err := NewProvider(&config.LLMConfig{Provider: "ollama"})
	require.NoError(t, err)
	assert.Equal(t, "ollama", p.Name())

	_, err = NewProvider(&config.LLMConfig{Provider: "parrot"})
	require.Error(t, err)
}
