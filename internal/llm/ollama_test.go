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

func TestOllamaComplete(t *testing.T) {
	var gotBody ollamaGenerateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"response": "Verdict: Inconclusive. Not enough evidence.", "done": true}`))
	}))
	defer ts.Close()

	p, err := NewOllamaProvider(&config.LLMConfig{OllamaURL: ts.URL, Model: "llama3"})
	require.NoError(t, err)

	text, err := p.Complete(context.Background(), "Assess this claim", CompletionOptions{
		MaxOutputTokens: 512,
		Temperature:     0.1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Verdict: Inconclusive. Not enough evidence.", text)

	assert.Equal(t, "llama3", gotBody.Model)
	assert.False(t, gotBody.Stream)
	assert.Equal(t, 512, gotBody.Options.NumPredict)
}

func TestOllamaCompleteError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer ts.Close()

	p, err := NewOllamaProvider(&config.LLMConfig{OllamaURL: ts.URL})
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), "prompt", CompletionOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}
