package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ddgFixture = `
<div class="result">
  <a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.snopes.com%2Fmoon&amp;rut=abc">Moon Landing &amp; Facts</a>
  <a class="result__snippet" href="#">The landing is among the best documented events in history.</a>
</div>
<div class="result">
  <a rel="nofollow" class="result__a" href="https://www.nasa.gov/apollo">Apollo Program</a>
  <a class="result__snippet" href="#">Official mission archive.</a>
</div>
`

func TestDuckDuckGoSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(ddgFixture))
	}))
	defer ts.Close()

	c := NewDuckDuckGoClient()
	c.baseURL = ts.URL

	results, err := c.Search(context.Background(), "moon landing", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Redirect URLs are decoded and entities unescaped.
	assert.Equal(t, "https://www.snopes.com/moon", results[0].URL)
	assert.Equal(t, "Moon Landing & Facts", results[0].Title)
	assert.Equal(t, "The landing is among the best documented events in history.", results[0].Snippet)
	assert.Equal(t, "https://www.nasa.gov/apollo", results[1].URL)
}

func TestDuckDuckGoSearchNonSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewDuckDuckGoClient()
	c.baseURL = ts.URL

	_, err := c.Search(context.Background(), "moon landing", 5)
	require.Error(t, err)
}

func TestParseResultsRespectsLimit(t *testing.T) {
	results := parseResults(ddgFixture, 1)
	assert.Len(t, results, 1)
}

func TestDecodeRedirectURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain url untouched", "https://example.com/a", "https://example.com/a"},
		{"uddg decoded", "//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fa&rut=x", "https://example.com/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeRedirectURL(tt.in))
		})
	}
}
