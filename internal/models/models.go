// Package models defines the core data structures used throughout the application.
package models

import (
	"time"
)

// Verdict is the outcome of verifying a claim.
type Verdict string

const (
	VerdictTrue          Verdict = "True"
	VerdictFalse         Verdict = "False"
	VerdictPartiallyTrue Verdict = "Partially True"
	VerdictInconclusive  Verdict = "Inconclusive"
)

// Valid reports whether v is one of the four verdict values.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictTrue, VerdictFalse, VerdictPartiallyTrue, VerdictInconclusive:
		return true
	}
	return false
}

// Source is a cited piece of evidence backing a verdict.
type Source struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// VerificationRecord is a persisted verification result. Records are
// immutable once written; only creation and reads exist.
type VerificationRecord struct {
	ID          string    `json:"id"`
	QueryText   string    `json:"query_text"`
	Verdict     Verdict   `json:"verdict"`
	Explanation string    `json:"explanation"`
	Sources     []Source  `json:"sources"`
	CreatedAt   time.Time `json:"created_at"`
}

// RawSearchResult is a single hit from a search provider, in relevance order.
type RawSearchResult struct {
	URL     string
	Title   string
	Snippet string
}

// VerifyRequest is the request body for the verification endpoint.
type VerifyRequest struct {
	QueryText string `json:"query_text"`
}

// VerifyResponse is the API response for a verification request.
type VerifyResponse struct {
	Verdict     Verdict  `json:"verdict"`
	Explanation string   `json:"explanation"`
	Sources     []Source `json:"sources"`
	Cached      bool     `json:"cached"`
}
