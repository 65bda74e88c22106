// Package verify provides verdict extraction from analysis text.
package verify

import (
	"strings"

	"github.com/truthscan/truthscan/internal/models"
)

// Marker phrases checked in priority order. The True branch matches only
// explicit verdict declarations, never a bare "true": "partially true"
// contains "true" as a substring and would otherwise collide.
var (
	trueMarkers = []string{
		"verdict: true",
		"verdict is true",
		`verdict: "true"`,
		"verdict: **true**",
		"verdict:** true",
	}
	falseMarkers = []string{
		"verdict: false",
		"verdict is false",
		`verdict: "false"`,
		"verdict: **false**",
		"verdict:** false",
	}
	partialMarkers = []string{
		"partially true",
		"partly true",
	}
)

// ExtractVerdict maps free-form analysis text to one of the four verdict
// values. It is total: any input yields exactly one verdict, defaulting
// to Inconclusive when no marker phrase is present.
func ExtractVerdict(analysisText string) models.Verdict {
	text := strings.ToLower(analysisText)

	if containsAny(text, trueMarkers) {
		return models.VerdictTrue
	}
	if containsAny(text, falseMarkers) {
		return models.VerdictFalse
	}
	if containsAny(text, partialMarkers) {
		return models.VerdictPartiallyTrue
	}
	return models.VerdictInconclusive
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
