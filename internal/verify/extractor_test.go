package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/truthscan/truthscan/internal/models"
)

func TestExtractVerdict(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Verdict
	}{
		{"explicit true", "Verdict: True\nThe claim is supported by all three sources.", models.VerdictTrue},
		{"verdict is true", "After reviewing the evidence, the verdict is true.", models.VerdictTrue},
		{"quoted true", `The conclusion is Verdict: "True" given the evidence.`, models.VerdictTrue},
		{"bold true", "**Verdict: **True**", models.VerdictTrue},
		{"explicit false", "Verdict: False\nNo source corroborates the claim.", models.VerdictFalse},
		{"verdict is false", "...the verdict is false based on overwhelming evidence...", models.VerdictFalse},
		{"partially true", "Verdict: Partially True. The date is correct but the amount is not.", models.VerdictPartiallyTrue},
		{"partly true", "The claim is partly true according to two sources.", models.VerdictPartiallyTrue},
		{"inconclusive", "Verdict: Inconclusive. The evidence is insufficient.", models.VerdictInconclusive},
		{"no marker", "The sources discuss the topic but reach no conclusion.", models.VerdictInconclusive},
		{"empty", "", models.VerdictInconclusive},
		{"bare true is not a verdict", "It is true that the event took place in 2019.", models.VerdictInconclusive},
		{"uppercase", "VERDICT: FALSE because none of the sources support it.", models.VerdictFalse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVerdict(tt.text))
		})
	}
}

// "partially true" contains "true" as a substring; the True branch must
// only fire on an explicit declaration so these do not collide.
func TestExtractVerdictCollision(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Verdict
	}{
		{"declared partially true", "Verdict: Partially True\nOne source confirms, one contradicts.", models.VerdictPartiallyTrue},
		{"verdict is partially true", "The verdict is partially true: the core claim holds but the figures are wrong.", models.VerdictPartiallyTrue},
		{"partial phrasing only", "The statement is partially true at best.", models.VerdictPartiallyTrue},
		{"declared true mentioning partial", "Verdict: True. Earlier reports called it partially true, but new evidence settles it.", models.VerdictTrue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVerdict(tt.text))
		})
	}
}

// Extraction is total: every input maps to one of the four enum values,
// and repeated application is stable.
func TestExtractVerdictTotalAndIdempotent(t *testing.T) {
	inputs := []string{
		"", "true", "false", "verdict", "Verdict: True", "verdict: false",
		"partially true", "random noise \x00\xff", "VERDICT IS TRUE!!!",
	}
	for _, in := range inputs {
		first := ExtractVerdict(in)
		assert.True(t, first.Valid(), "input %q produced %q", in, first)
		assert.Equal(t, first, ExtractVerdict(in))
	}
}
