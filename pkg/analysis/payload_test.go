package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/hairlog-api/pkg/types"
)

func TestParseAnalysisPayloadRejectsMalformed(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":            "",
		"blank":            "   ",
		"invalid json":     `{"products": [`,
		"missing products": `{"curl_pattern": "3B"}`,
		"products object":  `{"products": {"name": "Oil"}}`,
		"products null":    `{"products": null}`,
		"top level array":  `[{"name": "Oil", "match": 80}]`,
		"plain string":     `"hello"`,
	} {
		t.Run(name, func(t *testing.T) {
			payload, ok := ParseAnalysisPayload(raw)
			assert.False(t, ok)
			assert.Nil(t, payload)
		})
	}
}

func TestParseAnalysisPayloadNormalizes(t *testing.T) {
	raw := `{
		"curl_pattern": "4A",
		"scores": {"moisture": 72},
		"products": [
			{"name": "  Curl Cream ", "match": 91.5},
			{"name": "", "match": "77"},
			{"match": 60},
			{"name": "Leave-in", "match": "high"},
			{"name": "Gel"},
			{"name": 42, "match": null},
			"not an object",
			null
		]
	}`

	payload, ok := ParseAnalysisPayload(raw)
	require.True(t, ok)

	assert.Equal(t, "4A", payload.CurlPattern)
	assert.Equal(t, []types.ProductMention{
		{Name: "Curl Cream", Match: 91.5},
		{Name: types.UnknownProductName, Match: 77},
		{Name: types.UnknownProductName, Match: 60},
		{Name: "Leave-in", Match: 0},
		{Name: "Gel", Match: 0},
		{Name: "42", Match: 0},
	}, payload.Products)
}

func TestParseAnalysisPayloadToleratesBadScores(t *testing.T) {
	payload, ok := ParseAnalysisPayload(`{"scores": "n/a", "products": [{"name": "Oil", "match": 50}]}`)
	require.True(t, ok)
	assert.Equal(t, []types.ProductMention{{Name: "Oil", Match: 50}}, payload.Products)

	payload, ok = ParseAnalysisPayload(`{"products": []}`)
	require.True(t, ok)
	assert.Empty(t, payload.Products)
}
