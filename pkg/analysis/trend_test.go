package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breeew/hairlog-api/pkg/types"
)

func TestTrend(t *testing.T) {
	assert.Equal(t, TrendImproving, Trend([]int{5, 7}))
	assert.Equal(t, TrendDeclining, Trend([]int{7, 5}))
	assert.Equal(t, TrendStable, Trend([]int{6, 6}))
	assert.Equal(t, TrendStable, Trend([]int{6, 9, 2, 6}))
	assert.Equal(t, TrendNA, Trend(nil))
	assert.Equal(t, TrendNA, Trend([]int{6}))
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 9.0, Average([]int{8, 9, 10}))
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 6.7, Average([]int{6, 7, 7}))
	assert.Equal(t, 5.5, Average([]int{5, 6}))
}

func TestSummarize(t *testing.T) {
	entries := []types.JournalEntry{
		{ID: "1", Meta: map[string]string{types.META_HEALTH_RATING: "5"}},
		{ID: "2", Meta: map[string]string{types.META_HEALTH_RATING: "great"}},
		{ID: "3"},
		{ID: "4", Meta: map[string]string{types.META_HEALTH_RATING: " 8 "}},
	}

	summary := Summarize(entries)
	assert.Equal(t, []int{5, 8}, summary.Ratings)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 6.5, summary.Average)
	assert.Equal(t, TrendImproving, summary.Trend)
}
