package analysis

import (
	"math"
	"strconv"
	"strings"

	"github.com/breeew/hairlog-api/pkg/types"
)

const (
	TrendImproving = "Improving"
	TrendDeclining = "Declining"
	TrendStable    = "Stable"
	TrendNA        = "N/A"
)

// Trend compares the last rating with the first. ratings must be ordered by
// entry date ascending.
func Trend(ratings []int) string {
	if len(ratings) < 2 {
		return TrendNA
	}
	first, last := ratings[0], ratings[len(ratings)-1]
	switch {
	case last > first:
		return TrendImproving
	case last < first:
		return TrendDeclining
	}
	return TrendStable
}

// Average is the arithmetic mean rounded to one decimal place, 0 for no ratings.
func Average(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for _, r := range ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}

// HealthRating reads the health_rating metadata of an entry.
func HealthRating(entry types.JournalEntry) (int, bool) {
	raw, ok := entry.MetaValue(types.META_HEALTH_RATING)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Summarize builds the health summary of entries ordered oldest first.
func Summarize(entries []types.JournalEntry) types.HealthSummary {
	ratings := make([]int, 0, len(entries))
	for _, entry := range entries {
		if r, ok := HealthRating(entry); ok {
			ratings = append(ratings, r)
		}
	}
	return types.HealthSummary{
		Ratings: ratings,
		Count:   len(ratings),
		Average: Average(ratings),
		Trend:   Trend(ratings),
	}
}
