package analysis

import (
	"log/slog"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/breeew/hairlog-api/pkg/types"
	"github.com/breeew/hairlog-api/pkg/utils"
)

const (
	DefaultRecentEntryLimit = 5
	DefaultResultLimit      = 3
)

// CollectMentions flattens the product mentions of entries, in entry order then
// product order. Entries without a usable analysis_data value are skipped.
func CollectMentions(entries []types.JournalEntry, loc *time.Location) []types.ProductMention {
	var mentions []types.ProductMention
	for _, entry := range entries {
		raw, _ := entry.MetaValue(types.META_ANALYSIS_DATA)
		payload, ok := ParseAnalysisPayload(raw)
		if !ok {
			if raw != "" {
				slog.Debug("skip malformed analysis data", slog.String("entry_id", entry.ID))
			}
			continue
		}

		entryDate := utils.FormatDate(entry.CreatedAt, loc)
		for _, p := range payload.Products {
			p.EntryDate = entryDate
			mentions = append(mentions, p)
		}
	}
	return mentions
}

// RankProducts removes exact duplicates, keeping the first occurrence, orders
// the rest by match descending and keeps at most limit items. Mentions of the
// same product with a different score or date are distinct.
func RankProducts(mentions []types.ProductMention, limit int) []types.ProductMention {
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	ranked := lo.Uniq(mentions)
	slices.SortStableFunc(ranked, func(a, b types.ProductMention) int {
		switch {
		case a.Match > b.Match:
			return -1
		case a.Match < b.Match:
			return 1
		}
		return 0
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopProducts is CollectMentions followed by RankProducts.
func TopProducts(entries []types.JournalEntry, limit int, loc *time.Location) []types.ProductMention {
	return RankProducts(CollectMentions(entries, loc), limit)
}
