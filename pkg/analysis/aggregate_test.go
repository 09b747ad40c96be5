package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/breeew/hairlog-api/pkg/types"
)

func entryAt(id string, day int, analysis string) types.JournalEntry {
	e := types.JournalEntry{
		ID:        id,
		CreatedAt: time.Date(2024, 5, day, 10, 0, 0, 0, time.UTC).Unix(),
		Meta:      map[string]string{},
	}
	if analysis != "" {
		e.Meta[types.META_ANALYSIS_DATA] = analysis
	}
	return e
}

func TestCollectMentionsSkipsMalformedEntries(t *testing.T) {
	entries := []types.JournalEntry{
		entryAt("1", 3, `{"products":[{"name":"Oil","match":80}]}`),
		entryAt("2", 2, `not json`),
		entryAt("3", 1, ``),
		entryAt("4", 1, `{"summary":"no products"}`),
		{ID: "5", CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).Unix()},
	}

	mentions := CollectMentions(entries, time.UTC)
	assert.Equal(t, []types.ProductMention{{Name: "Oil", Match: 80, EntryDate: "2024-05-03"}}, mentions)
}

func TestRankProductsDedupesOnFullRecord(t *testing.T) {
	mentions := []types.ProductMention{
		{Name: "Oil", Match: 80, EntryDate: "2024-05-03"},
		{Name: "Oil", Match: 80, EntryDate: "2024-05-03"},
		{Name: "Oil", Match: 75, EntryDate: "2024-05-03"},
		{Name: "Oil", Match: 80, EntryDate: "2024-05-02"},
	}

	ranked := RankProducts(mentions, 10)
	assert.Equal(t, []types.ProductMention{
		{Name: "Oil", Match: 80, EntryDate: "2024-05-03"},
		{Name: "Oil", Match: 80, EntryDate: "2024-05-02"},
		{Name: "Oil", Match: 75, EntryDate: "2024-05-03"},
	}, ranked)
}

func TestRankProductsIsStable(t *testing.T) {
	mentions := []types.ProductMention{
		{Name: "A", Match: 50, EntryDate: "2024-05-01"},
		{Name: "B", Match: 90, EntryDate: "2024-05-01"},
		{Name: "C", Match: 90, EntryDate: "2024-05-01"},
	}

	ranked := RankProducts(mentions, 3)
	assert.Equal(t, []string{"B", "C", "A"}, []string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
}

func TestRankProductsTruncates(t *testing.T) {
	var mentions []types.ProductMention
	for i := 0; i < 10; i++ {
		mentions = append(mentions, types.ProductMention{Name: fmt.Sprintf("P%d", i), Match: float64(i * 10)})
	}

	assert.Len(t, RankProducts(mentions, DefaultResultLimit), 3)
	assert.Len(t, RankProducts(mentions, 0), DefaultResultLimit)
	assert.Len(t, RankProducts(mentions, 7), 7)

	top := RankProducts(mentions, 3)
	assert.Equal(t, []float64{90, 80, 70}, []float64{top[0].Match, top[1].Match, top[2].Match})
}

func TestRankProductsDoesNotMutateInput(t *testing.T) {
	mentions := []types.ProductMention{
		{Name: "A", Match: 10},
		{Name: "B", Match: 90},
	}
	RankProducts(mentions, 3)
	assert.Equal(t, "A", mentions[0].Name)
}

func TestTopProductsEmpty(t *testing.T) {
	assert.Empty(t, TopProducts(nil, 3, time.UTC))
}

func TestTopProducts(t *testing.T) {
	entries := []types.JournalEntry{
		entryAt("1", 4, `{"products":[{"name":"Curl Cream","match":88},{"name":"Gel","match":70}]}`),
		entryAt("2", 3, `{"products":[{"name":"Curl Cream","match":88},{"name":"Oil","match":95}]}`),
		entryAt("3", 2, `{"products":[{"name":"Gel","match":70}]}`),
	}

	top := TopProducts(entries, 3, time.UTC)
	assert.Equal(t, []types.ProductMention{
		{Name: "Oil", Match: 95, EntryDate: "2024-05-03"},
		{Name: "Curl Cream", Match: 88, EntryDate: "2024-05-04"},
		{Name: "Curl Cream", Match: 88, EntryDate: "2024-05-03"},
	}, top)
}
