package sqlstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/hairlog-api/pkg/types"
)

func TestProfileCreateIfAbsentQuery(t *testing.T) {
	s := NewProfileStore(nil)

	query, args, err := s.createIfAbsentQuery(types.DefaultProfile("p-1", "u-1", 100)).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO hl_profile")
	assert.Contains(t, query, "$12")
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT (user_id) DO NOTHING"), query)
	assert.Len(t, args, 12)
	assert.Equal(t, "u-1", args[1])
	assert.Equal(t, types.DEFAULT_PROFILE_HEALTH_RATING, args[3])
}

func TestProfileGetQuery(t *testing.T) {
	query, args, err := NewProfileStore(nil).getQuery("u-1").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, user_id, hair_journey_stage, hair_health_rating, life_journey_stage, birthday, location, hair_type, hair_goals, hair_analysis_snapshots, updated_at, created_at FROM hl_profile WHERE user_id = $1 LIMIT 1", query)
	assert.Equal(t, []interface{}{"u-1"}, args)
}

func TestJournalListRecentQuery(t *testing.T) {
	s := NewJournalStore(nil)

	query, args, err := s.listRecentQuery("u-1", types.PostTypeJournal, 5).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, author_id, post_type, title, content, thumbnail, status, created_at FROM hl_post WHERE author_id = $1 AND post_type = $2 AND status = $3 ORDER BY created_at DESC LIMIT 5", query)
	assert.Equal(t, []interface{}{"u-1", types.PostTypeJournal, POST_STATUS_PUBLISH}, args)

	query, args, err = s.metaQuery([]string{"a", "b"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT post_id, meta_key, meta_value FROM hl_post_meta WHERE meta_key IN ($1,$2) AND post_id IN ($3,$4)", query)
	assert.Equal(t, []interface{}{types.META_HEALTH_RATING, types.META_ANALYSIS_DATA, "a", "b"}, args)
}

func TestProviderRegistersStores(t *testing.T) {
	p := NewProvider(nil)

	assert.NotNil(t, p.UserStore())
	assert.NotNil(t, p.ProfileStore())
	assert.NotNil(t, p.ContentRepository())
}
