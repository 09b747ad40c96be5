package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/breeew/hairlog-api/pkg/register"
	"github.com/breeew/hairlog-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.Stores.JournalStore = NewJournalStore(provider)
	})
}

const POST_STATUS_PUBLISH = "publish"

// JournalStore reads journal posts and the metadata attached to them.
type JournalStore struct {
	CommonFields
	metaTable types.TableName
}

func NewJournalStore(provider SqlProviderAchieve) *JournalStore {
	repo := &JournalStore{
		metaTable: types.TABLE_POST_META,
	}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_POST)
	repo.SetAllColumns("id", "author_id", "post_type", "title", "content", "thumbnail", "status", "created_at")
	return repo
}

func (s *JournalStore) listRecentQuery(authorID, postType string, limit uint64) sq.SelectBuilder {
	return sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"author_id": authorID, "post_type": postType, "status": POST_STATUS_PUBLISH}).
		OrderBy("created_at DESC").
		Limit(limit)
}

func (s *JournalStore) metaQuery(postIDs []string) sq.SelectBuilder {
	return sq.Select("post_id", "meta_key", "meta_value").From(s.metaTable.Name()).
		Where(sq.Eq{"post_id": postIDs, "meta_key": []string{types.META_HEALTH_RATING, types.META_ANALYSIS_DATA}})
}

// ListRecentEntries
func (s *JournalStore) ListRecentEntries(ctx context.Context, authorID, postType string, limit uint64) ([]types.JournalEntry, error) {
	queryString, args, err := s.listRecentQuery(authorID, postType, limit).ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.JournalEntry
	if err = s.GetReplica(ctx).SelectContext(ctx, &res, queryString, args...); err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return res, nil
	}

	ids := make([]string, 0, len(res))
	index := make(map[string]int, len(res))
	for i := range res {
		res[i].Meta = make(map[string]string)
		ids = append(ids, res[i].ID)
		index[res[i].ID] = i
	}

	queryString, args, err = s.metaQuery(ids).ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var metas []types.PostMeta
	if err = s.GetReplica(ctx).SelectContext(ctx, &metas, queryString, args...); err != nil {
		return nil, err
	}
	for _, m := range metas {
		if i, ok := index[m.PostID]; ok {
			res[i].Meta[m.MetaKey] = m.MetaValue
		}
	}
	return res, nil
}
