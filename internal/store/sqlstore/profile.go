package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/breeew/hairlog-api/pkg/register"
	"github.com/breeew/hairlog-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.Stores.ProfileStore = NewProfileStore(provider)
	})
}

type ProfileStore struct {
	CommonFields
}

func NewProfileStore(provider SqlProviderAchieve) *ProfileStore {
	repo := &ProfileStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_PROFILE)
	repo.SetAllColumns("id", "user_id", "hair_journey_stage", "hair_health_rating", "life_journey_stage", "birthday",
		"location", "hair_type", "hair_goals", "hair_analysis_snapshots", "updated_at", "created_at")
	return repo
}

func (s *ProfileStore) getQuery(userID string) sq.SelectBuilder {
	return sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID}).Limit(1)
}

// Get returns sql.ErrNoRows when the user has no profile.
func (s *ProfileStore) Get(ctx context.Context, userID string) (*types.Profile, error) {
	queryString, args, err := s.getQuery(userID).ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Profile
	if err = s.GetReplica(ctx).GetContext(ctx, &res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ProfileStore) createIfAbsentQuery(data types.Profile) sq.InsertBuilder {
	return sq.Insert(s.GetTable()).
		Columns("id", "user_id", "hair_journey_stage", "hair_health_rating", "life_journey_stage", "birthday",
			"location", "hair_type", "hair_goals", "hair_analysis_snapshots", "updated_at", "created_at").
		Values(data.ID, data.UserID, data.HairJourneyStage, data.HairHealthRating, data.LifeJourneyStage, data.Birthday,
			data.Location, data.HairType, data.HairGoals, data.HairAnalysisSnapshots, data.UpdatedAt, data.CreatedAt).
		Suffix("ON CONFLICT (user_id) DO NOTHING")
}

// CreateIfAbsent 依赖 user_id 唯一索引, 并发首次访问只会写入一行
func (s *ProfileStore) CreateIfAbsent(ctx context.Context, data types.Profile) (bool, error) {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}

	queryString, args, err := s.createIfAbsentQuery(data).ToSql()
	if err != nil {
		return false, ErrorSqlBuild(err)
	}

	res, err := s.GetMaster(ctx).ExecContext(ctx, queryString, args...)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
