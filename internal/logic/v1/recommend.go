package v1

import (
	"context"

	"github.com/breeew/hairlog-api/internal/core"
	"github.com/breeew/hairlog-api/pkg/analysis"
	"github.com/breeew/hairlog-api/pkg/errors"
	"github.com/breeew/hairlog-api/pkg/i18n"
	"github.com/breeew/hairlog-api/pkg/types"
)

type RecommendLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewRecommendLogic(ctx context.Context, core *core.Core) *RecommendLogic {
	l := &RecommendLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

// ComputeTopProducts ranks the products mentioned in the analysis data of the
// recentEntryLimit newest journal entries and keeps the best resultLimit.
func (l *RecommendLogic) ComputeTopProducts(userID string, recentEntryLimit, resultLimit int) ([]types.ProductMention, error) {
	if recentEntryLimit <= 0 {
		recentEntryLimit = analysis.DefaultRecentEntryLimit
	}
	if resultLimit <= 0 {
		resultLimit = analysis.DefaultResultLimit
	}

	entries, err := l.core.Store().ContentRepository().ListRecentEntries(l.ctx, userID, l.core.Cfg().Site.PostType, uint64(recentEntryLimit))
	if err != nil {
		return nil, errors.New("RecommendLogic.ComputeTopProducts.ContentRepository.ListRecentEntries", i18n.ERROR_INTERNAL, err)
	}

	return analysis.TopProducts(entries, resultLimit, l.core.Cfg().Site.Location()), nil
}
