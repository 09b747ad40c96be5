package v1

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/breeew/hairlog-api/internal/core"
	"github.com/breeew/hairlog-api/pkg/analysis"
	"github.com/breeew/hairlog-api/pkg/errors"
	"github.com/breeew/hairlog-api/pkg/i18n"
	"github.com/breeew/hairlog-api/pkg/types"
	"github.com/breeew/hairlog-api/pkg/utils"
)

const excerptRunes = 160

type ActivityLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewActivityLogic(ctx context.Context, core *core.Core) *ActivityLogic {
	l := &ActivityLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

func (l *ActivityLogic) listEntries(scope, userID string, limit int) ([]types.JournalEntry, error) {
	entries, err := l.core.Store().ContentRepository().ListRecentEntries(l.ctx, userID, l.core.Cfg().Site.PostType, uint64(limit))
	if err != nil {
		return nil, errors.New(scope+".ContentRepository.ListRecentEntries", i18n.ERROR_INTERNAL, err)
	}
	return entries, nil
}

// RecentActivity lists the newest journal entries of userID, newest first.
func (l *ActivityLogic) RecentActivity(userID string, limit int) ([]types.ActivityItem, error) {
	if limit <= 0 {
		limit = l.core.Cfg().Site.ActivityLimit
	}
	entries, err := l.listEntries("ActivityLogic.RecentActivity", userID, limit)
	if err != nil {
		return nil, err
	}

	loc := l.core.Cfg().Site.Location()
	return lo.Map(entries, func(entry types.JournalEntry, _ int) types.ActivityItem {
		item := types.ActivityItem{
			ID:        entry.ID,
			Title:     entry.Title,
			Date:      utils.FormatDate(entry.CreatedAt, loc),
			Excerpt:   utils.ContentExcerpt(entry.Content, excerptRunes),
			Thumbnail: l.resolveThumbnail(entry),
		}
		if rating, ok := analysis.HealthRating(entry); ok {
			item.HealthRating = lo.ToPtr(rating)
		}
		return item
	}), nil
}

func (l *ActivityLogic) resolveThumbnail(entry types.JournalEntry) string {
	raw := strings.TrimSpace(entry.Thumbnail)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		slog.Warn("malformed thumbnail", slog.String("entry_id", entry.ID), slog.String("error", err.Error()))
		return ""
	}

	switch {
	case u.Scheme == "http" || u.Scheme == "https":
		if u.Host == "" {
			break
		}
		return u.String()
	case u.Scheme == "" && u.Host == "" && u.Path != "":
		if l.core.Plugins == nil {
			return ""
		}
		signed, err := l.core.FileUploader().GenGetObjectPreSignURL(l.ctx, u.Path)
		if err != nil {
			slog.Warn("failed to sign thumbnail", slog.String("entry_id", entry.ID), slog.String("error", err.Error()))
			return ""
		}
		return signed
	}

	slog.Warn("malformed thumbnail", slog.String("entry_id", entry.ID), slog.String("thumbnail", raw))
	return ""
}

// HealthSummary computes trend and average over the newest limit entries, oldest first.
func (l *ActivityLogic) HealthSummary(userID string, limit int) (types.HealthSummary, error) {
	if limit <= 0 {
		limit = l.core.Cfg().Site.HealthEntryLimit
	}
	entries, err := l.listEntries("ActivityLogic.HealthSummary", userID, limit)
	if err != nil {
		return types.HealthSummary{}, err
	}

	ascending := slices.Clone(entries)
	slices.Reverse(ascending)
	return analysis.Summarize(ascending), nil
}
