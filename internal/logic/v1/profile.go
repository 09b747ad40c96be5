package v1

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/breeew/hairlog-api/internal/core"
	"github.com/breeew/hairlog-api/internal/core/srv"
	"github.com/breeew/hairlog-api/pkg/errors"
	"github.com/breeew/hairlog-api/pkg/i18n"
	"github.com/breeew/hairlog-api/pkg/types"
	"github.com/breeew/hairlog-api/pkg/utils"
)

type ProfileLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewProfileLogic(ctx context.Context, core *core.Core) *ProfileLogic {
	l := &ProfileLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

// ResolveUserID returns the requested user, falling back to the caller.
func (l *ProfileLogic) ResolveUserID(userID string) string {
	if userID = strings.TrimSpace(userID); userID != "" {
		return userID
	}
	return l.GetUserInfo().User
}

func (l *ProfileLogic) GetUser(userID string) (*types.User, error) {
	user, err := l.core.Store().UserStore().GetUser(l.ctx, userID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ProfileLogic.GetUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	return user, nil
}

// GetProfile returns nil, nil when the user has no profile yet.
func (l *ProfileLogic) GetProfile(userID string) (*types.Profile, error) {
	profile, err := l.core.Store().ProfileStore().Get(l.ctx, userID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ProfileLogic.GetProfile.ProfileStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return profile, nil
}

// EnsureProfile creates the default profile of userID when missing and returns the stored row.
// Only the owner is allowed to do so.
func (l *ProfileLogic) EnsureProfile(userID string) (*types.Profile, error) {
	if !l.IsAuthenticated() {
		return nil, errors.New("ProfileLogic.EnsureProfile.IsAuthenticated", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	if err := l.Identification(srv.NewStaticRoler(userID), srv.PermissionEdit); err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	created, err := l.core.Store().ProfileStore().CreateIfAbsent(l.ctx, types.DefaultProfile(utils.GenSpecIDStr(), userID, now))
	if err != nil {
		return nil, errors.New("ProfileLogic.EnsureProfile.ProfileStore.CreateIfAbsent", i18n.ERROR_INTERNAL, err)
	}
	if created {
		slog.Info("default profile created", slog.String("user_id", userID))
	}

	profile, err := l.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("ProfileLogic.EnsureProfile.GetProfile", i18n.ERROR_PROFILE_NOTFOUND, nil).Code(http.StatusNotFound)
	}
	return profile, nil
}

// Snapshots decodes the stored analysis snapshots, dropping anything unreadable.
func (l *ProfileLogic) Snapshots(profile *types.Profile) []types.AnalysisSnapshot {
	if profile == nil {
		return nil
	}
	return ParseSnapshots(profile.HairAnalysisSnapshots)
}

func ParseSnapshots(raw string) []types.AnalysisSnapshot {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.Warn("malformed analysis snapshots", slog.String("error", err.Error()))
		return nil
	}
	res := make([]types.AnalysisSnapshot, 0, len(items))
	for _, item := range items {
		var s types.AnalysisSnapshot
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		res = append(res, s)
	}
	return res
}
