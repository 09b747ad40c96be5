package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/breeew/hairlog-api/internal/core"
	"github.com/breeew/hairlog-api/pkg/errors"
	"github.com/breeew/hairlog-api/pkg/i18n"
	"github.com/breeew/hairlog-api/pkg/security"
	"github.com/breeew/hairlog-api/pkg/utils"
)

const revokedTokenPrefix = "hairlog:revoked:"

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

// 会话由外部系统签发, 这里只负责校验与吊销
func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	l := &AuthLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func revokedKey(token string) string {
	return revokedTokenPrefix + utils.MD5(token)
}

// ParseSessionToken verifies token and rejects revoked ones.
func (l *AuthLogic) ParseSessionToken(token string) (*security.TokenClaims, error) {
	claims, err := security.ParseToken(l.core.Cfg().Security.JWTSecret, token)
	if err != nil {
		return nil, errors.New("AuthLogic.ParseSessionToken.ParseToken", i18n.ERROR_INVALID_TOKEN, err).Code(http.StatusUnauthorized)
	}

	if l.core.Plugins != nil && l.core.Cache() != nil {
		revoked, err := l.core.Cache().Get(l.ctx, revokedKey(token))
		if err != nil {
			return nil, errors.New("AuthLogic.ParseSessionToken.Cache.Get", i18n.ERROR_INTERNAL, err)
		}
		if revoked != "" {
			return nil, errors.New("AuthLogic.ParseSessionToken.Revoked", i18n.ERROR_INVALID_TOKEN, nil).Code(http.StatusUnauthorized)
		}
	}
	return claims, nil
}

// IssueSessionToken is used by operators to mint a token for an existing user.
func (l *AuthLogic) IssueSessionToken(userID string, ttl time.Duration) (string, error) {
	user, err := NewProfileLogic(l.ctx, l.core).GetUser(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.New("AuthLogic.IssueSessionToken.GetUser", i18n.ERROR_USER_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	claims := security.NewTokenClaims(l.core.DefaultAppid(), "hairlog", user.ID, "member", time.Now().Add(ttl).Unix())
	token, err := security.SignToken(l.core.Cfg().Security.JWTSecret, claims)
	if err != nil {
		return "", errors.New("AuthLogic.IssueSessionToken.SignToken", i18n.ERROR_INTERNAL, err)
	}
	return token, nil
}

func (l *AuthLogic) RevokeSessionToken(token string, ttl time.Duration) error {
	if err := l.core.Cache().SetEx(l.ctx, revokedKey(token), "1", ttl); err != nil {
		return errors.New("AuthLogic.RevokeSessionToken.Cache.SetEx", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
