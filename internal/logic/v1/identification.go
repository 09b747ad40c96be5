package v1

import (
	"context"

	"github.com/breeew/hairlog-api/internal/core"
	"github.com/breeew/hairlog-api/internal/core/srv"
	"github.com/breeew/hairlog-api/pkg/security"
)

type _userInfo struct {
	core *core.Core
	u    *security.TokenClaims
}

func (u *_userInfo) GetUserInfo() security.TokenClaims {
	return *u.u
}

func (u *_userInfo) IsAuthenticated() bool {
	return u.u.IsAuthenticated()
}

func (u *_userInfo) Identification(roler srv.RoleObject, permission string) error {
	if err := u.core.Srv().RBAC().Check(u.GetUserInfo(), roler, permission); err != nil {
		return err
	}
	return nil
}

// 匿名访问时 claims 为空
func setupUserInfo(ctx context.Context, core *core.Core) UserInfo {
	userInfo, ok := InjectTokenClaim(ctx)
	if !ok {
		userInfo = security.TokenClaims{}
	}
	return &_userInfo{
		u:    &userInfo,
		core: core,
	}
}

type UserInfo interface {
	GetUserInfo() security.TokenClaims
	IsAuthenticated() bool
	Identification(roler srv.RoleObject, permission string) error
}
