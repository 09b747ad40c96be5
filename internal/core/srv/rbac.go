package srv

import (
	"net/http"

	"github.com/mikespook/gorbac/v2"

	"github.com/breeew/hairlog-api/pkg/errors"
	"github.com/breeew/hairlog-api/pkg/i18n"
)

const (
	// 定义角色ID
	RoleOwner  = "role-owner"
	RoleViewer = "role-viewer"

	// 定义权限ID
	PermissionEdit = "edit"
	PermissionView = "view"
)

func SetupRBACSrv() *RBACSrv {
	rbac := gorbac.New()

	pEdit := gorbac.NewStdPermission(PermissionEdit)
	pView := gorbac.NewStdPermission(PermissionView)

	roleOwner := gorbac.NewStdRole(RoleOwner)
	roleOwner.Assign(pEdit)

	roleViewer := gorbac.NewStdRole(RoleViewer)
	roleViewer.Assign(pView)

	rbac.Add(roleOwner)
	rbac.Add(roleViewer)

	// 资源所有者继承访客的权限
	rbac.SetParent(RoleOwner, RoleViewer)
	return &RBACSrv{
		rbac: rbac,
	}
}

type RBACSrv struct {
	rbac *gorbac.RBAC
}

// CheckPermission 检查角色是否有某权限
func (a *RBACSrv) CheckPermission(roleID, permissionID string) bool {
	return a.rbac.IsGranted(roleID, gorbac.NewStdPermission(permissionID), nil)
}

type RoleObject interface {
	GetUser() (string, error)
}

type staticRoler struct {
	userID string
}

func (s *staticRoler) GetUser() (string, error) {
	return s.userID, nil
}

// NewStaticRoler describes a resource owned by userID.
func NewStaticRoler(userID string) RoleObject {
	return &staticRoler{
		userID: userID,
	}
}

type RoleUser interface {
	GetUser() string
}

// RoleOf returns the role user holds on obj: the owner of a resource gets
// RoleOwner, anybody else RoleViewer.
func (a *RBACSrv) RoleOf(user RoleUser, obj RoleObject) (string, error) {
	resourceUser, err := obj.GetUser()
	if err != nil {
		return "", err
	}
	if user.GetUser() != "" && user.GetUser() == resourceUser {
		return RoleOwner, nil
	}
	return RoleViewer, nil
}

func (a *RBACSrv) Check(user RoleUser, obj RoleObject, permissionID string) *errors.CustomizedError {
	role, err := a.RoleOf(user, obj)
	if err != nil {
		return errors.Trace("RBACSrv.Check", err)
	}
	if !a.CheckPermission(role, permissionID) {
		return errors.New("RBACSrv.Check.CheckPermission", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
	return nil
}
