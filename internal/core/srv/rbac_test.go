package srv

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testUser string

func (u testUser) GetUser() string {
	return string(u)
}

func TestRBACPermissions(t *testing.T) {
	r := SetupRBACSrv()

	assert.True(t, r.CheckPermission(RoleOwner, PermissionEdit))
	assert.True(t, r.CheckPermission(RoleOwner, PermissionView))
	assert.True(t, r.CheckPermission(RoleViewer, PermissionView))
	assert.False(t, r.CheckPermission(RoleViewer, PermissionEdit))
}

func TestRBACCheck(t *testing.T) {
	r := SetupRBACSrv()
	profile := NewStaticRoler("u-1")

	assert.Nil(t, r.Check(testUser("u-1"), profile, PermissionEdit))
	assert.Nil(t, r.Check(testUser("u-2"), profile, PermissionView))

	err := r.Check(testUser("u-2"), profile, PermissionEdit)
	if assert.NotNil(t, err) {
		assert.Equal(t, http.StatusForbidden, err.HttpCode())
	}

	// anonymous visitors never own anything
	assert.NotNil(t, r.Check(testUser(""), NewStaticRoler(""), PermissionEdit))
}
