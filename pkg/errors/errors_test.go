package errors

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomizedError(t *testing.T) {
	err := New("ProfileLogic.GetProfile", "error.internal", sql.ErrConnDone).Code(http.StatusServiceUnavailable)

	assert.Equal(t, http.StatusServiceUnavailable, err.HttpCode())
	assert.Equal(t, "error.internal", err.Message())
	assert.True(t, Is(err, sql.ErrConnDone))
	assert.Contains(t, err.Error(), "ProfileLogic.GetProfile")
}

func TestTrace(t *testing.T) {
	inner := New("ProfileStore.Get", "error.notfound", nil).Code(http.StatusNotFound)

	traced := Trace("ProfileLogic", inner)
	assert.Equal(t, "ProfileLogic.ProfileStore.Get", traced.Scope())
	assert.Equal(t, http.StatusNotFound, traced.HttpCode())

	plain := Trace("ProfileLogic", sql.ErrNoRows)
	assert.Equal(t, "error.internal", plain.Message())
	assert.True(t, Is(plain, sql.ErrNoRows))

	assert.Nil(t, Trace("ProfileLogic", nil))
}
