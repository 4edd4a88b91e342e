package auth

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/onetree-africa/core/internal/database"
	"github.com/onetree-africa/core/internal/middleware"
	"github.com/onetree-africa/core/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(db), db
}

func register(t *testing.T, svc *Service) {
	t.Helper()
	_, err := svc.Register(&RegisterDTO{Username: "admin", Password: "password123"})
	require.NoError(t, err)
}

func TestRegisterOnlyOnce(t *testing.T) {
	svc, _ := testService(t)

	assert.False(t, svc.IsRegistered())
	register(t, svc)
	assert.True(t, svc.IsRegistered())

	_, err := svc.Register(&RegisterDTO{Username: "second", Password: "password123"})
	assert.True(t, apperr.Is(err, apperr.ValidationFailed))
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, _ := testService(t)

	u, err := svc.Register(&RegisterDTO{Username: "admin", Password: "password123"})
	require.NoError(t, err)
	assert.NotEqual(t, "password123", u.Password)
	assert.Equal(t, "admin", u.Name)
}

func TestLoginIssuesWorkingToken(t *testing.T) {
	svc, db := testService(t)
	register(t, svc)

	token, u, err := svc.Login("admin", "password123", "127.0.0.1", "go-test")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotNil(t, u.LastLoginTime)
	assert.Equal(t, "127.0.0.1", u.LastLoginIP)

	claims, err := middleware.ValidateTokenClaims(db, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := testService(t)
	register(t, svc)

	_, _, err := svc.Login("admin", "wrong", "127.0.0.1", "go-test")
	assert.True(t, apperr.Is(err, apperr.NotAuthenticated))
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, db := testService(t)
	register(t, svc)

	token, u, err := svc.Login("admin", "password123", "127.0.0.1", "go-test")
	require.NoError(t, err)

	claims, err := middleware.ValidateTokenClaims(db, token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(u.ID, claims.SessionID))

	_, err = middleware.ValidateTokenClaims(db, token)
	assert.Error(t, err)

	// A second logout for the same session is a no-op.
	assert.NoError(t, svc.Logout(u.ID, claims.SessionID))
}
