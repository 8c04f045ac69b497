package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestService(t *testing.T) *Service {
	t.Helper()

	secret, err := GenerateSalt()
	require.NoError(t, err)

	service := NewService(secret, time.Hour)
	require.NoError(t, service.AddUser("admin", "admin", true))
	require.NoError(t, service.AddUser("user1", "user1", false))

	return service
}

func TestLoginSuccess(t *testing.T) {
	service := createTestService(t)

	token, user, err := service.Login("admin", "admin")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, user.IsAdmin)
	assert.NotEmpty(t, user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	service := createTestService(t)

	_, _, err := service.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	service := createTestService(t)

	_, _, err := service.Login("nobody", "admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateSession(t *testing.T) {
	service := createTestService(t)

	token, user, err := service.Login("user1", "user1")
	require.NoError(t, err)

	claims, err := service.ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "user1", claims.Username)
	assert.False(t, claims.IsAdmin)
}

func TestValidateSession_GarbageToken(t *testing.T) {
	service := createTestService(t)

	_, err := service.ValidateSession("not.a.token")
	assert.Error(t, err)
}

func TestValidateSession_WrongSecret(t *testing.T) {
	service := createTestService(t)
	other := createTestService(t)

	token, _, err := service.Login("admin", "admin")
	require.NoError(t, err)

	_, err = other.ValidateSession(token)
	assert.Error(t, err)
}

func TestAddUser_RejectsBadCredentials(t *testing.T) {
	secret, err := GenerateSalt()
	require.NoError(t, err)
	service := NewService(secret, time.Hour)

	assert.Error(t, service.AddUser("ab", "password", false))
	assert.Error(t, service.AddUser("with space", "password", false))
	assert.Error(t, service.AddUser("valid_name", "abc", false))
}

func TestDeriveCredentialKey_Deterministic(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	first, err := DeriveCredentialKey("admin", "admin", salt)
	require.NoError(t, err)
	second, err := DeriveCredentialKey("admin", "admin", salt)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	otherSalt, err := GenerateSalt()
	require.NoError(t, err)
	third, err := DeriveCredentialKey("admin", "admin", otherSalt)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}
