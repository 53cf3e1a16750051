package services

import (
	"testing"

	"github.com/Fayets/NutriFA/apperror"
	"github.com/Fayets/NutriFA/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("alice", "s3cret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)

	logged, err := svc.Login("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other")
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestRegisterUsernameIsCaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register("Alice", "s3cret")
	require.NoError(t, err)
}

func TestRegisterEmptyInput(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("", "s3cret")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = svc.Register("alice", "")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("alice", "s3cret")
	require.NoError(t, err)

	_, missingErr := svc.Login("nobody", "whatever")
	assert.ErrorIs(t, missingErr, apperror.ErrUnauthenticated)

	_, badPwErr := svc.Login("alice", "wrong")
	assert.ErrorIs(t, badPwErr, apperror.ErrUnauthenticated)

	assert.Equal(t, missingErr.Error(), badPwErr.Error())
}

func TestPasswordIsStoredHashed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("alice", "s3cret")
	require.NoError(t, err)

	stored, err := getUser(db, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("s3cret", stored.PasswordHash))
}

func TestGetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.GetByID(42)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
