package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	tokens, err := RegisterUser("Amara", "amara@example.com", "passw0rd1", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// Password is stored hashed.
	user, err := FindUserByEmail("amara@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "passw0rd1", user.Password)

	_, err = AuthenticateUser("amara@example.com", "passw0rd1", time.Hour)
	assert.NoError(t, err)

	_, err = AuthenticateUser("amara@example.com", "wrong-password", time.Hour)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = AuthenticateUser("nobody@example.com", "passw0rd1", time.Hour)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := RegisterUser("Amara", "dup@example.com", "passw0rd1", time.Hour)
	require.NoError(t, err)

	_, err = RegisterUser("Another", "dup@example.com", "passw0rd2", time.Hour)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserDetailsLifecycle(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "details@example.com")

	_, err := GetUserDetails(user.ID)
	assert.ErrorIs(t, err, ErrDetailsNotFound)

	details := &models.UserDetail{Age: "28", Height: "165", Weight: "63", DietType: "Vegetarian"}
	require.NoError(t, CreateUserDetails(user.ID, details))

	err = CreateUserDetails(user.ID, &models.UserDetail{Age: "29"})
	assert.ErrorIs(t, err, ErrDetailsExist)

	fetched, err := GetUserDetails(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "28", fetched.Age)

	updated, err := UpdateUserDetails(user.ID, &models.UserDetail{Age: "29", Height: "165", Weight: "62", DietType: "Vegan"})
	require.NoError(t, err)
	assert.Equal(t, "29", updated.Age)
	assert.Equal(t, details.ID, updated.ID)

	fetched, err = GetUserDetails(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vegan", fetched.DietType)
}
