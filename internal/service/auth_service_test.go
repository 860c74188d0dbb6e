package service

import (
	"context"
	"testing"
	"time"

	"bakeapi/internal/model"
	"bakeapi/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLoginUser(t *testing.T, repo *fakeUserRepo, email, password string) *model.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestAuthService_Login(t *testing.T) {
	userRepo := newFakeUserRepo()
	jwtUtil := utils.NewJWTUtil("secret", 24)
	svc := NewAuthService(userRepo, jwtUtil)

	user := seedLoginUser(t, userRepo, "user@test.com", "user")

	token, err := svc.Login(context.Background(), "user@test.com", "user")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// The token must decode to the user's identity with a ~24h expiry
	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, utils.NewJWTUtil("secret", 24))

	seedLoginUser(t, userRepo, "user@test.com", "user")

	_, err := svc.Login(context.Background(), "missing@test.com", "user")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, utils.NewJWTUtil("secret", 24))

	seedLoginUser(t, userRepo, "user@test.com", "user")

	_, err := svc.Login(context.Background(), "user@test.com", "wrong")

	// Known email with a bad password must not look like an unknown email
	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}
