package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"routeplanner/internal/models/request_models"
	"routeplanner/pkg/utils"
)

func TestAccountRegisterLoginProfile(t *testing.T) {
	repo := newFakeAccountRepo()
	jwt := utils.NewJWTManager("test-secret", time.Hour)
	svc := NewAccountService(repo, jwt, zap.NewNop())
	ctx := context.Background()

	err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: " 小李 ", Email: "Li@Example.com", Password: "secret1",
	})
	require.NoError(t, err)

	err = svc.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "other", Email: "li@example.com", Password: "secret2",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "li@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	token, err := svc.Login(ctx, request_models.LoginRequest{Email: "LI@example.com", Password: "secret1"})
	require.NoError(t, err)

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Role)

	profile, err := svc.GetProfile(ctx, claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "小李", profile.Name)
	assert.Equal(t, "li@example.com", profile.Email)

	_, err = svc.GetProfile(ctx, "garbage")
	assert.ErrorIs(t, err, utils.ErrUnauthorized)
}
