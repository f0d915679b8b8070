package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/internal/domains/auth/dto"
	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/jwt"
	log "github.com/savioruz/culturepay/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const adminPassword = "password123"

func newTestService(t *testing.T, admin config.Admin) (AuthService, *jwt.JWT, *log.MockInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLogger := log.NewMockInterface(ctrl)
	j := jwt.New("test-app", "test-secret-key", time.Hour, 24*time.Hour)

	return New(&config.Config{Admin: admin}, j, mockLogger), j, mockLogger
}

func configuredAdmin(t *testing.T) config.Admin {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return config.Admin{Email: "admin@example.com", PasswordHash: string(hash)}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	admin := configuredAdmin(t)

	t.Run("error: no admin configured", func(t *testing.T) {
		service, _, mockLogger := newTestService(t, config.Admin{})
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		res, err := service.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: adminPassword})

		assert.Nil(t, res)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: unknown email", func(t *testing.T) {
		service, _, mockLogger := newTestService(t, admin)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := service.Login(ctx, dto.LoginRequest{Email: "someone@example.com", Password: adminPassword})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: wrong password", func(t *testing.T) {
		service, _, mockLogger := newTestService(t, admin)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := service.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "wrongpassword"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("success: admin tokens", func(t *testing.T) {
		service, j, _ := newTestService(t, admin)

		res, err := service.Login(ctx, dto.LoginRequest{Email: "Admin@Example.com", Password: adminPassword})
		require.NoError(t, err)

		assert.Equal(t, int64(3600), res.ExpiresIn)

		claims, err := j.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, constant.UserRoleAdmin, claims.Level)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	admin := configuredAdmin(t)

	t.Run("success: refresh token exchanged", func(t *testing.T) {
		service, j, _ := newTestService(t, admin)

		refresh, err := j.GenerateRefreshToken("admin", admin.Email, constant.UserRoleAdmin)
		require.NoError(t, err)

		res, err := service.Refresh(ctx, dto.RefreshRequest{RefreshToken: refresh})
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("error: access token is not a refresh token", func(t *testing.T) {
		service, j, mockLogger := newTestService(t, admin)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		access, err := j.GenerateAccessToken("admin", admin.Email, constant.UserRoleAdmin)
		require.NoError(t, err)

		_, err = service.Refresh(ctx, dto.RefreshRequest{RefreshToken: access})
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: garbage token", func(t *testing.T) {
		service, _, mockLogger := newTestService(t, admin)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := service.Refresh(ctx, dto.RefreshRequest{RefreshToken: "not-a-token"})
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
