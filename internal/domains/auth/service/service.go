package service

import (
	"context"
	"strings"

	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/internal/domains/auth/dto"
	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/jwt"
	"github.com/savioruz/culturepay/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock github.com/savioruz/culturepay/internal/domains/auth/service AuthService

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error)
}

// adminID is the subject of every token issued for the configured operator.
const adminID = "admin"

type authService struct {
	admin  config.Admin
	jwt    *jwt.JWT
	logger logger.Interface
}

func New(cfg *config.Config, j *jwt.JWT, l logger.Interface) AuthService {
	return &authService{
		admin:  cfg.Admin,
		jwt:    j,
		logger: l,
	}
}

const (
	identifier = "service - auth - %s"
)

func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.admin.Email == "" || s.admin.PasswordHash == "" {
		s.logger.Error(identifier, "Login - no admin configured")

		return nil, failure.Unauthorized("unauthorized")
	}

	if !strings.EqualFold(strings.TrimSpace(req.Email), s.admin.Email) {
		s.logger.Error(identifier, "Login - unknown email")

		return nil, failure.Unauthorized("unauthorized")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Error(identifier, "Login - password mismatch")

		return nil, failure.Unauthorized("unauthorized")
	}

	return s.issue(s.admin.Email)
}

func (s *authService) Refresh(_ context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims, err := s.jwt.ValidateToken(req.RefreshToken)
	if err != nil {
		s.logger.Error(identifier, "Refresh - invalid token: "+err.Error())

		return nil, failure.Unauthorized("invalid refresh token")
	}

	if claims.TokenType != jwt.TokenTypeRefresh || claims.Level != constant.UserRoleAdmin {
		s.logger.Error(identifier, "Refresh - "+jwt.ErrInvalidTokenType.Error())

		return nil, failure.Unauthorized("invalid refresh token")
	}

	return s.issue(claims.Email)
}

func (s *authService) issue(email string) (*dto.LoginResponse, error) {
	accessToken, err := s.jwt.GenerateAccessToken(adminID, email, constant.UserRoleAdmin)
	if err != nil {
		s.logger.Error(identifier, "issue - failed to generate access token: "+err.Error())

		return nil, failure.InternalError(err)
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(adminID, email, constant.UserRoleAdmin)
	if err != nil {
		s.logger.Error(identifier, "issue - failed to generate refresh token: "+err.Error())

		return nil, failure.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwt.AccessTokenExpiry().Seconds()),
	}, nil
}
