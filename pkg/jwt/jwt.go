package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("jwt: invalid token")
	ErrMissingSecret    = errors.New("jwt: secret is not configured")
	ErrInvalidTokenType = errors.New("jwt: unexpected token type")
)

const (
	TokenTypeAccess  = "access_token"
	TokenTypeRefresh = "refresh_token"
)

type Claims struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Level     string `json:"level"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type JWT struct {
	appName            string
	secretKey          string
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
}

func New(appName string, secretKey string, accessExpiry, refreshExpiry time.Duration) *JWT {
	return &JWT{
		appName:            appName,
		secretKey:          secretKey,
		accessTokenExpiry:  accessExpiry,
		refreshTokenExpiry: refreshExpiry,
	}
}

func (j *JWT) AccessTokenExpiry() time.Duration {
	return j.accessTokenExpiry
}

func (j *JWT) GenerateAccessToken(userID, email, level string) (string, error) {
	return j.generateToken(userID, email, level, j.accessTokenExpiry, TokenTypeAccess)
}

func (j *JWT) GenerateRefreshToken(userID, email, level string) (string, error) {
	return j.generateToken(userID, email, level, j.refreshTokenExpiry, TokenTypeRefresh)
}

func (j *JWT) ValidateToken(tokenString string) (*Claims, error) {
	if j.secretKey == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func (j *JWT) generateToken(userID, email, level string, expiry time.Duration, tokenType string) (string, error) {
	if j.secretKey == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := &Claims{
		ID:        userID,
		Email:     email,
		Level:     level,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.appName,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signedString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}

	return signedString, nil
}
