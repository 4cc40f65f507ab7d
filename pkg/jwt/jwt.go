package jwt

import (
	"errors"
	"fmt"
	"time"

	"bookshelf/internal/errs"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the validity window of every issued token.
const TokenTTL = time.Hour

var TimeNow = time.Now

var (
	ErrSecretNotConfigured error = errs.New(errs.KindConfiguration, "jwt secret is not configured")
	ErrTokenMissing        error = errs.New(errs.KindAuthentication, "authentication token is required")
	ErrTokenNotValid       error = errs.New(errs.KindInvalidToken, "token is not valid")
	ErrTokenExpired        error = errs.New(errs.KindInvalidToken, "token expired")
)

type TokenInfo struct {
	Username string
	Email    string
	UserID   string
}

type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	UserID   string `json:"_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

// Sign issues an HS256 token carrying the user's identity, valid for TokenTTL.
func (s *JWTService) Sign(data TokenInfo) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrSecretNotConfigured
	}

	now := TimeNow()
	claims := Claims{
		Username: data.Username,
		Email:    data.Email,
		UserID:   data.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   data.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Validate checks signature and expiration and returns the embedded claims.
func (s *JWTService) Validate(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}
	if len(s.secret) == 0 {
		return nil, ErrSecretNotConfigured
	}

	claims := &Claims{}
	jwtToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(TimeNow), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("jwt parse: %w", ErrTokenExpired)
		}
		return nil, fmt.Errorf("jwt parse: %w: %w", ErrTokenNotValid, err)
	}

	if !jwtToken.Valid || claims.UserID == "" {
		return nil, ErrTokenNotValid
	}

	return claims, nil
}

// ExpiresAt reads the expiration of a token without verifying its signature.
// Clients use it to decide whether a stored token is still worth sending.
func ExpiresAt(token string) (time.Time, error) {
	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse unverified: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrTokenNotValid
	}
	return claims.ExpiresAt.Time, nil
}
