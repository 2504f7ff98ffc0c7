// Package auth issues and verifies the bearer tokens that identify business
// owners on the management API. Tokens are HMAC-signed JWTs whose subject is
// the owner identifier; the sale submission and tracking endpoints stay
// public and never pass through this package.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"orderlink/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	bearerScheme = "Bearer"

	ownerIDContextKey = "ownerID"
)

var (
	ErrMalformedAuthHeader = errors.New("authorization header must be of form: Bearer <token>")
	ErrOwnerIDMissing      = errors.New("owner id is not present in request context")
)

// TokenManager signs and verifies owner tokens with a shared HMAC secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager.
// ttl bounds how long an issued token stays valid.
func NewTokenManager(secret string, ttl time.Duration) TokenManager {
	return TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token identifying the given owner.
func (m TokenManager) Issue(ownerID kernel.OwnerID) (string, error) {
	if err := ownerID.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   ownerID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("error while signing owner token: %w", err)
	}

	return signed, nil
}

// Parse verifies a token string and returns the owner it identifies.
func (m TokenManager) Parse(tokenString string) (kernel.OwnerID, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return kernel.OwnerID{}, fmt.Errorf("error while parsing owner token: %w", err)
	}
	if !token.Valid {
		return kernel.OwnerID{}, errors.New("owner token is invalid")
	}

	return kernel.NewOwnerID(claims.Subject)
}

// Middleware authenticates management API requests. Requests without a valid
// bearer token are rejected with 401 before reaching the handler.
func (m TokenManager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ownerID, err := m.ownerIDFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(ownerIDContextKey, ownerID)
			return next(c)
		}
	}
}

func (m TokenManager) ownerIDFromHeader(header string) (kernel.OwnerID, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != bearerScheme {
		return kernel.OwnerID{}, ErrMalformedAuthHeader
	}

	return m.Parse(parts[1])
}

// OwnerIDFromContext returns the authenticated owner of the current request.
// Only valid behind Middleware.
func OwnerIDFromContext(c echo.Context) (kernel.OwnerID, error) {
	ownerID, ok := c.Get(ownerIDContextKey).(kernel.OwnerID)
	if !ok {
		return kernel.OwnerID{}, ErrOwnerIDMissing
	}

	return ownerID, nil
}
