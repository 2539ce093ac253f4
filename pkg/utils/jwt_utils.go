package utils

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "vendor-hub-backend"

// DefaultTokenTTL applies until ConfigureJWT is called with a positive TTL.
const DefaultTokenTTL = 12 * time.Hour

var (
	jwtMu        sync.RWMutex
	jwtSecretKey = []byte("change-me-vendor-hub-secret")
	jwtTokenTTL  = DefaultTokenTTL
)

// Claims defines the JWT claims structure
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ConfigureJWT sets the signing secret and token lifetime used by
// GenerateAccessToken and ValidateToken.
func ConfigureJWT(secret string, ttl time.Duration) error {
	if secret == "" {
		return errors.New("jwt secret must not be empty")
	}
	jwtMu.Lock()
	defer jwtMu.Unlock()
	jwtSecretKey = []byte(secret)
	if ttl > 0 {
		jwtTokenTTL = ttl
	}
	return nil
}

// GenerateAccessToken creates a signed access token for username and role.
// It returns the token and its expiry.
func GenerateAccessToken(username, role string) (string, time.Time, error) {
	jwtMu.RLock()
	secret, ttl := jwtSecretKey, jwtTokenTTL
	jwtMu.RUnlock()

	now := time.Now()
	expirationTime := now.Add(ttl)
	claims := &Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return tokenString, expirationTime, nil
}

// ValidateToken parses and validates a JWT token string.
// It returns the claims if the token is valid, otherwise an error.
func ValidateToken(tokenString string) (*Claims, error) {
	jwtMu.RLock()
	secret := jwtSecretKey
	jwtMu.RUnlock()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
