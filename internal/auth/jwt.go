package auth

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Operator tokens are bearer credentials for the ingest and admin routes.
// Lifetime comes from JWT_TTL_HOURS, defaulting to a day.
const defaultTokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

func tokenTTL() time.Duration {
	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultTokenTTL
}

// GenerateToken signs a token carrying the operator's identity and role.
// Only the two known roles are ever minted.
func GenerateToken(userID, email, role string) (string, error) {
	if userID == "" {
		return "", errors.New("empty userID passed to GenerateToken")
	}
	if role != RoleOperator && role != RoleAdmin {
		return "", fmt.Errorf("unknown role %q", role)
	}

	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"userID": userID,
		"email":  email,
		"role":   role,
		"iat":    now.Unix(),
		"exp":    now.Add(tokenTTL()).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken checks signature and expiry and returns the identity claims.
// A token whose role claim is not one of ours is rejected outright, so a
// stale token minted before a role rename cannot reach RequireRole.
func ValidateToken(tokenString string) (userID, email, role string, err error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", "", "", err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", "", ErrInvalidToken
	}

	userID, _ = claims["userID"].(string)
	email, _ = claims["email"].(string)
	role, _ = claims["role"].(string)

	if userID == "" || (role != RoleOperator && role != RoleAdmin) {
		return "", "", "", ErrInvalidToken
	}
	return userID, email, role, nil
}
