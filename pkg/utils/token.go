package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID    string
	Email     string
	ExpiresAt *time.Time
}

// Expired reports whether the token carried an exp claim in the past.
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// DecodeClaims reads the claims of a bearer token without verifying its signature.
// The storefront never holds the signing key; the API remains the authority and the
// token is always forwarded verbatim. Use the result for display only.
func DecodeClaims(tokenString string) (*Claims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("token is not a JWT: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	claims := &Claims{}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.UserID = sub
	}
	if claims.UserID == "" {
		// Sanctum/Passport style tokens carry a numeric sub
		if sub, ok := mapClaims["sub"].(float64); ok {
			claims.UserID = fmt.Sprintf("%.0f", sub)
		}
	}
	claims.Email, _ = mapClaims["email"].(string)
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		claims.ExpiresAt = &t
	}
	return claims, nil
}
