// Package auth provides functionality for generating and parsing JSON Web Tokens (JWT)
// for user authentication. It defines custom claims, token generation, and validation logic.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pustakdhaan/internal/config"
	"pustakdhaan/internal/models"
)

// secretKey is the key used to sign the JWT.
var secretKey = []byte(config.JWTSecret)

// ErrInvalidClaims is returned for a correctly signed token that does not carry a usable identity.
var ErrInvalidClaims = errors.New("auth: token carries no valid identity")

// Claims represents the custom JWT claims that carry the caller's identity.
// It embeds jwt.RegisteredClaims for standard fields like expiration time.
type Claims struct {
	UserID uuid.UUID   `json:"userId"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a new JWT token for the given identity.
// It sets the expiration time based on config.TokenTTL.
func GenerateToken(identity models.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.TokenTTL)),
			Subject:   identity.UserID.String(),
		},
		UserID: identity.UserID,
		Role:   identity.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ParseToken validates the provided JWT token string and parses its claims.
// It returns the Claims if the token is valid, or an error otherwise.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if claims.UserID == uuid.Nil || !claims.Role.Valid() {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

// Identity returns the caller identity carried by the claims.
func (c *Claims) Identity() models.Identity {
	return models.Identity{UserID: c.UserID, Role: c.Role}
}
