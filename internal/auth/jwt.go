// Package auth issues and validates the HS256 access tokens that carry a
// requester's identity and group membership.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
)

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with group membership.
type accessClaims struct {
	jwt.RegisteredClaims
	GroupID    string `json:"group_id,omitempty"`
	GroupAdmin bool   `json:"group_admin,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the user ID as subject
// and group membership as custom claims.
func (m *JWTManager) GenerateAccessToken(requester domain.Requester) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   requester.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		GroupAdmin: requester.GroupAdmin,
	}
	if requester.GroupID != nil {
		claims.GroupID = requester.GroupID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// Returns the requester it identifies.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Requester, error) {
	if tokenString == "" {
		return domain.Requester{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return domain.Requester{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Requester{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return domain.Requester{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Requester{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	requester := domain.Requester{
		UserID:     userID,
		GroupAdmin: claims.GroupAdmin,
	}
	if claims.GroupID != "" {
		groupID, err := uuid.Parse(claims.GroupID)
		if err != nil {
			return domain.Requester{}, fmt.Errorf("invalid group_id UUID: %w", err)
		}
		requester.GroupID = &groupID
	}

	return requester, nil
}
