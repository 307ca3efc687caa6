package services

import (
	"RealEstateAPI/config/environment"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpirationTime bounds how long an issued identity token stays
// valid. There is no revocation list; expiry and the secret are the
// only controls.
const TokenExpirationTime = 30 * 24 * time.Hour

type TokenService struct {
	Secret []byte
}

// NewTokenService initializes TokenService with the configured secret
func NewTokenService() *TokenService {
	return &TokenService{
		Secret: []byte(environment.GetJWTSecret()),
	}
}

// Issue produces a signed token whose subject is the user id
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpirationTime)),
	})
	return claims.SignedString(s.Secret)
}

// Verify checks signature and expiry and returns the embedded user id
func (s *TokenService) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}
