package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/biztime"
)

// Claims carries the actor identity inside the bearer token. The role is
// embedded so role changes take effect on the next issued token; the auth
// middleware re-reads the user record for immediate effect on mutations.
type Claims struct {
	UserID uint       `json:"user_id"`
	Role   actor.Role `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate issues a signed access token for the actor.
func (s *JWTService) Generate(a actor.Actor) (string, error) {
	now := biztime.NowUTC()
	claims := &Claims{
		UserID: a.ID,
		Role:   a.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.accessExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning the embedded actor.
func (s *JWTService) Validate(tokenString string) (actor.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return actor.Actor{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return actor.Actor{}, fmt.Errorf("invalid token claims")
	}
	if !claims.Role.IsValid() {
		return actor.Actor{}, fmt.Errorf("invalid role in token: %s", claims.Role)
	}

	return actor.Actor{ID: claims.UserID, Role: claims.Role}, nil
}
