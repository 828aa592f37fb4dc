// Package auth issues and checks the session tokens handed out after a
// successful identity check.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the verified actor's display name. The identifier used to
// log in is a shared secret and is never put into a token.
type Claims struct {
	jwt.RegisteredClaims
	ActorName string `json:"actor"`
}

func GenerateToken(actorName string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		ActorName: actorName,
	})

	return token.SignedString(secretKey)
}

// GetActorFromToken validates tokenString and returns the actor name.
// Expired tokens yield common.ErrTokenExpired, anything else that fails
// validation yields common.ErrInvalidToken.
func GetActorFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.ActorName == "" {
		return "", common.ErrInvalidToken
	}

	return claims.ActorName, nil
}
