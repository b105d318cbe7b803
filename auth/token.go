package auth

import (
	"chat-presence/domain"
	"chat-presence/errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "chat-presence"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies HS256 tokens with a server side secret.
type Tokens struct {
	key      []byte
	duration time.Duration
	now      func() time.Time
}

func NewTokens(secret string, duration time.Duration) *Tokens {
	return &Tokens{key: []byte(secret), duration: duration, now: time.Now}
}

// Generate creates a signed JWT for a specific user.
func (t *Tokens) Generate(userID domain.UserID) (string, error) {
	now := t.now()
	claims := &CustomClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// Verify parses and validates the signature and expiration of a JWT string,
// then returns the user it was issued for.
func (t *Tokens) Verify(tokenString string) (domain.UserID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return t.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return "", errors.ErrInvalidToken
	}

	userID, err := domain.ParseUserID(claims.UserID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}
	return userID, nil
}
