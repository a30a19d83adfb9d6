package jwt_tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pasoapp/paso/utils"
)

const (
	AccessTokenTTL  = 1 * time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// GenerateAccessToken issues a short-lived access token for an owner.
func GenerateAccessToken(ownerID uuid.UUID, tokenVersion int) (string, error) {
	claims := jwt.MapClaims{
		"sub":           ownerID.String(),
		"token_version": tokenVersion,
		"iat":           time.Now().Unix(),
		"exp":           time.Now().Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(utils.GetJWTSecret())
}

// GenerateRefreshToken issues a long-lived refresh token for an owner.
func GenerateRefreshToken(ownerID uuid.UUID, tokenVersion int) (string, error) {
	claims := jwt.MapClaims{
		"sub":           ownerID.String(),
		"token_version": tokenVersion,
		"iat":           time.Now().Unix(),
		"exp":           time.Now().Add(RefreshTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(utils.GetJWTRefreshSecret())
}

// ParseToken validates a signed token against the given secret and returns
// its claims.
func ParseToken(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
