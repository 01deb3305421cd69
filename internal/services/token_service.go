package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bioskop/internal/models"

	"github.com/dgrijalva/jwt-go"
)

// BearerScheme is the fixed prefix carried in the Authorization header,
// separated from the token by a single space: "JWT <token>".
const BearerScheme = "JWT"

// Token failure kinds. Externally they all collapse to a 401; internally
// they stay distinguishable for logs and tests.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// TokenService issues and validates signed bearer tokens. Tokens are HS256
// JWTs carrying user identity, issue time, and a 1-hour expiry; they are
// never persisted and there is no revocation.
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		tokenTTL: time.Hour,
	}
}

// Issue signs a token for the user. The signature covers the full claim set,
// so tampering with any claim invalidates the token.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Validate parses the raw token string and returns its claims, or one of the
// three token failure kinds.
func (s *TokenService) Validate(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			switch {
			case ve.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, ErrTokenMalformed
			case ve.Errors&jwt.ValidationErrorExpired != 0:
				return nil, ErrTokenExpired
			case ve.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
				return nil, ErrTokenSignature
			}
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

// StripScheme removes the bearer scheme prefix from an Authorization header
// value, exactly once. A missing or wrong prefix is a malformed credential,
// never a pass-through.
func StripScheme(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != BearerScheme || parts[1] == "" {
		return "", ErrTokenMalformed
	}
	return parts[1], nil
}
