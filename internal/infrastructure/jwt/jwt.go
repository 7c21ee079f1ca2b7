package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nebiyou-tadesse/go-user-service/internal/domain/entity"
	"github.com/nebiyou-tadesse/go-user-service/internal/usecase"
)

// JWTManager issues and verifies HMAC-signed bearer tokens. The signing key
// is process-wide configuration, loaded once at startup.
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

// NewJWTManager creates a manager signing tokens with the given secret and
// a fixed expiry from issuance.
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), expiry: expiry}
}

var _ usecase.JWTService = (*JWTManager)(nil)

// GenerateAccessToken issues a signed token whose subject is the user ID.
func (m *JWTManager) GenerateAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken verifies signature and expiry. Malformed, badly signed and
// expired tokens all collapse to entity.ErrInvalidToken; the distinction is
// never surfaced to the client.
func (m *JWTManager) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, entity.ErrInvalidToken
	}
	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || registered.Subject == "" {
		return nil, entity.ErrInvalidToken
	}
	return &entity.Claims{
		UserID:           registered.Subject,
		RegisteredClaims: *registered,
	}, nil
}
