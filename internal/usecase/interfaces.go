package usecase

import "github.com/nebiyou-tadesse/go-user-service/internal/domain/entity"

// JWTService defines the interface for bearer-token operations. Every
// verification failure (malformed, bad signature, expired) surfaces as
// entity.ErrInvalidToken.
type JWTService interface {
	GenerateAccessToken(userID string) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
