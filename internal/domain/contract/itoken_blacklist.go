package contract

import (
	"context"
	"time"
)

// ITokenBlacklist records bearer tokens that must be rejected even though
// they are still cryptographically valid (post-logout). Entries expire
// together with the token itself, so the registry stays bounded.
type ITokenBlacklist interface {
	// Revoke inserts a token. Revoking the same token twice is not an error.
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
