package blacklist

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nebiyou-tadesse/go-user-service/internal/domain/contract"
)

// RedisBlacklist is a revocation registry shared across instances. Entries
// are plain keys with a TTL matching the token's remaining lifetime, so Redis
// evicts them exactly when the token would stop verifying anyway.
type RedisBlacklist struct {
	rdb *redis.Client
}

var _ contract.ITokenBlacklist = (*RedisBlacklist)(nil)

func NewRedisBlacklist(rdb *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{rdb: rdb}
}

func revokedKey(token string) string { return fmt.Sprintf("auth:revoked:%s", token) }

func (b *RedisBlacklist) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Token already expired; nothing to record.
		return nil
	}
	return b.rdb.Set(ctx, revokedKey(token), "1", ttl).Err()
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.rdb.Exists(ctx, revokedKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
