package blacklist

import (
	"context"
	"sync"
	"time"

	"github.com/nebiyou-tadesse/go-user-service/internal/domain/contract"
)

// MemoryBlacklist is a process-local revocation registry. Each entry carries
// the expiry of the token it shadows; a background janitor evicts entries
// once the token itself would no longer verify, so the set stays bounded.
//
// Revocations do not survive a restart and are not visible to other
// instances; use RedisBlacklist when running more than one process.
type MemoryBlacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	done    chan struct{}
	once    sync.Once
}

var _ contract.ITokenBlacklist = (*MemoryBlacklist)(nil)

// NewMemoryBlacklist creates the registry and starts its janitor.
func NewMemoryBlacklist(sweepInterval time.Duration) *MemoryBlacklist {
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	b := &MemoryBlacklist{
		entries: make(map[string]time.Time),
		done:    make(chan struct{}),
	}
	go b.janitor(sweepInterval)
	return b
}

// Revoke inserts the token. Idempotent: revoking twice keeps the later expiry.
func (b *MemoryBlacklist) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if current, ok := b.entries[token]; !ok || expiresAt.After(current) {
		b.entries[token] = expiresAt
	}
	return nil
}

func (b *MemoryBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	b.mu.RLock()
	expiresAt, ok := b.entries[token]
	b.mu.RUnlock()
	if !ok {
		return false, nil
	}
	// An expired entry means the token is dead anyway; report not-revoked
	// and let the janitor reclaim it.
	return time.Now().Before(expiresAt), nil
}

// Close stops the janitor.
func (b *MemoryBlacklist) Close() {
	b.once.Do(func() { close(b.done) })
}

func (b *MemoryBlacklist) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-b.done:
			return
		case <-ticker.C:
			b.sweep(time.Now())
		}
	}
}

func (b *MemoryBlacklist) sweep(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for token, expiresAt := range b.entries {
		if now.After(expiresAt) {
			delete(b.entries, token)
		}
	}
}
