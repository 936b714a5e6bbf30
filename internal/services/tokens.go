package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps a denylist of revoked JWTs in Redis so that logout
// actually invalidates the presented token. Entries expire with the
// token itself.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(redisURL string) (*TokenStore, error) {
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &TokenStore{client: client}, nil
}

func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:revoked:" + hex.EncodeToString(sum[:])
}

// Revoke denylists a token for the given lifetime.
func (s *TokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return s.client.Set(ctx, revokedKey(token), "1", ttl).Err()
}

// IsRevoked reports whether a token has been denylisted. Lookup errors
// are treated as not revoked so an unavailable Redis cannot lock every
// staff member out.
func (s *TokenStore) IsRevoked(ctx context.Context, token string) bool {
	result, err := s.client.Get(ctx, revokedKey(token)).Result()
	if err != nil {
		return false
	}
	return result == "1"
}
