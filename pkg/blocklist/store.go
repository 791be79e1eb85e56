// Package blocklist keeps per-user sets of muted senders and answers delivery-time checks.
package blocklist

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/umputun/huntmatch/pkg/domain"
)

// RedisStore keeps blocked ids in a redis set per user
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore makes a store on top of a connected redis client
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

// Add puts member into the set of user
func (s *RedisStore) Add(ctx context.Context, userID, member string) error {
	if err := s.client.SAdd(ctx, blocksKey(userID), member).Err(); err != nil {
		return fmt.Errorf("add block %s->%s: %w: %w", userID, member, domain.ErrUpstream, err)
	}
	return nil
}

// Remove deletes member from the set of user, missing member is not an error
func (s *RedisStore) Remove(ctx context.Context, userID, member string) error {
	if err := s.client.SRem(ctx, blocksKey(userID), member).Err(); err != nil {
		return fmt.Errorf("remove block %s->%s: %w: %w", userID, member, domain.ErrUpstream, err)
	}
	return nil
}

// IsMember checks if member is in the set of user
func (s *RedisStore) IsMember(ctx context.Context, userID, member string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, blocksKey(userID), member).Result()
	if err != nil {
		return false, fmt.Errorf("check block %s->%s: %w: %w", userID, member, domain.ErrUpstream, err)
	}
	return ok, nil
}

// Members returns all members of the set of user
func (s *RedisStore) Members(ctx context.Context, userID string) ([]string, error) {
	members, err := s.client.SMembers(ctx, blocksKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list blocks of %s: %w: %w", userID, domain.ErrUpstream, err)
	}
	return members, nil
}

func blocksKey(userID string) string {
	return "user:" + userID + ":blocks"
}
