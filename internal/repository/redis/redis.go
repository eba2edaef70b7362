package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spotQuest/domain"

	"github.com/redis/go-redis/v9"
)

// SessionRepository reads the session lookup keys written by the account
// service at login ("token:lookup:{token}" -> user id).
type SessionRepository struct {
	client *redis.Client
	// sliding expiry applied on each successful validation, zero disables it
	idleTTL time.Duration
}

func NewSessionRepository(client *redis.Client, idleTTL time.Duration) *SessionRepository {
	return &SessionRepository{
		client:  client,
		idleTTL: idleTTL,
	}
}

func lookupKey(token string) string {
	return fmt.Sprintf("token:lookup:%s", token)
}

// ValidateToken returns the user id bound to token.
func (r *SessionRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, lookupKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.Errorf(domain.ErrUnauthorized, "session not found or expired")
		}
		return "", fmt.Errorf("failed to validate token: %w", err)
	}

	if r.idleTTL > 0 {
		if err := r.client.Expire(ctx, lookupKey(token), r.idleTTL).Err(); err != nil {
			return "", fmt.Errorf("failed to refresh session TTL: %w", err)
		}
	}

	return userID, nil
}
