package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"spotQuest/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newSessionStore(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestValidateTokenHit(t *testing.T) {
	mr, client := newSessionStore(t)
	repo := NewSessionRepository(client, time.Hour)

	key := lookupKey("abc")
	if err := mr.Set(key, "42"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	mr.SetTTL(key, time.Minute)

	userID, err := repo.ValidateToken(context.Background(), "abc")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != "42" {
		t.Fatalf("user id: want=42 got=%s", userID)
	}
	if got := mr.TTL(key); got != time.Hour {
		t.Fatalf("ttl after hit: want=%s got=%s", time.Hour, got)
	}
}

func TestValidateTokenMiss(t *testing.T) {
	_, client := newSessionStore(t)
	repo := NewSessionRepository(client, time.Hour)

	userID, err := repo.ValidateToken(context.Background(), "missing")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got=%v", err)
	}
	if userID != "" {
		t.Fatalf("user id: want empty got=%s", userID)
	}
}

func TestValidateTokenWithoutSlidingExpiry(t *testing.T) {
	mr, client := newSessionStore(t)
	repo := NewSessionRepository(client, 0)

	key := lookupKey("abc")
	if err := mr.Set(key, "42"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	mr.SetTTL(key, time.Minute)

	if _, err := repo.ValidateToken(context.Background(), "abc"); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := mr.TTL(key); got != time.Minute {
		t.Fatalf("ttl should be untouched: want=%s got=%s", time.Minute, got)
	}
}

func TestValidateTokenStoreDown(t *testing.T) {
	mr, client := newSessionStore(t)
	repo := NewSessionRepository(client, time.Hour)
	mr.Close()

	_, err := repo.ValidateToken(context.Background(), "abc")
	if err == nil {
		t.Fatalf("expected error when the store is down")
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("transport failure must not read as unauthorized: %v", err)
	}
}
