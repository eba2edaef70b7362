package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"spotQuest/pkg/config"

	"github.com/redis/go-redis/v9"
)

// session lookups are a single GET plus an optional EXPIRE per request, so a
// small pool covers the auth path.
const (
	connectTimeout = 5 * time.Second
	commandTimeout = 2 * time.Second
	sessionPool    = 8
)

func sessionOptions(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  connectTimeout,
		ReadTimeout:  commandTimeout,
		WriteTimeout: commandTimeout,
		PoolSize:     sessionPool,
		MinIdleConns: 1,
	}
}

// ConnectSessionStore opens the client used to validate session tokens and
// fails fast when the store is unreachable.
func ConnectSessionStore(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("session store is disabled")
	}

	client := redis.NewClient(sessionOptions(cfg))

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach session store at %s: %w", client.Options().Addr, err)
	}

	return client, nil
}

// CloseSessionStore is safe to call with a nil client.
func CloseSessionStore(client *redis.Client) error {
	if client == nil {
		return nil
	}

	return client.Close()
}
