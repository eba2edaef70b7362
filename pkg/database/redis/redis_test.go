package redis

import (
	"context"
	"testing"

	"spotQuest/pkg/config"

	"github.com/alicebob/miniredis/v2"
)

func TestConnectSessionStore(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := ConnectSessionStore(context.Background(), config.RedisConfig{
		Enabled:   true,
		RedisHost: mr.Host(),
		RedisPort: mr.Port(),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer CloseSessionStore(client)

	if got := client.Options().Addr; got != mr.Addr() {
		t.Fatalf("addr: want=%s got=%s", mr.Addr(), got)
	}
	if got := client.Options().PoolSize; got != sessionPool {
		t.Fatalf("pool size: want=%d got=%d", sessionPool, got)
	}
}

func TestConnectSessionStoreUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	client, err := ConnectSessionStore(context.Background(), config.RedisConfig{
		Enabled:   true,
		RedisHost: host,
		RedisPort: port,
	})
	if err == nil {
		t.Fatalf("expected error for a closed server")
	}
	if client != nil {
		t.Fatalf("expected nil client on failure")
	}
}

func TestConnectSessionStoreDisabled(t *testing.T) {
	if _, err := ConnectSessionStore(context.Background(), config.RedisConfig{}); err == nil {
		t.Fatalf("expected error when disabled")
	}
}

func TestCloseSessionStoreNil(t *testing.T) {
	if err := CloseSessionStore(nil); err != nil {
		t.Fatalf("close nil: %v", err)
	}
}
