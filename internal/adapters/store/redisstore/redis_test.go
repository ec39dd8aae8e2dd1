package redisstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/redisstore"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// TestStore runs against a live server when REDIS_ADDR is set. Every subtest
// uses its own key prefix, removed on cleanup.
func TestStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	storetest.Run(t, func(t *testing.T) ports.ListRepository {
		t.Helper()
		ctx := context.Background()

		prefix := "todo-test-" + uuid.NewString()
		s, err := redisstore.Open(ctx, config.RedisConfig{Addr: addr, KeyPrefix: prefix})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		t.Cleanup(func() {
			cleanup(t, addr, prefix)
			_ = s.Close()
		})
		return s
	})
}

func TestOpen_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := redisstore.Open(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1", KeyPrefix: "x"})
	if err == nil {
		t.Fatal("Open() against a closed port returned nil error")
	}
}

func cleanup(t *testing.T, addr, prefix string) {
	t.Helper()
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	iter := rdb.Scan(ctx, 0, prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		rdb.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		t.Errorf("scanning %s keys: %v", prefix, err)
	}
}
