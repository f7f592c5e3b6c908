package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/write", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func doWrite(router *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/write", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRateLimiter_Stores(t *testing.T) {
	redisStore, _ := newRedisStore(t)

	stores := map[string]RateLimitStore{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			router := newRouter(NewRateLimiterWithConfig(store, 3, time.Minute))

			for i := 0; i < 3; i++ {
				if code := doWrite(router, "10.0.0.1:1234"); code != http.StatusNoContent {
					t.Fatalf("request %d: expected 204, got %d", i+1, code)
				}
			}
			if code := doWrite(router, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
				t.Errorf("expected 429 after limit, got %d", code)
			}
			if code := doWrite(router, "10.0.0.2:1234"); code != http.StatusNoContent {
				t.Errorf("expected other clients to be unaffected, got %d", code)
			}
		})
	}
}

func TestMemoryStore_WindowResets(t *testing.T) {
	store := NewMemoryStore()
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	for i := 0; i < 2; i++ {
		if _, err := store.Increment(context.Background(), "k", time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	current = current.Add(2 * time.Minute)
	hits, err := store.Increment(context.Background(), "k", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 1 {
		t.Errorf("expected counter to restart after the window, got %d", hits)
	}
}

func TestMemoryStore_EvictsExpiredKeys(t *testing.T) {
	store := NewMemoryStore()
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if _, err := store.Increment(ctx, key, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(store.entries) != 3 {
		t.Fatalf("expected 3 tracked keys, got %d", len(store.entries))
	}

	current = current.Add(2 * time.Minute)
	if _, err := store.Increment(ctx, "d", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.entries) != 1 {
		t.Errorf("expected only the fresh key to remain, got %d", len(store.entries))
	}
	if _, ok := store.entries["d"]; !ok {
		t.Error("expected key d to be tracked")
	}
}

func TestRedisStore_WindowExpires(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := store.Increment(ctx, "k", time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ttl := mr.TTL("k"); ttl <= 0 || ttl > time.Minute {
		t.Errorf("expected TTL within the window, got %s", ttl)
	}

	mr.FastForward(time.Minute + time.Second)

	hits, err := store.Increment(ctx, "k", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 1 {
		t.Errorf("expected counter to restart after expiry, got %d", hits)
	}
}

type failingStore struct{}

func (failingStore) Increment(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	router := newRouter(NewRateLimiterWithConfig(failingStore{}, 1, time.Minute))

	for i := 0; i < 3; i++ {
		if code := doWrite(router, "10.0.0.1:1234"); code != http.StatusNoContent {
			t.Errorf("request %d: expected 204 when store fails, got %d", i+1, code)
		}
	}
}
