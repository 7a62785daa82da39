package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hassankhsalar/boichai-api/internal/api/middlewares"
)

// A client pointed at a closed port makes every command fail, which is
// the outage path both limiters must survive by letting traffic pass.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestTokenBucket_FailsOpenOnRedisError(t *testing.T) {
	tb := middlewares.NewTokenBucket(deadRedis(), 5, 20, middlewares.PerIPKey("tb"))

	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	tb.Middleware(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("limiter outage must not block traffic, got %d", rec.Code)
	}
}

func TestSlidingWindow_FailsOpenOnRedisError(t *testing.T) {
	sw := middlewares.NewSlidingWindow(deadRedis(), 300, time.Minute, middlewares.PerIPKey("sw"))

	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	sw.Middleware(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("limiter outage must not block traffic, got %d", rec.Code)
	}
}

func TestPerIPKey(t *testing.T) {
	keyFn := middlewares.PerIPKey("tb")

	req := httptest.NewRequest("GET", "/books", nil)
	req.RemoteAddr = "203.0.113.9:4711"
	if got := keyFn(req); got != "tb:203.0.113.9" {
		t.Fatalf("unexpected key: %q", got)
	}

	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	if got := keyFn(req); got != "tb:198.51.100.7" {
		t.Fatalf("proxy header not honored: %q", got)
	}
}
