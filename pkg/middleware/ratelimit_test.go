package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func serveFrom(h http.Handler, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil)
	req.RemoteAddr = ip + ":5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := RateLimit(ctx, RateLimitConfig{RPS: 0.001, Burst: 2}, discardLogger())(okHandler())

	assert.Equal(t, http.StatusOK, serveFrom(h, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, serveFrom(h, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, serveFrom(h, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, serveFrom(h, "10.0.0.2"), "buckets are per client")
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	h := RateLimit(context.Background(), RateLimitConfig{}, discardLogger())(okHandler())

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, serveFrom(h, "10.0.0.1"))
	}
}

func TestRateLimit_RejectionUsesEnvelope(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := RateLimit(ctx, RateLimitConfig{RPS: 0.001, Burst: 1}, discardLogger())(okHandler())
	serveFrom(h, "10.0.0.9")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:1"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":{"code":"RATE_LIMITED","message":"too many requests"}}`, rec.Body.String())
}

func TestVisitorStore_EvictStale(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newVisitorStore(1, 1, time.Minute)
	s.now = func() time.Time { return now }

	s.get("a")
	now = now.Add(30 * time.Second)
	s.get("b")
	now = now.Add(45 * time.Second)
	s.evictStale()

	assert.Equal(t, 1, s.size())
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.1:80", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "10.0.0.1:80", "198.51.100.2"},
		{"garbage header", map[string]string{"X-Forwarded-For": "nope"}, "192.0.2.1:80", "192.0.2.1"},
		{"remote addr", nil, "192.0.2.1:80", "192.0.2.1"},
		{"ipv6", nil, "[::1]:80", "::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
