package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 5) // 10 per minute, burst of 5
	defer rl.Stop()

	// First 5 requests should be allowed (burst)
	for i := 0; i < 5; i++ {
		if !rl.Allow("auth0|asha") {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	if rl.Allow("auth0|asha") {
		t.Error("Request 6 should be rate limited")
	}
}

func TestRateLimiter_DifferentUsers(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 3)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		if !rl.Allow("auth0|one") {
			t.Errorf("User one request %d should be allowed", i+1)
		}
	}

	if rl.Allow("auth0|one") {
		t.Error("User one should be rate limited")
	}

	for i := 0; i < 3; i++ {
		if !rl.Allow("auth0|two") {
			t.Errorf("User two request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_RemoveStale(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 1)
	defer rl.Stop()

	rl.Allow("auth0|idle")
	rl.removeStale(time.Now().Add(LimiterTTL + time.Second))

	rl.mu.RLock()
	defer rl.mu.RUnlock()
	if len(rl.limiters) != 0 {
		t.Errorf("Expected stale limiter to be removed, have %d", len(rl.limiters))
	}
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter()
	rl.Stop()
	rl.Stop()
}

func TestRateLimitMiddleware_LimitsPerUser(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(10, 2)
	defer rl.Stop()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}

	newContext := func(userID string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/extract", nil)
		ctx := context.WithValue(req.Context(), UserIDKey, userID)
		rec := httptest.NewRecorder()
		return e.NewContext(req.WithContext(ctx), rec), rec
	}

	for i := 0; i < 2; i++ {
		c, rec := newContext("auth0|asha")
		if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
			t.Fatalf("Request %d: Expected no error, got %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("Request %d: Expected status 200, got %d", i+1, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "10" {
			t.Errorf("Request %d: Expected X-RateLimit-Limit 10, got %q", i+1, rec.Header().Get("X-RateLimit-Limit"))
		}
	}

	c, rec := newContext("auth0|asha")
	if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}

	// Another user is unaffected
	c, rec = newContext("auth0|ravi")
	if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200 for another user, got %d", rec.Code)
	}
}

func TestRateLimitMiddleware_AnonymousKeyedByIP(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(10, 1)
	defer rl.Stop()

	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		if err := RateLimitMiddleware(rl)(handler)(e.NewContext(req, rec)); err != nil {
			t.Fatal(err)
		}
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("Expected [200 429], got %v", codes)
	}
}
