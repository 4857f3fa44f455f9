package ratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, time.Hour)

	if !rl.Allow() {
		t.Error("first call must be allowed")
	}
	if !rl.Allow() {
		t.Error("second call must be allowed")
	}
	if rl.Allow() {
		t.Error("third call must be rejected")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 50*time.Millisecond)

	if !rl.Allow() {
		t.Error("first call must be allowed")
	}
	if rl.Allow() {
		t.Error("second call in the same window must be rejected")
	}

	time.Sleep(60 * time.Millisecond)

	if !rl.Allow() {
		t.Error("call in a fresh window must be allowed")
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, time.Hour)
	router := gin.New()
	router.POST("/submit", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		router.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(); code != http.StatusOK {
		t.Errorf("expected 200 for first request, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 for second request, got %d", code)
	}
}
