package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskpilot/config"
	"taskpilot/internal/middleware"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRouter(m middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func fire(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("Burst Then Throttle", func(t *testing.T) {
		// 60/min allows a burst of 6 before the bucket empties.
		m := middleware.New(noopLogger{}, config.RateLimitConfig{Enabled: true, PerMin: 60})
		r := newRouter(m)

		for i := 0; i < 6; i++ {
			if code := fire(r, "203.0.113.7:1234"); code != http.StatusOK {
				t.Fatalf("request %d got = %d, want 200", i+1, code)
			}
		}
		if code := fire(r, "203.0.113.7:1234"); code != http.StatusTooManyRequests {
			t.Errorf("burst overflow got = %d, want 429", code)
		}
	})

	t.Run("Disabled Passes Everything", func(t *testing.T) {
		m := middleware.New(noopLogger{}, config.RateLimitConfig{Enabled: false, PerMin: 1})
		r := newRouter(m)

		for i := 0; i < 20; i++ {
			if code := fire(r, "203.0.113.7:1234"); code != http.StatusOK {
				t.Fatalf("request %d got = %d, want 200", i+1, code)
			}
		}
	})

	t.Run("Distinct Clients Have Separate Buckets", func(t *testing.T) {
		m := middleware.New(noopLogger{}, config.RateLimitConfig{Enabled: true, PerMin: 60})
		r := newRouter(m)

		for i := 0; i < 7; i++ {
			fire(r, "203.0.113.7:1234")
		}
		if code := fire(r, "203.0.113.7:1234"); code != http.StatusTooManyRequests {
			t.Fatalf("exhausted client got = %d, want 429", code)
		}
		if code := fire(r, "198.51.100.9:1234"); code != http.StatusOK {
			t.Errorf("fresh client got = %d, want 200", code)
		}
	})
}
