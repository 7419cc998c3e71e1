package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRateLimitedRouter(rps float64, burst int) *gin.Engine {
	router := gin.New()
	router.Use(RateLimit(rps, burst))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func requestFrom(router http.Handler, remoteAddr string) int {
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_AllowsNormalTraffic(t *testing.T) {
	router := newRateLimitedRouter(10, 5)

	// The whole burst goes through.
	for i := 0; i < 5; i++ {
		if code := requestFrom(router, "192.0.2.1:1234"); code != http.StatusOK {
			t.Errorf("request %d: expected 200, got %d", i, code)
		}
	}
}

func TestRateLimit_RejectsExcessiveTraffic(t *testing.T) {
	router := newRateLimitedRouter(1, 2)

	got429 := false
	for i := 0; i < 5; i++ {
		if requestFrom(router, "192.0.2.1:1234") == http.StatusTooManyRequests {
			got429 = true
			break
		}
	}

	if !got429 {
		t.Error("expected at least one 429 response after exceeding burst")
	}
}

func TestRateLimit_PerClientIsolation(t *testing.T) {
	router := newRateLimitedRouter(1, 1)

	if code := requestFrom(router, "192.0.2.1:1234"); code != http.StatusOK {
		t.Errorf("client a first request: expected 200, got %d", code)
	}
	if code := requestFrom(router, "192.0.2.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("client a second request: expected 429, got %d", code)
	}
	// Separate bucket.
	if code := requestFrom(router, "192.0.2.2:1234"); code != http.StatusOK {
		t.Errorf("client b first request: expected 200, got %d", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	router := newRateLimitedRouter(0, 0)

	for i := 0; i < 20; i++ {
		if code := requestFrom(router, "192.0.2.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200 with limiting disabled, got %d", i, code)
		}
	}
}
