package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 2)

	r := gin.New()
	r.POST("/login", rl.Limit(), func(c *gin.Context) {
		c.JSON(200, gin.H{})
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != 200 || codes[1] != 200 {
		t.Fatalf("first two requests should pass, got %v", codes)
	}
	if codes[2] != 429 {
		t.Fatalf("third request should be limited, got %v", codes)
	}
}

func TestRateLimiterTracksIPsSeparately(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 1)

	r := gin.New()
	r.POST("/login", rl.Limit(), func(c *gin.Context) {
		c.JSON(200, gin.H{})
	})

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(first, req)

	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(second, req)

	if first.Code != 200 || second.Code != 200 {
		t.Fatalf("different IPs should have independent buckets: %d, %d", first.Code, second.Code)
	}
}
