package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(requestsPerInterval int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(requestsPerInterval, 1).RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func pingFrom(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitBlocksAboveRate(t *testing.T) {
	r := limitedRouter(2)

	assert.Equal(t, http.StatusOK, pingFrom(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, pingFrom(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, pingFrom(r, "10.0.0.1").Code)
}

func TestRateLimitPerIP(t *testing.T) {
	r := limitedRouter(1)

	assert.Equal(t, http.StatusOK, pingFrom(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, pingFrom(r, "10.0.0.1").Code)

	// Another client is not affected by the first one's burst
	assert.Equal(t, http.StatusOK, pingFrom(r, "10.0.0.2").Code)
}
