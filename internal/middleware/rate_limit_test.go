package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newRateLimitRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
	})
	r.Use(RateLimitByUser(rate.Limit(1), 2))
	r.POST("/generate", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimitByUserRejectsBeyondBurst(t *testing.T) {
	r := newRateLimitRouter(uuid.New().String())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitByUserTracksUsersSeparately(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	limited := RateLimitByUser(rate.Limit(1), 1)
	r.POST("/generate", func(c *gin.Context) {
		c.Set("user_id", c.GetHeader("X-Test-User"))
	}, limited, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	first := uuid.New().String()
	second := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	req.Header.Set("X-Test-User", first)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// first user sudah habis burst, user lain tetap lolos
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/generate", nil)
	req.Header.Set("X-Test-User", first)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/generate", nil)
	req.Header.Set("X-Test-User", second)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitByUserSkipsAnonymous(t *testing.T) {
	r := newRateLimitRouter("")

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
