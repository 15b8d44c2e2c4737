package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	mem "routeplanner/pkg/memcache"
	"routeplanner/pkg/utils"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwt := utils.NewJWTManager("secret", time.Hour)
	r := newEngine()
	r.GET("/me", JWTAuthMiddleware(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id")+"|"+c.GetString("role"))
	})

	userID := uuid.New()
	token, err := jwt.CreateToken(userID, "user")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String()+"|user", w.Body.String())

	for _, header := range []string{"", "Token " + token, "Bearer not-a-token"} {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
	}
}

func TestRoleMiddleware(t *testing.T) {
	r := newEngine()
	r.GET("/admin", func(c *gin.Context) { c.Set("role", "user") }, RoleMiddleware("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	store := mem.NewLimiterStore(1, 2, time.Minute)
	r := newEngine()
	r.POST("/generate", RateLimitMiddleware(store, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalJWTMiddleware(t *testing.T) {
	jwt := utils.NewJWTManager("secret", time.Hour)
	r := newEngine()
	r.GET("/who", OptionalJWTMiddleware(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})

	userID := uuid.New()
	token, err := jwt.CreateToken(userID, "user")
	require.NoError(t, err)

	cases := map[string]string{
		"Bearer " + token:    userID.String(),
		"Bearer not-a-token": "",
		"":                   "",
	}
	for header, want := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, w.Body.String())
	}
}

func TestRateLimitKeysAuthenticatedCallersByUser(t *testing.T) {
	jwt := utils.NewJWTManager("secret", time.Hour)
	store := mem.NewLimiterStore(1, 1, time.Minute)
	r := newEngine()
	r.POST("/generate", OptionalJWTMiddleware(jwt), RateLimitMiddleware(store, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tokenA, err := jwt.CreateToken(uuid.New(), "user")
	require.NoError(t, err)
	tokenB, err := jwt.CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	send := func(token string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		return w.Code
	}

	// same IP, different users
	assert.Equal(t, http.StatusOK, send(tokenA))
	assert.Equal(t, http.StatusOK, send(tokenB))
	assert.Equal(t, http.StatusTooManyRequests, send(tokenA))
	assert.Equal(t, 2, store.Len())
}
