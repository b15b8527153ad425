package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marketstore-be/internal/logger"
	"marketstore-be/internal/user"
	"marketstore-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		assert.NotEmpty(t, logger.RequestIDFrom(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	t.Run("GeneratesIDWhenMissing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("PreservesExistingID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "test-id-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "test-id-123", w.Header().Get("X-Request-ID"))
	})
}

func TestIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(Identity())
		r.GET("/whoami", func(c *gin.Context) {
			if id, ok := utils.GetUserIDFromContext(c.Request.Context()); ok {
				c.JSON(http.StatusOK, gin.H{"id": id, "role": utils.GetUserRoleFromContext(c.Request.Context())})
				return
			}
			c.JSON(http.StatusOK, gin.H{"id": nil})
		})
		return r
	}

	token, err := user.GenerateJWT(42, "customer", "buyer@example.com")
	require.NoError(t, err)

	t.Run("FromCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: AuthCookie, Value: token})
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), `"id":42`)
		assert.Contains(t, w.Body.String(), `"role":"customer"`)
	})

	t.Run("FromBearerHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), `"id":42`)
	})

	t.Run("GarbageTokenStaysAnonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: AuthCookie, Value: "not-a-jwt"})
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		// the request goes through without an identity
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":null`)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.Use(Identity())
	r.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("Anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Authenticated", func(t *testing.T) {
		token, err := user.GenerateJWT(1, "customer", "buyer@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: AuthCookie, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
