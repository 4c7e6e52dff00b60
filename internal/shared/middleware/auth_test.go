package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookreview-backend/internal/shared/auth"
	"bookreview-backend/pkg/jwt"
)

func newAuthProbe(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", RequireAuth(manager), func(c *gin.Context) {
		p, ok := PrincipalFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, p)
	})
	return router
}

func probe(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	router := newAuthProbe(manager)

	t.Run("valid token resolves the principal", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(42, "alice", true, false)
		require.NoError(t, err)

		rec := probe(router, "Bearer "+token)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Username":"alice"`)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := probe(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(42, "alice", false, false)
		require.NoError(t, err)

		rec := probe(router, "Token "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		token, err := manager.GenerateRefreshToken(42)
		require.NoError(t, err)

		rec := probe(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewManager("other-secret", time.Hour, 24*time.Hour)
		token, err := other.GenerateAccessToken(42, "alice", false, false)
		require.NoError(t, err)

		rec := probe(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPrincipalFromContextWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := PrincipalFromContext(c)
	assert.False(t, ok)
}

func TestHasStaffAccess(t *testing.T) {
	assert.False(t, auth.Principal{}.HasStaffAccess())
	assert.True(t, auth.Principal{IsStaff: true}.HasStaffAccess())
	assert.True(t, auth.Principal{IsSuperuser: true}.HasStaffAccess())
}
