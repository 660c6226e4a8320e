package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/tutorhub/backend/internal/app/auth"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/pkg/auth"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, recorder
}

func TestExtractToken(t *testing.T) {
	t.Run("cookie wins over header", func(t *testing.T) {
		c, _ := testContext(t)
		c.Request.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: "cookie-token"})
		c.Request.Header.Set("Authorization", "Bearer header-token")

		token, err := extractToken(c)
		require.NoError(t, err)
		assert.Equal(t, "cookie-token", token)
	})

	t.Run("falls back to bearer header", func(t *testing.T) {
		c, _ := testContext(t)
		c.Request.Header.Set("Authorization", "Bearer header-token")

		token, err := extractToken(c)
		require.NoError(t, err)
		assert.Equal(t, "header-token", token)
	})

	t.Run("empty cookie ignored", func(t *testing.T) {
		c, _ := testContext(t)
		c.Request.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: ""})
		c.Request.Header.Set("Authorization", "Bearer header-token")

		token, err := extractToken(c)
		require.NoError(t, err)
		assert.Equal(t, "header-token", token)
	})

	t.Run("no credentials", func(t *testing.T) {
		c, _ := testContext(t)
		_, err := extractToken(c)
		assert.Error(t, err)
	})
}

func TestRequireRole(t *testing.T) {
	m := &AuthMiddleware{}

	setIdentity := func(c *gin.Context, role models.RoleType) {
		c.Set(appauth.IdentityKey, appauth.Identity{UserID: 1, Role: role})
	}

	t.Run("matching role passes", func(t *testing.T) {
		c, recorder := testContext(t)
		setIdentity(c, models.RoleTutor)

		m.RequireRole(models.RoleAdmin, models.RoleTutor)(c)
		assert.False(t, c.IsAborted())
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("wrong role forbidden", func(t *testing.T) {
		c, recorder := testContext(t)
		setIdentity(c, models.RoleStudent)

		m.RequireRole(models.RoleAdmin)(c)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("missing identity unauthorized", func(t *testing.T) {
		c, recorder := testContext(t)

		m.RequireRole(models.RoleAdmin)(c)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
