package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func authedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/scoped", RequireAuth(), func(c *gin.Context) {
		orgID, ok := OrgID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid organization access"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"organization_id": orgID})
	})
	return r
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	authedRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsGarbageToken(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	authedRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthStoresClaims(t *testing.T) {
	tok, err := GenerateToken(7, "admin", 3)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	authedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"organization_id": 3}`, w.Body.String())
}

func TestValidateTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(7, "admin", 3)
	require.NoError(t, err)

	parsed, err := ValidateToken(tok)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	_, err = ValidateToken(tok + "x")
	assert.Error(t, err)
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader), "a caller-supplied id is kept")
}
