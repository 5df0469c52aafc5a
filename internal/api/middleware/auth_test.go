package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/scamtrap/honeypot-service/tests/testutils"
)

func setupAuthRouter(apiKey string) (*gin.Engine, *bool) {
	router := testutils.SetupTestRouter()
	reached := false

	auth := NewAuthMiddleware(apiKey)
	router.GET("/protected", auth.Authenticate(), func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router, &reached
}

func TestAuthenticate_MissingKey(t *testing.T) {
	router, reached := setupAuthRouter("secret-key")

	w := testutils.PerformRequest(router, http.MethodGet, "/protected", nil, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
	assert.False(t, *reached, "the handler must not run for an unauthenticated request")
}

func TestAuthenticate_WrongKey(t *testing.T) {
	router, reached := setupAuthRouter("secret-key")

	w := testutils.PerformRequest(router, http.MethodGet, "/protected", nil, map[string]string{
		APIKeyHeader: "wrong-key",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *reached)
}

func TestAuthenticate_CorrectKey(t *testing.T) {
	router, reached := setupAuthRouter("secret-key")

	w := testutils.PerformRequest(router, http.MethodGet, "/protected", nil, map[string]string{
		APIKeyHeader: "secret-key",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}
