package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c
}

func TestClientIPFromRemoteAddr(t *testing.T) {
	c := newTestContext(t)
	c.Request.RemoteAddr = "10.0.0.1:52311"
	assert.Equal(t, "10.0.0.1", clientIP(c))
}

func TestClientIPPrefersForwardingHeaders(t *testing.T) {
	c := newTestContext(t)
	c.Request.RemoteAddr = "10.0.0.1:52311"

	c.Request.Header.Set("X-Real-IP", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", clientIP(c))

	c.Request.Header.Set("X-Forwarded-For", " 198.51.100.4, 203.0.113.7")
	assert.Equal(t, "198.51.100.4", clientIP(c))
}
