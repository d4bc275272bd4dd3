package context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"otobiznes/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAPIToken(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetAPIToken(ctx))

	ctx = WithAPIToken(ctx, "abc")
	assert.Equal(t, "abc", GetAPIToken(ctx))
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetSession_DefaultsToUnauthenticated(t *testing.T) {
	c := newEchoContext()

	session := GetSession(c)

	assert.Equal(t, entity.AuthUnauthenticated, session.State)
	assert.Nil(t, GetUser(c))
}

func TestGetUser_Authenticated(t *testing.T) {
	c := newEchoContext()
	user := &entity.User{ID: 7, Role: entity.RoleAdmin}
	session := entity.NewSession("sid")
	session.Authenticate(user)
	SetSession(c, session)

	assert.Same(t, user, GetUser(c))
}

func TestNormalizeRequestID(t *testing.T) {
	assert.Equal(t, "req-1", NormalizeRequestID("req-1"))

	for _, incoming := range []string{"", "bad id", "zażółć", strings.Repeat("a", maxRequestIDLength+1)} {
		got := NormalizeRequestID(incoming)
		assert.NotEqual(t, incoming, got)
		assert.Len(t, got, 36)
	}
}

func TestSecureCookies(t *testing.T) {
	c := newEchoContext()
	assert.False(t, SecureCookies(c))

	SetSecureCookies(c, true)
	assert.True(t, SecureCookies(c))
}
