package context

import (
	"context"

	"otobiznes/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// WithAPIToken returns a new context carrying the API bearer token.
func WithAPIToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, KeyAPIToken, token)
}

// GetAPIToken extracts the API bearer token, or "" for anonymous calls.
func GetAPIToken(ctx context.Context) string {
	if token, ok := ctx.Value(KeyAPIToken).(string); ok {
		return token
	}

	return ""
}

// SetSession stores the auth session in echo.Context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession extracts the auth session from echo.Context.
// A visitor without session middleware is treated as unauthenticated.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(KeySession)).(*entity.Session); ok && session != nil {
		return session
	}

	return entity.NewSession("")
}

// GetUser returns the authenticated user, or nil.
func GetUser(c echo.Context) *entity.User {
	session := GetSession(c)
	if !session.IsAuthenticated() {
		return nil
	}

	return session.User
}

// SetSecureCookies records whether cookies written during this request need the Secure flag.
func SetSecureCookies(c echo.Context, secure bool) {
	c.Set(string(KeySecureCookies), secure)
}

// SecureCookies reports whether cookies written during this request need the Secure flag.
func SecureCookies(c echo.Context) bool {
	secure, _ := c.Get(string(KeySecureCookies)).(bool)
	return secure
}
