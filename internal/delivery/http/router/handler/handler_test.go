package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"otobiznes/config"
	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/delivery/http/middleware"
	"otobiznes/internal/delivery/http/validator"
	"otobiznes/internal/delivery/http/view"
	"otobiznes/internal/domain/entity"
	"otobiznes/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	owner     = &entity.User{ID: 7, FirstName: "Anna", Role: entity.RoleBusinessOwner}
	admin     = &entity.User{ID: 1, Role: entity.RoleAdmin}
	plainUser = &entity.User{ID: 9, Role: entity.RoleUser}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()

	return e
}

// newContext builds a request context, posting form as urlencoded when given.
func newContext(t *testing.T, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()

	return newEcho(t).NewContext(req, rec), rec
}

func withID(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

func signIn(c echo.Context, user *entity.User) {
	session := entity.NewSession("sid-1")
	session.Authenticate(user)
	deliverycontext.SetSession(c, session)
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

// flashOf decodes the flash cookie set by the handler.
func flashOf(t *testing.T, rec *httptest.ResponseRecorder) *view.Flash {
	t.Helper()

	cookie := cookieNamed(rec, flashCookie)
	require.NotNil(t, cookie, "flash cookie")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	return popFlash(c)
}

func newSessionMiddleware(t *testing.T, signer service.SessionCookieSigner) *middleware.SessionMiddleware {
	t.Helper()

	cfg := &config.Config{Session: config.SessionConfig{CookieName: "otobiznes_session", TTL: time.Hour}}

	return middleware.NewSessionMiddleware(nil, signer, cfg, discardLogger())
}
