package http

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
	webmiddleware "otobiznes/internal/delivery/http/middleware"
	"otobiznes/internal/delivery/http/router"
	"otobiznes/internal/delivery/http/router/handler"
	"otobiznes/internal/delivery/http/view"
	"otobiznes/internal/domain/entity"
	mockService "otobiznes/internal/mocks/service"
	mockUsecase "otobiznes/internal/mocks/usecase"
	"otobiznes/internal/usecase"
	"otobiznes/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo   *echo.Echo
	auth   *mockUsecase.MockAuthUsecase
	signer *mockService.MockSessionCookieSigner
}

func newTestServer(t *testing.T, opts ...func(*ServerParams)) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Session = config.SessionConfig{CookieName: "otobiznes_session", TTL: time.Hour}

	auth := mockUsecase.NewMockAuthUsecase(t)
	signer := mockService.NewMockSessionCookieSigner(t)
	session := webmiddleware.NewSessionMiddleware(auth, signer, cfg, logger)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	params := ServerParams{
		Cfg:               cfg,
		Logger:            logger,
		SessionMiddleware: session,
		ErrorMiddleware:   webmiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			CatalogHandler:  handler.NewCatalogHandler(handler.CatalogHandlerParams{Catalog: mockUsecase.NewMockCatalogUsecase(t), Logger: logger}),
			AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{Auth: auth, Session: session, Logger: logger}),
			ProfileHandler:  handler.NewProfileHandler(handler.ProfileHandlerParams{Account: mockUsecase.NewMockAccountUsecase(t), Logger: logger}),
			AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{Admin: mockUsecase.NewMockAdminUsecase(t), Logger: logger}),
			GuardMiddleware: webmiddleware.NewGuardMiddleware(logger),
		},
	}

	for _, opt := range opts {
		opt(&params)
	}

	return &testServer{echo: newEcho(params, renderer), auth: auth, signer: signer}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

// csrfCookie fetches a page to obtain the CSRF cookie, whose value is also the form token.
func (s *testServer) csrfCookie(t *testing.T) *http.Cookie {
	t.Helper()

	rec := s.do(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == csrfCookieName {
			return cookie
		}
	}
	t.Fatal("no csrf cookie")

	return nil
}

func (s *testServer) signedInAs(user *entity.User) *http.Cookie {
	s.signer.EXPECT().Parse("signed").Return("sid-1", nil)
	s.auth.EXPECT().Hydrate(mock.Anything, "sid-1").Return(entity.HydrateResult{
		Outcome: entity.HydrateAuthenticated, User: user, Token: "tok",
	})

	return &http.Cookie{Name: "otobiznes_session", Value: "signed"}
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_LoggedOutVisitorIsSentToLogin(t *testing.T) {
	for _, path := range []string{"/profile", "/admin"} {
		t.Run(path, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestServer_BusinessOwnerIsSentHomeFromAdmin(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(s.signedInAs(&entity.User{ID: 3, Role: entity.RoleBusinessOwner}))

	rec := s.do(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_SignedInVisitorSkipsLogin(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(s.signedInAs(&entity.User{ID: 3, Role: entity.RoleUser}))

	rec := s.do(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_PostWithoutCSRFTokenIsRejected(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)

	rec := s.do(req)

	assert.Contains(t, []int{http.StatusBadRequest, http.StatusForbidden}, rec.Code)
}

func TestServer_UnknownRouteRendersNotFoundPage(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nie znaleziono strony.")
}

func TestServer_LoginFlow(t *testing.T) {
	s := newTestServer(t)

	// The login page hands out the CSRF cookie and token.
	rec := s.do(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var csrf *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == csrfCookieName {
			csrf = cookie
		}
	}
	require.NotNil(t, csrf)
	assert.Contains(t, rec.Body.String(), csrf.Value)

	admin := &entity.User{ID: 1, Role: entity.RoleAdmin}
	s.auth.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("string"), &usecase.LoginInput{Email: "admin@example.com", Password: "secret"}).
		Return(&usecase.LoginOutput{User: admin, Role: entity.RoleAdmin}, nil)
	s.signer.EXPECT().Sign(mock.AnythingOfType("string")).Return("signed-new", nil)

	form := url.Values{"_csrf": {csrf.Value}, "email": {"admin@example.com"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(csrf)

	rec = s.do(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))

	var session *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "otobiznes_session" {
			session = cookie
		}
	}
	require.NotNil(t, session)
	assert.Equal(t, "signed-new", session.Value)
}

func TestServer_IncompleteReviewMakesNoAPICall(t *testing.T) {
	// API services without expectations fail the request on any call.
	catalog := impl.NewCatalogService(impl.CatalogServiceParams{
		Ads:        mockService.NewMockAdService(t),
		Businesses: mockService.NewMockBusinessService(t),
		Categories: mockService.NewMockCategoryService(t),
		Reviews:    mockService.NewMockReviewService(t),
		QRCode:     mockService.NewMockQRCodeService(t),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s := newTestServer(t, func(p *ServerParams) {
		p.RouterParams.CatalogHandler = handler.NewCatalogHandler(handler.CatalogHandlerParams{Catalog: catalog, Logger: p.Logger})
	})
	csrf := s.csrfCookie(t)

	for _, form := range []url.Values{
		{"title": {""}, "description": {"Szybko"}},
		{"title": {"Polecam"}, "description": {"   "}},
	} {
		form.Set("_csrf", csrf.Value)
		req := httptest.NewRequest(http.MethodPost, "/ads/9/reviews", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.AddCookie(csrf)

		rec := s.do(req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/ads/9", rec.Header().Get(echo.HeaderLocation))
	}
}
