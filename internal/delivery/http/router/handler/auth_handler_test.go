package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/domain/entity"
	domainerrors "otobiznes/internal/domain/errors"
	mockService "otobiznes/internal/mocks/service"
	mockUsecase "otobiznes/internal/mocks/usecase"
	"otobiznes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase, *mockService.MockSessionCookieSigner) {
	auth := mockUsecase.NewMockAuthUsecase(t)
	signer := mockService.NewMockSessionCookieSigner(t)

	h := NewAuthHandler(AuthHandlerParams{
		Auth:    auth,
		Session: newSessionMiddleware(t, signer),
		Logger:  discardLogger(),
	})

	return h, auth, signer
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		output       *usecase.LoginOutput
		wantLocation string
	}{
		{"user goes home", &usecase.LoginOutput{User: owner, Role: entity.RoleBusinessOwner}, "/"},
		{"admin goes to panel", &usecase.LoginOutput{User: admin, Role: entity.RoleAdmin}, "/admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auth, signer := newAuthHandler(t)

			var sessionID string
			auth.EXPECT().Login(mock.Anything, mock.AnythingOfType("string"), &usecase.LoginInput{Email: "a@b.pl", Password: "pw"}).
				Run(func(_ context.Context, sid string, _ *usecase.LoginInput) { sessionID = sid }).
				Return(tt.output, nil)
			signer.EXPECT().Sign(mock.AnythingOfType("string")).Return("signed", nil)

			c, rec := newContext(t, http.MethodPost, "/login", url.Values{"email": {"a@b.pl"}, "password": {"pw"}})

			require.NoError(t, h.Login(c))
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			assert.Equal(t, "signed", cookieNamed(rec, "otobiznes_session").Value)
			assert.True(t, deliverycontext.GetSession(c).IsAuthenticated())
			assert.Equal(t, sessionID, deliverycontext.GetSession(c).ID)
		})
	}
}

func TestAuthHandler_Login_DropsPreviousSessionToken(t *testing.T) {
	h, auth, signer := newAuthHandler(t)
	auth.EXPECT().Login(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&usecase.LoginOutput{User: owner, Role: entity.RoleBusinessOwner}, nil)
	signer.EXPECT().Sign(mock.AnythingOfType("string")).Return("signed", nil)
	auth.EXPECT().Logout(mock.Anything, "stale-sid").Return(nil)

	c, rec := newContext(t, http.MethodPost, "/login", url.Values{"email": {"a@b.pl"}, "password": {"pw"}})
	deliverycontext.SetSession(c, entity.NewSession("stale-sid"))

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.NotEqual(t, "stale-sid", deliverycontext.GetSession(c).ID)
}

func TestAuthHandler_Login_Failure(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{"missing fields", domainerrors.ErrFieldsRequired, http.StatusBadRequest, "Wszystkie pola są wymagane."},
		{"bad credentials", domainerrors.ErrInvalidCredentials, http.StatusUnauthorized, "Błąd podczas logowania."},
		{"profile fetch", domainerrors.ErrProfileFetchFailed, http.StatusBadGateway, "Nie udało się pobrać danych użytkownika."},
		{"api down", domainerrors.ErrAPIUnavailable, http.StatusServiceUnavailable, "Błąd połączenia z serwerem."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auth, _ := newAuthHandler(t)
			auth.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.WithStack(tt.err))

			c, rec := newContext(t, http.MethodPost, "/login", url.Values{"email": {"a@b.pl"}, "password": {"secret-pw"}})

			require.NoError(t, h.Login(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantText)
			assert.Contains(t, rec.Body.String(), "a@b.pl")
			assert.NotContains(t, rec.Body.String(), "secret-pw")
			assert.Nil(t, cookieNamed(rec, "otobiznes_session"))
		})
	}
}

func TestAuthHandler_Login_CookieFailureDropsToken(t *testing.T) {
	h, auth, signer := newAuthHandler(t)
	auth.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).Return(&usecase.LoginOutput{User: owner, Role: owner.Role}, nil)
	signer.EXPECT().Sign(mock.Anything).Return("", errors.New("no secret"))
	auth.EXPECT().Logout(mock.Anything, mock.AnythingOfType("string")).Return(nil)

	c, _ := newContext(t, http.MethodPost, "/login", url.Values{"email": {"a@b.pl"}, "password": {"pw"}})

	assert.ErrorIs(t, h.Login(c), domainerrors.ErrInternalError)
}

func TestAuthHandler_Register(t *testing.T) {
	form := url.Values{
		"first_name": {"Anna"}, "last_name": {"Nowak"}, "email": {"anna@example.com"},
		"password": {"pw"}, "password_confirm": {"pw"},
	}
	input := &usecase.RegisterInput{FirstName: "Anna", LastName: "Nowak", Email: "anna@example.com", Password: "pw", PasswordConfirm: "pw"}

	t.Run("without token sends visitor to login", func(t *testing.T) {
		h, auth, _ := newAuthHandler(t)
		auth.EXPECT().Register(mock.Anything, mock.Anything, input).Return(&usecase.RegisterOutput{User: owner}, nil)

		c, rec := newContext(t, http.MethodPost, "/register", form)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, registeredLoginMessage, flashOf(t, rec).Message)
		assert.Nil(t, cookieNamed(rec, "otobiznes_session"))
	})

	t.Run("with token signs in", func(t *testing.T) {
		h, auth, signer := newAuthHandler(t)
		auth.EXPECT().Register(mock.Anything, mock.Anything, input).Return(&usecase.RegisterOutput{User: owner, Authenticated: true}, nil)
		signer.EXPECT().Sign(mock.Anything).Return("signed", nil)

		c, rec := newContext(t, http.MethodPost, "/register", form)

		require.NoError(t, h.Register(c))
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		assert.NotNil(t, cookieNamed(rec, "otobiznes_session"))
	})

	t.Run("mismatch re-renders", func(t *testing.T) {
		h, auth, _ := newAuthHandler(t)
		auth.EXPECT().Register(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrPasswordMismatch))

		c, rec := newContext(t, http.MethodPost, "/register", form)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Hasła się nie zgadzają.")
		assert.Contains(t, rec.Body.String(), `value="Anna"`)
	})
}

func TestAuthHandler_Logout_AlwaysClears(t *testing.T) {
	for _, storeErr := range []error{nil, errors.New("redis down")} {
		h, auth, _ := newAuthHandler(t)
		auth.EXPECT().Logout(mock.Anything, "sid-1").Return(storeErr)

		c, rec := newContext(t, http.MethodPost, "/logout", url.Values{})
		signIn(c, owner)

		require.NoError(t, h.Logout(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		assert.False(t, deliverycontext.GetSession(c).IsAuthenticated())
		assert.Nil(t, deliverycontext.GetUser(c))

		cookie := cookieNamed(rec, "otobiznes_session")
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Less(t, cookie.MaxAge, 0)
	}
}

func TestAuthHandler_Pages(t *testing.T) {
	h, _, _ := newAuthHandler(t)

	c, rec := newContext(t, http.MethodGet, "/login", nil)
	require.NoError(t, h.LoginPage(c))
	assert.Contains(t, rec.Body.String(), `action="/login"`)

	c, rec = newContext(t, http.MethodGet, "/register", nil)
	require.NoError(t, h.RegisterPage(c))
	assert.Contains(t, rec.Body.String(), `action="/register"`)
}
