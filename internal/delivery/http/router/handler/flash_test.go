package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "otobiznes/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash_RoundTrip(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	setFlash(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec), flashSuccess, "Recenzja dodana pomyślnie!")

	cookie := cookieNamed(rec, flashCookie)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	next := httptest.NewRecorder()
	flash := popFlash(e.NewContext(req, next))

	require.NotNil(t, flash)
	assert.Equal(t, flashSuccess, flash.Kind)
	assert.Equal(t, "Recenzja dodana pomyślnie!", flash.Message)

	expired := cookieNamed(next, flashCookie)
	require.NotNil(t, expired)
	assert.Less(t, expired.MaxAge, 0)
}

func TestFlash_IgnoresForgedValues(t *testing.T) {
	for _, value := range []string{"%%%", "bm9uZXdsaW5l", "aW5mbwpoaQ"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: flashCookie, Value: value})

		assert.Nil(t, popFlash(echo.New().NewContext(req, httptest.NewRecorder())), value)
	}
}

func TestFlash_FollowsSecureCookiePolicy(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	deliverycontext.SetSecureCookies(c, true)

	setFlash(c, flashError, "Wypełnij wszystkie pola")

	cookie := cookieNamed(rec, flashCookie)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}
