package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/delivery/http/view"

	"github.com/labstack/echo/v4"
)

const (
	flashCookie = "otobiznes_flash"
	flashMaxAge = 60

	flashSuccess = "success"
	flashError   = "error"
)

// setFlash stores a message shown on the next rendered page.
func setFlash(c echo.Context, kind, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(kind + "\n" + message))
	c.SetCookie(flashCookieOf(c, value, flashMaxAge))
}

// popFlash reads and expires the pending message, if any.
func popFlash(c echo.Context) *view.Flash {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(flashCookieOf(c, "", -1))

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	kind, message, ok := strings.Cut(string(raw), "\n")
	if !ok || (kind != flashSuccess && kind != flashError) {
		return nil
	}

	return &view.Flash{Kind: kind, Message: message}
}

func flashCookieOf(c echo.Context, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   deliverycontext.SecureCookies(c),
		SameSite: http.SameSiteLaxMode,
	}
}
