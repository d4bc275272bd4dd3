package handler

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"strconv"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/domain/entity"
	"otobiznes/internal/domain/listing"

	"github.com/labstack/echo/v4"
)

const (
	reviewDraftCookie = "otobiznes_review_draft"
	// browsers drop cookies past 4KB; longer drafts are not kept
	maxReviewDraftLength = 3000
)

// setReviewDraft keeps a rejected review form so the ad page can refill it after the redirect.
func setReviewDraft(c echo.Context, adID int64, form reviewRequest) {
	values := url.Values{
		"ad":          {strconv.FormatInt(adID, 10)},
		"title":       {form.Title},
		"description": {form.Description},
		"rating":      {strconv.Itoa(form.Rating)},
	}
	value := base64.RawURLEncoding.EncodeToString([]byte(values.Encode()))
	if len(value) > maxReviewDraftLength {
		return
	}

	c.SetCookie(reviewDraftCookieOf(c, value, flashMaxAge))
}

// popReviewDraft returns and expires the draft kept for the given ad.
func popReviewDraft(c echo.Context, adID int64) (reviewRequest, bool) {
	cookie, err := c.Cookie(reviewDraftCookie)
	if err != nil || cookie.Value == "" {
		return reviewRequest{}, false
	}
	c.SetCookie(reviewDraftCookieOf(c, "", -1))

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return reviewRequest{}, false
	}
	values, err := url.ParseQuery(string(raw))
	if err != nil || values.Get("ad") != strconv.FormatInt(adID, 10) {
		return reviewRequest{}, false
	}

	rating, err := strconv.Atoi(values.Get("rating"))
	if err != nil || rating < entity.MinRating || rating > entity.MaxRating {
		rating = listing.DefaultRating
	}

	return reviewRequest{
		Title:       values.Get("title"),
		Description: values.Get("description"),
		Rating:      rating,
	}, true
}

func reviewDraftCookieOf(c echo.Context, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     reviewDraftCookie,
		Value:    value,
		Path:     "/ads",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   deliverycontext.SecureCookies(c),
		SameSite: http.SameSiteLaxMode,
	}
}
