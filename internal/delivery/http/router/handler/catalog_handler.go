package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"otobiznes/internal/delivery/http/response"
	"otobiznes/internal/delivery/http/view"
	domainerrors "otobiznes/internal/domain/errors"
	"otobiznes/internal/domain/listing"
	"otobiznes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const reviewAddedMessage = "Recenzja dodana pomyślnie!"

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	Catalog usecase.CatalogUsecase
	Logger  *slog.Logger
}

// CatalogHandler serves the public pages.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

// reviewRequest is the review form posted from the ad page.
type reviewRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Rating      int    `form:"rating"`
}

// Home lists approved ads filtered by the search box and category select.
func (h *CatalogHandler) Home(c echo.Context) error {
	var query usecase.HomeQuery
	if err := c.Bind(&query); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	home, err := h.catalog.Home(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	page := newPage(c, "Ogłoszenia")
	page.Data = home

	return response.Page(c, http.StatusOK, view.PageHome, page)
}

// Ad shows an ad with its business, reviews and the review form.
func (h *CatalogHandler) Ad(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	form, ok := popReviewDraft(c, id)
	if !ok {
		form = reviewRequest{Rating: listing.DefaultRating}
	}

	ad, err := h.catalog.Ad(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	page := newPage(c, ad.Ad.Title)
	page.Data = ad
	page.Form = form

	return response.Page(c, http.StatusOK, view.PageAd, page)
}

// SubmitReview posts an anonymous review and returns to the ad.
// A rejected form goes back to the ad with an error flash and the typed values kept.
func (h *CatalogHandler) SubmitReview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}
	// only a missing rating falls back to the default; an explicit 0 is rejected
	if strings.TrimSpace(c.FormValue("rating")) == "" {
		req.Rating = listing.DefaultRating
	}
	adPath := "/ads/" + strconv.FormatInt(id, 10)

	_, err = h.catalog.SubmitReview(c.Request().Context(), listing.ReviewForm{
		AdID:        id,
		Title:       req.Title,
		Description: req.Description,
		Rating:      req.Rating,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && !errors.Is(err, domainerrors.ErrUnauthorized) {
			setReviewDraft(c, id, req)
		}

		return redirectWithError(c, h.logger, err, adPath)
	}

	return redirectWithSuccess(c, reviewAddedMessage, adPath)
}

// Business shows a business profile with its approved ads.
func (h *CatalogHandler) Business(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.catalog.Business(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	page := newPage(c, business.Business.Name)
	page.Data = business

	return response.Page(c, http.StatusOK, view.PageBusiness, page)
}

// BusinessQR serves the contact QR code of a business.
func (h *CatalogHandler) BusinessQR(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.catalog.BusinessContactQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}
