package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/delivery/http/response"
	"otobiznes/internal/delivery/http/view"
	domainerrors "otobiznes/internal/domain/errors"
	"otobiznes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Profile tabs.
const (
	tabProfile    = "profile"
	tabBusinesses = "businesses"
	tabAds        = "ads"
)

const (
	businessesTabPath = "/profile?tab=" + tabBusinesses
	adsTabPath        = "/profile?tab=" + tabAds
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	Account usecase.AccountUsecase
	Logger  *slog.Logger
}

// ProfileHandler serves the dashboard of a signed-in user.
type ProfileHandler struct {
	account usecase.AccountUsecase
	logger  *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		account: params.Account,
		logger:  params.Logger,
	}
}

// Profile shows the selected tab of the dashboard.
func (h *ProfileHandler) Profile(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	dashboard, err := h.account.Dashboard(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	tab := c.QueryParam("tab")
	switch {
	case tab == tabBusinesses || tab == tabAds:
		if !user.CanManageBusinesses() {
			tab = tabProfile
		}
	default:
		tab = tabProfile
	}

	page := newPage(c, "Mój profil")
	page.Data = view.ProfileData{Page: dashboard, Tab: tab}

	return response.Page(c, http.StatusOK, view.PageProfile, page)
}

// CreateBusiness adds a business owned by the current user.
func (h *ProfileHandler) CreateBusiness(c echo.Context) error {
	var input usecase.BusinessInput
	if err := bindAndValidate(c, &input); err != nil {
		return redirectWithError(c, h.logger, err, businessesTabPath)
	}

	if _, err := h.account.CreateBusiness(c.Request().Context(), deliverycontext.GetUser(c), &input); err != nil {
		return redirectWithError(c, h.logger, err, businessesTabPath)
	}

	return redirectWithSuccess(c, "Firma została dodana.", businessesTabPath)
}

// DeleteBusiness removes a business of the current user.
func (h *ProfileHandler) DeleteBusiness(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.account.DeleteBusiness(c.Request().Context(), deliverycontext.GetUser(c), id); err != nil {
		return redirectWithError(c, h.logger, err, businessesTabPath)
	}

	return redirectWithSuccess(c, "Firma została usunięta.", businessesTabPath)
}

// CreateAd adds an ad waiting for approval.
func (h *ProfileHandler) CreateAd(c echo.Context) error {
	var input usecase.AdInput
	if err := bindAndValidate(c, &input); err != nil {
		return redirectWithError(c, h.logger, err, adsTabPath)
	}

	if _, err := h.account.CreateAd(c.Request().Context(), deliverycontext.GetUser(c), &input); err != nil {
		return redirectWithError(c, h.logger, err, adsTabPath)
	}

	return redirectWithSuccess(c, "Ogłoszenie zostało dodane i czeka na zatwierdzenie.", adsTabPath)
}

// DeleteAd removes an ad of the current user.
func (h *ProfileHandler) DeleteAd(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.account.DeleteAd(c.Request().Context(), deliverycontext.GetUser(c), id); err != nil {
		return redirectWithError(c, h.logger, err, adsTabPath)
	}

	return redirectWithSuccess(c, "Ogłoszenie zostało usunięte.", adsTabPath)
}

// bindAndValidate binds a posted form and runs the echo validator over it.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return c.Validate(input)
}
