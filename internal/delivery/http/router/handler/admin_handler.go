package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/delivery/http/response"
	"otobiznes/internal/delivery/http/view"
	"otobiznes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	Admin  usecase.AdminUsecase
	Logger *slog.Logger
}

// AdminHandler serves the moderation panel.
type AdminHandler struct {
	admin  usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		admin:  params.Admin,
		logger: params.Logger,
	}
}

// Dashboard lists users, pending ads and categories.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.admin.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	page := newPage(c, "Panel administratora")
	page.Data = dashboard

	return response.Page(c, http.StatusOK, view.PageAdmin, page)
}

// ChangeRole sets the role picked in the users table.
func (h *AdminHandler) ChangeRole(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.admin.ChangeRole(c.Request().Context(), id, c.FormValue("role")); err != nil {
		return redirectWithError(c, h.logger, err, adminPath)
	}

	return redirectWithSuccess(c, "Rola użytkownika została zmieniona.", adminPath)
}

// DeleteUser removes a user account.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.admin.DeleteUser(c.Request().Context(), deliverycontext.GetUser(c), id); err != nil {
		return redirectWithError(c, h.logger, err, adminPath)
	}

	return redirectWithSuccess(c, "Użytkownik został usunięty.", adminPath)
}

// ApproveAd publishes a pending ad.
func (h *AdminHandler) ApproveAd(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.admin.ApproveAd(c.Request().Context(), id); err != nil {
		return redirectWithError(c, h.logger, err, adminPath)
	}

	return redirectWithSuccess(c, "Ogłoszenie zostało zatwierdzone.", adminPath)
}

// CreateCategory adds a category.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var input usecase.CategoryInput
	if err := bindAndValidate(c, &input); err != nil {
		return redirectWithError(c, h.logger, err, adminPath)
	}

	if _, err := h.admin.CreateCategory(c.Request().Context(), &input); err != nil {
		return redirectWithError(c, h.logger, err, adminPath)
	}

	return redirectWithSuccess(c, "Kategoria została dodana.", adminPath)
}

// DeleteCategory removes a category.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.admin.DeleteCategory(c.Request().Context(), id); err != nil {
		return redirectWithError(c, h.logger, err, adminPath)
	}

	return redirectWithSuccess(c, "Kategoria została usunięta.", adminPath)
}
