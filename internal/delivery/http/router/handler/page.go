// Package handler contains the page handlers of the web frontend.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/delivery/http/response"
	"otobiznes/internal/delivery/http/view"
	domainerrors "otobiznes/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CSRFContextKey is where the CSRF middleware stores the form token.
const CSRFContextKey = "csrf"

// newPage fills the parts of a page shared by every template.
func newPage(c echo.Context, title string) view.Page {
	token, _ := c.Get(CSRFContextKey).(string)

	return view.Page{
		Title:     title,
		User:      deliverycontext.GetUser(c),
		Flash:     popFlash(c),
		CSRFToken: token,
	}
}

// parseID reads a positive numeric path parameter. Anything else is a missing page.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(domainerrors.ErrNotFound, "invalid %s %q", name, c.Param(name))
	}

	return id, nil
}

// renderForm re-renders a form page with the message of err.
func renderForm(c echo.Context, logger *slog.Logger, name string, page view.Page, err error) error {
	status := domainerrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).Error("Form submission failed",
			slog.String("page", name),
			slog.Any("error", err),
		)
	}

	page.Error = domainerrors.MessageOf(err)

	return response.Page(c, status, name, page)
}

// redirectWithError reports a failed mutation through a flash on the target page.
// Expired sessions and unknown errors go to the error handler instead.
func redirectWithError(c echo.Context, logger *slog.Logger, err error, path string) error {
	var appErr domainerrors.AppError
	if errors.Is(err, domainerrors.ErrUnauthorized) || !errors.As(err, &appErr) {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).Warn("Mutation rejected",
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)
	setFlash(c, flashError, appErr.Message())

	return response.SeeOther(c, path)
}

// redirectWithSuccess finishes a mutation with a success flash.
func redirectWithSuccess(c echo.Context, message, path string) error {
	setFlash(c, flashSuccess, message)
	return response.SeeOther(c, path)
}
