package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/delivery/http/view"
	domainerrors "otobiznes/internal/domain/errors"
	"otobiznes/internal/domain/guard"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const notFoundMessage = "Nie znaleziono strony."

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler by rendering the error page
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	status, message := m.classify(err)

	// An API 401 mid-request means the session token is no longer accepted
	if errors.Is(err, domainerrors.ErrUnauthorized) {
		deliverycontext.GetSession(c).Clear()
		if redirectErr := c.Redirect(http.StatusSeeOther, guard.LoginPath); redirectErr != nil {
			logger.Error("Failed to redirect", slog.Any("error", redirectErr))
		}

		return
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	} else {
		logger.Debug("Request rejected", slog.Int("status", status), slog.Any("error", err))
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}

	page := view.Page{
		Title: message,
		User:  deliverycontext.GetUser(c),
		Data:  view.ErrorData{Status: status, Message: message},
	}
	if renderErr := c.Render(status, view.PageError, page); renderErr != nil {
		logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(status, message)
	}
}

// classify picks the status and the user-facing message. Unknown errors never leak details.
func (m *ErrorMiddleware) classify(err error) (int, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode(), appErr.Message()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return http.StatusNotFound, notFoundMessage
		case http.StatusForbidden:
			return httpErr.Code, domainerrors.ErrForbidden.Message()
		default:
			if httpErr.Code < http.StatusInternalServerError {
				return httpErr.Code, http.StatusText(httpErr.Code)
			}
		}
	}

	return http.StatusInternalServerError, domainerrors.GenericMessage
}
