package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/delivery/http/view"
	"otobiznes/internal/domain/entity"
	"otobiznes/internal/domain/guard"

	"github.com/labstack/echo/v4"
)

// GuardMiddleware turns guard decisions into redirects.
type GuardMiddleware struct {
	logger *slog.Logger
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{logger: logger}
}

// Require lets through authenticated visitors holding one of the roles.
// With no roles any authenticated visitor passes.
func (m *GuardMiddleware) Require(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := guard.DecideSession(deliverycontext.GetSession(c), roles...)
			c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

			switch decision {
			case guard.Render:
				return next(c)
			case guard.Pending:
				c.Response().Header().Set("Retry-After", "1")
				return c.Render(http.StatusServiceUnavailable, view.PageLoading, view.Page{Title: "Ładowanie"})
			default:
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Guard redirect",
					slog.String("path", c.Request().URL.Path),
					slog.String("decision", decision.String()),
				)

				return c.Redirect(http.StatusSeeOther, decision.Location())
			}
		}
	}
}

// GuestOnly sends authenticated visitors away from the login and register pages.
func (m *GuardMiddleware) GuestOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetSession(c).IsAuthenticated() {
			return c.Redirect(http.StatusSeeOther, guard.HomePath)
		}

		return next(c)
	}
}
