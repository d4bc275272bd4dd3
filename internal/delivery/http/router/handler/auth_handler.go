package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/delivery/http/middleware"
	"otobiznes/internal/delivery/http/response"
	"otobiznes/internal/delivery/http/view"
	"otobiznes/internal/domain/entity"
	domainerrors "otobiznes/internal/domain/errors"
	"otobiznes/internal/domain/guard"
	"otobiznes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	adminPath = "/admin"

	registeredMessage      = "Rejestracja zakończona sukcesem!"
	registeredLoginMessage = "Rejestracja zakończona sukcesem! Możesz się teraz zalogować."
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Auth    usecase.AuthUsecase
	Session *middleware.SessionMiddleware
	Logger  *slog.Logger
}

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	auth    usecase.AuthUsecase
	session *middleware.SessionMiddleware
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		auth:    params.Auth,
		session: params.Session,
		logger:  params.Logger,
	}
}

// LoginPage shows the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	page := newPage(c, "Logowanie")
	page.Form = usecase.LoginInput{}

	return response.Page(c, http.StatusOK, view.PageLogin, page)
}

// Login signs the visitor in under a fresh session ID.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	sessionID := middleware.NewSessionID()
	output, err := h.auth.Login(c.Request().Context(), sessionID, &input)
	if err != nil {
		input.Password = ""
		page := newPage(c, "Logowanie")
		page.Form = input

		return renderForm(c, h.logger, view.PageLogin, page, err)
	}

	if err := h.start(c, sessionID, output.User); err != nil {
		return err
	}

	if output.Role == entity.RoleAdmin {
		return response.SeeOther(c, adminPath)
	}

	return response.SeeOther(c, guard.HomePath)
}

// RegisterPage shows the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	page := newPage(c, "Rejestracja")
	page.Form = usecase.RegisterInput{}

	return response.Page(c, http.StatusOK, view.PageRegister, page)
}

// Register creates a business owner account.
// Without a token from the API the visitor is sent to the login page.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	sessionID := middleware.NewSessionID()
	output, err := h.auth.Register(c.Request().Context(), sessionID, &input)
	if err != nil {
		input.Password, input.PasswordConfirm = "", ""
		page := newPage(c, "Rejestracja")
		page.Form = input

		return renderForm(c, h.logger, view.PageRegister, page, err)
	}

	if !output.Authenticated {
		return redirectWithSuccess(c, registeredLoginMessage, guard.LoginPath)
	}

	if err := h.start(c, sessionID, output.User); err != nil {
		return err
	}

	return redirectWithSuccess(c, registeredMessage, guard.HomePath)
}

// Logout always ends the session, even when the stored token cannot be removed.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	session := deliverycontext.GetSession(c)

	if err := h.auth.Logout(ctx, session.ID); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to remove session token",
			slog.Any("error", err),
		)
	}
	h.session.Clear(c)

	return response.SeeOther(c, guard.HomePath)
}

// start sets the cookie of a freshly authenticated session.
// The token left behind by the previous session ID is dropped.
func (h *AuthHandler) start(c echo.Context, sessionID string, user *entity.User) error {
	previousID := deliverycontext.GetSession(c).ID

	if err := h.session.Issue(c, sessionID); err != nil {
		if logoutErr := h.auth.Logout(c.Request().Context(), sessionID); logoutErr != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Failed to remove orphaned token",
				slog.Any("error", logoutErr),
			)
		}

		return errors.WithStack(domainerrors.ErrInternalError.WithDetails(err.Error()))
	}

	h.session.Attach(c, sessionID, user)

	if previousID != "" && previousID != sessionID {
		if err := h.auth.Logout(c.Request().Context(), previousID); err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Failed to remove previous session token",
				slog.Any("error", err),
			)
		}
	}

	return nil
}
