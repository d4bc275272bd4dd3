package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"otobiznes/config"
	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/domain/entity"
	"otobiznes/internal/domain/service"
	"otobiznes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware resolves the browser session of every request.
type SessionMiddleware struct {
	auth   usecase.AuthUsecase
	signer service.SessionCookieSigner
	cfg    config.SessionConfig
	logger *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(auth usecase.AuthUsecase, signer service.SessionCookieSigner, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		auth:   auth,
		signer: signer,
		cfg:    cfg.Session,
		logger: logger,
	}
}

// Load reads the session cookie, hydrates the session and stores it in the context.
// When the session is authenticated its API token is attached to the request context.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := m.sessionID(c)
		session := entity.NewSession(sessionID)

		ctx := c.Request().Context()
		if sessionID != "" && session.Begin() {
			result := m.auth.Hydrate(ctx, sessionID)
			session.Resolve(result)

			if result.Outcome == entity.HydrateFailed {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Session hydration failed",
					slog.String("outcome", result.Outcome.String()),
					slog.Any("error", result.Err),
				)
			}

			if session.IsAuthenticated() {
				ctx = deliverycontext.WithAPIToken(ctx, result.Token)
				logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.Int64("user_id", session.User.ID))
				ctx = deliverycontext.WithLogger(ctx, logger)
				c.SetRequest(c.Request().WithContext(ctx))
			}
		}

		deliverycontext.SetSession(c, session)
		deliverycontext.SetSecureCookies(c, m.cfg.Secure)

		return next(c)
	}
}

// NewSessionID returns a fresh random session ID.
// A new ID is used on every login so a pre-login cookie is never reused.
func NewSessionID() string {
	return uuid.New().String()
}

// Issue signs the session ID into the session cookie.
func (m *SessionMiddleware) Issue(c echo.Context, sessionID string) error {
	value, err := m.signer.Sign(sessionID)
	if err != nil {
		return errors.Wrap(err, "sign session cookie")
	}

	c.SetCookie(m.cookie(value, m.cfg.TTL))

	return nil
}

// Attach marks the session of the current request as authenticated.
func (m *SessionMiddleware) Attach(c echo.Context, sessionID string, user *entity.User) {
	session := entity.NewSession(sessionID)
	session.Authenticate(user)
	deliverycontext.SetSession(c, session)
}

// Clear removes the session cookie and resets the session in the context.
func (m *SessionMiddleware) Clear(c echo.Context) {
	c.SetCookie(m.cookie("", -1))
	deliverycontext.GetSession(c).Clear()
}

func (m *SessionMiddleware) sessionID(c echo.Context) string {
	cookie, err := c.Cookie(m.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	sessionID, err := m.signer.Parse(cookie.Value)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Ignoring invalid session cookie", slog.Any("error", err))
		return ""
	}

	return sessionID
}

func (m *SessionMiddleware) cookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(ttl.Seconds())
	}

	return cookie
}
