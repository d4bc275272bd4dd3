// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/domain/entity"
	domainerrors "otobiznes/internal/domain/errors"
	"otobiznes/internal/domain/service"
	"otobiznes/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// authService implements the AuthUsecase interface.
type authService struct {
	auth   service.AuthService
	tokens service.TokenStore
	logger *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Auth   service.AuthService
	Tokens service.TokenStore
	Logger *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		auth:   params.Auth,
		tokens: params.Tokens,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Hydrate(ctx context.Context, sessionID string) entity.HydrateResult {
	if sessionID == "" {
		return entity.HydrateResult{Outcome: entity.HydrateNoToken}
	}

	token, err := srv.tokens.Load(ctx, sessionID)
	if errors.Is(err, service.ErrTokenNotFound) {
		return entity.HydrateResult{Outcome: entity.HydrateNoToken}
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to load session token", slog.Any("error", err))
		return entity.HydrateResult{Outcome: entity.HydrateFailed, Err: errors.Wrap(err, "load token")}
	}

	user, err := srv.auth.CurrentUser(deliverycontext.WithAPIToken(ctx, token))
	if err != nil {
		srv.log(ctx).Info("Session token did not resolve to a user", slog.Any("error", err))
		return entity.HydrateResult{Outcome: entity.HydrateFailed, Token: token, Err: err}
	}

	return entity.HydrateResult{Outcome: entity.HydrateAuthenticated, User: user, Token: token}
}

func (srv *authService) Login(ctx context.Context, sessionID string, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrFieldsRequired)
	}
	if !emailPattern.MatchString(email) {
		return nil, errors.WithStack(domainerrors.ErrInvalidEmail)
	}

	token, err := srv.auth.Login(ctx, email, input.Password)
	if err != nil {
		srv.log(ctx).Info("Login rejected", slog.String("email", email), slog.Any("error", err))
		return nil, err
	}

	user, err := srv.establish(ctx, sessionID, token)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Int64("user_id", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{User: user, Role: user.Role}, nil
}

func (srv *authService) Register(ctx context.Context, sessionID string, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrFieldsRequired)
	}
	if !emailPattern.MatchString(email) {
		return nil, errors.WithStack(domainerrors.ErrInvalidEmail)
	}
	if input.Password != input.PasswordConfirm {
		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	result, err := srv.auth.Register(ctx, service.RegisterInput{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
		Password:  input.Password,
		Role:      entity.RoleBusinessOwner,
	})
	if err != nil {
		srv.log(ctx).Info("Registration rejected", slog.String("email", email), slog.Any("error", err))
		return nil, err
	}

	if result.Token == "" {
		return &usecase.RegisterOutput{User: result.User, Authenticated: false}, nil
	}

	user, err := srv.establish(ctx, sessionID, result.Token)
	if err != nil {
		return nil, err
	}

	return &usecase.RegisterOutput{User: user, Authenticated: true}, nil
}

// establish persists the token and loads the profile with it.
// The token is removed again when the profile cannot be loaded.
func (srv *authService) establish(ctx context.Context, sessionID, token string) (*entity.User, error) {
	if err := srv.tokens.Save(ctx, sessionID, token); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "save token")
	}

	user, err := srv.auth.CurrentUser(deliverycontext.WithAPIToken(ctx, token))
	if err != nil {
		srv.log(ctx).Warn("Profile fetch failed after login", slog.Any("error", err))
		if delErr := srv.tokens.Delete(ctx, sessionID); delErr != nil {
			srv.log(ctx).Error("Failed to remove token", slog.Any("error", delErr))
		}

		return nil, errors.Wrap(domainerrors.ErrProfileFetchFailed.WithDetails(err.Error()), "fetch profile")
	}

	return user, nil
}

func (srv *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := srv.tokens.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "delete token")
	}

	return nil
}
