package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"otobiznes/internal/domain/entity"
	domainerrors "otobiznes/internal/domain/errors"
	"otobiznes/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type authService struct {
	client *Client
	logger *slog.Logger
}

// NewAuthService creates the AuthService backed by /auth and /user/me.
func NewAuthService(client *Client, logger *slog.Logger) service.AuthService {
	return &authService{client: client, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse accepts both token field names the API has used.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
}

func (r tokenResponse) value() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}

	return r.Token
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := s.client.Do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < http.StatusInternalServerError {
			return "", errors.Wrap(domainerrors.ErrInvalidCredentials.WithDetails(statusErr.Detail), "login")
		}

		return "", mapError(err)
	}

	token := resp.value()
	if token == "" {
		return "", errors.Wrap(domainerrors.ErrInvalidCredentials.WithDetails("empty token"), "login")
	}

	if exp, ok := tokenExpiry(token); ok {
		s.logger.Debug("[API] Token issued", slog.Time("expires_at", exp))
	}

	return token, nil
}

func (s *authService) Register(ctx context.Context, input service.RegisterInput) (*service.RegisterResult, error) {
	var raw json.RawMessage
	if err := s.client.Do(ctx, http.MethodPost, "/auth/register", nil, input, &raw); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusConflict {
			return nil, mapError(err)
		}
		if errors.As(err, &statusErr) && statusErr.StatusCode < http.StatusInternalServerError {
			return nil, errors.Wrap(domainerrors.ErrRegistrationFailed.WithDetails(statusErr.Detail), "register")
		}

		return nil, mapError(err)
	}

	return decodeRegisterResult(raw)
}

// decodeRegisterResult reads the created user, either at the top level or
// under "user", plus an optional token.
func decodeRegisterResult(raw json.RawMessage) (*service.RegisterResult, error) {
	result := &service.RegisterResult{}
	if len(raw) == 0 {
		return result, nil
	}

	var envelope struct {
		tokenResponse
		User *entity.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "decode register response")
	}
	result.Token = envelope.value()
	result.User = envelope.User

	if result.User == nil {
		var user entity.User
		if err := json.Unmarshal(raw, &user); err == nil && user.ID != 0 {
			result.User = &user
		}
	}

	return result, nil
}

func (s *authService) CurrentUser(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := s.client.Do(ctx, http.MethodGet, "/user/me", nil, nil, &user); err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}

// tokenExpiry reads the exp claim without verifying the signature; the token
// is opaque to the frontend and this is only used for logging.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
