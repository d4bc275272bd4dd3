package usecase

import (
	"context"

	"otobiznes/internal/domain/entity"
)

// LoginInput is the login form.
type LoginInput struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	User *entity.User
	Role entity.Role
}

// RegisterInput is the registration form.
type RegisterInput struct {
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	PasswordConfirm string `form:"password_confirm"`
}

// RegisterOutput reports whether the new account was also logged in.
type RegisterOutput struct {
	User          *entity.User
	Authenticated bool
}

// AuthUsecase drives the auth lifecycle of a browser session.
type AuthUsecase interface {
	// Hydrate resolves the token persisted for the session into a user.
	// It makes no network call when nothing is persisted.
	Hydrate(ctx context.Context, sessionID string) entity.HydrateResult

	// Login validates the form, exchanges credentials for a token, persists it and loads the profile.
	Login(ctx context.Context, sessionID string, input *LoginInput) (*LoginOutput, error)

	// Register creates a business_owner account and logs it in when the API returns a token.
	Register(ctx context.Context, sessionID string, input *RegisterInput) (*RegisterOutput, error)

	// Logout removes the persisted token.
	Logout(ctx context.Context, sessionID string) error
}
