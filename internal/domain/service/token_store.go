package service

import (
	"context"
	"errors"
)

// ErrTokenNotFound is returned when no token is persisted for a session.
var ErrTokenNotFound = errors.New("token not found")

// TokenStore persists the API bearer token of each browser session.
type TokenStore interface {
	// Load returns the token saved for the session, or ErrTokenNotFound.
	Load(ctx context.Context, sessionID string) (string, error)

	// Save stores the token, replacing any previous one.
	Save(ctx context.Context, sessionID, token string) error

	// Delete removes the token. Deleting a missing token is not an error.
	Delete(ctx context.Context, sessionID string) error
}

// SessionCookieSigner turns session IDs into tamper-proof cookie values.
type SessionCookieSigner interface {
	// Sign returns the cookie value for the session ID.
	Sign(sessionID string) (string, error)

	// Parse verifies the cookie value and returns the session ID it carries.
	Parse(value string) (string, error)
}
