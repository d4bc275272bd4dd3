// Package guard decides whether a visitor may see a protected page.
package guard

import "otobiznes/internal/domain/entity"

// Decision is the outcome of a guard check.
type Decision int

const (
	// Render lets the page render.
	Render Decision = iota
	// RedirectLogin sends an anonymous visitor to the login page.
	RedirectLogin
	// RedirectHome sends a visitor without the required role to the home page.
	RedirectHome
	// Pending means the session is still being resolved.
	Pending
)

const (
	// LoginPath is where anonymous visitors are sent.
	LoginPath = "/login"
	// HomePath is where visitors lacking a role are sent.
	HomePath = "/"
)

// String returns the decision name used in logs.
func (d Decision) String() string {
	switch d {
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	case Pending:
		return "pending"
	default:
		return "render"
	}
}

// Location returns the redirect target, or "" when no redirect applies.
func (d Decision) Location() string {
	switch d {
	case RedirectLogin:
		return LoginPath
	case RedirectHome:
		return HomePath
	default:
		return ""
	}
}

// Decide is a pure function of the current user and the roles a page requires.
// An empty role list means any authenticated user.
func Decide(user *entity.User, required ...entity.Role) Decision {
	if user == nil {
		return RedirectLogin
	}

	if len(required) > 0 && !entity.Roles(required).Contains(user.Role) {
		return RedirectHome
	}

	return Render
}

// DecideSession applies Decide to a session, reporting Pending while it loads.
func DecideSession(session *entity.Session, required ...entity.Role) Decision {
	if session == nil {
		return RedirectLogin
	}

	switch session.State {
	case entity.AuthLoading:
		return Pending
	case entity.AuthAuthenticated:
		return Decide(session.User, required...)
	default:
		return RedirectLogin
	}
}
