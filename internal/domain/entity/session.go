package entity

// AuthState is the lifecycle state of a browser session.
type AuthState int

const (
	// AuthUnauthenticated means no user is attached to the session.
	AuthUnauthenticated AuthState = iota
	// AuthLoading means a persisted token is being resolved into a user.
	AuthLoading
	// AuthAuthenticated means the session carries a resolved user.
	AuthAuthenticated
)

// String returns the state name used in logs.
func (s AuthState) String() string {
	switch s {
	case AuthLoading:
		return "loading"
	case AuthAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// HydrateOutcome is the typed result of resolving a persisted token.
type HydrateOutcome int

const (
	// HydrateNoToken means nothing was persisted, no network call was made.
	HydrateNoToken HydrateOutcome = iota
	// HydrateAuthenticated means the profile fetch succeeded.
	HydrateAuthenticated
	// HydrateFailed means a token existed but the profile fetch failed.
	HydrateFailed
)

// String returns the outcome name used in logs.
func (o HydrateOutcome) String() string {
	switch o {
	case HydrateAuthenticated:
		return "authenticated"
	case HydrateFailed:
		return "failed"
	default:
		return "no_token"
	}
}

// HydrateResult carries the outcome of hydration together with its payload.
// Token is the persisted API token; it is empty only for HydrateNoToken.
type HydrateResult struct {
	Outcome HydrateOutcome
	User    *User
	Token   string
	Err     error
}

// Session is the in-memory auth state of one browser session.
type Session struct {
	ID    string
	State AuthState
	User  *User
}

// NewSession returns an unauthenticated session.
func NewSession(id string) *Session {
	return &Session{ID: id, State: AuthUnauthenticated}
}

// Begin moves an unauthenticated session into loading.
// It reports false and leaves the state untouched from any other state.
func (s *Session) Begin() bool {
	if s.State != AuthUnauthenticated {
		return false
	}
	s.State = AuthLoading

	return true
}

// Resolve finishes loading with the hydration result.
func (s *Session) Resolve(result HydrateResult) {
	if s.State != AuthLoading {
		return
	}

	if result.Outcome == HydrateAuthenticated && result.User != nil {
		s.State = AuthAuthenticated
		s.User = result.User

		return
	}

	s.State = AuthUnauthenticated
	s.User = nil
}

// Authenticate attaches a freshly logged-in user.
func (s *Session) Authenticate(user *User) {
	s.State = AuthAuthenticated
	s.User = user
}

// Clear resets the session to unauthenticated with an empty user.
func (s *Session) Clear() {
	s.State = AuthUnauthenticated
	s.User = nil
}

// IsAuthenticated reports whether a user is attached.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.State == AuthAuthenticated && s.User != nil
}
