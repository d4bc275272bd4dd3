package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Lifecycle(t *testing.T) {
	user := &User{ID: 7, Role: RoleBusinessOwner}

	tests := []struct {
		name      string
		result    HydrateResult
		wantState AuthState
		wantUser  *User
	}{
		{
			name:      "authenticated",
			result:    HydrateResult{Outcome: HydrateAuthenticated, User: user},
			wantState: AuthAuthenticated,
			wantUser:  user,
		},
		{
			name:      "no token",
			result:    HydrateResult{Outcome: HydrateNoToken},
			wantState: AuthUnauthenticated,
		},
		{
			name:      "failed",
			result:    HydrateResult{Outcome: HydrateFailed, Err: errors.New("boom")},
			wantState: AuthUnauthenticated,
		},
		{
			name:      "authenticated without user",
			result:    HydrateResult{Outcome: HydrateAuthenticated},
			wantState: AuthUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("sid")
			assert.Equal(t, AuthUnauthenticated, s.State)

			assert.True(t, s.Begin())
			assert.Equal(t, AuthLoading, s.State)

			s.Resolve(tt.result)
			assert.Equal(t, tt.wantState, s.State)
			assert.Equal(t, tt.wantUser, s.User)
		})
	}
}

func TestSession_BeginOnlyFromUnauthenticated(t *testing.T) {
	s := NewSession("sid")
	s.Authenticate(&User{ID: 1})

	assert.False(t, s.Begin())
	assert.Equal(t, AuthAuthenticated, s.State)
}

func TestSession_ResolveIgnoredOutsideLoading(t *testing.T) {
	s := NewSession("sid")

	s.Resolve(HydrateResult{Outcome: HydrateAuthenticated, User: &User{ID: 1}})

	assert.Equal(t, AuthUnauthenticated, s.State)
	assert.Nil(t, s.User)
}

func TestSession_Clear(t *testing.T) {
	s := NewSession("sid")
	s.Authenticate(&User{ID: 1, Role: RoleAdmin})
	assert.True(t, s.IsAuthenticated())

	s.Clear()

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, AuthUnauthenticated, s.State)
	assert.Nil(t, s.User)
}
