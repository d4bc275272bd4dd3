package entity

import (
	"strings"
	"time"
)

// User is an account exposed by the marketplace API.
// The password never travels back from the API and is not part of this record.
type User struct {
	ID        int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin reports whether the user moderates the marketplace.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CanManageBusinesses reports whether the user may create businesses and ads.
func (u *User) CanManageBusinesses() bool {
	return u != nil && (u.Role == RoleBusinessOwner || u.Role == RoleAdmin)
}
