// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the access tier of a user.
type Role string

const (
	// RoleUser indicates a regular, browsing user.
	RoleUser Role = "user"
	// RoleBusinessOwner indicates a user who owns business profiles and posts ads.
	RoleBusinessOwner Role = "business_owner"
	// RoleAdmin indicates a moderator of users and listings.
	RoleAdmin Role = "admin"
)

// AllRoles lists every valid role in display order.
var AllRoles = Roles{RoleUser, RoleBusinessOwner, RoleAdmin}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleBusinessOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// Label returns the Polish display label of the Role.
func (r Role) Label() string {
	switch r {
	case RoleUser:
		return "Użytkownik"
	case RoleBusinessOwner:
		return "Właściciel firmy"
	case RoleAdmin:
		return "Administrator"
	default:
		return string(r)
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ParseRole converts a raw string into a Role, reporting whether it is valid.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
