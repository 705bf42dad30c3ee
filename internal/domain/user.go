package domain

import "github.com/google/uuid"

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// Owner is the profile of the user who submitted a claim. Claims only hold a
// reference to it; it is used for notification content and ownership checks.
type Owner struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  UserRole
}
