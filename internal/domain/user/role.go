package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the already-authenticated caller of a use case.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) CanActFor(ownerID uuid.UUID) bool {
	return a.Role.IsAdmin() || a.ID == ownerID
}
