package models

import "github.com/google/uuid"

// Role is the campus role carried by an access token
type Role string

const (
	RoleRider  Role = "rider"
	RoleDriver Role = "driver"
)

// ParseRole maps a token role claim to a Role. The identity service also
// issues its own user type names, which are accepted as aliases.
func ParseRole(raw string) (Role, bool) {
	switch raw {
	case "rider", "STUDENT", "student":
		return RoleRider, true
	case "driver", "RICKSHAW_PULLER", "rickshaw_puller":
		return RoleDriver, true
	}
	return "", false
}

// Principal is the authenticated caller of a request
type Principal struct {
	UserID  uuid.UUID
	Role    Role
	TokenID string
}

// IsRider reports whether the principal acts as a rider
func (p Principal) IsRider() bool { return p.Role == RoleRider }

// IsDriver reports whether the principal acts as a driver
func (p Principal) IsDriver() bool { return p.Role == RoleDriver }
