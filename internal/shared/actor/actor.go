// Package actor carries the identity of the authenticated user performing an
// operation. The actor value is resolved once by the auth middleware and
// passed explicitly into every use case and domain call; domain code never
// reads credential storage or ambient session state.
package actor

// Role determines which row of the permission matrix applies.
type Role string

const (
	RoleClient  Role = "client"
	RoleSupport Role = "support"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleSupport, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsClient() bool {
	return r == RoleClient
}

func (r Role) IsSupport() bool {
	return r == RoleSupport
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role may work other users' tickets.
func (r Role) IsStaff() bool {
	return r == RoleSupport || r == RoleAdmin
}

// ParseRole parses a role string, defaulting to client for unknown values.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleClient
}

// Actor is the authenticated user on whose behalf an operation runs.
type Actor struct {
	ID   uint
	Role Role
}

// Owns reports whether the actor owns the resource with the given owner ID.
func (a Actor) Owns(ownerID uint) bool {
	return a.ID != 0 && a.ID == ownerID
}
