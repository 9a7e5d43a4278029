// Package auth provides identity resolution and role-based authorization
package auth

import "fmt"

// Role represents the role claim carried by an authenticated identity
type Role string

// Role constants
const (
	// RoleAdmin represents a platform administrator
	RoleAdmin Role = "admin"
	// RoleCreator represents a course creator
	RoleCreator Role = "creator"
	// RoleUser represents a standard learner
	RoleUser Role = "user"
)

// ParseRole converts a string representation of a role claim to Role type
func ParseRole(str string) (Role, error) {
	switch Role(str) {
	case RoleAdmin, RoleCreator, RoleUser:
		return Role(str), nil
	}
	return "", fmt.Errorf("invalid role: %s", str)
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// Identity represents the authenticated caller as resolved from the external
// identity provider. It is request-scoped, read-only context; nothing in
// this system creates, mutates or persists identities.
type Identity struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role claim
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// RoleSet represents the set of roles accepted by a guarded resource
type RoleSet []Role

// Roles builds a RoleSet from the given roles
func Roles(roles ...Role) RoleSet {
	return RoleSet(roles)
}

// Contains reports whether the set includes the given role
func (rs RoleSet) Contains(role Role) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}

// DenyReason explains why an authorization decision denied access
type DenyReason string

// Deny reasons
const (
	// DenyUnauthenticated means no identity was presented
	DenyUnauthenticated DenyReason = "unauthenticated"
	// DenyForbidden means the identity's role is not in the required set
	DenyForbidden DenyReason = "forbidden"
)

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Authorize decides whether the identity may access a resource gated by the
// required role set. Deterministic, no side effects. An absent identity is
// denied as unauthenticated; an identity whose role is outside the set is
// denied as forbidden.
func Authorize(required RoleSet, identity *Identity) Decision {
	if identity == nil {
		return Decision{Reason: DenyUnauthenticated}
	}
	if !required.Contains(identity.Role) {
		return Decision{Reason: DenyForbidden}
	}
	return Decision{Allowed: true}
}
