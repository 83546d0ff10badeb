// Package entity contains the core business objects of the project.
package entity

// Role represents the privilege tier an account holds in the system.
type Role string

const (
	// RoleUser indicates a regular end-user account.
	RoleUser Role = "USER"
	// RoleAdmin indicates an administrator account managed by a super admin.
	RoleAdmin Role = "ADMIN"
	// RoleSuperAdmin indicates the highest privilege tier, able to manage admins.
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdministrative reports whether the role belongs to the privileged tier.
func (r Role) IsAdministrative() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
