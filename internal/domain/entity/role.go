// Package entity contains the core business objects of the marketplace.
package entity

// Role represents the kind of account a user has in the marketplace.
type Role string

const (
	// RoleCustomer browses stores and builds bowls.
	RoleCustomer Role = "customer"
	// RoleStore owns a store record.
	RoleStore Role = "store"
	// RoleAdmin approves stores and manages the global catalog.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStore, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelectable reports whether a provisional identity may pick the role itself.
// Admins are provisioned, never self-assigned.
func (r Role) IsSelectable() bool {
	return r == RoleCustomer || r == RoleStore
}
