package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account created by the mock identity flow.
// A user without a role is a provisional identity waiting for role selection.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      Role       `json:"role,omitempty"`
	StoreID   *uuid.UUID `json:"store_id,omitempty"` // only meaningful for RoleStore
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// HasRole reports whether the user finished role selection.
func (u *User) HasRole() bool {
	return u.Role.IsValid()
}

// Clone returns a copy that does not share the StoreID pointer.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	if u.StoreID != nil {
		id := *u.StoreID
		out.StoreID = &id
	}

	return &out
}

// NormalizeEmail is the lookup key used for users.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
