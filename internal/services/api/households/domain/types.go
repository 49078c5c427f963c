// Package domain holds household types shared by http, service, and repo layers
package domain

import "time"

// Role of a member inside a household
type Role string

const (
	// RoleOwner created the household and may delete it
	RoleOwner Role = "owner"

	// RoleMember joined via invite code
	RoleMember Role = "member"
)

// Household is one shared meal planning space
// the household id doubles as its invite code
type Household struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Member is one user's membership row
type Member struct {
	HouseholdID string    `json:"household_id"`
	UserID      string    `json:"user_id"`
	Role        Role      `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}
