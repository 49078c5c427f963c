package domain

import "context"

// MembershipPort is the cross module surface other API modules use
// to gate access to household scoped resources
type MembershipPort interface {
	// Require returns nil when userID belongs to householdID
	// not found when the household does not exist, forbidden otherwise
	Require(ctx context.Context, householdID, userID string) error
}
