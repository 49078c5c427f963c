package domain

// CreateInput creates a household owned by the caller
type CreateInput struct {
	Name string `json:"name" validate:"required,min=3,max=50" example:"Smith family"`
}

// RenameInput changes the household name, owner only
type RenameInput struct {
	Name string `json:"name" validate:"required,min=3,max=50" example:"Smith family"`
}

// JoinInput joins the caller to the household behind an invite code
// the code is the household id shared out of band
type JoinInput struct {
	InviteCode string `json:"invite_code" validate:"required,uuid4" example:"9f4c2dd0-7b5e-4f39-9b63-0a4d8e4f51aa"`
}

// MembersOutput lists the members of one household
type MembersOutput struct {
	HouseholdID string   `json:"household_id"`
	Members     []Member `json:"members"`
}
