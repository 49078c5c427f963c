package domain

// CreateInput adds a meal to a household
type CreateInput struct {
	HouseholdID string `json:"household_id" validate:"required,uuid4" example:"9f4c2dd0-7b5e-4f39-9b63-0a4d8e4f51aa"`
	Name        string `json:"name" validate:"required,min=3,max=50" example:"Spaghetti bolognese"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500" example:"Nonna's recipe"`
}

// UpdateInput renames a meal or rewrites its description
type UpdateInput struct {
	Name        string `json:"name" validate:"required,min=3,max=50" example:"Spaghetti bolognese"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500" example:"Now with more garlic"`
}
