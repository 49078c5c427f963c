package domain

import "encoding/json"

// Patch is a tri-state JSON field: absent, null, or set to a value
// Set reports the key was present, Valid reports it was non-null
type Patch[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON records presence, then null vs value
func (p *Patch[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &p.Value); err != nil {
		return err
	}
	p.Valid = true
	return nil
}

// CreateInput adds a slot to the household calendar
type CreateInput struct {
	HouseholdID string  `json:"household_id" validate:"required,uuid4" example:"9f4c2dd0-7b5e-4f39-9b63-0a4d8e4f51aa"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02" example:"2026-09-07"`
	SlotType    string  `json:"slot_type" validate:"required,oneof=lunch dinner" example:"dinner"`
	MealID      *string `json:"meal_id,omitempty" validate:"omitempty,uuid4"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// UpdateInput applies only the fields present in the body
// meal_id is tri-state: absent keeps the meal, null clears it
type UpdateInput struct {
	Date     *string       `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SlotType *string       `json:"slot_type,omitempty" validate:"omitempty,oneof=lunch dinner"`
	MealID   Patch[string] `json:"meal_id"`
	IsActive *bool         `json:"is_active,omitempty"`
}

// BatchItem is one row of a batch update
type BatchItem struct {
	SlotID string  `json:"slot_id" validate:"required,uuid4"`
	MealID *string `json:"meal_id" validate:"omitempty,uuid4"`
}

// BatchInput applies meal changes to several slots in one call
type BatchInput struct {
	Updates []BatchItem `json:"updates" validate:"required,min=1,max=100,dive"`
}

// BatchOutput reports how many rows were written
type BatchOutput struct {
	Applied int `json:"applied"`
}

// ShuffleInput asks for a random fill of the open slots in a date window
type ShuffleInput struct {
	HouseholdID string `json:"household_id" validate:"required,uuid4" example:"9f4c2dd0-7b5e-4f39-9b63-0a4d8e4f51aa"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02" example:"2026-09-07"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02" example:"2026-09-13"`
}

// ShuffleOutput returns the slots that received a meal
type ShuffleOutput struct {
	UpdatedSlots   []Slot `json:"updated_slots"`
	DuplicateCount int    `json:"duplicate_count"`
}
