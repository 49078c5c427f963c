// Package domain holds slot types shared by http, service, and repo layers
package domain

import "time"

// SlotType is the meal of the day a slot covers
type SlotType string

const (
	// SlotTypeLunch is the midday slot
	SlotTypeLunch SlotType = "lunch"

	// SlotTypeDinner is the evening slot
	SlotTypeDinner SlotType = "dinner"
)

// Slot is one plannable position on the household calendar
// a household has at most one slot per date and type
type Slot struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	Date        string    `json:"date"`
	SlotType    SlotType  `json:"slot_type"`
	MealID      *string   `json:"meal_id"`
	MealName    *string   `json:"meal_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Open reports whether the slot can receive a meal during a shuffle
func (s Slot) Open() bool { return s.IsActive && s.MealID == nil }
