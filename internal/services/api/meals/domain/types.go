// Package domain holds meal types shared by http, service, and repo layers
package domain

import "time"

// Meal is one dish a household can plan into slots
type Meal struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
