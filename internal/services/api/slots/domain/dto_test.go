package domain

import (
	"encoding/json"
	"testing"
)

func TestUpdateInputMealTriState(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		set   bool
		valid bool
		value string
	}{
		{name: "absent keeps the meal", body: `{"is_active":false}`},
		{name: "null clears the meal", body: `{"meal_id":null}`, set: true},
		{name: "value assigns the meal", body: `{"meal_id":"abc"}`, set: true, valid: true, value: "abc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var in UpdateInput
			if err := json.Unmarshal([]byte(tc.body), &in); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if in.MealID.Set != tc.set || in.MealID.Valid != tc.valid || in.MealID.Value != tc.value {
				t.Fatalf("meal_id = %+v want set=%t valid=%t value=%q", in.MealID, tc.set, tc.valid, tc.value)
			}
		})
	}
}

func TestPatchRejectsWrongType(t *testing.T) {
	var in UpdateInput
	if err := json.Unmarshal([]byte(`{"meal_id":7}`), &in); err == nil {
		t.Fatal("numeric meal_id accepted")
	}
}
