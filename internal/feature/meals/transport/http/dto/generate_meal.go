// Package dto defines the HTTP request types for the meals feature.
package dto

// GenerateMealReq is the request body for POST /meals/generate. All fields
// are optional; an empty macro_focus defaults to Balanced.
type GenerateMealReq struct {
	Diet            string  `json:"diet"`
	MaxCalories     int     `json:"max_calories" binding:"omitempty,min=0"`
	FoodPreferences string  `json:"food_preferences"`
	FoodsToAvoid    string  `json:"foods_to_avoid"`
	MacroFocus      string  `json:"macro_focus" binding:"omitempty,oneof=Protein Fat Carbs Balanced"`
	MaxBudget       float64 `json:"max_budget" binding:"omitempty,min=0"`
}
