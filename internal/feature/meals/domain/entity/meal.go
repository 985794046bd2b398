// Package entity defines the domain entities for the meals feature.
package entity

// MacroFocus names the macronutrient a generated meal should emphasize.
type MacroFocus string

const (
	MacroFocusProtein  MacroFocus = "Protein"
	MacroFocusFat      MacroFocus = "Fat"
	MacroFocusCarbs    MacroFocus = "Carbs"
	MacroFocusBalanced MacroFocus = "Balanced"
)

// Valid reports whether the value is one of the four accepted focuses.
func (m MacroFocus) Valid() bool {
	switch m {
	case MacroFocusProtein, MacroFocusFat, MacroFocusCarbs, MacroFocusBalanced:
		return true
	}
	return false
}

// MealPreferences is the user's input for one generation request. It is
// never persisted; it exists only for the duration of the request.
type MealPreferences struct {
	Diet            string
	MaxCalories     int
	FoodPreferences string
	FoodsToAvoid    string
	MacroFocus      MacroFocus
	MaxBudget       float64
}

// GeneratedMeal is the typed result of one generation. Missing lists the
// labels the generator omitted from its response; the corresponding numeric
// fields are then unset rather than silently zero. Raw carries the full
// generator text (ingredients and instructions included).
type GeneratedMeal struct {
	Name        string
	Description string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	Missing     []string
	Raw         string
}
