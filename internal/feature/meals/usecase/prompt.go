package usecase

import (
	"fmt"

	"calorie_backend/internal/feature/meals/domain/entity"
)

// promptTemplate is the fixed generation prompt. The energy densities
// (4 kcal/g for carbohydrate and protein, 9 kcal/g for fat) and the exact
// label lines are load-bearing: the response parser keys on them.
const promptTemplate = `Dietary Preference: %s
Max Calories Limit: %d kcal
Food Preferences: %s
Foods to Avoid: %s
What Macro to Focus On: %s
Max Budget per Meal: $%.2f

Carbohydrates provide 4 calories per gram
Protein provides 4 calories per gram
Fat provides 9 calories per gram
Ensure the total calories match exactly the sum of all macros (no rounding, no ranges).
Use USDA FoodData Central information for calorie and nutrient data.
No warnings or health disclaimers. Be concise, simple, and direct. 5th to 7th-grade reading level.
Do not use any markup (no bold, no BBCode, no headings) other than a dash (-) for bullet points.
No extra fluff, just provide the meal directly.

The response should follow this format exactly:

Here is your meal. I hope you enjoy it.

[Name of the Dish],
Servings Per Recipe: [Number of Servings],
Serving Amount: [Serving Value] [Serving Units]
Calories per Serving: [Exact Calories per Serving in kcal]
Protein per Serving: [Protein in grams]
Carbs per Serving: [Carbohydrates in grams]
Fats per Serving: [Fats in grams]

Ingredients: [List each ingredient with quantity in grams and also specify counts, e.g., 2 peppers (20g)],

Instructions: [Step-by-step instructions to prepare the meal]

Constraints:
- Must adhere to %s if specified.
- Must not exceed %d per serving.
- Exclude foods in the list: %s
- Include %s if possible.
- Focus on %s as the key macro if applicable.
- Stay under $%.2f.
- Sum of macros must match total calories exactly, no approximations.`

// BuildPrompt renders the generation prompt for the given preferences.
func BuildPrompt(prefs entity.MealPreferences) string {
	return fmt.Sprintf(promptTemplate,
		prefs.Diet,
		prefs.MaxCalories,
		prefs.FoodPreferences,
		prefs.FoodsToAvoid,
		prefs.MacroFocus,
		prefs.MaxBudget,
		prefs.Diet,
		prefs.MaxCalories,
		prefs.FoodsToAvoid,
		prefs.FoodPreferences,
		prefs.MacroFocus,
		prefs.MaxBudget,
	)
}
