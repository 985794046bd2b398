package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"calorie_backend/internal/feature/meals/domain/entity"
)

// Labels the generator is instructed to emit, matched case-insensitively as
// line prefixes.
const (
	labelCalories = "Calories per Serving:"
	labelProtein  = "Protein per Serving:"
	labelCarbs    = "Carbs per Serving:"
	labelFats     = "Fats per Serving:"

	greetingPrefix = "Here is your meal"
)

// numberPattern matches the first numeric token after a label, tolerating
// units like "kcal" or "g" around it.
var numberPattern = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

// ParseMealText extracts the typed meal from the generator's free-text
// response. It is a pure function: a label the generator omitted or
// reformatted lands in Missing instead of defaulting the value to zero.
func ParseMealText(raw string) entity.GeneratedMeal {
	meal := entity.GeneratedMeal{Raw: raw}

	type target struct {
		label string
		dst   *float64
	}
	targets := []target{
		{labelCalories, &meal.Calories},
		{labelProtein, &meal.Protein},
		{labelCarbs, &meal.Carbs},
		{labelFats, &meal.Fat},
	}
	found := make(map[string]bool, len(targets))

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matched := false
		for _, t := range targets {
			if !hasPrefixFold(line, t.label) {
				continue
			}
			if v, ok := parseTrailingNumber(line[len(t.label):]); ok {
				*t.dst = v
				found[t.label] = true
			}
			matched = true
			break
		}
		if matched {
			continue
		}

		// The first content line that is neither the greeting nor a labelled
		// value is the dish name.
		if meal.Name == "" && !hasPrefixFold(line, greetingPrefix) && !strings.Contains(line, ":") {
			meal.Name = strings.TrimRight(line, ",.")
		}
	}

	for _, t := range targets {
		if !found[t.label] {
			meal.Missing = append(meal.Missing, strings.TrimSuffix(t.label, ":"))
		}
	}
	return meal
}

// hasPrefixFold reports whether s begins with prefix, ignoring case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// parseTrailingNumber extracts the first numeric token from the text after
// a label.
func parseTrailingNumber(rest string) (float64, bool) {
	m := numberPattern.FindString(rest)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
