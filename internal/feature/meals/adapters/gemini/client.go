// Package gemini provides a meal generator backed by the Google Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"calorie_backend/internal/feature/meals/domain/entity"
	"calorie_backend/internal/feature/meals/usecase"
)

const (
	// DefaultModel is the default Gemini model.
	DefaultModel = "gemini-2.5-flash"
)

// mealSchema constrains the model to a JSON object carrying exactly the
// fields the service needs, so no text parsing is required.
var mealSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":        {Type: genai.TypeString},
		"description": {Type: genai.TypeString, Description: "Ingredients and step-by-step instructions"},
		"calories":    {Type: genai.TypeNumber},
		"protein":     {Type: genai.TypeNumber},
		"carbs":       {Type: genai.TypeNumber},
		"fat":         {Type: genai.TypeNumber},
	},
	Required: []string{"name", "description", "calories", "protein", "carbs", "fat"},
}

type mealPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

// GeminiGenerator generates meals using the Google Gemini API with
// structured JSON output.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// Compile-time check that GeminiGenerator implements MealGenerator.
var _ usecase.MealGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new GeminiGenerator instance using ADC.
// The environment variables GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT
// and GOOGLE_CLOUD_LOCATION are required.
func NewGeminiGenerator(ctx context.Context) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: DefaultModel}, nil
}

// Generate renders the prompt and asks the model for a meal in the
// structured schema. Structured output cannot omit required fields, so
// Missing is always empty on success.
func (g *GeminiGenerator) Generate(ctx context.Context, prefs entity.MealPreferences) (entity.GeneratedMeal, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   mealSchema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(usecase.BuildPrompt(prefs)), cfg)
	if err != nil {
		return entity.GeneratedMeal{}, fmt.Errorf("gemini API request failed: %w", err)
	}

	raw := resp.Text()
	var payload mealPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return entity.GeneratedMeal{}, fmt.Errorf("gemini returned malformed meal: %w", err)
	}

	return entity.GeneratedMeal{
		Name:        payload.Name,
		Description: payload.Description,
		Calories:    payload.Calories,
		Protein:     payload.Protein,
		Carbs:       payload.Carbs,
		Fat:         payload.Fat,
		Raw:         raw,
	}, nil
}
