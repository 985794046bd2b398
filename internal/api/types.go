// Package api defines the shared HTTP request/response types of the service.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for requests that succeed without data.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed session token after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// FoodResponse is one food record returned by the search and recognize endpoints.
// Nutrient values are per the declared serving size (100 g when the source
// database declares none).
type FoodResponse struct {
	FdcID           int64   `json:"fdc_id"`
	Description     string  `json:"description"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	Carbs           float64 `json:"carbs"`
	Fat             float64 `json:"fat"`
	ServingSize     float64 `json:"serving_size"`
	ServingSizeUnit string  `json:"serving_size_unit"`
}

// CreditsResponse reports how many generation credits the user has left.
type CreditsResponse struct {
	CreditsRemaining int `json:"credits_remaining"`
}

// MealResponse is a generated meal with its per-serving macros.
// MissingFields lists the labels the generator omitted; the corresponding
// values are unset rather than silently zero.
type MealResponse struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Calories      float64  `json:"calories"`
	Protein       float64  `json:"protein"`
	Carbs         float64  `json:"carbs"`
	Fat           float64  `json:"fat"`
	MissingFields []string `json:"missing_fields,omitempty"`
	Raw           string   `json:"raw,omitempty"`
}

// EntryResponse is one diary entry for a calendar day.
type EntryResponse struct {
	ID       uint    `json:"id"`
	Date     string  `json:"date"`
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Servings float64 `json:"servings"`
}

// TotalsResponse is the aggregated intake for a calendar day, computed on read.
type TotalsResponse struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DayResponse is the diary listing for one calendar day.
type DayResponse struct {
	Date    string          `json:"date"`
	Entries []EntryResponse `json:"entries"`
	Totals  TotalsResponse  `json:"totals"`
}
