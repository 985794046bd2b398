// Package dto defines the HTTP request types for the diary feature.
package dto

// AddEntryReq is the request body for POST /entries. Servings defaults to 1
// when omitted and is snapped to quarter-serving steps.
type AddEntryReq struct {
	Date            string  `json:"date" binding:"required,datetime=2006-01-02"`
	FdcID           int64   `json:"fdc_id"`
	FoodName        string  `json:"food_name" binding:"required"`
	Calories        float64 `json:"calories" binding:"min=0"`
	Protein         float64 `json:"protein" binding:"min=0"`
	Carbs           float64 `json:"carbs" binding:"min=0"`
	Fat             float64 `json:"fat" binding:"min=0"`
	ServingSize     float64 `json:"serving_size" binding:"min=0"`
	ServingSizeUnit string  `json:"serving_size_unit"`
	Servings        float64 `json:"servings" binding:"omitempty,gt=0"`
}

// AdjustServingsReq is the request body for PATCH /entries/:id/servings.
type AdjustServingsReq struct {
	Servings float64 `json:"servings" binding:"required,gt=0"`
}
