// Package dto defines data transfer objects for the FoodData Central API responses.
package dto

// SearchResponse represents the JSON response from the /foods/search endpoint.
type SearchResponse struct {
	TotalHits int `json:"totalHits"`
	Foods     []struct {
		FdcID           int64   `json:"fdcId"`
		Description     string  `json:"description"`
		ServingSize     float64 `json:"servingSize,omitempty"`
		ServingSizeUnit string  `json:"servingSizeUnit,omitempty"`
		FoodNutrients   []struct {
			NutrientID int64   `json:"nutrientId"`
			Value      float64 `json:"value"`
			UnitName   string  `json:"unitName"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}
