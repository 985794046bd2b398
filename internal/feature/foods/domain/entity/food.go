// Package entity defines the domain entities for the foods feature.
package entity

// Food is one record from the food-composition database, flattened to the
// four tracked nutrients. Values are per the declared serving size; when the
// source declares none they are per 100 g.
type Food struct {
	FdcID           int64
	Description     string
	Calories        float64 // kcal
	Protein         float64 // g
	Carbs           float64 // g
	Fat             float64 // g
	ServingSize     float64
	ServingSizeUnit string
}

// FoodLabel is one label detected in a food photo.
type FoodLabel struct {
	Name       string
	Confidence float32 // 0.0 ~ 1.0
}
