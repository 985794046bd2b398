// Package entity defines the domain entities for the diary feature.
package entity

import "time"

// FoodEntry is one logged food on one calendar day. Nutrient values are a
// snapshot of the food at logging time, per single serving; the effective
// intake is the value times Servings. Date is the user's calendar day as
// "2006-01-02", deliberately stored without a timezone.
type FoodEntry struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index:idx_entries_user_date"`
	Date            string    `gorm:"size:10;not null;index:idx_entries_user_date"`
	FdcID           int64     `gorm:"not null"`
	FoodName        string    `gorm:"size:255;not null"`
	Calories        float64   `gorm:"not null"`
	Protein         float64   `gorm:"not null"`
	Carbs           float64   `gorm:"not null"`
	Fat             float64   `gorm:"not null"`
	ServingSize     float64   `gorm:"not null"`
	ServingSizeUnit string    `gorm:"size:16"`
	Servings        float64   `gorm:"not null;default:1"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (FoodEntry) TableName() string {
	return "daily_food_entries"
}
