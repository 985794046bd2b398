// Package entity defines the domain entities for the credits feature.
package entity

import "time"

// UserCredit is one user's remaining generation quota. The row is created
// lazily on first access and reset on a schedule outside this service.
type UserCredit struct {
	ID uint `gorm:"primaryKey"`

	// UserID identifies the owner; one row per user.
	UserID uint `gorm:"uniqueIndex;not null"`

	// Email is denormalized alongside the ID, matching the hosted table.
	Email string `gorm:"size:255;not null"`

	// CreditsRemaining never goes below zero: the decrement is conditional
	// on it being positive.
	CreditsRemaining int `gorm:"not null"`

	// LastResetAt is maintained by the external reset job.
	LastResetAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name to the one the hosted store used.
func (UserCredit) TableName() string { return "user_credits" }
