package entity

import "time"

// OTPCode is one emailed login code. Several unused rows may coexist for the
// same email across repeated login attempts; verification always consumes the
// most recently created one. Rows are never deleted here; expired codes are
// simply ignored, and purging is a housekeeping concern outside this service.
type OTPCode struct {
	ID uint `gorm:"primaryKey"`

	// Email the code was issued for.
	Email string `gorm:"index;size:255;not null"`

	// Code is the six-digit numeric code, stored as a string to keep
	// leading-zero-free formatting explicit.
	Code string `gorm:"size:6;not null"`

	// ExpiresAt is issuance time plus the code lifetime.
	ExpiresAt time.Time `gorm:"not null"`

	// Used flips to true exactly once, when the code is consumed.
	Used bool `gorm:"not null;default:false"`

	CreatedAt time.Time
}

// TableName pins the table name to the one the hosted store used.
func (OTPCode) TableName() string { return "otp_codes" }

// IsExpired returns true if the code has passed its expiry time.
func (c *OTPCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
