// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered user account.
// It is the only entity in the system; email is the natural key.
type User struct {
	// ID is the unique identifier assigned by the database on creation.
	// It never changes afterwards.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the unique address used for lookup and duplicate checks.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password holds the bcrypt hash, never plaintext.
	// Note: list/get/update responses serialize this field as-is. That
	// exposure matches the observed behavior and is covered by tests
	// rather than removed.
	Password string `gorm:"size:255;not null" json:"password"`

	// Phone is the user's contact number.
	Phone string `gorm:"size:64;not null" json:"phone"`

	// Role is optional free text; no enumeration is enforced.
	Role string `gorm:"size:64" json:"role,omitempty"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
