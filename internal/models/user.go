package models

import "gorm.io/gorm"

// User is an administrative account. Admins log in with email and password
// and receive a JWT that unlocks the catalog mutation endpoints. There is no
// self-serve registration; accounts come from seeding.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
