package models

import "gorm.io/gorm"

// User represents a registered author. Email lookups are case-sensitive:
// the unique index stores the address exactly as submitted.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"type:varchar(100)" validate:"required"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required"`
	Password   string `gorm:"type:varchar(255)"` // bcrypt hash; no json tag so it never leaves the API
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// PublicView is the representation of a User that is safe to return
// from any endpoint.
type PublicView struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Public strips everything secret from the user record.
func (u *User) Public() PublicView {
	return PublicView{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}
