package models

import "gorm.io/gorm"

// Post represents a blog post. Author is the ID of the user that created
// it and is the only user allowed to update or delete it.
type Post struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string `json:"title" gorm:"type:varchar(255)" validate:"required,max=255"`
	Content    string `json:"content" gorm:"type:text" validate:"required"`
	Slug       string `json:"slug" gorm:"uniqueIndex;type:varchar(255)" validate:"omitempty,max=255"`
	Category   string `json:"category" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Author     string `json:"author" gorm:"index;type:varchar(36)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
