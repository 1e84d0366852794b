package storage

import "time"

// CategoryModel is the GORM model for the categories table.
// Value holds the category's JSON document verbatim.
type CategoryModel struct {
	CreatedAt time.Time
	Key       string    `gorm:"primaryKey;column:category"`
	UpdatedAt time.Time `gorm:"index:idx_updated_at"`
	Value     string    `gorm:"type:text;not null;default:''"`
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string { return "categories" }
