package models

import "time"

// ProductCategory groups a single owner's products. Rows are never removed;
// deletion only flips IsDeleted and repositories must filter on it explicitly.
type ProductCategory struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description *string   `json:"description,omitempty"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      string    `gorm:"size:36;not null;index" json:"user_id"`
}

// TableName overrides the table name
func (ProductCategory) TableName() string {
	return "product_categories"
}
