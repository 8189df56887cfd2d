package models

import "time"

// Product belongs to exactly one owner and one category. UserID is immutable
// after creation; soft-deleted rows stay in storage and are excluded by the
// repository predicates.
type Product struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	Name        string           `gorm:"size:100;not null" json:"name"`
	Description *string          `json:"description,omitempty"`
	Price       float64          `gorm:"not null;default:0" json:"price"`
	ImageURL    *string          `json:"image_url,omitempty"`
	IsActive    bool             `gorm:"not null;default:true" json:"is_active"`
	IsDeleted   bool             `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time        `json:"created_at"`
	CategoryID  uint             `gorm:"not null;index" json:"category_id"`
	Category    *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	UserID      string           `gorm:"size:36;not null;index" json:"user_id"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}
