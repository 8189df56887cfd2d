package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. Emails are stored lowercased so the
// unique index behaves case-insensitively.
type User struct {
	ID             string    `gorm:"primarykey;size:36" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	FullName       string    `gorm:"not null" json:"full_name"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	EmailConfirmed bool      `gorm:"not null;default:false" json:"email_confirmed"`
	SecurityStamp  string    `gorm:"size:36;not null" json:"-"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Roles      []Role            `gorm:"many2many:user_roles" json:"roles,omitempty"`
	Products   []Product         `gorm:"foreignKey:UserID" json:"-"`
	Categories []ProductCategory `gorm:"foreignKey:UserID" json:"-"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the opaque identifier and the initial security stamp.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.SecurityStamp == "" {
		u.SecurityStamp = uuid.NewString()
	}
	return nil
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	for _, role := range u.Roles {
		if role.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the user's role names for token claims.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}
