package models

// Role names known to the application.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Role is a membership group granted to users and carried as token claims.
type Role struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;size:64;not null" json:"name"`
}

// TableName overrides the table name
func (Role) TableName() string {
	return "roles"
}
