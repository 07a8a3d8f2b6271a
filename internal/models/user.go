// internal/models/user.go
package models

// User is keyed by email: the upsert routes treat the address as the natural
// identity, there is no separate account record.
type User struct {
	BaseModel
	Email string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name  string `json:"name" gorm:"size:255"`
	Role  Role   `json:"role,omitempty" gorm:"type:varchar(20);default:''"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
