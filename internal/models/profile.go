// internal/models/profile.go
package models

// Profile holds the optional public details a user attaches to their email.
// Like User it is upserted by address, never by surrogate id.
type Profile struct {
	BaseModel
	Email     string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name      string `json:"name" gorm:"size:255"`
	Education string `json:"education" gorm:"size:255"`
	Location  string `json:"location" gorm:"size:255"`
	Phone     string `json:"phone" gorm:"size:50"`
	LinkedIn  string `json:"linkedin" gorm:"size:255"`
}
