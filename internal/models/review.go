// internal/models/review.go
package models

type Review struct {
	BaseModel
	Name    string  `json:"name" gorm:"size:255"`
	Email   string  `json:"email" gorm:"size:255;index"`
	Rating  float64 `json:"rating" gorm:"type:decimal(3,2);default:0"`
	Comment string  `json:"comment" gorm:"type:text"`
}
