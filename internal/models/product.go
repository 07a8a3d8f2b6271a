// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name         string         `json:"name" gorm:"size:255;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Images       pq.StringArray `json:"images" gorm:"type:text[]"`
	Price        float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	MinOrderQty  int            `json:"min_order_qty" gorm:"default:1"`
	AvailableQty int            `json:"available_qty" gorm:"default:0"`
}
