// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

// Order is created anonymously at checkout and mutated twice afterwards: the
// payment confirmation sets Paid and TransactionID, the fulfilment update sets
// Shipped.
type Order struct {
	BaseModel
	Email         string     `json:"email" gorm:"size:255;index;not null"`
	ProductID     *uuid.UUID `json:"product_id,omitempty" gorm:"type:uuid;index"`
	ProductName   string     `json:"product_name" gorm:"size:255"`
	Quantity      int        `json:"quantity" gorm:"default:1"`
	Price         float64    `json:"price" gorm:"type:decimal(10,2);not null"`
	Phone         string     `json:"phone" gorm:"size:50"`
	Address       string     `json:"address" gorm:"type:text"`
	Paid          bool       `json:"paid" gorm:"default:false"`
	TransactionID string     `json:"transaction_id,omitempty" gorm:"size:255"`
	Shipped       bool       `json:"shipped" gorm:"default:false"`
}

// Payment is the append-only record written when an order is confirmed paid.
// The order update that follows it is a separate, non-transactional write.
type Payment struct {
	BaseModel
	OrderID       uuid.UUID `json:"order_id" gorm:"type:uuid;index;not null"`
	Email         string    `json:"email" gorm:"size:255;index"`
	Amount        float64   `json:"amount" gorm:"type:decimal(10,2)"`
	TransactionID string    `json:"transaction_id" gorm:"size:255;not null"`
}
