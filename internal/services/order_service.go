// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bicyclezen/bicyclezen-backend/internal/models"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) CreateOrder(order *models.Order) error {
	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (s *OrderService) GetOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrdersByEmail(email string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("email = ?", email).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}

// SetShipped is an upsert: updating an unknown id creates a bare order row
// carrying only the shipped flag, matching the legacy fulfilment tool.
func (s *OrderService) SetShipped(id uuid.UUID, shipped bool) (*models.Order, error) {
	result := s.db.Model(&models.Order{}).Where("id = ?", id).Update("shipped", shipped)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update order: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		order := models.Order{Shipped: shipped}
		order.ID = id
		if err := s.db.Create(&order).Error; err != nil {
			return nil, fmt.Errorf("failed to upsert order: %w", err)
		}
		return &order, nil
	}

	return s.GetOrder(id)
}

func (s *OrderService) DeleteOrder(id uuid.UUID) (int64, error) {
	result := s.db.Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete order: %w", result.Error)
	}
	return result.RowsAffected, nil
}
