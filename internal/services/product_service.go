// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bicyclezen/bicyclezen-backend/internal/models"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// GetProducts returns the whole catalog in natural storage order.
func (s *ProductService) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// GetProduct returns nil without error when the id is unknown; absent records
// are not an error on read paths.
func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// DeleteProduct reports how many rows went away; deleting an unknown id is a
// no-op, not an error.
func (s *ProductService) DeleteProduct(id uuid.UUID) (int64, error) {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete product: %w", result.Error)
	}
	return result.RowsAffected, nil
}
