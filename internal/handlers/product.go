// internal/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bicyclezen/bicyclezen-backend/internal/models"
	"github.com/bicyclezen/bicyclezen-backend/internal/services"
	"github.com/bicyclezen/bicyclezen-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

type CreateProductRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Description  string   `json:"description,omitempty"`
	Images       []string `json:"images,omitempty"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	MinOrderQty  int      `json:"min_order_qty,omitempty" validate:"omitempty,min=1"`
	AvailableQty int      `json:"available_qty,omitempty" validate:"omitempty,min=0"`
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /product
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetProducts()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET /product/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid product id", nil)
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	// Absent records are a null body, not a 404
	c.JSON(http.StatusOK, product)
}

// POST /product
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	minQty := req.MinOrderQty
	if minQty == 0 {
		minQty = 1
	}

	product := models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Images:       req.Images,
		Price:        req.Price,
		MinOrderQty:  minQty,
		AvailableQty: req.AvailableQty,
	}

	if err := h.productService.CreateProduct(&product); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// DELETE /product/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid product id", nil)
		return
	}

	deleted, err := h.productService.DeleteProduct(id)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
