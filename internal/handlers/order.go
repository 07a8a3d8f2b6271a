// internal/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bicyclezen/bicyclezen-backend/internal/models"
	"github.com/bicyclezen/bicyclezen-backend/internal/services"
	"github.com/bicyclezen/bicyclezen-backend/internal/utils"
)

type OrderHandler struct {
	orderService   *services.OrderService
	paymentService *services.PaymentService
}

type CreateOrderRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	ProductID   string  `json:"product_id,omitempty" validate:"omitempty,uuid"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Phone       string  `json:"phone,omitempty"`
	Address     string  `json:"address,omitempty"`
}

type ConfirmPaymentRequest struct {
	TransactionID string  `json:"transaction_id" validate:"required"`
	Amount        float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Email         string  `json:"email,omitempty" validate:"omitempty,email"`
}

type UpdateShippingRequest struct {
	Shipped *bool `json:"shipped" validate:"required"`
}

func NewOrderHandler(orderService *services.OrderService, paymentService *services.PaymentService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		paymentService: paymentService,
	}
}

// POST /order
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	order := models.Order{
		Email:       req.Email,
		ProductName: req.ProductName,
		Quantity:    quantity,
		Price:       req.Price,
		Phone:       req.Phone,
		Address:     req.Address,
	}
	if req.ProductID != "" {
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			utils.BadRequestResponse(c, "invalid product id", nil)
			return
		}
		order.ProductID = &productID
	}

	if err := h.orderService.CreateOrder(&order); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "result": order})
}

// GET /order
//
// Without a filter any authenticated caller sees every order. With ?email=
// the token subject must match the requested address.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		orders, err := h.orderService.GetOrders()
		if err != nil {
			utils.InternalErrorResponse(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}

	decodedEmail, _ := utils.GetEmailFromContext(c)
	if email != decodedEmail {
		utils.ForbiddenResponse(c)
		return
	}

	orders, err := h.orderService.GetOrdersByEmail(email)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /order/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid order id", nil)
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// PATCH /order/:id
//
// Payment confirmation: records the payment document, then flips the order to
// paid with the processor transaction id.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid order id", nil)
		return
	}

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	payment := models.Payment{
		OrderID:       id,
		Email:         req.Email,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
	}

	order, err := h.paymentService.ConfirmOrderPayment(id, &payment)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// PUT /order/:id
func (h *OrderHandler) UpdateShipping(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid order id", nil)
		return
	}

	var req UpdateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.SetShipped(id, *req.Shipped)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// DELETE /order/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid order id", nil)
		return
	}

	deleted, err := h.orderService.DeleteOrder(id)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
