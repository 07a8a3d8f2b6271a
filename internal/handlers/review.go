// internal/handlers/review.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bicyclezen/bicyclezen-backend/internal/models"
	"github.com/bicyclezen/bicyclezen-backend/internal/services"
	"github.com/bicyclezen/bicyclezen-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

type CreateReviewRequest struct {
	Name    string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Email   string  `json:"email,omitempty" validate:"omitempty,email"`
	Rating  float64 `json:"rating" validate:"required,min=0,max=5"`
	Comment string  `json:"comment,omitempty"`
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// GET /review
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetReviews()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// POST /review
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review := models.Review{
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := h.reviewService.CreateReview(&review); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "result": review})
}
