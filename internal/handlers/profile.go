// internal/handlers/profile.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bicyclezen/bicyclezen-backend/internal/services"
	"github.com/bicyclezen/bicyclezen-backend/internal/utils"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

// Pointer fields keep the upsert partial: only keys present in the body
// replace stored values.
type UpsertProfileRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Education *string `json:"education,omitempty" validate:"omitempty,max=255"`
	Location  *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	LinkedIn  *string `json:"linkedin,omitempty" validate:"omitempty,max=255"`
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// PUT /profile/:email
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	email := c.Param("email")

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	profile, err := h.profileService.UpsertProfile(email, &services.ProfileFields{
		Name:      req.Name,
		Education: req.Education,
		Location:  req.Location,
		Phone:     req.Phone,
		LinkedIn:  req.LinkedIn,
	})
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": profile})
}
