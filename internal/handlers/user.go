// internal/handlers/user.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bicyclezen/bicyclezen-backend/internal/config"
	"github.com/bicyclezen/bicyclezen-backend/internal/services"
	"github.com/bicyclezen/bicyclezen-backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
	jwtConfig   config.JWTConfig
}

// Name is a pointer so an omitted field is distinguishable from an empty one:
// the upsert only replaces what the body carries.
type UpsertUserRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=255"`
}

func NewUserHandler(userService *services.UserService, jwtConfig config.JWTConfig) *UserHandler {
	return &UserHandler{
		userService: userService,
		jwtConfig:   jwtConfig,
	}
}

// GET /user
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GET /admin/:email
func (h *UserHandler) GetAdminStatus(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.userService.IsAdmin(email)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// PUT /user/admin/:email
func (h *UserHandler) PromoteToAdmin(c *gin.Context) {
	email := c.Param("email")

	modified, err := h.userService.PromoteToAdmin(email)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// PUT /user/:email
//
// Intentionally open: this is the sign-in path. The record is upserted and a
// fresh bearer token is minted on every call.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.userService.UpsertUser(email, req.Name)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	token, err := utils.GenerateJWT(email, h.jwtConfig.AccessTokenTTL)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": user, "token": token})
}
