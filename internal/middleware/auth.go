// internal/middleware/auth.go
package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bicyclezen/bicyclezen-backend/internal/models"
	"github.com/bicyclezen/bicyclezen-backend/internal/utils"
)

// AuthRequired verifies the bearer token: no header at all is 401, anything
// else wrong with the token (malformed, bad signature, expired) is 403.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}

// AdminRequired must run after AuthRequired. It re-reads the requester's user
// record; an unknown requester is denied the same way as a non-admin one.
func AdminRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := utils.GetEmailFromContext(c)
		if !exists {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		var requester models.User
		if err := db.Where("email = ?", email).First(&requester).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.InternalErrorResponse(c, err)
				c.Abort()
				return
			}
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		if !requester.IsAdmin() {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
