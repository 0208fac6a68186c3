package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studentflow/studentflow/database"
	"studentflow/studentflow/models"
	"studentflow/studentflow/services"
	"studentflow/studentflow/utils/token"
)

// AuthMiddleware verifies the bearer credential and attaches the resolved
// userID to the request context. A token that does not resolve to an
// existing user is rejected the same way as an invalid one.
func AuthMiddleware(db *database.Database, authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := token.ExtractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("Invalid or expired token"))
			return
		}

		var count int64
		if err := db.DB.Model(&models.User{}).Where("id = ?", claims.UserID).Count(&count).Error; err != nil || count == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("Invalid or expired token"))
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
