package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthAs returns a middleware that injects a fixed identity into the gin
// context, standing in for the real auth middleware in route tests.
func AuthAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}
