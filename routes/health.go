package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studentflow/studentflow/models"
)

func RegisterHealthRoutes(router *gin.Engine) {
	router.GET("/api/health", Health)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "StudentFlow API is running!",
		Data:    gin.H{"timestamp": time.Now().UTC().Format(time.RFC3339)},
	})
}
