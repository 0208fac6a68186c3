package routes

import (
	"github.com/gin-gonic/gin"

	"studentflow/studentflow/database"
	"studentflow/studentflow/services"
)

func RegisterTaskRoutes(group *gin.RouterGroup, db *database.Database, taskService services.TaskServiceInterface) {
	RegisterResourceRoutes(group, "tasks", db, taskService)
}
