package routes

import (
	"github.com/gin-gonic/gin"

	"studentflow/studentflow/database"
	"studentflow/studentflow/services"
)

func RegisterExpenseRoutes(group *gin.RouterGroup, db *database.Database, expenseService services.ExpenseServiceInterface) {
	RegisterResourceRoutes(group, "expenses", db, expenseService)
}
