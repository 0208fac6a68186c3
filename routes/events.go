package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studentflow/studentflow/database"
	"studentflow/studentflow/models"
	"studentflow/studentflow/services"
)

func RegisterEventRoutes(group *gin.RouterGroup, db *database.Database, eventService *services.EventService) {
	var crud services.EventCRUDInterface = eventService

	// The list endpoint doubles as the calendar's date lookup via ?date=.
	group.GET("/events", func(c *gin.Context) { GetEvents(c, db, eventService) })
	group.POST("/events", func(c *gin.Context) { CreateResource(c, db, crud) })
	group.GET("/events/:id", func(c *gin.Context) { GetResourceById(c, db, crud) })
	group.PUT("/events/:id", func(c *gin.Context) { UpdateResource(c, db, crud) })
	group.DELETE("/events/:id", func(c *gin.Context) { DeleteResource(c, db, crud) })
}

func GetEvents(c *gin.Context, db *database.Database, eventService *services.EventService) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if dateParam := c.Query("date"); dateParam != "" {
		day, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("date must be in YYYY-MM-DD format"))
			return
		}

		event, err := eventService.GetByDate(db, userID, day)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event))
		return
	}

	events, err := eventService.List(db, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(events))
}
