package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studentflow/studentflow/database"
	"studentflow/studentflow/models"
	"studentflow/studentflow/services"
)

func RegisterNoteRoutes(group *gin.RouterGroup, db *database.Database, noteService *services.NoteService) {
	var crud services.NoteCRUDInterface = noteService

	// The list endpoint accepts search and subject query parameters.
	group.GET("/notes", func(c *gin.Context) { GetNotes(c, db, noteService) })
	group.POST("/notes", func(c *gin.Context) { CreateResource(c, db, crud) })
	group.GET("/notes/:id", func(c *gin.Context) { GetResourceById(c, db, crud) })
	group.PUT("/notes/:id", func(c *gin.Context) { UpdateResource(c, db, crud) })
	group.DELETE("/notes/:id", func(c *gin.Context) { DeleteResource(c, db, crud) })
}

func GetNotes(c *gin.Context, db *database.Database, noteService *services.NoteService) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notes, err := noteService.Search(db, userID, c.Query("search"), c.Query("subject"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(notes))
}
