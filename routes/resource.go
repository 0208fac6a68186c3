package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studentflow/studentflow/database"
	"studentflow/studentflow/models"
	"studentflow/studentflow/services"
)

// One generic handler set serves all four resource types; per-type files
// only register routes and add their extra query forms.

// currentUserID reads the identity the auth middleware attached.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Not authenticated"))
		return uuid.UUID{}, false
	}
	userID, ok := userIDInterface.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Invalid user ID format"))
		return uuid.UUID{}, false
	}
	return userID, true
}

// respondError maps the service error taxonomy to wire status codes:
// 400 validation, 401 forbidden (indistinguishable from unauthenticated so
// other users' records are not revealed), 404 missing, 500 otherwise.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(verr.Error()))
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Not authorized"))
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse("Resource not found"))
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
	}
}

// RegisterResourceRoutes mounts the uniform CRUD surface for one resource
// type under the given path.
func RegisterResourceRoutes[T models.Owned, C any, P any](group *gin.RouterGroup, path string, db *database.Database, svc services.ResourceServiceInterface[T, C, P]) {
	group.GET("/"+path, func(c *gin.Context) { ListResources(c, db, svc) })
	group.POST("/"+path, func(c *gin.Context) { CreateResource(c, db, svc) })
	group.GET("/"+path+"/:id", func(c *gin.Context) { GetResourceById(c, db, svc) })
	group.PUT("/"+path+"/:id", func(c *gin.Context) { UpdateResource(c, db, svc) })
	group.DELETE("/"+path+"/:id", func(c *gin.Context) { DeleteResource(c, db, svc) })
}

func ListResources[T models.Owned, C any, P any](c *gin.Context, db *database.Database, svc services.ResourceServiceInterface[T, C, P]) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := svc.List(db, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(items))
}

func GetResourceById[T models.Owned, C any, P any](c *gin.Context, db *database.Database, svc services.ResourceServiceInterface[T, C, P]) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	record, err := svc.GetByID(db, c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(record))
}

func CreateResource[T models.Owned, C any, P any](c *gin.Context, db *database.Database, svc services.ResourceServiceInterface[T, C, P]) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// The payload type has no id or owner field, so client-supplied values
	// for either are dropped at decode time.
	var payload C
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	record, err := svc.Create(db, userID, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(record))
}

func UpdateResource[T models.Owned, C any, P any](c *gin.Context, db *database.Database, svc services.ResourceServiceInterface[T, C, P]) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	record, err := svc.Update(db, c.Param("id"), userID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(record))
}

func DeleteResource[T models.Owned, C any, P any](c *gin.Context, db *database.Database, svc services.ResourceServiceInterface[T, C, P]) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := svc.Delete(db, c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Resource deleted"})
}
