package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studentflow/studentflow/database"
	"studentflow/studentflow/models"
	"studentflow/studentflow/services"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authData struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func RegisterAuthRoutes(router *gin.Engine, db *database.Database, authService *services.AuthService, userService services.UserServiceInterface) {
	group := router.Group("/api/auth")
	{
		group.POST("/login", func(c *gin.Context) { Login(c, db, authService) })
		group.POST("/register", func(c *gin.Context) { Register(c, db, authService, userService) })
	}
}

// RegisterMeRoute exposes the current user lookup behind the auth middleware.
func RegisterMeRoute(group *gin.RouterGroup, db *database.Database, userService services.UserServiceInterface) {
	group.GET("/auth/me", func(c *gin.Context) { Me(c, db, userService) })
}

func Login(c *gin.Context, db *database.Database, authService *services.AuthService) {
	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	token, user, err := authService.Login(db, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(authData{Token: token, User: user}))
}

func Register(c *gin.Context, db *database.Database, authService *services.AuthService, userService services.UserServiceInterface) {
	var request registerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	user, err := userService.Register(db, request.Name, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		respondError(c, err)
		return
	}

	token, err := authService.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(authData{Token: token, User: user}))
}

func Me(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := userService.GetUserById(db, userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(user))
}
