package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"studentflow/studentflow/database"
	"studentflow/studentflow/models"
	"studentflow/studentflow/services"
	"studentflow/studentflow/testutils"
)

func setupProtectedRouter(t *testing.T) (*gin.Engine, *database.Database, *services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, close := testutils.SetupTestDB()
	t.Cleanup(close)

	authService := services.NewAuthService("test-secret", 1)

	router := gin.New()
	group := router.Group("/api")
	group.Use(AuthMiddleware(db, authService))
	group.GET("/whoami", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return router, db, authService
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/api/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router, db, authService := setupProtectedRouter(t)

	user := models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	assert.NoError(t, db.DB.Create(&user).Error)

	token, err := authService.IssueToken(user)
	assert.NoError(t, err)

	w := get(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID.String())
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router, _, _ := setupProtectedRouter(t)

	w := get(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	router, _, authService := setupProtectedRouter(t)

	token, err := authService.IssueToken(models.User{ID: uuid.New(), Email: "a@b.c"})
	assert.NoError(t, err)

	// Token without the Bearer scheme is not accepted.
	w := get(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsTokenForDeletedUser(t *testing.T) {
	router, db, authService := setupProtectedRouter(t)

	user := models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	assert.NoError(t, db.DB.Create(&user).Error)

	token, err := authService.IssueToken(user)
	assert.NoError(t, err)

	assert.NoError(t, db.DB.Delete(&user).Error)

	w := get(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	router, db, _ := setupProtectedRouter(t)

	user := models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	assert.NoError(t, db.DB.Create(&user).Error)

	forger := services.NewAuthService("other-secret", 1)
	token, err := forger.IssueToken(user)
	assert.NoError(t, err)

	w := get(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
