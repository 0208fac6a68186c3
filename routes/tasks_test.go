package routes

import (
	"bytes"
	"encoding/json"
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

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func setupTaskRouter(t *testing.T, userID uuid.UUID) (*gin.Engine, *database.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, close := testutils.SetupTestDB()
	t.Cleanup(close)

	router := gin.New()
	group := router.Group("/api")
	group.Use(testutils.AuthAs(userID))
	RegisterTaskRoutes(group, db, services.NewTaskService())
	return router, db
}

func TestTaskRoutesCRUD(t *testing.T) {
	userID := uuid.New()
	router, _ := setupTaskRouter(t, userID)

	w := performRequest(router, "POST", "/api/tasks", gin.H{
		"title":    "Finish lab report",
		"category": "school",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var created models.Task
	assert.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.Equal(t, userID, created.UserID)

	w = performRequest(router, "GET", "/api/tasks", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	var tasks []models.Task
	assert.NoError(t, json.Unmarshal(env.Data, &tasks))
	assert.Len(t, tasks, 1)

	w = performRequest(router, "GET", "/api/tasks/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "PUT", "/api/tasks/"+created.ID.String(), gin.H{
		"completed": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	var updated models.Task
	assert.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.True(t, updated.Completed)
	assert.NotNil(t, updated.CompletedAt)

	w = performRequest(router, "DELETE", "/api/tasks/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Resource deleted", env.Message)

	w = performRequest(router, "GET", "/api/tasks/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskRoutesValidationError(t *testing.T) {
	router, _ := setupTaskRouter(t, uuid.New())

	w := performRequest(router, "POST", "/api/tasks", gin.H{
		"category": "school",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "Title")
}

func TestTaskRoutesHideOtherUsersRecords(t *testing.T) {
	owner := uuid.New()
	router, db := setupTaskRouter(t, owner)

	w := performRequest(router, "POST", "/api/tasks", gin.H{
		"title":    "Private task",
		"category": "school",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	var created models.Task
	assert.NoError(t, json.Unmarshal(env.Data, &created))

	// A different authenticated user gets 401, not 404, so the record's
	// existence is not revealed.
	gin.SetMode(gin.TestMode)
	strangerRouter := gin.New()
	group := strangerRouter.Group("/api")
	group.Use(testutils.AuthAs(uuid.New()))
	RegisterTaskRoutes(group, db, services.NewTaskService())

	w = performRequest(strangerRouter, "GET", "/api/tasks/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized", decodeEnvelope(t, w).Message)

	w = performRequest(strangerRouter, "DELETE", "/api/tasks/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(strangerRouter, "GET", "/api/tasks", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var tasks []models.Task
	assert.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &tasks))
	assert.Empty(t, tasks)
}

func TestTaskRoutesNotFoundOnBadId(t *testing.T) {
	router, _ := setupTaskRouter(t, uuid.New())

	w := performRequest(router, "GET", "/api/tasks/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, "GET", "/api/tasks/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskRoutesRequireIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, close := testutils.SetupTestDB()
	t.Cleanup(close)

	// No auth middleware on the group at all.
	router := gin.New()
	group := router.Group("/api")
	RegisterTaskRoutes(group, db, services.NewTaskService())

	w := performRequest(router, "GET", "/api/tasks", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", decodeEnvelope(t, w).Message)
}
