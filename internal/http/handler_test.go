package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/auth"
	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/ratelimit"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
	model "task-tracker.com/task-tracker/pkg/models"
)

func newTestApp(t *testing.T) *echo.Echo {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.Task{}, &model.User{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	taskService := services.NewTaskService(repository.NewTaskRepository(db))
	authService := services.NewAuthService(
		repository.NewUserRepository(db),
		auth.NewPasswordHasher(),
		auth.NewJWTManager("test-secret", time.Hour),
	)

	log := logrus.New()
	log.SetOutput(io.Discard)

	limiter := ratelimit.NewMemoryLimiter(ratelimit.Config{Limit: 1000, Window: time.Minute})

	e := echo.New()
	Register(e, NewHandler(taskService), NewAuthHandler(authService), authService, limiter, log, config.Config{Env: "development"})
	return e
}

func doRequest(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, e *echo.Echo, name, email string) (id, token string) {
	rec := doRequest(e, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret-pass",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("failed to register %s: status %d body %s", email, rec.Code, rec.Body.String())
	}

	var resp struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}
	return resp.ID, resp.Token
}

func TestTasksRequireBearerToken(t *testing.T) {
	e := newTestApp(t)

	for _, path := range []string{"/api/tasks", "/api/auth/me"} {
		rec := doRequest(e, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s without token: expected 401, got %d", path, rec.Code)
		}
	}

	rec := doRequest(e, http.MethodGet, "/api/tasks", "bogus-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bogus token: expected 401, got %d", rec.Code)
	}
}

func TestCreateAndListTasks(t *testing.T) {
	e := newTestApp(t)
	_, token := registerUser(t, e, "Alice", "alice@example.com")

	rec := doRequest(e, http.MethodPost, "/api/tasks", token, map[string]string{"title": "Buy milk"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body %s", rec.Code, rec.Body.String())
	}

	var created model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created task: %v", err)
	}
	if created.Status != "pending" {
		t.Errorf("expected default status pending, got %s", created.Status)
	}
	if created.Description != "" {
		t.Errorf("expected empty description, got %q", created.Description)
	}

	rec = doRequest(e, http.MethodGet, "/api/tasks", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listed []model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("failed to decode task list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Errorf("expected the created task back, got %+v", listed)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	e := newTestApp(t)
	_, token := registerUser(t, e, "Alice", "alice@example.com")

	rec := doRequest(e, http.MethodPost, "/api/tasks", token, map[string]string{"description": "no title"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing title: expected 400, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/tasks", token, map[string]string{"title": "   "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank title: expected 400, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/tasks", token, map[string]string{"title": "Buy milk", "status": "done"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid status: expected 400, got %d", rec.Code)
	}
}

func TestUpdateTaskOwnershipAndExistence(t *testing.T) {
	e := newTestApp(t)
	_, aliceToken := registerUser(t, e, "Alice", "alice@example.com")
	_, bobToken := registerUser(t, e, "Bob", "bob@example.com")

	rec := doRequest(e, http.MethodPost, "/api/tasks", aliceToken, map[string]string{"title": "Buy milk"})
	var task model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode created task: %v", err)
	}

	rec = doRequest(e, http.MethodPut, "/api/tasks/missing-id", aliceToken, map[string]string{"status": "completed"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing task: expected 400, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPut, "/api/tasks/"+task.ID, bobToken, map[string]string{"status": "completed"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("foreign update: expected 401, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPut, "/api/tasks/"+task.ID, aliceToken, map[string]string{"status": "completed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("owner update: expected 200, got %d body %s", rec.Code, rec.Body.String())
	}
	var updated model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode updated task: %v", err)
	}
	if updated.Status != "completed" {
		t.Errorf("expected status completed, got %s", updated.Status)
	}
	if updated.Title != "Buy milk" {
		t.Errorf("title must survive a status-only patch, got %q", updated.Title)
	}
}

func TestDeleteTaskReturnsID(t *testing.T) {
	e := newTestApp(t)
	_, aliceToken := registerUser(t, e, "Alice", "alice@example.com")
	_, bobToken := registerUser(t, e, "Bob", "bob@example.com")

	rec := doRequest(e, http.MethodPost, "/api/tasks", aliceToken, map[string]string{"title": "Buy milk"})
	var task model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode created task: %v", err)
	}

	rec = doRequest(e, http.MethodDelete, "/api/tasks/"+task.ID, bobToken, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("foreign delete: expected 401, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodDelete, "/api/tasks/"+task.ID, aliceToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var confirmed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &confirmed); err != nil {
		t.Fatalf("failed to decode delete response: %v", err)
	}
	if confirmed.ID != task.ID {
		t.Errorf("expected deleted id %s, got %s", task.ID, confirmed.ID)
	}

	rec = doRequest(e, http.MethodGet, "/api/tasks", aliceToken, nil)
	var listed []model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("failed to decode task list: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("expected no tasks after delete, got %d", len(listed))
	}
}

func TestTaskListIsolationBetweenUsers(t *testing.T) {
	e := newTestApp(t)
	_, aliceToken := registerUser(t, e, "Alice", "alice@example.com")
	_, bobToken := registerUser(t, e, "Bob", "bob@example.com")

	doRequest(e, http.MethodPost, "/api/tasks", aliceToken, map[string]string{"title": "Alice's task"})

	rec := doRequest(e, http.MethodGet, "/api/tasks", bobToken, nil)
	var listed []model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("failed to decode task list: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("bob must not see alice's tasks, got %d", len(listed))
	}
}

func TestAuthEndpoints(t *testing.T) {
	e := newTestApp(t)
	id, token := registerUser(t, e, "Alice", "alice@example.com")

	rec := doRequest(e, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Impostor",
		"email":    "alice@example.com",
		"password": "other-pass",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate email: expected 400, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-pass",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad credentials: expected 401, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodGet, "/api/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var me model.User
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("failed to decode identity: %v", err)
	}
	if me.ID != id || me.Email != "alice@example.com" {
		t.Errorf("unexpected identity: %+v", me)
	}
}
