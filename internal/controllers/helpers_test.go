package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/parthkumar123/backend/internal/config"
	"github.com/parthkumar123/backend/internal/middleware"
	"github.com/parthkumar123/backend/internal/models"
	"github.com/parthkumar123/backend/internal/services"
	"github.com/parthkumar123/backend/internal/utils"
)

// ---------------------------------------------------------------------
// In-memory stores: the controller tests exercise the real services,
// middleware and routing with only the database faked out.
// ---------------------------------------------------------------------

type memUserRepo struct {
	byEmail map[string]*models.User
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return utils.ErrEmailExists
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.byEmail[email], nil
}

type memBlacklistRepo struct {
	revoked map[string]bool
}

func (r *memBlacklistRepo) BlacklistToken(_ context.Context, rawToken string) error {
	r.revoked[rawToken] = true
	return nil
}

func (r *memBlacklistRepo) IsTokenBlacklisted(_ context.Context, rawToken string) (bool, error) {
	return r.revoked[rawToken], nil
}

func (r *memBlacklistRepo) CleanupExpired(_ context.Context) error { return nil }

type memTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func (r *memTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok || task.CreatedBy != userID {
		return nil, nil
	}
	return task, nil
}

func (r *memTaskRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.Task, error) {
	out := []*models.Task{}
	for _, task := range r.tasks {
		if task.CreatedBy == userID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *models.Task) (bool, error) {
	existing, ok := r.tasks[task.ID]
	if !ok || existing.CreatedBy != task.CreatedBy {
		return false, nil
	}
	r.tasks[task.ID] = task
	return true, nil
}

func (r *memTaskRepo) Delete(_ context.Context, id, userID uuid.UUID) (bool, error) {
	task, ok := r.tasks[id]
	if !ok || task.CreatedBy != userID {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

// ---------------------------------------------------------------------
// Test server wiring, mirroring cmd/main.go
// ---------------------------------------------------------------------

type testEnv struct {
	server    *httptest.Server
	users     *memUserRepo
	blacklist *memBlacklistRepo
	tasks     *memTaskRepo
}

func newTestEnv(t *testing.T, tokenExpiry time.Duration) *testEnv {
	t.Helper()

	cfg := &config.Config{
		AppName:     "task-service",
		Env:         "test",
		JWTSecret:   []byte("controller-test-secret"),
		TokenExpiry: tokenExpiry,
	}

	users := &memUserRepo{byEmail: map[string]*models.User{}}
	blacklist := &memBlacklistRepo{revoked: map[string]bool{}}
	tasks := &memTaskRepo{tasks: map[uuid.UUID]*models.Task{}}

	jwtService := services.NewJWTService(cfg)
	authService := services.NewAuthService(users, blacklist, jwtService, cfg)
	taskService := services.NewTaskService(tasks)

	authController := NewAuthController(authService, cfg)
	taskController := NewTaskController(taskService, cfg)

	router := mux.NewRouter()

	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/signup", authController.Signup).Methods("POST")
	authRouter.HandleFunc("/login", authController.Login).Methods("POST")
	authRouter.HandleFunc("/logout", authController.Logout).Methods("POST")

	taskRouter := router.PathPrefix("/tasks").Subrouter()
	taskRouter.Use(middleware.AuthMiddleware(blacklist, jwtService, true))
	taskRouter.HandleFunc("", taskController.CreateTask).Methods("POST")
	taskRouter.HandleFunc("", taskController.ListTasks).Methods("GET")
	taskRouter.HandleFunc("/{id}", taskController.GetTask).Methods("GET")
	taskRouter.HandleFunc("/{id}", taskController.UpdateTask).Methods("PUT")
	taskRouter.HandleFunc("/{id}", taskController.DeleteTask).Methods("DELETE")

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, users: users, blacklist: blacklist, tasks: tasks}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
