package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/parthkumar123/backend/internal/config"
	"github.com/parthkumar123/backend/internal/dtos"
	"github.com/parthkumar123/backend/internal/middleware"
	"github.com/parthkumar123/backend/internal/services"
	"github.com/parthkumar123/backend/internal/utils"
)

type TaskController struct {
	taskService services.TaskService
	cfg         *config.Config
}

func NewTaskController(taskService services.TaskService, cfg *config.Config) *TaskController {
	return &TaskController{taskService: taskService, cfg: cfg}
}

var taskValidate = validator.New()

// requireUserID reads the ID the auth middleware attached; its absence
// means the route was mounted without the middleware.
func (c *TaskController) requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondError(
			w, http.StatusUnauthorized,
			"Authentication failed. Token is missing.", !c.cfg.IsProduction(),
		)
		return uuid.Nil, false
	}
	return userID, true
}

func (c *TaskController) taskIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	taskID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(
			w, http.StatusBadRequest, "Invalid task id", !c.cfg.IsProduction(), err,
		)
		return uuid.Nil, false
	}
	return taskID, true
}

func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.requireUserID(w, r)
	if !ok {
		return
	}

	var req dtos.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(
			w, http.StatusBadRequest, "Invalid payload", !c.cfg.IsProduction(), err,
		)
		return
	}
	if err := taskValidate.Struct(req); err != nil {
		utils.RespondError(
			w, http.StatusBadRequest, validationMessage(err), !c.cfg.IsProduction(), err,
		)
		return
	}

	task, err := c.taskService.Create(r.Context(), userID, req)
	if err != nil {
		utils.RespondError(
			w, http.StatusInternalServerError,
			"An error occurred while creating the task.", !c.cfg.IsProduction(), err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.TaskResponse{
		Status: utils.StatusSuccess,
		Task:   task,
	})
}

func (c *TaskController) GetTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.requireUserID(w, r)
	if !ok {
		return
	}
	taskID, ok := c.taskIDFromPath(w, r)
	if !ok {
		return
	}

	task, err := c.taskService.Get(r.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, utils.ErrTaskNotFound) {
			utils.RespondError(
				w, http.StatusNotFound, "Task not found", !c.cfg.IsProduction(),
			)
			return
		}
		utils.RespondError(
			w, http.StatusInternalServerError,
			"An error occurred while fetching the task.", !c.cfg.IsProduction(), err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.TaskResponse{
		Status: utils.StatusOk,
		Task:   task,
	})
}

func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.requireUserID(w, r)
	if !ok {
		return
	}

	tasks, err := c.taskService.List(r.Context(), userID)
	if err != nil {
		utils.RespondError(
			w, http.StatusInternalServerError,
			"An error occurred while listing tasks.", !c.cfg.IsProduction(), err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.TaskListResponse{
		Status: utils.StatusOk,
		Tasks:  tasks,
	})
}

func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.requireUserID(w, r)
	if !ok {
		return
	}
	taskID, ok := c.taskIDFromPath(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(
			w, http.StatusBadRequest, "Invalid payload", !c.cfg.IsProduction(), err,
		)
		return
	}
	if err := taskValidate.Struct(req); err != nil {
		utils.RespondError(
			w, http.StatusBadRequest, validationMessage(err), !c.cfg.IsProduction(), err,
		)
		return
	}

	task, err := c.taskService.Update(r.Context(), userID, taskID, req)
	if err != nil {
		if errors.Is(err, utils.ErrTaskNotFound) {
			utils.RespondError(
				w, http.StatusNotFound, "Task not found", !c.cfg.IsProduction(),
			)
			return
		}
		utils.RespondError(
			w, http.StatusInternalServerError,
			"An error occurred while updating the task.", !c.cfg.IsProduction(), err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.TaskResponse{
		Status: utils.StatusOk,
		Task:   task,
	})
}

func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.requireUserID(w, r)
	if !ok {
		return
	}
	taskID, ok := c.taskIDFromPath(w, r)
	if !ok {
		return
	}

	if err := c.taskService.Delete(r.Context(), userID, taskID); err != nil {
		if errors.Is(err, utils.ErrTaskNotFound) {
			utils.RespondError(
				w, http.StatusNotFound, "Task not found", !c.cfg.IsProduction(),
			)
			return
		}
		utils.RespondError(
			w, http.StatusInternalServerError,
			"An error occurred while deleting the task.", !c.cfg.IsProduction(), err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteTaskResponse{
		Status:  utils.StatusSuccess,
		Message: "Task deleted successfully.",
	})
}
