package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"taskflow/app/models"
	"taskflow/app/services"
	"taskflow/app/views"
)

// TaskController handles HTTP requests for tasks.
type TaskController struct {
	Service  *services.TaskService
	Exporter *services.Exporter
}

// NewTaskController creates a new TaskController.
func NewTaskController(service *services.TaskService, exporter *services.Exporter) *TaskController {
	return &TaskController{Service: service, Exporter: exporter}
}

// GetTasks handles GET /api/tasks. An optional ?filter= selects a view
// without changing the active filter.
func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name, ok := r.URL.Query()["filter"]
	if !ok {
		views.SendSuccess(w, http.StatusOK, c.Service.Dashboard(ctx))
		return
	}

	f, err := models.ParseFilter(name[0])
	if err != nil {
		views.SendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	views.SendSuccess(w, http.StatusOK, c.Service.DashboardFor(ctx, f))
}

// CreateTask handles POST /api/tasks. A blank title is not an error; the
// unchanged dashboard comes back with 200 instead of 201.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req views.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		views.SendError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if _, created := c.Service.CreateTask(ctx, req.Title); !created {
		views.SendMessage(w, http.StatusOK, c.Service.Dashboard(ctx), "Nothing to add")
		return
	}
	views.SendSuccess(w, http.StatusCreated, c.Service.Dashboard(ctx))
}

// GetTaskByID handles GET /api/tasks/{taskID}.
func (c *TaskController) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	task, found := c.Service.GetTaskByID(r.Context(), id)
	if !found {
		views.SendError(w, "Task not found", http.StatusNotFound)
		return
	}
	views.SendSuccess(w, http.StatusOK, task)
}

// ToggleTask handles POST /api/tasks/{taskID}/toggle.
func (c *TaskController) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	c.Service.ToggleTask(r.Context(), id)
	views.SendSuccess(w, http.StatusOK, c.Service.Dashboard(r.Context()))
}

// DeleteTask handles DELETE /api/tasks/{taskID}.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	c.Service.DeleteTask(r.Context(), id)
	views.SendSuccess(w, http.StatusOK, c.Service.Dashboard(r.Context()))
}

// GetFilter handles GET /api/filter.
func (c *TaskController) GetFilter(w http.ResponseWriter, r *http.Request) {
	views.SendSuccess(w, http.StatusOK, views.FilterRequest{Filter: c.Service.Filter(r.Context()).String()})
}

// SetFilter handles PUT /api/filter.
func (c *TaskController) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req views.FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		views.SendError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	f, err := models.ParseFilter(req.Filter)
	if err != nil {
		views.SendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	c.Service.SetFilter(ctx, f)
	views.SendSuccess(w, http.StatusOK, c.Service.Dashboard(ctx))
}

// GetStats handles GET /api/stats.
func (c *TaskController) GetStats(w http.ResponseWriter, r *http.Request) {
	views.SendSuccess(w, http.StatusOK, c.Service.Stats(r.Context()))
}

// ExportTasks handles GET /api/tasks/export?format=json|csv|pdf.
func (c *TaskController) ExportTasks(w http.ResponseWriter, r *http.Request) {
	out, err := c.Exporter.Export(r.Context(), r.URL.Query().Get("format"))
	if err != nil {
		if errors.Is(err, services.ErrUnknownFormat) {
			views.SendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		views.SendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Body)
}

// taskID parses the {taskID} path variable, writing a 400 on failure.
func taskID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := mux.Vars(r)["taskID"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		views.SendError(w, fmt.Sprintf("invalid task id %q", raw), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
