package services

import (
	"context"
	"slices"
	"sync"

	"taskflow/app/logging"
	"taskflow/app/models"
	"taskflow/app/store"
)

// TaskService handles task-related operations for every presentation surface.
// It owns one store and serializes access to it.
type TaskService struct {
	mu    sync.Mutex
	store *store.Store
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(st *store.Store) *TaskService {
	return &TaskService{store: st}
}

// Dashboard returns the visible tasks under the active filter plus stats.
func (s *TaskService) Dashboard(ctx context.Context) models.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard(s.store.Filter())
}

// DashboardFor is Dashboard for an explicit filter; the active filter is left alone.
func (s *TaskService) DashboardFor(ctx context.Context, f models.Filter) models.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard(f.Normalize())
}

func (s *TaskService) dashboard(f models.Filter) models.Dashboard {
	tasks := slices.Collect(s.store.Visible(f))
	if tasks == nil {
		tasks = []models.Task{}
	}
	return models.Dashboard{
		Filter: f,
		Tasks:  tasks,
		Stats:  s.store.Stats(),
	}
}

// GetTasks returns a copy of the whole collection, newest first.
func (s *TaskService) GetTasks(ctx context.Context) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Tasks()
}

// GetTaskByID retrieves a single task by its ID.
func (s *TaskService) GetTaskByID(ctx context.Context, id uint64) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Task(id)
}

// CreateTask adds a task. Blank titles are ignored and reported with ok == false.
func (s *TaskService) CreateTask(ctx context.Context, title string) (models.Task, bool) {
	s.mu.Lock()
	task, ok := s.store.AddTask(title)
	s.mu.Unlock()

	logger := logging.FromContext(ctx)
	if !ok {
		logger.Debug("ignored blank task title")
		return task, false
	}
	logger.Info("task created", "id", task.ID, "title", task.Title)
	return task, true
}

// ToggleTask flips a task between active and completed.
func (s *TaskService) ToggleTask(ctx context.Context, id uint64) {
	s.mu.Lock()
	s.store.ToggleTask(id)
	task, found := s.store.Task(id)
	s.mu.Unlock()

	logger := logging.FromContext(ctx)
	if !found {
		logger.Debug("toggle of unknown task ignored", "id", id)
		return
	}
	logger.Info("task toggled", "id", id, "completed", task.Completed)
}

// DeleteTask removes a task.
func (s *TaskService) DeleteTask(ctx context.Context, id uint64) {
	s.mu.Lock()
	before := s.store.Len()
	s.store.DeleteTask(id)
	removed := s.store.Len() < before
	s.mu.Unlock()

	logger := logging.FromContext(ctx)
	if !removed {
		logger.Debug("delete of unknown task ignored", "id", id)
		return
	}
	logger.Info("task deleted", "id", id)
}

// Filter returns the active filter.
func (s *TaskService) Filter(ctx context.Context) models.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Filter()
}

// SetFilter replaces the active filter.
func (s *TaskService) SetFilter(ctx context.Context, f models.Filter) {
	s.mu.Lock()
	s.store.SetFilter(f)
	active := s.store.Filter()
	s.mu.Unlock()

	logging.FromContext(ctx).Debug("filter changed", "filter", active)
}

// Stats returns the counts and completion rate.
func (s *TaskService) Stats(ctx context.Context) models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Stats()
}
